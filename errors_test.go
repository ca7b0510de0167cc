// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rdfc10

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonErrorErrorStringIncludesDetails(t *testing.T) {
	err := NewCanonError(ErrQuadsNotExist, "e0")
	assert.Contains(t, err.Error(), string(ErrQuadsNotExist))
	assert.Contains(t, err.Error(), "e0")
}

func TestCanonErrorErrorStringWithoutDetails(t *testing.T) {
	err := NewCanonError(ErrBase16EncodingFailed, nil)
	assert.Equal(t, string(ErrBase16EncodingFailed), err.Error())
}

func TestHndqCallLimitExceededCarriesLimit(t *testing.T) {
	err := HndqCallLimitExceeded(4000)
	assert.Equal(t, ErrHndqCallLimitExceeded, err.Code)
	assert.Equal(t, 4000, err.Details)
}
