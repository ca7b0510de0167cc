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

func TestQuadEqualIgnoresNothingButCompares(t *testing.T) {
	a := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), nil)
	b := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), nil)
	assert.True(t, a.Equal(b))
}

func TestQuadEqualDistinguishesGraph(t *testing.T) {
	withGraph := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), NewIRI("g"))
	withoutGraph := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), nil)
	assert.False(t, withGraph.Equal(withoutGraph))
	assert.False(t, withoutGraph.Equal(withGraph))
}

func TestQuadEqualDistinguishesComponents(t *testing.T) {
	base := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), nil)
	diffSubject := NewQuad(NewIRI("s2"), NewIRI("p"), NewIRI("o"), nil)
	assert.False(t, base.Equal(diffSubject))
}

func TestQuadEqualAgainstNil(t *testing.T) {
	base := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), nil)
	assert.False(t, base.Equal(nil))
}
