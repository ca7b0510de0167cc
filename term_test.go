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

func TestLiteralDefaultsToXSDString(t *testing.T) {
	l := NewLiteral("hello", "", "")
	assert.Equal(t, XSDString, l.Datatype)
}

func TestLiteralWithLanguageGetsRDFLangStringDatatype(t *testing.T) {
	l := NewLiteral("hello", "", "en")
	assert.Equal(t, RDFLangString, l.Datatype)
}

func TestLiteralWithLanguageIgnoresExplicitDatatype(t *testing.T) {
	l := NewLiteral("hello", "http://www.w3.org/2001/XMLSchema#string", "en")
	assert.Equal(t, RDFLangString, l.Datatype)
}

func TestNodeEquality(t *testing.T) {
	assert.True(t, NewIRI("http://example.com/").Equal(NewIRI("http://example.com/")))
	assert.False(t, NewIRI("http://example.com/").Equal(NewIRI("http://example.com/x")))

	assert.True(t, NewBlankNode("e0").Equal(NewBlankNode("e0")))
	assert.False(t, NewBlankNode("e0").Equal(NewBlankNode("e1")))

	assert.True(t, NewLiteral("a", "", "").Equal(NewLiteral("a", "", "")))
	assert.False(t, NewLiteral("a", "", "en").Equal(NewLiteral("a", "", "")))

	assert.False(t, NewIRI("x").Equal(NewBlankNode("x")))
}

func TestIsPredicates(t *testing.T) {
	assert.True(t, IsIRI(NewIRI("x")))
	assert.True(t, IsBlankNode(NewBlankNode("x")))
	assert.True(t, IsLiteral(NewLiteral("x", "", "")))
	assert.False(t, IsIRI(NewBlankNode("x")))
}
