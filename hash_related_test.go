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

func sampleQuad() *Quad {
	return NewQuad(NewBlankNode("e0"), NewIRI("http://example.com/#p"), NewBlankNode("e1"), nil)
}

func TestHashRelatedBlankNodePrefersCanonicalIssuer(t *testing.T) {
	state := NewCanonState(Dataset{sampleQuad()}, SHA256)
	state.canonicalIssuer.Issue("e1")

	pathIssuer := NewIdentifierIssuer("b")
	hash, err := state.HashRelatedBlankNode("e1", sampleQuad(), pathIssuer, "p")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Changing only the path issuer's state must not change the result,
	// since the canonical issuer's mapping takes priority.
	other := NewIdentifierIssuer("b")
	other.Issue("e1")
	other.Issue("e1")
	hash2, err := state.HashRelatedBlankNode("e1", sampleQuad(), other, "p")
	assert.NoError(t, err)
	assert.Equal(t, hash, hash2)
}

func TestHashRelatedBlankNodeFallsBackToPathIssuer(t *testing.T) {
	state := NewCanonState(Dataset{sampleQuad()}, SHA256)
	pathIssuer := NewIdentifierIssuer("b")
	pathIssuer.Issue("e1")

	hash, err := state.HashRelatedBlankNode("e1", sampleQuad(), pathIssuer, "p")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.Equal(t, digestStrings(SHA256, "p", "<http://example.com/#p>", "_:b0"), hash)
}

func TestHashRelatedBlankNodeFallsBackToFirstDegreeHash(t *testing.T) {
	state := NewCanonState(Dataset{sampleQuad()}, SHA256)
	pathIssuer := NewIdentifierIssuer("b")

	hash, err := state.HashRelatedBlankNode("e1", sampleQuad(), pathIssuer, "p")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	h1, err := state.HashFirstDegreeQuads("e1")
	assert.NoError(t, err)
	assert.Equal(t, digestStrings(SHA256, "p", "<http://example.com/#p>", h1), hash)
}

func TestHashRelatedBlankNodeOmitsPredicateForGraphPosition(t *testing.T) {
	state := NewCanonState(Dataset{sampleQuad()}, SHA256)
	pathIssuer := NewIdentifierIssuer("b")

	hashG, err := state.HashRelatedBlankNode("e1", sampleQuad(), pathIssuer, "g")
	assert.NoError(t, err)
	hashP, err := state.HashRelatedBlankNode("e1", sampleQuad(), pathIssuer, "p")
	assert.NoError(t, err)
	assert.NotEqual(t, hashG, hashP)

	h1, err := state.HashFirstDegreeQuads("e1")
	assert.NoError(t, err)
	assert.Equal(t, digestStrings(SHA256, "g", h1), hashG)
}
