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

// HashRelatedBlankNode computes the contribution of related to the
// caller's gossip hash: a position tag, the predicate IRI (unless
// position is "g"), and an identifier for related — preferring the
// canonical issuer's mapping, then the path issuer's, then, as a last
// resort, related's own H1DQ hash (spec.md §4.5).
//
// The fallback case intentionally omits the "_:" prefix the other two
// cases use: it is not a blank-node identifier at all, just an opaque
// hash string standing in for one. This asymmetry is carried over from
// the reference algorithm unchanged (spec.md §9 open question).
func (s *CanonState) HashRelatedBlankNode(related string, q *Quad, pathIssuer *IdentifierIssuer, position string) (string, error) {
	var id string
	if canonical, ok := s.canonicalIssuer.Get(related); ok {
		id = "_:" + canonical
	} else if path, ok := pathIssuer.Get(related); ok {
		id = "_:" + path
	} else {
		h, err := s.HashFirstDegreeQuads(related)
		if err != nil {
			return "", err
		}
		id = h
	}

	parts := make([]string, 0, 3)
	parts = append(parts, position)
	if position != "g" {
		parts = append(parts, "<"+q.Predicate.GetValue()+">")
	}
	parts = append(parts, id)

	return digestStrings(s.digest, parts...), nil
}
