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

import "sort"

// positions enumerates the quad component positions a related blank
// node may occupy, in the fixed order the reference algorithm visits
// them (spec.md §4.6 step 2).
var positions = [3]string{"s", "o", "g"}

// HashNDegreeQuads is the recursive workhorse of the algorithm: it
// disambiguates blank nodes that share an H1DQ hash by enumerating
// every permutation of their locally-indistinguishable neighbors and
// picking the lexicographically-least resulting "gossip path" (spec.md
// §4.6). It returns the resulting hash and the path issuer updated with
// whatever temporary identifiers the winning path minted.
func (s *CanonState) HashNDegreeQuads(x string, pathIssuer *IdentifierIssuer, counter CallCounter) (string, *IdentifierIssuer, error) {
	if err := counter.Add(x); err != nil {
		return "", nil, err
	}

	hashToRelated, err := s.relatedHashes(x, pathIssuer)
	if err != nil {
		return "", nil, err
	}

	sortedHashes := make([]string, 0, len(hashToRelated))
	for h := range hashToRelated {
		sortedHashes = append(sortedHashes, h)
	}
	sort.Strings(sortedHashes)

	dataToHash := make([]string, 0, len(sortedHashes)*2)
	issuer := pathIssuer

	for _, hash := range sortedHashes {
		related := hashToRelated[hash]
		dataToHash = append(dataToHash, hash)

		chosenPath := ""
		var chosenIssuer *IdentifierIssuer

		perm := newPermutator(related)
		for perm.hasNext() {
			permutation := perm.next()

			issuerCopy := issuer.Clone()
			path := ""
			var recursionList []string
			skip := false

			for _, rel := range permutation {
				if canonical, ok := s.canonicalIssuer.Get(rel); ok {
					path += "_:" + canonical
				} else {
					if !issuerCopy.HasID(rel) {
						recursionList = append(recursionList, rel)
					}
					path += "_:" + issuerCopy.Issue(rel)
				}

				if chosenPath != "" && len(path) >= len(chosenPath) && path >= chosenPath {
					skip = true
					break
				}
			}

			if skip {
				continue
			}

			for _, rel := range recursionList {
				subHash, subIssuer, err := s.HashNDegreeQuads(rel, issuerCopy, counter)
				if err != nil {
					return "", nil, err
				}

				path += "_:" + issuerCopy.Issue(rel)
				path += "<" + subHash + ">"
				issuerCopy = subIssuer

				if chosenPath != "" && len(path) >= len(chosenPath) && path >= chosenPath {
					skip = true
					break
				}
			}

			if skip {
				continue
			}

			if chosenPath == "" || path < chosenPath {
				chosenPath = path
				chosenIssuer = issuerCopy
			}
		}

		dataToHash = append(dataToHash, chosenPath)
		issuer = chosenIssuer
	}

	return digestStrings(s.digest, dataToHash...), issuer, nil
}

// relatedHashes builds the hash-to-related-blank-nodes map (spec.md §4.6
// step 2): for every quad mentioning x, for every other blank-node
// component, the HRBN hash of that neighbor keyed against its position.
func (s *CanonState) relatedHashes(x string, pathIssuer *IdentifierIssuer) (map[string][]string, error) {
	quads, ok := s.bnToInfo[x]
	if !ok {
		return nil, NewCanonError(ErrQuadsNotExist, x)
	}

	hashToRelated := make(map[string][]string)
	for _, q := range quads.quads {
		components := [3]Node{q.Subject, q.Object, q.Graph}
		for i, comp := range components {
			if comp == nil || !IsBlankNode(comp) {
				continue
			}
			related := comp.GetValue()
			if related == x {
				continue
			}
			hash, err := s.HashRelatedBlankNode(related, q, pathIssuer, positions[i])
			if err != nil {
				return nil, err
			}
			hashToRelated[hash] = append(hashToRelated[hash], related)
		}
	}
	return hashToRelated, nil
}
