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

var sentinelA = NewBlankNode("a")
var sentinelZ = NewBlankNode("z")

// HashFirstDegreeQuads computes the local hash of blank node r: the
// multiset of "shapes" of quads mentioning r, with every blank-node
// component rewritten to the sentinel _:a (if it equals r) or _:z
// (otherwise), so the hash leaks no identity beyond "r vs. not-r"
// (spec.md §3 invariants, §4.4). Two blank nodes sharing an H1DQ hash
// are locally indistinguishable and must be disambiguated by
// HashNDegreeQuads. The result is memoized on the state since the same
// reference node's H1DQ is recomputed from HashRelatedBlankNode's
// fallback path.
func (s *CanonState) HashFirstDegreeQuads(r string) (string, error) {
	info, ok := s.bnToInfo[r]
	if !ok {
		return "", NewCanonError(ErrQuadsNotExist, r)
	}
	if info.hasHash {
		return info.hash, nil
	}

	nquads := make([]string, 0, len(info.quads))
	for _, q := range info.quads {
		nquads = append(nquads, ToCanonicalNQuad(&Quad{
			Subject:   s.firstDegreeSubject(r, q.Subject),
			Predicate: q.Predicate,
			Object:    s.firstDegreeObject(r, q.Object),
			Graph:     s.firstDegreeGraph(r, q.Graph),
		}))
	}
	sort.Strings(nquads)

	hash := digestStrings(s.digest, nquads...)
	info.hash = hash
	info.hasHash = true
	return hash, nil
}

func firstDegreeSentinel(r string, n Node) Node {
	if n.GetValue() == r {
		return sentinelA
	}
	return sentinelZ
}

func (s *CanonState) firstDegreeSubject(r string, n SubjectTerm) SubjectTerm {
	if !IsBlankNode(n) {
		return n
	}
	return firstDegreeSentinel(r, n).(SubjectTerm)
}

func (s *CanonState) firstDegreeObject(r string, n ObjectTerm) ObjectTerm {
	if !IsBlankNode(n) {
		return n
	}
	return firstDegreeSentinel(r, n).(ObjectTerm)
}

func (s *CanonState) firstDegreeGraph(r string, n GraphTerm) GraphTerm {
	if n == nil || !IsBlankNode(n) {
		return n
	}
	return firstDegreeSentinel(r, n).(GraphTerm)
}
