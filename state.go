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

// blankNodeInfo is the per-blank-node bookkeeping record: the quads
// mentioning it, and its cached Hash First Degree Quads result.
type blankNodeInfo struct {
	quads   []*Quad
	hash    string
	hasHash bool
}

// CanonState holds the bookkeeping tables a single canonicalize() call
// threads through H1DQ, HRBN and HNDQ (spec.md §4.3). It is constructed
// fresh per call and dropped at return — there is no cross-invocation
// state anywhere in the engine (spec.md §5 "No global state").
type CanonState struct {
	digest          DigestAlgorithm
	bnToInfo        map[string]*blankNodeInfo
	canonicalIssuer *IdentifierIssuer
}

// NewCanonState builds a CanonState from a dataset: a single pass that
// indexes, for every blank node appearing in any quad's subject, object
// or graph-name position, the list of quads that mention it (spec.md
// §4.3 "Construction"). The same quad may end up in up to three lists
// if it mentions three distinct blank nodes.
func NewCanonState(dataset Dataset, digest DigestAlgorithm) *CanonState {
	s := &CanonState{
		digest:          digest,
		bnToInfo:        make(map[string]*blankNodeInfo),
		canonicalIssuer: NewIdentifierIssuer("c14n"),
	}
	for _, q := range dataset {
		s.indexComponent(q.Subject, q)
		s.indexComponent(q.Object, q)
		s.indexComponent(q.Graph, q)
	}
	return s
}

func (s *CanonState) indexComponent(n Node, q *Quad) {
	if n == nil || !IsBlankNode(n) {
		return
	}
	id := n.GetValue()
	info, ok := s.bnToInfo[id]
	if !ok {
		info = &blankNodeInfo{}
		s.bnToInfo[id] = info
	}
	// A quad naming the same blank node in more than one position is
	// listed once for that node.
	if n := len(info.quads); n > 0 && info.quads[n-1] == q {
		return
	}
	info.quads = append(info.quads, q)
}

// QuadsFor returns the quads mentioning blank node id, and whether id is
// known to the state at all (spec.md §3 invariant: every blank node
// appearing anywhere in the dataset must be a key here).
func (s *CanonState) QuadsFor(id string) ([]*Quad, bool) {
	info, ok := s.bnToInfo[id]
	if !ok {
		return nil, false
	}
	return info.quads, true
}

// BlankNodeIDs returns every blank-node identifier indexed by the state,
// in no particular order.
func (s *CanonState) BlankNodeIDs() []string {
	ids := make([]string, 0, len(s.bnToInfo))
	for id := range s.bnToInfo {
		ids = append(ids, id)
	}
	return ids
}
