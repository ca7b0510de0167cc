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

// Relabel applies an issued identifier map to a dataset, replacing every
// blank-node identifier in every quad with its canonical replacement
// (spec.md §4.8). The returned quads keep the order of dataset; sorting
// is done by SerializeNQuads. It fails with
// ErrCanonicalIdentifierNotExist if any blank node in the dataset is
// missing from the map — which can only happen if the caller passes a
// map that does not correspond to this dataset.
//
// Relabel and the canonical N-Quads serializer it calls are, per
// spec.md §1/§6, external collaborators to the canonicalization
// algorithm proper: Canonicalize never calls them itself. They are
// implemented here because a complete module needs a working output
// path, not because the core algorithm depends on them.
func Relabel(dataset Dataset, ids *IdentifierMap) ([]*Quad, error) {
	out := make([]*Quad, len(dataset))
	for i, q := range dataset {
		relabeled, err := relabelQuad(q, ids)
		if err != nil {
			return nil, err
		}
		out[i] = relabeled
	}
	return out, nil
}

func relabelQuad(q *Quad, ids *IdentifierMap) (*Quad, error) {
	subject, err := relabelSubject(q.Subject, ids)
	if err != nil {
		return nil, err
	}
	object, err := relabelObject(q.Object, ids)
	if err != nil {
		return nil, err
	}
	graph, err := relabelGraph(q.Graph, ids)
	if err != nil {
		return nil, err
	}
	return NewQuad(subject, q.Predicate, object, graph), nil
}

func relabelSubject(n SubjectTerm, ids *IdentifierMap) (SubjectTerm, error) {
	if !IsBlankNode(n) {
		return n, nil
	}
	canonical, err := canonicalBlankNode(n, ids)
	if err != nil {
		return nil, err
	}
	return canonical, nil
}

func relabelObject(n ObjectTerm, ids *IdentifierMap) (ObjectTerm, error) {
	if !IsBlankNode(n) {
		return n, nil
	}
	canonical, err := canonicalBlankNode(n, ids)
	if err != nil {
		return nil, err
	}
	return canonical, nil
}

func relabelGraph(n GraphTerm, ids *IdentifierMap) (GraphTerm, error) {
	if n == nil || !IsBlankNode(n) {
		return n, nil
	}
	canonical, err := canonicalBlankNode(n, ids)
	if err != nil {
		return nil, err
	}
	return canonical, nil
}

func canonicalBlankNode(n Node, ids *IdentifierMap) (*BlankNode, error) {
	canonical, ok := ids.Get(n.GetValue())
	if !ok {
		return nil, NewCanonError(ErrCanonicalIdentifierNotExist, n.GetValue())
	}
	return NewBlankNode(canonical), nil
}

// SerializeNQuads relabels dataset with ids, sorts the resulting quads
// in code-point order of their canonical N-Quads form, and concatenates
// them into the final canonical N-Quads document (spec.md §4.8, §6).
func SerializeNQuads(dataset Dataset, ids *IdentifierMap) (string, error) {
	relabeled, err := Relabel(dataset, ids)
	if err != nil {
		return "", err
	}

	lines := make([]string, len(relabeled))
	for i, q := range relabeled {
		lines[i] = ToCanonicalNQuad(q)
	}
	sort.Strings(lines)

	total := 0
	for _, l := range lines {
		total += len(l)
	}
	out := make([]byte, 0, total)
	for _, l := range lines {
		out = append(out, l...)
	}
	return string(out), nil
}
