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

// Quad is a single RDF statement: subject, predicate, object, and an
// optional graph name. A nil Graph means the statement belongs to the
// default graph.
type Quad struct {
	Subject   SubjectTerm
	Predicate *IRI
	Object    ObjectTerm
	Graph     GraphTerm
}

// NewQuad creates a new Quad.
func NewQuad(subject SubjectTerm, predicate *IRI, object ObjectTerm, graph GraphTerm) *Quad {
	return &Quad{Subject: subject, Predicate: predicate, Object: object, Graph: graph}
}

// Equal returns true if q and o denote the same statement.
func (q *Quad) Equal(o *Quad) bool {
	if o == nil {
		return false
	}
	if (q.Graph != nil && (o.Graph == nil || !q.Graph.Equal(o.Graph))) || (q.Graph == nil && o.Graph != nil) {
		return false
	}
	return q.Subject.Equal(o.Subject) && q.Predicate.Equal(o.Predicate) && q.Object.Equal(o.Object)
}

// Dataset is an unordered collection of quads. The core never relies on
// slice order: Canonicalize re-derives all ordering from blank-node
// hashes, so callers may hand it quads in any permutation (spec.md §8,
// property 7).
type Dataset []*Quad
