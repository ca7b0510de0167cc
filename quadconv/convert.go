// Package quadconv adapts the RDF term/quad model published by
// github.com/cayleygraph/quad — the genuinely external, already-widely
// used quad representation (also consumed by cayleygraph/cayley) — into
// the internal tagged-union term model rdfc10 operates on, and back.
//
// This is the concrete realization of spec.md §1/§6's framing of the
// term data model and the "public API wrappers that accept graphs vs.
// datasets vs. quad lists" as external collaborators: rather than
// inventing our own wire format for callers to produce, we accept the
// one the ecosystem already publishes.
package quadconv

import (
	"github.com/cayleygraph/quad"

	"github.com/rdfc10/rdfc10-go"
)

// FromQuads converts a slice of cayleygraph/quad quads into an
// rdfc10.Dataset. A quad whose subject, predicate or object is not a
// supported rdfc10 term (e.g. a SPARQL-style variable) is skipped.
func FromQuads(quads []quad.Quad) rdfc10.Dataset {
	dataset := make(rdfc10.Dataset, 0, len(quads))
	for _, q := range quads {
		converted, ok := fromQuad(q)
		if !ok {
			continue
		}
		dataset = append(dataset, converted)
	}
	return dataset
}

func fromQuad(q quad.Quad) (*rdfc10.Quad, bool) {
	subject, ok := fromSubjectValue(q.Subject)
	if !ok {
		return nil, false
	}
	predicateIRI, ok := q.Predicate.(quad.IRI)
	if !ok {
		return nil, false
	}
	object, ok := fromObjectValue(q.Object)
	if !ok {
		return nil, false
	}

	var graph rdfc10.GraphTerm
	if q.Label != nil {
		g, ok := fromSubjectValue(q.Label)
		if !ok {
			return nil, false
		}
		graph = g.(rdfc10.GraphTerm)
	}

	return rdfc10.NewQuad(subject, rdfc10.NewIRI(string(predicateIRI)), object, graph), true
}

func fromSubjectValue(v quad.Value) (rdfc10.SubjectTerm, bool) {
	switch t := v.(type) {
	case quad.IRI:
		return rdfc10.NewIRI(string(t)), true
	case quad.BNode:
		return rdfc10.NewBlankNode(string(t)), true
	default:
		return nil, false
	}
}

func fromObjectValue(v quad.Value) (rdfc10.ObjectTerm, bool) {
	switch t := v.(type) {
	case quad.IRI:
		return rdfc10.NewIRI(string(t)), true
	case quad.BNode:
		return rdfc10.NewBlankNode(string(t)), true
	case quad.String:
		return rdfc10.NewLiteral(string(t), "", ""), true
	case quad.TypedString:
		return rdfc10.NewLiteral(string(t.Value), string(t.Type), ""), true
	case quad.LangString:
		return rdfc10.NewLiteral(string(t.Value), rdfc10.RDFLangString, t.Lang), true
	default:
		return nil, false
	}
}

// ToQuads converts a relabeled rdfc10 dataset (the output of
// rdfc10.Relabel) back into cayleygraph/quad quads, for callers that
// want to hand the canonicalized dataset to other cayleygraph/quad
// consumers (writers, stores) instead of serializing it to N-Quads
// text themselves.
func ToQuads(dataset []*rdfc10.Quad) []quad.Quad {
	out := make([]quad.Quad, len(dataset))
	for i, q := range dataset {
		out[i] = quad.Quad{
			Subject:   toValue(q.Subject),
			Predicate: quad.IRI(q.Predicate.GetValue()),
			Object:    toValue(q.Object),
			Label:     toLabelValue(q.Graph),
		}
	}
	return out
}

func toValue(n rdfc10.Node) quad.Value {
	switch t := n.(type) {
	case nil:
		return nil
	case *rdfc10.IRI:
		return quad.IRI(t.Value)
	case *rdfc10.BlankNode:
		return quad.BNode(t.Attribute)
	case *rdfc10.Literal:
		if t.Datatype == rdfc10.RDFLangString {
			return quad.LangString{Value: quad.String(t.Value), Lang: t.Language}
		}
		if t.Datatype != "" && t.Datatype != rdfc10.XSDString {
			return quad.TypedString{Value: quad.String(t.Value), Type: quad.IRI(t.Datatype)}
		}
		return quad.String(t.Value)
	default:
		return nil
	}
}

func toLabelValue(g rdfc10.GraphTerm) quad.Value {
	if g == nil {
		return nil
	}
	return toValue(g)
}
