// Copyright 2023 The Owlgo Authors. All rights reserved.
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

package ontology

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/owlgraph/owlgo/owl"
)

// FromQuads reconstructs an ontology from an RDF graph produced by the
// OWL 2 mapping. Blank nodes that are referenced from other triples are
// treated as structural parts of expressions; only root blank nodes can
// carry reified axioms.
func FromQuads(quads []quad.Quad) (*Ontology, error) {
	r := newGraphReader(quads)
	return r.ontology()
}

type graphReader struct {
	quads []quad.Quad
	props map[string]map[owl.IRI][]quad.Value
	// referenced marks blank nodes that occur in object position.
	referenced map[string]bool
	// walking tracks blank nodes on the current decode path so cyclic
	// structures fail instead of recursing forever.
	walking map[string]bool

	classes     map[owl.IRI]bool
	objectProps map[owl.IRI]bool
	dataProps   map[owl.IRI]bool
	annotations map[owl.IRI]bool
	individuals map[owl.IRI]bool
	datatypes   map[owl.IRI]bool
}

func newGraphReader(quads []quad.Quad) *graphReader {
	r := &graphReader{
		quads:       quads,
		props:       make(map[string]map[owl.IRI][]quad.Value),
		referenced:  make(map[string]bool),
		walking:     make(map[string]bool),
		classes:     make(map[owl.IRI]bool),
		objectProps: make(map[owl.IRI]bool),
		dataProps:   make(map[owl.IRI]bool),
		annotations: make(map[owl.IRI]bool),
		individuals: make(map[owl.IRI]bool),
		datatypes:   make(map[owl.IRI]bool),
	}
	for _, q := range quads {
		key := q.Subject.String()
		m := r.props[key]
		if m == nil {
			m = make(map[owl.IRI][]quad.Value)
			r.props[key] = m
		}
		if p, ok := q.Predicate.(quad.IRI); ok {
			m[owl.IRI(p)] = append(m[owl.IRI(p)], q.Object)
		}
		if _, ok := q.Object.(quad.BNode); ok {
			r.referenced[q.Object.String()] = true
		}
		if p, ok := q.Predicate.(quad.IRI); ok && owl.IRI(p) == owl.RDFType {
			s, sok := q.Subject.(quad.IRI)
			t, tok := q.Object.(quad.IRI)
			if sok && tok {
				switch owl.IRI(t) {
				case owl.OWLClassIRI:
					r.classes[owl.IRI(s)] = true
				case owl.OWLObjectPropertyIRI:
					r.objectProps[owl.IRI(s)] = true
				case owl.OWLDatatypePropertyIRI:
					r.dataProps[owl.IRI(s)] = true
				case owl.OWLAnnotationPropertyIRI:
					r.annotations[owl.IRI(s)] = true
				case owl.OWLNamedIndividualIRI:
					r.individuals[owl.IRI(s)] = true
				case owl.RDFSDatatype:
					r.datatypes[owl.IRI(s)] = true
				}
			}
		}
	}
	return r
}

func (r *graphReader) values(subj quad.Value, pred owl.IRI) []quad.Value {
	return r.props[subj.String()][pred]
}

func (r *graphReader) value(subj quad.Value, pred owl.IRI) (quad.Value, bool) {
	vs := r.values(subj, pred)
	if len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

// list walks an rdf:first/rdf:rest chain. Visited nodes are tracked so
// a cyclic rest chain fails instead of looping.
func (r *graphReader) list(head quad.Value) ([]quad.Value, error) {
	var out []quad.Value
	seen := make(map[string]bool)
	for {
		if iri, ok := head.(quad.IRI); ok && owl.IRI(iri) == owl.RDFNil {
			return out, nil
		}
		if seen[head.String()] {
			return nil, fmt.Errorf("ontology: cyclic RDF list at %v", head)
		}
		seen[head.String()] = true
		first, ok := r.value(head, owl.RDFFirst)
		if !ok {
			return nil, fmt.Errorf("ontology: malformed RDF list at %v", head)
		}
		out = append(out, first)
		rest, ok := r.value(head, owl.RDFRest)
		if !ok {
			return nil, fmt.Errorf("ontology: RDF list at %v has no rest", head)
		}
		head = rest
	}
}

func (r *graphReader) isAnnotationProperty(p owl.IRI) bool {
	return r.annotations[p] || p == owl.RDFSLabel || p == owl.RDFSComment
}

func (r *graphReader) isDatatypeIRI(iri owl.IRI) bool {
	return r.datatypes[iri] || iri == owl.RDFSLiteral ||
		iri.Namespace() == owl.NamespaceXSD
}

// isDataRangeNode reports whether a value denotes a data range rather
// than a class expression.
func (r *graphReader) isDataRangeNode(v quad.Value) bool {
	switch v := v.(type) {
	case quad.IRI:
		return r.isDatatypeIRI(owl.IRI(v))
	case quad.BNode:
		if t, ok := r.value(v, owl.RDFType); ok {
			if iri, ok := t.(quad.IRI); ok && owl.IRI(iri) == owl.RDFSDatatype {
				return true
			}
		}
	}
	return false
}

func (r *graphReader) objectProperty(v quad.Value) (owl.ObjectPropertyExpression, error) {
	switch v := v.(type) {
	case quad.IRI:
		return owl.ObjectProperty(v), nil
	case quad.BNode:
		inv, ok := r.value(v, owl.OWLInverseOf)
		if !ok {
			return nil, fmt.Errorf("ontology: blank property node %v has no owl:inverseOf", v)
		}
		iri, ok := inv.(quad.IRI)
		if !ok {
			return nil, fmt.Errorf("ontology: owl:inverseOf of %v is not named", v)
		}
		return owl.ObjectInverseOf{Property: owl.ObjectProperty(iri)}, nil
	}
	return nil, fmt.Errorf("ontology: %v is not a property expression", v)
}

func (r *graphReader) literal(v quad.Value) (owl.Literal, error) {
	lit, ok := owl.LiteralFromQuad(v)
	if !ok {
		return owl.Literal{}, fmt.Errorf("ontology: %v is not a literal", v)
	}
	return lit, nil
}

func (r *graphReader) cardinality(v quad.Value) (int, error) {
	lit, err := r.literal(v)
	if err != nil {
		return 0, err
	}
	n, err := lit.Int()
	if err != nil {
		return 0, fmt.Errorf("ontology: bad cardinality %v: %v", v, err)
	}
	return int(n), nil
}

func (r *graphReader) classList(head quad.Value) ([]owl.ClassExpression, error) {
	vs, err := r.list(head)
	if err != nil {
		return nil, err
	}
	out := make([]owl.ClassExpression, len(vs))
	for i, v := range vs {
		if out[i], err = r.class(v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *graphReader) rangeList(head quad.Value) ([]owl.DataRange, error) {
	vs, err := r.list(head)
	if err != nil {
		return nil, err
	}
	out := make([]owl.DataRange, len(vs))
	for i, v := range vs {
		if out[i], err = r.dataRange(v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// class decodes a class expression node.
func (r *graphReader) class(v quad.Value) (owl.ClassExpression, error) {
	switch v := v.(type) {
	case quad.IRI:
		return owl.Class(v), nil
	case quad.BNode:
		if r.walking[v.String()] {
			return nil, fmt.Errorf("ontology: cyclic class expression at %v", v)
		}
		r.walking[v.String()] = true
		defer delete(r.walking, v.String())
		if _, ok := r.value(v, owl.OWLOnProperty); ok {
			return r.restriction(v)
		}
		if head, ok := r.value(v, owl.OWLIntersectionOf); ok {
			ops, err := r.classList(head)
			if err != nil {
				return nil, err
			}
			return owl.ObjectIntersectionOf(ops), nil
		}
		if head, ok := r.value(v, owl.OWLUnionOf); ok {
			ops, err := r.classList(head)
			if err != nil {
				return nil, err
			}
			return owl.ObjectUnionOf(ops), nil
		}
		if op, ok := r.value(v, owl.OWLComplementOf); ok {
			inner, err := r.class(op)
			if err != nil {
				return nil, err
			}
			return owl.ObjectComplementOf{Operand: inner}, nil
		}
		if head, ok := r.value(v, owl.OWLOneOf); ok {
			vs, err := r.list(head)
			if err != nil {
				return nil, err
			}
			inds := make([]owl.NamedIndividual, len(vs))
			for i, m := range vs {
				iri, ok := m.(quad.IRI)
				if !ok {
					return nil, fmt.Errorf("ontology: owl:oneOf member %v is not named", m)
				}
				inds[i] = owl.NamedIndividual(iri)
			}
			return owl.ObjectOneOf(inds), nil
		}
	}
	return nil, fmt.Errorf("ontology: %v is not a class expression", v)
}

// restriction decodes an owl:Restriction blank node, dispatching on
// which restricting predicate is present and whether the property and
// filler are data or object flavored.
func (r *graphReader) restriction(v quad.BNode) (owl.ClassExpression, error) {
	on, _ := r.value(v, owl.OWLOnProperty)
	dataProp := false
	if iri, ok := on.(quad.IRI); ok && r.dataProps[owl.IRI(iri)] {
		dataProp = true
	}

	if filler, ok := r.value(v, owl.OWLSomeValuesFrom); ok {
		return r.quantified(on, filler, dataProp, true)
	}
	if filler, ok := r.value(v, owl.OWLAllValuesFrom); ok {
		return r.quantified(on, filler, dataProp, false)
	}
	if val, ok := r.value(v, owl.OWLHasValue); ok {
		if lit, ok := owl.LiteralFromQuad(val); ok {
			iri, ok := on.(quad.IRI)
			if !ok {
				return nil, fmt.Errorf("ontology: data restriction on anonymous property %v", on)
			}
			return owl.DataHasValue{Property: owl.DataProperty(iri), Value: lit}, nil
		}
		p, err := r.objectProperty(on)
		if err != nil {
			return nil, err
		}
		iri, ok := val.(quad.IRI)
		if !ok {
			return nil, fmt.Errorf("ontology: owl:hasValue %v is not named", val)
		}
		return owl.ObjectHasValue{Property: p, Individual: owl.NamedIndividual(iri)}, nil
	}
	if _, ok := r.value(v, owl.OWLHasSelf); ok {
		p, err := r.objectProperty(on)
		if err != nil {
			return nil, err
		}
		return owl.ObjectHasSelf{Property: p}, nil
	}

	type card struct {
		pred      owl.IRI
		qualified bool
		kind      int
	}
	for _, c := range []card{
		{owl.OWLMinCardinality, false, 0},
		{owl.OWLMinQualifiedCardinality, true, 0},
		{owl.OWLMaxCardinality, false, 1},
		{owl.OWLMaxQualifiedCardinality, true, 1},
		{owl.OWLCardinality, false, 2},
		{owl.OWLQualifiedCardinality, true, 2},
	} {
		nv, ok := r.value(v, c.pred)
		if !ok {
			continue
		}
		n, err := r.cardinality(nv)
		if err != nil {
			return nil, err
		}
		if drv, ok := r.value(v, owl.OWLOnDataRange); ok && c.qualified {
			return r.dataCardinality(on, n, c.kind, drv)
		}
		if cv, ok := r.value(v, owl.OWLOnClass); ok && c.qualified {
			return r.objectCardinality(on, n, c.kind, cv)
		}
		if dataProp {
			return r.dataCardinality(on, n, c.kind, nil)
		}
		return r.objectCardinality(on, n, c.kind, nil)
	}
	return nil, fmt.Errorf("ontology: restriction %v has no restricting predicate", v)
}

func (r *graphReader) quantified(on, filler quad.Value, dataProp, existential bool) (owl.ClassExpression, error) {
	if dataProp || r.isDataRangeNode(filler) {
		iri, ok := on.(quad.IRI)
		if !ok {
			return nil, fmt.Errorf("ontology: data restriction on anonymous property %v", on)
		}
		dr, err := r.dataRange(filler)
		if err != nil {
			return nil, err
		}
		if existential {
			return owl.DataSomeValuesFrom{Property: owl.DataProperty(iri), Filler: dr}, nil
		}
		return owl.DataAllValuesFrom{Property: owl.DataProperty(iri), Filler: dr}, nil
	}
	p, err := r.objectProperty(on)
	if err != nil {
		return nil, err
	}
	ce, err := r.class(filler)
	if err != nil {
		return nil, err
	}
	if existential {
		return owl.ObjectSomeValuesFrom{Property: p, Filler: ce}, nil
	}
	return owl.ObjectAllValuesFrom{Property: p, Filler: ce}, nil
}

func (r *graphReader) objectCardinality(on quad.Value, n, kind int, filler quad.Value) (owl.ClassExpression, error) {
	p, err := r.objectProperty(on)
	if err != nil {
		return nil, err
	}
	ce := owl.ClassExpression(owl.Thing)
	if filler != nil {
		if ce, err = r.class(filler); err != nil {
			return nil, err
		}
	}
	switch kind {
	case 0:
		return owl.ObjectMinCardinality{N: n, Property: p, Filler: ce}, nil
	case 1:
		return owl.ObjectMaxCardinality{N: n, Property: p, Filler: ce}, nil
	default:
		return owl.ObjectExactCardinality{N: n, Property: p, Filler: ce}, nil
	}
}

func (r *graphReader) dataCardinality(on quad.Value, n, kind int, filler quad.Value) (owl.ClassExpression, error) {
	iri, ok := on.(quad.IRI)
	if !ok {
		return nil, fmt.Errorf("ontology: data restriction on anonymous property %v", on)
	}
	p := owl.DataProperty(iri)
	dr := owl.DataRange(owl.TopDatatype)
	if filler != nil {
		var err error
		if dr, err = r.dataRange(filler); err != nil {
			return nil, err
		}
	}
	switch kind {
	case 0:
		return owl.DataMinCardinality{N: n, Property: p, Filler: dr}, nil
	case 1:
		return owl.DataMaxCardinality{N: n, Property: p, Filler: dr}, nil
	default:
		return owl.DataExactCardinality{N: n, Property: p, Filler: dr}, nil
	}
}

// dataRange decodes a data range node.
func (r *graphReader) dataRange(v quad.Value) (owl.DataRange, error) {
	switch v := v.(type) {
	case quad.IRI:
		return owl.Datatype(v), nil
	case quad.BNode:
		if r.walking[v.String()] {
			return nil, fmt.Errorf("ontology: cyclic data range at %v", v)
		}
		r.walking[v.String()] = true
		defer delete(r.walking, v.String())
		if op, ok := r.value(v, owl.OWLDatatypeComplementOf); ok {
			inner, err := r.dataRange(op)
			if err != nil {
				return nil, err
			}
			return owl.DataComplementOf{Operand: inner}, nil
		}
		if head, ok := r.value(v, owl.OWLIntersectionOf); ok {
			ops, err := r.rangeList(head)
			if err != nil {
				return nil, err
			}
			return owl.DataIntersectionOf(ops), nil
		}
		if head, ok := r.value(v, owl.OWLUnionOf); ok {
			ops, err := r.rangeList(head)
			if err != nil {
				return nil, err
			}
			return owl.DataUnionOf(ops), nil
		}
		if head, ok := r.value(v, owl.OWLOneOf); ok {
			vs, err := r.list(head)
			if err != nil {
				return nil, err
			}
			lits := make([]owl.Literal, len(vs))
			for i, m := range vs {
				if lits[i], err = r.literal(m); err != nil {
					return nil, err
				}
			}
			return owl.DataOneOf(lits), nil
		}
		if base, ok := r.value(v, owl.OWLOnDatatype); ok {
			iri, ok := base.(quad.IRI)
			if !ok {
				return nil, fmt.Errorf("ontology: owl:onDatatype %v is not named", base)
			}
			head, ok := r.value(v, owl.OWLWithRestrictions)
			if !ok {
				return nil, fmt.Errorf("ontology: datatype restriction %v has no facets", v)
			}
			vs, err := r.list(head)
			if err != nil {
				return nil, err
			}
			frs := make([]owl.FacetRestriction, 0, len(vs))
			for _, fv := range vs {
				fr, err := r.facet(fv)
				if err != nil {
					return nil, err
				}
				frs = append(frs, fr)
			}
			return owl.DatatypeRestriction{Datatype: owl.Datatype(iri), Restrictions: frs}, nil
		}
	}
	return nil, fmt.Errorf("ontology: %v is not a data range", v)
}

func (r *graphReader) facet(v quad.Value) (owl.FacetRestriction, error) {
	for _, f := range owl.AllFacets {
		val, ok := r.value(v, f.IRI())
		if !ok {
			continue
		}
		lit, err := r.literal(val)
		if err != nil {
			return owl.FacetRestriction{}, err
		}
		return owl.FacetRestriction{Facet: f, Value: lit}, nil
	}
	return owl.FacetRestriction{}, fmt.Errorf("ontology: facet node %v has no known facet", v)
}

// ontology walks the triples in input order and reconstructs axioms.
func (r *graphReader) ontology() (*Ontology, error) {
	onto := New("")
	for _, q := range r.quads {
		pred, ok := q.Predicate.(quad.IRI)
		if !ok {
			continue
		}
		if bn, ok := q.Subject.(quad.BNode); ok {
			if r.referenced[bn.String()] {
				continue
			}
			switch owl.IRI(pred) {
			case owl.RDFType:
				ax, err := r.reified(bn, q.Object)
				if err != nil {
					return nil, err
				}
				if ax != nil {
					onto.Add(ax)
				}
			case owl.RDFSSubClassOf, owl.OWLEquivalentClass, owl.OWLDisjointWith:
				// A general class axiom with an anonymous left side.
				left, err := r.class(bn)
				if err != nil {
					return nil, err
				}
				right, err := r.class(q.Object)
				if err != nil {
					return nil, err
				}
				switch owl.IRI(pred) {
				case owl.RDFSSubClassOf:
					onto.Add(owl.SubClassOf{Sub: left, Super: right})
				case owl.OWLEquivalentClass:
					onto.Add(owl.EquivalentClasses{left, right})
				default:
					onto.Add(owl.DisjointClasses{left, right})
				}
			}
			continue
		}
		subj, ok := q.Subject.(quad.IRI)
		if !ok {
			continue
		}
		axs, err := r.axioms(owl.IRI(subj), owl.IRI(pred), q.Object, onto)
		if err != nil {
			return nil, err
		}
		onto.Add(axs...)
	}
	return onto, nil
}

// reified decodes axioms carried by a root blank node.
func (r *graphReader) reified(bn quad.BNode, typ quad.Value) (owl.Axiom, error) {
	t, ok := typ.(quad.IRI)
	if !ok {
		return nil, nil
	}
	switch owl.IRI(t) {
	case owl.OWLAllDisjointClasses:
		head, ok := r.value(bn, owl.OWLMembers)
		if !ok {
			return nil, fmt.Errorf("ontology: %v has no owl:members", bn)
		}
		ops, err := r.classList(head)
		if err != nil {
			return nil, err
		}
		return owl.DisjointClasses(ops), nil
	case owl.OWLAllDisjointProperties:
		head, ok := r.value(bn, owl.OWLMembers)
		if !ok {
			return nil, fmt.Errorf("ontology: %v has no owl:members", bn)
		}
		vs, err := r.list(head)
		if err != nil {
			return nil, err
		}
		if len(vs) > 0 {
			if iri, ok := vs[0].(quad.IRI); ok && r.dataProps[owl.IRI(iri)] {
				props := make([]owl.DataProperty, len(vs))
				for i, v := range vs {
					m, ok := v.(quad.IRI)
					if !ok {
						return nil, fmt.Errorf("ontology: disjoint member %v is not named", v)
					}
					props[i] = owl.DataProperty(m)
				}
				return owl.DisjointDataProperties(props), nil
			}
		}
		props := make([]owl.ObjectPropertyExpression, len(vs))
		for i, v := range vs {
			p, err := r.objectProperty(v)
			if err != nil {
				return nil, err
			}
			props[i] = p
		}
		return owl.DisjointObjectProperties(props), nil
	case owl.OWLAllDifferent:
		head, ok := r.value(bn, owl.OWLDistinctMembers)
		if !ok {
			head, ok = r.value(bn, owl.OWLMembers)
		}
		if !ok {
			return nil, fmt.Errorf("ontology: %v has no distinct members", bn)
		}
		vs, err := r.list(head)
		if err != nil {
			return nil, err
		}
		inds := make([]owl.NamedIndividual, len(vs))
		for i, v := range vs {
			iri, ok := v.(quad.IRI)
			if !ok {
				return nil, fmt.Errorf("ontology: distinct member %v is not named", v)
			}
			inds[i] = owl.NamedIndividual(iri)
		}
		return owl.DifferentIndividuals(inds), nil
	case owl.OWLNegativePropertyAssertion:
		src, ok := r.value(bn, owl.OWLSourceIndividual)
		if !ok {
			return nil, fmt.Errorf("ontology: %v has no owl:sourceIndividual", bn)
		}
		siri, ok := src.(quad.IRI)
		if !ok {
			return nil, fmt.Errorf("ontology: source individual %v is not named", src)
		}
		pv, ok := r.value(bn, owl.OWLAssertionProperty)
		if !ok {
			return nil, fmt.Errorf("ontology: %v has no owl:assertionProperty", bn)
		}
		if tv, ok := r.value(bn, owl.OWLTargetValue); ok {
			lit, err := r.literal(tv)
			if err != nil {
				return nil, err
			}
			piri, ok := pv.(quad.IRI)
			if !ok {
				return nil, fmt.Errorf("ontology: assertion property %v is not named", pv)
			}
			return owl.NegativeDataPropertyAssertion{
				Subject:  owl.NamedIndividual(siri),
				Property: owl.DataProperty(piri),
				Value:    lit,
			}, nil
		}
		tv, ok := r.value(bn, owl.OWLTargetIndividual)
		if !ok {
			return nil, fmt.Errorf("ontology: %v has no assertion target", bn)
		}
		tiri, ok := tv.(quad.IRI)
		if !ok {
			return nil, fmt.Errorf("ontology: target individual %v is not named", tv)
		}
		p, err := r.objectProperty(pv)
		if err != nil {
			return nil, err
		}
		return owl.NegativeObjectPropertyAssertion{
			Subject:  owl.NamedIndividual(siri),
			Property: p,
			Object:   owl.NamedIndividual(tiri),
		}, nil
	}
	return nil, nil
}

// axioms decodes the axioms carried by a single triple with a named
// subject. Declarations for the entity type triples come out here too.
func (r *graphReader) axioms(subj, pred owl.IRI, obj quad.Value, onto *Ontology) ([]owl.Axiom, error) {
	one := func(ax owl.Axiom) ([]owl.Axiom, error) { return []owl.Axiom{ax}, nil }
	switch pred {
	case owl.RDFType:
		return r.typeAxioms(subj, obj, onto)
	case owl.RDFSSubClassOf:
		sub, err := r.class(quad.IRI(subj))
		if err != nil {
			return nil, err
		}
		super, err := r.class(obj)
		if err != nil {
			return nil, err
		}
		return one(owl.SubClassOf{Sub: sub, Super: super})
	case owl.OWLEquivalentClass:
		if r.datatypes[subj] {
			dr, err := r.dataRange(obj)
			if err != nil {
				return nil, err
			}
			return one(owl.DatatypeDefinition{Datatype: owl.Datatype(subj), Range: dr})
		}
		other, err := r.class(obj)
		if err != nil {
			return nil, err
		}
		return one(owl.EquivalentClasses{owl.Class(subj), other})
	case owl.OWLDisjointWith:
		other, err := r.class(obj)
		if err != nil {
			return nil, err
		}
		return one(owl.DisjointClasses{owl.Class(subj), other})
	case owl.OWLDisjointUnionOf:
		ops, err := r.classList(obj)
		if err != nil {
			return nil, err
		}
		return one(owl.DisjointUnion{Class: owl.Class(subj), Operands: ops})
	case owl.RDFSSubPropertyOf:
		piri, ok := obj.(quad.IRI)
		switch {
		case r.isAnnotationProperty(subj):
			if !ok {
				return nil, fmt.Errorf("ontology: super property %v is not named", obj)
			}
			return one(owl.SubAnnotationPropertyOf{
				Sub: owl.AnnotationProperty(subj), Super: owl.AnnotationProperty(piri),
			})
		case r.dataProps[subj]:
			if !ok {
				return nil, fmt.Errorf("ontology: super property %v is not named", obj)
			}
			return one(owl.SubDataPropertyOf{
				Sub: owl.DataProperty(subj), Super: owl.DataProperty(piri),
			})
		default:
			super, err := r.objectProperty(obj)
			if err != nil {
				return nil, err
			}
			return one(owl.SubObjectPropertyOf{Sub: owl.ObjectProperty(subj), Super: super})
		}
	case owl.OWLEquivalentProperty:
		if r.dataProps[subj] {
			piri, ok := obj.(quad.IRI)
			if !ok {
				return nil, fmt.Errorf("ontology: equivalent property %v is not named", obj)
			}
			return one(owl.EquivalentDataProperties{owl.DataProperty(subj), owl.DataProperty(piri)})
		}
		other, err := r.objectProperty(obj)
		if err != nil {
			return nil, err
		}
		return one(owl.EquivalentObjectProperties{owl.ObjectProperty(subj), other})
	case owl.OWLPropertyDisjointWith:
		if r.dataProps[subj] {
			piri, ok := obj.(quad.IRI)
			if !ok {
				return nil, fmt.Errorf("ontology: disjoint property %v is not named", obj)
			}
			return one(owl.DisjointDataProperties{owl.DataProperty(subj), owl.DataProperty(piri)})
		}
		other, err := r.objectProperty(obj)
		if err != nil {
			return nil, err
		}
		return one(owl.DisjointObjectProperties{owl.ObjectProperty(subj), other})
	case owl.OWLInverseOf:
		other, err := r.objectProperty(obj)
		if err != nil {
			return nil, err
		}
		return one(owl.InverseObjectProperties{First: owl.ObjectProperty(subj), Second: other})
	case owl.RDFSDomain:
		ce, err := r.class(obj)
		if err != nil {
			return nil, err
		}
		switch {
		case r.isAnnotationProperty(subj):
			iri, ok := obj.(quad.IRI)
			if !ok {
				return nil, fmt.Errorf("ontology: annotation domain %v is not an IRI", obj)
			}
			return one(owl.AnnotationPropertyDomain{
				Property: owl.AnnotationProperty(subj), Domain: owl.IRI(iri),
			})
		case r.dataProps[subj]:
			return one(owl.DataPropertyDomain{Property: owl.DataProperty(subj), Domain: ce})
		default:
			return one(owl.ObjectPropertyDomain{Property: owl.ObjectProperty(subj), Domain: ce})
		}
	case owl.RDFSRange:
		switch {
		case r.isAnnotationProperty(subj):
			iri, ok := obj.(quad.IRI)
			if !ok {
				return nil, fmt.Errorf("ontology: annotation range %v is not an IRI", obj)
			}
			return one(owl.AnnotationPropertyRange{
				Property: owl.AnnotationProperty(subj), Range: owl.IRI(iri),
			})
		case r.dataProps[subj]:
			dr, err := r.dataRange(obj)
			if err != nil {
				return nil, err
			}
			return one(owl.DataPropertyRange{Property: owl.DataProperty(subj), Range: dr})
		default:
			ce, err := r.class(obj)
			if err != nil {
				return nil, err
			}
			return one(owl.ObjectPropertyRange{Property: owl.ObjectProperty(subj), Range: ce})
		}
	case owl.OWLHasKey:
		vs, err := r.list(obj)
		if err != nil {
			return nil, err
		}
		key := owl.HasKey{Class: owl.Class(subj)}
		for _, v := range vs {
			iri, ok := v.(quad.IRI)
			if ok && r.dataProps[owl.IRI(iri)] {
				key.DataProperties = append(key.DataProperties, owl.DataProperty(iri))
				continue
			}
			p, err := r.objectProperty(v)
			if err != nil {
				return nil, err
			}
			key.ObjectProperties = append(key.ObjectProperties, p)
		}
		return one(key)
	case owl.OWLSameAs:
		iri, ok := obj.(quad.IRI)
		if !ok {
			return nil, fmt.Errorf("ontology: owl:sameAs target %v is not named", obj)
		}
		return one(owl.SameIndividual{owl.NamedIndividual(subj), owl.NamedIndividual(iri)})
	case owl.OWLDifferentFrom:
		iri, ok := obj.(quad.IRI)
		if !ok {
			return nil, fmt.Errorf("ontology: owl:differentFrom target %v is not named", obj)
		}
		return one(owl.DifferentIndividuals{owl.NamedIndividual(subj), owl.NamedIndividual(iri)})
	}

	if r.isAnnotationProperty(pred) {
		var value owl.AnnotationValue
		if lit, ok := owl.LiteralFromQuad(obj); ok {
			value = lit
		} else if iri, ok := obj.(quad.IRI); ok {
			value = owl.IRI(iri)
		} else {
			return nil, nil
		}
		return one(owl.AnnotationAssertion{
			Subject:  subj,
			Property: owl.AnnotationProperty(pred),
			Value:    value,
		})
	}
	if lit, ok := owl.LiteralFromQuad(obj); ok {
		return one(owl.DataPropertyAssertion{
			Subject:  owl.NamedIndividual(subj),
			Property: owl.DataProperty(pred),
			Value:    lit,
		})
	}
	if iri, ok := obj.(quad.IRI); ok {
		return one(owl.ObjectPropertyAssertion{
			Subject:  owl.NamedIndividual(subj),
			Property: owl.ObjectProperty(pred),
			Object:   owl.NamedIndividual(iri),
		})
	}
	return nil, nil
}

// typeAxioms handles rdf:type triples on named subjects: declarations,
// property characteristics, the ontology header, and class assertions.
func (r *graphReader) typeAxioms(subj owl.IRI, obj quad.Value, onto *Ontology) ([]owl.Axiom, error) {
	iri, ok := obj.(quad.IRI)
	if !ok {
		ce, err := r.class(obj)
		if err != nil {
			return nil, err
		}
		return []owl.Axiom{owl.ClassAssertion{Class: ce, Individual: owl.NamedIndividual(subj)}}, nil
	}
	switch owl.IRI(iri) {
	case owl.OWLOntologyIRI:
		onto.SetIRI(subj)
		return nil, nil
	case owl.OWLClassIRI:
		return []owl.Axiom{owl.Declaration{Entity: owl.Class(subj)}}, nil
	case owl.OWLObjectPropertyIRI:
		return []owl.Axiom{owl.Declaration{Entity: owl.ObjectProperty(subj)}}, nil
	case owl.OWLDatatypePropertyIRI:
		return []owl.Axiom{owl.Declaration{Entity: owl.DataProperty(subj)}}, nil
	case owl.OWLAnnotationPropertyIRI:
		return []owl.Axiom{owl.Declaration{Entity: owl.AnnotationProperty(subj)}}, nil
	case owl.OWLNamedIndividualIRI:
		return []owl.Axiom{owl.Declaration{Entity: owl.NamedIndividual(subj)}}, nil
	case owl.RDFSDatatype:
		return []owl.Axiom{owl.Declaration{Entity: owl.Datatype(subj)}}, nil
	case owl.OWLFunctionalProperty:
		if r.dataProps[subj] {
			return []owl.Axiom{owl.FunctionalDataProperty{Property: owl.DataProperty(subj)}}, nil
		}
		return []owl.Axiom{owl.ObjectPropertyCharacteristic{
			Property: owl.ObjectProperty(subj), Characteristic: owl.Functional,
		}}, nil
	}
	if ch, ok := owl.CharacteristicFromIRI(owl.IRI(iri)); ok {
		return []owl.Axiom{owl.ObjectPropertyCharacteristic{
			Property: owl.ObjectProperty(subj), Characteristic: ch,
		}}, nil
	}
	ce, err := r.class(obj)
	if err != nil {
		return nil, err
	}
	return []owl.Axiom{owl.ClassAssertion{Class: ce, Individual: owl.NamedIndividual(subj)}}, nil
}
