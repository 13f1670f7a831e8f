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

// Quads serializes the ontology into an RDF graph following the OWL 2
// mapping to RDF. Anonymous expressions become blank nodes.
func (o *Ontology) Quads() []quad.Quad {
	w := &graphWriter{}
	if o.iri != "" {
		w.emit(o.iri.Quad(), owl.RDFType.Quad(), owl.OWLOntologyIRI.Quad())
	}
	for _, ax := range o.axioms {
		w.axiom(ax)
	}
	return w.quads
}

type graphWriter struct {
	quads []quad.Quad
	blank int
}

func (w *graphWriter) emit(s, p, o quad.Value) {
	w.quads = append(w.quads, quad.Quad{Subject: s, Predicate: p, Object: o})
}

func (w *graphWriter) newBlank() quad.BNode {
	w.blank++
	return quad.BNode(fmt.Sprintf("b%d", w.blank))
}

// list encodes an rdf:first/rdf:rest chain and returns its head.
func (w *graphWriter) list(values []quad.Value) quad.Value {
	head := quad.Value(owl.RDFNil.Quad())
	for i := len(values) - 1; i >= 0; i-- {
		node := w.newBlank()
		w.emit(node, owl.RDFFirst.Quad(), values[i])
		w.emit(node, owl.RDFRest.Quad(), head)
		head = node
	}
	return head
}

func (w *graphWriter) classList(ops []owl.ClassExpression) quad.Value {
	values := make([]quad.Value, len(ops))
	for i, op := range ops {
		values[i] = w.class(op)
	}
	return w.list(values)
}

func (w *graphWriter) rangeList(ranges []owl.DataRange) quad.Value {
	values := make([]quad.Value, len(ranges))
	for i, dr := range ranges {
		values[i] = w.dataRange(dr)
	}
	return w.list(values)
}

// class returns the RDF node for a class expression, emitting the
// triples that describe it when it is anonymous.
func (w *graphWriter) class(ce owl.ClassExpression) quad.Value {
	switch ce := ce.(type) {
	case owl.Class:
		return owl.IRI(ce).Quad()
	case owl.ObjectIntersectionOf:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLClassIRI.Quad())
		w.emit(node, owl.OWLIntersectionOf.Quad(), w.classList(ce))
		return node
	case owl.ObjectUnionOf:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLClassIRI.Quad())
		w.emit(node, owl.OWLUnionOf.Quad(), w.classList(ce))
		return node
	case owl.ObjectComplementOf:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLClassIRI.Quad())
		w.emit(node, owl.OWLComplementOf.Quad(), w.class(ce.Operand))
		return node
	case owl.ObjectOneOf:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLClassIRI.Quad())
		values := make([]quad.Value, len(ce))
		for i, ind := range ce {
			values[i] = owl.IRI(ind).Quad()
		}
		w.emit(node, owl.OWLOneOf.Quad(), w.list(values))
		return node
	case owl.ObjectSomeValuesFrom:
		node := w.restriction(ce.Property)
		w.emit(node, owl.OWLSomeValuesFrom.Quad(), w.class(ce.Filler))
		return node
	case owl.ObjectAllValuesFrom:
		node := w.restriction(ce.Property)
		w.emit(node, owl.OWLAllValuesFrom.Quad(), w.class(ce.Filler))
		return node
	case owl.ObjectHasValue:
		node := w.restriction(ce.Property)
		w.emit(node, owl.OWLHasValue.Quad(), owl.IRI(ce.Individual).Quad())
		return node
	case owl.ObjectHasSelf:
		node := w.restriction(ce.Property)
		w.emit(node, owl.OWLHasSelf.Quad(), owl.BoolLiteral(true).Quad())
		return node
	case owl.ObjectMinCardinality:
		return w.objectCardinality(ce.Property, ce.Filler, ce.N,
			owl.OWLMinCardinality, owl.OWLMinQualifiedCardinality)
	case owl.ObjectMaxCardinality:
		return w.objectCardinality(ce.Property, ce.Filler, ce.N,
			owl.OWLMaxCardinality, owl.OWLMaxQualifiedCardinality)
	case owl.ObjectExactCardinality:
		return w.objectCardinality(ce.Property, ce.Filler, ce.N,
			owl.OWLCardinality, owl.OWLQualifiedCardinality)
	case owl.DataSomeValuesFrom:
		node := w.dataRestriction(ce.Property)
		w.emit(node, owl.OWLSomeValuesFrom.Quad(), w.dataRange(ce.Filler))
		return node
	case owl.DataAllValuesFrom:
		node := w.dataRestriction(ce.Property)
		w.emit(node, owl.OWLAllValuesFrom.Quad(), w.dataRange(ce.Filler))
		return node
	case owl.DataHasValue:
		node := w.dataRestriction(ce.Property)
		w.emit(node, owl.OWLHasValue.Quad(), ce.Value.Quad())
		return node
	case owl.DataMinCardinality:
		return w.dataCardinality(ce.Property, ce.Filler, ce.N,
			owl.OWLMinCardinality, owl.OWLMinQualifiedCardinality)
	case owl.DataMaxCardinality:
		return w.dataCardinality(ce.Property, ce.Filler, ce.N,
			owl.OWLMaxCardinality, owl.OWLMaxQualifiedCardinality)
	case owl.DataExactCardinality:
		return w.dataCardinality(ce.Property, ce.Filler, ce.N,
			owl.OWLCardinality, owl.OWLQualifiedCardinality)
	}
	panic(fmt.Sprintf("ontology: cannot map %T to RDF", ce))
}

func (w *graphWriter) restriction(p owl.ObjectPropertyExpression) quad.BNode {
	node := w.newBlank()
	w.emit(node, owl.RDFType.Quad(), owl.OWLRestrictionIRI.Quad())
	w.emit(node, owl.OWLOnProperty.Quad(), w.property(p))
	return node
}

func (w *graphWriter) dataRestriction(p owl.DataProperty) quad.BNode {
	node := w.newBlank()
	w.emit(node, owl.RDFType.Quad(), owl.OWLRestrictionIRI.Quad())
	w.emit(node, owl.OWLOnProperty.Quad(), owl.IRI(p).Quad())
	return node
}

// property returns the RDF node for an object property expression; an
// inverse becomes a blank node with owl:inverseOf.
func (w *graphWriter) property(p owl.ObjectPropertyExpression) quad.Value {
	if inv, ok := p.(owl.ObjectInverseOf); ok {
		node := w.newBlank()
		w.emit(node, owl.OWLInverseOf.Quad(), owl.IRI(inv.Property).Quad())
		return node
	}
	return owl.IRI(p.Named()).Quad()
}

func nonNegative(n int) quad.Value {
	return owl.NewLiteral(fmt.Sprintf("%d", n), owl.Datatype(owl.XSDNonNegativeInteger)).Quad()
}

func (w *graphWriter) objectCardinality(p owl.ObjectPropertyExpression, filler owl.ClassExpression,
	n int, plain, qualified owl.IRI) quad.Value {
	node := w.restriction(p)
	if owl.Equal(filler, owl.Thing) {
		w.emit(node, plain.Quad(), nonNegative(n))
	} else {
		w.emit(node, qualified.Quad(), nonNegative(n))
		w.emit(node, owl.OWLOnClass.Quad(), w.class(filler))
	}
	return node
}

func (w *graphWriter) dataCardinality(p owl.DataProperty, filler owl.DataRange,
	n int, plain, qualified owl.IRI) quad.Value {
	node := w.dataRestriction(p)
	if owl.Equal(filler, owl.TopDatatype) {
		w.emit(node, plain.Quad(), nonNegative(n))
	} else {
		w.emit(node, qualified.Quad(), nonNegative(n))
		w.emit(node, owl.OWLOnDataRange.Quad(), w.dataRange(filler))
	}
	return node
}

// dataRange returns the RDF node for a data range, emitting structural
// triples for anonymous ranges.
func (w *graphWriter) dataRange(dr owl.DataRange) quad.Value {
	switch dr := dr.(type) {
	case owl.Datatype:
		return owl.IRI(dr).Quad()
	case owl.DataComplementOf:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.RDFSDatatype.Quad())
		w.emit(node, owl.OWLDatatypeComplementOf.Quad(), w.dataRange(dr.Operand))
		return node
	case owl.DataIntersectionOf:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.RDFSDatatype.Quad())
		w.emit(node, owl.OWLIntersectionOf.Quad(), w.rangeList(dr))
		return node
	case owl.DataUnionOf:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.RDFSDatatype.Quad())
		w.emit(node, owl.OWLUnionOf.Quad(), w.rangeList(dr))
		return node
	case owl.DataOneOf:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.RDFSDatatype.Quad())
		values := make([]quad.Value, len(dr))
		for i, v := range dr {
			values[i] = v.Quad()
		}
		w.emit(node, owl.OWLOneOf.Quad(), w.list(values))
		return node
	case owl.DatatypeRestriction:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.RDFSDatatype.Quad())
		w.emit(node, owl.OWLOnDatatype.Quad(), owl.IRI(dr.Datatype).Quad())
		facets := make([]quad.Value, len(dr.Restrictions))
		for i, fr := range dr.Restrictions {
			fnode := w.newBlank()
			w.emit(fnode, fr.Facet.IRI().Quad(), fr.Value.Quad())
			facets[i] = fnode
		}
		w.emit(node, owl.OWLWithRestrictions.Quad(), w.list(facets))
		return node
	}
	panic(fmt.Sprintf("ontology: cannot map %T to RDF", dr))
}

func entityTypeIRI(e owl.Entity) owl.IRI {
	switch e.(type) {
	case owl.Class:
		return owl.OWLClassIRI
	case owl.ObjectProperty:
		return owl.OWLObjectPropertyIRI
	case owl.DataProperty:
		return owl.OWLDatatypePropertyIRI
	case owl.AnnotationProperty:
		return owl.OWLAnnotationPropertyIRI
	case owl.NamedIndividual:
		return owl.OWLNamedIndividualIRI
	case owl.Datatype:
		return owl.RDFSDatatype
	}
	panic(fmt.Sprintf("ontology: unknown entity %T", e))
}

func (w *graphWriter) annotationValue(v owl.AnnotationValue) quad.Value {
	switch v := v.(type) {
	case owl.IRI:
		return v.Quad()
	case owl.Literal:
		return v.Quad()
	}
	panic(fmt.Sprintf("ontology: unknown annotation value %T", v))
}

// pairwise emits s rel o for consecutive operand pairs.
func (w *graphWriter) pairwise(values []quad.Value, rel owl.IRI) {
	for i := 0; i+1 < len(values); i++ {
		w.emit(values[i], rel.Quad(), values[i+1])
	}
}

func (w *graphWriter) axiom(ax owl.Axiom) {
	switch ax := ax.(type) {
	case owl.Declaration:
		w.emit(ax.Entity.IRI().Quad(), owl.RDFType.Quad(), entityTypeIRI(ax.Entity).Quad())
	case owl.SubClassOf:
		w.emit(w.class(ax.Sub), owl.RDFSSubClassOf.Quad(), w.class(ax.Super))
	case owl.EquivalentClasses:
		values := make([]quad.Value, len(ax))
		for i, ce := range ax {
			values[i] = w.class(ce)
		}
		w.pairwise(values, owl.OWLEquivalentClass)
	case owl.DisjointClasses:
		if len(ax) == 2 {
			w.emit(w.class(ax[0]), owl.OWLDisjointWith.Quad(), w.class(ax[1]))
			return
		}
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLAllDisjointClasses.Quad())
		w.emit(node, owl.OWLMembers.Quad(), w.classList(ax))
	case owl.DisjointUnion:
		w.emit(owl.IRI(ax.Class).Quad(), owl.OWLDisjointUnionOf.Quad(), w.classList(ax.Operands))
	case owl.SubObjectPropertyOf:
		w.emit(w.property(ax.Sub), owl.RDFSSubPropertyOf.Quad(), w.property(ax.Super))
	case owl.EquivalentObjectProperties:
		values := make([]quad.Value, len(ax))
		for i, p := range ax {
			values[i] = w.property(p)
		}
		w.pairwise(values, owl.OWLEquivalentProperty)
	case owl.DisjointObjectProperties:
		if len(ax) == 2 {
			w.emit(w.property(ax[0]), owl.OWLPropertyDisjointWith.Quad(), w.property(ax[1]))
			return
		}
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLAllDisjointProperties.Quad())
		values := make([]quad.Value, len(ax))
		for i, p := range ax {
			values[i] = w.property(p)
		}
		w.emit(node, owl.OWLMembers.Quad(), w.list(values))
	case owl.InverseObjectProperties:
		w.emit(w.property(ax.First), owl.OWLInverseOf.Quad(), w.property(ax.Second))
	case owl.ObjectPropertyDomain:
		w.emit(w.property(ax.Property), owl.RDFSDomain.Quad(), w.class(ax.Domain))
	case owl.ObjectPropertyRange:
		w.emit(w.property(ax.Property), owl.RDFSRange.Quad(), w.class(ax.Range))
	case owl.ObjectPropertyCharacteristic:
		w.emit(w.property(ax.Property), owl.RDFType.Quad(), ax.Characteristic.ClassIRI().Quad())
	case owl.SubDataPropertyOf:
		w.emit(owl.IRI(ax.Sub).Quad(), owl.RDFSSubPropertyOf.Quad(), owl.IRI(ax.Super).Quad())
	case owl.EquivalentDataProperties:
		values := make([]quad.Value, len(ax))
		for i, p := range ax {
			values[i] = owl.IRI(p).Quad()
		}
		w.pairwise(values, owl.OWLEquivalentProperty)
	case owl.DisjointDataProperties:
		if len(ax) == 2 {
			w.emit(owl.IRI(ax[0]).Quad(), owl.OWLPropertyDisjointWith.Quad(), owl.IRI(ax[1]).Quad())
			return
		}
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLAllDisjointProperties.Quad())
		values := make([]quad.Value, len(ax))
		for i, p := range ax {
			values[i] = owl.IRI(p).Quad()
		}
		w.emit(node, owl.OWLMembers.Quad(), w.list(values))
	case owl.DataPropertyDomain:
		w.emit(owl.IRI(ax.Property).Quad(), owl.RDFSDomain.Quad(), w.class(ax.Domain))
	case owl.DataPropertyRange:
		w.emit(owl.IRI(ax.Property).Quad(), owl.RDFSRange.Quad(), w.dataRange(ax.Range))
	case owl.FunctionalDataProperty:
		w.emit(owl.IRI(ax.Property).Quad(), owl.RDFType.Quad(), owl.OWLFunctionalProperty.Quad())
	case owl.DatatypeDefinition:
		w.emit(owl.IRI(ax.Datatype).Quad(), owl.OWLEquivalentClass.Quad(), w.dataRange(ax.Range))
	case owl.HasKey:
		values := make([]quad.Value, 0, len(ax.ObjectProperties)+len(ax.DataProperties))
		for _, p := range ax.ObjectProperties {
			values = append(values, w.property(p))
		}
		for _, p := range ax.DataProperties {
			values = append(values, owl.IRI(p).Quad())
		}
		w.emit(w.class(ax.Class), owl.OWLHasKey.Quad(), w.list(values))
	case owl.ClassAssertion:
		w.emit(owl.IRI(ax.Individual).Quad(), owl.RDFType.Quad(), w.class(ax.Class))
	case owl.ObjectPropertyAssertion:
		s, o := ax.Subject, ax.Object
		if ax.Property.IsInverse() {
			s, o = o, s
		}
		w.emit(owl.IRI(s).Quad(), owl.IRI(ax.Property.Named()).Quad(), owl.IRI(o).Quad())
	case owl.NegativeObjectPropertyAssertion:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLNegativePropertyAssertion.Quad())
		w.emit(node, owl.OWLSourceIndividual.Quad(), owl.IRI(ax.Subject).Quad())
		w.emit(node, owl.OWLAssertionProperty.Quad(), w.property(ax.Property))
		w.emit(node, owl.OWLTargetIndividual.Quad(), owl.IRI(ax.Object).Quad())
	case owl.DataPropertyAssertion:
		w.emit(owl.IRI(ax.Subject).Quad(), owl.IRI(ax.Property).Quad(), ax.Value.Quad())
	case owl.NegativeDataPropertyAssertion:
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLNegativePropertyAssertion.Quad())
		w.emit(node, owl.OWLSourceIndividual.Quad(), owl.IRI(ax.Subject).Quad())
		w.emit(node, owl.OWLAssertionProperty.Quad(), owl.IRI(ax.Property).Quad())
		w.emit(node, owl.OWLTargetValue.Quad(), ax.Value.Quad())
	case owl.SameIndividual:
		values := make([]quad.Value, len(ax))
		for i, ind := range ax {
			values[i] = owl.IRI(ind).Quad()
		}
		w.pairwise(values, owl.OWLSameAs)
	case owl.DifferentIndividuals:
		if len(ax) == 2 {
			w.emit(owl.IRI(ax[0]).Quad(), owl.OWLDifferentFrom.Quad(), owl.IRI(ax[1]).Quad())
			return
		}
		node := w.newBlank()
		w.emit(node, owl.RDFType.Quad(), owl.OWLAllDifferent.Quad())
		values := make([]quad.Value, len(ax))
		for i, ind := range ax {
			values[i] = owl.IRI(ind).Quad()
		}
		w.emit(node, owl.OWLDistinctMembers.Quad(), w.list(values))
	case owl.AnnotationAssertion:
		w.emit(ax.Subject.Quad(), ax.Property.IRI().Quad(), w.annotationValue(ax.Value))
	case owl.SubAnnotationPropertyOf:
		w.emit(ax.Sub.IRI().Quad(), owl.RDFSSubPropertyOf.Quad(), ax.Super.IRI().Quad())
	case owl.AnnotationPropertyDomain:
		w.emit(ax.Property.IRI().Quad(), owl.RDFSDomain.Quad(), ax.Domain.Quad())
	case owl.AnnotationPropertyRange:
		w.emit(ax.Property.IRI().Quad(), owl.RDFSRange.Quad(), ax.Range.Quad())
	default:
		panic(fmt.Sprintf("ontology: cannot map %T to RDF", ax))
	}
}
