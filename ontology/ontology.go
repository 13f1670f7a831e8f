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

// Package ontology implements the axiom container and its RDF graph
// serialization.
package ontology

import (
	"github.com/owlgraph/owlgo/owl"
)

// Ontology is an ordered, duplicate-free collection of axioms. It is not
// safe for concurrent mutation; readers such as the reasoner snapshot
// the Version to detect changes.
type Ontology struct {
	iri     owl.IRI
	axioms  []owl.Axiom
	index   map[string]int
	version int64
}

// New returns an empty ontology. The IRI may be empty for an anonymous
// ontology.
func New(iri owl.IRI) *Ontology {
	return &Ontology{
		iri:   iri,
		index: make(map[string]int),
	}
}

// IRI returns the ontology IRI.
func (o *Ontology) IRI() owl.IRI { return o.iri }

// SetIRI changes the ontology IRI.
func (o *Ontology) SetIRI(iri owl.IRI) {
	o.iri = iri
	o.version++
}

// Len returns the number of axioms.
func (o *Ontology) Len() int { return len(o.axioms) }

// Version is a modification counter: it increases on every change, so
// caches keyed by it stay valid exactly until the next mutation.
func (o *Ontology) Version() int64 { return o.version }

// Contains reports whether the ontology holds a structurally equal axiom.
func (o *Ontology) Contains(ax owl.Axiom) bool {
	_, ok := o.index[ax.String()]
	return ok
}

// Add appends axioms, skipping structural duplicates, and returns the
// number actually added.
func (o *Ontology) Add(axioms ...owl.Axiom) int {
	added := 0
	for _, ax := range axioms {
		key := ax.String()
		if _, ok := o.index[key]; ok {
			continue
		}
		o.index[key] = len(o.axioms)
		o.axioms = append(o.axioms, ax)
		added++
	}
	if added > 0 {
		o.version++
	}
	return added
}

// Remove deletes axioms by structural equality and returns the number
// removed.
func (o *Ontology) Remove(axioms ...owl.Axiom) int {
	removed := 0
	for _, ax := range axioms {
		i, ok := o.index[ax.String()]
		if !ok {
			continue
		}
		o.axioms = append(o.axioms[:i], o.axioms[i+1:]...)
		delete(o.index, ax.String())
		for j := i; j < len(o.axioms); j++ {
			o.index[o.axioms[j].String()] = j
		}
		removed++
	}
	if removed > 0 {
		o.version++
	}
	return removed
}

// Axioms returns a copy of the axiom list in insertion order.
func (o *Ontology) Axioms() []owl.Axiom {
	out := make([]owl.Axiom, len(o.axioms))
	copy(out, o.axioms)
	return out
}

// TBox returns the terminological axioms.
func (o *Ontology) TBox() []owl.Axiom {
	var out []owl.Axiom
	for _, ax := range o.axioms {
		if owl.IsTBox(ax) {
			out = append(out, ax)
		}
	}
	return out
}

// ABox returns the assertional axioms.
func (o *Ontology) ABox() []owl.Axiom {
	var out []owl.Axiom
	for _, ax := range o.axioms {
		if owl.IsABox(ax) {
			out = append(out, ax)
		}
	}
	return out
}

// ReferencingAxioms returns the axioms whose signature contains the
// entity, in insertion order.
func (o *Ontology) ReferencingAxioms(e owl.Entity) []owl.Axiom {
	var out []owl.Axiom
	for _, ax := range o.axioms {
		for _, se := range owl.SignatureOf(ax) {
			if se.IRI() == e.IRI() {
				out = append(out, ax)
				break
			}
		}
	}
	return out
}

// Signature returns every entity occurring in the ontology, in first
// occurrence order.
func (o *Ontology) Signature() []owl.Entity {
	var (
		out  []owl.Entity
		seen = map[string]bool{}
	)
	for _, ax := range o.axioms {
		for _, e := range owl.SignatureOf(ax) {
			if !seen[e.String()] {
				seen[e.String()] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// Classes returns the named classes in the signature.
func (o *Ontology) Classes() []owl.Class {
	var out []owl.Class
	for _, e := range o.Signature() {
		if c, ok := e.(owl.Class); ok {
			out = append(out, c)
		}
	}
	return out
}

// ObjectProperties returns the object properties in the signature.
func (o *Ontology) ObjectProperties() []owl.ObjectProperty {
	var out []owl.ObjectProperty
	for _, e := range o.Signature() {
		if p, ok := e.(owl.ObjectProperty); ok {
			out = append(out, p)
		}
	}
	return out
}

// DataProperties returns the data properties in the signature.
func (o *Ontology) DataProperties() []owl.DataProperty {
	var out []owl.DataProperty
	for _, e := range o.Signature() {
		if p, ok := e.(owl.DataProperty); ok {
			out = append(out, p)
		}
	}
	return out
}

// AnnotationProperties returns the annotation properties in the signature.
func (o *Ontology) AnnotationProperties() []owl.AnnotationProperty {
	var out []owl.AnnotationProperty
	for _, e := range o.Signature() {
		if p, ok := e.(owl.AnnotationProperty); ok {
			out = append(out, p)
		}
	}
	return out
}

// Individuals returns the named individuals in the signature.
func (o *Ontology) Individuals() []owl.NamedIndividual {
	var out []owl.NamedIndividual
	for _, e := range o.Signature() {
		if i, ok := e.(owl.NamedIndividual); ok {
			out = append(out, i)
		}
	}
	return out
}

// Datatypes returns the datatypes in the signature.
func (o *Ontology) Datatypes() []owl.Datatype {
	var out []owl.Datatype
	for _, e := range o.Signature() {
		if d, ok := e.(owl.Datatype); ok {
			out = append(out, d)
		}
	}
	return out
}

// Labels collects rdfs:label annotation values by subject IRI. Renderers
// use it as a short form source.
func (o *Ontology) Labels() map[owl.IRI]string {
	labels := make(map[owl.IRI]string)
	for _, ax := range o.axioms {
		a, ok := ax.(owl.AnnotationAssertion)
		if !ok || a.Property.IRI() != owl.RDFSLabel {
			continue
		}
		if lit, ok := a.Value.(owl.Literal); ok {
			if _, dup := labels[a.Subject]; !dup {
				labels[a.Subject] = lit.Lexical
			}
		}
	}
	return labels
}
