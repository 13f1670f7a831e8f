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

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/owlgraph/owlgo/owl"
)

// ManchesterRenderer prints model objects in Manchester syntax, e.g.
// "male and (hasChild some person)".
type ManchesterRenderer struct {
	ShortForm ShortFormProvider
	// KeepThing renders owl:Thing and owl:Nothing through the short
	// form provider instead of the keywords Thing and Nothing.
	KeepThing bool
}

// ToManchester renders an object in Manchester syntax with the simple
// short form.
func ToManchester(o owl.Object) string {
	return ManchesterRenderer{}.Render(o)
}

func (r ManchesterRenderer) shortForm(e owl.Entity) string {
	if r.ShortForm != nil {
		return r.ShortForm(e)
	}
	return SimpleShortForm(e)
}

// Render returns the Manchester form of a model object.
func (r ManchesterRenderer) Render(o owl.Object) string {
	switch o := o.(type) {
	case owl.Class:
		if !r.KeepThing {
			if o.IsNothing() {
				return "Nothing"
			}
			if o.IsThing() {
				return "Thing"
			}
		}
		return r.shortForm(o)
	case owl.ObjectProperty:
		return r.shortForm(o)
	case owl.ObjectInverseOf:
		return "inverse " + r.Render(o.Property)
	case owl.DataProperty:
		return r.shortForm(o)
	case owl.AnnotationProperty:
		return r.shortForm(o)
	case owl.NamedIndividual:
		return r.shortForm(o)
	case owl.Datatype:
		return r.shortForm(o)
	case owl.Literal:
		return o.Lexical

	case owl.ObjectComplementOf:
		return "not " + r.nested(o.Operand)
	case owl.ObjectIntersectionOf:
		return r.joinOperands(objects(o), " and ")
	case owl.ObjectUnionOf:
		return r.joinOperands(objects(o), " or ")
	case owl.ObjectOneOf:
		return r.enumeration(objects(o))
	case owl.ObjectSomeValuesFrom:
		return r.Render(o.Property) + " some " + r.nested(o.Filler)
	case owl.ObjectAllValuesFrom:
		return r.Render(o.Property) + " only " + r.nested(o.Filler)
	case owl.ObjectHasValue:
		return r.Render(o.Property) + " value " + r.Render(o.Individual)
	case owl.ObjectHasSelf:
		return r.Render(o.Property) + " Self"
	case owl.ObjectMinCardinality:
		return r.cardinality(o.Property, "min", o.N, o.Filler)
	case owl.ObjectMaxCardinality:
		return r.cardinality(o.Property, "max", o.N, o.Filler)
	case owl.ObjectExactCardinality:
		return r.cardinality(o.Property, "exactly", o.N, o.Filler)

	case owl.DataComplementOf:
		return "not " + r.nested(o.Operand)
	case owl.DataIntersectionOf:
		return r.joinOperands(objects(o), " and ")
	case owl.DataUnionOf:
		return r.joinOperands(objects(o), " or ")
	case owl.DataOneOf:
		return r.enumeration(objects(o))
	case owl.DatatypeRestriction:
		facets := make([]string, len(o.Restrictions))
		for i, fr := range o.Restrictions {
			facets[i] = r.Render(fr)
		}
		return r.Render(o.Datatype) + "[" + strings.Join(facets, " and ") + "]"
	case owl.FacetRestriction:
		sym := o.Facet.Symbol()
		if sym == "" {
			sym = o.Facet.IRI().Remainder()
		}
		return sym + " " + o.Value.Lexical
	case owl.DataSomeValuesFrom:
		return r.Render(o.Property) + " some " + r.nested(o.Filler)
	case owl.DataAllValuesFrom:
		return r.Render(o.Property) + " only " + r.nested(o.Filler)
	case owl.DataHasValue:
		return r.Render(o.Property) + " value " + r.Render(o.Value)
	case owl.DataMinCardinality:
		return r.cardinality(o.Property, "min", o.N, o.Filler)
	case owl.DataMaxCardinality:
		return r.cardinality(o.Property, "max", o.N, o.Filler)
	case owl.DataExactCardinality:
		return r.cardinality(o.Property, "exactly", o.N, o.Filler)

	case owl.SubClassOf:
		return r.Render(o.Sub) + " SubClassOf " + r.Render(o.Super)
	case owl.EquivalentClasses:
		return r.joinPlain(objects(o), " EquivalentTo ")
	case owl.DisjointClasses:
		return r.joinPlain(objects(o), " DisjointWith ")
	case owl.ObjectPropertyDomain:
		return r.Render(o.Property) + " Domain " + r.Render(o.Domain)
	case owl.ObjectPropertyRange:
		return r.Render(o.Property) + " Range " + r.Render(o.Range)
	}
	panic(fmt.Sprintf("render: cannot render %T in Manchester syntax", o))
}

func (r ManchesterRenderer) cardinality(prop owl.Object, keyword string, n int, filler owl.Object) string {
	return r.Render(prop) + " " + keyword + " " + strconv.Itoa(n) + " " + r.nested(filler)
}

func (r ManchesterRenderer) nested(o owl.Object) string {
	if needsParens(o) {
		return "(" + r.Render(o) + ")"
	}
	return r.Render(o)
}

func (r ManchesterRenderer) joinOperands(ops []owl.Object, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = r.nested(op)
	}
	return strings.Join(parts, sep)
}

func (r ManchesterRenderer) joinPlain(ops []owl.Object, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = r.Render(op)
	}
	return strings.Join(parts, sep)
}

func (r ManchesterRenderer) enumeration(ops []owl.Object) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = r.Render(op)
	}
	return "{" + strings.Join(parts, " , ") + "}"
}
