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

const (
	dlSubClass   = "⊑"
	dlEquivalent = "≡"
	dlNot        = "¬"
	dlExists     = "∃"
	dlForall     = "∀"
	dlMin        = "≥"
	dlMax        = "≤"
	dlEqual      = "="
	dlInverse    = "⁻"
	dlAnd        = "⊓"
	dlOr         = "⊔"
	dlTop        = "⊤"
	dlBottom     = "⊥"
	dlSelf       = "Self"
)

// DLRenderer prints model objects in description logic syntax, e.g.
// "male ⊓ (∃ hasChild.person)".
type DLRenderer struct {
	ShortForm ShortFormProvider
}

// ToDL renders an object in DL syntax with the simple short form.
func ToDL(o owl.Object) string {
	return DLRenderer{}.Render(o)
}

func (r DLRenderer) shortForm(e owl.Entity) string {
	if r.ShortForm != nil {
		return r.ShortForm(e)
	}
	return SimpleShortForm(e)
}

// Render returns the DL form of a model object.
func (r DLRenderer) Render(o owl.Object) string {
	switch o := o.(type) {
	case owl.Class:
		if o.IsNothing() {
			return dlBottom
		}
		if o.IsThing() {
			return dlTop
		}
		return r.shortForm(o)
	case owl.ObjectProperty:
		return r.shortForm(o)
	case owl.ObjectInverseOf:
		return r.Render(o.Property) + dlInverse
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
		return dlNot + r.nested(o.Operand)
	case owl.ObjectIntersectionOf:
		return r.joinOperands(objects(o), " "+dlAnd+" ")
	case owl.ObjectUnionOf:
		return r.joinOperands(objects(o), " "+dlOr+" ")
	case owl.ObjectOneOf:
		return r.enumeration(objects(o), " "+dlOr+" ")
	case owl.ObjectSomeValuesFrom:
		return dlExists + " " + r.Render(o.Property) + "." + r.nested(o.Filler)
	case owl.ObjectAllValuesFrom:
		return dlForall + " " + r.Render(o.Property) + "." + r.nested(o.Filler)
	case owl.ObjectHasValue:
		return dlExists + " " + r.Render(o.Property) + ".{" + r.Render(o.Individual) + "}"
	case owl.ObjectHasSelf:
		return dlExists + " " + r.Render(o.Property) + "." + dlSelf
	case owl.ObjectMinCardinality:
		return r.cardinality(dlMin, o.N, o.Property, o.Filler)
	case owl.ObjectMaxCardinality:
		return r.cardinality(dlMax, o.N, o.Property, o.Filler)
	case owl.ObjectExactCardinality:
		return r.cardinality(dlEqual, o.N, o.Property, o.Filler)

	case owl.DataComplementOf:
		return dlNot + r.nested(o.Operand)
	case owl.DataIntersectionOf:
		return r.joinOperands(objects(o), " "+dlAnd+" ")
	case owl.DataUnionOf:
		return r.joinOperands(objects(o), " "+dlOr+" ")
	case owl.DataOneOf:
		return r.enumeration(objects(o), " "+dlOr+" ")
	case owl.DatatypeRestriction:
		facets := make([]string, len(o.Restrictions))
		for i, fr := range o.Restrictions {
			facets[i] = r.Render(fr)
		}
		return r.Render(o.Datatype) + "[" + strings.Join(facets, " "+dlAnd+" ") + "]"
	case owl.FacetRestriction:
		sym := r.facetSymbol(o.Facet)
		return sym + " " + o.Value.Lexical
	case owl.DataSomeValuesFrom:
		return dlExists + " " + r.Render(o.Property) + "." + r.nested(o.Filler)
	case owl.DataAllValuesFrom:
		return dlForall + " " + r.Render(o.Property) + "." + r.nested(o.Filler)
	case owl.DataHasValue:
		return dlExists + " " + r.Render(o.Property) + ".{" + r.Render(o.Value) + "}"
	case owl.DataMinCardinality:
		return r.cardinality(dlMin, o.N, o.Property, o.Filler)
	case owl.DataMaxCardinality:
		return r.cardinality(dlMax, o.N, o.Property, o.Filler)
	case owl.DataExactCardinality:
		return r.cardinality(dlEqual, o.N, o.Property, o.Filler)

	case owl.SubClassOf:
		return r.Render(o.Sub) + " " + dlSubClass + " " + r.Render(o.Super)
	case owl.EquivalentClasses:
		return r.joinPlain(objects(o), " "+dlEquivalent+" ")
	case owl.DisjointClasses:
		return r.joinPlain(objects(o), " "+dlSubClass+" "+dlNot)
	}
	panic(fmt.Sprintf("render: cannot render %T in DL syntax", o))
}

// facetSymbol uses the comparison glyphs for the inclusive bounds and
// the plain operator or facet name otherwise.
func (r DLRenderer) facetSymbol(f owl.Facet) string {
	switch f {
	case owl.FacetMinInclusive:
		return dlMin
	case owl.FacetMaxInclusive:
		return dlMax
	}
	if sym := f.Symbol(); sym != "" {
		return sym
	}
	return f.IRI().Remainder()
}

func (r DLRenderer) cardinality(sym string, n int, prop owl.Object, filler owl.Object) string {
	return sym + " " + strconv.Itoa(n) + " " + r.Render(prop) + "." + r.nested(filler)
}

func (r DLRenderer) nested(o owl.Object) string {
	if needsParens(o) {
		return "(" + r.Render(o) + ")"
	}
	return r.Render(o)
}

func (r DLRenderer) joinOperands(ops []owl.Object, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = r.nested(op)
	}
	return strings.Join(parts, sep)
}

func (r DLRenderer) joinPlain(ops []owl.Object, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = r.Render(op)
	}
	return strings.Join(parts, sep)
}

func (r DLRenderer) enumeration(ops []owl.Object, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = r.Render(op)
	}
	return "{" + strings.Join(parts, sep) + "}"
}

func objects[T owl.Object](in []T) []owl.Object {
	out := make([]owl.Object, len(in))
	for i, o := range in {
		out[i] = o
	}
	return out
}
