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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/owlgraph/owlgo/owl"
)

const ns = "http://example.com/society#"

var (
	male     = owl.Class(ns + "male")
	female   = owl.Class(ns + "female")
	person   = owl.Class(ns + "person")
	hasChild = owl.ObjectProperty(ns + "hasChild")
	hasAge   = owl.DataProperty(ns + "hasAge")
	anna     = owl.NamedIndividual(ns + "anna")
	heinz    = owl.NamedIndividual(ns + "heinz")
)

func TestDLSyntax(t *testing.T) {
	cases := []struct {
		obj  owl.Object
		want string
	}{
		{male, "male"},
		{owl.Thing, "⊤"},
		{owl.Nothing, "⊥"},
		{owl.IntegerDatatype, "xsd:integer"},
		{owl.ObjectComplementOf{Operand: male}, "¬male"},
		{
			owl.ObjectComplementOf{Operand: owl.ObjectIntersectionOf{male, person}},
			"¬(male ⊓ person)",
		},
		{owl.ObjectIntersectionOf{male, person}, "male ⊓ person"},
		{owl.ObjectUnionOf{male, female}, "male ⊔ female"},
		{
			owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person},
			"∃ hasChild.person",
		},
		{
			owl.ObjectSomeValuesFrom{Property: owl.ObjectInverseOf{Property: hasChild}, Filler: person},
			"∃ hasChild⁻.person",
		},
		{
			owl.ObjectAllValuesFrom{Property: hasChild, Filler: owl.ObjectUnionOf{male, female}},
			"∀ hasChild.(male ⊔ female)",
		},
		{
			owl.ObjectIntersectionOf{male, owl.ObjectMinCardinality{N: 1, Property: hasChild, Filler: person}},
			"male ⊓ (≥ 1 hasChild.person)",
		},
		{
			owl.ObjectMaxCardinality{N: 2, Property: hasChild, Filler: owl.Thing},
			"≤ 2 hasChild.⊤",
		},
		{
			owl.ObjectExactCardinality{N: 1, Property: hasChild, Filler: female},
			"= 1 hasChild.female",
		},
		{owl.ObjectHasValue{Property: hasChild, Individual: anna}, "∃ hasChild.{anna}"},
		{owl.ObjectHasSelf{Property: hasChild}, "∃ hasChild.Self"},
		{owl.ObjectOneOf{anna, heinz}, "{anna ⊔ heinz}"},
		{
			owl.DataSomeValuesFrom{
				Property: hasAge,
				Filler: owl.DatatypeRestriction{
					Datatype: owl.IntegerDatatype,
					Restrictions: []owl.FacetRestriction{
						{Facet: owl.FacetMinInclusive, Value: owl.IntLiteral(18)},
						{Facet: owl.FacetMaxExclusive, Value: owl.IntLiteral(65)},
					},
				},
			},
			"∃ hasAge.xsd:integer[≥ 18 ⊓ < 65]",
		},
		{
			owl.DataHasValue{Property: hasAge, Value: owl.IntLiteral(30)},
			"∃ hasAge.{30}",
		},
		{
			owl.SubClassOf{Sub: male, Super: person},
			"male ⊑ person",
		},
		{
			owl.EquivalentClasses{male, owl.ObjectComplementOf{Operand: female}},
			"male ≡ ¬female",
		},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ToDL(c.obj))
	}
}

func TestManchesterSyntax(t *testing.T) {
	cases := []struct {
		obj  owl.Object
		want string
	}{
		{male, "male"},
		{owl.Thing, "Thing"},
		{owl.Nothing, "Nothing"},
		{owl.ObjectComplementOf{Operand: male}, "not male"},
		{owl.ObjectIntersectionOf{male, person}, "male and person"},
		{
			owl.ObjectIntersectionOf{male, owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person}},
			"male and (hasChild some person)",
		},
		{owl.ObjectUnionOf{male, female}, "male or female"},
		{
			owl.ObjectAllValuesFrom{Property: hasChild, Filler: owl.ObjectUnionOf{male, female}},
			"hasChild only (male or female)",
		},
		{
			owl.ObjectMinCardinality{N: 1, Property: hasChild, Filler: person},
			"hasChild min 1 person",
		},
		{
			owl.ObjectExactCardinality{N: 1, Property: hasChild, Filler: female},
			"hasChild exactly 1 female",
		},
		{owl.ObjectHasValue{Property: hasChild, Individual: anna}, "hasChild value anna"},
		{owl.ObjectHasSelf{Property: hasChild}, "hasChild Self"},
		{owl.ObjectOneOf{anna, heinz}, "{anna , heinz}"},
		{
			owl.ObjectSomeValuesFrom{Property: owl.ObjectInverseOf{Property: hasChild}, Filler: person},
			"inverse hasChild some person",
		},
		{
			owl.DataSomeValuesFrom{
				Property: hasAge,
				Filler: owl.DatatypeRestriction{
					Datatype: owl.IntegerDatatype,
					Restrictions: []owl.FacetRestriction{
						{Facet: owl.FacetMinInclusive, Value: owl.IntLiteral(18)},
					},
				},
			},
			"hasAge some xsd:integer[>= 18]",
		},
		{owl.DataHasValue{Property: hasAge, Value: owl.IntLiteral(30)}, "hasAge value 30"},
		{owl.SubClassOf{Sub: male, Super: person}, "male SubClassOf person"},
		{owl.EquivalentClasses{male, female}, "male EquivalentTo female"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ToManchester(c.obj))
	}
}

func TestShortFormProviders(t *testing.T) {
	require.Equal(t, "male", SimpleShortForm(male))
	require.Equal(t, "xsd:integer", SimpleShortForm(owl.IntegerDatatype))
	require.Equal(t, "owl:Thing", SimpleShortForm(owl.Thing))

	labels := map[owl.IRI]string{owl.IRI(male): "Male Person"}
	sfp := LabelShortForm(func(iri owl.IRI) (string, bool) {
		v, ok := labels[iri]
		return v, ok
	})
	r := DLRenderer{ShortForm: sfp}
	require.Equal(t, "Male Person ⊓ person", r.Render(owl.ObjectIntersectionOf{male, person}))
}
