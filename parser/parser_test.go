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

package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/owlgraph/owlgo/owl"
	"github.com/owlgraph/owlgo/render"
)

const ns = owl.IRI("http://example.com/family#")

var (
	person   = owl.Class(ns + "person")
	male     = owl.Class(ns + "male")
	female   = owl.Class(ns + "female")
	hasChild = owl.ObjectProperty(ns + "hasChild")
	hasAge   = owl.DataProperty(ns + "hasAge")
	anna     = owl.NamedIndividual(ns + "anna")
	heinz    = owl.NamedIndividual(ns + "heinz")
)

func parseDL(t *testing.T, s string) owl.ClassExpression {
	t.Helper()
	ce, err := ParseDL(s, ns)
	require.NoError(t, err, "parsing %q", s)
	return ce
}

func parseM(t *testing.T, s string) owl.ClassExpression {
	t.Helper()
	ce, err := ParseManchester(s, ns)
	require.NoError(t, err, "parsing %q", s)
	return ce
}

func TestParseDLBasics(t *testing.T) {
	require.Equal(t, male, parseDL(t, "male"))
	require.Equal(t, owl.Thing, parseDL(t, "⊤"))
	require.Equal(t, owl.Nothing, parseDL(t, "⊥"))
	require.Equal(t, owl.ObjectComplementOf{Operand: male}, parseDL(t, "¬male"))
}

func TestParseDLPrecedence(t *testing.T) {
	got := parseDL(t, "male ⊓ female ⊔ person")
	require.Equal(t, owl.ObjectUnionOf{
		owl.ObjectIntersectionOf{male, female},
		person,
	}, got)

	got = parseDL(t, "male ⊓ (female ⊔ person)")
	require.Equal(t, owl.ObjectIntersectionOf{
		male,
		owl.ObjectUnionOf{female, person},
	}, got)
}

func TestParseDLQuantifiers(t *testing.T) {
	require.Equal(t,
		owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person},
		parseDL(t, "∃ hasChild.person"))
	require.Equal(t,
		owl.ObjectAllValuesFrom{Property: hasChild, Filler: owl.ObjectComplementOf{Operand: male}},
		parseDL(t, "∀ hasChild.(¬male)"))
	require.Equal(t,
		owl.ObjectSomeValuesFrom{Property: owl.ObjectInverseOf{Property: hasChild}, Filler: person},
		parseDL(t, "∃ hasChild⁻.person"))
	require.Equal(t,
		owl.ObjectHasSelf{Property: hasChild},
		parseDL(t, "∃ hasChild.Self"))
	require.Equal(t,
		owl.ObjectHasValue{Property: hasChild, Individual: anna},
		parseDL(t, "∃ hasChild.{anna}"))
	require.Equal(t,
		owl.ObjectSomeValuesFrom{Property: hasChild, Filler: owl.ObjectOneOf{anna, heinz}},
		parseDL(t, "∃ hasChild.{anna ⊔ heinz}"))
}

func TestParseDLCardinalities(t *testing.T) {
	require.Equal(t,
		owl.ObjectMinCardinality{N: 2, Property: hasChild, Filler: owl.Thing},
		parseDL(t, "≥ 2 hasChild.⊤"))
	require.Equal(t,
		owl.ObjectMaxCardinality{N: 4, Property: hasChild, Filler: male},
		parseDL(t, "≤ 4 hasChild.male"))
	require.Equal(t,
		owl.ObjectExactCardinality{N: 1, Property: hasChild, Filler: female},
		parseDL(t, "= 1 hasChild.female"))
	require.Equal(t,
		owl.DataMinCardinality{N: 1, Property: hasAge, Filler: owl.IntegerDatatype},
		parseDL(t, "≥ 1 hasAge.xsd:integer"))
}

func TestParseDLDataRanges(t *testing.T) {
	require.Equal(t,
		owl.DataSomeValuesFrom{Property: hasAge, Filler: owl.IntegerDatatype},
		parseDL(t, "∃ hasAge.xsd:integer"))
	require.Equal(t,
		owl.DataHasValue{Property: hasAge, Value: owl.IntLiteral(38)},
		parseDL(t, "∃ hasAge.{38}"))
	require.Equal(t,
		owl.DataSomeValuesFrom{
			Property: hasAge,
			Filler: owl.DatatypeRestriction{
				Datatype: owl.IntegerDatatype,
				Restrictions: []owl.FacetRestriction{
					{Facet: owl.FacetMinInclusive, Value: owl.IntLiteral(18)},
					{Facet: owl.FacetMaxInclusive, Value: owl.IntLiteral(65)},
				},
			},
		},
		parseDL(t, "∃ hasAge.xsd:integer[≥ 18 ⊓ ≤ 65]"))
}

func TestParseManchesterBasics(t *testing.T) {
	require.Equal(t, male, parseM(t, "male"))
	require.Equal(t, owl.Thing, parseM(t, "Thing"))
	require.Equal(t, owl.Nothing, parseM(t, "Nothing"))
	require.Equal(t, owl.ObjectComplementOf{Operand: male}, parseM(t, "not male"))
	require.Equal(t, owl.ObjectUnionOf{
		owl.ObjectIntersectionOf{male, female},
		person,
	}, parseM(t, "male and female or person"))
}

func TestParseManchesterRestrictions(t *testing.T) {
	require.Equal(t,
		owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person},
		parseM(t, "hasChild some person"))
	require.Equal(t,
		owl.ObjectAllValuesFrom{Property: hasChild, Filler: male},
		parseM(t, "hasChild only male"))
	require.Equal(t,
		owl.ObjectHasValue{Property: hasChild, Individual: anna},
		parseM(t, "hasChild value anna"))
	require.Equal(t,
		owl.DataHasValue{Property: hasAge, Value: owl.IntLiteral(38)},
		parseM(t, "hasAge value 38"))
	require.Equal(t,
		owl.ObjectHasSelf{Property: hasChild},
		parseM(t, "hasChild Self"))
	require.Equal(t,
		owl.ObjectSomeValuesFrom{Property: owl.ObjectInverseOf{Property: hasChild}, Filler: person},
		parseM(t, "inverse hasChild some person"))
}

func TestParseManchesterCardinalities(t *testing.T) {
	require.Equal(t,
		owl.ObjectMinCardinality{N: 2, Property: hasChild, Filler: owl.Thing},
		parseM(t, "hasChild min 2"))
	require.Equal(t,
		owl.ObjectMaxCardinality{N: 4, Property: hasChild, Filler: male},
		parseM(t, "hasChild max 4 male"))
	require.Equal(t,
		owl.ObjectExactCardinality{N: 1, Property: hasChild, Filler: owl.Thing},
		parseM(t, "hasChild exactly 1 Thing"))
	require.Equal(t,
		owl.DataExactCardinality{N: 1, Property: hasAge, Filler: owl.IntegerDatatype},
		parseM(t, "hasAge exactly 1 xsd:integer"))

	// A trailing boolean operator is not a filler.
	got := parseM(t, "hasChild min 2 and male")
	require.Equal(t, owl.ObjectIntersectionOf{
		owl.ObjectMinCardinality{N: 2, Property: hasChild, Filler: owl.Thing},
		male,
	}, got)
}

func TestParseManchesterDataRanges(t *testing.T) {
	require.Equal(t,
		owl.DataSomeValuesFrom{
			Property: hasAge,
			Filler: owl.DatatypeRestriction{
				Datatype: owl.IntegerDatatype,
				Restrictions: []owl.FacetRestriction{
					{Facet: owl.FacetMinInclusive, Value: owl.IntLiteral(18)},
					{Facet: owl.FacetMaxInclusive, Value: owl.IntLiteral(65)},
				},
			},
		},
		parseM(t, "hasAge some xsd:integer[>= 18 and <= 65]"))
	require.Equal(t,
		owl.DataAllValuesFrom{
			Property: hasAge,
			Filler:   owl.DataUnionOf{owl.IntegerDatatype, owl.StringDatatype},
		},
		parseM(t, "hasAge only (xsd:integer or xsd:string)"))
	require.Equal(t,
		owl.ObjectSomeValuesFrom{Property: hasChild, Filler: owl.ObjectOneOf{anna, heinz}},
		parseM(t, "hasChild some {anna , heinz}"))
}

func TestParseIRIsAndPrefixes(t *testing.T) {
	require.Equal(t, male, parseM(t, "<http://example.com/family#male>"))

	p := Parser{Prefixes: map[string]owl.IRI{"fam": ns}}
	ce, err := p.ParseManchester("fam:male and fam:female")
	require.NoError(t, err)
	require.Equal(t, owl.ObjectIntersectionOf{male, female}, ce)
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"", "male ⊓", "∃ hasChild", "∃ .person", "male ⊔ ⊔",
		"(male", "{anna", "≥ x hasChild.⊤", "hasAge some xsd:integer[>= ]",
	} {
		_, err := ParseDL(s, ns)
		require.Error(t, err, "input %q", s)
	}
	_, err := ParseManchester("hasChild some", ns)
	require.Error(t, err)

	_, err = ParseManchester("male and 5", ns)
	require.Error(t, err)

	var serr *SyntaxError
	_, err = ParseDL("male ⊔ )", ns)
	require.Error(t, err)
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 8, serr.Pos)
}

func TestRenderRoundTrip(t *testing.T) {
	exprs := []owl.ClassExpression{
		male,
		owl.Thing,
		owl.ObjectComplementOf{Operand: male},
		owl.ObjectIntersectionOf{male, owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person}},
		owl.ObjectUnionOf{male, female},
		owl.ObjectAllValuesFrom{Property: hasChild, Filler: male},
		owl.ObjectHasValue{Property: hasChild, Individual: anna},
		owl.ObjectHasSelf{Property: hasChild},
		owl.ObjectMinCardinality{N: 3, Property: hasChild, Filler: owl.Thing},
		owl.ObjectOneOf{anna, heinz},
		owl.DataSomeValuesFrom{
			Property: hasAge,
			Filler: owl.DatatypeRestriction{
				Datatype: owl.IntegerDatatype,
				Restrictions: []owl.FacetRestriction{
					{Facet: owl.FacetMinInclusive, Value: owl.IntLiteral(18)},
				},
			},
		},
		owl.DataHasValue{Property: hasAge, Value: owl.IntLiteral(38)},
	}
	for _, want := range exprs {
		got, err := ParseDL(render.ToDL(want), ns)
		require.NoError(t, err, "DL %q", render.ToDL(want))
		require.Equal(t, want.String(), got.String(), "DL round trip of %s", want)

		got, err = ParseManchester(render.ToManchester(want), ns)
		require.NoError(t, err, "Manchester %q", render.ToManchester(want))
		require.Equal(t, want.String(), got.String(), "Manchester round trip of %s", want)
	}
}
