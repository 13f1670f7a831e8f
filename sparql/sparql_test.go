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

package sparql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/owlgraph/owlgo/owl"
)

const ns = "http://example.com/family#"

var (
	male     = owl.Class(ns + "male")
	female   = owl.Class(ns + "female")
	hasChild = owl.ObjectProperty(ns + "hasChild")
	hasAge   = owl.DataProperty(ns + "hasAge")
	anna     = owl.NamedIndividual(ns + "anna")
	heinz    = owl.NamedIndividual(ns + "heinz")
)

func TestConvertClass(t *testing.T) {
	got, err := Convert("?x", male)
	require.NoError(t, err)
	want := "SELECT\n" +
		" DISTINCT ?x WHERE { \n" +
		"?x a <http://example.com/family#male> . \n" +
		" }"
	require.Equal(t, want, got)
}

func TestConvertUnion(t *testing.T) {
	got, err := Convert("?x", owl.ObjectUnionOf{male, female})
	require.NoError(t, err)
	want := "SELECT\n" +
		" DISTINCT ?x WHERE { \n" +
		"{ \n" +
		"?x a <http://example.com/family#male> . \n" +
		" }\n" +
		" UNION \n" +
		"{ \n" +
		"?x a <http://example.com/family#female> . \n" +
		" }\n" +
		" }"
	require.Equal(t, want, got)
}

func TestConvertComplement(t *testing.T) {
	got, err := Convert("?x", owl.ObjectComplementOf{Operand: male})
	require.NoError(t, err)
	want := "SELECT\n" +
		" DISTINCT ?x WHERE { \n" +
		"?x ?s_1 ?s_2 . \n" +
		"FILTER NOT EXISTS { \n" +
		"?x a <http://example.com/family#male> . \n" +
		" }\n" +
		" }"
	require.Equal(t, want, got)
}

func TestConvertSomeValuesFrom(t *testing.T) {
	got, err := Convert("?x", owl.ObjectSomeValuesFrom{Property: hasChild, Filler: female})
	require.NoError(t, err)
	want := "SELECT\n" +
		" DISTINCT ?x WHERE { \n" +
		"?x <http://example.com/family#hasChild> ?s_1 . \n" +
		"?s_1 a <http://example.com/family#female> . \n" +
		" }"
	require.Equal(t, want, got)
}

func TestConvertInverseHasValue(t *testing.T) {
	ce := owl.ObjectHasValue{Property: owl.ObjectInverseOf{Property: hasChild}, Individual: anna}
	got, err := Convert("?x", ce)
	require.NoError(t, err)
	require.Contains(t, got,
		"<http://example.com/family#anna> <http://example.com/family#hasChild> ?x . ")
}

func TestConvertNestedCardinalities(t *testing.T) {
	hasBond := owl.ObjectProperty("http://dl-learner.org/carcinogenesis#hasBond")
	hasAtom := owl.ObjectProperty("http://dl-learner.org/carcinogenesis#hasAtom")
	ce := owl.ObjectSomeValuesFrom{
		Property: hasBond,
		Filler: owl.ObjectIntersectionOf{
			owl.ObjectMaxCardinality{N: 4, Property: hasAtom, Filler: owl.Thing},
			owl.ObjectMinCardinality{N: 1, Property: hasAtom, Filler: owl.Thing},
		},
	}
	got, err := Convert("?x", ce)
	require.NoError(t, err)
	want := "SELECT\n" +
		" DISTINCT ?x WHERE { \n" +
		"?x <http://dl-learner.org/carcinogenesis#hasBond> ?s_1 . \n" +
		"{\n" +
		"{ SELECT ?s_1 WHERE { \n" +
		"?s_1 <http://dl-learner.org/carcinogenesis#hasAtom> ?s_2 . \n" +
		"?s_2 a <http://www.w3.org/2002/07/owl#Thing> . \n" +
		" } GROUP BY ?s_1 HAVING ( COUNT ( ?s_2 ) <= 4 ) }\n" +
		"} UNION {\n" +
		"?s_1 ?s_3 ?s_4 . \n" +
		"FILTER NOT EXISTS { \n" +
		"?s_1 <http://dl-learner.org/carcinogenesis#hasAtom> ?s_5 . \n" +
		"?s_5 a <http://www.w3.org/2002/07/owl#Thing> . \n" +
		" } }\n" +
		"{ SELECT ?s_1 WHERE { \n" +
		"?s_1 <http://dl-learner.org/carcinogenesis#hasAtom> ?s_6 . \n" +
		"?s_6 a <http://www.w3.org/2002/07/owl#Thing> . \n" +
		" } GROUP BY ?s_1 HAVING ( COUNT ( ?s_6 ) >= 1 ) }\n" +
		" }"
	require.Equal(t, want, got)
}

func TestConvertAllValuesFrom(t *testing.T) {
	got, err := Convert("?x", owl.ObjectAllValuesFrom{Property: hasChild, Filler: male})
	require.NoError(t, err)
	require.Contains(t, got, "( COUNT( DISTINCT ?s_2 ) AS ?cnt_1 )")
	require.Contains(t, got, "( COUNT( DISTINCT ?s_3 ) AS ?cnt_2 )")
	require.Contains(t, got, " FILTER( ?cnt_1 = ?cnt_2 )")
	require.Contains(t, got, "} UNION { ")
	require.Contains(t, got, "FILTER NOT EXISTS { ")
	require.Equal(t, 2, strings.Count(got, "GROUP BY ?x"))
}

func TestConvertOneOf(t *testing.T) {
	got, err := Convert("?x", owl.ObjectOneOf{anna, heinz})
	require.NoError(t, err)
	want := "SELECT\n" +
		" DISTINCT ?x WHERE { \n" +
		"?x ?p ?o . \n" +
		" FILTER ( ?x IN ( \n" +
		"<http://example.com/family#anna>\n" +
		",\n" +
		"<http://example.com/family#heinz>\n" +
		" ) )\n" +
		" }"
	require.Equal(t, want, got)
}

func TestConvertDataRestrictions(t *testing.T) {
	adultAge := owl.DataSomeValuesFrom{
		Property: hasAge,
		Filler: owl.DatatypeRestriction{
			Datatype: owl.IntegerDatatype,
			Restrictions: []owl.FacetRestriction{
				{Facet: owl.FacetMinInclusive, Value: owl.IntLiteral(18)},
			},
		},
	}
	got, err := Convert("?x", adultAge)
	require.NoError(t, err)
	require.Contains(t, got, "?x <http://example.com/family#hasAge> ?s_1 . ")
	require.Contains(t, got,
		" FILTER ( ?s_1 >= \"18\"^^<http://www.w3.org/2001/XMLSchema#integer> ) ")

	got, err = Convert("?x", owl.DataHasValue{Property: hasAge, Value: owl.IntLiteral(38)})
	require.NoError(t, err)
	require.Contains(t, got,
		"?x <http://example.com/family#hasAge> \"38\"^^<http://www.w3.org/2001/XMLSchema#integer> . ")

	got, err = Convert("?x", owl.DataSomeValuesFrom{Property: hasAge, Filler: owl.IntegerDatatype})
	require.NoError(t, err)
	require.Contains(t, got,
		" FILTER ( DATATYPE ( ?s_1 ) = <http://www.w3.org/2001/XMLSchema#integer> ) ")

	got, err = Convert("?x", owl.DataSomeValuesFrom{Property: hasAge, Filler: owl.TopDatatype})
	require.NoError(t, err)
	require.NotContains(t, got, "FILTER")
}

func TestConvertDataCardinality(t *testing.T) {
	ce := owl.DataMinCardinality{N: 2, Property: hasAge, Filler: owl.IntegerDatatype}
	got, err := Convert("?x", ce)
	require.NoError(t, err)
	require.Contains(t, got, "{ SELECT ?x WHERE { ")
	require.Contains(t, got, " } GROUP BY ?x HAVING ( COUNT ( ?s_1 ) >= 2 ) }")
}

func TestConvertOptions(t *testing.T) {
	got, err := ConvertWith("?x", male, Options{Count: true})
	require.NoError(t, err)
	require.Contains(t, got, " ( COUNT ( DISTINCT ?x ) AS ?cnt ) WHERE { ")

	got, err = ConvertWith("?x", male, Options{Values: []owl.NamedIndividual{anna, heinz}})
	require.NoError(t, err)
	require.Contains(t, got,
		"VALUES ?x { <http://example.com/family#anna><http://example.com/family#heinz>")

	got, err = ConvertWith("?x", male, Options{NamedIndividuals: true})
	require.NoError(t, err)
	require.Contains(t, got,
		"?x a <http://www.w3.org/2002/07/owl#NamedIndividual> . ")
}

func TestConvertUnsupported(t *testing.T) {
	ce := owl.DataSomeValuesFrom{
		Property: hasAge,
		Filler:   owl.DataComplementOf{Operand: owl.IntegerDatatype},
	}
	_, err := Convert("?x", ce)
	require.Error(t, err)
}
