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

package reasoner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/owlgraph/owlgo/ontology"
	"github.com/owlgraph/owlgo/owl"
)

const ns = "http://example.com/family#"

var (
	person      = owl.Class(ns + "person")
	male        = owl.Class(ns + "male")
	female      = owl.Class(ns + "female")
	parent      = owl.Class(ns + "parent")
	hasChild    = owl.ObjectProperty(ns + "hasChild")
	hasDaughter = owl.ObjectProperty(ns + "hasDaughter")
	hasParent   = owl.ObjectProperty(ns + "hasParent")
	hasAge      = owl.DataProperty(ns + "hasAge")
	anna        = owl.NamedIndividual(ns + "anna")
	heinz       = owl.NamedIndividual(ns + "heinz")
	markus      = owl.NamedIndividual(ns + "markus")
	martin      = owl.NamedIndividual(ns + "martin")
	michelle    = owl.NamedIndividual(ns + "michelle")
)

func familyOntology() *ontology.Ontology {
	o := ontology.New(owl.IRI("http://example.com/family"))
	o.Add(
		owl.Declaration{Entity: person},
		owl.Declaration{Entity: male},
		owl.Declaration{Entity: female},
		owl.Declaration{Entity: parent},
		owl.Declaration{Entity: hasChild},
		owl.Declaration{Entity: hasDaughter},
		owl.Declaration{Entity: hasParent},
		owl.Declaration{Entity: hasAge},
		owl.SubClassOf{Sub: male, Super: person},
		owl.SubClassOf{Sub: female, Super: person},
		owl.DisjointClasses{male, female},
		owl.EquivalentClasses{parent, owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person}},
		owl.SubObjectPropertyOf{Sub: hasDaughter, Super: hasChild},
		owl.InverseObjectProperties{First: hasParent, Second: hasChild},
		owl.ObjectPropertyDomain{Property: hasChild, Domain: person},
		owl.ObjectPropertyRange{Property: hasChild, Range: person},
		owl.ClassAssertion{Class: female, Individual: anna},
		owl.ClassAssertion{Class: female, Individual: michelle},
		owl.ClassAssertion{Class: male, Individual: heinz},
		owl.ClassAssertion{Class: male, Individual: markus},
		owl.ClassAssertion{Class: male, Individual: martin},
		owl.ObjectPropertyAssertion{Property: hasChild, Subject: markus, Object: anna},
		owl.ObjectPropertyAssertion{Property: hasChild, Subject: anna, Object: heinz},
		owl.ObjectPropertyAssertion{Property: hasDaughter, Subject: michelle, Object: anna},
		owl.DataPropertyAssertion{Property: hasAge, Subject: anna, Value: owl.IntLiteral(38)},
		owl.DataPropertyAssertion{Property: hasAge, Subject: markus, Value: owl.IntLiteral(60)},
		owl.DataPropertyAssertion{Property: hasAge, Subject: heinz, Value: owl.IntLiteral(14)},
	)
	return o
}

func TestInstancesNamedClass(t *testing.T) {
	r := NewStructural(familyOntology())

	got, err := r.Instances(person, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{anna, heinz, markus, martin, michelle}, got)

	got, err = r.Instances(male, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{heinz, markus, martin}, got)

	// Nothing is asserted to be a person directly.
	got, err = r.Instances(person, true)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestInstancesRestrictions(t *testing.T) {
	r := NewStructural(familyOntology())

	got, err := r.Instances(owl.ObjectSomeValuesFrom{Property: hasChild, Filler: female}, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{markus}, got)

	got, err = r.Instances(owl.ObjectSomeValuesFrom{Property: hasChild, Filler: owl.Thing}, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{anna, markus}, got)

	got, err = r.Instances(owl.ObjectHasValue{Property: hasChild, Individual: anna}, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{markus}, got)

	got, err = r.Instances(owl.ObjectMinCardinality{N: 1, Property: hasChild, Filler: owl.Thing}, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{anna, markus}, got)

	got, err = r.Instances(owl.ObjectMaxCardinality{N: 0, Property: hasChild, Filler: owl.Thing}, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{heinz, martin, michelle}, got)
}

func TestInstancesComplement(t *testing.T) {
	r := NewStructural(familyOntology())
	got, err := r.Instances(owl.ObjectComplementOf{Operand: male}, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{anna, michelle}, got)

	open := NewStructural(familyOntology(), WithNegationDefault(false))
	_, err = open.Instances(owl.ObjectComplementOf{Operand: male}, false)
	require.ErrorIs(t, err, ErrNotSupported)
}

func TestInstancesAllValuesFrom(t *testing.T) {
	all := owl.ObjectAllValuesFrom{Property: hasChild, Filler: male}

	r := NewStructural(familyOntology())
	got, err := r.Instances(all, false)
	require.NoError(t, err)
	// Individuals without children satisfy the restriction vacuously.
	require.ElementsMatch(t, []owl.NamedIndividual{anna, heinz, martin, michelle}, got)

	open := NewStructural(familyOntology(), WithNegationDefault(false))
	got, err = open.Instances(all, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{anna}, got)
}

func TestInstancesDataRestrictions(t *testing.T) {
	r := NewStructural(familyOntology())
	adultAge := owl.DataSomeValuesFrom{
		Property: hasAge,
		Filler: owl.DatatypeRestriction{
			Datatype: owl.IntegerDatatype,
			Restrictions: []owl.FacetRestriction{
				{Facet: owl.FacetMinInclusive, Value: owl.IntLiteral(18)},
			},
		},
	}
	got, err := r.Instances(adultAge, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{anna, markus}, got)

	got, err = r.Instances(owl.DataHasValue{Property: hasAge, Value: owl.IntLiteral(14)}, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{heinz}, got)
}

func TestTypes(t *testing.T) {
	r := NewStructural(familyOntology())

	got, err := r.Types(markus, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.Class{male, person, owl.Thing}, got)

	got, err = r.Types(markus, true)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.Class{male}, got)
}

func TestClassHierarchyQueries(t *testing.T) {
	r := NewStructural(familyOntology())

	subs, err := r.SubClasses(person, true, true)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ClassExpression{male, female}, subs)

	supers, err := r.SuperClasses(male, false, true)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ClassExpression{person}, supers)

	eqs, err := r.EquivalentClasses(parent, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ClassExpression{
		owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person},
	}, eqs)

	named, err := r.EquivalentClasses(parent, true)
	require.NoError(t, err)
	require.Empty(t, named)

	disjoint, err := r.DisjointClasses(male, true)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ClassExpression{female}, disjoint)
}

func TestPropertyValues(t *testing.T) {
	r := NewStructural(familyOntology())

	got, err := r.ObjectPropertyValues(anna, hasChild)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{heinz}, got)

	// hasParent is the asserted inverse of hasChild.
	got, err = r.ObjectPropertyValues(heinz, hasParent)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{anna}, got)

	got, err = r.ObjectPropertyValues(anna, owl.ObjectInverseOf{Property: hasChild})
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{markus}, got)

	lits, err := r.DataPropertyValues(anna, hasAge)
	require.NoError(t, err)
	require.Equal(t, []owl.Literal{owl.IntLiteral(38)}, lits)
}

func TestSubPropertiesOption(t *testing.T) {
	r := NewStructural(familyOntology())
	got, err := r.ObjectPropertyValues(michelle, hasChild)
	require.NoError(t, err)
	require.Empty(t, got)

	withSubs := NewStructural(familyOntology(), WithSubProperties(true))
	got, err = withSubs.ObjectPropertyValues(michelle, hasChild)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{anna}, got)
}

func TestPropertyHierarchyQueries(t *testing.T) {
	r := NewStructural(familyOntology())

	subs, err := r.SubObjectProperties(hasChild, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ObjectProperty{hasDaughter}, subs)

	supers, err := r.SuperObjectProperties(hasDaughter, true)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ObjectProperty{hasChild}, supers)

	invs, err := r.InverseObjectProperties(hasChild)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ObjectPropertyExpression{hasParent}, invs)

	domains, err := r.ObjectPropertyDomains(hasChild, true)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ClassExpression{person}, domains)

	ranges, err := r.ObjectPropertyRanges(hasChild, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ClassExpression{person}, ranges)
}

func TestSubObjectPropertyInverseSub(t *testing.T) {
	o := familyOntology()
	o.Add(owl.SubObjectPropertyOf{
		Sub:   owl.ObjectInverseOf{Property: hasParent},
		Super: hasChild,
	})
	r := NewStructural(o)

	// Only named sub-properties enter the hierarchy; inverse subs are
	// ignored.
	subs, err := r.SubObjectProperties(hasChild, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.ObjectProperty{hasDaughter}, subs)
}

func TestSameDifferentIndividuals(t *testing.T) {
	o := familyOntology()
	marcus := owl.NamedIndividual(ns + "marcus")
	mark := owl.NamedIndividual(ns + "mark")
	o.Add(
		owl.SameIndividual{markus, marcus},
		owl.SameIndividual{marcus, mark},
		owl.DifferentIndividuals{anna, markus},
	)
	r := NewStructural(o)

	same, err := r.SameIndividuals(markus)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{marcus, mark}, same)

	diff, err := r.DifferentIndividuals(anna)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{markus}, diff)
}

func TestIndexInvalidation(t *testing.T) {
	o := familyOntology()
	r := NewStructural(o)

	got, err := r.Instances(male, false)
	require.NoError(t, err)
	require.Len(t, got, 3)

	stefan := owl.NamedIndividual(ns + "stefan")
	o.Add(owl.ClassAssertion{Class: male, Individual: stefan})

	got, err = r.Instances(male, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []owl.NamedIndividual{heinz, markus, martin, stefan}, got)
}

func TestInfer(t *testing.T) {
	r := NewStructural(familyOntology())

	types, err := ParseInferenceTypes([]string{"subclass", "class_assertion"})
	require.NoError(t, err)
	require.Equal(t, []InferenceType{InferSubClasses, InferClassAssertions}, types)

	_, err = ParseInferenceTypes([]string{"bogus"})
	require.Error(t, err)

	all, err := ParseInferenceTypes([]string{"all"})
	require.NoError(t, err)
	require.Equal(t, AllInferenceTypes, all)

	axs, err := Infer(context.Background(), r, all)
	require.NoError(t, err)

	want := []owl.Axiom{
		owl.SubClassOf{Sub: male, Super: person},
		owl.SubClassOf{Sub: female, Super: person},
		owl.ClassAssertion{Class: person, Individual: markus},
		owl.ClassAssertion{Class: male, Individual: markus},
		owl.EquivalentClasses{parent, owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person}},
		owl.SubObjectPropertyOf{Sub: hasDaughter, Super: hasChild},
		owl.InverseObjectProperties{First: hasChild, Second: hasParent},
	}
	got := make(map[string]bool, len(axs))
	for _, ax := range axs {
		got[ax.String()] = true
	}
	for _, ax := range want {
		require.True(t, got[ax.String()], "missing inferred axiom %v", ax)
	}
}

func TestInferUnsupported(t *testing.T) {
	_, err := runGenerator(NewStructural(familyOntology()), InferenceType("bogus"))
	require.ErrorIs(t, err, ErrNotSupported)
}
