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
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/owlgraph/owlgo/owl"
)

const ns = "http://example.com/society#"

var (
	person   = owl.Class(ns + "person")
	male     = owl.Class(ns + "male")
	female   = owl.Class(ns + "female")
	parent   = owl.Class(ns + "parent")
	adult    = owl.Class(ns + "adult")
	hasChild = owl.ObjectProperty(ns + "hasChild")
	hasAge   = owl.DataProperty(ns + "hasAge")
	anna     = owl.NamedIndividual(ns + "anna")
	heinz    = owl.NamedIndividual(ns + "heinz")
	markus   = owl.NamedIndividual(ns + "markus")
)

func societyOntology() *Ontology {
	o := New(owl.IRI("http://example.com/society"))
	o.Add(
		owl.Declaration{Entity: person},
		owl.Declaration{Entity: male},
		owl.Declaration{Entity: female},
		owl.Declaration{Entity: parent},
		owl.Declaration{Entity: adult},
		owl.Declaration{Entity: hasChild},
		owl.Declaration{Entity: hasAge},
		owl.Declaration{Entity: anna},
		owl.Declaration{Entity: heinz},
		owl.Declaration{Entity: markus},
		owl.SubClassOf{Sub: male, Super: person},
		owl.SubClassOf{Sub: female, Super: person},
		owl.DisjointClasses{male, female},
		owl.EquivalentClasses{parent, owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person}},
		owl.SubClassOf{Sub: adult, Super: owl.DataSomeValuesFrom{
			Property: hasAge,
			Filler: owl.DatatypeRestriction{
				Datatype: owl.IntegerDatatype,
				Restrictions: []owl.FacetRestriction{
					{Facet: owl.FacetMinInclusive, Value: owl.IntLiteral(18)},
				},
			},
		}},
		owl.ObjectPropertyDomain{Property: hasChild, Domain: person},
		owl.ObjectPropertyRange{Property: hasChild, Range: person},
		owl.DataPropertyRange{Property: hasAge, Range: owl.IntegerDatatype},
		owl.FunctionalDataProperty{Property: hasAge},
		owl.ClassAssertion{Class: female, Individual: anna},
		owl.ClassAssertion{Class: male, Individual: heinz},
		owl.ObjectPropertyAssertion{Property: hasChild, Subject: anna, Object: heinz},
		owl.DataPropertyAssertion{Property: hasAge, Subject: anna, Value: owl.IntLiteral(38)},
		owl.DifferentIndividuals{anna, heinz, markus},
	)
	return o
}

func TestAddRemove(t *testing.T) {
	o := New("")
	ax := owl.SubClassOf{Sub: male, Super: person}

	require.Equal(t, 1, o.Add(ax))
	require.Equal(t, 0, o.Add(ax), "duplicate axioms are ignored")
	require.True(t, o.Contains(ax))
	require.Equal(t, 1, o.Len())

	v := o.Version()
	require.Equal(t, 1, o.Remove(ax))
	require.False(t, o.Contains(ax))
	require.NotEqual(t, v, o.Version(), "removal bumps the version")
	require.Equal(t, 0, o.Remove(ax))
}

func TestTBoxABoxSplit(t *testing.T) {
	o := societyOntology()
	for _, ax := range o.TBox() {
		require.True(t, owl.IsTBox(ax), "unexpected ABox axiom %v", ax)
	}
	abox := o.ABox()
	require.Len(t, abox, 5)
	for _, ax := range abox {
		require.True(t, owl.IsABox(ax), "unexpected TBox axiom %v", ax)
	}
}

func TestSignatureAccessors(t *testing.T) {
	o := societyOntology()
	require.ElementsMatch(t, []owl.Class{person, male, female, parent, adult}, o.Classes())
	require.ElementsMatch(t, []owl.ObjectProperty{hasChild}, o.ObjectProperties())
	require.ElementsMatch(t, []owl.DataProperty{hasAge}, o.DataProperties())
	require.ElementsMatch(t, []owl.NamedIndividual{anna, heinz, markus}, o.Individuals())
}

func TestReferencingAxioms(t *testing.T) {
	o := societyOntology()

	axs := o.ReferencingAxioms(heinz)
	require.Len(t, axs, 4)
	for _, ax := range axs {
		require.Contains(t, ax.String(), string(heinz))
	}

	require.Empty(t, o.ReferencingAxioms(owl.Class(ns+"unknown")))
}

func TestLabels(t *testing.T) {
	o := New("")
	o.Add(owl.AnnotationAssertion{
		Subject:  owl.IRI(person),
		Property: owl.AnnotationProperty(owl.RDFSLabel),
		Value:    owl.StringLiteral("Person"),
	})
	labels := o.Labels()
	require.Equal(t, "Person", labels[owl.IRI(person)])
}

func axiomStrings(o *Ontology) []string {
	axs := o.Axioms()
	out := make([]string, len(axs))
	for i, ax := range axs {
		out[i] = ax.String()
	}
	sort.Strings(out)
	return out
}

func TestQuadsRoundTrip(t *testing.T) {
	o := societyOntology()
	got, err := FromQuads(o.Quads())
	require.NoError(t, err)
	require.Equal(t, o.IRI(), got.IRI())
	require.Equal(t, axiomStrings(o), axiomStrings(got))
}

func TestQuadsAnonymousSubclass(t *testing.T) {
	o := New("")
	o.Add(
		owl.Declaration{Entity: hasChild},
		owl.SubClassOf{
			Sub:   owl.ObjectMinCardinality{N: 3, Property: hasChild, Filler: owl.Thing},
			Super: parent,
		},
	)
	got, err := FromQuads(o.Quads())
	require.NoError(t, err)
	require.Equal(t, axiomStrings(o), axiomStrings(got))
}

func TestQuadsReifiedAxioms(t *testing.T) {
	o := New("")
	o.Add(
		owl.DisjointClasses{male, female, parent},
		owl.NegativeObjectPropertyAssertion{Subject: heinz, Property: hasChild, Object: anna},
		owl.NegativeDataPropertyAssertion{Subject: heinz, Property: hasAge, Value: owl.IntLiteral(7)},
	)
	got, err := FromQuads(o.Quads())
	require.NoError(t, err)
	require.Equal(t, axiomStrings(o), axiomStrings(got))
}

func TestQuadsDataRangeLists(t *testing.T) {
	o := New("")
	o.Add(
		owl.Declaration{Entity: hasAge},
		owl.DataPropertyRange{Property: hasAge, Range: owl.DataIntersectionOf{
			owl.IntegerDatatype,
			owl.DataComplementOf{Operand: owl.BooleanDatatype},
		}},
		owl.DataPropertyRange{Property: hasAge, Range: owl.DataUnionOf{
			owl.IntegerDatatype,
			owl.StringDatatype,
		}},
	)
	got, err := FromQuads(o.Quads())
	require.NoError(t, err)
	require.Equal(t, axiomStrings(o), axiomStrings(got))
}

func TestQuadsCyclicList(t *testing.T) {
	root, head, next := quad.BNode("d"), quad.BNode("l1"), quad.BNode("l2")
	_, err := FromQuads([]quad.Quad{
		{Subject: root, Predicate: owl.RDFType.Quad(), Object: owl.OWLAllDifferent.Quad()},
		{Subject: root, Predicate: owl.OWLDistinctMembers.Quad(), Object: head},
		{Subject: head, Predicate: owl.RDFFirst.Quad(), Object: owl.IRI(anna).Quad()},
		{Subject: head, Predicate: owl.RDFRest.Quad(), Object: next},
		{Subject: next, Predicate: owl.RDFFirst.Quad(), Object: owl.IRI(heinz).Quad()},
		{Subject: next, Predicate: owl.RDFRest.Quad(), Object: head},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cyclic")
}

func TestQuadsCyclicExpression(t *testing.T) {
	ce := quad.BNode("c")
	_, err := FromQuads([]quad.Quad{
		{Subject: owl.IRI(male).Quad(), Predicate: owl.RDFSSubClassOf.Quad(), Object: ce},
		{Subject: ce, Predicate: owl.OWLComplementOf.Quad(), Object: ce},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cyclic")
}

func TestWriteReadNQuads(t *testing.T) {
	o := societyOntology()
	format := quad.FormatByName("nquads")
	require.NotNil(t, format)

	var buf bytes.Buffer
	require.NoError(t, o.Write(&buf, format))

	got, err := Read(&buf, format)
	require.NoError(t, err)
	require.Equal(t, axiomStrings(o), axiomStrings(got))
}

func TestSaveLoadFile(t *testing.T) {
	o := societyOntology()
	path := filepath.Join(t.TempDir(), "society.nq")
	require.NoError(t, o.Save(path, ""))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())

	got, err := Load(path, "")
	require.NoError(t, err)
	require.Equal(t, o.IRI(), got.IRI())
	require.Equal(t, axiomStrings(o), axiomStrings(got))
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("onto.nq", "")
	require.NoError(t, err)
	require.Equal(t, "nquads", f.Name)

	f, err = FormatFor("onto.nq.gz", "")
	require.NoError(t, err)
	require.Equal(t, "nquads", f.Name)

	f, err = FormatFor("onto.bin", "")
	require.NoError(t, err)
	require.Equal(t, DefaultFormat, f.Name)

	_, err = FormatFor("onto.nq", "no-such-format")
	require.Error(t, err)
}
