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

// Package reasoner derives entailed facts from the asserted axioms of
// an ontology.
package reasoner

import (
	"errors"

	"github.com/owlgraph/owlgo/ontology"
	"github.com/owlgraph/owlgo/owl"
)

// ErrNotSupported is returned by reasoners that do not implement a
// particular derivation.
var ErrNotSupported = errors.New("reasoner: derivation not supported")

// Interface is the reasoner surface over a root ontology. The direct
// flag restricts hierarchy queries to one level; onlyNamed drops
// anonymous class expressions from results.
type Interface interface {
	// RootOntology returns the ontology the reasoner works on.
	RootOntology() *ontology.Ontology
	// Flush makes the reasoner take pending ontology changes into account.
	Flush()

	Instances(ce owl.ClassExpression, direct bool) ([]owl.NamedIndividual, error)
	Types(ind owl.NamedIndividual, direct bool) ([]owl.Class, error)

	SubClasses(ce owl.ClassExpression, direct, onlyNamed bool) ([]owl.ClassExpression, error)
	SuperClasses(ce owl.ClassExpression, direct, onlyNamed bool) ([]owl.ClassExpression, error)
	EquivalentClasses(ce owl.ClassExpression, onlyNamed bool) ([]owl.ClassExpression, error)
	DisjointClasses(ce owl.ClassExpression, onlyNamed bool) ([]owl.ClassExpression, error)

	SubObjectProperties(op owl.ObjectProperty, direct bool) ([]owl.ObjectProperty, error)
	SuperObjectProperties(op owl.ObjectProperty, direct bool) ([]owl.ObjectProperty, error)
	EquivalentObjectProperties(op owl.ObjectProperty) ([]owl.ObjectPropertyExpression, error)
	DisjointObjectProperties(op owl.ObjectProperty) ([]owl.ObjectPropertyExpression, error)
	InverseObjectProperties(op owl.ObjectProperty) ([]owl.ObjectPropertyExpression, error)

	SubDataProperties(dp owl.DataProperty, direct bool) ([]owl.DataProperty, error)
	SuperDataProperties(dp owl.DataProperty, direct bool) ([]owl.DataProperty, error)
	EquivalentDataProperties(dp owl.DataProperty) ([]owl.DataProperty, error)
	DisjointDataProperties(dp owl.DataProperty) ([]owl.DataProperty, error)

	ObjectPropertyDomains(op owl.ObjectProperty, direct bool) ([]owl.ClassExpression, error)
	ObjectPropertyRanges(op owl.ObjectProperty, direct bool) ([]owl.ClassExpression, error)
	DataPropertyDomains(dp owl.DataProperty, direct bool) ([]owl.ClassExpression, error)

	ObjectPropertyValues(ind owl.NamedIndividual, pe owl.ObjectPropertyExpression) ([]owl.NamedIndividual, error)
	DataPropertyValues(ind owl.NamedIndividual, dp owl.DataProperty) ([]owl.Literal, error)

	SameIndividuals(ind owl.NamedIndividual) ([]owl.NamedIndividual, error)
	DifferentIndividuals(ind owl.NamedIndividual) ([]owl.NamedIndividual, error)
}
