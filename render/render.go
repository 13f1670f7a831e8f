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

// Package render prints model objects in description logic and
// Manchester syntax.
package render

import (
	"github.com/owlgraph/owlgo/owl"
)

// ShortFormProvider maps an entity to its display name.
type ShortFormProvider func(owl.Entity) string

// SimpleShortForm renders an entity as the remainder of its IRI, with
// the well-known prefix for reserved vocabulary.
func SimpleShortForm(e owl.Entity) string {
	iri := e.IRI()
	switch iri.Namespace() {
	case owl.NamespaceOWL:
		return "owl:" + iri.Remainder()
	case owl.NamespaceRDF:
		return "rdf:" + iri.Remainder()
	case owl.NamespaceRDFS:
		return "rdfs:" + iri.Remainder()
	case owl.NamespaceXSD:
		return "xsd:" + iri.Remainder()
	}
	return iri.Remainder()
}

// LabelShortForm renders an entity by a label lookup, typically backed
// by rdfs:label annotations, falling back to SimpleShortForm.
func LabelShortForm(lookup func(owl.IRI) (string, bool)) ShortFormProvider {
	return func(e owl.Entity) string {
		if label, ok := lookup(e.IRI()); ok {
			return label
		}
		return SimpleShortForm(e)
	}
}

// needsParens reports whether the object is wrapped in parentheses when
// nested inside another expression: boolean expressions, restrictions
// and n-ary data ranges.
func needsParens(o owl.Object) bool {
	switch o.(type) {
	case owl.ObjectComplementOf, owl.ObjectIntersectionOf, owl.ObjectUnionOf,
		owl.ObjectSomeValuesFrom, owl.ObjectAllValuesFrom, owl.ObjectHasValue,
		owl.ObjectHasSelf, owl.ObjectMinCardinality, owl.ObjectMaxCardinality,
		owl.ObjectExactCardinality,
		owl.DataSomeValuesFrom, owl.DataAllValuesFrom, owl.DataHasValue,
		owl.DataMinCardinality, owl.DataMaxCardinality, owl.DataExactCardinality,
		owl.DataIntersectionOf, owl.DataUnionOf:
		return true
	}
	return false
}
