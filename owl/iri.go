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

// Package owl implements the OWL 2 object model: IRIs, entities, class
// expressions, data ranges, literals and axioms.
package owl

import (
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"
)

// IRI is an Internationalized Resource Identifier naming an ontology entity.
// It is stored as the full identifier string; the namespace/remainder split is
// recomputed on demand at the last of '/', ':' or '#'.
type IRI string

// NewIRI joins a namespace and a remainder into an IRI. The namespace must end
// with one of '/', ':' or '#'.
func NewIRI(namespace, remainder string) (IRI, error) {
	if namespace == "" {
		return "", fmt.Errorf("owl: empty namespace")
	}
	switch namespace[len(namespace)-1] {
	case '/', ':', '#':
	default:
		return "", fmt.Errorf("owl: namespace %q must end with '/', ':' or '#'", namespace)
	}
	return IRI(namespace + remainder), nil
}

// MustIRI is like NewIRI but panics on an invalid namespace. It is intended
// for vocabulary constants and tests.
func MustIRI(namespace, remainder string) IRI {
	iri, err := NewIRI(namespace, remainder)
	if err != nil {
		panic(err)
	}
	return iri
}

// ParseIRI validates a full IRI string. It rejects whitespace and strings
// without a namespace separator.
func ParseIRI(s string) (IRI, error) {
	if strings.ContainsAny(s, " \t\r\n") {
		return "", fmt.Errorf("owl: IRI %q contains whitespace", s)
	}
	if !strings.ContainsAny(s, "/:#") {
		return "", fmt.Errorf("owl: IRI %q has no namespace separator", s)
	}
	return IRI(s), nil
}

func (iri IRI) split() int {
	i := strings.LastIndexAny(string(iri), "/:#")
	return i + 1
}

// Namespace returns the namespace part of the IRI, up to and including the
// last of '/', ':' or '#'.
func (iri IRI) Namespace() string { return string(iri)[:iri.split()] }

// Remainder returns the part of the IRI after the namespace, usually an
// NCName.
func (iri IRI) Remainder() string { return string(iri)[iri.split():] }

// IsNothing reports whether this IRI names owl:Nothing.
func (iri IRI) IsNothing() bool { return iri == OWLNothing }

// IsThing reports whether this IRI names owl:Thing.
func (iri IRI) IsThing() bool { return iri == OWLThing }

// IsReservedVocabulary reports whether the IRI belongs to the RDF, RDFS, XSD
// or OWL namespace.
func (iri IRI) IsReservedVocabulary() bool {
	ns := iri.Namespace()
	return ns == NamespaceOWL || ns == NamespaceRDF || ns == NamespaceRDFS || ns == NamespaceXSD
}

func (iri IRI) String() string { return string(iri) }

// Quad converts the IRI to a quad value.
func (iri IRI) Quad() quad.IRI { return quad.IRI(iri) }
