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

package owl

import "github.com/cayleygraph/quad/voc"

// Reserved vocabulary namespaces.
const (
	NamespaceOWL  = `http://www.w3.org/2002/07/owl#`
	NamespaceRDF  = `http://www.w3.org/1999/02/22-rdf-syntax-ns#`
	NamespaceRDFS = `http://www.w3.org/2000/01/rdf-schema#`
	NamespaceXSD  = `http://www.w3.org/2001/XMLSchema#`
)

func init() {
	voc.RegisterPrefix("owl:", NamespaceOWL)
	voc.RegisterPrefix("xsd:", NamespaceXSD)
}

// OWL 2 vocabulary terms used by the model and the RDF mapping.
const (
	OWLThing                IRI = NamespaceOWL + "Thing"
	OWLNothing              IRI = NamespaceOWL + "Nothing"
	OWLTopObjectProperty    IRI = NamespaceOWL + "topObjectProperty"
	OWLBottomObjectProperty IRI = NamespaceOWL + "bottomObjectProperty"
	OWLTopDataProperty      IRI = NamespaceOWL + "topDataProperty"
	OWLBottomDataProperty   IRI = NamespaceOWL + "bottomDataProperty"

	OWLClassIRI              IRI = NamespaceOWL + "Class"
	OWLObjectPropertyIRI     IRI = NamespaceOWL + "ObjectProperty"
	OWLDatatypePropertyIRI   IRI = NamespaceOWL + "DatatypeProperty"
	OWLAnnotationPropertyIRI IRI = NamespaceOWL + "AnnotationProperty"
	OWLNamedIndividualIRI    IRI = NamespaceOWL + "NamedIndividual"
	OWLOntologyIRI           IRI = NamespaceOWL + "Ontology"
	OWLRestrictionIRI        IRI = NamespaceOWL + "Restriction"

	OWLOnProperty              IRI = NamespaceOWL + "onProperty"
	OWLOnClass                 IRI = NamespaceOWL + "onClass"
	OWLOnDatatype              IRI = NamespaceOWL + "onDatatype"
	OWLOnDataRange             IRI = NamespaceOWL + "onDataRange"
	OWLSomeValuesFrom          IRI = NamespaceOWL + "someValuesFrom"
	OWLAllValuesFrom           IRI = NamespaceOWL + "allValuesFrom"
	OWLHasValue                IRI = NamespaceOWL + "hasValue"
	OWLHasSelf                 IRI = NamespaceOWL + "hasSelf"
	OWLMinCardinality          IRI = NamespaceOWL + "minCardinality"
	OWLMaxCardinality          IRI = NamespaceOWL + "maxCardinality"
	OWLCardinality             IRI = NamespaceOWL + "cardinality"
	OWLMinQualifiedCardinality IRI = NamespaceOWL + "minQualifiedCardinality"
	OWLMaxQualifiedCardinality IRI = NamespaceOWL + "maxQualifiedCardinality"
	OWLQualifiedCardinality    IRI = NamespaceOWL + "qualifiedCardinality"

	OWLIntersectionOf       IRI = NamespaceOWL + "intersectionOf"
	OWLUnionOf              IRI = NamespaceOWL + "unionOf"
	OWLComplementOf         IRI = NamespaceOWL + "complementOf"
	OWLOneOf                IRI = NamespaceOWL + "oneOf"
	OWLInverseOf            IRI = NamespaceOWL + "inverseOf"
	OWLDatatypeComplementOf IRI = NamespaceOWL + "datatypeComplementOf"
	OWLWithRestrictions     IRI = NamespaceOWL + "withRestrictions"

	OWLEquivalentClass       IRI = NamespaceOWL + "equivalentClass"
	OWLDisjointWith          IRI = NamespaceOWL + "disjointWith"
	OWLDisjointUnionOf       IRI = NamespaceOWL + "disjointUnionOf"
	OWLEquivalentProperty    IRI = NamespaceOWL + "equivalentProperty"
	OWLPropertyDisjointWith  IRI = NamespaceOWL + "propertyDisjointWith"
	OWLSameAs                IRI = NamespaceOWL + "sameAs"
	OWLDifferentFrom         IRI = NamespaceOWL + "differentFrom"
	OWLAllDifferent          IRI = NamespaceOWL + "AllDifferent"
	OWLAllDisjointClasses    IRI = NamespaceOWL + "AllDisjointClasses"
	OWLAllDisjointProperties IRI = NamespaceOWL + "AllDisjointProperties"
	OWLDistinctMembers       IRI = NamespaceOWL + "distinctMembers"
	OWLMembers               IRI = NamespaceOWL + "members"
	OWLHasKey                IRI = NamespaceOWL + "hasKey"

	OWLNegativePropertyAssertion IRI = NamespaceOWL + "NegativePropertyAssertion"
	OWLSourceIndividual          IRI = NamespaceOWL + "sourceIndividual"
	OWLAssertionProperty         IRI = NamespaceOWL + "assertionProperty"
	OWLTargetIndividual          IRI = NamespaceOWL + "targetIndividual"
	OWLTargetValue               IRI = NamespaceOWL + "targetValue"

	OWLFunctionalProperty        IRI = NamespaceOWL + "FunctionalProperty"
	OWLInverseFunctionalProperty IRI = NamespaceOWL + "InverseFunctionalProperty"
	OWLSymmetricProperty         IRI = NamespaceOWL + "SymmetricProperty"
	OWLAsymmetricProperty        IRI = NamespaceOWL + "AsymmetricProperty"
	OWLTransitiveProperty        IRI = NamespaceOWL + "TransitiveProperty"
	OWLReflexiveProperty         IRI = NamespaceOWL + "ReflexiveProperty"
	OWLIrreflexiveProperty       IRI = NamespaceOWL + "IrreflexiveProperty"
)

// RDF and RDFS terms used by the RDF mapping.
const (
	RDFType  IRI = NamespaceRDF + "type"
	RDFFirst IRI = NamespaceRDF + "first"
	RDFRest  IRI = NamespaceRDF + "rest"
	RDFNil   IRI = NamespaceRDF + "nil"

	RDFSSubClassOf    IRI = NamespaceRDFS + "subClassOf"
	RDFSSubPropertyOf IRI = NamespaceRDFS + "subPropertyOf"
	RDFSDomain        IRI = NamespaceRDFS + "domain"
	RDFSRange         IRI = NamespaceRDFS + "range"
	RDFSLabel         IRI = NamespaceRDFS + "label"
	RDFSComment       IRI = NamespaceRDFS + "comment"
	RDFSDatatype      IRI = NamespaceRDFS + "Datatype"
	RDFSLiteral       IRI = NamespaceRDFS + "Literal"
)

// XSD datatype IRIs recognised by the literal model.
const (
	XSDBoolean            IRI = NamespaceXSD + "boolean"
	XSDString             IRI = NamespaceXSD + "string"
	XSDInteger            IRI = NamespaceXSD + "integer"
	XSDInt                IRI = NamespaceXSD + "int"
	XSDLong               IRI = NamespaceXSD + "long"
	XSDShort              IRI = NamespaceXSD + "short"
	XSDByte               IRI = NamespaceXSD + "byte"
	XSDNonNegativeInteger IRI = NamespaceXSD + "nonNegativeInteger"
	XSDNonPositiveInteger IRI = NamespaceXSD + "nonPositiveInteger"
	XSDPositiveInteger    IRI = NamespaceXSD + "positiveInteger"
	XSDNegativeInteger    IRI = NamespaceXSD + "negativeInteger"
	XSDDouble             IRI = NamespaceXSD + "double"
	XSDFloat              IRI = NamespaceXSD + "float"
	XSDDecimal            IRI = NamespaceXSD + "decimal"
	XSDDate               IRI = NamespaceXSD + "date"
	XSDDateTime           IRI = NamespaceXSD + "dateTime"
	XSDDuration           IRI = NamespaceXSD + "duration"

	XSDMinInclusive IRI = NamespaceXSD + "minInclusive"
	XSDMinExclusive IRI = NamespaceXSD + "minExclusive"
	XSDMaxInclusive IRI = NamespaceXSD + "maxInclusive"
	XSDMaxExclusive IRI = NamespaceXSD + "maxExclusive"
	XSDLength       IRI = NamespaceXSD + "length"
	XSDMinLength    IRI = NamespaceXSD + "minLength"
	XSDMaxLength    IRI = NamespaceXSD + "maxLength"
	XSDPattern      IRI = NamespaceXSD + "pattern"
)
