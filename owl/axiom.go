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

// Axiom is a statement about classes, properties or individuals.
type Axiom interface {
	Object
	axiom()
}

// Declaration introduces an entity into an ontology's signature.
type Declaration struct {
	Entity Entity
}

func (a Declaration) String() string {
	var kind string
	switch a.Entity.(type) {
	case Class:
		kind = "Class"
	case ObjectProperty:
		kind = "ObjectProperty"
	case DataProperty:
		kind = "DataProperty"
	case AnnotationProperty:
		kind = "AnnotationProperty"
	case NamedIndividual:
		kind = "NamedIndividual"
	case Datatype:
		kind = "Datatype"
	}
	return "Declaration(" + kind + "(" + a.Entity.String() + "))"
}
func (a Declaration) axiom() {}

// SubClassOf states that Sub is a subclass of Super.
type SubClassOf struct {
	Sub   ClassExpression
	Super ClassExpression
}

func (a SubClassOf) String() string {
	return "SubClassOf(" + a.Sub.String() + " " + a.Super.String() + ")"
}
func (a SubClassOf) axiom() {}

// EquivalentClasses states that all operands denote the same class.
type EquivalentClasses []ClassExpression

func (a EquivalentClasses) String() string {
	return naryString("EquivalentClasses", objectStrings(a))
}
func (a EquivalentClasses) axiom() {}

// DisjointClasses states that the operands are pairwise disjoint.
type DisjointClasses []ClassExpression

func (a DisjointClasses) String() string {
	return naryString("DisjointClasses", objectStrings(a))
}
func (a DisjointClasses) axiom() {}

// DisjointUnion states that Class is the disjoint union of the operands.
type DisjointUnion struct {
	Class    Class
	Operands []ClassExpression
}

func (a DisjointUnion) String() string {
	return naryString("DisjointUnion", append([]string{a.Class.String()}, objectStrings(a.Operands)...))
}
func (a DisjointUnion) axiom() {}

// SubObjectPropertyOf states that Sub is a subproperty of Super.
type SubObjectPropertyOf struct {
	Sub   ObjectPropertyExpression
	Super ObjectPropertyExpression
}

func (a SubObjectPropertyOf) String() string {
	return "SubObjectPropertyOf(" + a.Sub.String() + " " + a.Super.String() + ")"
}
func (a SubObjectPropertyOf) axiom() {}

// EquivalentObjectProperties states that all operands denote the same property.
type EquivalentObjectProperties []ObjectPropertyExpression

func (a EquivalentObjectProperties) String() string {
	return naryString("EquivalentObjectProperties", objectStrings(a))
}
func (a EquivalentObjectProperties) axiom() {}

// DisjointObjectProperties states that the operands are pairwise disjoint.
type DisjointObjectProperties []ObjectPropertyExpression

func (a DisjointObjectProperties) String() string {
	return naryString("DisjointObjectProperties", objectStrings(a))
}
func (a DisjointObjectProperties) axiom() {}

// InverseObjectProperties states that First and Second are inverses.
type InverseObjectProperties struct {
	First  ObjectPropertyExpression
	Second ObjectPropertyExpression
}

func (a InverseObjectProperties) String() string {
	return "InverseObjectProperties(" + a.First.String() + " " + a.Second.String() + ")"
}
func (a InverseObjectProperties) axiom() {}

// ObjectPropertyDomain states the domain of an object property.
type ObjectPropertyDomain struct {
	Property ObjectPropertyExpression
	Domain   ClassExpression
}

func (a ObjectPropertyDomain) String() string {
	return "ObjectPropertyDomain(" + a.Property.String() + " " + a.Domain.String() + ")"
}
func (a ObjectPropertyDomain) axiom() {}

// ObjectPropertyRange states the range of an object property.
type ObjectPropertyRange struct {
	Property ObjectPropertyExpression
	Range    ClassExpression
}

func (a ObjectPropertyRange) String() string {
	return "ObjectPropertyRange(" + a.Property.String() + " " + a.Range.String() + ")"
}
func (a ObjectPropertyRange) axiom() {}

// Characteristic is a global trait of an object property.
type Characteristic int

const (
	Functional Characteristic = iota
	InverseFunctional
	Symmetric
	Asymmetric
	Transitive
	Reflexive
	Irreflexive
)

func (c Characteristic) String() string {
	switch c {
	case Functional:
		return "Functional"
	case InverseFunctional:
		return "InverseFunctional"
	case Symmetric:
		return "Symmetric"
	case Asymmetric:
		return "Asymmetric"
	case Transitive:
		return "Transitive"
	case Reflexive:
		return "Reflexive"
	case Irreflexive:
		return "Irreflexive"
	}
	return "Unknown"
}

// ClassIRI returns the owl: class that asserts the characteristic in RDF.
func (c Characteristic) ClassIRI() IRI {
	switch c {
	case Functional:
		return OWLFunctionalProperty
	case InverseFunctional:
		return OWLInverseFunctionalProperty
	case Symmetric:
		return OWLSymmetricProperty
	case Asymmetric:
		return OWLAsymmetricProperty
	case Transitive:
		return OWLTransitiveProperty
	case Reflexive:
		return OWLReflexiveProperty
	case Irreflexive:
		return OWLIrreflexiveProperty
	}
	return ""
}

// CharacteristicFromIRI is the inverse of ClassIRI.
func CharacteristicFromIRI(iri IRI) (Characteristic, bool) {
	for c := Functional; c <= Irreflexive; c++ {
		if c.ClassIRI() == iri {
			return c, true
		}
	}
	return 0, false
}

// ObjectPropertyCharacteristic asserts a characteristic of an object
// property, e.g. FunctionalObjectProperty(hasFather).
type ObjectPropertyCharacteristic struct {
	Property       ObjectPropertyExpression
	Characteristic Characteristic
}

func (a ObjectPropertyCharacteristic) String() string {
	return a.Characteristic.String() + "ObjectProperty(" + a.Property.String() + ")"
}
func (a ObjectPropertyCharacteristic) axiom() {}

// SubDataPropertyOf states that Sub is a subproperty of Super.
type SubDataPropertyOf struct {
	Sub   DataProperty
	Super DataProperty
}

func (a SubDataPropertyOf) String() string {
	return "SubDataPropertyOf(" + a.Sub.String() + " " + a.Super.String() + ")"
}
func (a SubDataPropertyOf) axiom() {}

// EquivalentDataProperties states that all operands denote the same property.
type EquivalentDataProperties []DataProperty

func (a EquivalentDataProperties) String() string {
	return naryString("EquivalentDataProperties", objectStrings(a))
}
func (a EquivalentDataProperties) axiom() {}

// DisjointDataProperties states that the operands are pairwise disjoint.
type DisjointDataProperties []DataProperty

func (a DisjointDataProperties) String() string {
	return naryString("DisjointDataProperties", objectStrings(a))
}
func (a DisjointDataProperties) axiom() {}

// DataPropertyDomain states the domain of a data property.
type DataPropertyDomain struct {
	Property DataProperty
	Domain   ClassExpression
}

func (a DataPropertyDomain) String() string {
	return "DataPropertyDomain(" + a.Property.String() + " " + a.Domain.String() + ")"
}
func (a DataPropertyDomain) axiom() {}

// DataPropertyRange states the range of a data property.
type DataPropertyRange struct {
	Property DataProperty
	Range    DataRange
}

func (a DataPropertyRange) String() string {
	return "DataPropertyRange(" + a.Property.String() + " " + a.Range.String() + ")"
}
func (a DataPropertyRange) axiom() {}

// FunctionalDataProperty states that a data property has at most one
// value per individual.
type FunctionalDataProperty struct {
	Property DataProperty
}

func (a FunctionalDataProperty) String() string {
	return "FunctionalDataProperty(" + a.Property.String() + ")"
}
func (a FunctionalDataProperty) axiom() {}

// DatatypeDefinition names a data range with a fresh datatype.
type DatatypeDefinition struct {
	Datatype Datatype
	Range    DataRange
}

func (a DatatypeDefinition) String() string {
	return "DatatypeDefinition(" + a.Datatype.String() + " " + a.Range.String() + ")"
}
func (a DatatypeDefinition) axiom() {}

// HasKey states that the listed properties uniquely identify the
// instances of the class expression.
type HasKey struct {
	Class            ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []DataProperty
}

func (a HasKey) String() string {
	props := append(objectStrings(a.ObjectProperties), objectStrings(a.DataProperties)...)
	return naryString("HasKey", append([]string{a.Class.String()}, props...))
}
func (a HasKey) axiom() {}

// ClassAssertion states that an individual is an instance of a class
// expression.
type ClassAssertion struct {
	Class      ClassExpression
	Individual NamedIndividual
}

func (a ClassAssertion) String() string {
	return "ClassAssertion(" + a.Class.String() + " " + a.Individual.String() + ")"
}
func (a ClassAssertion) axiom() {}

// ObjectPropertyAssertion relates two individuals by an object property.
type ObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  NamedIndividual
	Object   NamedIndividual
}

func (a ObjectPropertyAssertion) String() string {
	return "ObjectPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Object.String() + ")"
}
func (a ObjectPropertyAssertion) axiom() {}

// NegativeObjectPropertyAssertion states that two individuals are not
// related by an object property.
type NegativeObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  NamedIndividual
	Object   NamedIndividual
}

func (a NegativeObjectPropertyAssertion) String() string {
	return "NegativeObjectPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Object.String() + ")"
}
func (a NegativeObjectPropertyAssertion) axiom() {}

// DataPropertyAssertion relates an individual to a literal.
type DataPropertyAssertion struct {
	Property DataProperty
	Subject  NamedIndividual
	Value    Literal
}

func (a DataPropertyAssertion) String() string {
	return "DataPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Value.String() + ")"
}
func (a DataPropertyAssertion) axiom() {}

// NegativeDataPropertyAssertion states that an individual does not have
// the given literal value.
type NegativeDataPropertyAssertion struct {
	Property DataProperty
	Subject  NamedIndividual
	Value    Literal
}

func (a NegativeDataPropertyAssertion) String() string {
	return "NegativeDataPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Value.String() + ")"
}
func (a NegativeDataPropertyAssertion) axiom() {}

// SameIndividual states that all operands denote the same individual.
type SameIndividual []NamedIndividual

func (a SameIndividual) String() string {
	return naryString("SameIndividual", objectStrings(a))
}
func (a SameIndividual) axiom() {}

// DifferentIndividuals states that the operands are pairwise distinct.
type DifferentIndividuals []NamedIndividual

func (a DifferentIndividuals) String() string {
	return naryString("DifferentIndividuals", objectStrings(a))
}
func (a DifferentIndividuals) axiom() {}

// AnnotationValue is an IRI or a literal used as an annotation value.
type AnnotationValue interface {
	Object
	annotationValue()
}

func (i IRI) annotationValue()     {}
func (l Literal) annotationValue() {}

// Annotation pairs an annotation property with a value.
type Annotation struct {
	Property AnnotationProperty
	Value    AnnotationValue
}

func (a Annotation) String() string {
	return "Annotation(" + a.Property.String() + " " + a.Value.String() + ")"
}

// AnnotationAssertion annotates an IRI, e.g. with an rdfs:label.
type AnnotationAssertion struct {
	Property AnnotationProperty
	Subject  IRI
	Value    AnnotationValue
}

func (a AnnotationAssertion) String() string {
	return "AnnotationAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Value.String() + ")"
}
func (a AnnotationAssertion) axiom() {}

// SubAnnotationPropertyOf states that Sub is a subproperty of Super.
type SubAnnotationPropertyOf struct {
	Sub   AnnotationProperty
	Super AnnotationProperty
}

func (a SubAnnotationPropertyOf) String() string {
	return "SubAnnotationPropertyOf(" + a.Sub.String() + " " + a.Super.String() + ")"
}
func (a SubAnnotationPropertyOf) axiom() {}

// AnnotationPropertyDomain states the domain IRI of an annotation property.
type AnnotationPropertyDomain struct {
	Property AnnotationProperty
	Domain   IRI
}

func (a AnnotationPropertyDomain) String() string {
	return "AnnotationPropertyDomain(" + a.Property.String() + " " + a.Domain.String() + ")"
}
func (a AnnotationPropertyDomain) axiom() {}

// AnnotationPropertyRange states the range IRI of an annotation property.
type AnnotationPropertyRange struct {
	Property AnnotationProperty
	Range    IRI
}

func (a AnnotationPropertyRange) String() string {
	return "AnnotationPropertyRange(" + a.Property.String() + " " + a.Range.String() + ")"
}
func (a AnnotationPropertyRange) axiom() {}

// IsTBox reports whether the axiom is terminological: class and property
// axioms, declarations, datatype definitions and annotations.
func IsTBox(a Axiom) bool {
	return !IsABox(a)
}

// IsABox reports whether the axiom asserts facts about individuals.
func IsABox(a Axiom) bool {
	switch a.(type) {
	case ClassAssertion, ObjectPropertyAssertion, NegativeObjectPropertyAssertion,
		DataPropertyAssertion, NegativeDataPropertyAssertion,
		SameIndividual, DifferentIndividuals:
		return true
	}
	return false
}
