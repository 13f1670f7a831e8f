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

// Class is an OWL 2 named class.
type Class IRI

func (c Class) IRI() IRI         { return IRI(c) }
func (c Class) String() string   { return string(c) }
func (c Class) IsThing() bool    { return IRI(c).IsThing() }
func (c Class) IsNothing() bool  { return IRI(c).IsNothing() }
func (c Class) entity()          {}
func (c Class) classExpression() {}

// ObjectProperty is a named object property.
type ObjectProperty IRI

func (p ObjectProperty) IRI() IRI                  { return IRI(p) }
func (p ObjectProperty) String() string            { return string(p) }
func (p ObjectProperty) Named() ObjectProperty     { return p }
func (p ObjectProperty) IsInverse() bool           { return false }
func (p ObjectProperty) entity()                   {}
func (p ObjectProperty) objectPropertyExpression() {}

// ObjectInverseOf is the inverse of a named object property.
type ObjectInverseOf struct {
	Property ObjectProperty
}

func (p ObjectInverseOf) String() string {
	return "ObjectInverseOf(" + string(p.Property) + ")"
}
func (p ObjectInverseOf) Named() ObjectProperty     { return p.Property }
func (p ObjectInverseOf) IsInverse() bool           { return true }
func (p ObjectInverseOf) objectPropertyExpression() {}

// ObjectPropertyExpression is a named object property or the inverse of one.
type ObjectPropertyExpression interface {
	Object
	// Named returns the named property the expression is built from.
	Named() ObjectProperty
	// IsInverse reports whether the expression is an ObjectInverseOf.
	IsInverse() bool
	objectPropertyExpression()
}

// DataProperty is a named data property.
type DataProperty IRI

func (p DataProperty) IRI() IRI       { return IRI(p) }
func (p DataProperty) String() string { return string(p) }
func (p DataProperty) entity()        {}

// AnnotationProperty is a named annotation property.
type AnnotationProperty IRI

func (p AnnotationProperty) IRI() IRI       { return IRI(p) }
func (p AnnotationProperty) String() string { return string(p) }
func (p AnnotationProperty) entity()        {}

// NamedIndividual is a named individual.
type NamedIndividual IRI

func (i NamedIndividual) IRI() IRI       { return IRI(i) }
func (i NamedIndividual) String() string { return string(i) }
func (i NamedIndividual) entity()        {}

// Datatype is a named datatype, e.g. xsd:integer.
type Datatype IRI

func (d Datatype) IRI() IRI       { return IRI(d) }
func (d Datatype) String() string { return string(d) }
func (d Datatype) entity()        {}
func (d Datatype) dataRange()     {}

// Built-in entities.
var (
	Thing   = Class(OWLThing)
	Nothing = Class(OWLNothing)

	TopObjectProperty    = ObjectProperty(OWLTopObjectProperty)
	BottomObjectProperty = ObjectProperty(OWLBottomObjectProperty)
	TopDataProperty      = DataProperty(OWLTopDataProperty)
	BottomDataProperty   = DataProperty(OWLBottomDataProperty)

	// TopDatatype is rdfs:Literal, the top of the datatype hierarchy.
	TopDatatype = Datatype(RDFSLiteral)

	BooleanDatatype  = Datatype(XSDBoolean)
	StringDatatype   = Datatype(XSDString)
	IntegerDatatype  = Datatype(XSDInteger)
	DoubleDatatype   = Datatype(XSDDouble)
	FloatDatatype    = Datatype(XSDFloat)
	DecimalDatatype  = Datatype(XSDDecimal)
	DateDatatype     = Datatype(XSDDate)
	DateTimeDatatype = Datatype(XSDDateTime)
	DurationDatatype = Datatype(XSDDuration)
)
