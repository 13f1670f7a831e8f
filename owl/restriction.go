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

import "strconv"

// Restriction is a class expression that restricts a property.
type Restriction interface {
	ClassExpression
	restriction()
}

// ObjectRestriction is a restriction on an object property expression.
type ObjectRestriction interface {
	Restriction
	ObjectProperty() ObjectPropertyExpression
}

// DataRestriction is a restriction on a data property.
type DataRestriction interface {
	Restriction
	DataProperty() DataProperty
}

// ObjectSomeValuesFrom is the existential restriction on an object property.
type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectSomeValuesFrom) String() string {
	return "ObjectSomeValuesFrom(" + e.Property.String() + " " + e.Filler.String() + ")"
}
func (e ObjectSomeValuesFrom) ObjectProperty() ObjectPropertyExpression { return e.Property }
func (e ObjectSomeValuesFrom) classExpression()                         {}
func (e ObjectSomeValuesFrom) restriction()                             {}

// ObjectAllValuesFrom is the universal restriction on an object property.
type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectAllValuesFrom) String() string {
	return "ObjectAllValuesFrom(" + e.Property.String() + " " + e.Filler.String() + ")"
}
func (e ObjectAllValuesFrom) ObjectProperty() ObjectPropertyExpression { return e.Property }
func (e ObjectAllValuesFrom) classExpression()                         {}
func (e ObjectAllValuesFrom) restriction()                             {}

// ObjectHasValue restricts an object property to a single individual.
type ObjectHasValue struct {
	Property   ObjectPropertyExpression
	Individual NamedIndividual
}

func (e ObjectHasValue) String() string {
	return "ObjectHasValue(" + e.Property.String() + " " + e.Individual.String() + ")"
}
func (e ObjectHasValue) ObjectProperty() ObjectPropertyExpression { return e.Property }
func (e ObjectHasValue) classExpression()                         {}
func (e ObjectHasValue) restriction()                             {}

// AsSomeValuesFrom rewrites the restriction as ∃p.{a}.
func (e ObjectHasValue) AsSomeValuesFrom() ObjectSomeValuesFrom {
	return ObjectSomeValuesFrom{Property: e.Property, Filler: ObjectOneOf{e.Individual}}
}

// ObjectHasSelf is the local reflexivity restriction.
type ObjectHasSelf struct {
	Property ObjectPropertyExpression
}

func (e ObjectHasSelf) String() string {
	return "ObjectHasSelf(" + e.Property.String() + ")"
}
func (e ObjectHasSelf) ObjectProperty() ObjectPropertyExpression { return e.Property }
func (e ObjectHasSelf) classExpression()                         {}
func (e ObjectHasSelf) restriction()                             {}

func cardinalityString(name string, n int, prop, filler string) string {
	return name + "(" + strconv.Itoa(n) + " " + prop + " " + filler + ")"
}

// ObjectCardinalityRestriction is one of the three object cardinality forms.
type ObjectCardinalityRestriction interface {
	ObjectRestriction
	Cardinality() int
	ClassFiller() ClassExpression
}

// ObjectMinCardinality requires at least N successors in the filler.
type ObjectMinCardinality struct {
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectMinCardinality) String() string {
	return cardinalityString("ObjectMinCardinality", e.N, e.Property.String(), e.Filler.String())
}
func (e ObjectMinCardinality) ObjectProperty() ObjectPropertyExpression { return e.Property }
func (e ObjectMinCardinality) Cardinality() int                         { return e.N }
func (e ObjectMinCardinality) ClassFiller() ClassExpression             { return e.Filler }
func (e ObjectMinCardinality) classExpression()                         {}
func (e ObjectMinCardinality) restriction()                             {}

// ObjectMaxCardinality allows at most N successors in the filler.
type ObjectMaxCardinality struct {
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectMaxCardinality) String() string {
	return cardinalityString("ObjectMaxCardinality", e.N, e.Property.String(), e.Filler.String())
}
func (e ObjectMaxCardinality) ObjectProperty() ObjectPropertyExpression { return e.Property }
func (e ObjectMaxCardinality) Cardinality() int                         { return e.N }
func (e ObjectMaxCardinality) ClassFiller() ClassExpression             { return e.Filler }
func (e ObjectMaxCardinality) classExpression()                         {}
func (e ObjectMaxCardinality) restriction()                             {}

// ObjectExactCardinality requires exactly N successors in the filler.
type ObjectExactCardinality struct {
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectExactCardinality) String() string {
	return cardinalityString("ObjectExactCardinality", e.N, e.Property.String(), e.Filler.String())
}
func (e ObjectExactCardinality) ObjectProperty() ObjectPropertyExpression { return e.Property }
func (e ObjectExactCardinality) Cardinality() int                         { return e.N }
func (e ObjectExactCardinality) ClassFiller() ClassExpression             { return e.Filler }
func (e ObjectExactCardinality) classExpression()                         {}
func (e ObjectExactCardinality) restriction()                             {}

// AsIntersection rewrites exact cardinality as the intersection of the
// matching min and max cardinality restrictions.
func (e ObjectExactCardinality) AsIntersection() ObjectIntersectionOf {
	return ObjectIntersectionOf{
		ObjectMinCardinality{N: e.N, Property: e.Property, Filler: e.Filler},
		ObjectMaxCardinality{N: e.N, Property: e.Property, Filler: e.Filler},
	}
}

// DataSomeValuesFrom is the existential restriction on a data property.
type DataSomeValuesFrom struct {
	Property DataProperty
	Filler   DataRange
}

func (e DataSomeValuesFrom) String() string {
	return "DataSomeValuesFrom(" + e.Property.String() + " " + e.Filler.String() + ")"
}
func (e DataSomeValuesFrom) DataProperty() DataProperty { return e.Property }
func (e DataSomeValuesFrom) classExpression()           {}
func (e DataSomeValuesFrom) restriction()               {}

// DataAllValuesFrom is the universal restriction on a data property.
type DataAllValuesFrom struct {
	Property DataProperty
	Filler   DataRange
}

func (e DataAllValuesFrom) String() string {
	return "DataAllValuesFrom(" + e.Property.String() + " " + e.Filler.String() + ")"
}
func (e DataAllValuesFrom) DataProperty() DataProperty { return e.Property }
func (e DataAllValuesFrom) classExpression()           {}
func (e DataAllValuesFrom) restriction()               {}

// DataHasValue restricts a data property to a single literal.
type DataHasValue struct {
	Property DataProperty
	Value    Literal
}

func (e DataHasValue) String() string {
	return "DataHasValue(" + e.Property.String() + " " + e.Value.String() + ")"
}
func (e DataHasValue) DataProperty() DataProperty { return e.Property }
func (e DataHasValue) classExpression()           {}
func (e DataHasValue) restriction()               {}

// AsSomeValuesFrom rewrites the restriction as ∃p.{v}.
func (e DataHasValue) AsSomeValuesFrom() DataSomeValuesFrom {
	return DataSomeValuesFrom{Property: e.Property, Filler: DataOneOf{e.Value}}
}

// DataCardinalityRestriction is one of the three data cardinality forms.
type DataCardinalityRestriction interface {
	DataRestriction
	Cardinality() int
	RangeFiller() DataRange
}

// DataMinCardinality requires at least N values in the filler.
type DataMinCardinality struct {
	N        int
	Property DataProperty
	Filler   DataRange
}

func (e DataMinCardinality) String() string {
	return cardinalityString("DataMinCardinality", e.N, e.Property.String(), e.Filler.String())
}
func (e DataMinCardinality) DataProperty() DataProperty { return e.Property }
func (e DataMinCardinality) Cardinality() int           { return e.N }
func (e DataMinCardinality) RangeFiller() DataRange     { return e.Filler }
func (e DataMinCardinality) classExpression()           {}
func (e DataMinCardinality) restriction()               {}

// DataMaxCardinality allows at most N values in the filler.
type DataMaxCardinality struct {
	N        int
	Property DataProperty
	Filler   DataRange
}

func (e DataMaxCardinality) String() string {
	return cardinalityString("DataMaxCardinality", e.N, e.Property.String(), e.Filler.String())
}
func (e DataMaxCardinality) DataProperty() DataProperty { return e.Property }
func (e DataMaxCardinality) Cardinality() int           { return e.N }
func (e DataMaxCardinality) RangeFiller() DataRange     { return e.Filler }
func (e DataMaxCardinality) classExpression()           {}
func (e DataMaxCardinality) restriction()               {}

// DataExactCardinality requires exactly N values in the filler.
type DataExactCardinality struct {
	N        int
	Property DataProperty
	Filler   DataRange
}

func (e DataExactCardinality) String() string {
	return cardinalityString("DataExactCardinality", e.N, e.Property.String(), e.Filler.String())
}
func (e DataExactCardinality) DataProperty() DataProperty { return e.Property }
func (e DataExactCardinality) Cardinality() int           { return e.N }
func (e DataExactCardinality) RangeFiller() DataRange     { return e.Filler }
func (e DataExactCardinality) classExpression()           {}
func (e DataExactCardinality) restriction()               {}

// AsIntersection rewrites exact cardinality as the intersection of the
// matching min and max cardinality restrictions.
func (e DataExactCardinality) AsIntersection() ObjectIntersectionOf {
	return ObjectIntersectionOf{
		DataMinCardinality{N: e.N, Property: e.Property, Filler: e.Filler},
		DataMaxCardinality{N: e.N, Property: e.Property, Filler: e.Filler},
	}
}
