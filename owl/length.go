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

import "fmt"

// LengthMetric assigns a weight to each class expression construct. The
// length of an expression is the weighted count of its constructs, a
// common complexity measure in concept learning.
type LengthMetric struct {
	Class              int
	ObjectIntersection int
	ObjectUnion        int
	ObjectComplement   int
	ObjectSomeValues   int
	ObjectAllValues    int
	ObjectHasValue     int
	ObjectCardinality  int
	ObjectHasSelf      int
	ObjectOneOf        int
	ObjectProperty     int
	ObjectInverse      int
	DataSomeValues     int
	DataAllValues      int
	DataHasValue       int
	DataCardinality    int
	DataProperty       int
	Datatype           int
	DataOneOf          int
	DataComplement     int
	DataIntersection   int
	DataUnion          int
}

// DefaultLengthMetric weighs most constructs 1; has-value, cardinality
// and inverse constructs count 2.
func DefaultLengthMetric() LengthMetric {
	return LengthMetric{
		Class:              1,
		ObjectIntersection: 1,
		ObjectUnion:        1,
		ObjectComplement:   1,
		ObjectSomeValues:   1,
		ObjectAllValues:    1,
		ObjectHasValue:     2,
		ObjectCardinality:  2,
		ObjectHasSelf:      1,
		ObjectOneOf:        1,
		ObjectProperty:     1,
		ObjectInverse:      2,
		DataSomeValues:     1,
		DataAllValues:      1,
		DataHasValue:       2,
		DataCardinality:    2,
		DataProperty:       1,
		Datatype:           1,
		DataOneOf:          1,
		DataComplement:     1,
		DataIntersection:   1,
		DataUnion:          1,
	}
}

// Length measures an object with the metric.
func (m LengthMetric) Length(o Object) int {
	switch o := o.(type) {
	case Class:
		return m.Class
	case ObjectProperty:
		return m.ObjectProperty
	case ObjectInverseOf:
		return m.ObjectInverse
	case ObjectIntersectionOf:
		return m.narySum(o, m.ObjectIntersection)
	case ObjectUnionOf:
		return m.narySum(o, m.ObjectUnion)
	case ObjectComplementOf:
		return m.ObjectComplement + m.Length(o.Operand)
	case ObjectSomeValuesFrom:
		return m.ObjectSomeValues + m.Length(o.Property) + m.Length(o.Filler)
	case ObjectAllValuesFrom:
		return m.ObjectAllValues + m.Length(o.Property) + m.Length(o.Filler)
	case ObjectHasValue:
		return m.ObjectHasValue + m.Length(o.Property)
	case ObjectHasSelf:
		return m.ObjectHasSelf + m.Length(o.Property)
	case ObjectOneOf:
		return m.ObjectOneOf
	case ObjectMinCardinality:
		return m.ObjectCardinality + m.Length(o.Property) + m.Length(o.Filler)
	case ObjectMaxCardinality:
		return m.ObjectCardinality + m.Length(o.Property) + m.Length(o.Filler)
	case ObjectExactCardinality:
		return m.ObjectCardinality + m.Length(o.Property) + m.Length(o.Filler)
	case DataProperty:
		return m.DataProperty
	case Datatype:
		return m.Datatype
	case DataSomeValuesFrom:
		return m.DataSomeValues + m.Length(o.Property) + m.Length(o.Filler)
	case DataAllValuesFrom:
		return m.DataAllValues + m.Length(o.Property) + m.Length(o.Filler)
	case DataHasValue:
		return m.DataHasValue + m.Length(o.Property)
	case DataMinCardinality:
		return m.DataCardinality + m.Length(o.Property) + m.Length(o.Filler)
	case DataMaxCardinality:
		return m.DataCardinality + m.Length(o.Property) + m.Length(o.Filler)
	case DataExactCardinality:
		return m.DataCardinality + m.Length(o.Property) + m.Length(o.Filler)
	case DataOneOf:
		return m.DataOneOf
	case DatatypeRestriction:
		return len(o.Restrictions)
	case DataComplementOf:
		return m.DataComplement + m.Length(o.Operand)
	case DataIntersectionOf:
		return m.naryRangeSum(o, m.DataIntersection)
	case DataUnionOf:
		return m.naryRangeSum(o, m.DataUnion)
	}
	panic(fmt.Sprintf("owl: no length rule for %T", o))
}

func (m LengthMetric) narySum(ops []ClassExpression, weight int) int {
	total := -weight
	for _, op := range ops {
		total += m.Length(op) + weight
	}
	return total
}

func (m LengthMetric) naryRangeSum(ops []DataRange, weight int) int {
	total := -weight
	for _, op := range ops {
		total += m.Length(op) + weight
	}
	return total
}

// ExpressionLength measures a class expression with the default metric.
func ExpressionLength(ce ClassExpression) int {
	return DefaultLengthMetric().Length(ce)
}
