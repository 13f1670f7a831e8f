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

// NNF rewrites a class expression into negation normal form: complements
// are pushed inward until they apply to named classes, nominals or self
// restrictions only. N-ary operands come out sorted.
func NNF(ce ClassExpression) ClassExpression {
	return classNNF(ce, false)
}

func classNNF(ce ClassExpression, negated bool) ClassExpression {
	switch ce := ce.(type) {
	case Class:
		if !negated {
			return ce
		}
		if ce.IsThing() {
			return Nothing
		}
		if ce.IsNothing() {
			return Thing
		}
		return ObjectComplementOf{Operand: ce}
	case ObjectComplementOf:
		return classNNF(ce.Operand, !negated)
	case ObjectIntersectionOf:
		ops := nnfOperands(ce, negated)
		if negated {
			return ObjectUnionOf(ops)
		}
		return ObjectIntersectionOf(ops)
	case ObjectUnionOf:
		ops := nnfOperands(ce, negated)
		if negated {
			return ObjectIntersectionOf(ops)
		}
		return ObjectUnionOf(ops)
	case ObjectSomeValuesFrom:
		filler := classNNF(ce.Filler, negated)
		if negated {
			return ObjectAllValuesFrom{Property: ce.Property, Filler: filler}
		}
		return ObjectSomeValuesFrom{Property: ce.Property, Filler: filler}
	case ObjectAllValuesFrom:
		filler := classNNF(ce.Filler, negated)
		if negated {
			return ObjectSomeValuesFrom{Property: ce.Property, Filler: filler}
		}
		return ObjectAllValuesFrom{Property: ce.Property, Filler: filler}
	case ObjectHasValue:
		return classNNF(ce.AsSomeValuesFrom(), negated)
	case ObjectHasSelf:
		if negated {
			return ObjectComplementOf{Operand: ce}
		}
		return ce
	case ObjectOneOf:
		if len(ce) <= 1 {
			if negated {
				return ObjectComplementOf{Operand: ce}
			}
			return ce
		}
		union := make(ObjectUnionOf, 0, len(ce))
		for _, ind := range ce {
			union = append(union, ObjectOneOf{ind})
		}
		return classNNF(union, negated)
	case ObjectMinCardinality:
		n := ce.N
		filler := classNNF(ce.Filler, false)
		if negated {
			if n > 0 {
				n--
			}
			return ObjectMaxCardinality{N: n, Property: ce.Property, Filler: filler}
		}
		return ObjectMinCardinality{N: n, Property: ce.Property, Filler: filler}
	case ObjectMaxCardinality:
		n := ce.N
		filler := classNNF(ce.Filler, false)
		if negated {
			return ObjectMinCardinality{N: n + 1, Property: ce.Property, Filler: filler}
		}
		return ObjectMaxCardinality{N: n, Property: ce.Property, Filler: filler}
	case ObjectExactCardinality:
		return classNNF(ce.AsIntersection(), negated)
	case DataSomeValuesFrom:
		filler := rangeNNF(ce.Filler, negated)
		if negated {
			return DataAllValuesFrom{Property: ce.Property, Filler: filler}
		}
		return DataSomeValuesFrom{Property: ce.Property, Filler: filler}
	case DataAllValuesFrom:
		filler := rangeNNF(ce.Filler, negated)
		if negated {
			return DataSomeValuesFrom{Property: ce.Property, Filler: filler}
		}
		return DataAllValuesFrom{Property: ce.Property, Filler: filler}
	case DataHasValue:
		return classNNF(ce.AsSomeValuesFrom(), negated)
	case DataMinCardinality:
		n := ce.N
		filler := rangeNNF(ce.Filler, false)
		if negated {
			if n > 0 {
				n--
			}
			return DataMaxCardinality{N: n, Property: ce.Property, Filler: filler}
		}
		return DataMinCardinality{N: n, Property: ce.Property, Filler: filler}
	case DataMaxCardinality:
		n := ce.N
		filler := rangeNNF(ce.Filler, false)
		if negated {
			return DataMinCardinality{N: n + 1, Property: ce.Property, Filler: filler}
		}
		return DataMaxCardinality{N: n, Property: ce.Property, Filler: filler}
	case DataExactCardinality:
		return classNNF(ce.AsIntersection(), negated)
	}
	panic(fmt.Sprintf("owl: no NNF rule for %T", ce))
}

func nnfOperands(ops []ClassExpression, negated bool) []ClassExpression {
	sorted := sortObjects(ops)
	out := make([]ClassExpression, len(sorted))
	for i, op := range sorted {
		out[i] = classNNF(op, negated)
	}
	return out
}

func rangeNNF(dr DataRange, negated bool) DataRange {
	switch dr := dr.(type) {
	case Datatype:
		if negated {
			return DataComplementOf{Operand: dr}
		}
		return dr
	case DatatypeRestriction:
		if negated {
			return DataComplementOf{Operand: dr}
		}
		return dr
	case DataComplementOf:
		return rangeNNF(dr.Operand, !negated)
	case DataOneOf:
		if len(dr) <= 1 {
			if negated {
				return DataComplementOf{Operand: dr}
			}
			return dr
		}
		union := make(DataUnionOf, 0, len(dr))
		for _, v := range dr {
			union = append(union, DataOneOf{v})
		}
		return rangeNNF(union, negated)
	case DataIntersectionOf:
		ops := nnfRangeOperands(dr, negated)
		if negated {
			return DataUnionOf(ops)
		}
		return DataIntersectionOf(ops)
	case DataUnionOf:
		ops := nnfRangeOperands(dr, negated)
		if negated {
			return DataIntersectionOf(ops)
		}
		return DataUnionOf(ops)
	}
	panic(fmt.Sprintf("owl: no NNF rule for %T", dr))
}

func nnfRangeOperands(ops []DataRange, negated bool) []DataRange {
	sorted := sortObjects(ops)
	out := make([]DataRange, len(sorted))
	for i, op := range sorted {
		out[i] = rangeNNF(op, negated)
	}
	return out
}

// TopLevelCNF rewrites a class expression into top-level conjunctive
// normal form: a conjunction whose conjuncts are disjunctions of
// non-boolean expressions. N-ary operands come out sorted.
func TopLevelCNF(ce ClassExpression) ClassExpression {
	return CombineNary(topLevelForm(NNF(ce), unionKind, intersectionKind))
}

// TopLevelDNF rewrites a class expression into top-level disjunctive
// normal form: a disjunction whose disjuncts are conjunctions of
// non-boolean expressions. N-ary operands come out sorted.
func TopLevelDNF(ce ClassExpression) ClassExpression {
	return CombineNary(topLevelForm(NNF(ce), intersectionKind, unionKind))
}

// naryKind abstracts over intersection and union so the distribution
// step can be written once for both normal forms.
type naryKind struct {
	operands func(ClassExpression) ([]ClassExpression, bool)
	make     func([]ClassExpression) ClassExpression
}

var intersectionKind = naryKind{
	operands: func(ce ClassExpression) ([]ClassExpression, bool) {
		e, ok := ce.(ObjectIntersectionOf)
		return e, ok
	},
	make: func(ops []ClassExpression) ClassExpression { return ObjectIntersectionOf(ops) },
}

var unionKind = naryKind{
	operands: func(ce ClassExpression) ([]ClassExpression, bool) {
		e, ok := ce.(ObjectUnionOf)
		return e, ok
	},
	make: func(ops []ClassExpression) ClassExpression { return ObjectUnionOf(ops) },
}

// topLevelForm distributes outer (kind a) operands inward over nested
// (kind b) expressions until no b expression remains below an a.
func topLevelForm(ce ClassExpression, a, b naryKind) ClassExpression {
	if _, ok := a.operands(ce); ok {
		ce = CombineNary(ce)
		ops, ok := a.operands(ce)
		if !ok {
			return topLevelForm(ce, a, b)
		}
		var bOps, rest []ClassExpression
		for _, op := range ops {
			if _, isB := b.operands(op); isB {
				bOps = append(bOps, op)
			} else {
				rest = append(rest, op)
			}
		}
		if len(bOps) == 0 {
			return ce
		}
		var expr ClassExpression
		if len(rest) > 0 {
			if len(rest) == 1 {
				expr = rest[0]
			} else {
				expr = a.make(rest)
			}
			expr = distribute(expr, bOps[0], a, b)
		} else {
			expr = bOps[0]
		}
		for _, be := range bOps[1:] {
			expr = distribute(be, expr, a, b)
		}
		return topLevelForm(expr, a, b)
	}
	if ops, ok := b.operands(ce); ok {
		out := make([]ClassExpression, len(ops))
		for i, op := range ops {
			out[i] = topLevelForm(op, a, b)
		}
		return b.make(out)
	}
	return ce
}

// distribute applies the distributive law: x ⊗ (y ⊕ z) = (x ⊗ y) ⊕ (x ⊗ z)
// where ⊗ is kind a and ⊕ is kind b.
func distribute(x, over ClassExpression, a, b naryKind) ClassExpression {
	ops, ok := b.operands(over)
	if !ok {
		ops = []ClassExpression{over}
	}
	out := make([]ClassExpression, len(ops))
	for i, op := range ops {
		out[i] = a.make([]ClassExpression{x, op})
	}
	return b.make(out)
}

// CombineNary flattens nested n-ary expressions of the same type and
// sorts their operands, e.g. A ⊔ (C ⊔ B) becomes A ⊔ B ⊔ C.
func CombineNary(ce ClassExpression) ClassExpression {
	switch ce := ce.(type) {
	case ObjectIntersectionOf:
		return ObjectIntersectionOf(flattenNary(ce, intersectionKind))
	case ObjectUnionOf:
		return ObjectUnionOf(flattenNary(ce, unionKind))
	case ObjectComplementOf:
		return ObjectComplementOf{Operand: CombineNary(ce.Operand)}
	case ObjectSomeValuesFrom:
		return ObjectSomeValuesFrom{Property: ce.Property, Filler: CombineNary(ce.Filler)}
	case ObjectAllValuesFrom:
		return ObjectAllValuesFrom{Property: ce.Property, Filler: CombineNary(ce.Filler)}
	case ObjectMinCardinality:
		return ObjectMinCardinality{N: ce.N, Property: ce.Property, Filler: CombineNary(ce.Filler)}
	case ObjectMaxCardinality:
		return ObjectMaxCardinality{N: ce.N, Property: ce.Property, Filler: CombineNary(ce.Filler)}
	case ObjectExactCardinality:
		return ObjectExactCardinality{N: ce.N, Property: ce.Property, Filler: CombineNary(ce.Filler)}
	case ObjectOneOf:
		return ObjectOneOf(sortObjects(ce))
	case DataSomeValuesFrom:
		return DataSomeValuesFrom{Property: ce.Property, Filler: CombineNaryRange(ce.Filler)}
	case DataAllValuesFrom:
		return DataAllValuesFrom{Property: ce.Property, Filler: CombineNaryRange(ce.Filler)}
	case DataMinCardinality:
		return DataMinCardinality{N: ce.N, Property: ce.Property, Filler: CombineNaryRange(ce.Filler)}
	case DataMaxCardinality:
		return DataMaxCardinality{N: ce.N, Property: ce.Property, Filler: CombineNaryRange(ce.Filler)}
	case DataExactCardinality:
		return DataExactCardinality{N: ce.N, Property: ce.Property, Filler: CombineNaryRange(ce.Filler)}
	}
	return ce
}

func flattenNary(ops []ClassExpression, kind naryKind) []ClassExpression {
	var out []ClassExpression
	for _, op := range ops {
		expr := CombineNary(op)
		if nested, ok := kind.operands(expr); ok {
			out = append(out, nested...)
		} else {
			out = append(out, expr)
		}
	}
	return sortObjects(out)
}

// CombineNaryRange is CombineNary for data ranges.
func CombineNaryRange(dr DataRange) DataRange {
	switch dr := dr.(type) {
	case DataIntersectionOf:
		return DataIntersectionOf(flattenNaryRange(dr, func(r DataRange) ([]DataRange, bool) {
			e, ok := r.(DataIntersectionOf)
			return e, ok
		}))
	case DataUnionOf:
		return DataUnionOf(flattenNaryRange(dr, func(r DataRange) ([]DataRange, bool) {
			e, ok := r.(DataUnionOf)
			return e, ok
		}))
	case DataComplementOf:
		return DataComplementOf{Operand: CombineNaryRange(dr.Operand)}
	case DataOneOf:
		return DataOneOf(sortObjects(dr))
	}
	return dr
}

func flattenNaryRange(ops []DataRange, operands func(DataRange) ([]DataRange, bool)) []DataRange {
	var out []DataRange
	for _, op := range ops {
		expr := CombineNaryRange(op)
		if nested, ok := operands(expr); ok {
			out = append(out, nested...)
		} else {
			out = append(out, expr)
		}
	}
	return sortObjects(out)
}
