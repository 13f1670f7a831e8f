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

package parser

import (
	"strconv"

	"github.com/owlgraph/owlgo/owl"
)

func (st *state) dlUnion() (owl.Object, error) {
	return st.nary("⊔", (*state).dlIntersection, true)
}

func (st *state) dlIntersection() (owl.Object, error) {
	return st.nary("⊓", (*state).dlUnary, false)
}

// nary parses a sequence of operands joined by the separator token and
// folds them into the matching union or intersection type.
func (st *state) nary(sep string, operand func(*state) (owl.Object, error), union bool) (owl.Object, error) {
	pos := st.peek().pos
	first, err := operand(st)
	if err != nil {
		return nil, err
	}
	ops := []owl.Object{first}
	for st.acceptOp(sep) {
		op, err := operand(st)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return foldNary(ops, union, pos)
}

// foldNary combines operands into an object or data intersection/union
// depending on the operand kinds.
func foldNary(ops []owl.Object, union bool, pos int) (owl.Object, error) {
	if len(ops) == 1 {
		return ops[0], nil
	}
	if _, ok := ops[0].(owl.ClassExpression); ok {
		ces := make([]owl.ClassExpression, len(ops))
		for i, op := range ops {
			ce, ok := op.(owl.ClassExpression)
			if !ok {
				return nil, &SyntaxError{Pos: pos, Msg: "cannot mix class expressions and data ranges"}
			}
			ces[i] = ce
		}
		if union {
			return owl.ObjectUnionOf(ces), nil
		}
		return owl.ObjectIntersectionOf(ces), nil
	}
	drs := make([]owl.DataRange, len(ops))
	for i, op := range ops {
		dr, ok := op.(owl.DataRange)
		if !ok {
			return nil, &SyntaxError{Pos: pos, Msg: "cannot mix class expressions and data ranges"}
		}
		drs[i] = dr
	}
	if union {
		return owl.DataUnionOf(drs), nil
	}
	return owl.DataIntersectionOf(drs), nil
}

func complementOf(op owl.Object, pos int) (owl.Object, error) {
	switch op := op.(type) {
	case owl.DataRange:
		return owl.DataComplementOf{Operand: op}, nil
	case owl.ClassExpression:
		return owl.ObjectComplementOf{Operand: op}, nil
	}
	return nil, &SyntaxError{Pos: pos, Msg: "complement of a non-expression"}
}

func (st *state) dlUnary() (owl.Object, error) {
	tok := st.peek()
	if tok.kind == tokPunct {
		switch tok.text {
		case "¬":
			st.next()
			op, err := st.dlUnary()
			if err != nil {
				return nil, err
			}
			return complementOf(op, tok.pos)
		case "∃":
			st.next()
			return st.dlQuantifier(true)
		case "∀":
			st.next()
			return st.dlQuantifier(false)
		case "≥":
			st.next()
			return st.dlCardinality(cardMin)
		case "≤":
			st.next()
			return st.dlCardinality(cardMax)
		case "=":
			st.next()
			return st.dlCardinality(cardExact)
		}
	}
	return st.dlPrimary()
}

// dlProperty reads a property name with an optional inverse marker.
func (st *state) dlProperty() (owl.IRI, bool, error) {
	tok := st.next()
	if tok.kind != tokName && tok.kind != tokIRI {
		return "", false, st.errf(tok, "expected a property name, got %q", tok.text)
	}
	inverse := st.accept(tokPunct, "⁻")
	return st.resolve(tok), inverse, nil
}

func (st *state) dlQuantifier(existential bool) (owl.Object, error) {
	iri, inverse, err := st.dlProperty()
	if err != nil {
		return nil, err
	}
	if _, err := st.expect(tokPunct, "."); err != nil {
		return nil, err
	}
	if tok := st.peek(); existential && tok.kind == tokName && tok.text == "Self" {
		st.next()
		return owl.ObjectHasSelf{Property: propertyExpr(iri, inverse)}, nil
	}
	fillerPos := st.peek().pos
	filler, err := st.dlUnary()
	if err != nil {
		return nil, err
	}
	return quantified(existential, iri, inverse, filler, fillerPos)
}

// quantified builds the object or data restriction for a quantifier,
// collapsing an existential over a singleton nominal into a has-value
// restriction.
func quantified(existential bool, iri owl.IRI, inverse bool, filler owl.Object, pos int) (owl.Object, error) {
	switch filler := filler.(type) {
	case owl.DataRange:
		if inverse {
			return nil, &SyntaxError{Pos: pos, Msg: "inverse of a data property"}
		}
		dp := owl.DataProperty(iri)
		if oneOf, ok := filler.(owl.DataOneOf); ok && existential && len(oneOf) == 1 {
			return owl.DataHasValue{Property: dp, Value: oneOf[0]}, nil
		}
		if existential {
			return owl.DataSomeValuesFrom{Property: dp, Filler: filler}, nil
		}
		return owl.DataAllValuesFrom{Property: dp, Filler: filler}, nil
	case owl.ClassExpression:
		pe := propertyExpr(iri, inverse)
		if oneOf, ok := filler.(owl.ObjectOneOf); ok && existential && len(oneOf) == 1 {
			return owl.ObjectHasValue{Property: pe, Individual: oneOf[0]}, nil
		}
		if existential {
			return owl.ObjectSomeValuesFrom{Property: pe, Filler: filler}, nil
		}
		return owl.ObjectAllValuesFrom{Property: pe, Filler: filler}, nil
	}
	return nil, &SyntaxError{Pos: pos, Msg: "expected a class expression or data range filler"}
}

type cardKind int

const (
	cardMin cardKind = iota
	cardMax
	cardExact
)

func (st *state) dlCardinality(kind cardKind) (owl.Object, error) {
	n, err := st.cardinalityCount()
	if err != nil {
		return nil, err
	}
	iri, inverse, err := st.dlProperty()
	if err != nil {
		return nil, err
	}
	if _, err := st.expect(tokPunct, "."); err != nil {
		return nil, err
	}
	fillerPos := st.peek().pos
	filler, err := st.dlUnary()
	if err != nil {
		return nil, err
	}
	return cardinality(kind, n, iri, inverse, filler, fillerPos)
}

func (st *state) cardinalityCount() (int, error) {
	tok := st.next()
	if tok.kind != tokNumber {
		return 0, st.errf(tok, "expected a cardinality, got %q", tok.text)
	}
	n, err := strconv.Atoi(tok.text)
	if err != nil || n < 0 {
		return 0, st.errf(tok, "invalid cardinality %q", tok.text)
	}
	return n, nil
}

func cardinality(kind cardKind, n int, iri owl.IRI, inverse bool, filler owl.Object, pos int) (owl.Object, error) {
	switch filler := filler.(type) {
	case owl.DataRange:
		if inverse {
			return nil, &SyntaxError{Pos: pos, Msg: "inverse of a data property"}
		}
		dp := owl.DataProperty(iri)
		switch kind {
		case cardMin:
			return owl.DataMinCardinality{N: n, Property: dp, Filler: filler}, nil
		case cardMax:
			return owl.DataMaxCardinality{N: n, Property: dp, Filler: filler}, nil
		default:
			return owl.DataExactCardinality{N: n, Property: dp, Filler: filler}, nil
		}
	case owl.ClassExpression:
		pe := propertyExpr(iri, inverse)
		switch kind {
		case cardMin:
			return owl.ObjectMinCardinality{N: n, Property: pe, Filler: filler}, nil
		case cardMax:
			return owl.ObjectMaxCardinality{N: n, Property: pe, Filler: filler}, nil
		default:
			return owl.ObjectExactCardinality{N: n, Property: pe, Filler: filler}, nil
		}
	}
	return nil, &SyntaxError{Pos: pos, Msg: "expected a class expression or data range filler"}
}

func propertyExpr(iri owl.IRI, inverse bool) owl.ObjectPropertyExpression {
	p := owl.ObjectProperty(iri)
	if inverse {
		return owl.ObjectInverseOf{Property: p}
	}
	return p
}

func (st *state) dlPrimary() (owl.Object, error) {
	tok := st.next()
	switch {
	case tok.kind == tokPunct && tok.text == "⊤":
		return owl.Thing, nil
	case tok.kind == tokPunct && tok.text == "⊥":
		return owl.Nothing, nil
	case tok.kind == tokPunct && tok.text == "(":
		inner, err := st.dlUnion()
		if err != nil {
			return nil, err
		}
		if _, err := st.expect(tokPunct, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	case tok.kind == tokPunct && tok.text == "{":
		return st.enumeration(tok.pos)
	case tok.kind == tokName || tok.kind == tokIRI:
		iri := st.resolve(tok)
		if isDatatype(iri) {
			return st.datatypeOrRestriction(owl.Datatype(iri), "⊓")
		}
		return owl.Class(iri), nil
	}
	return nil, st.errf(tok, "unexpected %q", tok.text)
}

// datatypeOrRestriction reads an optional facet block after a datatype
// name, e.g. xsd:integer[≥ 18 ⊓ ≤ 65].
func (st *state) datatypeOrRestriction(dt owl.Datatype, sep string) (owl.Object, error) {
	if !st.accept(tokPunct, "[") {
		return dt, nil
	}
	var frs []owl.FacetRestriction
	for {
		tok := st.next()
		facet, ok := facetFor(tok.text)
		if !ok {
			return nil, st.errf(tok, "expected a facet, got %q", tok.text)
		}
		val, err := st.literal()
		if err != nil {
			return nil, err
		}
		frs = append(frs, owl.FacetRestriction{Facet: facet, Value: val})
		if st.accept(tokPunct, "]") {
			return owl.DatatypeRestriction{Datatype: dt, Restrictions: frs}, nil
		}
		if !st.acceptSeparator(sep) {
			tok := st.peek()
			return nil, st.errf(tok, "expected %q or ] in facet list, got %q", sep, tok.text)
		}
	}
}

// acceptOp consumes an operator that is a keyword in Manchester syntax
// and a glyph in description logic syntax.
func (st *state) acceptOp(op string) bool {
	if op == "and" || op == "or" {
		return st.accept(tokName, op)
	}
	return st.accept(tokPunct, op)
}

// acceptSeparator consumes the syntax's list separator or a comma.
func (st *state) acceptSeparator(sep string) bool {
	return st.accept(tokPunct, ",") || st.acceptOp(sep)
}

// enumeration reads the members of a {...} nominal, which are either
// all individuals or all literals.
func (st *state) enumeration(pos int) (owl.Object, error) {
	var inds []owl.NamedIndividual
	var lits []owl.Literal
	for {
		tok := st.peek()
		if startsLiteral(tok) {
			lit, err := st.literal()
			if err != nil {
				return nil, err
			}
			lits = append(lits, lit)
		} else if tok.kind == tokName || tok.kind == tokIRI {
			st.next()
			inds = append(inds, owl.NamedIndividual(st.resolve(tok)))
		} else {
			return nil, st.errf(tok, "expected an individual or literal, got %q", tok.text)
		}
		if st.accept(tokPunct, "}") {
			break
		}
		if !st.accept(tokPunct, ",") && !st.accept(tokPunct, "⊔") {
			tok := st.peek()
			return nil, st.errf(tok, "expected , or } in enumeration, got %q", tok.text)
		}
	}
	if len(inds) > 0 && len(lits) > 0 {
		return nil, &SyntaxError{Pos: pos, Msg: "cannot mix individuals and literals in an enumeration"}
	}
	if len(lits) > 0 {
		return owl.DataOneOf(lits), nil
	}
	return owl.ObjectOneOf(inds), nil
}
