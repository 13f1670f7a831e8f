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
	"github.com/owlgraph/owlgo/owl"
)

func (st *state) mUnion() (owl.Object, error) {
	return st.nary("or", (*state).mIntersection, true)
}

func (st *state) mIntersection() (owl.Object, error) {
	return st.nary("and", (*state).mUnary, false)
}

func (st *state) mUnary() (owl.Object, error) {
	tok := st.peek()
	if tok.kind == tokName && tok.text == "not" {
		st.next()
		op, err := st.mUnary()
		if err != nil {
			return nil, err
		}
		return complementOf(op, tok.pos)
	}
	return st.mRestrictionOrPrimary()
}

// restriction keywords following a name mark it as a property.
func isRestrictionKeyword(tok token) bool {
	if tok.kind != tokName {
		return false
	}
	switch tok.text {
	case "some", "only", "value", "min", "max", "exactly", "Self":
		return true
	}
	return false
}

func (st *state) mRestrictionOrPrimary() (owl.Object, error) {
	tok := st.peek()
	if tok.kind == tokName && tok.text == "inverse" {
		st.next()
		prop := st.next()
		if prop.kind != tokName && prop.kind != tokIRI {
			return nil, st.errf(prop, "expected a property after inverse, got %q", prop.text)
		}
		return st.mRestriction(st.resolve(prop), true)
	}
	if (tok.kind == tokName || tok.kind == tokIRI) && isRestrictionKeyword(st.peekAhead(1)) {
		st.next()
		return st.mRestriction(st.resolve(tok), false)
	}
	return st.mPrimary()
}

func (st *state) mRestriction(iri owl.IRI, inverse bool) (owl.Object, error) {
	kw := st.next()
	switch kw.text {
	case "some", "only":
		fillerPos := st.peek().pos
		filler, err := st.mUnary()
		if err != nil {
			return nil, err
		}
		return mQuantified(kw.text == "some", iri, inverse, filler, fillerPos)
	case "value":
		tok := st.peek()
		if startsLiteral(tok) {
			if inverse {
				return nil, st.errf(tok, "inverse of a data property")
			}
			lit, err := st.literal()
			if err != nil {
				return nil, err
			}
			return owl.DataHasValue{Property: owl.DataProperty(iri), Value: lit}, nil
		}
		if tok.kind != tokName && tok.kind != tokIRI {
			return nil, st.errf(tok, "expected an individual or literal after value, got %q", tok.text)
		}
		st.next()
		ind := owl.NamedIndividual(st.resolve(tok))
		return owl.ObjectHasValue{Property: propertyExpr(iri, inverse), Individual: ind}, nil
	case "Self":
		return owl.ObjectHasSelf{Property: propertyExpr(iri, inverse)}, nil
	case "min", "max", "exactly":
		n, err := st.cardinalityCount()
		if err != nil {
			return nil, err
		}
		kind := map[string]cardKind{"min": cardMin, "max": cardMax, "exactly": cardExact}[kw.text]
		if !st.startsFiller() {
			return cardinality(kind, n, iri, inverse, owl.Thing, kw.pos)
		}
		fillerPos := st.peek().pos
		filler, err := st.mUnary()
		if err != nil {
			return nil, err
		}
		return cardinality(kind, n, iri, inverse, filler, fillerPos)
	}
	return nil, st.errf(kw, "expected a restriction keyword, got %q", kw.text)
}

// mQuantified mirrors the quantifier builder but keeps singleton
// nominals as written; Manchester has the explicit value keyword.
func mQuantified(existential bool, iri owl.IRI, inverse bool, filler owl.Object, pos int) (owl.Object, error) {
	switch filler := filler.(type) {
	case owl.DataRange:
		if inverse {
			return nil, &SyntaxError{Pos: pos, Msg: "inverse of a data property"}
		}
		dp := owl.DataProperty(iri)
		if existential {
			return owl.DataSomeValuesFrom{Property: dp, Filler: filler}, nil
		}
		return owl.DataAllValuesFrom{Property: dp, Filler: filler}, nil
	case owl.ClassExpression:
		pe := propertyExpr(iri, inverse)
		if existential {
			return owl.ObjectSomeValuesFrom{Property: pe, Filler: filler}, nil
		}
		return owl.ObjectAllValuesFrom{Property: pe, Filler: filler}, nil
	}
	return nil, &SyntaxError{Pos: pos, Msg: "expected a class expression or data range filler"}
}

// startsFiller reports whether the next token can begin a cardinality
// filler; and/or continue the surrounding boolean expression instead.
func (st *state) startsFiller() bool {
	tok := st.peek()
	switch tok.kind {
	case tokIRI:
		return true
	case tokName:
		return tok.text != "and" && tok.text != "or"
	case tokPunct:
		return tok.text == "(" || tok.text == "{"
	}
	return false
}

func (st *state) mPrimary() (owl.Object, error) {
	tok := st.next()
	switch {
	case tok.kind == tokPunct && tok.text == "(":
		inner, err := st.mUnion()
		if err != nil {
			return nil, err
		}
		if _, err := st.expect(tokPunct, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	case tok.kind == tokPunct && tok.text == "{":
		return st.enumeration(tok.pos)
	case tok.kind == tokName && tok.text == "Thing":
		return owl.Thing, nil
	case tok.kind == tokName && tok.text == "Nothing":
		return owl.Nothing, nil
	case tok.kind == tokName || tok.kind == tokIRI:
		iri := st.resolve(tok)
		if isDatatype(iri) {
			return st.datatypeOrRestriction(owl.Datatype(iri), "and")
		}
		return owl.Class(iri), nil
	}
	return nil, st.errf(tok, "unexpected %q", tok.text)
}
