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

// Package parser reads class expressions written in description logic
// or Manchester syntax. Entity names resolve against a default
// namespace; prefixed names use the well-known prefixes or ones
// registered on the Parser, and full IRIs are written in angle
// brackets.
package parser

import (
	"fmt"
	"strings"

	"github.com/owlgraph/owlgo/owl"
)

// SyntaxError reports a parse failure and where it happened.
type SyntaxError struct {
	// Pos is the 1-based rune position in the input.
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: position %d: %s", e.Pos, e.Msg)
}

// Parser converts expression text into model objects. The zero value
// resolves bare names against an empty namespace; set Namespace to the
// ontology namespace the names belong to.
type Parser struct {
	// Namespace is prepended to names without a prefix.
	Namespace owl.IRI
	// Prefixes maps additional prefixes to namespaces. The owl, rdf,
	// rdfs and xsd prefixes are always known.
	Prefixes map[string]owl.IRI
}

// ParseDL reads a class expression in description logic syntax,
// e.g. "male ⊓ (∃ hasChild.person)".
func ParseDL(s string, ns owl.IRI) (owl.ClassExpression, error) {
	return Parser{Namespace: ns}.ParseDL(s)
}

// ParseManchester reads a class expression in Manchester syntax,
// e.g. "male and (hasChild some person)".
func ParseManchester(s string, ns owl.IRI) (owl.ClassExpression, error) {
	return Parser{Namespace: ns}.ParseManchester(s)
}

// ParseDL reads a class expression in description logic syntax.
func (p Parser) ParseDL(s string) (owl.ClassExpression, error) {
	st, err := p.scan(s)
	if err != nil {
		return nil, err
	}
	return st.parseExpression((*state).dlUnion)
}

// ParseManchester reads a class expression in Manchester syntax.
func (p Parser) ParseManchester(s string) (owl.ClassExpression, error) {
	st, err := p.scan(s)
	if err != nil {
		return nil, err
	}
	return st.parseExpression((*state).mUnion)
}

func (p Parser) scan(s string) (*state, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	return &state{p: p, toks: toks}, nil
}

type state struct {
	p    Parser
	toks []token
	i    int
}

func (st *state) parseExpression(parse func(*state) (owl.Object, error)) (owl.ClassExpression, error) {
	obj, err := parse(st)
	if err != nil {
		return nil, err
	}
	if tok := st.peek(); tok.kind != tokEOF {
		return nil, st.errf(tok, "unexpected %q after expression", tok.text)
	}
	ce, ok := obj.(owl.ClassExpression)
	if !ok {
		return nil, &SyntaxError{Pos: 1, Msg: fmt.Sprintf("expected a class expression, got %s", obj)}
	}
	return ce, nil
}

func (st *state) peek() token {
	if st.i < len(st.toks) {
		return st.toks[st.i]
	}
	return token{kind: tokEOF, pos: endPos(st.toks)}
}

// peekAhead returns the token n positions past the current one.
func (st *state) peekAhead(n int) token {
	if st.i+n < len(st.toks) {
		return st.toks[st.i+n]
	}
	return token{kind: tokEOF, pos: endPos(st.toks)}
}

func (st *state) next() token {
	tok := st.peek()
	if tok.kind != tokEOF {
		st.i++
	}
	return tok
}

// accept consumes the next token when it matches kind and text.
func (st *state) accept(kind tokenKind, text string) bool {
	tok := st.peek()
	if tok.kind == kind && tok.text == text {
		st.i++
		return true
	}
	return false
}

func (st *state) expect(kind tokenKind, text string) (token, error) {
	tok := st.next()
	if tok.kind != kind || tok.text != text {
		return tok, st.errf(tok, "expected %q, got %q", text, tok.text)
	}
	return tok, nil
}

func (st *state) errf(tok token, format string, args ...interface{}) error {
	return &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf(format, args...)}
}

func endPos(toks []token) int {
	if len(toks) == 0 {
		return 1
	}
	last := toks[len(toks)-1]
	return last.pos + len([]rune(last.text))
}

var wellKnownPrefixes = map[string]string{
	"owl":  owl.NamespaceOWL,
	"rdf":  owl.NamespaceRDF,
	"rdfs": owl.NamespaceRDFS,
	"xsd":  owl.NamespaceXSD,
}

// resolve expands a name token to a full IRI.
func (st *state) resolve(tok token) owl.IRI {
	if tok.kind == tokIRI {
		return owl.IRI(tok.text)
	}
	name := tok.text
	if i := strings.Index(name, ":"); i >= 0 {
		prefix, rest := name[:i], name[i+1:]
		if ns, ok := wellKnownPrefixes[prefix]; ok {
			return owl.IRI(ns + rest)
		}
		if ns, ok := st.p.Prefixes[prefix]; ok {
			return ns + owl.IRI(rest)
		}
	}
	return st.p.Namespace + owl.IRI(name)
}

// isDatatype reports whether the resolved IRI names a datatype, which
// decides between data and object restrictions.
func isDatatype(iri owl.IRI) bool {
	return iri.Namespace() == owl.NamespaceXSD || iri == owl.RDFSLiteral
}

// facetFor maps a facet operator or name to the model facet.
func facetFor(text string) (owl.Facet, bool) {
	switch text {
	case ">=", "≥":
		return owl.FacetMinInclusive, true
	case ">":
		return owl.FacetMinExclusive, true
	case "<=", "≤":
		return owl.FacetMaxInclusive, true
	case "<":
		return owl.FacetMaxExclusive, true
	case "length":
		return owl.FacetLength, true
	case "minLength":
		return owl.FacetMinLength, true
	case "maxLength":
		return owl.FacetMaxLength, true
	case "pattern":
		return owl.FacetPattern, true
	}
	return "", false
}

// literalFrom builds a literal from a number or string token.
func literalFrom(tok token) owl.Literal {
	switch tok.kind {
	case tokNumber:
		if strings.ContainsAny(tok.text, ".eE") {
			return owl.NewLiteral(tok.text, owl.DoubleDatatype)
		}
		return owl.NewLiteral(tok.text, owl.IntegerDatatype)
	case tokString:
		lit := owl.Literal{Lexical: tok.text, Type: owl.StringDatatype, Lang: tok.lang}
		if tok.dtype != "" {
			lit.Type = owl.Datatype(tok.dtype)
			lit.Lang = ""
		}
		return lit
	}
	panic("parser: not a literal token")
}

// startsLiteral reports whether the token can begin a literal.
func startsLiteral(tok token) bool {
	switch tok.kind {
	case tokNumber, tokString:
		return true
	case tokName:
		return tok.text == "true" || tok.text == "false"
	}
	return false
}

func (st *state) literal() (owl.Literal, error) {
	tok := st.next()
	switch {
	case tok.kind == tokName && (tok.text == "true" || tok.text == "false"):
		return owl.NewLiteral(tok.text, owl.BooleanDatatype), nil
	case tok.kind == tokNumber || tok.kind == tokString:
		lit := literalFrom(tok)
		if tok.dtype != "" {
			return lit, nil
		}
		// A trailing ^^datatype may follow an unquoted lexical form.
		if st.accept(tokPunct, "^^") {
			dt := st.next()
			if dt.kind != tokName && dt.kind != tokIRI {
				return owl.Literal{}, st.errf(dt, "expected a datatype after ^^, got %q", dt.text)
			}
			lit.Type = owl.Datatype(st.resolve(dt))
		}
		return lit, nil
	}
	return owl.Literal{}, st.errf(tok, "expected a literal, got %q", tok.text)
}
