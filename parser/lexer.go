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
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokIRI
	tokNumber
	tokString
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	// pos is the 1-based rune position of the first character.
	pos int
	// dtype and lang annotate string literals with ^^ or @ suffixes.
	dtype string
	lang  string
}

// The operator glyphs of the description logic syntax; each lexes as a
// single punctuation token.
const dlGlyphs = "⊓⊔¬∃∀≥≤=⁻⊤⊥"

func isGlyph(r rune) bool {
	for _, g := range dlGlyphs {
		if r == g {
			return true
		}
	}
	return false
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == ':'
}

func lex(s string) ([]token, error) {
	var toks []token
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		r := runes[i]
		pos := i + 1
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '<' && i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			// Full IRI in angle brackets.
			j := i + 1
			for j < len(runes) && runes[j] != '>' {
				j++
			}
			if j == len(runes) {
				return nil, &SyntaxError{Pos: pos, Msg: "unterminated IRI"}
			}
			toks = append(toks, token{kind: tokIRI, text: string(runes[i+1 : j]), pos: pos})
			i = j + 1
		case r == '"':
			tok, n, err := lexString(runes, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = n
		case unicode.IsDigit(r), r == '-' && i+1 < len(runes) && unicode.IsDigit(runes[i+1]):
			j := i + 1
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.') {
				j++
			}
			// A trailing dot is a separator, not part of the number.
			if runes[j-1] == '.' {
				j--
			}
			toks = append(toks, token{kind: tokNumber, text: string(runes[i:j]), pos: pos})
			i = j
		case isNameStart(r):
			j := i
			for j < len(runes) && isNameRune(runes[j]) {
				j++
			}
			toks = append(toks, token{kind: tokName, text: string(runes[i:j]), pos: pos})
			i = j
		case r == '>' || r == '<':
			text := string(r)
			if i+1 < len(runes) && runes[i+1] == '=' {
				text += "="
				i++
			}
			toks = append(toks, token{kind: tokPunct, text: text, pos: pos})
			i++
		case r == '^' && i+1 < len(runes) && runes[i+1] == '^':
			toks = append(toks, token{kind: tokPunct, text: "^^", pos: pos})
			i += 2
		case isGlyph(r), r == '(', r == ')', r == '{', r == '}', r == '[', r == ']',
			r == ',', r == '.':
			toks = append(toks, token{kind: tokPunct, text: string(r), pos: pos})
			i++
		default:
			return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	return toks, nil
}

func lexString(runes []rune, start int) (token, int, error) {
	tok := token{kind: tokString, pos: start + 1}
	i := start + 1
	var text []rune
	for {
		if i == len(runes) {
			return tok, i, &SyntaxError{Pos: start + 1, Msg: "unterminated string literal"}
		}
		r := runes[i]
		if r == '\\' && i+1 < len(runes) {
			text = append(text, runes[i+1])
			i += 2
			continue
		}
		if r == '"' {
			i++
			break
		}
		text = append(text, r)
		i++
	}
	tok.text = string(text)
	switch {
	case i+1 < len(runes) && runes[i] == '^' && runes[i+1] == '^':
		i += 2
		j := i
		if j < len(runes) && runes[j] == '<' {
			for j < len(runes) && runes[j] != '>' {
				j++
			}
			if j == len(runes) {
				return tok, i, &SyntaxError{Pos: i + 1, Msg: "unterminated IRI"}
			}
			tok.dtype = string(runes[i+1 : j])
			i = j + 1
		} else {
			for j < len(runes) && isNameRune(runes[j]) {
				j++
			}
			name := string(runes[i:j])
			if ns, ok := splitPrefixed(name); ok {
				tok.dtype = ns
			} else {
				tok.dtype = name
			}
			i = j
		}
	case i < len(runes) && runes[i] == '@':
		j := i + 1
		for j < len(runes) && (unicode.IsLetter(runes[j]) || runes[j] == '-') {
			j++
		}
		tok.lang = string(runes[i+1 : j])
		i = j
	}
	return tok, i, nil
}

// splitPrefixed expands a prefixed datatype name using the well-known
// prefixes only; unprefixed names pass through unresolved.
func splitPrefixed(name string) (string, bool) {
	for prefix, ns := range wellKnownPrefixes {
		if len(name) > len(prefix) && name[:len(prefix)] == prefix && name[len(prefix)] == ':' {
			return ns + name[len(prefix)+1:], true
		}
	}
	return "", false
}
