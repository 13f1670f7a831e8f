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

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cayleygraph/quad"
)

const dateLayout = "2006-01-02"

// Literal is a typed or language-tagged data value. Literals are plain
// comparable values and can be used as map keys.
type Literal struct {
	Lexical string
	Type    Datatype
	Lang    string
}

func (l Literal) String() string {
	if l.Lang != "" {
		return strconv.Quote(l.Lexical) + "@" + l.Lang
	}
	return strconv.Quote(l.Lexical) + "^^" + l.Type.String()
}

// NewLiteral returns a literal with the given lexical form and datatype.
func NewLiteral(lexical string, dt Datatype) Literal {
	return Literal{Lexical: lexical, Type: dt}
}

// StringLiteral returns an xsd:string literal.
func StringLiteral(s string) Literal {
	return Literal{Lexical: s, Type: StringDatatype}
}

// LangLiteral returns a language-tagged string literal.
func LangLiteral(s, lang string) Literal {
	return Literal{Lexical: s, Type: StringDatatype, Lang: lang}
}

// IntLiteral returns an xsd:integer literal.
func IntLiteral(v int64) Literal {
	return Literal{Lexical: strconv.FormatInt(v, 10), Type: IntegerDatatype}
}

// DoubleLiteral returns an xsd:double literal.
func DoubleLiteral(v float64) Literal {
	return Literal{Lexical: strconv.FormatFloat(v, 'g', -1, 64), Type: DoubleDatatype}
}

// BoolLiteral returns an xsd:boolean literal.
func BoolLiteral(v bool) Literal {
	return Literal{Lexical: strconv.FormatBool(v), Type: BooleanDatatype}
}

// DateLiteral returns an xsd:date literal.
func DateLiteral(t time.Time) Literal {
	return Literal{Lexical: t.Format(dateLayout), Type: DateDatatype}
}

// DateTimeLiteral returns an xsd:dateTime literal.
func DateTimeLiteral(t time.Time) Literal {
	return Literal{Lexical: t.Format(time.RFC3339), Type: DateTimeDatatype}
}

// DurationLiteral returns an xsd:duration literal from an ISO 8601
// duration lexical form such as "P3DT2H".
func DurationLiteral(s string) Literal {
	return Literal{Lexical: s, Type: DurationDatatype}
}

// IsNumeric reports whether the literal's datatype is a numeric XSD type.
func (l Literal) IsNumeric() bool {
	switch IRI(l.Type) {
	case XSDInteger, XSDInt, XSDLong, XSDShort, XSDByte,
		XSDNonNegativeInteger, XSDNonPositiveInteger,
		XSDPositiveInteger, XSDNegativeInteger,
		XSDDecimal, XSDDouble, XSDFloat:
		return true
	}
	return false
}

// IsTemporal reports whether the literal is an xsd:date or xsd:dateTime.
func (l Literal) IsTemporal() bool {
	return IRI(l.Type) == XSDDate || IRI(l.Type) == XSDDateTime
}

// Int parses the lexical form as an integer.
func (l Literal) Int() (int64, error) {
	return strconv.ParseInt(l.Lexical, 10, 64)
}

// Float parses the lexical form as a float64.
func (l Literal) Float() (float64, error) {
	return strconv.ParseFloat(l.Lexical, 64)
}

// Bool parses the lexical form as an xsd:boolean.
func (l Literal) Bool() (bool, error) {
	switch l.Lexical {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("owl: invalid boolean literal %q", l.Lexical)
}

// Time parses the lexical form as an xsd:date or xsd:dateTime value.
func (l Literal) Time() (time.Time, error) {
	if IRI(l.Type) == XSDDate {
		return time.Parse(dateLayout, l.Lexical)
	}
	if t, err := time.Parse(time.RFC3339, l.Lexical); err == nil {
		return t, nil
	}
	// Second fraction and zone designator are both optional in XSD.
	return time.Parse("2006-01-02T15:04:05", l.Lexical)
}

// Quad converts the literal to a quad value, using the native quad types
// for the datatypes that have one.
func (l Literal) Quad() quad.Value {
	if l.Lang != "" {
		return quad.LangString{Value: quad.String(l.Lexical), Lang: l.Lang}
	}
	switch IRI(l.Type) {
	case XSDString:
		return quad.String(l.Lexical)
	case XSDInteger, XSDInt, XSDLong:
		if v, err := l.Int(); err == nil {
			return quad.Int(v)
		}
	case XSDBoolean:
		if v, err := l.Bool(); err == nil {
			return quad.Bool(v)
		}
	case XSDDateTime:
		if v, err := l.Time(); err == nil {
			return quad.Time(v)
		}
	}
	return quad.TypedString{Value: quad.String(l.Lexical), Type: quad.IRI(l.Type)}
}

// LiteralFromQuad converts a quad literal value back to a Literal. It
// reports false for IRIs, blank nodes and unknown value kinds.
func LiteralFromQuad(v quad.Value) (Literal, bool) {
	switch v := v.(type) {
	case quad.String:
		return StringLiteral(string(v)), true
	case quad.LangString:
		return LangLiteral(string(v.Value), v.Lang), true
	case quad.TypedString:
		return NewLiteral(string(v.Value), Datatype(v.Type)), true
	case quad.Int:
		return IntLiteral(int64(v)), true
	case quad.Float:
		return DoubleLiteral(float64(v)), true
	case quad.Bool:
		return BoolLiteral(bool(v)), true
	case quad.Time:
		return DateTimeLiteral(time.Time(v)), true
	}
	return Literal{}, false
}

// CompareLiterals orders two literals of compatible datatypes, returning
// -1, 0 or 1. Numerics compare numerically, dates and datetimes by time,
// booleans false before true, everything else by lexical form when the
// datatypes match exactly.
func CompareLiterals(a, b Literal) (int, error) {
	switch {
	case a.IsNumeric() && b.IsNumeric():
		av, err := a.Float()
		if err != nil {
			return 0, err
		}
		bv, err := b.Float()
		if err != nil {
			return 0, err
		}
		return compareOrdered(av, bv), nil
	case a.IsTemporal() && b.IsTemporal():
		av, err := a.Time()
		if err != nil {
			return 0, err
		}
		bv, err := b.Time()
		if err != nil {
			return 0, err
		}
		switch {
		case av.Before(bv):
			return -1, nil
		case av.After(bv):
			return 1, nil
		}
		return 0, nil
	case a.Type == b.Type && a.Type == DurationDatatype:
		av, err := parseDuration(a.Lexical)
		if err != nil {
			return 0, err
		}
		bv, err := parseDuration(b.Lexical)
		if err != nil {
			return 0, err
		}
		return compareOrdered(av, bv), nil
	case a.Type == b.Type:
		return strings.Compare(a.Lexical, b.Lexical), nil
	}
	return 0, fmt.Errorf("owl: cannot compare %s to %s", a.Type, b.Type)
}

func compareOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// parseDuration reads an ISO 8601 duration into seconds, approximating
// years as 365 days and months as 30 days.
func parseDuration(s string) (int64, error) {
	orig := s
	if !strings.HasPrefix(s, "P") && !strings.HasPrefix(s, "-P") {
		return 0, fmt.Errorf("owl: invalid duration literal %q", orig)
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "P")
	var total int64
	inTime := false
	num := ""
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9' || r == '.':
			num += string(r)
			continue
		case r == 'T':
			inTime = true
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("owl: invalid duration literal %q", orig)
		}
		num = ""
		var unit int64
		switch {
		case r == 'Y':
			unit = 365 * 24 * 3600
		case r == 'M' && !inTime:
			unit = 30 * 24 * 3600
		case r == 'D':
			unit = 24 * 3600
		case r == 'H':
			unit = 3600
		case r == 'M':
			unit = 60
		case r == 'S':
			unit = 1
		default:
			return 0, fmt.Errorf("owl: invalid duration literal %q", orig)
		}
		total += int64(v * float64(unit))
	}
	if num != "" {
		return 0, fmt.Errorf("owl: invalid duration literal %q", orig)
	}
	if neg {
		total = -total
	}
	return total, nil
}
