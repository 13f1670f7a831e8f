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

import "strings"

// ClassExpression is a named class or an anonymous class expression.
type ClassExpression interface {
	Object
	classExpression()
}

// IsAnonymous reports whether a class expression is not a named class.
func IsAnonymous(e ClassExpression) bool {
	_, named := e.(Class)
	return !named
}

func naryString(name string, objs []string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, s := range objs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	b.WriteByte(')')
	return b.String()
}

// ObjectComplementOf is the complement of a class expression.
type ObjectComplementOf struct {
	Operand ClassExpression
}

func (e ObjectComplementOf) String() string {
	return "ObjectComplementOf(" + e.Operand.String() + ")"
}
func (e ObjectComplementOf) classExpression() {}

// ObjectIntersectionOf is the intersection of two or more class expressions.
type ObjectIntersectionOf []ClassExpression

func (e ObjectIntersectionOf) String() string {
	return naryString("ObjectIntersectionOf", objectStrings(e))
}
func (e ObjectIntersectionOf) classExpression() {}

// ObjectUnionOf is the union of two or more class expressions.
type ObjectUnionOf []ClassExpression

func (e ObjectUnionOf) String() string {
	return naryString("ObjectUnionOf", objectStrings(e))
}
func (e ObjectUnionOf) classExpression() {}

// ObjectOneOf is the enumeration of one or more individuals.
type ObjectOneOf []NamedIndividual

func (e ObjectOneOf) String() string {
	return naryString("ObjectOneOf", objectStrings(e))
}
func (e ObjectOneOf) classExpression() {}

func objectStrings[T Object](objs []T) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.String()
	}
	return out
}
