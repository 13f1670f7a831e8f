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

import "sort"

// Object is the base interface for every element of the OWL model. The
// String form is canonical: two objects are structurally equal exactly when
// their String forms match, so it doubles as a map key and sort key.
// Entities render as their full IRI, anonymous expressions and axioms render
// in OWL functional-style syntax.
type Object interface {
	String() string
}

// Equal reports structural equality of two model objects.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// Entity is a named object: a class, property, individual or datatype.
type Entity interface {
	Object
	IRI() IRI
	entity()
}

// sortObjects orders a slice of objects by their canonical form. Used to
// canonicalize n-ary operands.
func sortObjects[T Object](objs []T) []T {
	out := make([]T, len(objs))
	copy(out, objs)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
