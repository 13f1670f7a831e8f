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

package reasoner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/owlgraph/owlgo/owl"
)

func TestHierarchy(t *testing.T) {
	ns := "http://example.com/h#"
	a := owl.Class(ns + "a")
	b := owl.Class(ns + "b")
	c := owl.Class(ns + "c")
	d := owl.Class(ns + "d")

	h := NewHierarchy(owl.Thing, owl.Nothing, map[owl.Class][]owl.Class{
		a: {b, d},
		b: {c},
		c: nil,
		d: nil,
	})

	require.Equal(t, 4, h.Len())
	require.ElementsMatch(t, []owl.Class{b, d}, h.Children(a, true))
	require.ElementsMatch(t, []owl.Class{b, c, d}, h.Children(a, false))
	require.ElementsMatch(t, []owl.Class{a, b}, h.Parents(c, false))
	require.ElementsMatch(t, []owl.Class{b}, h.Parents(c, true))
	require.ElementsMatch(t, []owl.Class{a}, h.Roots())
	require.ElementsMatch(t, []owl.Class{c, d}, h.Leaves())
	require.ElementsMatch(t, []owl.Class{d}, h.Siblings(b))

	require.True(t, h.IsChildOf(c, a))
	require.True(t, h.IsChildOf(c, c))
	require.False(t, h.IsChildOf(a, c))
	require.True(t, h.IsParentOf(a, d))

	// Thing and Nothing are virtual members.
	require.ElementsMatch(t, []owl.Class{a}, h.Children(owl.Thing, true))
	require.ElementsMatch(t, []owl.Class{a, b, c, d}, h.Children(owl.Thing, false))
	require.Empty(t, h.Children(owl.Nothing, false))
	require.ElementsMatch(t, []owl.Class{c, d}, h.Parents(owl.Nothing, true))
	require.True(t, h.IsChildOf(owl.Nothing, c))
	require.True(t, h.IsParentOf(owl.Thing, d))
}

func TestHierarchyTransitiveReduction(t *testing.T) {
	ns := "http://example.com/h#"
	a := owl.Class(ns + "a")
	b := owl.Class(ns + "b")
	c := owl.Class(ns + "c")

	// The asserted a -> c link is implied by a -> b -> c.
	h := NewHierarchy(owl.Thing, owl.Nothing, map[owl.Class][]owl.Class{
		a: {b, c},
		b: {c},
		c: nil,
	})
	require.ElementsMatch(t, []owl.Class{b}, h.Children(a, true))
	require.ElementsMatch(t, []owl.Class{b, c}, h.Children(a, false))
}
