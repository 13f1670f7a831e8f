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
	"sort"

	"github.com/owlgraph/owlgo/owl"
)

// entity constrains hierarchy members to comparable named entities.
type entity interface {
	comparable
	owl.Entity
}

// Hierarchy holds the is-a relation over one kind of entity with both
// the transitive closure and its direct reduction precomputed. The top
// and bottom entities are virtual members: top is a parent of every
// entity and bottom a child of every entity.
type Hierarchy[T entity] struct {
	top, bottom T

	items         map[T]bool
	parents       map[T]map[T]bool
	parentsTrans  map[T]map[T]bool
	children      map[T]map[T]bool
	childrenTrans map[T]map[T]bool
	roots         map[T]bool
	leaves        map[T]bool
}

// NewHierarchy builds a hierarchy from a downward relation mapping
// every member to its asserted direct children.
func NewHierarchy[T entity](top, bottom T, down map[T][]T) *Hierarchy[T] {
	h := &Hierarchy[T]{
		top:           top,
		bottom:        bottom,
		items:         make(map[T]bool, len(down)),
		parents:       make(map[T]map[T]bool, len(down)),
		parentsTrans:  make(map[T]map[T]bool, len(down)),
		children:      make(map[T]map[T]bool, len(down)),
		childrenTrans: make(map[T]map[T]bool, len(down)),
		roots:         make(map[T]bool),
		leaves:        make(map[T]bool),
	}
	for ent, subs := range down {
		h.items[ent] = true
		set := make(map[T]bool, len(subs))
		for _, sub := range subs {
			if sub != ent {
				set[sub] = true
			}
		}
		h.childrenTrans[ent] = set
		h.parentsTrans[ent] = make(map[T]bool)
	}
	state := make(map[T]int, len(h.childrenTrans))
	for ent := range h.childrenTrans {
		h.closeDownward(ent, state)
	}
	for ent, subs := range h.childrenTrans {
		for sub := range subs {
			if _, ok := h.parentsTrans[sub]; ok {
				h.parentsTrans[sub][ent] = true
			}
		}
	}
	h.children, h.leaves = reduce(h.childrenTrans, h.parentsTrans)
	h.parents, h.roots = reduce(h.parentsTrans, h.childrenTrans)
	return h
}

// closeDownward folds all descendants of ent's children into ent's
// set. state tracks finished (2) and in-progress (1) members so cycles
// terminate with whatever is known so far.
func (h *Hierarchy[T]) closeDownward(ent T, state map[T]int) {
	if state[ent] != 0 {
		return
	}
	state[ent] = 1
	subs := make([]T, 0, len(h.childrenTrans[ent]))
	for sub := range h.childrenTrans[ent] {
		subs = append(subs, sub)
	}
	for _, sub := range subs {
		if _, ok := h.childrenTrans[sub]; !ok {
			continue
		}
		h.closeDownward(sub, state)
		for below := range h.childrenTrans[sub] {
			if below != ent {
				h.childrenTrans[ent][below] = true
			}
		}
	}
	state[ent] = 2
}

// reduce removes links implied by transitivity, returning the direct
// relation and the set of members with no links at all.
func reduce[T comparable](rel, inverse map[T]map[T]bool) (map[T]map[T]bool, map[T]bool) {
	direct := make(map[T]map[T]bool, len(rel))
	bare := make(map[T]bool)
	for ent, related := range rel {
		set := make(map[T]bool)
		for item := range related {
			mediated := false
			for via := range inverse[item] {
				if via != ent && related[via] {
					mediated = true
					break
				}
			}
			if !mediated {
				set[item] = true
			}
		}
		direct[ent] = set
		if len(set) == 0 {
			bare[ent] = true
		}
	}
	return direct, bare
}

func (h *Hierarchy[T]) sorted(set map[T]bool) []T {
	out := make([]T, 0, len(set))
	for ent := range set {
		out = append(out, ent)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Contains reports whether the entity is a member of the hierarchy.
func (h *Hierarchy[T]) Contains(ent T) bool { return h.items[ent] }

// Len returns the number of members.
func (h *Hierarchy[T]) Len() int { return len(h.items) }

// Items returns all members in canonical order.
func (h *Hierarchy[T]) Items() []T { return h.sorted(h.items) }

// Roots returns the members with no parents.
func (h *Hierarchy[T]) Roots() []T { return h.sorted(h.roots) }

// Leaves returns the members with no children.
func (h *Hierarchy[T]) Leaves() []T { return h.sorted(h.leaves) }

// Parents returns the super-entities of ent, direct or transitive.
func (h *Hierarchy[T]) Parents(ent T, direct bool) []T {
	switch ent {
	case h.bottom:
		if direct {
			return h.Leaves()
		}
		return h.Items()
	case h.top:
		return nil
	}
	if direct {
		return h.sorted(h.parents[ent])
	}
	return h.sorted(h.parentsTrans[ent])
}

// Children returns the sub-entities of ent, direct or transitive.
func (h *Hierarchy[T]) Children(ent T, direct bool) []T {
	switch ent {
	case h.top:
		if direct {
			return h.Roots()
		}
		return h.Items()
	case h.bottom:
		return nil
	}
	if direct {
		return h.sorted(h.children[ent])
	}
	return h.sorted(h.childrenTrans[ent])
}

// Siblings returns the other direct children of ent's direct parents.
func (h *Hierarchy[T]) Siblings(ent T) []T {
	set := make(map[T]bool)
	for parent := range h.parents[ent] {
		for sibling := range h.children[parent] {
			if sibling != ent {
				set[sibling] = true
			}
		}
	}
	return h.sorted(set)
}

// IsChildOf reports whether a is b or below b. Top and bottom follow
// their fixed positions.
func (h *Hierarchy[T]) IsChildOf(a, b T) bool {
	if a == b || a == h.bottom || b == h.top {
		return true
	}
	return h.childrenTrans[b][a]
}

// IsParentOf reports whether a is b or above b.
func (h *Hierarchy[T]) IsParentOf(a, b T) bool {
	if a == b || a == h.top || b == h.bottom {
		return true
	}
	return h.parentsTrans[b][a]
}
