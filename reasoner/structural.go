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
	"sync"

	"github.com/owlgraph/owlgo/internal/lru"
	"github.com/owlgraph/owlgo/olog"
	"github.com/owlgraph/owlgo/ontology"
	"github.com/owlgraph/owlgo/owl"
)

const extensionCacheSize = 1024

// Option configures a Structural reasoner.
type Option func(*Structural)

// WithNegationDefault controls complement semantics. When true (the
// default) the complement of an expression is every named individual
// outside its extension; when false complements and closed-world
// cardinality bounds are not derived.
func WithNegationDefault(v bool) Option {
	return func(r *Structural) { r.negationDefault = v }
}

// WithSubProperties makes property value lookups include assertions
// made through sub-properties. Off by default.
func WithSubProperties(v bool) Option {
	return func(r *Structural) { r.subProperties = v }
}

// Structural reasons over the asserted axioms only: class and property
// hierarchies are the transitive closure of the asserted subsumptions,
// and instance retrieval evaluates class expressions set-theoretically
// over the asserted property assertions. Named class extensions are
// cached; indexes are rebuilt when the ontology version moves.
type Structural struct {
	onto            *ontology.Ontology
	negationDefault bool
	subProperties   bool

	mu      sync.Mutex
	version int64
	built   bool

	classHier *Hierarchy[owl.Class]
	objHier   *Hierarchy[owl.ObjectProperty]
	dataHier  *Hierarchy[owl.DataProperty]

	individuals map[owl.NamedIndividual]bool

	asserted  map[owl.Class]map[owl.NamedIndividual]bool
	anonTypes map[owl.NamedIndividual][]owl.ClassExpression

	// subBy/superBy index asserted SubClassOf axioms by the canonical
	// string of the other side; used for anonymous expressions that the
	// class hierarchy does not carry.
	subBy   map[string][]owl.ClassExpression
	superBy map[string][]owl.ClassExpression

	equivClasses    map[string][]owl.ClassExpression
	disjointPartner map[string][]owl.ClassExpression

	objSucc map[owl.ObjectProperty]map[owl.NamedIndividual]map[owl.NamedIndividual]bool
	objPred map[owl.ObjectProperty]map[owl.NamedIndividual]map[owl.NamedIndividual]bool
	dataVal map[owl.DataProperty]map[owl.NamedIndividual][]owl.Literal

	inverses        map[owl.ObjectProperty]map[owl.ObjectProperty]bool
	characteristics map[owl.ObjectProperty]map[owl.Characteristic]bool
	functionalData  map[owl.DataProperty]bool

	equivObjProps    map[owl.ObjectProperty][]owl.ObjectPropertyExpression
	disjointObjProps map[owl.ObjectProperty][]owl.ObjectPropertyExpression
	equivDataProps   map[owl.DataProperty][]owl.DataProperty
	disjointDataProp map[owl.DataProperty][]owl.DataProperty

	objDomains  map[owl.ObjectProperty][]owl.ClassExpression
	objRanges   map[owl.ObjectProperty][]owl.ClassExpression
	dataDomains map[owl.DataProperty][]owl.ClassExpression
	dataRanges  map[owl.DataProperty][]owl.DataRange

	same      map[owl.NamedIndividual]map[owl.NamedIndividual]bool
	different map[owl.NamedIndividual]map[owl.NamedIndividual]bool

	extensions *lru.Cache
}

// NewStructural builds a structural reasoner over o.
func NewStructural(o *ontology.Ontology, opts ...Option) *Structural {
	r := &Structural{
		onto:            o,
		negationDefault: true,
		extensions:      lru.New(extensionCacheSize),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RootOntology returns the ontology the reasoner works on.
func (r *Structural) RootOntology() *ontology.Ontology { return r.onto }

// Flush discards the indexes so the next query sees current axioms.
func (r *Structural) Flush() {
	r.mu.Lock()
	r.built = false
	r.mu.Unlock()
}

// ensure rebuilds the indexes when the ontology changed. Callers must
// hold r.mu.
func (r *Structural) ensure() {
	if r.built && r.version == r.onto.Version() {
		return
	}
	r.rebuild()
	r.built = true
	r.version = r.onto.Version()
}

func (r *Structural) rebuild() {
	r.extensions.Purge()
	r.individuals = make(map[owl.NamedIndividual]bool)
	r.asserted = make(map[owl.Class]map[owl.NamedIndividual]bool)
	r.anonTypes = make(map[owl.NamedIndividual][]owl.ClassExpression)
	r.subBy = make(map[string][]owl.ClassExpression)
	r.superBy = make(map[string][]owl.ClassExpression)
	r.equivClasses = make(map[string][]owl.ClassExpression)
	r.disjointPartner = make(map[string][]owl.ClassExpression)
	r.objSucc = make(map[owl.ObjectProperty]map[owl.NamedIndividual]map[owl.NamedIndividual]bool)
	r.objPred = make(map[owl.ObjectProperty]map[owl.NamedIndividual]map[owl.NamedIndividual]bool)
	r.dataVal = make(map[owl.DataProperty]map[owl.NamedIndividual][]owl.Literal)
	r.inverses = make(map[owl.ObjectProperty]map[owl.ObjectProperty]bool)
	r.characteristics = make(map[owl.ObjectProperty]map[owl.Characteristic]bool)
	r.functionalData = make(map[owl.DataProperty]bool)
	r.equivObjProps = make(map[owl.ObjectProperty][]owl.ObjectPropertyExpression)
	r.disjointObjProps = make(map[owl.ObjectProperty][]owl.ObjectPropertyExpression)
	r.equivDataProps = make(map[owl.DataProperty][]owl.DataProperty)
	r.disjointDataProp = make(map[owl.DataProperty][]owl.DataProperty)
	r.objDomains = make(map[owl.ObjectProperty][]owl.ClassExpression)
	r.objRanges = make(map[owl.ObjectProperty][]owl.ClassExpression)
	r.dataDomains = make(map[owl.DataProperty][]owl.ClassExpression)
	r.dataRanges = make(map[owl.DataProperty][]owl.DataRange)
	r.same = make(map[owl.NamedIndividual]map[owl.NamedIndividual]bool)
	r.different = make(map[owl.NamedIndividual]map[owl.NamedIndividual]bool)

	classDown := make(map[owl.Class][]owl.Class)
	objDown := make(map[owl.ObjectProperty][]owl.ObjectProperty)
	dataDown := make(map[owl.DataProperty][]owl.DataProperty)
	for _, c := range r.onto.Classes() {
		classDown[c] = nil
	}
	for _, p := range r.onto.ObjectProperties() {
		objDown[p] = nil
	}
	for _, p := range r.onto.DataProperties() {
		dataDown[p] = nil
	}
	for _, ind := range r.onto.Individuals() {
		r.individuals[ind] = true
	}

	for _, ax := range r.onto.Axioms() {
		switch ax := ax.(type) {
		case owl.SubClassOf:
			sub, subNamed := ax.Sub.(owl.Class)
			super, superNamed := ax.Super.(owl.Class)
			if subNamed && superNamed {
				classDown[super] = append(classDown[super], sub)
				ensureKey(classDown, sub)
				continue
			}
			r.subBy[ax.Super.String()] = append(r.subBy[ax.Super.String()], ax.Sub)
			r.superBy[ax.Sub.String()] = append(r.superBy[ax.Sub.String()], ax.Super)
			if subNamed {
				ensureKey(classDown, sub)
			}
			if superNamed {
				ensureKey(classDown, super)
			}
		case owl.EquivalentClasses:
			joinAll(r.equivClasses, []owl.ClassExpression(ax))
		case owl.DisjointClasses:
			for i, a := range ax {
				for j, b := range ax {
					if i != j {
						r.disjointPartner[a.String()] = append(r.disjointPartner[a.String()], b)
					}
				}
			}
		case owl.DisjointUnion:
			joinAll(r.equivClasses, []owl.ClassExpression{ax.Class, owl.ObjectUnionOf(ax.Operands)})
			for i, a := range ax.Operands {
				for j, b := range ax.Operands {
					if i != j {
						r.disjointPartner[a.String()] = append(r.disjointPartner[a.String()], b)
					}
				}
			}
		case owl.ClassAssertion:
			r.individuals[ax.Individual] = true
			if c, ok := ax.Class.(owl.Class); ok {
				if r.asserted[c] == nil {
					r.asserted[c] = make(map[owl.NamedIndividual]bool)
				}
				r.asserted[c][ax.Individual] = true
				ensureKey(classDown, c)
			} else {
				r.anonTypes[ax.Individual] = append(r.anonTypes[ax.Individual], ax.Class)
			}
		case owl.SubObjectPropertyOf:
			super, sok := ax.Super.(owl.ObjectProperty)
			sub, ok := ax.Sub.(owl.ObjectProperty)
			if sok && ok {
				objDown[super] = append(objDown[super], sub)
				ensureKey(objDown, sub)
			}
		case owl.EquivalentObjectProperties:
			for i, a := range ax {
				named, ok := a.(owl.ObjectProperty)
				if !ok {
					continue
				}
				for j, b := range ax {
					if i != j {
						r.equivObjProps[named] = append(r.equivObjProps[named], b)
					}
				}
			}
		case owl.DisjointObjectProperties:
			for i, a := range ax {
				named, ok := a.(owl.ObjectProperty)
				if !ok {
					continue
				}
				for j, b := range ax {
					if i != j {
						r.disjointObjProps[named] = append(r.disjointObjProps[named], b)
					}
				}
			}
		case owl.InverseObjectProperties:
			a, aok := ax.First.(owl.ObjectProperty)
			b, bok := ax.Second.(owl.ObjectProperty)
			if aok && bok {
				setPair(r.inverses, a, b)
				setPair(r.inverses, b, a)
			}
		case owl.ObjectPropertyCharacteristic:
			p := ax.Property.Named()
			if r.characteristics[p] == nil {
				r.characteristics[p] = make(map[owl.Characteristic]bool)
			}
			r.characteristics[p][ax.Characteristic] = true
		case owl.ObjectPropertyDomain:
			p := ax.Property.Named()
			r.objDomains[p] = append(r.objDomains[p], ax.Domain)
		case owl.ObjectPropertyRange:
			p := ax.Property.Named()
			r.objRanges[p] = append(r.objRanges[p], ax.Range)
		case owl.SubDataPropertyOf:
			dataDown[ax.Super] = append(dataDown[ax.Super], ax.Sub)
			ensureKey(dataDown, ax.Sub)
		case owl.EquivalentDataProperties:
			for i, a := range ax {
				for j, b := range ax {
					if i != j {
						r.equivDataProps[a] = append(r.equivDataProps[a], b)
					}
				}
			}
		case owl.DisjointDataProperties:
			for i, a := range ax {
				for j, b := range ax {
					if i != j {
						r.disjointDataProp[a] = append(r.disjointDataProp[a], b)
					}
				}
			}
		case owl.FunctionalDataProperty:
			r.functionalData[ax.Property] = true
		case owl.DataPropertyDomain:
			r.dataDomains[ax.Property] = append(r.dataDomains[ax.Property], ax.Domain)
		case owl.DataPropertyRange:
			r.dataRanges[ax.Property] = append(r.dataRanges[ax.Property], ax.Range)
		case owl.ObjectPropertyAssertion:
			r.individuals[ax.Subject] = true
			r.individuals[ax.Object] = true
			s, o := ax.Subject, ax.Object
			if ax.Property.IsInverse() {
				s, o = o, s
			}
			p := ax.Property.Named()
			link(r.objSucc, p, s, o)
			link(r.objPred, p, o, s)
		case owl.DataPropertyAssertion:
			r.individuals[ax.Subject] = true
			if r.dataVal[ax.Property] == nil {
				r.dataVal[ax.Property] = make(map[owl.NamedIndividual][]owl.Literal)
			}
			r.dataVal[ax.Property][ax.Subject] = append(r.dataVal[ax.Property][ax.Subject], ax.Value)
		case owl.SameIndividual:
			for i, a := range ax {
				r.individuals[a] = true
				for j, b := range ax {
					if i != j {
						setPair(r.same, a, b)
					}
				}
			}
		case owl.DifferentIndividuals:
			for i, a := range ax {
				r.individuals[a] = true
				for j, b := range ax {
					if i != j {
						setPair(r.different, a, b)
					}
				}
			}
		}
	}

	closePairs(r.same)

	r.classHier = NewHierarchy(owl.Thing, owl.Nothing, classDown)
	r.objHier = NewHierarchy(owl.TopObjectProperty, owl.BottomObjectProperty, objDown)
	r.dataHier = NewHierarchy(owl.TopDataProperty, owl.BottomDataProperty, dataDown)

	if olog.V(2) {
		olog.Infof("reasoner: indexed %d classes, %d object properties, %d individuals",
			r.classHier.Len(), r.objHier.Len(), len(r.individuals))
	}
}

func ensureKey[K comparable, V any](m map[K][]V, k K) {
	if _, ok := m[k]; !ok {
		m[k] = nil
	}
}

func setPair[K comparable](m map[K]map[K]bool, a, b K) {
	if m[a] == nil {
		m[a] = make(map[K]bool)
	}
	m[a][b] = true
}

func link(idx map[owl.ObjectProperty]map[owl.NamedIndividual]map[owl.NamedIndividual]bool,
	p owl.ObjectProperty, from, to owl.NamedIndividual) {
	if idx[p] == nil {
		idx[p] = make(map[owl.NamedIndividual]map[owl.NamedIndividual]bool)
	}
	if idx[p][from] == nil {
		idx[p][from] = make(map[owl.NamedIndividual]bool)
	}
	idx[p][from][to] = true
}

// joinAll records mutual equivalence between all the given expressions.
func joinAll(m map[string][]owl.ClassExpression, ces []owl.ClassExpression) {
	for i, a := range ces {
		for j, b := range ces {
			if i != j {
				m[a.String()] = append(m[a.String()], b)
			}
		}
	}
}

// closePairs extends a symmetric relation to its transitive closure.
func closePairs[K comparable](m map[K]map[K]bool) {
	changed := true
	for changed {
		changed = false
		for a, direct := range m {
			for b := range direct {
				for c := range m[b] {
					if c != a && !m[a][c] {
						m[a][c] = true
						changed = true
					}
				}
			}
		}
	}
}

func sortedIndividuals(set map[owl.NamedIndividual]bool) []owl.NamedIndividual {
	out := make([]owl.NamedIndividual, 0, len(set))
	for ind := range set {
		out = append(out, ind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortExpressions(ces []owl.ClassExpression) []owl.ClassExpression {
	sort.Slice(ces, func(i, j int) bool { return ces[i].String() < ces[j].String() })
	return ces
}

// dedupExpressions drops duplicates and, optionally, anonymous
// expressions and the expression itself.
func dedupExpressions(ces []owl.ClassExpression, onlyNamed bool, exclude string) []owl.ClassExpression {
	seen := make(map[string]bool)
	out := make([]owl.ClassExpression, 0, len(ces))
	for _, ce := range ces {
		key := ce.String()
		if key == exclude || seen[key] {
			continue
		}
		if onlyNamed && owl.IsAnonymous(ce) {
			continue
		}
		seen[key] = true
		out = append(out, ce)
	}
	return sortExpressions(out)
}

// Instances retrieves the named individuals in the extension of ce.
// With direct set, only individuals directly asserted to be of type ce
// (or one of its equivalent named classes) are returned.
func (r *Structural) Instances(ce owl.ClassExpression, direct bool) ([]owl.NamedIndividual, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	if direct {
		set := make(map[owl.NamedIndividual]bool)
		if c, ok := ce.(owl.Class); ok {
			for ind := range r.asserted[c] {
				set[ind] = true
			}
			for _, eq := range r.equivClasses[c.String()] {
				if eqc, ok := eq.(owl.Class); ok {
					for ind := range r.asserted[eqc] {
						set[ind] = true
					}
				}
			}
		} else {
			key := ce.String()
			for ind, types := range r.anonTypes {
				for _, t := range types {
					if t.String() == key {
						set[ind] = true
					}
				}
			}
		}
		return sortedIndividuals(set), nil
	}
	ext, err := r.extension(ce)
	if err != nil {
		return nil, err
	}
	return sortedIndividuals(ext), nil
}

// Types returns the named classes an individual belongs to. With direct
// set, classes subsumed by another result class are dropped.
func (r *Structural) Types(ind owl.NamedIndividual, direct bool) ([]owl.Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var types []owl.Class
	for _, c := range r.classHier.Items() {
		ext, err := r.extension(c)
		if err != nil {
			return nil, err
		}
		if ext[ind] {
			types = append(types, c)
		}
	}
	if !direct {
		return append(types, owl.Thing), nil
	}
	if len(types) == 0 {
		return []owl.Class{owl.Thing}, nil
	}
	var most []owl.Class
	for _, c := range types {
		specific := true
		for _, d := range types {
			if d != c && r.classHier.IsChildOf(d, c) && !r.classHier.IsChildOf(c, d) {
				specific = false
				break
			}
		}
		if specific {
			most = append(most, c)
		}
	}
	return most, nil
}

// SubClasses returns the strict subclasses of ce.
func (r *Structural) SubClasses(ce owl.ClassExpression, direct, onlyNamed bool) ([]owl.ClassExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var out []owl.ClassExpression
	if c, ok := ce.(owl.Class); ok {
		for _, sub := range r.classHier.Children(c, direct) {
			out = append(out, sub)
		}
	}
	key := ce.String()
	out = append(out, r.subBy[key]...)
	for _, eq := range r.equivClasses[key] {
		out = append(out, r.subBy[eq.String()]...)
	}
	return dedupExpressions(out, onlyNamed, key), nil
}

// SuperClasses returns the strict superclasses of ce.
func (r *Structural) SuperClasses(ce owl.ClassExpression, direct, onlyNamed bool) ([]owl.ClassExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var out []owl.ClassExpression
	if c, ok := ce.(owl.Class); ok {
		for _, super := range r.classHier.Parents(c, direct) {
			out = append(out, super)
		}
	}
	key := ce.String()
	out = append(out, r.superBy[key]...)
	for _, eq := range r.equivClasses[key] {
		out = append(out, r.superBy[eq.String()]...)
	}
	return dedupExpressions(out, onlyNamed, key), nil
}

// EquivalentClasses returns the expressions asserted equivalent to ce,
// directly or through a chain of equivalence axioms.
func (r *Structural) EquivalentClasses(ce owl.ClassExpression, onlyNamed bool) ([]owl.ClassExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	key := ce.String()
	seen := map[string]bool{key: true}
	var out []owl.ClassExpression
	queue := append([]owl.ClassExpression(nil), r.equivClasses[key]...)
	for len(queue) > 0 {
		eq := queue[0]
		queue = queue[1:]
		if seen[eq.String()] {
			continue
		}
		seen[eq.String()] = true
		out = append(out, eq)
		queue = append(queue, r.equivClasses[eq.String()]...)
	}
	return dedupExpressions(out, onlyNamed, key), nil
}

// DisjointClasses returns the expressions asserted disjoint with ce or
// one of its superclasses, expanded with their descendants and
// equivalents.
func (r *Structural) DisjointClasses(ce owl.ClassExpression, onlyNamed bool) ([]owl.ClassExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var partners []owl.ClassExpression
	collect := func(key string) {
		partners = append(partners, r.disjointPartner[key]...)
	}
	key := ce.String()
	collect(key)
	for _, eq := range r.equivClasses[key] {
		collect(eq.String())
	}
	if c, ok := ce.(owl.Class); ok {
		for _, super := range r.classHier.Parents(c, false) {
			collect(super.String())
		}
	}
	var out []owl.ClassExpression
	for _, p := range partners {
		out = append(out, p)
		out = append(out, r.equivClasses[p.String()]...)
		if pc, ok := p.(owl.Class); ok {
			for _, sub := range r.classHier.Children(pc, false) {
				out = append(out, sub)
			}
		}
	}
	return dedupExpressions(out, onlyNamed, key), nil
}

// SubObjectProperties returns the strict sub-properties of op.
func (r *Structural) SubObjectProperties(op owl.ObjectProperty, direct bool) ([]owl.ObjectProperty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return r.objHier.Children(op, direct), nil
}

// SuperObjectProperties returns the strict super-properties of op.
func (r *Structural) SuperObjectProperties(op owl.ObjectProperty, direct bool) ([]owl.ObjectProperty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return r.objHier.Parents(op, direct), nil
}

// EquivalentObjectProperties returns the property expressions asserted
// equivalent to op.
func (r *Structural) EquivalentObjectProperties(op owl.ObjectProperty) ([]owl.ObjectPropertyExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return dedupProperties(r.equivObjProps[op], op.String()), nil
}

// DisjointObjectProperties returns the property expressions asserted
// disjoint with op, including descendants of named ones.
func (r *Structural) DisjointObjectProperties(op owl.ObjectProperty) ([]owl.ObjectPropertyExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var out []owl.ObjectPropertyExpression
	for _, p := range r.disjointObjProps[op] {
		out = append(out, p)
		if named, ok := p.(owl.ObjectProperty); ok {
			for _, sub := range r.objHier.Children(named, false) {
				out = append(out, sub)
			}
		}
	}
	return dedupProperties(out, op.String()), nil
}

// InverseObjectProperties returns the properties asserted inverse to
// op. A symmetric property is its own inverse.
func (r *Structural) InverseObjectProperties(op owl.ObjectProperty) ([]owl.ObjectPropertyExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var out []owl.ObjectPropertyExpression
	for inv := range r.inverses[op] {
		out = append(out, inv)
	}
	if r.characteristics[op][owl.Symmetric] {
		out = append(out, op)
	}
	return dedupProperties(out, ""), nil
}

// SubDataProperties returns the strict sub-properties of dp.
func (r *Structural) SubDataProperties(dp owl.DataProperty, direct bool) ([]owl.DataProperty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return r.dataHier.Children(dp, direct), nil
}

// SuperDataProperties returns the strict super-properties of dp.
func (r *Structural) SuperDataProperties(dp owl.DataProperty, direct bool) ([]owl.DataProperty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return r.dataHier.Parents(dp, direct), nil
}

// EquivalentDataProperties returns the data properties asserted
// equivalent to dp.
func (r *Structural) EquivalentDataProperties(dp owl.DataProperty) ([]owl.DataProperty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return dedupDataProperties(r.equivDataProps[dp], dp), nil
}

// DisjointDataProperties returns the data properties asserted disjoint
// with dp, including descendants.
func (r *Structural) DisjointDataProperties(dp owl.DataProperty) ([]owl.DataProperty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var out []owl.DataProperty
	for _, p := range r.disjointDataProp[dp] {
		out = append(out, p)
		out = append(out, r.dataHier.Children(p, false)...)
	}
	return dedupDataProperties(out, dp), nil
}

// ObjectPropertyDomains returns the asserted domains of op and its
// super-properties; indirect results add superclasses and equivalents.
func (r *Structural) ObjectPropertyDomains(op owl.ObjectProperty, direct bool) ([]owl.ClassExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var out []owl.ClassExpression
	out = append(out, r.objDomains[op]...)
	for _, super := range r.objHier.Parents(op, false) {
		out = append(out, r.objDomains[super]...)
	}
	return r.expandDomains(out, direct), nil
}

// ObjectPropertyRanges returns the asserted ranges of op and its
// super-properties; indirect results add superclasses and equivalents.
func (r *Structural) ObjectPropertyRanges(op owl.ObjectProperty, direct bool) ([]owl.ClassExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var out []owl.ClassExpression
	out = append(out, r.objRanges[op]...)
	for _, super := range r.objHier.Parents(op, false) {
		out = append(out, r.objRanges[super]...)
	}
	return r.expandDomains(out, direct), nil
}

// DataPropertyDomains returns the asserted domains of dp and its
// super-properties; indirect results add superclasses and equivalents.
func (r *Structural) DataPropertyDomains(dp owl.DataProperty, direct bool) ([]owl.ClassExpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	var out []owl.ClassExpression
	out = append(out, r.dataDomains[dp]...)
	for _, super := range r.dataHier.Parents(dp, false) {
		out = append(out, r.dataDomains[super]...)
	}
	return r.expandDomains(out, direct), nil
}

func (r *Structural) expandDomains(domains []owl.ClassExpression, direct bool) []owl.ClassExpression {
	if direct {
		return dedupExpressions(domains, false, "")
	}
	var out []owl.ClassExpression
	for _, d := range domains {
		out = append(out, d)
		out = append(out, r.equivClasses[d.String()]...)
		if c, ok := d.(owl.Class); ok {
			for _, super := range r.classHier.Parents(c, false) {
				out = append(out, super)
			}
		}
	}
	return dedupExpressions(out, false, "")
}

// ObjectPropertyValues returns the successors of ind over pe, honoring
// inverse axioms, symmetry, and (when enabled) sub-properties.
func (r *Structural) ObjectPropertyValues(ind owl.NamedIndividual, pe owl.ObjectPropertyExpression) ([]owl.NamedIndividual, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return sortedIndividuals(r.successors(ind, pe)), nil
}

// DataPropertyValues returns the literal values asserted for ind over
// dp, including sub-property assertions when enabled.
func (r *Structural) DataPropertyValues(ind owl.NamedIndividual, dp owl.DataProperty) ([]owl.Literal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	lits := r.literals(ind, dp)
	sort.Slice(lits, func(i, j int) bool { return lits[i].String() < lits[j].String() })
	return lits, nil
}

// SameIndividuals returns the individuals asserted equal to ind,
// closed transitively.
func (r *Structural) SameIndividuals(ind owl.NamedIndividual) ([]owl.NamedIndividual, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return sortedIndividuals(r.same[ind]), nil
}

// DifferentIndividuals returns the individuals asserted different
// from ind.
func (r *Structural) DifferentIndividuals(ind owl.NamedIndividual) ([]owl.NamedIndividual, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return sortedIndividuals(r.different[ind]), nil
}

func dedupProperties(ps []owl.ObjectPropertyExpression, exclude string) []owl.ObjectPropertyExpression {
	seen := make(map[string]bool)
	out := make([]owl.ObjectPropertyExpression, 0, len(ps))
	for _, p := range ps {
		key := p.String()
		if key == exclude || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func dedupDataProperties(ps []owl.DataProperty, exclude owl.DataProperty) []owl.DataProperty {
	seen := map[owl.DataProperty]bool{exclude: true}
	out := make([]owl.DataProperty, 0, len(ps))
	for _, p := range ps {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var _ Interface = (*Structural)(nil)
