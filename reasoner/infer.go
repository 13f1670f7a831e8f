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
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/owlgraph/owlgo/ontology"
	"github.com/owlgraph/owlgo/owl"
)

// InferenceType names one family of axioms a reasoner can materialize.
type InferenceType string

const (
	InferClassAssertions          InferenceType = "class_assertion"
	InferSubClasses               InferenceType = "subclass"
	InferEquivalentClasses        InferenceType = "equivalent_class"
	InferDisjointClasses          InferenceType = "disjoint_classes"
	InferSubObjectProperties      InferenceType = "sub_object_property"
	InferEquivalentObjectProps    InferenceType = "equivalent_object_property"
	InferInverseObjectProperties  InferenceType = "inverse_object_properties"
	InferObjectPropertyCharacters InferenceType = "object_property_characteristic"
	InferSubDataProperties        InferenceType = "sub_data_property"
	InferEquivalentDataProps      InferenceType = "equivalent_data_property"
	InferDataPropertyCharacters   InferenceType = "data_property_characteristic"

	// InferAll runs every generator.
	InferAll InferenceType = "all"
)

// AllInferenceTypes lists the individual generators in the order their
// results are merged.
var AllInferenceTypes = []InferenceType{
	InferClassAssertions,
	InferSubClasses,
	InferEquivalentClasses,
	InferDisjointClasses,
	InferSubObjectProperties,
	InferEquivalentObjectProps,
	InferInverseObjectProperties,
	InferObjectPropertyCharacters,
	InferSubDataProperties,
	InferEquivalentDataProps,
	InferDataPropertyCharacters,
}

// ParseInferenceTypes validates a list of generator names, expanding
// "all".
func ParseInferenceTypes(names []string) ([]InferenceType, error) {
	var out []InferenceType
	for _, name := range names {
		t := InferenceType(name)
		if t == InferAll {
			return AllInferenceTypes, nil
		}
		known := false
		for _, k := range AllInferenceTypes {
			if t == k {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown inference type %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

// Infer materializes the axioms the reasoner entails for the requested
// generator families. Generators run concurrently; the merged result is
// deduplicated and keeps the generator order.
func Infer(ctx context.Context, r Interface, types []InferenceType) ([]owl.Axiom, error) {
	results := make([][]owl.Axiom, len(types))
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range types {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			axs, err := runGenerator(r, t)
			if err != nil {
				return fmt.Errorf("inference %q: %w", t, err)
			}
			results[i] = axs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []owl.Axiom
	for _, axs := range results {
		for _, ax := range axs {
			if key := ax.String(); !seen[key] {
				seen[key] = true
				out = append(out, ax)
			}
		}
	}
	return out, nil
}

func runGenerator(r Interface, t InferenceType) ([]owl.Axiom, error) {
	onto := r.RootOntology()
	switch t {
	case InferClassAssertions:
		var out []owl.Axiom
		for _, ind := range onto.Individuals() {
			types, err := r.Types(ind, false)
			if err != nil {
				return nil, err
			}
			for _, c := range types {
				if !c.IsThing() {
					out = append(out, owl.ClassAssertion{Class: c, Individual: ind})
				}
			}
		}
		return out, nil
	case InferSubClasses:
		var out []owl.Axiom
		for _, c := range onto.Classes() {
			supers, err := r.SuperClasses(c, true, true)
			if err != nil {
				return nil, err
			}
			for _, super := range supers {
				out = append(out, owl.SubClassOf{Sub: c, Super: super})
			}
		}
		return out, nil
	case InferEquivalentClasses:
		var out []owl.Axiom
		for _, c := range onto.Classes() {
			eqs, err := r.EquivalentClasses(c, false)
			if err != nil {
				return nil, err
			}
			for _, eq := range eqs {
				// Anonymous partners are never visited as c, so the
				// ordering guard only applies between named classes.
				if owl.IsAnonymous(eq) || c.String() < eq.String() {
					out = append(out, owl.EquivalentClasses{c, eq})
				}
			}
		}
		return out, nil
	case InferDisjointClasses:
		var out []owl.Axiom
		for _, c := range onto.Classes() {
			djs, err := r.DisjointClasses(c, true)
			if err != nil {
				return nil, err
			}
			for _, dj := range djs {
				if c.String() < dj.String() {
					out = append(out, owl.DisjointClasses{c, dj})
				}
			}
		}
		return out, nil
	case InferSubObjectProperties:
		var out []owl.Axiom
		for _, p := range onto.ObjectProperties() {
			supers, err := r.SuperObjectProperties(p, true)
			if err != nil {
				return nil, err
			}
			for _, super := range supers {
				out = append(out, owl.SubObjectPropertyOf{Sub: p, Super: super})
			}
		}
		return out, nil
	case InferEquivalentObjectProps:
		var out []owl.Axiom
		for _, p := range onto.ObjectProperties() {
			eqs, err := r.EquivalentObjectProperties(p)
			if err != nil {
				return nil, err
			}
			for _, eq := range eqs {
				if _, named := eq.(owl.ObjectProperty); !named || p.String() < eq.String() {
					out = append(out, owl.EquivalentObjectProperties{p, eq})
				}
			}
		}
		return out, nil
	case InferInverseObjectProperties:
		var out []owl.Axiom
		for _, p := range onto.ObjectProperties() {
			invs, err := r.InverseObjectProperties(p)
			if err != nil {
				return nil, err
			}
			for _, inv := range invs {
				if p.String() <= inv.String() {
					out = append(out, owl.InverseObjectProperties{First: p, Second: inv})
				}
			}
		}
		return out, nil
	case InferObjectPropertyCharacters:
		return objectCharacteristics(r)
	case InferSubDataProperties:
		var out []owl.Axiom
		for _, p := range onto.DataProperties() {
			supers, err := r.SuperDataProperties(p, true)
			if err != nil {
				return nil, err
			}
			for _, super := range supers {
				out = append(out, owl.SubDataPropertyOf{Sub: p, Super: super})
			}
		}
		return out, nil
	case InferEquivalentDataProps:
		var out []owl.Axiom
		for _, p := range onto.DataProperties() {
			eqs, err := r.EquivalentDataProperties(p)
			if err != nil {
				return nil, err
			}
			for _, eq := range eqs {
				if p < eq {
					out = append(out, owl.EquivalentDataProperties{p, eq})
				}
			}
		}
		return out, nil
	case InferDataPropertyCharacters:
		return dataCharacteristics(onto)
	}
	return nil, fmt.Errorf("%w: inference type %q", ErrNotSupported, t)
}

// downwardInherited marks the characteristics that transfer from a
// property to its sub-properties.
var downwardInherited = map[owl.Characteristic]bool{
	owl.Functional:        true,
	owl.InverseFunctional: true,
	owl.Irreflexive:       true,
	owl.Asymmetric:        true,
}

// objectCharacteristics echoes asserted characteristics and propagates
// them along equivalence and, where sound, down the sub-property
// hierarchy.
func objectCharacteristics(r Interface) ([]owl.Axiom, error) {
	onto := r.RootOntology()
	asserted := make(map[owl.ObjectProperty][]owl.Characteristic)
	for _, ax := range onto.Axioms() {
		if ch, ok := ax.(owl.ObjectPropertyCharacteristic); ok {
			p := ch.Property.Named()
			asserted[p] = append(asserted[p], ch.Characteristic)
		}
	}
	derived := make(map[owl.ObjectProperty]map[owl.Characteristic]bool)
	record := func(p owl.ObjectProperty, c owl.Characteristic) {
		if derived[p] == nil {
			derived[p] = make(map[owl.Characteristic]bool)
		}
		derived[p][c] = true
	}
	for p, chs := range asserted {
		eqs, err := r.EquivalentObjectProperties(p)
		if err != nil {
			return nil, err
		}
		subs, err := r.SubObjectProperties(p, false)
		if err != nil {
			return nil, err
		}
		for _, c := range chs {
			record(p, c)
			for _, eq := range eqs {
				if named, ok := eq.(owl.ObjectProperty); ok {
					record(named, c)
				}
			}
			if downwardInherited[c] {
				for _, sub := range subs {
					record(sub, c)
				}
			}
		}
	}
	var out []owl.Axiom
	sorted := make([]owl.ObjectProperty, 0, len(derived))
	for p := range derived {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, p := range sorted {
		for c := owl.Functional; c <= owl.Irreflexive; c++ {
			if derived[p][c] {
				out = append(out, owl.ObjectPropertyCharacteristic{Property: p, Characteristic: c})
			}
		}
	}
	return out, nil
}

// dataCharacteristics echoes asserted functional data properties and
// propagates them to equivalent and sub-properties.
func dataCharacteristics(onto *ontology.Ontology) ([]owl.Axiom, error) {
	functional := make(map[owl.DataProperty]bool)
	equiv := make(map[owl.DataProperty][]owl.DataProperty)
	subs := make(map[owl.DataProperty][]owl.DataProperty)
	for _, ax := range onto.Axioms() {
		switch ax := ax.(type) {
		case owl.FunctionalDataProperty:
			functional[ax.Property] = true
		case owl.EquivalentDataProperties:
			for i, a := range ax {
				for j, b := range ax {
					if i != j {
						equiv[a] = append(equiv[a], b)
					}
				}
			}
		case owl.SubDataPropertyOf:
			subs[ax.Super] = append(subs[ax.Super], ax.Sub)
		}
	}
	derived := make(map[owl.DataProperty]bool)
	for p := range functional {
		derived[p] = true
		for _, eq := range equiv[p] {
			derived[eq] = true
		}
		for _, sub := range subs[p] {
			derived[sub] = true
		}
	}
	out := make([]owl.Axiom, 0, len(derived))
	sorted := make([]owl.DataProperty, 0, len(derived))
	for p := range derived {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, p := range sorted {
		out = append(out, owl.FunctionalDataProperty{Property: p})
	}
	return out, nil
}
