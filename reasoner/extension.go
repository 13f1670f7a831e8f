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
	"fmt"
	"regexp"

	"github.com/owlgraph/owlgo/owl"
)

// extension evaluates a class expression to its set of named
// individuals. Callers must hold r.mu.
func (r *Structural) extension(ce owl.ClassExpression) (map[owl.NamedIndividual]bool, error) {
	switch ce := ce.(type) {
	case owl.Class:
		return r.classExtension(ce), nil
	case owl.ObjectIntersectionOf:
		if len(ce) == 0 {
			return r.allIndividuals(), nil
		}
		out, err := r.extension(ce[0])
		if err != nil {
			return nil, err
		}
		out = copySet(out)
		for _, op := range ce[1:] {
			other, err := r.extension(op)
			if err != nil {
				return nil, err
			}
			for ind := range out {
				if !other[ind] {
					delete(out, ind)
				}
			}
		}
		return out, nil
	case owl.ObjectUnionOf:
		out := make(map[owl.NamedIndividual]bool)
		for _, op := range ce {
			other, err := r.extension(op)
			if err != nil {
				return nil, err
			}
			for ind := range other {
				out[ind] = true
			}
		}
		return out, nil
	case owl.ObjectComplementOf:
		if !r.negationDefault {
			return nil, fmt.Errorf("%w: complement without negation default", ErrNotSupported)
		}
		inner, err := r.extension(ce.Operand)
		if err != nil {
			return nil, err
		}
		out := r.allIndividuals()
		for ind := range inner {
			delete(out, ind)
		}
		return out, nil
	case owl.ObjectOneOf:
		out := make(map[owl.NamedIndividual]bool, len(ce))
		for _, ind := range ce {
			out[ind] = true
		}
		return out, nil
	case owl.ObjectSomeValuesFrom:
		filler, err := r.extension(ce.Filler)
		if err != nil {
			return nil, err
		}
		out := make(map[owl.NamedIndividual]bool)
		for ind := range r.individuals {
			for succ := range r.successors(ind, ce.Property) {
				if filler[succ] {
					out[ind] = true
					break
				}
			}
		}
		return out, nil
	case owl.ObjectAllValuesFrom:
		filler, err := r.extension(ce.Filler)
		if err != nil {
			return nil, err
		}
		out := make(map[owl.NamedIndividual]bool)
		for ind := range r.individuals {
			succs := r.successors(ind, ce.Property)
			if !r.negationDefault && len(succs) == 0 {
				continue
			}
			inside := true
			for succ := range succs {
				if !filler[succ] {
					inside = false
					break
				}
			}
			if inside {
				out[ind] = true
			}
		}
		return out, nil
	case owl.ObjectHasValue:
		out := make(map[owl.NamedIndividual]bool)
		for ind := range r.individuals {
			if r.successors(ind, ce.Property)[ce.Individual] {
				out[ind] = true
			}
		}
		return out, nil
	case owl.ObjectHasSelf:
		out := make(map[owl.NamedIndividual]bool)
		for ind := range r.individuals {
			if r.successors(ind, ce.Property)[ind] {
				out[ind] = true
			}
		}
		return out, nil
	case owl.ObjectMinCardinality:
		return r.countExtension(ce.Property, ce.Filler, func(n int) bool { return n >= ce.N })
	case owl.ObjectMaxCardinality:
		if !r.negationDefault {
			return nil, fmt.Errorf("%w: max cardinality without negation default", ErrNotSupported)
		}
		return r.countExtension(ce.Property, ce.Filler, func(n int) bool { return n <= ce.N })
	case owl.ObjectExactCardinality:
		if !r.negationDefault {
			return nil, fmt.Errorf("%w: exact cardinality without negation default", ErrNotSupported)
		}
		return r.countExtension(ce.Property, ce.Filler, func(n int) bool { return n == ce.N })
	case owl.DataSomeValuesFrom:
		out := make(map[owl.NamedIndividual]bool)
		for ind := range r.individuals {
			for _, lit := range r.literals(ind, ce.Property) {
				if rangeContains(ce.Filler, lit) {
					out[ind] = true
					break
				}
			}
		}
		return out, nil
	case owl.DataAllValuesFrom:
		out := make(map[owl.NamedIndividual]bool)
		for ind := range r.individuals {
			lits := r.literals(ind, ce.Property)
			if !r.negationDefault && len(lits) == 0 {
				continue
			}
			inside := true
			for _, lit := range lits {
				if !rangeContains(ce.Filler, lit) {
					inside = false
					break
				}
			}
			if inside {
				out[ind] = true
			}
		}
		return out, nil
	case owl.DataHasValue:
		out := make(map[owl.NamedIndividual]bool)
		for ind := range r.individuals {
			for _, lit := range r.literals(ind, ce.Property) {
				if lit == ce.Value {
					out[ind] = true
					break
				}
			}
		}
		return out, nil
	case owl.DataMinCardinality:
		return r.dataCountExtension(ce.Property, ce.Filler, func(n int) bool { return n >= ce.N })
	case owl.DataMaxCardinality:
		if !r.negationDefault {
			return nil, fmt.Errorf("%w: max cardinality without negation default", ErrNotSupported)
		}
		return r.dataCountExtension(ce.Property, ce.Filler, func(n int) bool { return n <= ce.N })
	case owl.DataExactCardinality:
		if !r.negationDefault {
			return nil, fmt.Errorf("%w: exact cardinality without negation default", ErrNotSupported)
		}
		return r.dataCountExtension(ce.Property, ce.Filler, func(n int) bool { return n == ce.N })
	}
	return nil, fmt.Errorf("%w: %T", ErrNotSupported, ce)
}

// classExtension unions the asserted instances of a named class, its
// named equivalents, and every descendant with their equivalents. The
// result is cached per class until the next rebuild.
func (r *Structural) classExtension(c owl.Class) map[owl.NamedIndividual]bool {
	if c.IsThing() {
		return r.allIndividuals()
	}
	if c.IsNothing() {
		return map[owl.NamedIndividual]bool{}
	}
	if cached, ok := r.extensions.Get(string(c)); ok {
		return cached.(map[owl.NamedIndividual]bool)
	}
	out := make(map[owl.NamedIndividual]bool)
	add := func(cls owl.Class) {
		for ind := range r.asserted[cls] {
			out[ind] = true
		}
		for _, eq := range r.equivClasses[cls.String()] {
			if eqc, ok := eq.(owl.Class); ok {
				for ind := range r.asserted[eqc] {
					out[ind] = true
				}
			}
		}
	}
	add(c)
	for _, sub := range r.classHier.Children(c, false) {
		add(sub)
	}
	r.extensions.Put(string(c), out)
	return out
}

func (r *Structural) allIndividuals() map[owl.NamedIndividual]bool {
	return copySet(r.individuals)
}

func copySet(set map[owl.NamedIndividual]bool) map[owl.NamedIndividual]bool {
	out := make(map[owl.NamedIndividual]bool, len(set))
	for ind := range set {
		out[ind] = true
	}
	return out
}

func (r *Structural) countExtension(pe owl.ObjectPropertyExpression, filler owl.ClassExpression,
	accept func(int) bool) (map[owl.NamedIndividual]bool, error) {
	ext, err := r.extension(filler)
	if err != nil {
		return nil, err
	}
	out := make(map[owl.NamedIndividual]bool)
	for ind := range r.individuals {
		n := 0
		for succ := range r.successors(ind, pe) {
			if ext[succ] {
				n++
			}
		}
		if accept(n) {
			out[ind] = true
		}
	}
	return out, nil
}

func (r *Structural) dataCountExtension(dp owl.DataProperty, filler owl.DataRange,
	accept func(int) bool) (map[owl.NamedIndividual]bool, error) {
	out := make(map[owl.NamedIndividual]bool)
	for ind := range r.individuals {
		n := 0
		for _, lit := range r.literals(ind, dp) {
			if rangeContains(filler, lit) {
				n++
			}
		}
		if accept(n) {
			out[ind] = true
		}
	}
	return out, nil
}

// successors collects the objects reachable from ind over pe, taking
// asserted inverses, symmetry, and optionally sub-properties into
// account.
func (r *Structural) successors(ind owl.NamedIndividual, pe owl.ObjectPropertyExpression) map[owl.NamedIndividual]bool {
	out := make(map[owl.NamedIndividual]bool)
	inverse := pe.IsInverse()
	props := []owl.ObjectProperty{pe.Named()}
	if r.subProperties {
		props = append(props, r.objHier.Children(pe.Named(), false)...)
	}
	for _, q := range props {
		fwd, bwd := r.objSucc[q][ind], r.objPred[q][ind]
		if inverse {
			fwd, bwd = bwd, fwd
		}
		for j := range fwd {
			out[j] = true
		}
		if r.characteristics[q][owl.Symmetric] {
			for j := range bwd {
				out[j] = true
			}
		}
		for v := range r.inverses[q] {
			via := r.objPred[v][ind]
			if inverse {
				via = r.objSucc[v][ind]
			}
			for j := range via {
				out[j] = true
			}
		}
	}
	return out
}

// literals collects the data values of ind over dp, including
// sub-property assertions when enabled.
func (r *Structural) literals(ind owl.NamedIndividual, dp owl.DataProperty) []owl.Literal {
	props := []owl.DataProperty{dp}
	if r.subProperties {
		props = append(props, r.dataHier.Children(dp, false)...)
	}
	var out []owl.Literal
	seen := make(map[owl.Literal]bool)
	for _, q := range props {
		for _, lit := range r.dataVal[q][ind] {
			if !seen[lit] {
				seen[lit] = true
				out = append(out, lit)
			}
		}
	}
	return out
}

// rangeContains reports whether a literal belongs to a data range.
func rangeContains(dr owl.DataRange, lit owl.Literal) bool {
	switch dr := dr.(type) {
	case owl.Datatype:
		return datatypeMatches(dr, lit)
	case owl.DataComplementOf:
		return !rangeContains(dr.Operand, lit)
	case owl.DataIntersectionOf:
		for _, op := range dr {
			if !rangeContains(op, lit) {
				return false
			}
		}
		return true
	case owl.DataUnionOf:
		for _, op := range dr {
			if rangeContains(op, lit) {
				return true
			}
		}
		return false
	case owl.DataOneOf:
		return dr.Contains(lit)
	case owl.DatatypeRestriction:
		if !datatypeMatches(dr.Datatype, lit) {
			return false
		}
		for _, fr := range dr.Restrictions {
			if !facetSatisfied(fr, lit) {
				return false
			}
		}
		return true
	}
	return false
}

// datatypeMatches accepts exact datatype matches, the top datatype,
// and integer-family literals against xsd:decimal.
func datatypeMatches(dt owl.Datatype, lit owl.Literal) bool {
	if owl.IRI(dt) == owl.RDFSLiteral {
		return true
	}
	if dt == lit.Type {
		return true
	}
	if owl.IRI(dt) == owl.XSDDecimal && lit.IsNumeric() {
		return true
	}
	return false
}

func facetSatisfied(fr owl.FacetRestriction, lit owl.Literal) bool {
	switch fr.Facet {
	case owl.FacetMinInclusive, owl.FacetMinExclusive, owl.FacetMaxInclusive, owl.FacetMaxExclusive:
		cmp, err := owl.CompareLiterals(lit, fr.Value)
		if err != nil {
			return false
		}
		switch fr.Facet {
		case owl.FacetMinInclusive:
			return cmp >= 0
		case owl.FacetMinExclusive:
			return cmp > 0
		case owl.FacetMaxInclusive:
			return cmp <= 0
		default:
			return cmp < 0
		}
	case owl.FacetLength, owl.FacetMinLength, owl.FacetMaxLength:
		n, err := fr.Value.Int()
		if err != nil {
			return false
		}
		length := int64(len([]rune(lit.Lexical)))
		switch fr.Facet {
		case owl.FacetLength:
			return length == n
		case owl.FacetMinLength:
			return length >= n
		default:
			return length <= n
		}
	case owl.FacetPattern:
		matched, err := regexp.MatchString("^(?:"+fr.Value.Lexical+")$", lit.Lexical)
		return err == nil && matched
	}
	return false
}
