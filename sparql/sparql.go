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

// Package sparql rewrites class expressions as SPARQL queries whose
// solutions are the instances of the expression. Each construct maps to
// a graph pattern: intersections conjoin patterns, unions become UNION
// blocks, complements and universal restrictions use FILTER NOT EXISTS
// and counting subselects, and cardinalities group with HAVING clauses.
package sparql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/owlgraph/owlgo/owl"
)

// Options shape the generated query beyond the bare graph pattern.
type Options struct {
	// Count projects COUNT(DISTINCT root) AS ?cnt instead of the
	// individuals themselves.
	Count bool
	// Values restricts the root variable to the given individuals
	// with a VALUES clause.
	Values []owl.NamedIndividual
	// NamedIndividuals adds a triple restricting solutions to
	// declared owl:NamedIndividual entities.
	NamedIndividuals bool
}

// Convert renders ce as a SELECT DISTINCT query over rootVar.
func Convert(rootVar string, ce owl.ClassExpression) (string, error) {
	return ConvertWith(rootVar, ce, Options{})
}

// ConvertWith renders ce as a SPARQL query over rootVar, applying opts.
func ConvertWith(rootVar string, ce owl.ClassExpression, opts Options) (string, error) {
	c := &converter{}
	pattern, err := c.pattern(rootVar, ce, opts.NamedIndividuals)
	if err != nil {
		return "", err
	}
	qs := []string{"SELECT"}
	if opts.Count {
		qs = append(qs, " ( COUNT ( DISTINCT "+rootVar+" ) AS ?cnt ) WHERE { ")
	} else {
		qs = append(qs, " DISTINCT "+rootVar+" WHERE { ")
	}
	if len(opts.Values) > 0 {
		vs := "VALUES " + rootVar + " { "
		for _, ind := range opts.Values {
			vs += "<" + string(ind) + ">"
		}
		qs = append(qs, vs, "} . ")
	}
	qs = append(qs, pattern...)
	qs = append(qs, " }")
	return strings.Join(qs, "\n"), nil
}

// converter holds the state of one conversion. The vars slice is the
// stack of subject variables; its top is the variable the expression
// currently being processed constrains.
type converter struct {
	fragments []string
	vars      []string
	indCnt    int
	cntCnt    int
}

func (c *converter) pattern(rootVar string, ce owl.ClassExpression, namedOnly bool) ([]string, error) {
	if namedOnly {
		c.triple(rootVar, "a", "<"+string(owl.OWLNamedIndividualIRI)+">")
	}
	c.vars = append(c.vars, rootVar)
	err := c.process(ce)
	c.vars = c.vars[:len(c.vars)-1]
	if err != nil {
		return nil, err
	}
	return c.fragments, nil
}

func (c *converter) current() string { return c.vars[len(c.vars)-1] }
func (c *converter) modalDepth() int { return len(c.vars) }

func (c *converter) newVar() string {
	c.indCnt++
	return "?s_" + strconv.Itoa(c.indCnt)
}

func (c *converter) newCountVar() string {
	c.cntCnt++
	return "?cnt_" + strconv.Itoa(c.cntCnt)
}

func (c *converter) append(frag string) {
	c.fragments = append(c.fragments, frag)
}

func (c *converter) triple(s, p, o string) {
	c.append(quoted(s) + " " + quotedPredicate(p) + " " + o + " . ")
}

func quoted(term string) string {
	if term[0] == '?' || term[0] == '<' {
		return term
	}
	return "<" + term + ">"
}

func quotedPredicate(p string) string {
	if p == "a" || p[0] == '?' || p[0] == '<' {
		return p
	}
	return "<" + p + ">"
}

func entity(e owl.Entity) string { return "<" + e.IRI().String() + ">" }

func literal(l owl.Literal) string {
	return "\"" + l.Lexical + "\"^^<" + string(l.Type) + ">"
}

// propertyTriple emits subject -p-> object, swapping the ends when the
// property expression is an inverse.
func (c *converter) propertyTriple(pe owl.ObjectPropertyExpression, subject, object string) {
	if pe.IsInverse() {
		c.triple(object, string(pe.Named()), subject)
		return
	}
	c.triple(subject, string(pe.Named()), object)
}

func (c *converter) process(ce owl.ClassExpression) error {
	switch ce := ce.(type) {
	case owl.Class:
		c.triple(c.current(), "a", entity(ce))
	case owl.ObjectIntersectionOf:
		for _, op := range ce {
			if err := c.process(op); err != nil {
				return err
			}
		}
	case owl.ObjectUnionOf:
		for i, op := range ce {
			if i > 0 {
				c.append(" UNION ")
			}
			c.append("{ ")
			if err := c.process(op); err != nil {
				return err
			}
			c.append(" }")
		}
	case owl.ObjectComplementOf:
		c.triple(c.current(), c.newVar(), c.newVar())
		c.append("FILTER NOT EXISTS { ")
		if err := c.process(ce.Operand); err != nil {
			return err
		}
		c.append(" }")
	case owl.ObjectSomeValuesFrom:
		object := c.newVar()
		c.propertyTriple(ce.Property, c.current(), object)
		return c.under(object, ce.Filler)
	case owl.ObjectAllValuesFrom:
		return c.allValuesFrom(ce)
	case owl.ObjectHasValue:
		c.propertyTriple(ce.Property, c.current(), entity(ce.Individual))
	case owl.ObjectHasSelf:
		c.triple(c.current(), string(ce.Property.Named()), c.current())
	case owl.ObjectMinCardinality:
		return c.objectCardinality(ce.Property, ce.Filler, ">=", ce.N)
	case owl.ObjectMaxCardinality:
		return c.objectCardinality(ce.Property, ce.Filler, "<=", ce.N)
	case owl.ObjectExactCardinality:
		return c.objectCardinality(ce.Property, ce.Filler, "=", ce.N)
	case owl.ObjectOneOf:
		subject := c.current()
		if c.modalDepth() == 1 {
			c.triple(subject, "?p", "?o")
		}
		c.append(" FILTER ( " + subject + " IN ( ")
		for i, ind := range ce {
			if i > 0 {
				c.append(",")
			}
			c.append(entity(ind))
		}
		c.append(" ) )")
	case owl.DataSomeValuesFrom:
		object := c.newVar()
		c.triple(c.current(), string(ce.Property), object)
		return c.underRange(object, ce.Filler)
	case owl.DataAllValuesFrom:
		return c.dataAllValuesFrom(ce)
	case owl.DataHasValue:
		c.triple(c.current(), string(ce.Property), literal(ce.Value))
	case owl.DataMinCardinality:
		return c.dataCardinality(ce.Property, ce.Filler, ">=", ce.N)
	case owl.DataMaxCardinality:
		return c.dataCardinality(ce.Property, ce.Filler, "<=", ce.N)
	case owl.DataExactCardinality:
		return c.dataCardinality(ce.Property, ce.Filler, "=", ce.N)
	default:
		return fmt.Errorf("sparql: cannot convert %T", ce)
	}
	return nil
}

// under processes a filler expression with object pushed as the
// subject variable.
func (c *converter) under(object string, filler owl.ClassExpression) error {
	c.vars = append(c.vars, object)
	err := c.process(filler)
	c.vars = c.vars[:len(c.vars)-1]
	return err
}

func (c *converter) underRange(object string, filler owl.DataRange) error {
	c.vars = append(c.vars, object)
	err := c.processRange(filler)
	c.vars = c.vars[:len(c.vars)-1]
	return err
}

// allValuesFrom translates a universal restriction. An individual
// satisfies it when the successors in the filler and the successors
// overall count the same, or when it has no successors at all.
func (c *converter) allValuesFrom(ce owl.ObjectAllValuesFrom) error {
	subject := c.current()
	object := c.newVar()

	c.append("{")
	c.propertyTriple(ce.Property, subject, object)

	v := c.newVar()
	cnt1 := c.newCountVar()
	c.append("{ SELECT " + subject + " ( COUNT( DISTINCT " + v + " ) AS " + cnt1 + " ) WHERE { ")
	c.triple(subject, string(ce.Property.Named()), v)
	if err := c.under(v, ce.Filler); err != nil {
		return err
	}
	c.append(" } GROUP BY " + subject + " }")

	v = c.newVar()
	cnt2 := c.newCountVar()
	c.append("{ SELECT " + subject + " ( COUNT( DISTINCT " + v + " ) AS " + cnt2 + " ) WHERE { ")
	c.triple(subject, string(ce.Property.Named()), v)
	c.append(" } GROUP BY " + subject + " }")

	c.append(" FILTER( " + cnt1 + " = " + cnt2 + " )")
	c.append("} UNION { ")

	// Individuals with no successor over the property satisfy the
	// restriction vacuously.
	c.triple(subject, c.newVar(), c.newVar())
	c.append("FILTER NOT EXISTS { ")
	c.propertyTriple(ce.Property, subject, c.newVar())
	c.append(" } }")
	return nil
}

func (c *converter) objectCardinality(pe owl.ObjectPropertyExpression, filler owl.ClassExpression, comparator string, n int) error {
	subject := c.current()
	object := c.newVar()

	// At-most and zero cardinalities also admit individuals with no
	// matching successor, covered by a second union branch.
	vacuous := comparator == "<=" || n == 0
	if vacuous {
		c.append("{")
	}

	c.append("{ SELECT " + subject + " WHERE { ")
	c.propertyTriple(pe, subject, object)
	if err := c.under(object, filler); err != nil {
		return err
	}
	c.append(" } GROUP BY " + subject +
		" HAVING ( COUNT ( " + object + " ) " + comparator + " " + strconv.Itoa(n) + " ) }")

	if vacuous {
		c.append("} UNION {")
		c.triple(subject, c.newVar(), c.newVar())
		c.append("FILTER NOT EXISTS { ")
		object = c.newVar()
		c.propertyTriple(pe, subject, object)
		if err := c.under(object, filler); err != nil {
			return err
		}
		c.append(" } }")
	}
	return nil
}

func (c *converter) dataCardinality(dp owl.DataProperty, filler owl.DataRange, comparator string, n int) error {
	subject := c.current()
	object := c.newVar()

	c.append("{ SELECT " + subject + " WHERE { ")
	c.triple(subject, string(dp), object)
	if err := c.underRange(object, filler); err != nil {
		return err
	}
	c.append(" } GROUP BY " + subject +
		" HAVING ( COUNT ( " + object + " ) " + comparator + " " + strconv.Itoa(n) + " ) }")
	return nil
}

func (c *converter) dataAllValuesFrom(ce owl.DataAllValuesFrom) error {
	subject := c.current()
	object := c.newVar()

	c.triple(subject, string(ce.Property), object)

	v := c.newVar()
	cnt1 := c.newCountVar()
	c.append("{ SELECT " + subject + " ( COUNT( " + v + " ) AS " + cnt1 + " ) WHERE { ")
	c.triple(subject, string(ce.Property), v)
	if err := c.underRange(v, ce.Filler); err != nil {
		return err
	}
	c.append(" } GROUP BY " + subject + " }")

	v = c.newVar()
	cnt2 := c.newCountVar()
	c.append("{ SELECT " + subject + " ( COUNT( " + v + " ) AS " + cnt2 + " ) WHERE { ")
	c.triple(subject, string(ce.Property), v)
	c.append(" } GROUP BY " + subject + " }")

	c.append(" FILTER( " + cnt1 + " = " + cnt2 + " )")
	return nil
}

func (c *converter) processRange(dr owl.DataRange) error {
	switch dr := dr.(type) {
	case owl.Datatype:
		if dr != owl.TopDatatype {
			c.append(" FILTER ( DATATYPE ( " + c.current() + " ) = <" + string(dr) + "> ) ")
		}
	case owl.DataOneOf:
		subject := c.current()
		if c.modalDepth() == 1 {
			c.triple(subject, "?p", "?o")
		}
		c.append(" FILTER ( " + subject + " IN ( ")
		for i, v := range dr {
			if i > 0 {
				c.append(",")
			}
			c.append(literal(v))
		}
		c.append(" ) ) ")
	case owl.DatatypeRestriction:
		for _, fr := range dr.Restrictions {
			if sym := fr.Facet.Symbol(); sym != "" {
				c.append(" FILTER ( " + c.current() + " " + sym + " " + literal(fr.Value) + " ) ")
			}
		}
	default:
		return fmt.Errorf("sparql: cannot convert %T", dr)
	}
	return nil
}
