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

// DataRange is a datatype or an anonymous data range expression.
type DataRange interface {
	Object
	dataRange()
}

// DataComplementOf is the complement of a data range.
type DataComplementOf struct {
	Operand DataRange
}

func (e DataComplementOf) String() string {
	return "DataComplementOf(" + e.Operand.String() + ")"
}
func (e DataComplementOf) dataRange() {}

// DataIntersectionOf is the intersection of two or more data ranges.
type DataIntersectionOf []DataRange

func (e DataIntersectionOf) String() string {
	return naryString("DataIntersectionOf", objectStrings(e))
}
func (e DataIntersectionOf) dataRange() {}

// DataUnionOf is the union of two or more data ranges.
type DataUnionOf []DataRange

func (e DataUnionOf) String() string {
	return naryString("DataUnionOf", objectStrings(e))
}
func (e DataUnionOf) dataRange() {}

// DataOneOf is the enumeration of one or more literals.
type DataOneOf []Literal

func (e DataOneOf) String() string {
	return naryString("DataOneOf", objectStrings(e))
}
func (e DataOneOf) dataRange() {}

// Contains reports whether the enumeration holds the given literal.
func (e DataOneOf) Contains(v Literal) bool {
	for _, l := range e {
		if l == v {
			return true
		}
	}
	return false
}

// Facet is an XML Schema constraining facet.
type Facet IRI

func (f Facet) IRI() IRI       { return IRI(f) }
func (f Facet) String() string { return string(f) }

// Symbol returns the operator form of the facet, e.g. ">=" for
// xsd:minInclusive, or an empty string for non-ordering facets.
func (f Facet) Symbol() string {
	switch f {
	case FacetMinInclusive:
		return ">="
	case FacetMinExclusive:
		return ">"
	case FacetMaxInclusive:
		return "<="
	case FacetMaxExclusive:
		return "<"
	}
	return ""
}

// Constraining facets.
var (
	FacetMinInclusive = Facet(XSDMinInclusive)
	FacetMinExclusive = Facet(XSDMinExclusive)
	FacetMaxInclusive = Facet(XSDMaxInclusive)
	FacetMaxExclusive = Facet(XSDMaxExclusive)
	FacetLength       = Facet(XSDLength)
	FacetMinLength    = Facet(XSDMinLength)
	FacetMaxLength    = Facet(XSDMaxLength)
	FacetPattern      = Facet(XSDPattern)
)

// AllFacets lists every facet the model recognises.
var AllFacets = []Facet{
	FacetMinInclusive, FacetMinExclusive,
	FacetMaxInclusive, FacetMaxExclusive,
	FacetLength, FacetMinLength, FacetMaxLength,
	FacetPattern,
}

// FacetRestriction pairs a facet with its restricting literal.
type FacetRestriction struct {
	Facet Facet
	Value Literal
}

func (r FacetRestriction) String() string {
	return "FacetRestriction(" + r.Facet.String() + " " + r.Value.String() + ")"
}

// DatatypeRestriction narrows a datatype with one or more facets.
type DatatypeRestriction struct {
	Datatype     Datatype
	Restrictions []FacetRestriction
}

func (e DatatypeRestriction) String() string {
	s := "DatatypeRestriction(" + e.Datatype.String()
	for _, r := range e.Restrictions {
		s += " " + r.String()
	}
	return s + ")"
}
func (e DatatypeRestriction) dataRange() {}
