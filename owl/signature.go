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

// SignatureOf collects the entities occurring in a model object, in
// first-occurrence order. Datatypes of literals are included.
func SignatureOf(o Object) []Entity {
	var (
		out  []Entity
		seen = map[string]bool{}
	)
	add := func(e Entity) {
		if !seen[e.String()] {
			seen[e.String()] = true
			out = append(out, e)
		}
	}
	walkSignature(o, add)
	return out
}

func walkSignature(o Object, add func(Entity)) {
	switch o := o.(type) {
	case Class:
		add(o)
	case ObjectProperty:
		add(o)
	case ObjectInverseOf:
		add(o.Property)
	case DataProperty:
		add(o)
	case AnnotationProperty:
		add(o)
	case NamedIndividual:
		add(o)
	case Datatype:
		add(o)
	case Literal:
		if o.Lang == "" {
			add(o.Type)
		}
	case IRI:
		// Annotation subjects and values stay out of the signature.

	case ObjectComplementOf:
		walkSignature(o.Operand, add)
	case ObjectIntersectionOf:
		for _, op := range o {
			walkSignature(op, add)
		}
	case ObjectUnionOf:
		for _, op := range o {
			walkSignature(op, add)
		}
	case ObjectOneOf:
		for _, ind := range o {
			add(ind)
		}
	case ObjectSomeValuesFrom:
		walkSignature(o.Property, add)
		walkSignature(o.Filler, add)
	case ObjectAllValuesFrom:
		walkSignature(o.Property, add)
		walkSignature(o.Filler, add)
	case ObjectHasValue:
		walkSignature(o.Property, add)
		add(o.Individual)
	case ObjectHasSelf:
		walkSignature(o.Property, add)
	case ObjectMinCardinality:
		walkSignature(o.Property, add)
		walkSignature(o.Filler, add)
	case ObjectMaxCardinality:
		walkSignature(o.Property, add)
		walkSignature(o.Filler, add)
	case ObjectExactCardinality:
		walkSignature(o.Property, add)
		walkSignature(o.Filler, add)

	case DataComplementOf:
		walkSignature(o.Operand, add)
	case DataIntersectionOf:
		for _, op := range o {
			walkSignature(op, add)
		}
	case DataUnionOf:
		for _, op := range o {
			walkSignature(op, add)
		}
	case DataOneOf:
		for _, v := range o {
			walkSignature(v, add)
		}
	case DatatypeRestriction:
		add(o.Datatype)
		for _, r := range o.Restrictions {
			walkSignature(r.Value, add)
		}
	case DataSomeValuesFrom:
		add(o.Property)
		walkSignature(o.Filler, add)
	case DataAllValuesFrom:
		add(o.Property)
		walkSignature(o.Filler, add)
	case DataHasValue:
		add(o.Property)
		walkSignature(o.Value, add)
	case DataMinCardinality:
		add(o.Property)
		walkSignature(o.Filler, add)
	case DataMaxCardinality:
		add(o.Property)
		walkSignature(o.Filler, add)
	case DataExactCardinality:
		add(o.Property)
		walkSignature(o.Filler, add)

	case Declaration:
		add(o.Entity)
	case SubClassOf:
		walkSignature(o.Sub, add)
		walkSignature(o.Super, add)
	case EquivalentClasses:
		for _, op := range o {
			walkSignature(op, add)
		}
	case DisjointClasses:
		for _, op := range o {
			walkSignature(op, add)
		}
	case DisjointUnion:
		add(o.Class)
		for _, op := range o.Operands {
			walkSignature(op, add)
		}
	case SubObjectPropertyOf:
		walkSignature(o.Sub, add)
		walkSignature(o.Super, add)
	case EquivalentObjectProperties:
		for _, op := range o {
			walkSignature(op, add)
		}
	case DisjointObjectProperties:
		for _, op := range o {
			walkSignature(op, add)
		}
	case InverseObjectProperties:
		walkSignature(o.First, add)
		walkSignature(o.Second, add)
	case ObjectPropertyDomain:
		walkSignature(o.Property, add)
		walkSignature(o.Domain, add)
	case ObjectPropertyRange:
		walkSignature(o.Property, add)
		walkSignature(o.Range, add)
	case ObjectPropertyCharacteristic:
		walkSignature(o.Property, add)
	case SubDataPropertyOf:
		add(o.Sub)
		add(o.Super)
	case EquivalentDataProperties:
		for _, p := range o {
			add(p)
		}
	case DisjointDataProperties:
		for _, p := range o {
			add(p)
		}
	case DataPropertyDomain:
		add(o.Property)
		walkSignature(o.Domain, add)
	case DataPropertyRange:
		add(o.Property)
		walkSignature(o.Range, add)
	case FunctionalDataProperty:
		add(o.Property)
	case DatatypeDefinition:
		add(o.Datatype)
		walkSignature(o.Range, add)
	case HasKey:
		walkSignature(o.Class, add)
		for _, p := range o.ObjectProperties {
			walkSignature(p, add)
		}
		for _, p := range o.DataProperties {
			add(p)
		}

	case ClassAssertion:
		walkSignature(o.Class, add)
		add(o.Individual)
	case ObjectPropertyAssertion:
		walkSignature(o.Property, add)
		add(o.Subject)
		add(o.Object)
	case NegativeObjectPropertyAssertion:
		walkSignature(o.Property, add)
		add(o.Subject)
		add(o.Object)
	case DataPropertyAssertion:
		add(o.Property)
		add(o.Subject)
		walkSignature(o.Value, add)
	case NegativeDataPropertyAssertion:
		add(o.Property)
		add(o.Subject)
		walkSignature(o.Value, add)
	case SameIndividual:
		for _, ind := range o {
			add(ind)
		}
	case DifferentIndividuals:
		for _, ind := range o {
			add(ind)
		}

	case Annotation:
		add(o.Property)
		walkSignature(o.Value, add)
	case AnnotationAssertion:
		add(o.Property)
		walkSignature(o.Value, add)
	case SubAnnotationPropertyOf:
		add(o.Sub)
		add(o.Super)
	case AnnotationPropertyDomain:
		add(o.Property)
	case AnnotationPropertyRange:
		add(o.Property)
	}
}
