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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIRISplit(t *testing.T) {
	cases := []struct {
		iri       IRI
		namespace string
		remainder string
	}{
		{"http://example.org/onto#Person", "http://example.org/onto#", "Person"},
		{"http://example.org/onto/Person", "http://example.org/onto/", "Person"},
		{"urn:absolute:test", "urn:absolute:", "test"},
		{"http://example.org/", "http://example.org/", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.namespace, c.iri.Namespace(), "%s", c.iri)
		require.Equal(t, c.remainder, c.iri.Remainder(), "%s", c.iri)
	}
}

func TestNewIRI(t *testing.T) {
	iri, err := NewIRI("http://example.org/onto#", "Person")
	require.NoError(t, err)
	require.Equal(t, IRI("http://example.org/onto#Person"), iri)

	_, err = NewIRI("http://example.org/onto", "Person")
	require.Error(t, err)
}

func TestParseIRI(t *testing.T) {
	_, err := ParseIRI("http://example.org/Person")
	require.NoError(t, err)

	_, err = ParseIRI("not an iri")
	require.Error(t, err)
	_, err = ParseIRI("noseparator")
	require.Error(t, err)
}

func TestReservedVocabulary(t *testing.T) {
	require.True(t, OWLThing.IsReservedVocabulary())
	require.True(t, RDFSSubClassOf.IsReservedVocabulary())
	require.True(t, XSDInteger.IsReservedVocabulary())
	require.False(t, IRI("http://example.org/Person").IsReservedVocabulary())

	require.True(t, OWLThing.IsThing())
	require.True(t, OWLNothing.IsNothing())
	require.False(t, OWLThing.IsNothing())
}
