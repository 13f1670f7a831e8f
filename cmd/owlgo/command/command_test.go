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

package command

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/owlgraph/owlgo/ontology"
	"github.com/owlgraph/owlgo/owl"
)

const ns = "http://example.com/family#"

func runCommand(t testing.TB, cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConvertCmd(t *testing.T) {
	out, err := runCommand(t, NewConvertCmd(),
		"--ns", ns, "--to", "manchester", "∃hasChild.male")
	require.NoError(t, err)
	require.Equal(t, "hasChild some male\n", out)

	out, err = runCommand(t, NewConvertCmd(),
		"--ns", ns, "--from", "manchester", "--to", "dl", "hasChild some male")
	require.NoError(t, err)
	require.Equal(t, "∃ hasChild.male\n", out)

	out, err = runCommand(t, NewConvertCmd(),
		"--ns", ns, "--to", "sparql", "male ⊔ female")
	require.NoError(t, err)
	require.Contains(t, out, "SELECT")
	require.Contains(t, out, "UNION")
	require.Contains(t, out, "<"+ns+"male>")
}

func TestConvertCmdErrors(t *testing.T) {
	_, err := runCommand(t, NewConvertCmd(), "--to", "krss", "male")
	require.Error(t, err)

	_, err = runCommand(t, NewConvertCmd(), "--ns", ns, "male ⊔")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, NewVersionCmd())
	require.NoError(t, err)
	require.Contains(t, out, "owlgo version:")
}

func TestInferCmd(t *testing.T) {
	person := owl.Class(ns + "person")
	male := owl.Class(ns + "male")
	markus := owl.NamedIndividual(ns + "markus")

	onto := ontology.New(owl.IRI("http://example.com/family"))
	onto.Add(
		owl.Declaration{Entity: person},
		owl.Declaration{Entity: male},
		owl.SubClassOf{Sub: male, Super: person},
		owl.ClassAssertion{Class: male, Individual: markus},
	)
	dir := t.TempDir()
	in := filepath.Join(dir, "family.nq")
	require.NoError(t, onto.Save(in, ""))

	out := filepath.Join(dir, "family_inferred.nq")
	_, err := runCommand(t, NewInferCmd(),
		"--ontology", in, "--types", "class_assertion", "--out", out)
	require.NoError(t, err)

	result, err := ontology.Load(out, "")
	require.NoError(t, err)
	require.True(t, result.Contains(owl.ClassAssertion{Class: person, Individual: markus}))
	require.True(t, result.Contains(owl.SubClassOf{Sub: male, Super: person}))
}

func TestInferCmdErrors(t *testing.T) {
	_, err := runCommand(t, NewInferCmd(), "--out", "/tmp/out.nq", "--types", "bogus",
		"--ontology", "missing.nq")
	require.Error(t, err)

	_, err = runCommand(t, NewInferCmd(), "--types", "all")
	require.Error(t, err)
}
