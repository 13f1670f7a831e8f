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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/owlgraph/owlgo/owl"
	"github.com/owlgraph/owlgo/parser"
	"github.com/owlgraph/owlgo/render"
	"github.com/owlgraph/owlgo/sparql"
)

func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <expression>",
		Aliases: []string{"conv"},
		Short:   "Convert a class expression between syntaxes or to a SPARQL query.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, _ := cmd.Flags().GetString("ns")
			p := parser.Parser{Namespace: owl.IRI(ns)}
			from, _ := cmd.Flags().GetString("from")
			var (
				ce  owl.ClassExpression
				err error
			)
			switch from {
			case "dl":
				ce, err = p.ParseDL(args[0])
			case "manchester":
				ce, err = p.ParseManchester(args[0])
			default:
				return fmt.Errorf("unknown source syntax %q", from)
			}
			if err != nil {
				return err
			}
			to, _ := cmd.Flags().GetString("to")
			var out string
			switch to {
			case "dl":
				out = render.ToDL(ce)
			case "manchester":
				out = render.ToManchester(ce)
			case "sparql":
				values, _ := cmd.Flags().GetBool("named-individuals")
				count, _ := cmd.Flags().GetBool("count")
				out, err = sparql.ConvertWith("?x", ce, sparql.Options{
					Count:            count,
					NamedIndividuals: values,
				})
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown target syntax %q", to)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("from", "dl", `source syntax ("dl" or "manchester")`)
	cmd.Flags().String("to", "sparql", `target syntax ("dl", "manchester" or "sparql")`)
	cmd.Flags().String("ns", "", "default namespace for names in the expression")
	cmd.Flags().Bool("count", false, "emit a COUNT query instead of a SELECT DISTINCT")
	cmd.Flags().Bool("named-individuals", false, "restrict SPARQL solutions to owl:NamedIndividual")
	return cmd
}
