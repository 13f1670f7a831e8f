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
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/owlgraph/owlgo/olog"
	"github.com/owlgraph/owlgo/ontology"
	"github.com/owlgraph/owlgo/reasoner"
)

func NewInferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Materialize inferred axioms into an output ontology.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return errors.New("an output file must be specified")
			}
			names, _ := cmd.Flags().GetStringSlice("types")
			types, err := reasoner.ParseInferenceTypes(names)
			if err != nil {
				return err
			}
			onto, err := openOntology(cmd)
			if err != nil {
				return err
			}
			rsn := newReasoner(onto)
			start := time.Now()
			axioms, err := reasoner.Infer(cmd.Context(), rsn, types)
			if err != nil {
				return err
			}
			olog.Infof("inferred %d axioms in %v", len(axioms), time.Since(start))
			result := ontology.New(onto.IRI())
			result.Add(onto.Axioms()...)
			added := result.Add(axioms...)
			olog.Infof("%d inferred axioms were not asserted", added)
			outFormat, _ := cmd.Flags().GetString("out_format")
			return result.Save(out, outFormat)
		},
	}
	registerOntologyFlags(cmd)
	cmd.Flags().StringSliceP("types", "t", []string{"all"}, `inference types to run ("all" or a comma-separated list)`)
	cmd.Flags().StringP("out", "o", "", "file to write the enriched ontology to")
	cmd.Flags().String("out_format", "", "quad file format to use for writing instead of auto-detection")
	return cmd
}
