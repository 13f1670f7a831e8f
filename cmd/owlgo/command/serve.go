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
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	owlhttp "github.com/owlgraph/owlgo/server/http"

	"github.com/owlgraph/owlgo/owl"
)

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ontology and reasoner over HTTP on the given host and port.",
		RunE: func(cmd *cobra.Command, args []string) error {
			onto, err := openOntology(cmd)
			if err != nil {
				return err
			}
			api := owlhttp.NewAPIv1(onto, newReasoner(onto))
			if ns, _ := cmd.Flags().GetString("ns"); ns != "" {
				api.SetNamespace(owl.IRI(ns))
			} else if iri := string(onto.IRI()); iri != "" {
				if !strings.HasSuffix(iri, "#") && !strings.HasSuffix(iri, "/") {
					iri += "#"
				}
				api.SetNamespace(owl.IRI(iri))
			}
			if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
				api.SetQueryTimeout(timeout)
			}
			return api.ListenAndServe(owlhttp.Config{
				Host:         viper.GetString(KeyServerHost),
				Port:         viper.GetInt(KeyServerPort),
				ReadTimeout:  viper.GetDuration(KeyReadTimeout),
				WriteTimeout: viper.GetDuration(KeyWriteTimeout),
			})
		},
	}
	registerOntologyFlags(cmd)
	cmd.Flags().String("host", "0.0.0.0", "host to listen on")
	cmd.Flags().Int("port", 8000, "port to listen on")
	cmd.Flags().Bool("negation-default", true, "treat complements as closed-world over the named individuals")
	cmd.Flags().Bool("sub-properties", false, "include sub-property assertions in property value lookups")
	cmd.Flags().String("ns", "", "default namespace for names in submitted class expressions")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "elapsed time until an individual query times out")
	viper.BindPFlag(KeyServerHost, cmd.Flags().Lookup("host"))
	viper.BindPFlag(KeyServerPort, cmd.Flags().Lookup("port"))
	viper.BindPFlag(KeyNegationDefault, cmd.Flags().Lookup("negation-default"))
	viper.BindPFlag(KeySubProperties, cmd.Flags().Lookup("sub-properties"))
	return cmd
}
