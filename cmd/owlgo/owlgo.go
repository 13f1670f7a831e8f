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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/owlgraph/owlgo/cmd/owlgo/command"
	"github.com/owlgraph/owlgo/olog"
	_ "github.com/owlgraph/owlgo/olog/glog"
)

// Filled in by `go build -ldflags="-X main.Version=..."`.
var (
	BuildDate string
	Version   string
)

func main() {
	// glog registers its flags on the standard flag set and insists on
	// flag.Parse before the first log call.
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse([]string{})

	if Version != "" {
		command.Version = Version
	}
	command.BuildDate = BuildDate

	rootCmd := &cobra.Command{
		Use:           "owlgo",
		Short:         "owlgo is an OWL 2 object model, reasoner and expression toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				command.Quiet()
			}
			if v, _ := cmd.Flags().GetInt("verbosity"); v > 0 {
				olog.SetV(v)
			}
			return command.LoadConfig(cmd)
		},
	}
	rootCmd.PersistentFlags().String("config", "", "explicit path to the configuration file")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress info and warning log messages")
	rootCmd.PersistentFlags().IntP("verbosity", "v", 0, "log verbosity level")
	rootCmd.AddCommand(
		command.NewInferCmd(),
		command.NewServeCmd(),
		command.NewConvertCmd(),
		command.NewVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
