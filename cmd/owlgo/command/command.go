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

// Package command implements the owlgo CLI commands.
package command

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/owlgraph/owlgo/olog"
	ologglog "github.com/owlgraph/owlgo/olog/glog"
	"github.com/owlgraph/owlgo/ontology"
	"github.com/owlgraph/owlgo/reasoner"
)

const (
	KeyServerHost   = "server.host"
	KeyServerPort   = "server.port"
	KeyReadTimeout  = "server.read_timeout"
	KeyWriteTimeout = "server.write_timeout"

	KeyNegationDefault = "reasoner.negation_default"
	KeySubProperties   = "reasoner.sub_properties"

	KeyOntologyPath   = "ontology.path"
	KeyOntologyFormat = "ontology.format"
)

var ErrNoOntology = errors.New("an ontology file must be specified")

func init() {
	viper.SetDefault(KeyServerHost, "0.0.0.0")
	viper.SetDefault(KeyServerPort, 8000)
	viper.SetDefault(KeyNegationDefault, true)
	viper.SetDefault(KeySubProperties, false)
}

// LoadConfig reads the configuration file, if any, and enables OWLGO_*
// environment overrides.
func LoadConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("OWLGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if file, _ := cmd.Flags().GetString("config"); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("owlgo")
		viper.AddConfigPath("/etc")
		viper.AddConfigPath("$HOME/.owlgo")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	} else {
		olog.Infof("using config file: %s", viper.ConfigFileUsed())
	}
	return nil
}

type quietLogger struct {
	ologglog.Logger
}

func (quietLogger) Infof(string, ...interface{})    {}
func (quietLogger) Warningf(string, ...interface{}) {}

// Quiet suppresses info and warning log output.
func Quiet() {
	olog.SetLogger(quietLogger{})
}

func registerOntologyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("ontology", "i", "", `ontology file to load (".gz" supported, http(s) URLs allowed)`)
	cmd.Flags().String("format", "", "quad file format to use for loading instead of auto-detection")
}

// The ontology flags are shared between commands, so they resolve
// against the config keys here instead of through viper.BindPFlag.
func openOntology(cmd *cobra.Command) (*ontology.Ontology, error) {
	path, _ := cmd.Flags().GetString("ontology")
	if path == "" {
		path = viper.GetString(KeyOntologyPath)
	}
	if path == "" {
		return nil, ErrNoOntology
	}
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString(KeyOntologyFormat)
	}
	return ontology.Load(path, format)
}

func newReasoner(onto *ontology.Ontology) *reasoner.Structural {
	return reasoner.NewStructural(onto,
		reasoner.WithNegationDefault(viper.GetBool(KeyNegationDefault)),
		reasoner.WithSubProperties(viper.GetBool(KeySubProperties)),
	)
}
