// Copyright 2025 The Graphly Authors. All rights reserved.
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
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lod4hss-apps/graphly/clog"
	"github.com/lod4hss-apps/graphly/cmd/graphly/command"
	"github.com/lod4hss-apps/graphly/sparql"

	// Register the glog adapter.
	_ "github.com/lod4hss-apps/graphly/clog/glog"
)

// Filled in by `go build -ldflags="-X main.Version=..."`.
var (
	Version   string
	BuildDate string
)

func main() {
	var configFile string
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "graphly",
		Short: "graphly is a client for remote SPARQL triple stores",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			clog.SetV(verbosity)
			if configFile != "" {
				viper.SetConfigFile(configFile)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
				clog.Infof("using config file: %s", viper.ConfigFileUsed())
			} else {
				viper.SetConfigName(".graphly")
				viper.AddConfigPath("$HOME")
				viper.AddConfigPath(".")
				if err := viper.ReadInConfig(); err == nil {
					clog.Infof("using config file: %s", viper.ConfigFileUsed())
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to an explicit configuration file")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity level")
	rootCmd.PersistentFlags().String("technology", "generic",
		`endpoint dialect ("`+strings.Join(sparql.Technologies(), `", "`)+`")`)
	rootCmd.PersistentFlags().String("url", "", "endpoint URL")
	rootCmd.PersistentFlags().String("username", "", "basic auth username")
	rootCmd.PersistentFlags().String("password", "", "basic auth password")
	rootCmd.PersistentFlags().String("graph", "", "named graph URI; empty for the default graph")
	rootCmd.PersistentFlags().StringSlice("prefix", nil, "extra prefix as short=long (repeatable)")

	viper.BindPFlag(command.KeyTechnology, rootCmd.PersistentFlags().Lookup("technology"))
	viper.BindPFlag(command.KeyURL, rootCmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag(command.KeyUsername, rootCmd.PersistentFlags().Lookup("username"))
	viper.BindPFlag(command.KeyPassword, rootCmd.PersistentFlags().Lookup("password"))
	viper.BindPFlag(command.KeyGraph, rootCmd.PersistentFlags().Lookup("graph"))
	viper.BindPFlag(command.KeyPrefixes, rootCmd.PersistentFlags().Lookup("prefix"))

	rootCmd.AddCommand(
		command.NewQueryCmd(),
		command.NewDumpCmd(),
		command.NewUploadCmd(),
		command.NewSchemaCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("graphly version: %s\n", Version)
			if BuildDate != "" {
				cmd.Printf("built: %s\n", BuildDate)
			}
		},
	}
}
