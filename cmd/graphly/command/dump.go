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

package command

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lod4hss-apps/graphly/clog"
	"github.com/lod4hss-apps/graphly/graph"
)

// NewDumpCmd creates the dump command.
func NewDumpCmd() *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump a graph, or the whole store, into a file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend()
			if err != nil {
				return err
			}
			prefixes, err := prefixRegistry()
			if err != nil {
				return err
			}

			var content string
			switch format {
			case "nquads":
				if uri := viper.GetString(KeyGraph); uri != "" {
					content, err = graph.New(b, uri, prefixes).DumpNquads(cmd.Context())
				} else {
					content, err = b.DumpAll(cmd.Context())
				}
			case "turtle":
				content, err = graph.New(b, viper.GetString(KeyGraph), prefixes).DumpTurtle(cmd.Context())
			default:
				return fmt.Errorf("unsupported format: %q", format)
			}
			if err != nil {
				return err
			}
			return writeContentTo(out, content)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "-", `output file (".gz" supported, "-" for stdout)`)
	cmd.Flags().StringVar(&format, "format", "nquads", `serialization format ("nquads", "turtle")`)
	return cmd
}

func writeContentTo(path, content string) error {
	var f *os.File
	if path == "-" {
		f = os.Stdout
		clog.Infof("writing to stdout")
	} else {
		var err error
		f, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create file %q: %v", path, err)
		}
		defer f.Close()
		fmt.Printf("writing to file %q\n", path)
	}

	var w io.Writer = f
	if filepath.Ext(path) == ".gz" {
		gz := gzip.NewWriter(f)
		defer gz.Close()
		w = gz
	}
	_, err := io.WriteString(w, content)
	return err
}
