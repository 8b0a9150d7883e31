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
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lod4hss-apps/graphly/graph"
	"github.com/lod4hss-apps/graphly/sparql"
)

// NewUploadCmd creates the upload command.
func NewUploadCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Bulk-upload a serialized RDF file into the store.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend()
			if err != nil {
				return err
			}
			prefixes, err := prefixRegistry()
			if err != nil {
				return err
			}
			content, err := readFileOrStdin(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if format == "" {
				format = formatByExt(filepath.Ext(args[0]))
			}
			uri := viper.GetString(KeyGraph)
			switch format {
			case "nquads":
				return sparql.UploadNquads(cmd.Context(), b, content)
			case "turtle":
				return graph.New(b, uri, prefixes).UploadTurtle(cmd.Context(), content)
			case "jsonld":
				var doc interface{}
				if err := json.Unmarshal([]byte(content), &doc); err != nil {
					return err
				}
				return graph.New(b, uri, prefixes).UploadJSONLD(cmd.Context(), doc)
			}
			return fmt.Errorf("unsupported format: %q", format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", `file format ("nquads", "turtle", "jsonld"); detected from the extension when empty`)
	return cmd
}

func formatByExt(ext string) string {
	switch ext {
	case ".nq", ".nt":
		return "nquads"
	case ".ttl":
		return "turtle"
	case ".json", ".jsonld":
		return "jsonld"
	}
	return ""
}
