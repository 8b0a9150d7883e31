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
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lod4hss-apps/graphly/sparql"
)

// NewQueryCmd creates the query command.
func NewQueryCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "query [sparql text]",
		Short: "Run a SPARQL query or update against the endpoint.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(data)
			}
			b, err := openBackend()
			if err != nil {
				return err
			}
			prefixes, err := prefixRegistry()
			if err != nil {
				return err
			}
			rows, body, err := sparql.Run(cmd.Context(), b, text, prefixes)
			if err != nil {
				return err
			}
			if raw || rows == nil {
				_, err = io.WriteString(cmd.OutOrStdout(), body)
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw response body instead of decoded rows")
	return cmd
}

func readFileOrStdin(path string, in io.Reader) (string, error) {
	if path == "-" || path == "" {
		data, err := io.ReadAll(in)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
