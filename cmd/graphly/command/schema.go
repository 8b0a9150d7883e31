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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lod4hss-apps/graphly/graph"
	"github.com/lod4hss-apps/graphly/schema"
)

// NewSchemaCmd creates the schema command.
func NewSchemaCmd() *cobra.Command {
	var shacl bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Discover the data model of a graph and print it as JSON.",
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
			g := graph.New(b, viper.GetString(KeyGraph), prefixes)

			m := schema.NewModel()
			if shacl {
				m = schema.NewSHACL()
			}
			if err := m.Update(cmd.Context(), g); err != nil {
				return err
			}

			classes := make([]map[string]interface{}, 0, len(m.Classes()))
			for _, c := range m.Classes() {
				classes = append(classes, c.ToMap(""))
			}
			properties := make([]map[string]interface{}, 0, len(m.Properties()))
			for _, p := range m.Properties() {
				properties = append(properties, p.ToMap(""))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"framework":  m.Framework(),
				"classes":    classes,
				"properties": properties,
			})
		},
	}

	cmd.Flags().BoolVar(&shacl, "shacl", false, "read the model from SHACL shapes instead of inferring it")
	return cmd
}
