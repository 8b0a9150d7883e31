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

// Package command implements the graphly command line tool.
package command

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lod4hss-apps/graphly/sparql"
	"github.com/lod4hss-apps/graphly/voc"
)

const (
	KeyTechnology = "endpoint.technology"
	KeyURL        = "endpoint.url"
	KeyUsername   = "endpoint.username"
	KeyPassword   = "endpoint.password"
	KeyName       = "endpoint.name"

	KeyGraph    = "graph.uri"
	KeyPrefixes = "graph.prefixes"
)

// openBackend builds the store connection from the resolved configuration.
func openBackend() (sparql.Backend, error) {
	technology := viper.GetString(KeyTechnology)
	url := viper.GetString(KeyURL)
	if url == "" {
		return nil, fmt.Errorf("no endpoint URL configured (set %s)", KeyURL)
	}
	return sparql.New(technology,
		url,
		viper.GetString(KeyUsername),
		viper.GetString(KeyPassword),
		viper.GetString(KeyName),
	)
}

// prefixRegistry builds the prefix registry: the common vocabularies plus any
// configured "short=long" pairs.
func prefixRegistry() (*voc.Registry, error) {
	reg := voc.Common()
	for _, pair := range viper.GetStringSlice(KeyPrefixes) {
		short, long, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed prefix %q, want short=long", pair)
		}
		reg.Add(voc.Prefix{Short: short, Long: long})
	}
	return reg, nil
}
