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

package sparql

func init() {
	Register("rdf4j", func(url, username, password, name string) Backend {
		return NewRDF4J(url, username, password, name)
	})
}

// RDF4J speaks to an Eclipse RDF4J server repository. The REST API is the
// one GraphDB implements, so the dialect is GraphDB under another name.
type RDF4J struct {
	*GraphDB
}

// NewRDF4J returns a backend for an RDF4J repository endpoint.
func NewRDF4J(url, username, password, name string) *RDF4J {
	return &RDF4J{GraphDB: newGraphDBAs("rdf4j", url, username, password, name)}
}
