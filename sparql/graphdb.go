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

import (
	"context"
	"net/url"
)

func init() {
	Register("graphdb", func(url, username, password, name string) Backend {
		return NewGraphDB(url, username, password, name)
	})
}

// GraphDB speaks to an Ontotext GraphDB repository. Updates go to the
// /statements path under the "update" form parameter, as the RDF4J REST API
// prescribes; bulk uploads use the same path.
type GraphDB struct {
	*Generic
}

// NewGraphDB returns a backend for a GraphDB repository endpoint.
func NewGraphDB(url, username, password, name string) *GraphDB {
	return newGraphDBAs("graphdb", url, username, password, name)
}

func newGraphDBAs(technology, url, username, password, name string) *GraphDB {
	return &GraphDB{Generic: newGenericAs(technology, url, username, password, name)}
}

func (g *GraphDB) ExecuteUpdate(ctx context.Context, text string) (string, error) {
	return g.postForm(ctx, "/statements", "update", text)
}

func (g *GraphDB) UploadNquadsChunk(ctx context.Context, content string) error {
	_, err := g.post(ctx, g.url+"/statements", "application/n-quads", content)
	return err
}

func (g *GraphDB) UploadTurtleChunk(ctx context.Context, content, graphURI string) error {
	target := g.statementsURL()
	if graphURI != "" {
		target += "?context=" + url.QueryEscape(Prepare(graphURI, nil))
	}
	_, err := g.post(ctx, target, "text/turtle", content)
	return err
}
