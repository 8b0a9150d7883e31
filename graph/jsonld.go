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

package graph

import (
	"bytes"
	"context"
	"io"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"

	"github.com/lod4hss-apps/graphly/sparql"
)

// UploadJSONLD stores a decoded JSON-LD document (a map or array as produced
// by encoding/json) into the graph. The document is flattened to N-Quads
// first, so stores without a JSON-LD service can take it through their bulk
// upload path.
func (g *Graph) UploadJSONLD(ctx context.Context, doc interface{}) error {
	r := jsonld.NewReaderFromMap(doc)
	var buf bytes.Buffer
	w := nquads.NewWriter(&buf)
	for {
		q, err := r.ReadQuad()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if g.uri != "" {
			q.Label = quad.IRI(g.longURI)
		}
		if err := w.WriteQuad(q); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return sparql.UploadNquads(ctx, g.backend, buf.String())
}
