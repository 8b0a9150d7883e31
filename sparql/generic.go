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

import "context"

func init() {
	Register("generic", func(url, username, password, name string) Backend {
		return NewGeneric(url, username, password, name)
	})
}

// Generic is the dialect-neutral backend: a single endpoint that accepts
// queries and updates under the "query" form parameter. Stores needing
// different addressing embed Generic and override the relevant methods.
type Generic struct {
	*Endpoint
}

// NewGeneric returns a backend with no dialect-specific behavior.
func NewGeneric(url, username, password, name string) *Generic {
	return newGenericAs("generic", url, username, password, name)
}

func newGenericAs(technology, url, username, password, name string) *Generic {
	return &Generic{Endpoint: NewEndpoint(technology, url, username, password, name)}
}

func (g *Generic) ExecuteQuery(ctx context.Context, text string) (string, error) {
	return g.postForm(ctx, "", "query", text)
}

// ExecuteUpdate sends updates the same way as queries: single-endpoint stores
// take everything under the "query" parameter.
func (g *Generic) ExecuteUpdate(ctx context.Context, text string) (string, error) {
	return g.postForm(ctx, "", "query", text)
}

// UploadNquadsChunk fails: bulk upload addressing differs per store and must
// be provided by a dialect backend.
func (g *Generic) UploadNquadsChunk(ctx context.Context, content string) error {
	return &NotSupportedError{Technology: g.technology, Op: "upload nquads"}
}

// UploadTurtleChunk fails: bulk upload addressing differs per store and must
// be provided by a dialect backend.
func (g *Generic) UploadTurtleChunk(ctx context.Context, content, graphURI string) error {
	return &NotSupportedError{Technology: g.technology, Op: "upload turtle"}
}

// DumpAll fetches the dataset through the Graph Store Protocol address.
func (g *Generic) DumpAll(ctx context.Context) (string, error) {
	return g.get(ctx, g.url+"/statements", "application/n-quads")
}
