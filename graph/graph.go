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

// Package graph scopes SPARQL operations to one named graph (or the default
// graph) of a remote store, and serializes its content.
package graph

import (
	"context"

	"github.com/lod4hss-apps/graphly/sparql"
	"github.com/lod4hss-apps/graphly/voc"
)

// Graph binds a backend to one graph of the store. A zero uri means the
// default graph: queries then carry no GRAPH clause and serializations no
// graph term.
type Graph struct {
	backend  sparql.Backend
	uri      string
	longURI  string
	prefixes *voc.Registry

	// begin and end wrap triple patterns in a GRAPH clause; both are empty
	// for the default graph.
	begin string
	end   string
}

// New binds a backend to the graph named by uri, which may be a full or a
// compact URI. An empty uri selects the default graph.
func New(b sparql.Backend, uri string, prefixes *voc.Registry) *Graph {
	g := &Graph{
		backend:  b,
		uri:      uri,
		longURI:  prefixes.Lengthen(uri),
		prefixes: prefixes,
	}
	if uri != "" {
		g.begin = "GRAPH " + sparql.Prepare(uri, prefixes.Shorts()) + " {"
		g.end = "}"
	}
	return g
}

// URI returns the graph URI as given at construction.
func (g *Graph) URI() string { return g.uri }

// LongURI returns the graph URI with its prefix expanded.
func (g *Graph) LongURI() string { return g.longURI }

// Prefixes returns the registry the graph was built with.
func (g *Graph) Prefixes() *voc.Registry { return g.prefixes }

// Backend returns the underlying store connection.
func (g *Graph) Backend() sparql.Backend { return g.backend }

// Run executes a query against the store. Scoping to this graph is the
// caller's job; use Begin and End to wrap triple patterns.
func (g *Graph) Run(ctx context.Context, text string) ([]sparql.Row, string, error) {
	return sparql.Run(ctx, g.backend, text, g.prefixes)
}

// Begin returns the opening GRAPH clause for this graph, or "" for the
// default graph.
func (g *Graph) Begin() string { return g.begin }

// End returns the closing GRAPH clause for this graph, or "" for the
// default graph.
func (g *Graph) End() string { return g.end }

// Insert stores triples into this graph.
func (g *Graph) Insert(ctx context.Context, triples ...sparql.Triple) error {
	return sparql.Insert(ctx, g.backend, triples, g.uri, g.prefixes)
}

// Delete removes triples from this graph.
func (g *Graph) Delete(ctx context.Context, triples ...sparql.Triple) error {
	return sparql.Delete(ctx, g.backend, triples, g.uri, g.prefixes)
}

// UploadTurtle stores a Turtle document into this graph. The graph is
// addressed by its expanded URI, as bulk-upload services expect full URIs.
func (g *Graph) UploadTurtle(ctx context.Context, content string) error {
	return sparql.UploadTurtle(ctx, g.backend, content, g.longURI)
}
