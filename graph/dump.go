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
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/lod4hss-apps/graphly/sparql"
)

// dumpPageSize is the number of triples fetched per request during a dump.
const dumpPageSize = 5000

// DumpRows retrieves every triple of the graph as result rows with columns
// s, p, o plus the blank-node flags s_is_blank and o_is_blank. Pages of
// dumpPageSize triples are fetched until an empty page arrives.
func (g *Graph) DumpRows(ctx context.Context) ([]sparql.Row, error) {
	var out []sparql.Row
	for offset := 0; ; offset += dumpPageSize {
		text := fmt.Sprintf(`SELECT ?s ?p ?o ?s_is_blank ?o_is_blank
WHERE {
%s
?s ?p ?o .
BIND(isBlank(?s) as ?s_is_blank)
BIND(isBlank(?o) as ?o_is_blank)
%s
}
LIMIT %d OFFSET %d`, g.begin, g.end, dumpPageSize, offset)
		rows, _, err := g.Run(ctx, text)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return out, nil
		}
		out = append(out, rows...)
	}
}

// DumpTurtle serializes the graph as a Turtle document: the registry's
// @prefix header followed by one triple per line, terms shortened where a
// prefix applies.
func (g *Graph) DumpTurtle(ctx context.Context) (string, error) {
	rows, err := g.DumpRows(ctx)
	if err != nil {
		return "", err
	}
	shorts := g.prefixes.Shorts()
	var buf strings.Builder
	for _, p := range g.prefixes.List() {
		buf.WriteString(p.Turtle())
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	for _, r := range rows {
		s := blankOrTerm(r, "s", "s_is_blank", shorts)
		p := sparql.Prepare(r["p"], shorts)
		o := blankOrTerm(r, "o", "o_is_blank", shorts)
		fmt.Fprintf(&buf, "%s %s %s .\n", s, p, o)
	}
	return buf.String(), nil
}

// DumpNquads serializes the graph as N-Quads with full URIs. Named graphs
// carry the expanded graph URI as the quad label.
func (g *Graph) DumpNquads(ctx context.Context) (string, error) {
	rows, err := g.DumpRows(ctx)
	if err != nil {
		return "", err
	}
	var label quad.Value
	if g.uri != "" {
		label = quad.IRI(g.longURI)
	}
	var buf bytes.Buffer
	w := nquads.NewWriter(&buf)
	for _, r := range rows {
		q := quad.Quad{
			Subject:   g.nodeValue(r, "s", "s_is_blank"),
			Predicate: quad.IRI(g.prefixes.Lengthen(r.Str("p"))),
			Object:    g.nodeValue(r, "o", "o_is_blank"),
			Label:     label,
		}
		if err := w.WriteQuad(q); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// blankOrTerm renders one dump column, keeping blank-node identifiers out of
// the URI and literal machinery.
func blankOrTerm(r sparql.Row, col, blankCol string, shorts []string) string {
	v := r.Str(col)
	if strings.HasPrefix(v, "_:") {
		return v
	}
	if r.Str(blankCol) == "true" {
		return "_:" + v
	}
	return sparql.Prepare(r[col], shorts)
}

// nodeValue maps one dump column to a quad value with the prefix expanded.
func (g *Graph) nodeValue(r sparql.Row, col, blankCol string) quad.Value {
	if n, ok := r[col].(int); ok {
		return quad.Int(n)
	}
	v := r.Str(col)
	if strings.HasPrefix(v, "_:") {
		return quad.BNode(v[2:])
	}
	if r.Str(blankCol) == "true" {
		return quad.BNode(v)
	}
	long := g.prefixes.Lengthen(v)
	if strings.HasPrefix(long, "http") {
		return quad.IRI(long)
	}
	return quad.String(v)
}
