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
	"fmt"
	"net/url"
	"strings"
)

func init() {
	Register("fuseki", func(url, username, password, name string) Backend {
		return NewFuseki(url, username, password, name)
	})
}

// Fuseki speaks to an Apache Jena Fuseki dataset. Updates go under the
// "update" form parameter; bulk uploads use the Graph Store Protocol
// /data service.
type Fuseki struct {
	*Generic
}

// NewFuseki returns a backend for a Fuseki dataset endpoint.
func NewFuseki(url, username, password, name string) *Fuseki {
	return &Fuseki{Generic: newGenericAs("fuseki", url, username, password, name)}
}

func (f *Fuseki) ExecuteUpdate(ctx context.Context, text string) (string, error) {
	return f.postForm(ctx, "", "update", text)
}

func (f *Fuseki) UploadNquadsChunk(ctx context.Context, content string) error {
	_, err := f.post(ctx, f.url, "application/n-quads", content)
	return err
}

func (f *Fuseki) UploadTurtleChunk(ctx context.Context, content, graphURI string) error {
	target := f.url + "/data"
	if graphURI != "" {
		target += "?graph=" + url.QueryEscape(graphURI)
	}
	_, err := f.post(ctx, target, "text/turtle", content)
	return err
}

// dumpPageSize is the number of triples fetched per request during a dump.
const dumpPageSize = 5000

// DumpAll serializes the whole dataset as N-Quads by enumerating the named
// graphs, then paging each graph (and the default one) until an empty page.
func (f *Fuseki) DumpAll(ctx context.Context) (string, error) {
	rows, _, err := Run(ctx, f, "SELECT DISTINCT ?g WHERE { GRAPH ?g { ?s ?p ?o . } }", nil)
	if err != nil {
		return "", err
	}
	graphs := []string{""}
	for _, r := range rows {
		graphs = append(graphs, r.Str("g"))
	}

	var lines []string
	for _, g := range graphs {
		graphTerm := Prepare(g, nil)
		where := "?s ?p ?o ."
		if graphTerm != "" {
			where = fmt.Sprintf("GRAPH %s { ?s ?p ?o . }", graphTerm)
		}
		for offset := 0; ; offset += dumpPageSize {
			q := fmt.Sprintf("SELECT ?s ?p ?o WHERE { %s } LIMIT %d OFFSET %d", where, dumpPageSize, offset)
			page, _, err := Run(ctx, f, q, nil)
			if err != nil {
				return "", err
			}
			if len(page) == 0 {
				break
			}
			for _, r := range page {
				s, p, o := Prepare(r["s"], nil), Prepare(r["p"], nil), Prepare(r["o"], nil)
				if graphTerm == "" {
					lines = append(lines, fmt.Sprintf("%s %s %s .", s, p, o))
				} else {
					lines = append(lines, fmt.Sprintf("%s %s %s %s .", s, p, o, graphTerm))
				}
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}
