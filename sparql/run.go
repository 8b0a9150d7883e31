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
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad/voc/xsd"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lod4hss-apps/graphly/clog"
	"github.com/lod4hss-apps/graphly/voc"
)

// Row is one solution of a SPARQL result set: variable name to value.
// URI values arrive shortened through the registry; xsd:integer literals
// arrive as int; every other literal is a string.
type Row map[string]interface{}

// Str returns the named column as a string, or "" when absent.
func (r Row) Str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the named column as an int.
func (r Row) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// BuildQuery assembles the full request text: the registry's PREFIX
// declarations, any extra declarations not already covered by the registry,
// then the query with blank lines stripped.
func BuildQuery(text string, prefixes *voc.Registry, extra ...voc.Prefix) string {
	var decls []string
	for _, p := range prefixes.List() {
		decls = append(decls, p.SPARQL())
	}
	for _, p := range extra {
		if !prefixes.Has(p.Short) {
			decls = append(decls, p.SPARQL())
		}
	}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	body := strings.Join(lines, "\n")
	if len(decls) == 0 {
		return body
	}
	return strings.Join(decls, "\n") + "\n\n" + body
}

// Run executes a query or update against the backend. Read queries return
// decoded rows; updates and non-JSON responses return the raw body with nil
// rows. Failures propagate immediately; nothing is retried.
func Run(ctx context.Context, b Backend, text string, prefixes *voc.Registry) ([]Row, string, error) {
	var extra []voc.Prefix
	if pr, ok := b.(prefixRequirer); ok {
		extra = pr.RequiredPrefixes()
	}
	full := BuildQuery(text, prefixes, extra...)
	if clog.V(2) {
		clog.Infof("sparql %s query:\n%s", b.Technology(), full)
	}

	kind := "query"
	if QueryTypeOf(text).IsUpdate() {
		kind = "update"
	}
	mRequests.WithLabelValues(b.Technology(), kind).Inc()
	defer prometheus.NewTimer(mRequestSeconds.WithLabelValues(b.Technology())).ObserveDuration()

	if kind == "update" {
		raw, err := b.ExecuteUpdate(ctx, full)
		return nil, raw, err
	}
	raw, err := b.ExecuteQuery(ctx, full)
	if err != nil {
		return nil, "", err
	}
	rows, ok := decodeRows(raw, prefixes)
	if !ok {
		// Some stores answer reads with non-JSON bodies; hand the text back.
		return nil, raw, nil
	}
	return rows, raw, nil
}

type jsonBinding struct {
	Type     string `json:"type"`
	Datatype string `json:"datatype"`
	Value    string `json:"value"`
}

type jsonResults struct {
	Results *struct {
		Bindings []map[string]jsonBinding `json:"bindings"`
	} `json:"results"`
}

// decodeRows parses a SPARQL 1.1 JSON result body. The second return is
// false when the body is not JSON at all.
func decodeRows(body string, prefixes *voc.Registry) ([]Row, bool) {
	var res jsonResults
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, false
	}
	if res.Results == nil {
		return []Row{}, true
	}
	rows := make([]Row, 0, len(res.Results.Bindings))
	for _, binding := range res.Results.Bindings {
		row := make(Row, len(binding))
		for name, cell := range binding {
			switch {
			case cell.Type == "uri":
				row[name] = prefixes.Shorten(cell.Value)
			case cell.Type == "literal" && cell.Datatype == xsd.NS+"integer":
				if n, err := strconv.Atoi(cell.Value); err == nil {
					row[name] = n
				} else {
					row[name] = cell.Value
				}
			default:
				row[name] = cell.Value
			}
		}
		rows = append(rows, row)
	}
	return rows, true
}
