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
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lod4hss-apps/graphly/sparql"
	"github.com/lod4hss-apps/graphly/voc"
)

func testPrefixes() *voc.Registry {
	return voc.NewRegistry(voc.Prefix{Short: "ex", Long: "http://example.org/"})
}

func newTestGraph(t *testing.T, uri string, handler http.HandlerFunc) *Graph {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	b := sparql.NewGeneric(srv.URL, "", "", "test")
	b.SetHTTPClient(srv.Client())
	return New(b, uri, testPrefixes())
}

func TestNewDerivesClauses(t *testing.T) {
	b := sparql.NewGeneric("http://unused", "", "", "test")

	named := New(b, "ex:g", testPrefixes())
	require.Equal(t, "ex:g", named.URI())
	require.Equal(t, "http://example.org/g", named.LongURI())
	require.Equal(t, "GRAPH ex:g {", named.Begin())
	require.Equal(t, "}", named.End())

	deflt := New(b, "", testPrefixes())
	require.Empty(t, deflt.Begin())
	require.Empty(t, deflt.End())
	require.Empty(t, deflt.LongURI())
}

func TestInsertScopesToGraph(t *testing.T) {
	var got string
	g := newTestGraph(t, "ex:g", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm.Get("query")
		w.Write([]byte(""))
	})
	err := g.Insert(context.Background(), sparql.T("ex:a", "ex:b", "ex:c"))
	require.NoError(t, err)
	require.Contains(t, got, "GRAPH ex:g {")
	require.Contains(t, got, "ex:a ex:b ex:c .")
}

const dumpBindingTemplate = `{
	"s": {"type": "%s", "value": "%s"},
	"p": {"type": "uri", "value": "http://example.org/p"},
	"o": {"type": "%s", "value": "%s"},
	"s_is_blank": {"type": "literal", "value": "%t"},
	"o_is_blank": {"type": "literal", "value": "%t"}
}`

func dumpBinding(sType, s, oType, o string, sBlank, oBlank bool) string {
	return fmt.Sprintf(dumpBindingTemplate, sType, s, oType, o, sBlank, oBlank)
}

func TestDumpRowsPaginates(t *testing.T) {
	var offsets []string
	g := newTestGraph(t, "ex:g", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		q := r.PostForm.Get("query")
		require.Contains(t, q, "GRAPH ex:g {")
		require.Contains(t, q, "BIND(isBlank(?s) as ?s_is_blank)")
		w.Header().Set("Content-Type", "application/sparql-results+json")
		if strings.Contains(q, "OFFSET 0") {
			offsets = append(offsets, "0")
			w.Write([]byte(`{"results": {"bindings": [` +
				dumpBinding("uri", "http://example.org/bob", "literal", "Bob", false, false) + `]}}`))
		} else {
			offsets = append(offsets, "next")
			w.Write([]byte(`{"results": {"bindings": []}}`))
		}
	})

	rows, err := g.DumpRows(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"0", "next"}, offsets)
	require.Len(t, rows, 1)
	require.Equal(t, "ex:bob", rows[0].Str("s"))
	require.Equal(t, "Bob", rows[0].Str("o"))
}

func TestDumpTurtle(t *testing.T) {
	g := newTestGraph(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/sparql-results+json")
		if strings.Contains(r.PostForm.Get("query"), "OFFSET 0") {
			w.Write([]byte(`{"results": {"bindings": [` +
				dumpBinding("uri", "http://example.org/bob", "literal", "Bob", false, false) + `,` +
				dumpBinding("bnode", "b0", "uri", "http://example.org/Person", true, false) + `]}}`))
		} else {
			w.Write([]byte(`{"results": {"bindings": []}}`))
		}
	})

	out, err := g.DumpTurtle(context.Background())
	require.NoError(t, err)
	require.Contains(t, out, "@prefix ex: <http://example.org/> .")
	require.Contains(t, out, "ex:bob ex:p 'Bob' .")
	require.Contains(t, out, "_:b0 ex:p ex:Person .")
}

func TestDumpNquads(t *testing.T) {
	g := newTestGraph(t, "ex:g", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/sparql-results+json")
		if strings.Contains(r.PostForm.Get("query"), "OFFSET 0") {
			w.Write([]byte(`{"results": {"bindings": [` +
				dumpBinding("uri", "http://example.org/bob", "bnode", "b7", false, true) + `]}}`))
		} else {
			w.Write([]byte(`{"results": {"bindings": []}}`))
		}
	})

	out, err := g.DumpNquads(context.Background())
	require.NoError(t, err)
	require.Contains(t, out, "<http://example.org/bob>")
	require.Contains(t, out, "<http://example.org/p>")
	require.Contains(t, out, "_:b7")
	// The graph term carries the expanded URI.
	require.Contains(t, out, "<http://example.org/g>")
}

func TestUploadJSONLD(t *testing.T) {
	b := &recordingBackend{Generic: sparql.NewGeneric("http://unused", "", "", "test")}
	g := New(b, "", testPrefixes())

	doc := map[string]interface{}{
		"@id":                     "http://example.org/bob",
		"http://example.org/name": "Bob",
	}
	require.NoError(t, g.UploadJSONLD(context.Background(), doc))
	require.Contains(t, b.nquads, "<http://example.org/bob>")
	require.Contains(t, b.nquads, "<http://example.org/name>")
}

type recordingBackend struct {
	*sparql.Generic
	nquads string
}

func (b *recordingBackend) UploadNquadsChunk(ctx context.Context, content string) error {
	b.nquads += content
	return nil
}
