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

package schema

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lod4hss-apps/graphly/graph"
	"github.com/lod4hss-apps/graphly/sparql"
	"github.com/lod4hss-apps/graphly/voc"
)

// newTestGraph serves class and property discovery queries from canned JSON,
// keyed by a marker string found in the query text.
func newTestGraph(t *testing.T, responses map[string]string) *graph.Graph {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		q := r.PostForm.Get("query")
		w.Header().Set("Content-Type", "application/sparql-results+json")
		for marker, body := range responses {
			if strings.Contains(q, marker) {
				w.Write([]byte(body))
				return
			}
		}
		w.Write([]byte(`{"results": {"bindings": []}}`))
	}))
	t.Cleanup(srv.Close)
	b := sparql.NewGeneric(srv.URL, "", "", "test")
	b.SetHTTPClient(srv.Client())
	prefixes := voc.NewRegistry(
		voc.Prefix{Short: "rdf", Long: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
		voc.Prefix{Short: "rdfs", Long: "http://www.w3.org/2000/01/rdf-schema#"},
		voc.Prefix{Short: "ex", Long: "http://example.org/"},
	)
	return graph.New(b, "", prefixes)
}

func TestUpdateEmptyGraph(t *testing.T) {
	g := newTestGraph(t, nil)
	m := NewModel()
	require.NoError(t, m.Update(context.Background(), g))

	// Even an empty graph carries the built-in datatype classes.
	require.Equal(t, ValueClasses(), m.Classes())
	require.Empty(t, m.Properties())
	require.Equal(t, "No Framework", m.Framework())
}

func TestUpdateNilGraphClears(t *testing.T) {
	g := newTestGraph(t, nil)
	m := NewModel()
	require.NoError(t, m.Update(context.Background(), g))
	require.NotEmpty(t, m.Classes())

	require.NoError(t, m.Update(context.Background(), nil))
	require.Empty(t, m.Classes())
	require.Empty(t, m.Properties())
}

func TestUpdateDiscoversClassesAndProperties(t *testing.T) {
	g := newTestGraph(t, map[string]string{
		"?subject rdf:type ?uri": `{"results": {"bindings": [{
			"uri": {"type": "uri", "value": "http://example.org/Person"},
			"label": {"type": "literal", "value": "Person"}
		}]}}`,
		"?s ?uri ?o": `{"results": {"bindings": [
			{
				"domain_class_uri": {"type": "uri", "value": "http://example.org/Person"},
				"uri": {"type": "uri", "value": "http://example.org/name"},
				"label": {"type": "literal", "value": "name"},
				"range_class_uri": {"type": "uri", "value": "http://www.w3.org/2001/XMLSchema#string"}
			},
			{
				"domain_class_uri": {"type": "uri", "value": "http://example.org/Person"},
				"uri": {"type": "uri", "value": "http://example.org/knows"},
				"label": {"type": "literal", "value": ""},
				"range_class_uri": {"type": "uri", "value": "http://example.org/Person"}
			}
		]}}`,
	})

	m := NewModel()
	require.NoError(t, m.Update(context.Background(), g))

	person := m.FindClass("ex:Person")
	require.Equal(t, "Person", person.Label)
	require.Equal(t, "owl:Class", person.ClassURI)
	require.Len(t, m.Classes(), 1+len(ValueClasses()))

	require.Len(t, m.Properties(), 2)

	name := m.FindProperty("ex:name", "", "")
	require.NotNil(t, name.Domain)
	require.Equal(t, "ex:Person", name.Domain.URI)
	// A literal-valued property resolves its range against the built-in
	// datatype catalog.
	require.NotNil(t, name.Range)
	require.Equal(t, "xsd:string", name.Range.URI)
	require.Equal(t, "String", name.Range.Label)
	require.Equal(t, "ex:Person-ex:name-xsd:string", name.Key())

	knows := m.FindProperty("ex:knows", "ex:Person", "ex:Person")
	require.Equal(t, "ex:Person-ex:knows-ex:Person", knows.Key())
}

func TestUpdateRegistersXSD(t *testing.T) {
	g := newTestGraph(t, nil)
	require.False(t, g.Prefixes().Has("xsd"))
	m := NewModel()
	require.NoError(t, m.Update(context.Background(), g))
	require.True(t, g.Prefixes().Has("xsd"))
}

func TestFindClassMissReturnsPlaceholder(t *testing.T) {
	m := NewModel()
	got := m.FindClass("ex:Nothing")
	require.Equal(t, "ex:Nothing", got.URI)
	require.Empty(t, got.Label)
}

func TestFindPropertyPlaceholder(t *testing.T) {
	m := NewModel()
	p := m.FindProperty("ex:nope", "", "")
	require.Equal(t, "ex:nope", p.URI)
	require.Equal(t, "unknown-ex:nope-unknown", p.Key())
}

func TestFindPropertyFilters(t *testing.T) {
	person := NewEntity("ex:Person", "", "", "owl:Class")
	org := NewEntity("ex:Org", "", "", "owl:Class")

	forPerson := NewProperty("ex:name")
	forPerson.Domain = &person
	forOrg := NewProperty("ex:name")
	forOrg.Domain = &org

	m := NewModel()
	m.properties = []Property{forPerson, forOrg}

	got := m.FindProperty("ex:name", "ex:Org", "")
	require.NotNil(t, got.Domain)
	require.Equal(t, "ex:Org", got.Domain.URI)

	// The same predicate under two domains is two entries.
	both := m.FindProperties("ex:name", "", "")
	require.Len(t, both, 2)

	// No match on range: a single placeholder comes back.
	miss := m.FindProperties("ex:name", "ex:Org", "ex:Person")
	require.Len(t, miss, 1)
	require.Nil(t, miss[0].Domain)
}

func TestMandatoryProperty(t *testing.T) {
	person := NewEntity("ex:Person", "", "", "owl:Class")
	org := NewEntity("ex:Org", "", "", "owl:Class")

	p1 := NewProperty("ex:name")
	p1.CardOf = &person
	p1.MinCount = 1
	p2 := NewProperty("ex:name")
	p2.CardOf = &org

	m := NewModel()
	m.properties = []Property{p1, p2}

	got, err := m.MandatoryProperty("ex:name", "ex:Person")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.Mandatory())

	none, err := m.MandatoryProperty("ex:other", "")
	require.NoError(t, err)
	require.Nil(t, none)

	_, err = m.MandatoryProperty("ex:name", "")
	var multi *MultipleMatchError
	require.ErrorAs(t, err, &multi)
	require.Equal(t, 2, multi.Count)
}
