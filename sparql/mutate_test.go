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
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lod4hss-apps/graphly/voc"
)

func TestInsertSingleChunk(t *testing.T) {
	var got []string
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = append(got, r.PostForm.Get("query"))
		w.Write([]byte(""))
	})
	prefixes := voc.NewRegistry(voc.Prefix{Short: "ex", Long: "http://example.org/"})

	err := Insert(context.Background(), b, []Triple{
		T("ex:bob", "a", "ex:Person"),
		T("ex:bob", "ex:age", 42),
	}, "", prefixes)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Contains(t, got[0], "INSERT DATA {")
	require.Contains(t, got[0], "ex:bob a ex:Person .")
	require.Contains(t, got[0], "ex:bob ex:age 42 .")
	require.NotContains(t, got[0], "GRAPH")
}

func TestInsertNamedGraph(t *testing.T) {
	var got string
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm.Get("query")
		w.Write([]byte(""))
	})
	prefixes := voc.NewRegistry(voc.Prefix{Short: "ex", Long: "http://example.org/"})

	err := Insert(context.Background(), b, []Triple{T("ex:a", "ex:b", "ex:c")}, "ex:graph", prefixes)
	require.NoError(t, err)
	require.Contains(t, got, "GRAPH ex:graph {")
}

func TestInsertChunking(t *testing.T) {
	var sizes []int
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		q := r.PostForm.Get("query")
		n := 0
		for _, line := range strings.Split(q, "\n") {
			if strings.HasSuffix(line, " .") {
				n++
			}
		}
		sizes = append(sizes, n)
		w.Write([]byte(""))
	})

	triples := make([]Triple, 12000)
	for i := range triples {
		triples[i] = T(fmt.Sprintf("http://example.org/s%d", i), "http://example.org/p", i)
	}
	err := Insert(context.Background(), b, triples, "", nil)
	require.NoError(t, err)
	require.Equal(t, []int{5000, 5000, 2000}, sizes)
}

func TestInsertEmpty(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	require.NoError(t, Insert(context.Background(), b, nil, "", nil))
}

func TestDelete(t *testing.T) {
	var got []string
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = append(got, r.PostForm.Get("query"))
		w.Write([]byte(""))
	})
	prefixes := voc.NewRegistry(voc.Prefix{Short: "ex", Long: "http://example.org/"})

	err := Delete(context.Background(), b, []Triple{T("ex:a", "ex:b", "ex:c")}, "ex:g", prefixes)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Contains(t, got[0], "DELETE WHERE {")
	require.Contains(t, got[0], "GRAPH ex:g {")
	require.Contains(t, got[0], "ex:a ex:b ex:c .")
}

func TestInsertChunkFailureStops(t *testing.T) {
	var count int
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		count++
		if count == 2 {
			http.Error(w, "boom", http.StatusBadRequest)
			return
		}
		w.Write([]byte(""))
	})

	triples := make([]Triple, 12000)
	for i := range triples {
		triples[i] = T(fmt.Sprintf("http://example.org/s%d", i), "http://example.org/p", i)
	}
	err := Insert(context.Background(), b, triples, "", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "offset 5000")
	// The failing chunk ends the sequence; the third chunk is never sent.
	require.Equal(t, 2, count)
}

func TestUploadNquadsChunking(t *testing.T) {
	lines := make([]string, 25000)
	for i := range lines {
		lines[i] = fmt.Sprintf("<http://example.org/s%d> <http://example.org/p> <http://example.org/o> .", i)
	}

	var chunks []int
	b := &chunkCountBackend{Generic: NewGeneric("http://unused", "", "", "test"), chunks: &chunks}
	err := UploadNquads(context.Background(), b, strings.Join(lines, "\n"))
	require.NoError(t, err)
	require.Equal(t, []int{10000, 10000, 5000}, chunks)
}

func TestUploadTurtleCarriesHeader(t *testing.T) {
	var contents []string
	b := &turtleRecordBackend{Generic: NewGeneric("http://unused", "", "", "test"), contents: &contents}

	header := "@prefix ex: <http://example.org/> ."
	lines := []string{header}
	for i := 0; i < 15000; i++ {
		lines = append(lines, fmt.Sprintf("ex:s%d ex:p ex:o .", i))
	}
	err := UploadTurtle(context.Background(), b, strings.Join(lines, "\n"), "http://example.org/g")
	require.NoError(t, err)
	require.Len(t, contents, 2)
	for _, c := range contents {
		require.True(t, strings.HasPrefix(c, header))
	}
}

func TestUploadEmptyContent(t *testing.T) {
	b := NewGeneric("http://unused", "", "", "test")
	require.NoError(t, UploadNquads(context.Background(), b, "  \n "))
	require.NoError(t, UploadTurtle(context.Background(), b, "", ""))
}

type chunkCountBackend struct {
	*Generic
	chunks *[]int
}

func (b *chunkCountBackend) UploadNquadsChunk(ctx context.Context, content string) error {
	*b.chunks = append(*b.chunks, len(strings.Split(content, "\n")))
	return nil
}

type turtleRecordBackend struct {
	*Generic
	contents *[]string
}

func (b *turtleRecordBackend) UploadTurtleChunk(ctx context.Context, content, graphURI string) error {
	*b.contents = append(*b.contents, content)
	return nil
}
