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

package voc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixRenderings(t *testing.T) {
	p := Prefix{Short: "ex", Long: "http://example.org/"}
	require.Equal(t, "PREFIX ex: <http://example.org/>", p.SPARQL())
	require.Equal(t, "@prefix ex: <http://example.org/> .", p.Turtle())
}

func TestPrefixShorten(t *testing.T) {
	p := Prefix{Short: "ex", Long: "http://example.org/"}
	require.Equal(t, "ex:Thing", p.Shorten("http://example.org/Thing"))
	require.Equal(t, "ex:Thing", p.Shorten("<http://example.org/Thing>"))
	require.Equal(t, "http://other.org/Thing", p.Shorten("http://other.org/Thing"))
}

func TestPrefixLengthen(t *testing.T) {
	p := Prefix{Short: "ex", Long: "http://example.org/"}
	require.Equal(t, "http://example.org/Thing", p.Lengthen("ex:Thing"))
	require.Equal(t, "other:Thing", p.Lengthen("other:Thing"))
	// Only a leading short form expands.
	require.Equal(t, "xex:Thing", p.Lengthen("xex:Thing"))
}

func TestRegistryRoundTrip(t *testing.T) {
	reg := NewRegistry(Prefix{Short: "ex", Long: "http://example.org/"})
	for _, uri := range []string{
		"http://example.org/Person",
		"http://example.org/name",
	} {
		require.Equal(t, uri, reg.Lengthen(reg.Shorten(uri)))
	}
}

func TestRegistryOrder(t *testing.T) {
	// Overlapping namespaces: the first registered prefix wins.
	reg := NewRegistry(
		Prefix{Short: "a", Long: "http://example.org/"},
		Prefix{Short: "b", Long: "http://example.org/sub/"},
	)
	require.Equal(t, "a:sub/Thing", reg.Shorten("http://example.org/sub/Thing"))
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry(
		Prefix{Short: "a", Long: "http://a.org/"},
		Prefix{Short: "b", Long: "http://b.org/"},
		Prefix{Short: "c", Long: "http://c.org/"},
	)
	reg.Remove("a", "http://b.org/")
	require.Equal(t, []string{"c"}, reg.Shorts())
	require.False(t, reg.Has("a"))
	require.True(t, reg.Has("c"))
}

func TestRegistryFind(t *testing.T) {
	reg := Common()
	p, ok := reg.Find("rdf")
	require.True(t, ok)
	require.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#", p.Long)
	_, ok = reg.Find("nope")
	require.False(t, ok)
}

func TestCommon(t *testing.T) {
	reg := Common()
	for _, short := range []string{"rdf", "rdfs", "xsd", "owl", "sh"} {
		require.True(t, reg.Has(short), "missing %q", short)
	}
	require.Equal(t, 5, reg.Len())
}

func TestNilRegistry(t *testing.T) {
	var reg *Registry
	require.Equal(t, "http://example.org/x", reg.Shorten("http://example.org/x"))
	require.Equal(t, "ex:x", reg.Lengthen("ex:x"))
	require.Nil(t, reg.Shorts())
	require.False(t, reg.Has("ex"))
	require.Equal(t, 0, reg.Len())
}

func TestPrefixMapRoundTrip(t *testing.T) {
	p := Prefix{Short: "ex", Long: "http://example.org/"}
	require.Equal(t, p, PrefixFromMap(p.Map()))
}
