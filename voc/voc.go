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

// Package voc implements an RDF namespace (vocabulary) prefix registry.
package voc

import (
	"fmt"
	"strings"

	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
	"github.com/cayleygraph/quad/voc/xsd"
)

// Prefix associates a short namespace name with a base vocabulary IRI.
type Prefix struct {
	Short string
	Long  string
}

// SPARQL returns the prefix declaration used in query preambles.
func (p Prefix) SPARQL() string {
	return fmt.Sprintf("PREFIX %s: <%s>", p.Short, p.Long)
}

// Turtle returns the prefix declaration used in Turtle documents.
func (p Prefix) Turtle() string {
	return fmt.Sprintf("@prefix %s: <%s> .", p.Short, p.Long)
}

// Shorten replaces the namespace IRI with its short form.
//
//	Prefix{"rdf", rdf.NS}.Shorten("http://www.w3.org/1999/02/22-rdf-syntax-ns#type") // "rdf:type"
//
// Surrounding angle brackets are stripped when the namespace matches.
// IRIs outside the namespace pass through unchanged.
func (p Prefix) Shorten(uri string) string {
	if !strings.Contains(uri, p.Long) {
		return uri
	}
	uri = strings.TrimPrefix(uri, "<")
	uri = strings.TrimSuffix(uri, ">")
	return strings.ReplaceAll(uri, p.Long, p.Short+":")
}

// Lengthen replaces a leading short-form occurrence with the namespace IRI.
//
//	Prefix{"rdf", rdf.NS}.Lengthen("rdf:type") // "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
func (p Prefix) Lengthen(s string) string {
	if !strings.HasPrefix(s, p.Short+":") {
		return s
	}
	return p.Long + s[len(p.Short)+1:]
}

// Map returns the plain key-value form used for configuration persistence.
func (p Prefix) Map() map[string]string {
	return map[string]string{"short": p.Short, "long": p.Long}
}

// PrefixFromMap rebuilds a Prefix from its configuration form.
func PrefixFromMap(m map[string]string) Prefix {
	return Prefix{Short: m["short"], Long: m["long"]}
}

// Registry is an ordered collection of prefixes. Order matters: Shorten and
// Lengthen fold the prefixes over the input in registration order, so when
// namespaces overlap the first registered prefix wins.
type Registry struct {
	list []Prefix
}

// NewRegistry returns a registry holding the given prefixes, in order.
func NewRegistry(prefixes ...Prefix) *Registry {
	return &Registry{list: append([]Prefix(nil), prefixes...)}
}

// Common returns a registry preloaded with the core RDF vocabularies.
func Common() *Registry {
	return NewRegistry(
		Prefix{Short: "rdf", Long: rdf.NS},
		Prefix{Short: "rdfs", Long: rdfs.NS},
		Prefix{Short: "xsd", Long: xsd.NS},
		Prefix{Short: "owl", Long: "http://www.w3.org/2002/07/owl#"},
		Prefix{Short: "sh", Long: "http://www.w3.org/ns/shacl#"},
	)
}

// Add appends a prefix to the registry.
func (r *Registry) Add(p Prefix) {
	r.list = append(r.list, p)
}

// Remove drops entries matching the given short or long form.
func (r *Registry) Remove(short, long string) {
	kept := r.list[:0]
	for _, p := range r.list {
		if p.Short != short && p.Long != long {
			kept = append(kept, p)
		}
	}
	r.list = kept
}

// Has reports whether a prefix with the given short name is registered.
func (r *Registry) Has(short string) bool {
	if r == nil {
		return false
	}
	for _, p := range r.list {
		if p.Short == short {
			return true
		}
	}
	return false
}

// Find returns the prefix with the given short name.
func (r *Registry) Find(short string) (Prefix, bool) {
	if r == nil {
		return Prefix{}, false
	}
	for _, p := range r.list {
		if p.Short == short {
			return p, true
		}
	}
	return Prefix{}, false
}

// Shorten folds all registered prefixes over the IRI. IRIs with no
// registered namespace pass through unchanged.
func (r *Registry) Shorten(uri string) string {
	if r == nil {
		return uri
	}
	for _, p := range r.list {
		uri = p.Shorten(uri)
	}
	return uri
}

// Lengthen folds all registered prefixes over a short-form IRI.
func (r *Registry) Lengthen(s string) string {
	if r == nil {
		return s
	}
	for _, p := range r.list {
		s = p.Lengthen(s)
	}
	return s
}

// Shorts lists the registered short names, in order.
func (r *Registry) Shorts() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.list))
	for _, p := range r.list {
		out = append(out, p.Short)
	}
	return out
}

// List returns a copy of the registered prefixes, in order.
func (r *Registry) List() []Prefix {
	if r == nil {
		return nil
	}
	return append([]Prefix(nil), r.list...)
}

// Len returns the number of registered prefixes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.list)
}
