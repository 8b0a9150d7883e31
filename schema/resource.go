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

// Package schema infers the implicit data model of a graph: the classes its
// entities belong to and the properties connecting them, discovered from the
// data itself or from SHACL shapes stored alongside it.
package schema

import "fmt"

// Kind distinguishes the three shapes an RDF term can take.
type Kind string

const (
	KindIRI     Kind = "iri"
	KindLiteral Kind = "literal"
	KindBlank   Kind = "blank"
)

// Resource is one node of the model: an entity with a URI and descriptive
// annotations, or a bare literal value.
type Resource struct {
	Kind Kind

	// Literal holds the value when Kind is KindLiteral.
	Literal interface{}

	// Entity fields, unset for literals.
	URI      string
	Label    string
	Comment  string
	ClassURI string
}

// NewEntity returns an IRI resource.
func NewEntity(uri, label, comment, classURI string) Resource {
	return Resource{Kind: KindIRI, URI: uri, Label: label, Comment: comment, ClassURI: classURI}
}

// NewLiteral returns a literal resource holding the given value.
func NewLiteral(v interface{}) Resource {
	return Resource{Kind: KindLiteral, Literal: v}
}

// Text returns a human-readable rendering: the literal value, or the label
// with the URI as fallback. With withComment set, a non-empty comment is
// appended after a colon.
func (r Resource) Text(withComment bool) string {
	if r.Kind == KindLiteral {
		return fmt.Sprint(r.Literal)
	}
	text := r.Label
	if text == "" {
		text = r.URI
	}
	if withComment && r.Comment != "" {
		return text + ": " + r.Comment
	}
	return text
}

// ToMap returns the plain key-value form used for persistence. Keys are
// prefixed so a resource can be embedded into a larger record.
func (r Resource) ToMap(prefix string) map[string]interface{} {
	m := map[string]interface{}{prefix + "resource_type": string(r.Kind)}
	if r.Kind == KindLiteral {
		m[prefix+"literal"] = r.Literal
		return m
	}
	m[prefix+"uri"] = r.URI
	m[prefix+"label"] = r.Label
	if r.Comment != "" {
		m[prefix+"comment"] = r.Comment
	}
	if r.ClassURI != "" {
		m[prefix+"class_uri"] = r.ClassURI
	}
	return m
}

// ResourceFromMap rebuilds a resource from its persistence form.
func ResourceFromMap(m map[string]interface{}, prefix string) Resource {
	kind := KindIRI
	if s, ok := m[prefix+"resource_type"].(string); ok && s != "" {
		kind = Kind(s)
	}
	if kind == KindLiteral {
		return Resource{Kind: kind, Literal: m[prefix+"literal"]}
	}
	return Resource{
		Kind:     kind,
		URI:      stringAt(m, prefix+"uri"),
		Label:    stringAt(m, prefix+"label"),
		Comment:  stringAt(m, prefix+"comment"),
		ClassURI: stringAt(m, prefix+"class_uri"),
	}
}

func stringAt(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func intAt(m map[string]interface{}, key string) (int, bool) {
	switch v := m[key].(type) {
	case int:
		return v, true
	case float64:
		// encoding/json decodes numbers as float64.
		return int(v), true
	}
	return 0, false
}
