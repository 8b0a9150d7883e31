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
	"fmt"

	"github.com/cayleygraph/quad/voc/xsd"

	"github.com/lod4hss-apps/graphly/graph"
	"github.com/lod4hss-apps/graphly/voc"
)

// Discovery is one strategy for extracting classes and properties from a
// graph. Classes runs first; Properties receives its result so ranges and
// domains resolve against the same snapshot.
type Discovery interface {
	Framework() string
	Classes(ctx context.Context, g *graph.Graph, m *Model) ([]Resource, error)
	Properties(ctx context.Context, g *graph.Graph, m *Model, classes []Resource) ([]Property, error)
}

// MultipleMatchError reports that a lookup expected to be unique matched more
// than one property.
type MultipleMatchError struct {
	PropertyURI string
	CardOfURI   string
	Count       int
}

func (e *MultipleMatchError) Error() string {
	return fmt.Sprintf("schema: %d properties match uri %q (card of %q)", e.Count, e.PropertyURI, e.CardOfURI)
}

// Model is the inferred data model of a graph: the classes entities belong
// to and the properties connecting them. It is a snapshot; Update replaces
// it wholesale from the graph.
type Model struct {
	// The predicates the discovery queries are built around. Compact URIs;
	// they default to rdf:type, rdfs:label and rdfs:comment.
	TypeProperty    string
	LabelProperty   string
	CommentProperty string

	discovery  Discovery
	classes    []Resource
	properties []Property
}

// NewModel returns a model that infers the schema implicitly, from how
// entities are actually typed and connected in the data.
func NewModel() *Model {
	return &Model{
		TypeProperty:    "rdf:type",
		LabelProperty:   "rdfs:label",
		CommentProperty: "rdfs:comment",
		discovery:       implicitDiscovery{},
	}
}

// Framework names the discovery strategy in use.
func (m *Model) Framework() string { return m.discovery.Framework() }

// Classes returns the classes of the current snapshot.
func (m *Model) Classes() []Resource { return m.classes }

// Properties returns the properties of the current snapshot.
func (m *Model) Properties() []Property { return m.properties }

// Update replaces the snapshot with a fresh discovery from the graph. A nil
// graph clears the model. On error the previous snapshot is kept.
func (m *Model) Update(ctx context.Context, g *graph.Graph) error {
	if g == nil {
		m.classes, m.properties = nil, nil
		return nil
	}
	classes, err := m.discovery.Classes(ctx, g, m)
	if err != nil {
		return err
	}
	properties, err := m.discovery.Properties(ctx, g, m, classes)
	if err != nil {
		return err
	}
	m.classes, m.properties = classes, properties
	return nil
}

// FindClass returns the class with the given URI. A miss returns a bare
// placeholder carrying only the URI, so callers always have something to
// render.
func (m *Model) FindClass(classURI string) Resource {
	if c := findClass(m.classes, classURI); c != nil {
		return *c
	}
	return NewEntity(classURI, "", "", "")
}

// FindProperties returns every property with the given URI, narrowed by
// domain and range when those are non-empty. The same predicate may appear
// once per domain/range pair. A miss returns a single bare placeholder
// carrying only the URI, so callers always get a usable property.
func (m *Model) FindProperties(propURI, domainClassURI, rangeClassURI string) []Property {
	var found []Property
	for _, p := range m.properties {
		if p.URI != propURI {
			continue
		}
		if domainClassURI != "" && (p.Domain == nil || p.Domain.URI != domainClassURI) {
			continue
		}
		if rangeClassURI != "" && (p.Range == nil || p.Range.URI != rangeClassURI) {
			continue
		}
		found = append(found, p)
	}
	if len(found) == 0 {
		return []Property{NewProperty(propURI)}
	}
	return found
}

// FindProperty is FindProperties narrowed to the first match.
func (m *Model) FindProperty(propURI, domainClassURI, rangeClassURI string) Property {
	return m.FindProperties(propURI, domainClassURI, rangeClassURI)[0]
}

// MandatoryProperty returns the property with the given URI, narrowed to the
// shape of cardOfURI when non-empty. It returns nil when nothing matches and
// a *MultipleMatchError when the match is ambiguous.
func (m *Model) MandatoryProperty(propURI, cardOfURI string) (*Property, error) {
	var found []Property
	for _, p := range m.properties {
		if p.URI != propURI {
			continue
		}
		if cardOfURI != "" && (p.CardOf == nil || p.CardOf.URI != cardOfURI) {
			continue
		}
		found = append(found, p)
	}
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &found[0], nil
	}
	return nil, &MultipleMatchError{PropertyURI: propURI, CardOfURI: cardOfURI, Count: len(found)}
}

func findClass(classes []Resource, classURI string) *Resource {
	if classURI == "" {
		return nil
	}
	for i := range classes {
		if classes[i].URI == classURI {
			return &classes[i]
		}
	}
	return nil
}

// ensureXSD registers the xsd prefix so that DATATYPE-derived ranges come
// back in compact form.
func ensureXSD(prefixes *voc.Registry) {
	if !prefixes.Has("xsd") {
		prefixes.Add(voc.Prefix{Short: "xsd", Long: xsd.NS})
	}
}

// implicitDiscovery infers the schema from the data itself: every object of
// the type predicate is a class, every other predicate in use is a property.
type implicitDiscovery struct{}

func (implicitDiscovery) Framework() string { return "No Framework" }

func (implicitDiscovery) Classes(ctx context.Context, g *graph.Graph, m *Model) ([]Resource, error) {
	text := fmt.Sprintf(`SELECT DISTINCT
?uri
(COALESCE(?label_, '') as ?label)
WHERE {
%s
?subject %s ?uri .
OPTIONAL { ?uri %s ?label_ }
%s
}`, g.Begin(), m.TypeProperty, m.LabelProperty, g.End())
	rows, _, err := g.Run(ctx, text)
	if err != nil {
		return nil, err
	}
	classes := make([]Resource, 0, len(rows))
	for _, r := range rows {
		classes = append(classes, NewEntity(r.Str("uri"), r.Str("label"), "", "owl:Class"))
	}
	return append(classes, ValueClasses()...), nil
}

func (implicitDiscovery) Properties(ctx context.Context, g *graph.Graph, m *Model, classes []Resource) ([]Property, error) {
	ensureXSD(g.Prefixes())
	text := fmt.Sprintf(`SELECT DISTINCT
(COALESCE(?domain_class_uri_, '') as ?domain_class_uri)
?uri
(COALESCE(?label_, '') as ?label)
?range_class_uri
WHERE {
%s
?s ?uri ?o .
OPTIONAL { ?uri %s ?label_ }
OPTIONAL { ?s %s ?domain_class_uri_ . }
OPTIONAL { ?o %s ?range_class_uri_ . }
%s
FILTER (?uri != %s && ?uri != %s && ?uri != %s)
BIND(IF(isIRI(?o), COALESCE(?range_class_uri_, ""), DATATYPE(?o)) as ?range_class_uri)
}`, g.Begin(),
		m.LabelProperty, m.TypeProperty, m.TypeProperty,
		g.End(),
		m.TypeProperty, m.LabelProperty, m.CommentProperty)
	rows, _, err := g.Run(ctx, text)
	if err != nil {
		return nil, err
	}
	properties := make([]Property, 0, len(rows))
	for _, r := range rows {
		p := NewProperty(r.Str("uri"))
		p.Label = r.Str("label")
		p.Domain = findClass(classes, r.Str("domain_class_uri"))
		p.Range = findClass(classes, r.Str("range_class_uri"))
		properties = append(properties, p)
	}
	return properties, nil
}
