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

	"github.com/lod4hss-apps/graphly/graph"
)

// NewSHACL returns a model that reads the schema from SHACL shapes stored in
// the graph instead of inferring it from the data.
func NewSHACL() *Model {
	m := NewModel()
	m.discovery = shaclDiscovery{}
	return m
}

// shaclDiscovery reads sh:NodeShape declarations: target classes become
// classes, property shapes become properties with cardinalities. A property
// shape whose sh:path is a blank node carries an sh:inversePath; the edge is
// then read backwards, with the target class as range and no known domain.
type shaclDiscovery struct{}

func (shaclDiscovery) Framework() string { return "SHACL" }

func (shaclDiscovery) Classes(ctx context.Context, g *graph.Graph, m *Model) ([]Resource, error) {
	text := fmt.Sprintf(`SELECT DISTINCT
?uri
(COALESCE(?label_, '') as ?label)
WHERE {
%s
?node a sh:NodeShape .
?node sh:name ?label_ .
?node sh:targetClass ?uri .
%s
}`, g.Begin(), g.End())
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

func (shaclDiscovery) Properties(ctx context.Context, g *graph.Graph, m *Model, classes []Resource) ([]Property, error) {
	text := fmt.Sprintf(`SELECT DISTINCT
(COALESCE(?target_class_, '') as ?card_of_class_uri)
(COALESCE(?label_, ?uri) as ?label)
(COALESCE(?order_, '') as ?order)
(COALESCE(?min_count_, '') as ?min_count)
(COALESCE(?max_count_, '') as ?max_count)
(COALESCE(?domain_class_uri_, '') as ?domain_class_uri)
?uri
(COALESCE(?range_class_uri_, ?datatype_, '') as ?range_class_uri)
WHERE {
%s
?shape sh:property ?node .
?node sh:path ?supposed_uri .
OPTIONAL { ?shape sh:targetClass ?target_class_ . }
OPTIONAL { ?supposed_uri sh:inversePath ?inverse_property_uri . }
OPTIONAL { ?node sh:name ?label_ . }
OPTIONAL { ?node sh:order ?order_ . }
OPTIONAL { ?node sh:minCount ?min_count_ . }
OPTIONAL { ?node sh:maxCount ?max_count_ . }
OPTIONAL { ?node sh:datatype ?datatype_ . }
OPTIONAL { ?node sh:class ?class . }
BIND(IF(isBlank(?supposed_uri), '', ?target_class_) as ?domain_class_uri_)
BIND(IF(isBlank(?supposed_uri), ?target_class_, ?class) as ?range_class_uri_)
BIND(IF(isBlank(?supposed_uri), ?inverse_property_uri, ?supposed_uri) as ?uri)
%s
}`, g.Begin(), g.End())
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
		p.CardOf = findClass(classes, r.Str("card_of_class_uri"))
		if n, ok := r.Int("order"); ok {
			p.Order = &n
		}
		if n, ok := r.Int("min_count"); ok {
			p.MinCount = n
		}
		if n, ok := r.Int("max_count"); ok {
			p.MaxCount = &n
		}
		properties = append(properties, p)
	}
	return properties, nil
}
