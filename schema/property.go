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

// Property is one edge of the model: a predicate together with the classes it
// connects and optional cardinality constraints from SHACL shapes.
type Property struct {
	Resource

	// Domain and Range are the classes at the ends of the edge; nil when
	// discovery could not determine them. CardOf names the class whose
	// shape carries the cardinality constraint.
	Domain *Resource
	Range  *Resource
	CardOf *Resource

	// Order is the display rank from sh:order; nil when the shape has none.
	Order *int
	// MinCount and MaxCount come from sh:minCount and sh:maxCount. A nil
	// MaxCount means unbounded.
	MinCount int
	MaxCount *int
}

// NewProperty returns a property with no domain or range knowledge.
func NewProperty(uri string) Property {
	return Property{Resource: NewEntity(uri, "", "", "owl:Property")}
}

// Key identifies the edge by its two ends and the predicate, with "unknown"
// standing in for a missing domain or range. Two discoveries of the same
// predicate between the same classes yield the same key.
func (p Property) Key() string {
	domain, rng := "unknown", "unknown"
	if p.Domain != nil {
		domain = p.Domain.URI
	}
	if p.Range != nil {
		rng = p.Range.URI
	}
	return domain + "-" + p.URI + "-" + rng
}

// Mandatory reports whether at least one value is required.
func (p Property) Mandatory() bool {
	return p.MinCount != 0
}

// ToMap returns the plain key-value form used for persistence.
func (p Property) ToMap(prefix string) map[string]interface{} {
	m := map[string]interface{}{
		prefix + "uri":     p.URI,
		prefix + "label":   p.Label,
		prefix + "comment": p.Comment,
	}
	if p.Domain != nil {
		m[prefix+"domain"] = p.Domain.ToMap(prefix)
	}
	if p.Range != nil {
		m[prefix+"range"] = p.Range.ToMap(prefix)
	}
	if p.CardOf != nil {
		m[prefix+"card_of"] = p.CardOf.ToMap(prefix)
	}
	if p.Order != nil {
		m[prefix+"order"] = *p.Order
	}
	if p.MinCount != 0 {
		m[prefix+"min_count"] = p.MinCount
	}
	if p.MaxCount != nil {
		m[prefix+"max_count"] = *p.MaxCount
	}
	return m
}

// PropertyFromMap rebuilds a property from its persistence form.
func PropertyFromMap(m map[string]interface{}, prefix string) Property {
	p := NewProperty(stringAt(m, prefix+"uri"))
	p.Label = stringAt(m, prefix+"label")
	p.Comment = stringAt(m, prefix+"comment")
	if sub, ok := m[prefix+"domain"].(map[string]interface{}); ok {
		r := ResourceFromMap(sub, prefix)
		p.Domain = &r
	}
	if sub, ok := m[prefix+"range"].(map[string]interface{}); ok {
		r := ResourceFromMap(sub, prefix)
		p.Range = &r
	}
	if sub, ok := m[prefix+"card_of"].(map[string]interface{}); ok {
		r := ResourceFromMap(sub, prefix)
		p.CardOf = &r
	}
	if n, ok := intAt(m, prefix+"order"); ok {
		p.Order = &n
	}
	if n, ok := intAt(m, prefix+"min_count"); ok {
		p.MinCount = n
	}
	if n, ok := intAt(m, prefix+"max_count"); ok {
		p.MaxCount = &n
	}
	return p
}
