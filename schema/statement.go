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

// Statement is one model-level triple: two resources joined by a property.
type Statement struct {
	Subject   Resource
	Predicate Property
	Object    Resource
}

// ToMap returns the plain key-value form used for persistence.
func (s Statement) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"subject":   s.Subject.ToMap(""),
		"predicate": s.Predicate.ToMap(""),
		"object":    s.Object.ToMap(""),
	}
}

// StatementFromMap rebuilds a statement from its persistence form.
func StatementFromMap(m map[string]interface{}) Statement {
	var s Statement
	if sub, ok := m["subject"].(map[string]interface{}); ok {
		s.Subject = ResourceFromMap(sub, "")
	}
	if sub, ok := m["predicate"].(map[string]interface{}); ok {
		s.Predicate = PropertyFromMap(sub, "")
	}
	if sub, ok := m["object"].(map[string]interface{}); ok {
		s.Object = ResourceFromMap(sub, "")
	}
	return s
}
