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
	"fmt"
	"strconv"
	"strings"
)

// Triple is a raw subject-predicate-object tuple. Terms may be full URIs,
// compact URIs, variables or literal values; Prepare classifies them when the
// triple is rendered into query text.
type Triple struct {
	Subject   interface{}
	Predicate interface{}
	Object    interface{}
}

// T is shorthand for building a Triple.
func T(s, p, o interface{}) Triple {
	return Triple{Subject: s, Predicate: p, Object: o}
}

// Prepare classifies a term and renders it into valid query syntax. The
// precedence order is fixed:
//
//  1. nil or empty string: empty result (pass-through for optional terms)
//  2. the "a" keyword: unchanged
//  3. numeric values (typed or numeric-looking strings): unquoted
//  4. variables (leading "?"): unchanged
//  5. full URIs (leading "http"): wrapped in angle brackets
//  6. compact URIs whose prefix is in shorts: unchanged
//  7. anything else: wrapped in single quotes as a string literal
//
// The "http" test runs before the prefix lookup so that a full URI is never
// mistaken for a compact one; "http" itself must never be registered as a
// prefix short name.
func Prepare(v interface{}, shorts []string) string {
	var s string
	switch n := v.(type) {
	case nil:
		return ""
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case string:
		s = n
	default:
		s = fmt.Sprint(v)
	}
	if s == "" {
		return ""
	}
	if s == "a" {
		return s
	}
	if isNumeric(s) {
		return s
	}
	if strings.HasPrefix(s, "?") {
		return s
	}
	// No "://" so that https is covered by the same test.
	if strings.HasPrefix(s, "http") {
		return "<" + s + ">"
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		pref := s[:i]
		for _, short := range shorts {
			if short == pref {
				return s
			}
		}
	}
	return "'" + s + "'"
}

func isNumeric(s string) bool {
	switch s[0] {
	case '+', '-', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
	default:
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// PrepareTriple renders a triple as a single N-Triples-shaped pattern line.
func PrepareTriple(t Triple, shorts []string) string {
	return fmt.Sprintf("%s %s %s .",
		Prepare(t.Subject, shorts),
		Prepare(t.Predicate, shorts),
		Prepare(t.Object, shorts))
}
