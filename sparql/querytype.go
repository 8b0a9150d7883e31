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
	"regexp"
	"strings"
)

// QueryType is the main operation of a SPARQL text, used to route traffic
// between query and update endpoints. It is a keyword sniff, not a parse.
type QueryType string

const (
	QuerySelect    QueryType = "SELECT"
	QueryConstruct QueryType = "CONSTRUCT"
	QueryInsert    QueryType = "INSERT"
	QueryDelete    QueryType = "DELETE"
	QueryClear     QueryType = "CLEAR"
	QueryOther     QueryType = "OTHER"
)

// IsUpdate reports whether the operation belongs on the update endpoint.
// Unknown keywords are conservatively treated as updates.
func (t QueryType) IsUpdate() bool {
	return t != QuerySelect && t != QueryConstruct
}

var (
	reLeadingComments = regexp.MustCompile(`^(?:\s*#[^\n]*\n)*`)
	rePrefixDecls     = regexp.MustCompile(`(?i)^(?:\s*PREFIX\s+\w*:\s*<[^>]*>\s*)*`)
	reFirstWord       = regexp.MustCompile(`^\s*(\w+)`)
)

// QueryTypeOf classifies a SPARQL text by its first keyword, skipping leading
// whitespace, comment lines and PREFIX declarations.
func QueryTypeOf(query string) QueryType {
	q := strings.TrimLeft(query, " \t\r\n")
	q = reLeadingComments.ReplaceAllString(q, "")
	q = rePrefixDecls.ReplaceAllString(q, "")
	if m := reFirstWord.FindStringSubmatch(q); m != nil {
		switch kw := QueryType(strings.ToUpper(m[1])); kw {
		case QuerySelect, QueryConstruct, QueryInsert, QueryDelete, QueryClear:
			return kw
		}
	}
	return QueryOther
}
