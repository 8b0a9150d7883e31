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
	"strings"

	"github.com/lod4hss-apps/graphly/clog"
	"github.com/lod4hss-apps/graphly/voc"
)

// InsertChunkSize bounds the number of triples in one INSERT DATA request.
const InsertChunkSize = 5000

// Insert stores triples, optionally into a named graph. Large inputs are
// split into chunks of InsertChunkSize triples, one request each, executed
// sequentially. Chunks are not a transaction: a failure partway through
// leaves earlier chunks committed.
func Insert(ctx context.Context, b Backend, triples []Triple, graphURI string, prefixes *voc.Registry) error {
	if len(triples) == 0 {
		return nil
	}
	if pd, ok := b.(preDeleter); ok && pd.deleteBeforeInsert() {
		if err := Delete(ctx, b, triples, graphURI, prefixes); err != nil {
			return err
		}
	}
	begin, end := graphClause(graphURI, prefixes)
	for start := 0; start < len(triples); start += InsertChunkSize {
		stop := start + InsertChunkSize
		if stop > len(triples) {
			stop = len(triples)
		}
		chunk := triples[start:stop]
		mInsertBatch.Observe(float64(len(chunk)))
		if clog.V(2) {
			clog.Infof("insert: %d / %d triples", start, len(triples))
		}
		text := fmt.Sprintf("INSERT DATA {\n%s\n}", patternBlock(chunk, begin, end, prefixes))
		if _, _, err := Run(ctx, b, text, prefixes); err != nil {
			return fmt.Errorf("insert chunk at offset %d: %w", start, err)
		}
	}
	return nil
}

// Delete removes triples, optionally from a named graph, in a single
// DELETE WHERE request. Callers with very large deletions chunk manually.
func Delete(ctx context.Context, b Backend, triples []Triple, graphURI string, prefixes *voc.Registry) error {
	if len(triples) == 0 {
		return nil
	}
	begin, end := graphClause(graphURI, prefixes)
	text := fmt.Sprintf("DELETE WHERE {\n%s\n}", patternBlock(triples, begin, end, prefixes))
	_, _, err := Run(ctx, b, text, prefixes)
	return err
}

// graphClause derives the GRAPH wrapper fragments for a named graph; both
// fragments are empty for the default graph.
func graphClause(graphURI string, prefixes *voc.Registry) (begin, end string) {
	if graphURI == "" {
		return "", ""
	}
	return "GRAPH " + Prepare(graphURI, prefixes.Shorts()) + " {", "}"
}

func patternBlock(triples []Triple, begin, end string, prefixes *voc.Registry) string {
	shorts := prefixes.Shorts()
	var buf strings.Builder
	if begin != "" {
		buf.WriteString(begin)
		buf.WriteByte('\n')
	}
	for _, t := range triples {
		buf.WriteString(PrepareTriple(t, shorts))
		buf.WriteByte('\n')
	}
	buf.WriteString(end)
	return buf.String()
}
