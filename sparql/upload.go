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
	"strings"

	"github.com/lod4hss-apps/graphly/clog"
)

// UploadChunkLines bounds the number of text lines in one bulk-upload request.
const UploadChunkLines = 10000

// UploadNquads stores an N-Quads document, split into line-count chunks and
// delegated chunk by chunk to the backend's upload primitive. Chunks are not
// a transaction.
func UploadNquads(ctx context.Context, b Backend, content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i += UploadChunkLines {
		end := i + UploadChunkLines
		if end > len(lines) {
			end = len(lines)
		}
		clog.Infof("uploading n-quads: %d / %d lines", i, len(lines))
		mUploadChunkLines.Observe(float64(end - i))
		if err := b.UploadNquadsChunk(ctx, strings.Join(lines[i:end], "\n")); err != nil {
			return err
		}
	}
	return nil
}

// UploadTurtle stores a Turtle document, optionally into a named graph. The
// @prefix header is extracted once and carried into every line-count chunk so
// each request is a valid document on its own.
func UploadTurtle(ctx context.Context, b Backend, content, graphURI string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	var header, triples []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "@prefix") {
			header = append(header, line)
		} else {
			triples = append(triples, line)
		}
	}
	head := strings.Join(header, "\n") + "\n"
	for i := 0; i < len(triples); i += UploadChunkLines {
		end := i + UploadChunkLines
		if end > len(triples) {
			end = len(triples)
		}
		clog.Infof("uploading turtle: %d / %d lines", i, len(triples))
		mUploadChunkLines.Observe(float64(end - i))
		if err := b.UploadTurtleChunk(ctx, head+strings.Join(triples[i:end], "\n"), graphURI); err != nil {
			return err
		}
	}
	return nil
}
