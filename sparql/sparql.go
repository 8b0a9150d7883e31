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

// Package sparql talks to remote SPARQL endpoints. A Backend issues
// protocol-correct requests for one triple-store dialect; the free functions
// (Run, Insert, Delete, UploadNquads, UploadTurtle) implement the shared
// engine on top of any Backend.
package sparql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/lod4hss-apps/graphly/voc"
)

var (
	// ErrBackendNotRegistered is returned when a technology name has no
	// registered backend constructor.
	ErrBackendNotRegistered = errors.New("sparql: backend is not registered")
)

// RequestError reports a non-2xx response from the endpoint.
type RequestError struct {
	Status     string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %d %v", e.StatusCode, e.Status)
}

// NotSupportedError reports an operation the backend does not implement.
// It signals a missing dialect override, not a transient failure.
type NotSupportedError struct {
	Technology string
	Op         string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("sparql: %s not implemented for %s", e.Op, e.Technology)
}

// Backend issues protocol-correct requests for one triple-store dialect.
// Implementations decide endpoint paths, request parameters and upload
// addressing; the engine decides what to send and how to decode it.
type Backend interface {
	// Technology returns the registered dialect name.
	Technology() string
	// ExecuteQuery sends a read query and returns the raw response body.
	ExecuteQuery(ctx context.Context, text string) (string, error)
	// ExecuteUpdate sends an update and returns the raw response body.
	ExecuteUpdate(ctx context.Context, text string) (string, error)
	// UploadNquadsChunk stores one chunk of N-Quads text.
	UploadNquadsChunk(ctx context.Context, content string) error
	// UploadTurtleChunk stores one chunk of Turtle text, optionally into a
	// named graph.
	UploadTurtleChunk(ctx context.Context, content, graphURI string) error
	// DumpAll returns the whole dataset as N-Quads text.
	DumpAll(ctx context.Context) (string, error)
}

// prefixRequirer is implemented by backends that need extra PREFIX
// declarations injected into every query.
type prefixRequirer interface {
	RequiredPrefixes() []voc.Prefix
}

// preDeleter is implemented by backends that must delete triples before
// inserting them to guarantee uniqueness.
type preDeleter interface {
	deleteBeforeInsert() bool
}

// NewBackendFunc constructs a backend bound to an endpoint URL.
type NewBackendFunc func(url, username, password, name string) Backend

var backendRegistry = make(map[string]NewBackendFunc)

// Register makes a backend constructor available under a technology name.
func Register(technology string, fn NewBackendFunc) {
	if fn == nil {
		panic("sparql: NewBackendFunc must not be nil")
	}
	if _, found := backendRegistry[technology]; found {
		panic(fmt.Sprintf("sparql: already registered backend %q", technology))
	}
	backendRegistry[technology] = fn
}

// New constructs a backend for the given technology name.
func New(technology, url, username, password, name string) (Backend, error) {
	fn, ok := backendRegistry[technology]
	if !ok {
		return nil, ErrBackendNotRegistered
	}
	return fn(url, username, password, name), nil
}

// IsRegistered reports whether a technology name has a backend constructor.
func IsRegistered(technology string) bool {
	_, ok := backendRegistry[technology]
	return ok
}

// Technologies lists the registered technology names.
func Technologies() []string {
	t := make([]string, 0, len(backendRegistry))
	for n := range backendRegistry {
		t = append(t, n)
	}
	sort.Strings(t)
	return t
}

// FromMap rebuilds a backend from its configuration form
// ({technology, url, username, password, name}).
func FromMap(m map[string]string) (Backend, error) {
	return New(m["technology"], m["url"], m["username"], m["password"], m["name"])
}

// ToMap returns the plain key-value form used for configuration persistence.
func ToMap(b Backend) map[string]string {
	if e, ok := b.(interface{ Map() map[string]string }); ok {
		return e.Map()
	}
	return map[string]string{"technology": b.Technology()}
}
