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
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Endpoint holds the connection details shared by all backends and the HTTP
// mechanics to reach them. Requests fail with a *RequestError on any non-2xx
// status; there is no retry and no timeout beyond the HTTP client's own.
type Endpoint struct {
	technology string
	url        string
	username   string
	password   string
	name       string
	cli        *http.Client
}

// NewEndpoint returns connection details for a store reachable at url.
// Credentials are optional; an empty username disables basic auth.
func NewEndpoint(technology, url, username, password, name string) *Endpoint {
	return &Endpoint{
		technology: technology,
		url:        url,
		username:   username,
		password:   password,
		name:       name,
		cli:        http.DefaultClient,
	}
}

// Technology returns the dialect name this endpoint was built for.
func (e *Endpoint) Technology() string { return e.technology }

// URL returns the endpoint URL.
func (e *Endpoint) URL() string { return e.url }

// Name returns the configured display name of the connection.
func (e *Endpoint) Name() string { return e.name }

// SetHTTPClient replaces the HTTP client used for all requests.
func (e *Endpoint) SetHTTPClient(cli *http.Client) { e.cli = cli }

// Map returns the plain key-value form used for configuration persistence.
func (e *Endpoint) Map() map[string]string {
	return map[string]string{
		"technology": e.technology,
		"url":        e.url,
		"username":   e.username,
		"password":   e.password,
		"name":       e.name,
	}
}

// statementsURL is the Graph Store Protocol address of the store, with a
// trailing /sparql query path stripped if present.
func (e *Endpoint) statementsURL() string {
	return strings.TrimSuffix(e.url, "/sparql") + "/statements"
}

// postForm sends a form-encoded SPARQL request with the query text under the
// given parameter name.
func (e *Endpoint) postForm(ctx context.Context, suffix, param, text string) (string, error) {
	form := url.Values{}
	form.Set(param, text)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url+suffix, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")
	return e.do(req)
}

// post sends a raw request body, typically a serialization chunk.
func (e *Endpoint) post(ctx context.Context, rawurl, contentType, body string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawurl, strings.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	return e.do(req)
}

func (e *Endpoint) get(ctx context.Context, rawurl, accept string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return "", err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return e.do(req)
}

func (e *Endpoint) do(req *http.Request) (string, error) {
	if e.username != "" {
		req.SetBasicAuth(e.username, e.password)
	}
	resp, err := e.cli.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RequestError{Status: resp.Status, StatusCode: resp.StatusCode, Body: string(data)}
	}
	return string(data), nil
}
