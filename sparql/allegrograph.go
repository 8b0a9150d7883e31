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
	"net/url"

	"github.com/lod4hss-apps/graphly/voc"
)

func init() {
	Register("allegrograph", func(url, username, password, name string) Backend {
		return NewAllegrograph(url, username, password, name)
	})
}

// franzDatasetBehavior makes AllegroGraph treat the default graph the way
// other stores do. It rides along as a pseudo PREFIX declaration.
var franzDatasetBehavior = voc.Prefix{
	Short: "franzOption_defaultDatasetBehavior",
	Long:  "franz:rdf",
}

// Allegrograph speaks to an AllegroGraph repository. Queries and updates go
// through the single endpoint like Generic; bulk uploads use the repository's
// statements service.
type Allegrograph struct {
	*Generic
}

// NewAllegrograph returns a backend for an AllegroGraph repository endpoint.
func NewAllegrograph(url, username, password, name string) *Allegrograph {
	return &Allegrograph{Generic: newGenericAs("allegrograph", url, username, password, name)}
}

func (a *Allegrograph) RequiredPrefixes() []voc.Prefix {
	return []voc.Prefix{franzDatasetBehavior}
}

// deleteBeforeInsert is set: the store may be configured to keep duplicate
// triples, so inserts delete their triples first to guarantee uniqueness.
func (a *Allegrograph) deleteBeforeInsert() bool { return true }

func (a *Allegrograph) UploadNquadsChunk(ctx context.Context, content string) error {
	_, err := a.post(ctx, a.statementsURL(), "application/n-quads", content)
	return err
}

func (a *Allegrograph) UploadTurtleChunk(ctx context.Context, content, graphURI string) error {
	target := a.statementsURL()
	if graphURI != "" {
		target += "?context=" + url.QueryEscape(Prepare(graphURI, nil))
	}
	_, err := a.post(ctx, target, "text/turtle", content)
	return err
}
