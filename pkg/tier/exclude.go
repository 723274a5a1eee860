// Copyright 2025 walteh LLC
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

package tier

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

var defaultExcludes = []string{
	".git",
	"node_modules",
	"dist",
	"build",
	".next",
	".venv",
	"venv",
	"__pycache__",
}

// DefaultExcludes returns a copy of the built-in excluded directory names
func DefaultExcludes() []string {
	return append([]string(nil), defaultExcludes...)
}

// 🚫 Excluder decides whether a root-relative path takes part in a scan
type Excluder struct {
	names map[string]struct{}
	globs []string
}

// NewExcluder builds an excluder from the default names plus extra names and
// doublestar patterns. Patterns are validated up front.
func NewExcluder(names []string, globs []string) (*Excluder, error) {
	set := make(map[string]struct{}, len(defaultExcludes)+len(names))
	for _, n := range defaultExcludes {
		set[n] = struct{}{}
	}
	for _, n := range names {
		if n == "" || strings.Contains(n, "/") {
			return nil, errors.Errorf("exclude name %q must be a single path segment", n)
		}
		set[n] = struct{}{}
	}
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return nil, errors.Errorf("invalid exclude glob %q", g)
		}
	}
	return &Excluder{names: set, globs: append([]string(nil), globs...)}, nil
}

// Excluded reports whether any slash-separated segment of rel equals an
// excluded name, or rel matches one of the glob patterns.
func (e *Excluder) Excluded(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if _, ok := e.names[seg]; ok {
			return true
		}
	}
	for _, g := range e.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}
