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

package config

import (
	"io"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// strictDecoder is a streaming decoder configured to reject unknown fields
type strictDecoder interface {
	Decode(v any) error
}

// decodeStrict decodes one document into a Config. An empty document yields
// an empty Config.
func decodeStrict(format string, dec strictDecoder) (*Config, error) {
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, errors.Errorf("parsing %s: %w", format, err)
	}
	return &cfg, nil
}

// hasExtension reports whether filename ends in one of exts, ignoring case
func hasExtension(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
