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
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/context-tiers/pkg/tier"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultFile is the config file looked up when no --config is given
	DefaultFile = ".context-tiers.yaml"
	// DefaultOut is the bundle output directory when none is configured
	DefaultOut = ".tmp_hot"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config extends the built-in scan settings. Defaults are only ever added
// to, never removed.
type Config struct {
	Exclude      []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`             // Extra excluded directory names
	ExcludeGlobs []string `json:"exclude_globs,omitempty" yaml:"exclude_globs,omitempty"` // Doublestar patterns on root-relative paths
	Extensions   []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`       // Extra text extensions to inspect
	Out          string   `json:"out,omitempty" yaml:"out,omitempty"`                     // Default bundle directory
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{Out: DefaultOut}
}

// 🎯 Load loads the configuration from path. A missing file yields the
// defaults unless required is set.
func Load(ctx context.Context, path string, required bool) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Bool("required", required).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return Default(), nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and normalizes extensions to ".ext"
func (cfg *Config) Validate() error {
	for _, name := range cfg.Exclude {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) {
			return errors.Errorf("exclude %q must be a single directory name", name)
		}
	}

	for _, g := range cfg.ExcludeGlobs {
		if !doublestar.ValidatePattern(g) {
			return errors.Errorf("exclude_globs: invalid pattern %q", g)
		}
	}

	for i, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." || strings.ContainsAny(ext, `/\`) {
			return errors.Errorf("extensions: invalid extension %q", cfg.Extensions[i])
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Extensions[i] = ext
	}

	// Set defaults
	if cfg.Out == "" {
		cfg.Out = DefaultOut
	}

	return nil
}

// Excluder builds the exclusion filter for this configuration
func (cfg *Config) Excluder() (*tier.Excluder, error) {
	return tier.NewExcluder(cfg.Exclude, cfg.ExcludeGlobs)
}

// Detector builds the tier detector for this configuration
func (cfg *Config) Detector() *tier.Detector {
	return tier.NewDetector(cfg.Extensions...)
}
