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

package operation

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"github.com/walteh/context-tiers/pkg/log"
	"github.com/walteh/context-tiers/pkg/scan"
	"github.com/walteh/context-tiers/pkg/tier"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the reporting operations over a tree. Every call runs a
// fresh scan; nothing is cached between calls.
type Operator interface {
	// Status computes per-tier file, byte and token totals
	Status(ctx context.Context) (*StatusReport, error)
	// List returns the sorted root-relative paths of files in a tier
	List(ctx context.Context, t tier.Tier) ([]string, error)
	// Bundle copies every file in a tier to the same relative path under out
	Bundle(ctx context.Context, t tier.Tier, out string) (*BundleResult, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Root is the absolute tree root, used for reports and to locate bundle output
	Root string
	// Source is the filesystem scanned; defaults to an OS filesystem at Root
	Source billy.Filesystem
	// Excluder and Detector default to the built-in configuration when nil
	Excluder *tier.Excluder
	Detector *tier.Detector
	// Destination opens the bundle output directory; defaults to NewLocalFS
	Destination func(out string) billy.Filesystem
	// Console receives one line per copied file when set
	Console *log.Logger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Root == "" {
		return nil, errors.Errorf("root is required")
	}
	root, err := resolvePath(opts.Root)
	if err != nil {
		return nil, errors.Errorf("resolving root: %w", err)
	}

	if opts.Source == nil {
		opts.Source = NewLocalFS(root)
	}
	if opts.Destination == nil {
		opts.Destination = NewLocalFS
	}
	if opts.Excluder == nil {
		if opts.Excluder, err = tier.NewExcluder(nil, nil); err != nil {
			return nil, errors.Errorf("creating excluder: %w", err)
		}
	}
	if opts.Detector == nil {
		opts.Detector = tier.NewDetector()
	}

	return &operator{
		root:        root,
		source:      opts.Source,
		excluder:    opts.Excluder,
		detector:    opts.Detector,
		destination: opts.Destination,
		console:     opts.Console,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	root        string
	source      billy.Filesystem
	excluder    *tier.Excluder
	detector    *tier.Detector
	destination func(out string) billy.Filesystem
	console     *log.Logger
}

// scan runs a fresh scan, pruning any extra root-relative directories
func (op *operator) scan(ctx context.Context, skip ...string) (*scan.Result, error) {
	s, err := scan.New(op.source, scan.Options{
		Excluder: op.excluder,
		Detector: op.detector,
		Skip:     skip,
	})
	if err != nil {
		return nil, errors.Errorf("creating scanner: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("root", op.root).Msg("scanning tree")
	res, err := s.Scan(ctx)
	if err != nil {
		return nil, errors.Errorf("scanning %s: %w", op.root, err)
	}
	return res, nil
}

// 📋 List returns the files of a tier in lexicographic order
func (op *operator) List(ctx context.Context, t tier.Tier) ([]string, error) {
	if !t.Valid() {
		return nil, errors.WithDetails(tier.ErrInvalidTier, "tier", string(t))
	}

	res, err := op.scan(ctx)
	if err != nil {
		return nil, err
	}
	return res.Sorted(t), nil
}

// resolvePath makes p absolute and resolves symlinks in its longest existing
// prefix, so directories that are not created yet still compare correctly
func resolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}

	dir, rest := abs, ""
	for {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(resolved, rest), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		rest = filepath.Join(filepath.Base(dir), rest)
		dir = parent
	}
}

// relToRoot returns the root-relative slash path of dir. ok is false when dir
// lies outside the root.
func (op *operator) relToRoot(dir string) (rel string, ok bool) {
	abs, err := resolvePath(dir)
	if err != nil {
		return "", false
	}
	rel, err = filepath.Rel(op.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
