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

// Package scan walks a directory tree and sorts its files into tier buckets.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/walteh/context-tiers/pkg/tier"
	"gitlab.com/tozd/go/errors"
)

// 📦 Result partitions scanned files into tier buckets and an unmarked list.
// Paths are root-relative and slash-separated.
type Result struct {
	tiers    map[tier.Tier][]string
	unmarked []string
}

func newResult() *Result {
	r := &Result{tiers: make(map[tier.Tier][]string, 3)}
	for _, t := range tier.All() {
		r.tiers[t] = nil
	}
	return r
}

func (r *Result) add(path string, t tier.Tier) {
	if t == tier.None {
		r.unmarked = append(r.unmarked, path)
		return
	}
	r.tiers[t] = append(r.tiers[t], path)
}

// Files returns the files classified as t in enumeration order
func (r *Result) Files(t tier.Tier) []string {
	return append([]string(nil), r.tiers[t]...)
}

// Sorted returns the files classified as t in lexicographic order
func (r *Result) Sorted(t tier.Tier) []string {
	files := r.Files(t)
	sort.Strings(files)
	return files
}

// Unmarked returns the scanned files that carry no marker
func (r *Result) Unmarked() []string {
	return append([]string(nil), r.unmarked...)
}

// Total is the number of scanned files across all buckets
func (r *Result) Total() int {
	n := len(r.unmarked)
	for _, files := range r.tiers {
		n += len(files)
	}
	return n
}

// 🔧 Options configures a Scanner
type Options struct {
	Excluder *tier.Excluder
	Detector *tier.Detector
	// Skip lists root-relative directories pruned in addition to the excluder
	Skip []string
}

// 🔍 Scanner walks a tree once and classifies every regular file
type Scanner struct {
	fs       billy.Filesystem
	excluder *tier.Excluder
	detector *tier.Detector
	skip     map[string]struct{}
}

// New creates a scanner rooted at the top of fs
func New(fs billy.Filesystem, opts Options) (*Scanner, error) {
	if fs == nil {
		return nil, errors.Errorf("filesystem is required")
	}

	excluder := opts.Excluder
	if excluder == nil {
		var err error
		if excluder, err = tier.NewExcluder(nil, nil); err != nil {
			return nil, errors.Errorf("creating default excluder: %w", err)
		}
	}

	detector := opts.Detector
	if detector == nil {
		detector = tier.NewDetector()
	}

	skip := make(map[string]struct{}, len(opts.Skip))
	for _, s := range opts.Skip {
		skip[filepath.ToSlash(filepath.Clean(s))] = struct{}{}
	}

	return &Scanner{
		fs:       fs,
		excluder: excluder,
		detector: detector,
		skip:     skip,
	}, nil
}

// 🏃 Scan walks the tree. Only a failure to read the root is returned;
// unreadable entries below it are logged and skipped. The root itself may be a
// symlink to a directory; symlinks below it are classified by their target when
// it is a regular file and never descended into.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	result := newResult()

	info, err := s.fs.Stat(".")
	if err != nil {
		return nil, errors.Errorf("reading root: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("reading root: not a directory")
	}

	entries, err := s.fs.ReadDir(".")
	if err != nil {
		return nil, errors.Errorf("reading root: %w", err)
	}

	visit := func(path string, info os.FileInfo, walkErr error) error {
		rel := filepath.ToSlash(path)

		if walkErr != nil {
			logger.Debug().Err(walkErr).Str("path", rel).Msg("skipping unreadable entry")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if _, ok := s.skip[rel]; ok || s.excluder.Excluded(rel) {
				logger.Debug().Str("dir", rel).Msg("pruning directory")
				return filepath.SkipDir
			}
			return nil
		}

		if s.excluder.Excluded(rel) || !s.regular(ctx, path, info) {
			return nil
		}

		t := s.detector.Detect(ctx, s.fs, path)
		logger.Trace().Str("path", rel).Stringer("tier", t).Msg("classified file")
		result.add(rel, t)
		return nil
	}

	for _, entry := range entries {
		if err := util.Walk(s.fs, entry.Name(), visit); err != nil {
			return nil, errors.Errorf("walking tree: %w", err)
		}
	}

	logger.Debug().Int("files", result.Total()).Int("unmarked", len(result.unmarked)).Msg("scan complete")
	return result, nil
}

// regular reports whether path is a regular file, following a symlink to its target
func (s *Scanner) regular(ctx context.Context, path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.Mode().IsRegular()
	}

	target, err := s.fs.Stat(path)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("skipping dangling symlink")
		return false
	}
	return target.Mode().IsRegular()
}
