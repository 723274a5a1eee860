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
	"io"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"github.com/walteh/context-tiers/pkg/log"
	"github.com/walteh/context-tiers/pkg/tier"
	"gitlab.com/tozd/go/errors"
)

// 📦 BundleResult describes a completed bundle
type BundleResult struct {
	Tier  tier.Tier
	Out   string   // output directory as requested
	Files []string // root-relative paths copied, in scan order
}

// 📦 Bundle copies every file of t to the same relative path under out.
// Existing files are overwritten. A failed copy aborts the bundle and leaves
// already-copied files in place.
func (op *operator) Bundle(ctx context.Context, t tier.Tier, out string) (*BundleResult, error) {
	logger := zerolog.Ctx(ctx)

	if !t.Valid() {
		return nil, errors.WithDetails(tier.ErrInvalidTier, "tier", string(t))
	}
	if out == "" {
		return nil, errors.Errorf("output directory is required")
	}

	// never classify earlier bundles written inside the tree
	var skip []string
	if rel, ok := op.relToRoot(out); ok {
		if rel == "." {
			return nil, errors.Errorf("output directory %s is the root %s", out, op.root)
		}
		skip = append(skip, rel)
	}

	res, err := op.scan(ctx, skip...)
	if err != nil {
		return nil, err
	}

	dst := op.destination(out)
	if err := dst.MkdirAll(".", 0o755); err != nil {
		return nil, errors.Errorf("creating output directory %s: %w", out, err)
	}

	result := &BundleResult{Tier: t, Out: out}
	for _, f := range res.Files(t) {
		if err := copyFile(op.source, dst, f); err != nil {
			return result, errors.Errorf("copying %s: %w", f, err)
		}
		result.Files = append(result.Files, f)

		logger.Debug().Str("file", f).Str("out", out).Msg("copied file")
		if op.console != nil {
			op.console.LogFileOperation(ctx, log.FileOperation{
				Path:   f,
				Tier:   t.String(),
				Status: "copied",
			})
		}
	}

	return result, nil
}

// copyFile copies name from src to dst, creating parent directories and
// carrying over the mode and modification time when dst supports it.
func copyFile(src, dst billy.Filesystem, name string) error {
	info, err := src.Stat(name)
	if err != nil {
		return errors.Errorf("stat source: %w", err)
	}

	if dir := path.Dir(name); dir != "." {
		if err := dst.MkdirAll(dir, 0o755); err != nil {
			return errors.Errorf("creating parent directories: %w", err)
		}
	}

	if existing, err := dst.Stat(name); err == nil && os.SameFile(info, existing) {
		return errors.Errorf("source and destination are the same file")
	}

	in, err := src.Open(name)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	outFile, err := dst.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination: %w", err)
	}

	if _, err := io.Copy(outFile, in); err != nil {
		outFile.Close()
		return errors.Errorf("writing destination: %w", err)
	}
	if err := outFile.Close(); err != nil {
		return errors.Errorf("closing destination: %w", err)
	}

	if ch, ok := dst.(billy.Change); ok {
		if err := ch.Chmod(name, info.Mode().Perm()); err != nil {
			return errors.Errorf("preserving mode: %w", err)
		}
		if err := ch.Chtimes(name, info.ModTime(), info.ModTime()); err != nil {
			return errors.Errorf("preserving modification time: %w", err)
		}
	}

	return nil
}
