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

package status

import (
	"fmt"
	"io"

	"github.com/walteh/context-tiers/pkg/log"
	"github.com/walteh/context-tiers/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// StatusTip closes every status report
const StatusTip = "- Mark your always-relevant files as HOT (active tasks, current docs, runbooks)"

// Formatter defines how operation results are rendered
type Formatter interface {
	// FormatTierLine formats the totals of one tier
	FormatTierLine(s operation.TierStats) string

	// FormatBundle formats the summary of a finished bundle
	FormatBundle(r *operation.BundleResult) string
}

// DefaultFormatter provides the default text rendering
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatTierLine renders "- HOT: 2 files | ~1.2 KB | ~300 tokens"
func (f *DefaultFormatter) FormatTierLine(s operation.TierStats) string {
	label := log.TierColor(s.Tier.String()).Sprint(s.Tier.String())
	return fmt.Sprintf("- %s: %d files | ~%.1f KB | ~%d tokens", label, s.Files, s.KiB(), s.Tokens)
}

// FormatBundle renders "bundled 2 files to out"
func (f *DefaultFormatter) FormatBundle(r *operation.BundleResult) string {
	return fmt.Sprintf("bundled %d files to %s", len(r.Files), r.Out)
}

// 📊 WriteStatus writes the full status report: header, one line per tier and the tip
func WriteStatus(w io.Writer, f Formatter, r *operation.StatusReport) error {
	ew := &errWriter{w: w}
	ew.printf("repo: %s\n", r.Root)
	ew.printf("\nTier totals:\n")
	for _, s := range r.Tiers {
		ew.printf("%s\n", f.FormatTierLine(s))
	}
	ew.printf("\nTip:\n")
	ew.printf("%s\n", StatusTip)
	return ew.err
}

// 📋 WriteList writes one path per line
func WriteList(w io.Writer, files []string) error {
	ew := &errWriter{w: w}
	for _, file := range files {
		ew.printf("%s\n", file)
	}
	return ew.err
}

// 📦 WriteBundle writes the one-line bundle summary
func WriteBundle(w io.Writer, f Formatter, r *operation.BundleResult) error {
	ew := &errWriter{w: w}
	ew.printf("%s\n", f.FormatBundle(r))
	return ew.err
}

// errWriter keeps the first write error and drops later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	if _, err := fmt.Fprintf(e.w, format, args...); err != nil {
		e.err = errors.Errorf("writing output: %w", err)
	}
}
