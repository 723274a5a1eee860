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

// Package log prints user-facing console lines and mirrors them to zerolog.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 40 // Base width for filename
	tierWidth  = 6  // Width for tier label
)

// 🎯 FileOperation represents a file operation for logging
type FileOperation struct {
	Path   string // Root-relative file path
	Tier   string // Tier label (HOT/WARM/COLD)
	Status string // Operation status
}

// 🎯 Logger writes user-facing lines to a console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger writing to console
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// TierColor returns the display color of a tier label
func TierColor(tier string) *color.Color {
	switch tier {
	case "HOT":
		return color.New(color.FgRed, color.Bold)
	case "WARM":
		return color.New(color.FgYellow)
	case "COLD":
		return color.New(color.FgCyan)
	default:
		return color.New(color.Faint)
	}
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(color.FgGreen).Sprint("✓"),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		TierColor(op.Tier).Sprint(fmt.Sprintf("%-*s", tierWidth, op.Tier)),
		op.Status)
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	l.zlog.Debug().
		Str("file", op.Path).
		Str("tier", op.Tier).
		Str("status", op.Status).
		Msg("file operation")
}

// ❌ Fail prints a fatal problem with its cause; the zerolog mirror is debug only
func (l *Logger) Fail(description string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	printer := pterm.Error.WithWriter(l.console).WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.Error.Prefix.Style})
	if err != nil {
		printer.Printfln("%s: %v", description, err)
		l.zlog.Debug().Err(err).Msg(description)
		return
	}
	printer.Println(description)
	l.zlog.Debug().Msg(description)
}
