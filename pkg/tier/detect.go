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
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/unicode"
)

// HeadSize is the number of leading bytes searched for a marker
const HeadSize = 4096

// markerPattern captures the tier named by the first "@byt3-tier <TIER>" marker
var markerPattern = regexp.MustCompile(`(?i)@byt3-tier\s+(HOT|WARM|COLD)`)

var defaultExtensions = []string{
	".md", ".txt",
	".py", ".js", ".ts", ".tsx", ".jsx",
	".json", ".yaml", ".yml", ".toml",
	".ps1", ".sh", ".bat", ".cmd",
}

// DefaultExtensions returns a copy of the built-in text extension allow-list
func DefaultExtensions() []string {
	return append([]string(nil), defaultExtensions...)
}

// 📄 Detector reads the head of allow-listed text files looking for a marker
type Detector struct {
	extensions map[string]struct{}
}

// NewDetector builds a detector from the default allow-list plus any extra
// extensions. Extra extensions are expected to be normalized (".ext", lowercase).
func NewDetector(extra ...string) *Detector {
	exts := make(map[string]struct{}, len(defaultExtensions)+len(extra))
	for _, e := range defaultExtensions {
		exts[e] = struct{}{}
	}
	for _, e := range extra {
		exts[e] = struct{}{}
	}
	return &Detector{extensions: exts}
}

// Allowed reports whether the file extension is in the allow-list
func (d *Detector) Allowed(path string) bool {
	_, ok := d.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// 🔍 Detect returns the tier declared in the first HeadSize bytes of path.
// Files outside the allow-list are never opened. Read failures yield None.
func (d *Detector) Detect(ctx context.Context, fs billy.Filesystem, path string) Tier {
	if !d.Allowed(path) {
		return None
	}

	f, err := fs.Open(path)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("skipping unreadable file")
		return None
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, HeadSize))
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("skipping unreadable file")
		return None
	}

	return Match(Decode(head))
}

// Match returns the tier of the first marker in text, or None
func Match(text string) Tier {
	m := markerPattern.FindStringSubmatch(text)
	if m == nil {
		return None
	}
	return Tier(strings.ToUpper(m[1]))
}

// Decode converts raw bytes to text, replacing invalid UTF-8 sequences
func Decode(data []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		// unreachable for UTF-8, which replaces invalid input
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}
