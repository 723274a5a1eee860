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

package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/context-tiers/pkg/tier"
)

// 🧪 writeTree creates files under dir from a map of relative path to content
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel).WithContext(context.Background())
}

func scanDir(t *testing.T, dir string, opts Options) *Result {
	t.Helper()
	s, err := New(osfs.New(dir), opts)
	require.NoError(t, err)
	res, err := s.Scan(testContext(t))
	require.NoError(t, err)
	return res
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"README.md":                  "# readme\n@byt3-tier HOT\n",
		"docs/runbook.md":            "<!-- @byt3-tier hot -->",
		"docs/history.txt":           "@Byt3-Tier Warm",
		"scripts/old.sh":             "# @byt3-tier COLD",
		"src/main.go":                "// @byt3-tier HOT",
		"src/util.py":                "print('no marker')",
		"node_modules/pkg/readme.md": "@byt3-tier HOT",
		"a/b/.git/notes.md":          "@byt3-tier HOT",
		"web/dist/bundle.js":         "// @byt3-tier WARM",
		"big.md":                     strings.Repeat(".", 4100) + "@byt3-tier HOT",
	})

	res := scanDir(t, dir, Options{})

	assert.Equal(t, []string{"README.md", "docs/runbook.md"}, res.Sorted(tier.Hot))
	assert.Equal(t, []string{"docs/history.txt"}, res.Sorted(tier.Warm))
	assert.Equal(t, []string{"scripts/old.sh"}, res.Sorted(tier.Cold))
	assert.ElementsMatch(t, []string{"src/main.go", "src/util.py", "big.md"}, res.Unmarked())
	assert.Equal(t, 7, res.Total(), "excluded files must not be counted")
}

func TestScanEveryFileInExactlyOneBucket(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.md":     "@byt3-tier HOT",
		"b.md":     "@byt3-tier WARM @byt3-tier COLD",
		"c.txt":    "",
		"d/e.yaml": "# @byt3-tier cold",
		"d/f.bin":  "@byt3-tier HOT",
	})

	res := scanDir(t, dir, Options{})

	seen := map[string]int{}
	for _, tr := range tier.All() {
		for _, f := range res.Files(tr) {
			seen[f]++
		}
	}
	for _, f := range res.Unmarked() {
		seen[f]++
	}

	assert.Len(t, seen, 5)
	for f, n := range seen {
		assert.Equal(t, 1, n, "file %s appears in %d buckets", f, n)
	}
	assert.Equal(t, []string{"b.md"}, res.Files(tier.Warm), "first marker wins")
}

func TestScanExcludedFilesAreNeverOpened(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"keep.md": "@byt3-tier HOT",
	})
	// an unreadable directory under an excluded name would fail the walk if entered
	locked := filepath.Join(dir, "deep", "venv", "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "x.md"), []byte("@byt3-tier HOT"), 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	res := scanDir(t, dir, Options{})
	assert.Equal(t, []string{"keep.md"}, res.Files(tier.Hot))
	assert.Equal(t, 1, res.Total())
}

func TestScanUnreadableSubdirectoryIsSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"keep.md":        "@byt3-tier WARM",
		"private/a.md":   "@byt3-tier HOT",
		"private/b/c.md": "@byt3-tier HOT",
	})
	private := filepath.Join(dir, "private")
	require.NoError(t, os.Chmod(private, 0o000))
	t.Cleanup(func() { _ = os.Chmod(private, 0o755) })

	res := scanDir(t, dir, Options{})
	assert.Equal(t, []string{"keep.md"}, res.Files(tier.Warm))
	assert.Empty(t, res.Files(tier.Hot))
}

func TestScanOptions(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"out/bundle/a.md":          "@byt3-tier HOT",
		"vendor/lib.md":            "@byt3-tier HOT",
		"docs/api.generated.md":    "@byt3-tier HOT",
		"docs/guide.md":            "@byt3-tier HOT",
		"cmd/tool/main.go":         "// @byt3-tier WARM",
		"cmd/tool/main_test.go.md": "@byt3-tier COLD",
	})

	excluder, err := tier.NewExcluder([]string{"vendor"}, []string{"**/*.generated.md"})
	require.NoError(t, err)

	res := scanDir(t, dir, Options{
		Excluder: excluder,
		Detector: tier.NewDetector(".go"),
		Skip:     []string{"out/bundle"},
	})

	assert.Equal(t, []string{"docs/guide.md"}, res.Sorted(tier.Hot))
	assert.Equal(t, []string{"cmd/tool/main.go"}, res.Sorted(tier.Warm))
	assert.Equal(t, []string{"cmd/tool/main_test.go.md"}, res.Sorted(tier.Cold))
}

func TestScanSymlinks(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()
	writeTree(t, dir, map[string]string{
		"real.md":        "@byt3-tier HOT",
		"shared/doc.md":  "@byt3-tier WARM",
		"shared/note.md": "plain",
	})
	writeTree(t, outside, map[string]string{"elsewhere.md": "@byt3-tier COLD"})

	links := map[string]string{
		"link.md":      filepath.Join(dir, "real.md"),
		"remote.md":    filepath.Join(outside, "elsewhere.md"),
		"dangling.md":  filepath.Join(dir, "missing.md"),
		"shared-link":  filepath.Join(dir, "shared"),
		"loop/self.md": filepath.Join(dir, "loop"),
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "loop"), 0o755))
	for name, target := range links {
		if err := os.Symlink(target, filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}
	}

	res := scanDir(t, dir, Options{})
	assert.Equal(t, []string{"link.md", "real.md"}, res.Sorted(tier.Hot), "file symlinks are classified by their target")
	assert.Equal(t, []string{"remote.md"}, res.Sorted(tier.Cold), "targets outside the root are followed")
	assert.Equal(t, []string{"shared/doc.md"}, res.Sorted(tier.Warm), "directory symlinks are not descended into")
	assert.ElementsMatch(t, []string{"shared/note.md"}, res.Unmarked(), "dangling and directory symlinks are not classified")
}

func TestScanRootErrors(t *testing.T) {
	t.Run("missing_root", func(t *testing.T) {
		s, err := New(osfs.New(filepath.Join(t.TempDir(), "missing")), Options{})
		require.NoError(t, err)

		_, err = s.Scan(testContext(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading root")
	})

	t.Run("root_is_a_file", func(t *testing.T) {
		dir := t.TempDir()
		writeTree(t, dir, map[string]string{"file.md": "@byt3-tier HOT"})
		s, err := New(osfs.New(filepath.Join(dir, "file.md")), Options{})
		require.NoError(t, err)

		_, err = s.Scan(testContext(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("nil_filesystem", func(t *testing.T) {
		_, err := New(nil, Options{})
		require.Error(t, err)
	})
}

func TestScanSymlinkedRoot(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.md":     "@byt3-tier HOT",
		"sub/b.md": "@byt3-tier HOT",
	})
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(dir, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	res := scanDir(t, link, Options{})
	assert.Equal(t, []string{"a.md", "sub/b.md"}, res.Sorted(tier.Hot))
}

func TestScanIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.md": "@byt3-tier HOT",
		"b.md": "@byt3-tier COLD",
		"c.md": "plain",
	})

	first := scanDir(t, dir, Options{})
	second := scanDir(t, dir, Options{})
	for _, tr := range tier.All() {
		assert.Equal(t, first.Sorted(tr), second.Sorted(tr))
	}
	assert.Equal(t, first.Unmarked(), second.Unmarked())
}
