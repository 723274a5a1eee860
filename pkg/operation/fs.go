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
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// 💾 localFS is an OS-backed filesystem rooted at a directory that can also
// change file metadata, so copies keep their source mode and times.
type localFS struct {
	billy.Filesystem
	root string
}

var _ billy.Change = (*localFS)(nil)

// NewLocalFS returns an OS filesystem rooted at root
func NewLocalFS(root string) billy.Filesystem {
	return &localFS{
		Filesystem: osfs.New(root),
		root:       root,
	}
}

func (fs *localFS) path(name string) string {
	return filepath.Join(fs.root, filepath.FromSlash(name))
}

func (fs *localFS) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(fs.path(name), mode)
}

func (fs *localFS) Lchown(name string, uid, gid int) error {
	return os.Lchown(fs.path(name), uid, gid)
}

func (fs *localFS) Chown(name string, uid, gid int) error {
	return os.Chown(fs.path(name), uid, gid)
}

func (fs *localFS) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return os.Chtimes(fs.path(name), atime, mtime)
}
