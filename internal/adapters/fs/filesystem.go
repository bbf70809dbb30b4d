// Package fs provides the file system adapters: path canonicalization, stat lookups and path hashing.
package fs

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/cachet/internal/core/ports"
)

var _ ports.Filesystem = (*Filesystem)(nil)

// Filesystem implements ports.Filesystem on top of an afero.Fs.
type Filesystem struct {
	fs afero.Fs
}

// NewFilesystem creates a Filesystem backed by fs.
func NewFilesystem(fs afero.Fs) *Filesystem {
	return &Filesystem{fs: fs}
}

// Canonicalize returns the absolute, symlink-resolved form of path and whether it exists.
// Symlinks are only resolved on the OS file system. When path does not exist the cleaned
// absolute path is returned with false.
func (f *Filesystem) Canonicalize(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path), false
	}

	if _, ok := f.fs.(*afero.OsFs); ok {
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return abs, false
		}
		return resolved, true
	}

	if _, err := f.fs.Stat(abs); err != nil {
		return abs, false
	}
	return abs, true
}

// IsRegularFile reports whether path exists and is a regular file.
func (f *Filesystem) IsRegularFile(path string) bool {
	info, err := f.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Exists reports whether path exists.
func (f *Filesystem) Exists(path string) bool {
	ok, err := afero.Exists(f.fs, path)
	return err == nil && ok
}

// ModTime returns the modification time of path in epoch milliseconds.
func (f *Filesystem) ModTime(path string) (int64, bool) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return 0, false
	}
	return info.ModTime().UnixMilli(), true
}
