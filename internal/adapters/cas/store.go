// Package cas implements the on-disk store for cache entries.
// Each entry is a content file and a JSON metadata file inside its namespace directory.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EntryStore = (*Store)(nil)

// Store implements ports.EntryStore on top of an afero.Fs.
type Store struct {
	fs afero.Fs
}

// NewStore creates a Store backed by fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Exists reports whether both files of the entry are present.
func (s *Store) Exists(keys domain.Keys) bool {
	return s.exists(keys.Content) && s.exists(keys.Meta)
}

func (s *Store) exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// Load reads the metadata record of an entry. A missing file yields nil without error.
func (s *Store) Load(keys domain.Keys) (*domain.Record, error) {
	data, err := afero.ReadFile(s.fs, keys.Meta)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", keys.Meta)
	}

	var rec domain.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", keys.Meta)
	}

	if rec.Deps == nil {
		rec.Deps = domain.Deps{}
	}
	if rec.MissingDeps == nil {
		rec.MissingDeps = domain.MissingDeps{}
	}

	return &rec, nil
}

// LoadContent reads the content file of an entry.
func (s *Store) LoadContent(keys domain.Keys) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, keys.Content)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", keys.Content)
	}
	return data, nil
}

// Save writes the metadata record and the content of an entry, creating the namespace
// directory if needed. Existing files are overwritten.
func (s *Store) Save(keys domain.Keys, rec *domain.Record, content []byte) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(keys.Meta)
	if err := s.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", dir)
	}

	if err := afero.WriteFile(s.fs, keys.Meta, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", keys.Meta)
	}

	if err := afero.WriteFile(s.fs, keys.Content, content, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", keys.Content)
	}

	return nil
}

// Evict removes dir and everything below it. It reports whether anything was removed.
func (s *Store) Evict(dir string) (bool, error) {
	if !s.exists(dir) {
		return false, nil
	}
	if err := s.fs.RemoveAll(dir); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "dir", dir)
	}
	return true, nil
}

// Usage walks dir and sums the sizes of the entry files found below it.
// A missing directory has zero usage.
func (s *Store) Usage(dir string) (domain.Usage, error) {
	var usage domain.Usage
	if !s.exists(dir) {
		return usage, nil
	}

	err := afero.Walk(s.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		name := filepath.Base(path)
		switch {
		case isEntryFile(name, domain.MetaMarker, domain.MetaExt):
			usage.Entries++
			usage.MetaBytes += info.Size()
		case isEntryFile(name, domain.ContentMarker, domain.ContentExt):
			usage.ContentBytes += info.Size()
		}
		return nil
	})
	if err != nil {
		return domain.Usage{}, zerr.With(zerr.Wrap(err, domain.ErrStatsFailed.Error()), "dir", dir)
	}

	return usage, nil
}

func isEntryFile(name, marker, ext string) bool {
	return strings.HasSuffix(name, ext) && strings.Contains(name, marker)
}
