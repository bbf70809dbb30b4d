// Package cache implements the compilation cache: per-file entries validated against
// source and dependency modification times, grouped into evictable namespaces.
package cache

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service owns the cache root, the format version and the enable switch, and creates entries.
type Service struct {
	fs     ports.Filesystem
	hasher ports.IdentityHasher
	store  ports.EntryStore
	logger ports.Logger

	root       string
	version    string
	hashLength int
	enabled    atomic.Bool
}

// New creates a Service from the resolved configuration.
func New(
	cfg domain.Config,
	fs ports.Filesystem,
	hasher ports.IdentityHasher,
	store ports.EntryStore,
	logger ports.Logger,
) *Service {
	s := &Service{
		fs:         fs,
		hasher:     hasher,
		store:      store,
		logger:     logger,
		root:       filepath.Clean(cfg.Root),
		version:    cfg.FormatVersion,
		hashLength: cfg.HashLength,
	}
	s.enabled.Store(cfg.Enabled)
	return s
}

// Enabled reports the state of the enable switch.
func (s *Service) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled turns the cache on or off for this process. While off, no entry reverts.
// Saving is unaffected.
func (s *Service) SetEnabled(on bool) {
	s.enabled.Store(on)
}

// FormatVersion returns the version stamped into saved entries.
func (s *Service) FormatVersion() string {
	return s.version
}

// Root returns the cache root directory.
func (s *Service) Root() string {
	return s.root
}

// NamespaceDir maps a namespace name to its directory below the cache root.
// The empty name is the root itself.
func (s *Service) NamespaceDir(name string) (string, error) {
	if name == "" {
		return s.root, nil
	}

	cleaned := filepath.Clean(name)
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidNamespace, "cannot resolve namespace"), "namespace", name)
	}

	return filepath.Join(s.root, cleaned), nil
}

// Entry creates the entry for sourcePath in namespace.
//
// When the source is not a regular file a warning is logged, the returned entry is non-nil but
// unusable, and the error wraps domain.ErrSourceNotFound. Such an entry never reverts and refuses to save.
// An invalid namespace yields a nil entry.
func (s *Service) Entry(sourcePath, namespace string) (*Entry, error) {
	dir, err := s.NamespaceDir(namespace)
	if err != nil {
		return nil, err
	}

	canonical, ok := s.fs.Canonicalize(sourcePath)
	e := &Entry{
		svc:     s,
		source:  canonical,
		version: s.version,
		deps:    domain.Deps{},
		missing: domain.MissingDeps{},
		keys:    domain.NewKeys(dir, filepath.Base(canonical), s.hasher.Digest(canonical, s.hashLength)),
	}

	var mtime int64
	if ok && s.fs.IsRegularFile(canonical) {
		mtime, ok = s.fs.ModTime(canonical)
	} else {
		ok = false
	}
	if !ok {
		s.logger.Warn(fmt.Sprintf("%s is not a regular file, caching disabled for it", sourcePath))
		return e, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "cannot cache file"), "path", sourcePath)
	}

	e.timestamp = mtime
	e.usable = true
	return e, nil
}

// Clean removes the namespace directory and everything in it. The empty name removes the
// whole cache root. It reports whether anything was removed.
func (s *Service) Clean(name string) (bool, error) {
	dir, err := s.NamespaceDir(name)
	if err != nil {
		return false, err
	}

	removed, err := s.store.Evict(dir)
	if err != nil {
		return false, err
	}

	if removed {
		s.logger.Debug("removed " + dir)
	} else {
		s.logger.Debug("nothing to clean at " + dir)
	}
	return removed, nil
}

// Stats reports the on-disk usage of a namespace, or of the whole root for the empty name.
func (s *Service) Stats(name string) (domain.Usage, error) {
	dir, err := s.NamespaceDir(name)
	if err != nil {
		return domain.Usage{}, err
	}
	return s.store.Usage(dir)
}
