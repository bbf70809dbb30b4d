package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/zerr"
)

// Entry is the cache record of one source file. It is not safe for concurrent use.
type Entry struct {
	svc *Service

	source    string
	timestamp int64
	usable    bool
	version   string
	deps      domain.Deps
	missing   domain.MissingDeps
	keys      domain.Keys

	errs []error
}

// Source returns the canonical path of the cached file.
func (e *Entry) Source() string { return e.source }

// Timestamp returns the source modification time captured at construction, in epoch milliseconds.
func (e *Entry) Timestamp() int64 { return e.timestamp }

// FormatVersion returns the format version the entry saves with.
func (e *Entry) FormatVersion() string { return e.version }

// Keys returns the on-disk locations of the entry.
func (e *Entry) Keys() domain.Keys { return e.keys }

// Usable reports whether the source existed when the entry was created.
func (e *Entry) Usable() bool { return e.usable }

// Deps returns a copy of the tracked dependencies.
func (e *Entry) Deps() domain.Deps { return e.deps.Clone() }

// MissingDeps returns a copy of the recorded missing dependencies.
func (e *Entry) MissingDeps() domain.MissingDeps { return e.missing.Clone() }

// Err returns the dependency failures accumulated by AddDeps, or nil.
func (e *Entry) Err() error {
	return errors.Join(e.errs...)
}

// Save persists the tracked state, info and content. info may be nil, a json.RawMessage
// stored verbatim, or any JSON-marshalable value. Existing files are overwritten.
func (e *Entry) Save(content []byte, info any) error {
	if !e.usable {
		return zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "cannot save entry"), "path", e.source)
	}

	raw, err := encodeInfo(info)
	if err != nil {
		return zerr.With(err, "path", e.source)
	}

	rec := &domain.Record{
		Version:     e.version,
		Timestamp:   e.timestamp,
		Deps:        e.deps.Clone(),
		MissingDeps: e.missing.Clone(),
		Info:        raw,
	}
	if err := e.svc.store.Save(e.keys, rec, content); err != nil {
		return err
	}

	e.svc.logger.Debug(fmt.Sprintf("saved %s (%d deps, %d bytes)", e.source, len(rec.Deps), len(content)))
	return nil
}

func encodeInfo(info any) (json.RawMessage, error) {
	switch v := info.(type) {
	case nil:
		return json.RawMessage("null"), nil
	case json.RawMessage:
		if !json.Valid(v) {
			return nil, zerr.Wrap(domain.ErrInvalidInfo, "cannot save entry")
		}
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
		}
		return data, nil
	}
}

// Status validates the entry against its persisted state without mutating it.
// Checks run in order and stop at the first failure.
func (e *Entry) Status() domain.Status {
	status, _ := e.check()
	return status
}

func (e *Entry) check() (domain.Status, *domain.Record) {
	if !e.svc.Enabled() {
		return domain.StatusDisabled, nil
	}
	if !e.usable {
		return domain.StatusUnusable, nil
	}
	if !e.svc.store.Exists(e.keys) {
		return domain.StatusNotStored, nil
	}

	rec, err := e.svc.store.Load(e.keys)
	if err != nil {
		e.svc.logger.Warn(fmt.Sprintf("ignoring unreadable cache metadata for %s: %v", e.source, err))
		return domain.StatusCorrupt, nil
	}
	if rec == nil {
		return domain.StatusNotStored, nil
	}

	if rec.Version != e.version {
		return domain.StatusVersionMismatch, nil
	}
	if current, ok := e.svc.fs.ModTime(e.source); !ok || current != rec.Timestamp {
		return domain.StatusTimestampMismatch, nil
	}
	if path, stale := rec.Deps.FirstStale(e.svc.fs.ModTime); stale {
		e.svc.logger.Debug(fmt.Sprintf("dependency %s of %s changed", path, e.source))
		return domain.StatusDependencyChanged, nil
	}

	return domain.StatusFresh, rec
}

// Revert reports whether the persisted output is still valid. On success the tracked
// dependencies are replaced with the persisted ones and, when out is non-nil, it receives
// the persisted info and content. On failure the entry is left untouched.
func (e *Entry) Revert(out *Output) bool {
	status, rec := e.check()
	if !status.Fresh() {
		e.svc.logger.Debug(fmt.Sprintf("cache miss for %s: %s", e.source, status))
		return false
	}

	if out != nil {
		content, err := e.svc.store.LoadContent(e.keys)
		if err != nil {
			e.svc.logger.Warn(fmt.Sprintf("ignoring unreadable cache content for %s: %v", e.source, err))
			return false
		}
		out.Info = rec.Info
		out.Content = content
	}

	e.deps = rec.Deps.Clone()
	e.missing = rec.MissingDeps.Clone()

	e.svc.logger.Debug("cache hit for " + e.source)
	return true
}

// Stored returns the persisted record without validating it, or nil if none exists.
func (e *Entry) Stored() (*domain.Record, error) {
	return e.svc.store.Load(e.keys)
}

// AddDeps records the current modification time of each path. A later call for the same
// path overwrites the earlier time. Unresolvable paths are skipped with a warning and
// collected in Err.
func (e *Entry) AddDeps(paths ...string) *Entry {
	for _, p := range paths {
		canonical, ok := e.svc.fs.Canonicalize(p)
		var mtime int64
		if ok {
			mtime, ok = e.svc.fs.ModTime(canonical)
		}
		if !ok {
			e.svc.logger.Warn(fmt.Sprintf("dependency %s of %s not found", p, e.source))
			e.errs = append(e.errs, zerr.With(zerr.Wrap(domain.ErrDependencyNotFound, "cannot track dependency"), "path", p))
			continue
		}
		e.deps[canonical] = mtime
	}
	return e
}

// RemoveDeps stops tracking each path. Paths that no longer exist are matched by their
// cleaned absolute form.
func (e *Entry) RemoveDeps(paths ...string) *Entry {
	for _, p := range paths {
		canonical, _ := e.svc.fs.Canonicalize(p)
		delete(e.deps, canonical)
	}
	return e
}

// AddMissingDeps records a referenced path that could not be resolved, with an opaque
// marker. Missing dependencies never affect validity.
func (e *Entry) AddMissingDeps(path, marker string) *Entry {
	e.missing[path] = marker
	return e
}

// ResolvedMissingDeps returns the recorded missing dependencies that now resolve to a file.
// Relative paths are resolved against the directory of the source.
func (e *Entry) ResolvedMissingDeps() []string {
	var resolved []string
	for _, p := range e.missing.Paths() {
		target := p
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(e.source), target)
		}
		if canonical, ok := e.svc.fs.Canonicalize(target); ok && e.svc.fs.IsRegularFile(canonical) {
			resolved = append(resolved, p)
		}
	}
	return resolved
}
