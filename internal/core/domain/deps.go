package domain

import (
	"maps"
	"slices"
)

// Deps maps a canonical dependency path to its modification time in epoch milliseconds.
type Deps map[string]int64

// MissingDeps maps a referenced but unresolved path to an opaque marker.
type MissingDeps map[string]string

// Clone returns an independent copy. A nil receiver yields an empty, non-nil map.
func (d Deps) Clone() Deps {
	out := make(Deps, len(d))
	maps.Copy(out, d)
	return out
}

// Merge copies entries from src that are not already present in d.
// Existing keys keep their value.
func (d Deps) Merge(src Deps) {
	for path, mtime := range src {
		if _, ok := d[path]; !ok {
			d[path] = mtime
		}
	}
}

// Paths returns the dependency paths in sorted order.
func (d Deps) Paths() []string {
	return slices.Sorted(maps.Keys(d))
}

// FirstStale returns the first dependency, in path order, whose current modification time
// differs from the recorded one. modTime reports false for paths that no longer exist,
// which always counts as stale.
func (d Deps) FirstStale(modTime func(path string) (int64, bool)) (string, bool) {
	for _, path := range d.Paths() {
		current, ok := modTime(path)
		if !ok || current != d[path] {
			return path, true
		}
	}
	return "", false
}

// Clone returns an independent copy. A nil receiver yields an empty, non-nil map.
func (m MissingDeps) Clone() MissingDeps {
	out := make(MissingDeps, len(m))
	maps.Copy(out, m)
	return out
}

// Merge copies entries from src that are not already present in m.
func (m MissingDeps) Merge(src MissingDeps) {
	for path, marker := range src {
		if _, ok := m[path]; !ok {
			m[path] = marker
		}
	}
}

// Paths returns the referenced paths in sorted order.
func (m MissingDeps) Paths() []string {
	return slices.Sorted(maps.Keys(m))
}
