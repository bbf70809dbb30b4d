package cache

import (
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/zerr"
)

// MergeSource is where MergeDeps copies dependencies from.
// Build one with FromEntry or FromRawMap.
type MergeSource interface {
	isMergeSource()
}

type entrySource struct{ entry *Entry }

type rawSource struct{ deps map[string]int64 }

func (entrySource) isMergeSource() {}
func (rawSource) isMergeSource()   {}

// FromEntry merges both the dependencies and the missing dependencies of e.
func FromEntry(e *Entry) MergeSource {
	return entrySource{entry: e}
}

// FromRawMap merges a path to modification time mapping. A nil map merges nothing.
func FromRawMap(m map[string]int64) MergeSource {
	return rawSource{deps: m}
}

// MergeDeps copies dependencies from src without overwriting paths already tracked.
// Unlike AddDeps, the first recorded time wins. An invalid source mutates nothing.
func (e *Entry) MergeDeps(src MergeSource) error {
	switch s := src.(type) {
	case entrySource:
		if s.entry == nil {
			return e.invalidMerge("nil entry")
		}
		e.deps.Merge(s.entry.deps)
		e.missing.Merge(s.entry.missing)
	case rawSource:
		e.deps.Merge(domain.Deps(s.deps))
	default:
		return e.invalidMerge("nil source")
	}
	return nil
}

func (e *Entry) invalidMerge(reason string) error {
	err := zerr.With(zerr.With(
		zerr.Wrap(domain.ErrInvalidMergeSource, "cannot merge dependencies"),
		"reason", reason), "path", e.source)
	e.svc.logger.Error(err)
	return err
}
