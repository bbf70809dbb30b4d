package ports

import "go.trai.ch/cachet/internal/core/domain"

// EntryStore defines the interface for persisting cache entries as a content and metadata pair.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EntryStore interface {
	// Exists reports whether both files of the pair are present.
	Exists(keys domain.Keys) bool

	// Load reads the metadata record.
	// Returns nil, nil if the metadata file does not exist.
	Load(keys domain.Keys) (*domain.Record, error)

	// LoadContent reads the raw cached content.
	LoadContent(keys domain.Keys) ([]byte, error)

	// Save writes the metadata record and the content, overwriting any previous pair.
	Save(keys domain.Keys, record *domain.Record, content []byte) error

	// Evict removes dir recursively. It reports whether anything was removed.
	Evict(dir string) (bool, error)

	// Usage walks dir and sums up the entries stored below it.
	Usage(dir string) (domain.Usage, error)
}
