package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
)

var _ ports.IdentityHasher = (*Hasher)(nil)

// Hasher derives the identity digest of a canonical source path.
// Only the path is hashed, never file content.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Digest returns the first length hex characters of the XXHash of path.
// length is clamped to [1, domain.MaxHashLength].
func (h *Hasher) Digest(path string, length int) string {
	length = max(1, min(length, domain.MaxHashLength))
	return fmt.Sprintf("%016x", xxhash.Sum64String(path))[:length]
}
