package ports

// IdentityHasher derives the fixed-width digest used in on-disk cache keys.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type IdentityHasher interface {
	// Digest returns the first length hex characters of the digest of path.
	Digest(path string, length int) string
}
