package ports

// Filesystem exposes the file identity queries the cache validates against.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// Canonicalize resolves path to an absolute, symlink-free path.
	// It returns false if the path does not exist.
	Canonicalize(path string) (string, bool)

	// IsRegularFile reports whether path is an existing regular file.
	IsRegularFile(path string) bool

	// Exists reports whether path exists.
	Exists(path string) bool

	// ModTime returns the modification time of path in epoch milliseconds.
	// It returns false if the path cannot be stat'ed.
	ModTime(path string) (int64, bool)
}
