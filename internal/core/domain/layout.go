package domain

import "path/filepath"

const (
	// CachetDirName is the name of the internal workspace directory.
	CachetDirName = ".cachet"

	// CacheDirName is the name of the cache root below the workspace directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "cachet.yaml"

	// ContentMarker separates the base name from the digest in content file names.
	ContentMarker = "-c-"

	// ContentExt is the extension of content files.
	ContentExt = ".tmp"

	// MetaMarker separates the base name from the digest in metadata file names.
	MetaMarker = "-o-"

	// MetaExt is the extension of metadata files.
	MetaExt = ".json"

	// DefaultHashLength is the default number of hex characters kept from the path digest.
	DefaultHashLength = 10

	// MaxHashLength is the width of the full 64-bit digest in hex characters.
	MaxHashLength = 16

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheRoot returns the default cache root.
// It joins .cachet and cache.
func DefaultCacheRoot() string {
	return filepath.Join(CachetDirName, CacheDirName)
}

// Keys holds the two on-disk locations of an entry.
type Keys struct {
	Content string
	Meta    string
}

// NewKeys derives the content and metadata locations for a source base name and digest
// inside the namespace directory dir.
func NewKeys(dir, basename, digest string) Keys {
	prefix := filepath.Join(dir, basename)
	return Keys{
		Content: prefix + ContentMarker + digest + ContentExt,
		Meta:    prefix + MetaMarker + digest + MetaExt,
	}
}
