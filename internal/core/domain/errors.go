package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceNotFound is returned when the file an entry is built for is not a regular file.
	// The entry is still constructed but can never revert.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrDependencyNotFound is returned when a dependency cannot be resolved to an existing file.
	ErrDependencyNotFound = zerr.New("dependency not found")

	// ErrInvalidMergeSource is returned when dependencies are merged from an unsupported source.
	ErrInvalidMergeSource = zerr.New("invalid merge source")

	// ErrCacheMiss is returned when a requested entry cannot be served from the cache.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrInvalidNamespace is returned when a namespace would resolve outside the cache root.
	ErrInvalidNamespace = zerr.New("namespace must be a relative path inside the cache root")

	// ErrInvalidHashLength is returned when the configured digest length is out of range.
	ErrInvalidHashLength = zerr.New("hash length must be between 1 and 16")

	// ErrInvalidInfo is returned when an info payload is not valid JSON.
	ErrInvalidInfo = zerr.New("info payload is not valid JSON")

	// ErrNoNamespaceSpecified is returned when clean is called without a namespace or --all.
	ErrNoNamespaceSpecified = zerr.New("specify a namespace or --all")

	// ErrNoSourcesSpecified is returned when a command needs at least one source file.
	ErrNoSourcesSpecified = zerr.New("no source files specified")

	// ErrStoreCreateFailed is returned when the namespace directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache directory")

	// ErrStoreReadFailed is returned when a cache file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache file")

	// ErrStoreUnmarshalFailed is returned when the metadata record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache metadata")

	// ErrStoreMarshalFailed is returned when the metadata record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache metadata")

	// ErrStoreWriteFailed is returned when a cache file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache file")

	// ErrCleanFailed is returned when a namespace cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean cache namespace")

	// ErrStatsFailed is returned when a namespace cannot be walked for usage statistics.
	ErrStatsFailed = zerr.New("failed to collect cache statistics")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrContentReadFailed is returned when the content to cache cannot be read.
	ErrContentReadFailed = zerr.New("failed to read content")

	// ErrStdinIsTerminal is returned when content is requested from an interactive stdin.
	ErrStdinIsTerminal = zerr.New("refusing to read content from a terminal")
)
