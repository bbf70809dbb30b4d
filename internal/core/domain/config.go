package domain

// Config holds the resolved settings of the cache subsystem.
type Config struct {
	// Root is the cache root directory. Namespaces are subdirectories of it.
	Root string
	// Enabled is the initial state of the global enable switch.
	Enabled bool
	// FormatVersion gates compatibility of persisted entries.
	FormatVersion string
	// HashLength is the number of hex characters kept from the path digest.
	HashLength int
	// Verbose enables debug logging.
	Verbose bool
	// JSON switches log output to JSON.
	JSON bool
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig(formatVersion string) Config {
	return Config{
		Root:          DefaultCacheRoot(),
		Enabled:       true,
		FormatVersion: formatVersion,
		HashLength:    DefaultHashLength,
	}
}
