// Package build holds build-time information.
package build

// Set by linker flags.
var (
	// Version is the application version. It doubles as the default cache format version.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
