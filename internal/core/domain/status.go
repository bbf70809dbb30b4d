package domain

// Status is the outcome of validating an entry against its persisted state.
// Every value other than StatusFresh is a cache miss and names the first check that failed.
type Status uint8

const (
	// StatusFresh means the persisted output can be reused.
	StatusFresh Status = iota
	// StatusDisabled means the cache is switched off for this process.
	StatusDisabled
	// StatusUnusable means the source file did not exist when the entry was built.
	StatusUnusable
	// StatusNotStored means the content or metadata file is absent.
	StatusNotStored
	// StatusCorrupt means the metadata file could not be read or decoded.
	StatusCorrupt
	// StatusVersionMismatch means the entry was written by a different format version.
	StatusVersionMismatch
	// StatusTimestampMismatch means the source file changed since the entry was written.
	StatusTimestampMismatch
	// StatusDependencyChanged means a recorded dependency changed or disappeared.
	StatusDependencyChanged
)

var statusNames = [...]string{
	StatusFresh:             "fresh",
	StatusDisabled:          "disabled",
	StatusUnusable:          "source missing",
	StatusNotStored:         "not stored",
	StatusCorrupt:           "corrupt metadata",
	StatusVersionMismatch:   "version mismatch",
	StatusTimestampMismatch: "source changed",
	StatusDependencyChanged: "dependency changed",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Fresh reports whether the status allows reusing the cached output.
func (s Status) Fresh() bool {
	return s == StatusFresh
}
