// Package domain contains the core types of the compilation cache.
package domain

import "encoding/json"

// Record is the metadata persisted next to the cached content of an entry.
type Record struct {
	Version     string          `json:"version"`
	Timestamp   int64           `json:"timestamp"`
	Deps        Deps            `json:"deps"`
	MissingDeps MissingDeps     `json:"mDeps"`
	Info        json.RawMessage `json:"info"`
}

// Usage summarizes the on-disk footprint of a namespace.
type Usage struct {
	Entries      int
	ContentBytes int64
	MetaBytes    int64
}

// TotalBytes returns the combined size of content and metadata files.
func (u Usage) TotalBytes() int64 {
	return u.ContentBytes + u.MetaBytes
}
