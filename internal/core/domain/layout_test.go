package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cachet/internal/core/domain"
)

func TestNewKeys(t *testing.T) {
	t.Parallel()

	dir := filepath.Join("root", "ns")
	keys := domain.NewKeys(dir, "foo.js", "abc123")

	assert.Equal(t, filepath.Join(dir, "foo.js-c-abc123.tmp"), keys.Content)
	assert.Equal(t, filepath.Join(dir, "foo.js-o-abc123.json"), keys.Meta)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig("1.2.3")

	assert.Equal(t, filepath.Join(".cachet", "cache"), cfg.Root)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "1.2.3", cfg.FormatVersion)
	assert.Equal(t, domain.DefaultHashLength, cfg.HashLength)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.JSON)
}

func TestUsage_TotalBytes(t *testing.T) {
	t.Parallel()

	u := domain.Usage{Entries: 2, ContentBytes: 100, MetaBytes: 40}
	assert.Equal(t, int64(140), u.TotalBytes())
}
