package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/fs"
)

func TestFilesystem_Mem(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/src/a.js", []byte("a"), 0o644))
	require.NoError(t, mem.MkdirAll("/src/dir", 0o750))

	mtime := time.UnixMilli(1_700_000_000_123)
	require.NoError(t, mem.Chtimes("/src/a.js", mtime, mtime))

	f := fs.NewFilesystem(mem)

	t.Run("canonicalize existing", func(t *testing.T) {
		t.Parallel()
		path, ok := f.Canonicalize("/src/../src/a.js")
		assert.True(t, ok)
		assert.Equal(t, "/src/a.js", path)
	})

	t.Run("canonicalize missing", func(t *testing.T) {
		t.Parallel()
		path, ok := f.Canonicalize("/src/nope.js")
		assert.False(t, ok)
		assert.Equal(t, "/src/nope.js", path)
	})

	t.Run("regular file", func(t *testing.T) {
		t.Parallel()
		assert.True(t, f.IsRegularFile("/src/a.js"))
		assert.False(t, f.IsRegularFile("/src/dir"))
		assert.False(t, f.IsRegularFile("/src/nope.js"))
	})

	t.Run("exists", func(t *testing.T) {
		t.Parallel()
		assert.True(t, f.Exists("/src/dir"))
		assert.False(t, f.Exists("/src/nope.js"))
	})

	t.Run("mod time", func(t *testing.T) {
		t.Parallel()
		ms, ok := f.ModTime("/src/a.js")
		assert.True(t, ok)
		assert.Equal(t, int64(1_700_000_000_123), ms)

		_, ok = f.ModTime("/src/nope.js")
		assert.False(t, ok)
	})
}

func TestFilesystem_OsResolvesSymlinks(t *testing.T) {
	t.Parallel()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	target := filepath.Join(dir, "target.js")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))

	link := filepath.Join(dir, "link.js")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	f := fs.NewFilesystem(afero.NewOsFs())

	path, ok := f.Canonicalize(link)
	assert.True(t, ok)
	assert.Equal(t, target, path)

	_, ok = f.Canonicalize(filepath.Join(dir, "missing.js"))
	assert.False(t, ok)
}
