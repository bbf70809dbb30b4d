package cache_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/cas"
	fsadapter "go.trai.ch/cachet/internal/adapters/fs"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports/mocks"
	"go.trai.ch/cachet/internal/engine/cache"
	"go.uber.org/mock/gomock"
)

const (
	cacheRoot = "/cache"
	version   = "1.0.0"
)

type harness struct {
	mem afero.Fs
	log *mocks.MockLogger
	svc *cache.Service
}

// newHarness wires a Service over an in-memory file system with a permissive logger.
func newHarness(t *testing.T) *harness {
	t.Helper()

	h := newStrictHarness(t)
	h.log.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.log.EXPECT().Warn(gomock.Any()).AnyTimes()
	h.log.EXPECT().Error(gomock.Any()).AnyTimes()
	return h
}

// newStrictHarness leaves logger expectations to the test.
func newStrictHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	h := &harness{
		mem: afero.NewMemMapFs(),
		log: mocks.NewMockLogger(ctrl),
	}
	h.svc = h.service(version)
	return h
}

func (h *harness) service(formatVersion string) *cache.Service {
	cfg := domain.Config{
		Root:          cacheRoot,
		Enabled:       true,
		FormatVersion: formatVersion,
		HashLength:    domain.DefaultHashLength,
	}
	return cache.New(cfg, fsadapter.NewFilesystem(h.mem), fsadapter.NewHasher(), cas.NewStore(h.mem), h.log)
}

func (h *harness) write(t *testing.T, path, content string, ms int64) {
	t.Helper()
	require.NoError(t, afero.WriteFile(h.mem, path, []byte(content), 0o644))
	h.touch(t, path, ms)
}

func (h *harness) touch(t *testing.T, path string, ms int64) {
	t.Helper()
	mtime := time.UnixMilli(ms)
	require.NoError(t, h.mem.Chtimes(path, mtime, mtime))
}

func (h *harness) entry(t *testing.T, path, namespace string) *cache.Entry {
	t.Helper()
	e, err := h.svc.Entry(path, namespace)
	require.NoError(t, err)
	return e
}
