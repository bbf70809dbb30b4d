package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/cas"
	fsadapter "go.trai.ch/cachet/internal/adapters/fs"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	mem    afero.Fs
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		mem:    afero.NewMemMapFs(),
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}

	f.loader.EXPECT().Load("").Return(domain.Config{
		Root:          "/cache",
		Enabled:       true,
		FormatVersion: "1",
		HashLength:    domain.DefaultHashLength,
	}, nil).AnyTimes()

	f.logger.EXPECT().SetJSON(false).AnyTimes()
	f.logger.EXPECT().SetVerbose(false).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.app = app.New(f.loader, fsadapter.NewFilesystem(f.mem), fsadapter.NewHasher(), cas.NewStore(f.mem), f.logger)
	return f
}

func (f *fixture) write(t *testing.T, path string, ms int64) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.mem, path, []byte(path), 0o644))
	mtime := time.UnixMilli(ms)
	require.NoError(t, f.mem.Chtimes(path, mtime, mtime))
}

func TestApp_PutGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.write(t, "/src/a.js", 1000)
	f.write(t, "/src/dep.js", 2000)

	err := f.app.Put(ctx, "/src/a.js", app.PutOptions{
		Namespace: "js",
		Content:   []byte("compiled"),
		Info:      json.RawMessage(`{"map":"a.js.map"}`),
		Deps:      []string{"/src/dep.js"},
		Missing:   []app.MissingDep{{Path: "./later.js", Marker: "import"}},
	})
	require.NoError(t, err)

	out, err := f.app.Get(ctx, "/src/a.js", app.GetOptions{Namespace: "js"})
	require.NoError(t, err)
	assert.Equal(t, []byte("compiled"), out.Content)
	assert.JSONEq(t, `{"map":"a.js.map"}`, string(out.Info))

	f.write(t, "/src/dep.js", 2001)
	_, err = f.app.Get(ctx, "/src/a.js", app.GetOptions{Namespace: "js"})
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestApp_Get_Misses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.write(t, "/src/a.js", 1000)

	_, err := f.app.Get(ctx, "/src/a.js", app.GetOptions{})
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	_, err = f.app.Get(ctx, "/src/missing.js", app.GetOptions{})
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	_, err = f.app.Get(ctx, "/src/a.js", app.GetOptions{Namespace: "../up"})
	assert.ErrorIs(t, err, domain.ErrInvalidNamespace)
}

func TestApp_Get_NoCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.write(t, "/src/a.js", 1000)
	require.NoError(t, f.app.Put(ctx, "/src/a.js", app.PutOptions{Content: []byte("x")}))

	_, err := f.app.Get(ctx, "/src/a.js", app.GetOptions{Options: app.Options{NoCache: true}})
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestApp_Put_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.app.Put(ctx, "/src/a.js", app.PutOptions{Info: json.RawMessage(`{bad`)})
	assert.ErrorIs(t, err, domain.ErrInvalidInfo)

	err = f.app.Put(ctx, "/src/missing.js", app.PutOptions{})
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestApp_Put_Merge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.write(t, "/src/a.js", 1000)
	f.write(t, "/src/b.js", 1000)
	f.write(t, "/src/shared.js", 2000)

	require.NoError(t, f.app.Put(ctx, "/src/b.js", app.PutOptions{Deps: []string{"/src/shared.js"}}))
	require.NoError(t, f.app.Put(ctx, "/src/a.js", app.PutOptions{Merge: []string{"/src/b.js", "/src/a.js"}}))

	res, err := f.app.Inspect(ctx, "/src/a.js", app.GetOptions{})
	require.NoError(t, err)
	require.NotNil(t, res.Record)
	assert.Equal(t, domain.Deps{"/src/shared.js": 2000}, res.Record.Deps)
	assert.Equal(t, domain.StatusFresh, res.Status)
}

func TestApp_Status(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.write(t, "/src/fresh.js", 1000)
	f.write(t, "/src/stale.js", 1000)
	f.write(t, "/src/new.js", 1000)

	require.NoError(t, f.app.Put(ctx, "/src/fresh.js", app.PutOptions{
		Missing: []app.MissingDep{{Path: "./new.js"}, {Path: "./still-missing.js"}},
	}))
	require.NoError(t, f.app.Put(ctx, "/src/stale.js", app.PutOptions{}))
	f.write(t, "/src/stale.js", 1500)

	sources := []string{"/src/fresh.js", "/src/stale.js", "/src/new.js", "/src/gone.js"}
	got, err := f.app.Status(ctx, sources, app.StatusOptions{})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, domain.StatusFresh, got[0].Status)
	assert.Equal(t, []string{"./new.js"}, got[0].ResolvedMissing)
	assert.Equal(t, domain.StatusTimestampMismatch, got[1].Status)
	assert.Equal(t, domain.StatusNotStored, got[2].Status)
	assert.Equal(t, domain.StatusUnusable, got[3].Status)
	for i, s := range sources {
		assert.Equal(t, s, got[i].Source)
	}
}

func TestApp_Status_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.app.Status(ctx, nil, app.StatusOptions{})
	assert.ErrorIs(t, err, domain.ErrNoSourcesSpecified)

	_, err = f.app.Status(ctx, []string{"/x"}, app.StatusOptions{Namespace: "/abs"})
	assert.ErrorIs(t, err, domain.ErrInvalidNamespace)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = f.app.Status(cancelled, []string{"/x"}, app.StatusOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_StatsAndClean(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.write(t, "/src/a.js", 1000)

	require.NoError(t, f.app.Put(ctx, "/src/a.js", app.PutOptions{Namespace: "one", Content: []byte("12")}))
	require.NoError(t, f.app.Put(ctx, "/src/a.js", app.PutOptions{Namespace: "two", Content: []byte("345")}))

	usage, err := f.app.Stats(ctx, "", app.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, usage.Entries)
	assert.Equal(t, int64(5), usage.ContentBytes)

	_, err = f.app.Clean(ctx, "", app.CleanOptions{})
	assert.ErrorIs(t, err, domain.ErrNoNamespaceSpecified)

	removed, err := f.app.Clean(ctx, "one", app.CleanOptions{})
	require.NoError(t, err)
	assert.True(t, removed)

	usage, err = f.app.Stats(ctx, "", app.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, usage.Entries)

	removed, err = f.app.Clean(ctx, "ignored", app.CleanOptions{All: true})
	require.NoError(t, err)
	assert.True(t, removed)

	usage, err = f.app.Stats(ctx, "", app.Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.Usage{}, usage)
}

func TestApp_Inspect_NotStored(t *testing.T) {
	f := newFixture(t)
	f.write(t, "/src/a.js", 1000)

	res, err := f.app.Inspect(context.Background(), "/src/a.js", app.GetOptions{Namespace: "ns"})
	require.NoError(t, err)
	assert.Nil(t, res.Record)
	assert.Equal(t, domain.StatusNotStored, res.Status)
	assert.Equal(t, "/src/a.js", res.Source)
}

func TestApp_ConfigOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	mem := afero.NewMemMapFs()

	loader.EXPECT().Load("custom.yaml").Return(domain.Config{
		Root: "/configured", Enabled: true, FormatVersion: "1", HashLength: 10,
	}, nil)
	logger.EXPECT().SetJSON(true)
	logger.EXPECT().SetVerbose(true)

	a := app.New(loader, fsadapter.NewFilesystem(mem), fsadapter.NewHasher(), cas.NewStore(mem), logger)

	require.NoError(t, afero.WriteFile(mem, "/override/ns/x-o-1.json", []byte("{}"), 0o644))
	usage, err := a.Stats(context.Background(), "ns", app.Options{
		ConfigPath: "custom.yaml",
		Root:       "/override",
		Verbose:    true,
		JSON:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, usage.Entries)
}

func TestApp_ConfigLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	boom := errors.New("boom")
	loader.EXPECT().Load("").Return(domain.Config{}, boom)

	a := app.New(loader, nil, nil, nil, mocks.NewMockLogger(ctrl))
	_, err := a.Stats(context.Background(), "", app.Options{})
	assert.ErrorIs(t, err, boom)
}
