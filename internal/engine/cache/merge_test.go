package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/engine/cache"
	"go.uber.org/mock/gomock"
)

func TestEntry_MergeDeps_FromEntry(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.write(t, "/src/a.js", "a", 1000)
	h.write(t, "/src/b.js", "b", 1000)
	h.write(t, "/src/shared.js", "shared", 2000)
	h.write(t, "/src/only-b.js", "only", 3000)

	a := h.entry(t, "/src/a.js", "ns").AddDeps("/src/shared.js").AddMissingDeps("./x.js", "from-a")

	h.touch(t, "/src/shared.js", 2222)
	b := h.entry(t, "/src/b.js", "ns").
		AddDeps("/src/shared.js", "/src/only-b.js").
		AddMissingDeps("./x.js", "from-b").
		AddMissingDeps("./y.js", "from-b")

	require.NoError(t, a.MergeDeps(cache.FromEntry(b)))

	assert.Equal(t, domain.Deps{"/src/shared.js": 2000, "/src/only-b.js": 3000}, a.Deps(), "existing keys win")
	assert.Equal(t, domain.MissingDeps{"./x.js": "from-a", "./y.js": "from-b"}, a.MissingDeps())
	assert.Equal(t, domain.Deps{"/src/shared.js": 2222, "/src/only-b.js": 3000}, b.Deps(), "source untouched")
}

func TestEntry_MergeDeps_FromRawMap(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.write(t, "/src/a.js", "a", 1000)
	h.write(t, "/src/k.js", "k", 10)

	e := h.entry(t, "/src/a.js", "ns").AddDeps("/src/k.js")
	require.NoError(t, e.MergeDeps(cache.FromRawMap(map[string]int64{"/src/k.js": 99, "/src/n.js": 7})))

	assert.Equal(t, domain.Deps{"/src/k.js": 10, "/src/n.js": 7}, e.Deps())

	require.NoError(t, e.MergeDeps(cache.FromRawMap(nil)))
	assert.Len(t, e.Deps(), 2)
}

func TestEntry_MergeDeps_InvalidSource(t *testing.T) {
	t.Parallel()
	h := newStrictHarness(t)
	h.log.EXPECT().Error(gomock.Any()).Times(2)
	h.write(t, "/src/a.js", "a", 1000)
	h.write(t, "/src/k.js", "k", 10)

	e := h.entry(t, "/src/a.js", "ns").AddDeps("/src/k.js").AddMissingDeps("./m.js", "")

	err := e.MergeDeps(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidMergeSource)

	err = e.MergeDeps(cache.FromEntry(nil))
	assert.ErrorIs(t, err, domain.ErrInvalidMergeSource)

	assert.Equal(t, domain.Deps{"/src/k.js": 10}, e.Deps())
	assert.Equal(t, domain.MissingDeps{"./m.js": ""}, e.MissingDeps())
}

func TestEntry_MergeDeps_PersistsThroughSave(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.write(t, "/src/a.js", "a", 1000)
	h.write(t, "/src/dep.js", "dep", 2000)

	e := h.entry(t, "/src/a.js", "ns")
	require.NoError(t, e.MergeDeps(cache.FromRawMap(map[string]int64{"/src/dep.js": 2000})))
	require.NoError(t, e.Save([]byte("out"), nil))

	assert.True(t, h.entry(t, "/src/a.js", "ns").Revert(nil))

	h.touch(t, "/src/dep.js", 2001)
	assert.False(t, h.entry(t, "/src/a.js", "ns").Revert(nil))
}
