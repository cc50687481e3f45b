package levels

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/tui-colorsort/internal/storage"
)

func TestLoaderListsPacksInOrder(t *testing.T) {
	loader := NewLoader(filepath.Join("testdata", "packs"))

	all, err := loader.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3, "broken and non-level files are skipped")

	ids := []string{all[0].ID, all[1].ID, all[2].ID}
	assert.Equal(t, []string{"bonus-01", "starter-01", "starter-02"}, ids)
	for i, lvl := range all {
		assert.Equal(t, i, lvl.Index)
	}

	stairs := all[2]
	assert.Equal(t, "Stairs", stairs.Title())
	assert.Equal(t, "starter", stairs.Pack)
	require.Len(t, stairs.Definition.Rows, 2)
	assert.Equal(t, []core.Color{core.Blue, core.Red, core.Red}, stairs.Definition.Rows[0][0].Objects)
	assert.Equal(t, 3, stairs.Definition.Rows[1][0].BaseHeight)
}

func TestLoadFileRejectsMalformedLevel(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "packs", "broken", "overfull.json"))
	require.Error(t, err)

	var cfgErr *core.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr), "got %v", err)
}

func TestLoadFileDefaultsPackID(t *testing.T) {
	pack, err := LoadFile(filepath.Join("testdata", "packs", "bonus.json"))
	require.NoError(t, err)
	assert.Equal(t, "bonus", pack.ID)

	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.json")
	require.NoError(t, writeFile(path, `[{"rows": [[{"baseHeight": 1, "objects": ["red"]}]]}]`))

	pack, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", pack.ID)
}

func TestLoaderMissingDirectory(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).List(context.Background())
	assert.Error(t, err)
}

func TestEmbeddedLevelsAreValid(t *testing.T) {
	all, err := EmbeddedSource{}.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for _, lvl := range all {
		t.Run(lvl.ID, func(t *testing.T) {
			assert.Equal(t, EmbeddedPackID, lvl.Pack)
			sol, err := core.ValidateLevel(lvl.Definition, core.DefaultSolveLimit)
			require.NoError(t, err)
			assert.NotEmpty(t, sol.Steps)
		})
	}
}

func TestEmbeddedListReturnsCopy(t *testing.T) {
	first, err := EmbeddedSource{}.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := EmbeddedSource{}.List(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second[0].Name)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	src := EmbeddedSource{}

	lvl, total, err := Fetch(ctx, src, 1)
	require.NoError(t, err)
	assert.Equal(t, "classic-02", lvl.ID)
	assert.Greater(t, total, 1)

	_, total2, err := Fetch(ctx, src, total)
	assert.True(t, errors.Is(err, ErrLevelNotFound))
	assert.Equal(t, total, total2)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = Fetch(canceled, src, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	src := EmbeddedSource{}

	lvl, err := FindByID(ctx, src, "classic-03")
	require.NoError(t, err)
	assert.Equal(t, 2, lvl.Index)

	lvl, err = FindByID(ctx, src, "3")
	require.NoError(t, err)
	assert.Equal(t, "classic-03", lvl.ID)

	_, err = FindByID(ctx, src, "nope")
	assert.ErrorIs(t, err, ErrLevelNotFound)
	_, err = FindByID(ctx, src, "0")
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestStoreSource(t *testing.T) {
	ctx := context.Background()
	store, err := storage.Open(filepath.Join(t.TempDir(), "levels.db"))
	require.NoError(t, err)
	defer store.Close()

	pack, err := LoadFile(filepath.Join("testdata", "packs", "starter.yaml"))
	require.NoError(t, err)
	_, err = store.ImportPack(ctx, pack.ID, pack)
	require.NoError(t, err)
	require.NoError(t, store.RecordSolution(ctx, "starter", 0, 3, 12))

	all, err := StoreSource{Store: store, Pack: "starter"}.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "starter-01", all[0].ID)
	assert.Equal(t, "db", all[0].Origin)
	assert.Equal(t, 3, all[0].MinMoves)
	assert.Equal(t, -1, all[1].MinMoves)

	s, err := all[1].NewSession()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Board().Len())

	_, err = StoreSource{Store: store, Pack: "missing"}.List(ctx)
	assert.ErrorIs(t, err, ErrLevelNotFound)
}
