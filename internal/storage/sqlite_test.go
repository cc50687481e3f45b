package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels/formats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func importTestPack(t *testing.T, store *Store, pack formats.Pack) {
	t.Helper()
	if _, err := store.ImportPack(context.Background(), "test", pack); err != nil {
		t.Fatalf("ImportPack() failed: %v", err)
	}
}

func testPack() formats.Pack {
	return formats.Pack{
		Name: "Test pack",
		Levels: []formats.PackLevel{
			{
				Name: "first",
				Definition: core.Definition{Rows: [][]core.Cell{{
					{BaseHeight: 2, Objects: []core.Color{core.Red, core.Blue}},
					{BaseHeight: 2, Objects: []core.Color{core.Blue, core.Red}},
					{BaseHeight: 2},
				}}},
			},
			{
				Name: "second",
				Definition: core.Definition{Rows: [][]core.Cell{
					{{BaseHeight: 1, Objects: []core.Color{core.Green}}},
					{{BaseHeight: 1}},
				}},
			},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestImportAndReadPack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	n, err := store.ImportPack(ctx, "test", testPack())
	if err != nil {
		t.Fatalf("ImportPack() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ImportPack() = %d, expected 2", n)
	}

	levels, err := store.PackLevels(ctx, "test")
	if err != nil {
		t.Fatalf("PackLevels() failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(levels))
	}

	first := levels[0]
	if first.Name != "first" || first.Index != 0 || first.MinMoves != -1 {
		t.Errorf("first level = %+v", first)
	}
	want := testPack().Levels[0].Definition.Rows[0][1].Objects
	if got := first.Definition.Rows[0][1].Objects; !reflect.DeepEqual(got, want) {
		t.Errorf("objects = %v, expected %v", got, want)
	}
	if len(levels[1].Definition.Rows) != 2 {
		t.Errorf("second level has %d rows, expected 2", len(levels[1].Definition.Rows))
	}
}

func TestImportReplacesPack(t *testing.T) {
	store := openTestStore(t)
	importTestPack(t, store, testPack())

	smaller := testPack()
	smaller.Levels = smaller.Levels[:1]
	smaller.Name = "Renamed"
	importTestPack(t, store, smaller)

	packs, err := store.Packs(context.Background())
	if err != nil {
		t.Fatalf("Packs() failed: %v", err)
	}
	if len(packs) != 1 {
		t.Fatalf("Expected 1 pack, got %d", len(packs))
	}
	if packs[0].Name != "Renamed" {
		t.Errorf("name = %q, expected Renamed", packs[0].Name)
	}
	if packs[0].Levels != 1 {
		t.Errorf("levels = %d, expected 1", packs[0].Levels)
	}
	if packs[0].ImportedAt.IsZero() {
		t.Error("ImportedAt should be set")
	}
}

func TestImportRequiresID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.ImportPack(context.Background(), "", testPack()); err == nil {
		t.Error("expected an error for an empty pack id")
	}
}

func TestPackLevelsUnknownPack(t *testing.T) {
	store := openTestStore(t)

	_, err := store.PackLevels(context.Background(), "missing")
	if !errors.Is(err, ErrPackNotFound) {
		t.Errorf("expected ErrPackNotFound, got %v", err)
	}
}

func TestRecordSolution(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	importTestPack(t, store, testPack())

	if err := store.RecordSolution(ctx, "test", 1, 4, 37); err != nil {
		t.Fatalf("RecordSolution() failed: %v", err)
	}

	levels, err := store.PackLevels(ctx, "test")
	if err != nil {
		t.Fatalf("PackLevels() failed: %v", err)
	}
	if levels[0].MinMoves != -1 {
		t.Errorf("untouched level MinMoves = %d, expected -1", levels[0].MinMoves)
	}
	if levels[1].MinMoves != 4 || levels[1].Explored != 37 {
		t.Errorf("recorded level = %+v, expected 4 moves / 37 explored", levels[1])
	}

	if err := store.RecordSolution(ctx, "test", 9, 1, 1); !errors.Is(err, ErrPackNotFound) {
		t.Errorf("expected ErrPackNotFound for a missing level, got %v", err)
	}
}

func TestDeletePack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	importTestPack(t, store, testPack())

	if err := store.DeletePack(ctx, "test"); err != nil {
		t.Fatalf("DeletePack() failed: %v", err)
	}

	packs, err := store.Packs(ctx)
	if err != nil {
		t.Fatalf("Packs() failed: %v", err)
	}
	if len(packs) != 0 {
		t.Errorf("Expected no packs, got %d", len(packs))
	}

	if err := store.DeletePack(ctx, "test"); !errors.Is(err, ErrPackNotFound) {
		t.Errorf("expected ErrPackNotFound, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Packs(ctx); err == nil {
		t.Error("expected an error for a canceled context")
	}
}
