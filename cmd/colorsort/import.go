package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels/formats"
	"github.com/vovakirdan/tui-colorsort/internal/storage"
)

var (
	flagPackID  string
	flagReplace bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add a pack file to the level library",
	Long: `Parses a JSON or YAML pack file, validates it and stores it in the
SQLite level library. Play it with the db source:

  levels:
    source: db
    pack: <pack id>

Examples:
  colorsort import ./packs/hard.yaml
  colorsort import ./packs/hard.yaml --pack hard-v2
  colorsort import ./packs/hard.yaml --replace --db ./levels.db`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagPackID, "pack", "", "Pack ID (default: the file's id or name)")
	importCmd.Flags().BoolVar(&flagReplace, "replace", false, "Overwrite an existing pack with the same ID")
}

func runImport(_ *cobra.Command, args []string) {
	if code := importFile(args[0]); code != 0 {
		os.Exit(code)
	}
}

// importFile runs the command and returns its exit status, so the library
// is closed before the process exits.
func importFile(path string) int {
	pack, err := levels.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if flagPackID != "" {
		pack.ID = flagPackID
	}

	store, err := storage.Open(loaded.Config.Levels.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening library: %v\n", err)
		return 1
	}
	defer store.Close()

	n, err := importPack(context.Background(), store, pack, flagReplace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return 1
	}

	fmt.Printf("Imported %d levels into pack %q\n", n, pack.ID)
	fmt.Printf("Run 'colorsort validate --record --db %s' to compute par.\n", loaded.Config.Levels.DB)
	return 0
}

// errPackExists is returned when an import would overwrite a pack.
var errPackExists = errors.New("pack already exists (use --replace to overwrite)")

// importPack writes pack into the library, refusing to overwrite an existing
// pack unless replace is set.
func importPack(ctx context.Context, store *storage.Store, pack formats.Pack, replace bool) (int, error) {
	if !replace {
		packs, err := store.Packs(ctx)
		if err != nil {
			return 0, err
		}
		for _, p := range packs {
			if p.ID == pack.ID {
				return 0, fmt.Errorf("%w: %s", errPackExists, pack.ID)
			}
		}
	}
	return store.ImportPack(ctx, pack.ID, pack)
}
