package levels

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels/formats"
)

// Loader reads level packs from a directory. Every supported file is one
// pack; packs are ordered by ID and their levels keep file order.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// List implements Source.
func (l *Loader) List(ctx context.Context) ([]Level, error) {
	packs, err := l.loadPacks(ctx)
	if err != nil {
		return nil, err
	}

	var all []Level
	for _, p := range packs {
		all = append(all, fromPack(p.pack, p.path, len(all))...)
	}
	return all, nil
}

type loadedPack struct {
	pack formats.Pack
	path string
}

// loadPacks recursively scans the root and parses every pack file.
// Files that fail to parse or validate are skipped.
func (l *Loader) loadPacks(ctx context.Context) ([]loadedPack, error) {
	var packs []loadedPack

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		pack, err := LoadFile(path)
		if err != nil {
			return nil
		}
		packs = append(packs, loadedPack{pack: pack, path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(packs, func(i, j int) bool {
		return packs[i].pack.ID < packs[j].pack.ID
	})
	return packs, nil
}

// LoadFile parses and validates a single pack file. A pack without an id
// takes the file name.
func LoadFile(path string) (formats.Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return formats.Pack{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	pack, err := formats.ParseByExtension(data, ext)
	if err != nil {
		return formats.Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if err := pack.Validate(); err != nil {
		return formats.Pack{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	if pack.ID == "" {
		pack.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return pack, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
