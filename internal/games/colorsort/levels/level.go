// Package levels provides level loading for Color Sort.
// This package depends on core but core does not depend on levels.
package levels

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels/formats"
)

// ErrLevelNotFound is returned when a requested level does not exist.
var ErrLevelNotFound = errors.New("level not found")

// Level is one playable level together with where it came from.
type Level struct {
	ID         string // "<pack>-<n>", n 1-based
	Pack       string
	Index      int // 0-based position in the source
	Name       string
	Definition core.Definition
	Origin     string // file path, "embedded" or "db"
	MinMoves   int    // -1 when unknown
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// NewSession starts a fresh session for this level.
func (l Level) NewSession() (*core.Session, error) {
	return core.LoadLevel(l.Definition)
}

// Source provides an ordered list of levels. Implementations must be safe
// for concurrent use.
type Source interface {
	List(ctx context.Context) ([]Level, error)
}

// Fetch returns the level at index from src along with the total count.
func Fetch(ctx context.Context, src Source, index int) (Level, int, error) {
	all, err := src.List(ctx)
	if err != nil {
		return Level{}, 0, err
	}
	if err := ctx.Err(); err != nil {
		return Level{}, 0, err
	}
	if index < 0 || index >= len(all) {
		return Level{}, len(all), fmt.Errorf("%w: index %d of %d", ErrLevelNotFound, index+1, len(all))
	}
	return all[index], len(all), nil
}

// FindByID returns the level with the given ID, or one addressed by its
// 1-based position ("3").
func FindByID(ctx context.Context, src Source, id string) (Level, error) {
	all, err := src.List(ctx)
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	if n, err := strconv.Atoi(id); err == nil && n >= 1 && n <= len(all) {
		return all[n-1], nil
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// fromPack expands a parsed pack into levels numbered from offset.
func fromPack(pack formats.Pack, origin string, offset int) []Level {
	out := make([]Level, len(pack.Levels))
	for i, pl := range pack.Levels {
		out[i] = Level{
			ID:         levelID(pack.ID, i),
			Pack:       pack.ID,
			Index:      offset + i,
			Name:       pl.Name,
			Definition: pl.Definition,
			Origin:     origin,
			MinMoves:   -1,
		}
	}
	return out
}

func levelID(pack string, i int) string {
	return fmt.Sprintf("%s-%02d", pack, i+1)
}
