package levels

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-colorsort/internal/storage"
)

// StoreSource serves one pack from the SQLite level library.
type StoreSource struct {
	Store *storage.Store
	Pack  string
}

// List implements Source.
func (s StoreSource) List(ctx context.Context) ([]Level, error) {
	stored, err := s.Store.PackLevels(ctx, s.Pack)
	if errors.Is(err, storage.ErrPackNotFound) {
		return nil, fmt.Errorf("%w: pack %s", ErrLevelNotFound, s.Pack)
	}
	if err != nil {
		return nil, err
	}

	out := make([]Level, len(stored))
	for i, sl := range stored {
		out[i] = Level{
			ID:         levelID(s.Pack, sl.Index),
			Pack:       s.Pack,
			Index:      i,
			Name:       sl.Name,
			Definition: sl.Definition,
			Origin:     "db",
			MinMoves:   sl.MinMoves,
		}
	}
	return out, nil
}
