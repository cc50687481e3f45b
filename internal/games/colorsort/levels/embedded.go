package levels

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels/formats"
)

// EmbeddedPackID names the pack compiled into the binary.
const EmbeddedPackID = "classic"

//go:embed data/classic.json
var classicJSON []byte

var (
	embeddedOnce   sync.Once
	embeddedLevels []Level
	embeddedErr    error
)

// EmbeddedSource serves the classic pack shipped with the binary.
type EmbeddedSource struct{}

// List implements Source.
func (EmbeddedSource) List(ctx context.Context) ([]Level, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	embeddedOnce.Do(func() {
		pack, err := EmbeddedPack()
		if err != nil {
			embeddedErr = err
			return
		}
		embeddedLevels = fromPack(pack, "embedded", 0)
	})
	if embeddedErr != nil {
		return nil, embeddedErr
	}
	out := make([]Level, len(embeddedLevels))
	copy(out, embeddedLevels)
	return out, nil
}

// EmbeddedPack parses the built-in pack.
func EmbeddedPack() (formats.Pack, error) {
	pack, err := formats.ParseJSON(classicJSON)
	if err != nil {
		return formats.Pack{}, fmt.Errorf("embedded levels: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return formats.Pack{}, fmt.Errorf("embedded levels: %w", err)
	}
	pack.ID = EmbeddedPackID
	pack.Name = "Classic"
	return pack, nil
}
