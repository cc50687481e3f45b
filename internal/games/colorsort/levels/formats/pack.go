// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
)

// Pack is a parsed level file: an ordered list of levels sharing an ID.
type Pack struct {
	ID     string
	Name   string
	Levels []PackLevel
}

// PackLevel is one level inside a pack.
type PackLevel struct {
	Name       string
	Definition core.Definition
}

// Cell is the on-disk form of one base. Both JSON and YAML use it.
type Cell struct {
	BaseHeight int      `json:"baseHeight" yaml:"base_height"`
	Objects    []string `json:"objects" yaml:"objects"`
}

// ToDefinition converts raw rows into a core definition. Color names are
// normalized; structural checks are left to core.Definition.Validate.
func ToDefinition(rows [][]Cell) core.Definition {
	def := core.Definition{Rows: make([][]core.Cell, len(rows))}
	for r, row := range rows {
		def.Rows[r] = make([]core.Cell, len(row))
		for c, cell := range row {
			objs := make([]core.Color, len(cell.Objects))
			for i, name := range cell.Objects {
				objs[i] = core.ParseColor(name)
			}
			def.Rows[r][c] = core.Cell{BaseHeight: cell.BaseHeight, Objects: objs}
		}
	}
	return def
}

// FromDefinition converts a core definition back to raw rows.
func FromDefinition(def core.Definition) [][]Cell {
	rows := make([][]Cell, len(def.Rows))
	for r, row := range def.Rows {
		rows[r] = make([]Cell, len(row))
		for c, cell := range row {
			objs := make([]string, len(cell.Objects))
			for i, color := range cell.Objects {
				objs[i] = color.String()
			}
			rows[r][c] = Cell{BaseHeight: cell.BaseHeight, Objects: objs}
		}
	}
	return rows
}

// Validate checks every level definition in the pack.
func (p Pack) Validate() error {
	for i, lvl := range p.Levels {
		if err := lvl.Definition.Validate(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// ParseByExtension routes to the parser for the given file extension.
func ParseByExtension(data []byte, ext string) (Pack, error) {
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
