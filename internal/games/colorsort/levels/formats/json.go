package formats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
)

// JSONLevel is one level in JSON form.
type JSONLevel struct {
	Name string   `json:"name,omitempty"`
	Rows [][]Cell `json:"rows"`
}

// JSONPack is the object form of a JSON level file. A bare array of levels
// is accepted as well.
type JSONPack struct {
	ID     string      `json:"id,omitempty"`
	Name   string      `json:"name,omitempty"`
	Levels []JSONLevel `json:"levels"`
}

// ParseJSON parses a JSON level file.
func ParseJSON(data []byte) (Pack, error) {
	var jp JSONPack

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &jp.Levels); err != nil {
			return Pack{}, fmt.Errorf("json unmarshal: %w", err)
		}
	} else if err := json.Unmarshal(trimmed, &jp); err != nil {
		return Pack{}, fmt.Errorf("json unmarshal: %w", err)
	}

	pack := Pack{ID: jp.ID, Name: jp.Name, Levels: make([]PackLevel, len(jp.Levels))}
	for i, jl := range jp.Levels {
		pack.Levels[i] = PackLevel{Name: jl.Name, Definition: ToDefinition(jl.Rows)}
	}
	return pack, nil
}

// EncodeDefinition serializes a single definition as a JSON level object.
func EncodeDefinition(name string, def core.Definition) ([]byte, error) {
	data, err := json.Marshal(JSONLevel{Name: name, Rows: FromDefinition(def)})
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// DecodeDefinition parses a single JSON level object.
func DecodeDefinition(data []byte) (string, core.Definition, error) {
	var jl JSONLevel
	if err := json.Unmarshal(data, &jl); err != nil {
		return "", core.Definition{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return jl.Name, ToDefinition(jl.Rows), nil
}
