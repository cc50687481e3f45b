package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents one level in a YAML pack.
type YAMLLevel struct {
	Name string   `yaml:"name"`
	Rows [][]Cell `yaml:"rows"`
}

// YAMLPack represents the YAML structure for a level file.
type YAMLPack struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{ID: yp.ID, Name: yp.Name, Levels: make([]PackLevel, len(yp.Levels))}
	for i, yl := range yp.Levels {
		pack.Levels[i] = PackLevel{Name: yl.Name, Definition: ToDefinition(yl.Rows)}
	}
	return pack, nil
}
