package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// userConfigRel is the config file location relative to the XDG config dirs.
const userConfigRel = "colorsort/colorsort.yaml"

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/colorsort.yaml"

// Loaded is a configuration together with the file it came from.
type Loaded struct {
	Config ColorSortConfig
	Path   string // "embedded" when no file was found
}

// LoadColorSort loads the Color Sort configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/colorsort/colorsort.yaml ->
// ./configs/colorsort.yaml -> embedded default. Files are applied on top of
// the defaults, so partial files are fine.
func LoadColorSort(customPath string) (Loaded, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Path: customPath}, nil
	}

	if userPath, err := xdg.SearchConfigFile(userConfigRel); err == nil {
		cfg, err := readFile(userPath)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Path: userPath}, nil
	}

	if _, err := os.Stat(localConfigPath); err == nil {
		cfg, err := readFile(localConfigPath)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Path: localConfigPath}, nil
	}

	cfg := DefaultColorSortConfig()
	if err := yaml.Unmarshal(defaultColorSortYAML, &cfg); err != nil {
		return Loaded{Config: DefaultColorSortConfig(), Path: "builtin"}, nil
	}
	return Loaded{Config: cfg, Path: "embedded"}, nil
}

func readFile(path string) (ColorSortConfig, error) {
	cfg := DefaultColorSortConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// InitUserConfig writes the embedded defaults to the XDG config location
// unless a file is already there. Returns the path and whether it was created.
func InitUserConfig() (string, bool, error) {
	path, err := xdg.ConfigFile(userConfigRel)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve config path: %w", err)
	}
	err = writeIfMissing(path, defaultColorSortYAML)
	if errors.Is(err, fs.ErrExist) {
		return path, false, nil
	}
	if err != nil {
		return path, false, err
	}
	return path, true, nil
}

func writeIfMissing(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fs.ErrExist
	}
	if err != nil {
		return fmt.Errorf("failed to create config %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return f.Close()
}

// Marshal renders a configuration as YAML.
func Marshal(cfg ColorSortConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
