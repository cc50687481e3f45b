package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/colorsort.yaml
var defaultColorSortYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultColorSortYAML))
	copy(out, defaultColorSortYAML)
	return out
}

// DefaultColorSortConfig returns the default configuration.
func DefaultColorSortConfig() ColorSortConfig {
	return ColorSortConfig{
		Levels: LevelsConfig{
			Source:     SourceEmbedded,
			Path:       "./levels",
			DB:         "~/.local/share/colorsort/levels.db",
			Pack:       "classic",
			SolveLimit: 200000,
		},
		Display: DisplayConfig{
			Theme:       "default",
			ObjectWidth: 4,
			BaseGap:     2,
			ShowHints:   true,
			FPS:         30,
		},
		Gameplay: GameplayConfig{
			AutoAdvance:       true,
			AdvanceDelayTicks: 60,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2222,
			HostKeyPath: ".ssh/colorsort_ed25519",
			IdleTimeout: 10 * time.Minute,
			MaxSessions: 50,
		},
	}
}
