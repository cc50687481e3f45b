// Package config provides YAML-based configuration loading for Color Sort.
package config

import (
	"fmt"
	"time"
)

// Level source kinds.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourceDB       = "db"
)

// ColorSortConfig contains all configuration for the game and its commands.
type ColorSortConfig struct {
	Levels   LevelsConfig   `yaml:"levels"`
	Display  DisplayConfig  `yaml:"display"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
}

// LevelsConfig selects where levels come from.
type LevelsConfig struct {
	Source     string `yaml:"source"`      // embedded, dir or db
	Path       string `yaml:"path"`        // directory scanned by the dir source
	DB         string `yaml:"db"`          // SQLite level library
	Pack       string `yaml:"pack"`        // pack played from the library
	SolveLimit int    `yaml:"solve_limit"` // states explored by hint and validate
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	Theme       string `yaml:"theme"`
	ObjectWidth int    `yaml:"object_width"`
	BaseGap     int    `yaml:"base_gap"`
	ShowHints   bool   `yaml:"show_hints"`
	FPS         int    `yaml:"fps"`
}

// GameplayConfig defines campaign flow.
type GameplayConfig struct {
	AutoAdvance       bool `yaml:"auto_advance"`
	AdvanceDelayTicks int  `yaml:"advance_delay_ticks"`
}

// LogConfig defines logging for the interactive commands.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty means the XDG state directory
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxSessions int           `yaml:"max_sessions"`
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

var validThemes = map[string]bool{"default": true, "pastel": true, "mono": true}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks value ranges and enumerations.
func (c ColorSortConfig) Validate() error {
	switch c.Levels.Source {
	case SourceEmbedded:
	case SourceDir:
		if c.Levels.Path == "" {
			return &ValidationError{Field: "levels.path", Reason: "required for the dir source"}
		}
	case SourceDB:
		if c.Levels.DB == "" {
			return &ValidationError{Field: "levels.db", Reason: "required for the db source"}
		}
		if c.Levels.Pack == "" {
			return &ValidationError{Field: "levels.pack", Reason: "required for the db source"}
		}
	default:
		return &ValidationError{Field: "levels.source", Reason: fmt.Sprintf("unknown source %q", c.Levels.Source)}
	}
	if c.Levels.SolveLimit < 1 {
		return &ValidationError{Field: "levels.solve_limit", Reason: "must be positive"}
	}

	if !validThemes[c.Display.Theme] {
		return &ValidationError{Field: "display.theme", Reason: fmt.Sprintf("unknown theme %q", c.Display.Theme)}
	}
	if c.Display.ObjectWidth < 1 || c.Display.ObjectWidth > 8 {
		return &ValidationError{Field: "display.object_width", Reason: "must be between 1 and 8"}
	}
	if c.Display.BaseGap < 0 {
		return &ValidationError{Field: "display.base_gap", Reason: "must not be negative"}
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return &ValidationError{Field: "display.fps", Reason: "must be between 1 and 240"}
	}

	if c.Gameplay.AdvanceDelayTicks < 0 {
		return &ValidationError{Field: "gameplay.advance_delay_ticks", Reason: "must not be negative"}
	}

	if !validLogLevels[c.Log.Level] {
		return &ValidationError{Field: "log.level", Reason: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ValidationError{Field: "server.port", Reason: "must be between 1 and 65535"}
	}
	if c.Server.MaxSessions < 0 {
		return &ValidationError{Field: "server.max_sessions", Reason: "must not be negative"}
	}
	return nil
}
