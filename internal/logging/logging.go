// Package logging builds the charm loggers used across the commands.
// The interactive game owns the terminal, so its logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// stateFileRel is the log location relative to the XDG state directory.
const stateFileRel = "colorsort/colorsort.log"

// New creates a logger writing to w at the given level name.
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// DefaultFilePath returns the XDG state file used when no log file is
// configured, creating its directory.
func DefaultFilePath() (string, error) {
	path, err := xdg.StateFile(stateFileRel)
	if err != nil {
		return "", fmt.Errorf("logging: cannot resolve state file: %w", err)
	}
	return path, nil
}

// OpenFile opens path for appending, expanding a leading ~ and creating
// parent directories. An empty path selects DefaultFilePath.
func OpenFile(path string) (*os.File, error) {
	if path == "" {
		p, err := DefaultFilePath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("logging: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, nil
}
