package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-colorsort/internal/config"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels"
	"github.com/vovakirdan/tui-colorsort/internal/logging"
	"github.com/vovakirdan/tui-colorsort/internal/storage"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openSource builds the level source the configuration selects. The returned
// closer releases the library database for the db source.
func openSource(cfg config.LevelsConfig) (levels.Source, io.Closer, error) {
	switch cfg.Source {
	case config.SourceDir:
		return levels.NewLoader(cfg.Path), nopCloser{}, nil
	case config.SourceDB:
		store, err := storage.Open(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return levels.StoreSource{Store: store, Pack: cfg.Pack}, store, nil
	case config.SourceEmbedded, "":
		return levels.EmbeddedSource{}, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown level source %q", cfg.Source)
	}
}

// gameOptions maps the configuration onto game options.
func gameOptions(cfg config.ColorSortConfig, src levels.Source, logger *log.Logger) colorsort.Options {
	opts := colorsort.DefaultOptions()
	opts.Source = src
	opts.Logger = logger
	opts.AutoAdvance = cfg.Gameplay.AutoAdvance
	opts.AdvanceDelay = cfg.Gameplay.AdvanceDelayTicks
	opts.ShowHints = cfg.Display.ShowHints
	opts.SolveLimit = cfg.Levels.SolveLimit
	opts.ObjectWidth = cfg.Display.ObjectWidth
	opts.BaseGap = cfg.Display.BaseGap
	return opts
}

// fileLogger opens the configured log file. The interactive game owns the
// terminal, so nothing may be written to stdout or stderr while it runs.
func fileLogger(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	f, err := logging.OpenFile(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(f, cfg.Level, "colorsort")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// stderrLogger logs to stderr for the non-interactive commands.
func stderrLogger(cfg config.LogConfig) (*log.Logger, error) {
	return logging.New(os.Stderr, cfg.Level, "colorsort")
}

// terminalSize returns the size of stdout, falling back to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
