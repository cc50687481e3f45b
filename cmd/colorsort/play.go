package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorsort/internal/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels"
	"github.com/vovakirdan/tui-colorsort/internal/platform/tui"
)

var flagShotDir string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play Color Sort",
	Long: `Open the level picker, or start a level directly by its ID or
1-based number.

Controls:
  Left/Right/Up/Down  - Move the cursor between bases
  Space/Enter/Click   - Select a base, or drop onto it
  U/Z/Backspace       - Undo the last move
  H                   - Hint
  R                   - Restart the level
  N/P                 - Next/previous level
  Esc/B               - Back to the level picker
  Ctrl+S              - Save a screenshot
  ?                   - Help
  Q/Ctrl+C            - Quit

Examples:
  colorsort play
  colorsort play classic-05
  colorsort play 5 --theme mono`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagShotDir, "screenshots", "", "Directory for screenshots (default: XDG data dir)")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loaded.Config

	logger, logFile, err := fileLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	src, closer, err := openSource(cfg.Levels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	theme, err := tui.NewTheme(cfg.Display.Theme, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()

	opts := tui.AppOptions{
		Source: src,
		Game:   gameOptions(cfg, src, logger),
		Model: tui.ModelOptions{
			Theme:         theme,
			Logger:        logger,
			ScreenshotDir: flagShotDir,
		},
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Display.FPS,
		},
	}

	if len(args) == 1 {
		lvl, err := levels.FindByID(context.Background(), src, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'colorsort levels' to see available levels.")
			os.Exit(1)
		}
		opts.Game.StartLevel = lvl.Index
		opts.StartInGame = true
	}

	logger.Info("starting", "config", loaded.Path, "source", cfg.Levels.Source)
	if err := tui.RunApp(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
