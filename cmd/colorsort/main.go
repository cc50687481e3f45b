// colorsort is a terminal color-sort puzzle: move stacks of colored objects
// between bases until every base holds a single color.
//
// Usage:
//
//	colorsort play [level]     - Pick a level, or start one directly
//	colorsort levels           - List the levels of the configured source
//	colorsort validate         - Check that every level can be solved
//	colorsort import <file>    - Add a pack file to the level library
//	colorsort serve            - Start SSH server for remote play
//	colorsort config           - Show or initialize the configuration
//
// Global flags:
//
//	--config <path>   - Configuration file (default: XDG search)
//	--fps <rate>      - Set tick rate
//	--log-level <lvl> - debug, info, warn or error
//	--db <path>       - Level library database
//	--theme <name>    - default, pastel or mono
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorsort/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
	flagDBPath   string
	flagTheme    string
)

// loaded is the configuration resolved before any subcommand runs.
var loaded config.Loaded

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorsort",
	Short: "Color Sort - sort colored stacks in your terminal",
	Long: `Color Sort is a terminal puzzle. Each base holds a stack of colored
objects; select a base to lift its top run, then select another base to drop
it there. A level is solved when every base holds a single color.

Available commands:
  play      - Pick a level and play
  levels    - Show the levels of the configured source
  validate  - Solve every level and report problems
  import    - Add a pack file to the level library
  serve     - Start SSH server for remote play
  config    - Show or initialize the configuration

Examples:
  colorsort play
  colorsort play classic-03
  colorsort levels --show
  colorsort import ./packs/hard.yaml
  colorsort serve`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the level library database")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: default, pastel, mono")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration file and applies flag overrides.
func loadConfig(_ *cobra.Command, _ []string) error {
	l, err := config.LoadColorSort(flagConfig)
	if err != nil {
		return err
	}
	applyOverrides(&l.Config)
	if err := l.Config.Validate(); err != nil {
		return err
	}
	loaded = l
	return nil
}

// applyOverrides copies explicitly set global flags into cfg.
func applyOverrides(cfg *config.ColorSortConfig) {
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Levels.DB = flagDBPath
	}
	if flagTheme != "" {
		cfg.Display.Theme = flagTheme
	}
}
