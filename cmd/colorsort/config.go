package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorsort/internal/config"
)

var flagInitConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration",
	Long: `Prints the effective configuration (file values plus flag overrides)
as YAML, together with the file it was loaded from.

With --init, writes the default configuration to the XDG config directory
unless a file is already there.

Examples:
  colorsort config
  colorsort config --init
  colorsort config --config ./my.yaml --theme mono`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInitConfig, "init", false, "Write the default configuration file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagInitConfig {
		path, created, err := config.InitUserConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if created {
			fmt.Printf("Wrote %s\n", path)
		} else {
			fmt.Printf("%s already exists, left unchanged\n", path)
		}
		return
	}

	data, err := config.Marshal(loaded.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# loaded from: %s\n", loaded.Path)
	os.Stdout.Write(data)
}
