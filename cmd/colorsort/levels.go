package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorsort/internal/config"
	gamecore "github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels"
	"github.com/vovakirdan/tui-colorsort/internal/storage"
)

var (
	flagShowBoards bool
	flagListPacks  bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the configured source",
	Long: `Shows the levels served by the configured source (embedded, dir or db).

Examples:
  colorsort levels
  colorsort levels --show
  colorsort levels --packs --db ./levels.db`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagShowBoards, "show", false, "Draw each starting board")
	levelsCmd.Flags().BoolVar(&flagListPacks, "packs", false, "List the packs in the level library instead")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loaded.Config

	if flagListPacks {
		store, err := storage.Open(cfg.Levels.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening library: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		packs, err := store.Packs(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printPacks(os.Stdout, packs)
		return
	}

	src, closer, err := openSource(cfg.Levels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	lvls, err := src.List(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing levels: %v\n", err)
		os.Exit(1)
	}
	printLevels(os.Stdout, lvls, cfg.Levels, flagShowBoards)
}

func printLevels(w io.Writer, lvls []levels.Level, src config.LevelsConfig, show bool) {
	if len(lvls) == 0 {
		fmt.Fprintln(w, "No levels available.")
		return
	}

	fmt.Fprintf(w, "Levels (%s source):\n", src.Source)
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Fprintf(w, "  %-4s  %-*s  %-5s  %-6s  %-4s  %s\n", "#", maxIDLen, "ID", "Bases", "Colors", "Par", "Name")
	fmt.Fprintf(w, "  %-4s  %-*s  %-5s  %-6s  %-4s  %s\n", "-", maxIDLen, "--", "-----", "------", "---", "----")

	for i, l := range lvls {
		par := "-"
		if l.MinMoves >= 0 {
			par = fmt.Sprint(l.MinMoves)
		}

		s, err := l.NewSession()
		if err != nil {
			fmt.Fprintf(w, "  %-4d  %-*s  %-5s  %-6s  %-4s  %s\n", i+1, maxIDLen, l.ID, "-", "-", par, l.Title())
			fmt.Fprintf(w, "      invalid: %v\n", err)
			continue
		}
		st := gamecore.ComputeStats(s.Board())
		fmt.Fprintf(w, "  %-4d  %-*s  %-5d  %-6d  %-4s  %s\n", i+1, maxIDLen, l.ID, st.Bases, len(st.ByColor), par, l.Title())

		if show {
			fmt.Fprintf(w, "      %d objects in %d slots, %d empty bases, colors: %s\n",
				st.Objects, st.Capacity, st.Empty, colorList(st.Colors()))
			for _, line := range strings.Split(strings.TrimRight(gamecore.RenderASCII(s), "\n"), "\n") {
				fmt.Fprintf(w, "      %s\n", line)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'colorsort play <id>' to play a level.")
}

func printPacks(w io.Writer, packs []storage.PackInfo) {
	if len(packs) == 0 {
		fmt.Fprintln(w, "The level library is empty.")
		fmt.Fprintln(w, "Run 'colorsort import <file>' to add a pack.")
		return
	}

	fmt.Fprintf(w, "  %-16s  %-6s  %-16s  %s\n", "Pack", "Levels", "Imported", "Name")
	fmt.Fprintf(w, "  %-16s  %-6s  %-16s  %s\n", "----", "------", "--------", "----")
	for _, p := range packs {
		fmt.Fprintf(w, "  %-16s  %-6d  %-16s  %s\n", p.ID, p.Levels, p.ImportedAt.Format("2006-01-02 15:04"), p.Name)
	}
}

func colorList(colors []gamecore.Color) string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
