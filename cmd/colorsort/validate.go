package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorsort/internal/config"
	gamecore "github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels"
	"github.com/vovakirdan/tui-colorsort/internal/storage"
)

var (
	flagRecord     bool
	flagSolveLimit int
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Solve every level and report problems",
	Long: `Runs the solver on every level of the configured source and reports
levels that are malformed, already solved or cannot be solved.

With --record and the db source, the shortest solution length of each level
is stored in the library and shown as par in the picker.

Examples:
  colorsort validate
  colorsort validate --limit 1000000
  colorsort validate --record --db ./levels.db`,
	Run: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagRecord, "record", false, "Store solution lengths in the level library (db source only)")
	validateCmd.Flags().IntVar(&flagSolveLimit, "limit", 0, "States explored per level (0 = from config)")
}

// validationReport counts the outcome of a validate run.
type validationReport struct {
	Checked int
	Failed  int
}

func runValidate(_ *cobra.Command, _ []string) {
	if code := validate(); code != 0 {
		os.Exit(code)
	}
}

// validate runs the command and returns its exit status, so deferred
// cleanup runs before the process exits.
func validate() int {
	cfg := loaded.Config

	logger, err := stderrLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if flagRecord && cfg.Levels.Source != config.SourceDB {
		fmt.Fprintln(os.Stderr, "Error: --record needs the db level source")
		return 1
	}

	src, closer, err := openSource(cfg.Levels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	var store *storage.Store
	if flagRecord {
		store = src.(levels.StoreSource).Store
	}

	limit := cfg.Levels.SolveLimit
	if flagSolveLimit > 0 {
		limit = flagSolveLimit
	}

	report, err := validateLevels(context.Background(), os.Stdout, src, store, limit, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return report.exitCode()
}

// exitCode is 1 when any level failed.
func (r validationReport) exitCode() int {
	if r.Failed > 0 {
		return 1
	}
	return 0
}

// validateLevels solves every level of src, printing one line per level.
// When store is set, solution lengths are recorded for its pack.
func validateLevels(ctx context.Context, w io.Writer, src levels.Source, store *storage.Store, limit int, logger *log.Logger) (validationReport, error) {
	var report validationReport

	lvls, err := src.List(ctx)
	if err != nil {
		return report, fmt.Errorf("listing levels: %w", err)
	}

	for _, l := range lvls {
		report.Checked++
		sol, err := gamecore.ValidateLevel(l.Definition, limit)
		if err != nil {
			report.Failed++
			var verr gamecore.ValidationError
			if errors.As(err, &verr) {
				logger.Warn("level failed validation", "level", l.ID, "code", verr.Code)
			}
			fmt.Fprintf(w, "  FAIL  %-16s  %v\n", l.ID, err)
			continue
		}

		fmt.Fprintf(w, "  ok    %-16s  %d moves (%d states)\n", l.ID, len(sol.Steps), sol.Explored)
		if store != nil {
			if err := store.RecordSolution(ctx, l.Pack, l.Index, len(sol.Steps), sol.Explored); err != nil {
				return report, fmt.Errorf("recording %s: %w", l.ID, err)
			}
			logger.Debug("recorded solution", "level", l.ID, "moves", len(sol.Steps))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d levels checked, %d failed\n", report.Checked, report.Failed)
	return report, nil
}
