package colorsort

import (
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
)

// Phase is the coarse state of the game.
type Phase string

const (
	PhaseLoading     Phase = "loading"
	PhasePlaying     Phase = "playing"
	PhaseCleared     Phase = "level_cleared"
	PhaseFinished    Phase = "finished"
	PhaseError       Phase = "load_error"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the observable game state for tests and debugging.
type Snapshot struct {
	Tick      uint64
	LevelID   string
	Level     int // 1-indexed, 0 while nothing is loaded
	Levels    int
	Phase     Phase
	Cursor    int
	Selection *core.Selection
	CanUndo   bool
	Hint      *core.Step
	Status    string
	Board     string // core.RenderASCII of the session
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.finished:
		phase = PhaseFinished
	case g.loading:
		phase = PhaseLoading
	case g.loadErr != nil:
		phase = PhaseError
	case g.session == nil:
		phase = PhaseLoading
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.cleared:
		phase = PhaseCleared
	}

	snap := Snapshot{
		Tick:   g.tick,
		Levels: g.total,
		Phase:  phase,
		Cursor: g.cursor,
		Status: g.status,
	}
	if g.hint != nil {
		h := *g.hint
		snap.Hint = &h
	}
	if g.session != nil {
		snap.LevelID = g.level.ID
		snap.Level = g.levelIndex + 1
		snap.CanUndo = g.session.CanUndo()
		snap.Board = core.RenderASCII(g.session)
		if sel, ok := g.session.Selection(); ok {
			snap.Selection = &sel
		}
	}
	return snap
}
