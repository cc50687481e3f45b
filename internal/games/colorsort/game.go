// Package colorsort provides the Color Sort puzzle as a terminal game.
//
// The game owns one core.Session at a time. Levels are fetched from a
// levels.Source on a background goroutine; Step drains finished loads without
// blocking and ignores gameplay input until the requested level is in place.
package colorsort

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-colorsort/internal/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels"
	"github.com/vovakirdan/tui-colorsort/internal/logging"
)

// Options configures a game instance.
type Options struct {
	Source       levels.Source
	Logger       *log.Logger
	StartLevel   int  // 0-based index of the first level
	AutoAdvance  bool // move on after AdvanceDelay ticks on a solved level
	AdvanceDelay int
	ShowHints    bool
	SolveLimit   int
	ObjectWidth  int
	BaseGap      int
	Glyphs       bool // draw objects as color letters instead of blocks

	// OnLevel, if set, is called on the game goroutine whenever a level
	// becomes active.
	OnLevel func(levels.Level)
}

// DefaultOptions plays the embedded pack from the first level.
func DefaultOptions() Options {
	return Options{
		Source:       levels.EmbeddedSource{},
		Logger:       logging.Discard(),
		AutoAdvance:  true,
		AdvanceDelay: 60,
		ShowHints:    true,
		SolveLimit:   core.DefaultSolveLimit,
		ObjectWidth:  4,
		BaseGap:      2,
	}
}

type loadResult struct {
	ticket  uint64
	index   int
	level   levels.Level
	session *core.Session
	total   int
	err     error
}

type hintResult struct {
	session *core.Session
	board   uint64
	step    core.Step
	err     error
}

// Game implements the Color Sort puzzle game.
type Game struct {
	opts   Options
	logger *log.Logger

	// Active level
	level      levels.Level
	session    *core.Session
	levelIndex int
	total      int

	// Loading
	ticket  uint64
	loading bool
	cancel  context.CancelFunc
	results chan loadResult
	loadErr error

	// Hints
	hints       chan hintResult
	hintPending bool
	hint        *core.Step

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
	layout   layout

	// Status
	tick       uint64
	cursor     int
	cleared    bool
	clearTicks int
	finished   bool
	status     string
	statusKind statusKind
}

// New creates a new Color Sort game.
func New(opts Options) *Game {
	def := DefaultOptions()
	if opts.Source == nil {
		opts.Source = def.Source
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}
	if opts.SolveLimit <= 0 {
		opts.SolveLimit = def.SolveLimit
	}
	if opts.ObjectWidth <= 0 {
		opts.ObjectWidth = def.ObjectWidth
	}
	if opts.BaseGap < 0 {
		opts.BaseGap = def.BaseGap
	}
	return &Game{
		opts:    opts,
		logger:  opts.Logger,
		results: make(chan loadResult, 4),
		hints:   make(chan hintResult, 4),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "colorsort"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Sort"
}

// Reset initializes the game and requests the start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.session = nil
	g.total = 0
	g.finished = false
	g.loadErr = nil
	g.clearStatus()

	g.requestLevel(g.opts.StartLevel)
}

// Resize updates the screen dimensions and recomputes the layout.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.calculateLayout()
}

// Close cancels any load in flight.
func (g *Game) Close() error {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	return nil
}

// requestLevel starts loading level index in the background. Any earlier
// request is cancelled and its result will be discarded.
func (g *Game) requestLevel(index int) {
	if index < 0 {
		index = 0
	}
	if g.total > 0 && index >= g.total {
		g.finish()
		return
	}

	if g.cancel != nil {
		g.cancel()
	}
	g.ticket++
	ticket := g.ticket
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.loading = true
	g.loadErr = nil
	g.hint = nil
	g.clearStatus()

	g.logger.Debug("requesting level", "index", index, "ticket", ticket)

	src := g.opts.Source
	results := g.results
	go func() {
		res := loadResult{ticket: ticket, index: index}
		res.level, res.total, res.err = levels.Fetch(ctx, src, index)
		if res.err == nil {
			res.session, res.err = res.level.NewSession()
		}
		select {
		case results <- res:
		case <-ctx.Done():
		}
	}()
}

// drainLoads applies finished loads without blocking.
func (g *Game) drainLoads() {
	for {
		select {
		case res := <-g.results:
			g.applyLoad(res)
		default:
			return
		}
	}
}

func (g *Game) applyLoad(res loadResult) {
	if res.ticket != g.ticket {
		g.logger.Debug("discarding stale level load", "ticket", res.ticket, "current", g.ticket)
		return
	}
	g.loading = false
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}

	if res.err != nil {
		if errors.Is(res.err, levels.ErrLevelNotFound) && res.total > 0 && res.index >= res.total {
			g.total = res.total
			g.finish()
			return
		}
		g.loadErr = res.err
		g.logger.Error("level load failed", "index", res.index, "err", res.err)
		return
	}

	g.level = res.level
	g.session = res.session
	g.levelIndex = res.index
	g.total = res.total
	g.finished = false
	g.cursor = 0
	g.cleared = false
	g.clearTicks = 0
	g.hint = nil
	g.hintPending = false
	g.calculateLayout()

	g.logger.Info("level loaded", "level", g.level.ID, "bases", g.session.Board().Len())
	if g.opts.OnLevel != nil {
		g.opts.OnLevel(g.level)
	}
	g.checkCleared()
}

func (g *Game) finish() {
	g.finished = true
	g.loading = false
	g.session = nil
	g.logger.Info("all levels cleared", "levels", g.total)
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.drainLoads()
	g.drainHints()

	switch {
	case input.Has(platformcore.ActionRestart):
		if g.finished {
			g.finished = false
			g.requestLevel(0)
		} else {
			g.requestLevel(g.levelIndex)
		}
		return platformcore.StepResult{State: g.State()}
	case input.Has(platformcore.ActionNext):
		if g.session != nil && g.levelIndex+1 < g.total {
			g.requestLevel(g.levelIndex + 1)
		}
		return platformcore.StepResult{State: g.State()}
	case input.Has(platformcore.ActionPrev):
		if g.levelIndex > 0 && !g.finished {
			g.requestLevel(g.levelIndex - 1)
		}
		return platformcore.StepResult{State: g.State()}
	}

	if g.loading || g.session == nil || g.tooSmall || g.finished {
		return platformcore.StepResult{State: g.State()}
	}

	if g.cleared {
		g.clearTicks++
		if input.Has(platformcore.ActionSelect) || (g.opts.AutoAdvance && g.clearTicks >= g.opts.AdvanceDelay) {
			g.requestLevel(g.levelIndex + 1)
		}
		return platformcore.StepResult{State: g.State()}
	}

	g.handleNavigation(input)

	if input.Has(platformcore.ActionSelect) {
		g.selectBase(g.cursor)
	}
	if p, ok := input.Pointer(); ok {
		if idx := g.layout.baseAt(p.X, p.Y); idx >= 0 {
			g.cursor = idx
			g.selectBase(idx)
		}
	}
	if input.Has(platformcore.ActionUndo) {
		g.undo()
	}
	if input.Has(platformcore.ActionHint) {
		g.requestHint()
	}

	return platformcore.StepResult{State: g.State()}
}

// handleNavigation moves the cursor along and across layout rows.
func (g *Game) handleNavigation(input platformcore.InputFrame) {
	n := g.layout.count()
	if n == 0 {
		return
	}
	if input.Has(platformcore.ActionLeft) {
		g.cursor = (g.cursor - 1 + n) % n
	}
	if input.Has(platformcore.ActionRight) {
		g.cursor = (g.cursor + 1) % n
	}
	if input.Has(platformcore.ActionUp) {
		g.cursor = g.layout.vertical(g.cursor, -1)
	}
	if input.Has(platformcore.ActionDown) {
		g.cursor = g.layout.vertical(g.cursor, 1)
	}
}

func (g *Game) selectBase(i int) {
	outcome := g.session.SelectBase(i)
	g.logger.Debug("select base", "level", g.level.ID, "base", i, "outcome", outcome)

	switch outcome {
	case core.OutcomeMoved:
		g.hint = nil
		g.clearStatus()
		g.checkCleared()
	case core.OutcomeRejected:
		g.setStatus("That base can't take those objects", statusWarn)
	case core.OutcomeSelected, core.OutcomeCancelled:
		g.clearStatus()
	}
}

func (g *Game) undo() {
	if !g.session.Undo() {
		g.setStatus("Nothing to undo", statusWarn)
		return
	}
	g.hint = nil
	g.setStatus("Move undone", statusInfo)
	g.logger.Debug("undo", "level", g.level.ID)
}

func (g *Game) checkCleared() {
	if g.session == nil || !g.session.IsComplete() {
		return
	}
	g.cleared = true
	g.clearTicks = 0
	g.hint = nil
	g.logger.Info("level cleared", "level", g.level.ID)
}

// requestHint solves the current board in the background.
func (g *Game) requestHint() {
	if !g.opts.ShowHints || g.hintPending {
		return
	}
	g.hintPending = true
	g.setStatus("Thinking...", statusInfo)

	session := g.session
	board := session.Board().Hash()
	limit := g.opts.SolveLimit
	hints := g.hints
	go func() {
		step, err := session.Hint(limit)
		hints <- hintResult{session: session, board: board, step: step, err: err}
	}()
}

func (g *Game) drainHints() {
	for {
		select {
		case res := <-g.hints:
			g.applyHint(res)
		default:
			return
		}
	}
}

func (g *Game) applyHint(res hintResult) {
	// Results for an earlier level leave the current request alone.
	if g.session == nil || res.session != g.session {
		return
	}
	g.hintPending = false
	if g.session.Board().Hash() != res.board {
		g.clearStatus()
		return
	}

	switch {
	case res.err == nil:
		step := res.step
		g.hint = &step
		g.setStatus(fmt.Sprintf("Hint: move base %d onto base %d", step.From+1, step.To+1), statusHint)
	case errors.Is(res.err, core.ErrUnsolvable):
		g.setStatus("No solution from here - try undo or restart", statusWarn)
	case errors.Is(res.err, core.ErrSolveLimit):
		g.setStatus("Too many possibilities for a hint", statusWarn)
	default:
		g.clearStatus()
	}
	g.logger.Debug("hint", "level", g.level.ID, "step", res.step, "err", res.err)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Levels:    g.total,
		Loading:   g.loading,
		Completed: g.cleared,
		GameOver:  g.finished,
	}
	if g.session != nil {
		st.Level = g.levelIndex + 1
	}
	return st
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusHint
)

func (g *Game) setStatus(msg string, kind statusKind) {
	g.status = msg
	g.statusKind = kind
}

func (g *Game) clearStatus() {
	g.status = ""
	g.statusKind = statusInfo
}
