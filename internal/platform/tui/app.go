package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-colorsort/internal/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels"
)

// AppOptions configures an App.
type AppOptions struct {
	Source levels.Source
	Game   colorsort.Options // Source and StartLevel are set per game
	Model  ModelOptions
	Config core.RuntimeConfig

	// StartInGame skips the picker and opens Game.StartLevel directly.
	StartInGame bool
}

// App manages the full session flow: level picker -> game -> picker.
// It is the top-level model for local play and for SSH sessions.
type App struct {
	opts     AppOptions
	config   core.RuntimeConfig
	picker   PickerModel
	game     *Model
	done     <-chan struct{}
	quitting bool
}

// NewApp creates the session model.
func NewApp(opts AppOptions) App {
	if opts.Model.Theme.Palette == nil {
		opts.Model.Theme = DefaultTheme()
	}
	return App{
		opts:   opts,
		config: opts.Config,
		picker: NewPickerModel(opts.Source, opts.Model.Theme, opts.Config.ScreenW, opts.Config.ScreenH),
	}
}

// WithDone returns a copy of the app that quits when done closes.
func (a App) WithDone(done <-chan struct{}) App {
	a.done = done
	return a
}

// Init initializes the session.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.picker.Init()}
	if a.opts.StartInGame {
		// Init has a value receiver; the first game is opened by Update.
		cmds = append(cmds, func() tea.Msg {
			return openLevelMsg{index: a.opts.Game.StartLevel}
		})
	}
	if a.done != nil {
		done := a.done
		cmds = append(cmds, func() tea.Msg {
			<-done
			return sessionDoneMsg{}
		})
	}
	return tea.Batch(cmds...)
}

// sessionDoneMsg reports that the hosting session is ending.
type sessionDoneMsg struct{}

// openLevelMsg asks the app to start a game on a level.
type openLevelMsg struct {
	index int
}

// Update handles messages for the session.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.config.ScreenW = wsm.Width
		a.config.ScreenH = wsm.Height
		newPicker, _ := a.picker.Update(msg)
		a.picker = newPicker.(PickerModel)
		if a.game == nil {
			return a, nil
		}
	}

	switch msg := msg.(type) {
	case openLevelMsg:
		return a.startGame(msg.index)
	case sessionDoneMsg:
		if a.game != nil {
			a.game.closeGame()
		}
		a.quitting = true
		return a, tea.Quit
	}

	if a.game != nil {
		return a.updateGame(msg)
	}
	return a.updatePicker(msg)
}

func (a App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := a.picker.Update(msg)
	a.picker = newPicker.(PickerModel)

	if a.picker.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if idx, ok := a.picker.Selected(); ok {
		return a.startGame(idx)
	}
	return a, cmd
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := a.game.Update(msg)
	gm := newModel.(Model)
	a.game = &gm

	if gm.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if gm.BackToMenu() {
		last := gm.State().Level - 1
		a.game = nil
		var pickCmd tea.Cmd
		a.picker, pickCmd = a.picker.Rearm(last)
		return a, pickCmd
	}
	return a, cmd
}

func (a App) startGame(index int) (tea.Model, tea.Cmd) {
	gopts := a.opts.Game
	gopts.Source = a.opts.Source
	gopts.StartLevel = index
	gopts.Glyphs = gopts.Glyphs || a.opts.Model.Theme.Glyphs

	mopts := a.opts.Model
	mopts.AllowBack = true

	model := NewModel(colorsort.New(gopts), a.config, mopts)
	a.game = &model
	return a, model.Init()
}

// View renders the current view.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.game != nil {
		return a.game.View()
	}
	return a.picker.View()
}

// RunApp starts a Bubble Tea program for the session flow.
func RunApp(opts AppOptions) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
