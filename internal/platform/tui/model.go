package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-colorsort/internal/core"
	"github.com/vovakirdan/tui-colorsort/internal/logging"
)

// ModelOptions configures a game Model.
type ModelOptions struct {
	Theme  Theme
	Keys   KeyMap
	Logger *log.Logger

	// ScreenshotDir overrides the XDG data directory for ctrl+s dumps.
	ScreenshotDir string

	// AllowBack lets Esc leave the game, for models nested in an App.
	AllowBack bool
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	theme      Theme
	logger     *log.Logger
	shotDir    string
	tickGen    uint64
	allowBack  bool
	showHelp   bool
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if opts.Theme.Palette == nil {
		opts.Theme = DefaultTheme()
	}
	if opts.Keys.Quit.Keys() == nil {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       opts.Keys,
		help:       h,
		theme:      opts.Theme,
		logger:     opts.Logger,
		shotDir:    opts.ScreenshotDir,
		tickGen:    nextTickGen(),
		allowBack:  opts.AllowBack,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.closeGame()
		return m, tea.Quit
	case core.ActionBack:
		if m.showHelp {
			m.showHelp = false
		} else if m.allowBack {
			m.back = true
			m.closeGame()
		}
	case core.ActionNone:
	default:
		if !m.showHelp {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleResize keeps the game state and only adapts the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

func (m *Model) closeGame() {
	if c, ok := m.game.(io.Closer); ok {
		if err := c.Close(); err != nil {
			m.logger.Warn("closing game", "err", err)
		}
	}
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	var path string
	if m.shotDir != "" {
		if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
			m.logger.Error("screenshot directory", "err", err)
			return ""
		}
		path = filepath.Join(m.shotDir, name)
	} else {
		p, err := xdg.DataFile(filepath.Join("colorsort", "screenshots", name))
		if err != nil {
			m.logger.Error("screenshot directory", "err", err)
			return ""
		}
		path = p
	}

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot", "err", err)
		return ""
	}
	m.logger.Info("screenshot saved", "path", path)
	return path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		h := m.help
		h.ShowAll = true
		box := m.theme.Border.Render(
			m.theme.Title.Render("Color Sort - keys") + "\n\n" + h.View(m.keys),
		)
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme.Palette)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts a Bubble Tea program for the game.
func Run(game core.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
