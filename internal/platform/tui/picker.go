package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gamecore "github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels"
)

// PickerKeyMap defines the key bindings for the level picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Select, k.Quit},
	}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// levelsLoadedMsg carries the result of listing the level source.
type levelsLoadedMsg struct {
	levels []levels.Level
	err    error
}

func loadLevelsCmd(src levels.Source) tea.Cmd {
	return func() tea.Msg {
		lvls, err := src.List(context.Background())
		return levelsLoadedMsg{levels: lvls, err: err}
	}
}

// PickerModel lists the levels of a source in a table and lets the player
// choose one.
type PickerModel struct {
	source   levels.Source
	levels   []levels.Level
	err      error
	loading  bool
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	theme    Theme
	width    int
	height   int
	selected int // -1 while choosing
	quitting bool
}

// NewPickerModel creates a level picker for src.
func NewPickerModel(src levels.Source, theme Theme, width, height int) PickerModel {
	m := PickerModel{
		source:   src,
		loading:  true,
		help:     help.New(),
		keys:     DefaultPickerKeyMap(),
		theme:    theme,
		width:    width,
		height:   height,
		selected: -1,
	}
	m.help.Width = width
	m.table = m.createTable()
	return m
}

// Init starts listing the levels.
func (m PickerModel) Init() tea.Cmd {
	return loadLevelsCmd(m.source)
}

// createTable creates the level table sized to the window.
func (m PickerModel) createTable() table.Model {
	nameW := m.width - 4 - 4 - 12 - 6 - 7 - 5 - 12
	nameW = max(nameW, 12)
	nameW = min(nameW, 32)

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "ID", Width: 12},
		{Title: "Name", Width: nameW},
		{Title: "Bases", Width: 6},
		{Title: "Colors", Width: 7},
		{Title: "Par", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = m.theme.TableHeader
	s.Selected = m.theme.TableActive
	t.SetStyles(s)
	return t
}

// levelRow formats one level for the table.
func levelRow(i int, l levels.Level) table.Row {
	par := "-"
	if l.MinMoves >= 0 {
		par = strconv.Itoa(l.MinMoves)
	}
	bases, colors := "-", "-"
	if board, err := gamecore.NewBoard(l.Definition); err == nil {
		st := gamecore.ComputeStats(board)
		bases = strconv.Itoa(st.Bases)
		colors = strconv.Itoa(len(st.ByColor))
	}
	return table.Row{
		strconv.Itoa(i + 1),
		l.ID,
		l.Title(),
		bases,
		colors,
		par,
	}
}

func (m *PickerModel) updateTableRows() {
	rows := make([]table.Row, len(m.levels))
	for i, l := range m.levels {
		rows[i] = levelRow(i, l)
	}
	m.table.SetRows(rows)
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case levelsLoadedMsg:
		m.loading = false
		m.levels = msg.levels
		m.err = msg.err
		m.updateTableRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.selected = m.table.Cursor()
			}
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("C O L O R   S O R T"), m.width))
	b.WriteString("\n\n")

	var body string
	switch {
	case m.loading:
		body = m.theme.Description.Render("Loading levels...")
	case m.err != nil:
		body = m.theme.Description.Render("Could not load levels:\n" + m.err.Error())
	case len(m.levels) == 0:
		body = m.theme.Description.Render("No levels found.")
	default:
		b.WriteString(centerText(m.theme.Description.Render(fmt.Sprintf("%d levels - choose one to play", len(m.levels))), m.width))
		b.WriteString("\n")
		body = m.table.View()
	}
	b.WriteString(m.theme.Border.Render(body))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen level index.
func (m PickerModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// Levels returns the listed levels.
func (m PickerModel) Levels() []levels.Level {
	return m.levels
}

// Rearm clears the selection and moves the cursor to index, for returning
// to the picker after a game. The level list is reloaded.
func (m PickerModel) Rearm(index int) (PickerModel, tea.Cmd) {
	m.selected = -1
	m.quitting = false
	if index >= 0 && index < len(m.levels) {
		m.table.SetCursor(index)
	}
	return m, loadLevelsCmd(m.source)
}

// IsQuitting returns true if the user wants to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text so it appears centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
