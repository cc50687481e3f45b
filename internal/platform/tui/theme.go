package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-colorsort/internal/core"
)

// Theme contains the visual styles for the game screen and the level picker.
type Theme struct {
	Name string

	// Palette maps screen colors to terminal styles.
	Palette map[core.Color]lipgloss.Style

	// Glyphs asks the game to draw objects as color letters, for palettes
	// where colors are hard to tell apart.
	Glyphs bool

	// Level picker styles
	Title       lipgloss.Style
	Description lipgloss.Style
	Border      lipgloss.Style
	Help        lipgloss.Style
	TableHeader lipgloss.Style
	TableActive lipgloss.Style
}

type paletteCodes map[core.Color]string

var defaultCodes = paletteCodes{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
}

var pastelCodes = paletteCodes{
	core.ColorRed:           "210",
	core.ColorGreen:         "157",
	core.ColorYellow:        "229",
	core.ColorBlue:          "111",
	core.ColorMagenta:       "183",
	core.ColorCyan:          "123",
	core.ColorWhite:         "253",
	core.ColorBrightRed:     "217",
	core.ColorBrightGreen:   "194",
	core.ColorBrightYellow:  "230",
	core.ColorBrightBlue:    "153",
	core.ColorBrightMagenta: "218",
	core.ColorBrightCyan:    "159",
	core.ColorBrightWhite:   "255",
	core.ColorOrange:        "216",
	core.ColorGray:          "248",
	core.ColorDarkGray:      "240",
}

var monoCodes = paletteCodes{
	core.ColorRed:           "252",
	core.ColorGreen:         "250",
	core.ColorYellow:        "255",
	core.ColorBlue:          "246",
	core.ColorMagenta:       "248",
	core.ColorCyan:          "253",
	core.ColorWhite:         "252",
	core.ColorBrightRed:     "254",
	core.ColorBrightGreen:   "251",
	core.ColorBrightYellow:  "255",
	core.ColorBrightBlue:    "249",
	core.ColorBrightMagenta: "250",
	core.ColorBrightCyan:    "254",
	core.ColorBrightWhite:   "255",
	core.ColorOrange:        "250",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "239",
}

var themes = map[string]struct {
	codes  paletteCodes
	accent string
	glyphs bool
}{
	"default": {codes: defaultCodes, accent: "226"},
	"pastel":  {codes: pastelCodes, accent: "229"},
	"mono":    {codes: monoCodes, accent: "255", glyphs: true},
}

// ThemeNames returns the known theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewTheme builds the named theme for renderer r. A nil renderer uses the
// process-wide default; SSH sessions pass their own so color detection
// follows the remote terminal.
func NewTheme(name string, r *lipgloss.Renderer) (Theme, error) {
	tdef, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (want one of %v)", name, ThemeNames())
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	palette := make(map[core.Color]lipgloss.Style, len(tdef.codes)+1)
	palette[core.ColorDefault] = r.NewStyle()
	for c, code := range tdef.codes {
		palette[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}

	return Theme{
		Name:        name,
		Palette:     palette,
		Glyphs:      tdef.glyphs,
		Title:       r.NewStyle().Foreground(lipgloss.Color(tdef.codes[core.ColorBrightCyan])).Bold(true),
		Description: r.NewStyle().Foreground(lipgloss.Color(tdef.codes[core.ColorGray])),
		Border:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Help:        r.NewStyle().Foreground(lipgloss.Color("241")),
		TableHeader: r.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true),
		TableActive: r.NewStyle().Foreground(lipgloss.Color(tdef.accent)).Background(lipgloss.Color("57")),
	}, nil
}

// DefaultTheme returns the default theme on the default renderer.
func DefaultTheme() Theme {
	t, _ := NewTheme("default", nil)
	return t
}
