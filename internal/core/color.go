package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code when rendering.
type Color uint8

// Palette shared by the game renderer and the terminal themes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// AllColors returns every palette entry in declaration order.
func AllColors() []Color {
	colors := make([]Color, 0, int(ColorDarkGray)+1)
	for c := ColorDefault; c <= ColorDarkGray; c++ {
		colors = append(colors, c)
	}
	return colors
}
