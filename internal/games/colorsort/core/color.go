package core

import (
	"unicode"
	"unicode/utf8"
)

// Color identifies the color of an object. Values are the names used in level
// files ("red", "blue"); two objects with the same name are interchangeable.
type Color string

// Standard color names understood by the renderers. Levels may use other
// names; they are still sortable, just drawn with a generic glyph.
const (
	Red    Color = "red"
	Green  Color = "green"
	Blue   Color = "blue"
	Yellow Color = "yellow"
	Purple Color = "purple"
	Orange Color = "orange"
	Pink   Color = "pink"
	Cyan   Color = "cyan"
	White  Color = "white"
	Gray   Color = "gray"
	Brown  Color = "brown"
	Lime   Color = "lime"
)

var colorChars = map[Color]rune{
	Red:    'R',
	Green:  'G',
	Blue:   'B',
	Yellow: 'Y',
	Purple: 'P',
	Orange: 'O',
	Pink:   'K',
	Cyan:   'C',
	White:  'W',
	Gray:   'A',
	Brown:  'N',
	Lime:   'L',
}

// ParseColor reads a color name from a level file. Names are identifiers and
// are kept verbatim: "Red" and "red" are different colors.
func ParseColor(s string) Color {
	return Color(s)
}

// String returns the color name.
func (c Color) String() string {
	return string(c)
}

// Char returns the single-character symbol for ASCII rendering.
// Unknown colors use the upper-cased first letter of their name.
func (c Color) Char() rune {
	if ch, ok := colorChars[c]; ok {
		return ch
	}
	r, _ := utf8.DecodeRuneInString(string(c))
	if r == utf8.RuneError {
		return '?'
	}
	return unicode.ToUpper(r)
}

// IsStandard reports whether the color has a dedicated glyph and palette entry.
func (c Color) IsStandard() bool {
	_, ok := colorChars[c]
	return ok
}
