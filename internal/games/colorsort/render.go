package colorsort

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/tui-colorsort/internal/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
)

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.finished:
		g.renderOverlay(dst, "All levels cleared!", "Press R to play again")
		return
	case g.loadErr != nil:
		g.renderOverlay(dst, "Could not load level", "R to retry, N/P to switch level")
		return
	case g.session == nil:
		g.renderOverlay(dst, "Loading...", "")
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderStatus(dst)

	switch {
	case g.loading:
		g.renderOverlay(dst, "Loading...", "")
	case g.cleared:
		g.renderOverlay(dst, "Level cleared!", "Press Space for the next level")
	}
}

// renderHUD draws the title bar and controls.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " Color Sort"
	if g.session != nil {
		hud += " | Level: " + strconv.Itoa(g.levelIndex+1) + "/" + strconv.Itoa(g.total) +
			" | " + g.level.Title()
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)

	controls := " ←/→/↑/↓: Base | Space: Pick/Drop | "
	dst.DrawTextWithColor(0, 2, controls, platformcore.ColorGray)
	x := len([]rune(controls))

	undoColor := platformcore.ColorDarkGray
	if g.session != nil && g.session.CanUndo() {
		undoColor = platformcore.ColorWhite
	}
	dst.DrawTextWithColor(x, 2, "U: Undo", undoColor)
	x += len("U: Undo")

	rest := " | R: Restart | N/P: Level"
	if g.opts.ShowHints {
		rest = " | H: Hint" + rest
	}
	dst.DrawTextWithColor(x, 2, rest, platformcore.ColorGray)

	dst.DrawHLine(0, 3, dst.Width(), '─', platformcore.ColorGray)
}

// renderBoard draws every base with its objects.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	board := g.session.Board()
	sel, hasSel := g.session.Selection()

	for i, slot := range g.layout.slots {
		base := board.Base(i)
		if base == nil {
			continue
		}

		wallColor := platformcore.ColorGray
		switch {
		case i == g.cursor:
			wallColor = platformcore.ColorYellow
		case hasSel && sel.Base == i:
			wallColor = platformcore.ColorWhite
		}

		right := slot.x + g.layout.objW + 1
		for k := 0; k < slot.capacity; k++ {
			y := slot.bottom - k
			dst.SetWithColor(slot.x, y, '│', wallColor)
			dst.SetWithColor(right, y, '│', wallColor)
		}
		dst.SetWithColor(slot.x, slot.bottom+1, '└', wallColor)
		dst.DrawHLine(slot.x+1, slot.bottom+1, g.layout.objW, '─', wallColor)
		dst.SetWithColor(right, slot.bottom+1, '┘', wallColor)

		for k := 0; k < base.Len(); k++ {
			y := slot.bottom - k
			if g.session.IsRaised(i, k) {
				y--
			}
			g.renderObject(dst, slot.x+1, y, base.At(k))
		}

		labelColor := platformcore.ColorGray
		if i == g.cursor {
			labelColor = platformcore.ColorYellow
		}
		if g.hint != nil && (g.hint.From == i || g.hint.To == i) {
			labelColor = platformcore.ColorBrightCyan
		}
		label := strconv.Itoa(i + 1)
		if i == g.cursor {
			label = "▲" + label
		}
		lx := slot.x + (g.layout.objW+2-len([]rune(label)))/2
		dst.DrawTextWithColor(lx, slot.bottom+2, label, labelColor)
	}
}

// renderObject draws one object as a run of block characters.
func (g *Game) renderObject(dst *platformcore.Screen, x, y int, c core.Color) {
	glyph := '█'
	if g.opts.Glyphs || !c.IsStandard() {
		glyph = c.Char()
	}
	color := objectColor(c)
	for dx := 0; dx < g.layout.objW; dx++ {
		dst.SetWithColor(x+dx, y, glyph, color)
	}
}

// renderStatus draws the status line at the bottom of the screen.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	y := dst.Height() - 1
	if g.status != "" {
		color := platformcore.ColorGray
		switch g.statusKind {
		case statusWarn:
			color = platformcore.ColorOrange
		case statusHint:
			color = platformcore.ColorBrightCyan
		}
		dst.DrawTextWithColor(1, y, g.status, color)
		return
	}

	if sel, ok := g.session.Selection(); ok {
		dst.DrawTextWithColor(1, y, fmt.Sprintf("Holding %d from base %d", sel.Count, sel.Base+1), platformcore.ColorWhite)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	if line2 == "" {
		boxH = 3
	}
	box := platformcore.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)

	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightWhite)
	if line2 != "" {
		dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorGray)
	}
}

// objectColor maps an object color to a terminal color.
func objectColor(c core.Color) platformcore.Color {
	switch c {
	case core.Red:
		return platformcore.ColorRed
	case core.Green:
		return platformcore.ColorGreen
	case core.Blue:
		return platformcore.ColorBlue
	case core.Yellow:
		return platformcore.ColorYellow
	case core.Purple:
		return platformcore.ColorMagenta
	case core.Orange:
		return platformcore.ColorOrange
	case core.Pink:
		return platformcore.ColorBrightMagenta
	case core.Cyan:
		return platformcore.ColorCyan
	case core.White:
		return platformcore.ColorBrightWhite
	case core.Gray:
		return platformcore.ColorGray
	case core.Brown:
		return platformcore.ColorDarkGray
	case core.Lime:
		return platformcore.ColorBrightGreen
	default:
		return platformcore.ColorWhite
	}
}
