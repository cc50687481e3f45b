package colorsort

import (
	platformcore "github.com/vovakirdan/tui-colorsort/internal/core"
)

const (
	hudHeight    = 4
	footerHeight = 1
)

// baseSlot is where one base is drawn.
type baseSlot struct {
	row      int
	x        int // left wall
	bottom   int // y of the lowest object slot
	capacity int
	hit      platformcore.Rect
}

// layout places every base of the board on screen. Each layout row is a
// headroom line for raised objects, the slots, a platform line and a label.
type layout struct {
	slots []baseSlot
	rows  [][]int
	objW  int
}

func (l layout) count() int {
	return len(l.slots)
}

// baseAt returns the base under (x, y), or -1.
func (l layout) baseAt(x, y int) int {
	for i, s := range l.slots {
		if s.hit.Contains(x, y) {
			return i
		}
	}
	return -1
}

// vertical returns the base closest to cursor in the next non-empty row in
// direction dir, or cursor when there is none.
func (l layout) vertical(cursor, dir int) int {
	if cursor < 0 || cursor >= len(l.slots) {
		return cursor
	}
	from := l.slots[cursor]
	cx, _ := from.hit.Center()

	for r := from.row + dir; r >= 0 && r < len(l.rows); r += dir {
		if len(l.rows[r]) == 0 {
			continue
		}
		best, bestDist := cursor, -1
		for _, idx := range l.rows[r] {
			x, _ := l.slots[idx].hit.Center()
			d := x - cx
			if d < 0 {
				d = -d
			}
			if bestDist < 0 || d < bestDist {
				best, bestDist = idx, d
			}
		}
		return best
	}
	return cursor
}

// calculateLayout positions the bases of the current board centered in the
// area between the HUD and the status line.
func (g *Game) calculateLayout() {
	g.layout = layout{}
	g.tooSmall = false
	if g.session == nil {
		return
	}

	board := g.session.Board()
	rows := board.Rows()
	baseW := g.opts.ObjectWidth + 2
	gap := g.opts.BaseGap

	availH := g.screenH - hudHeight - footerHeight

	heights := make([]int, len(rows))
	widths := make([]int, len(rows))
	totalH, maxW := 0, 0
	for r, row := range rows {
		maxCap := 0
		for _, idx := range row {
			maxCap = max(maxCap, board.Base(idx).Capacity())
		}
		// Checked before adding so huge capacities cannot overflow.
		if maxCap > availH {
			g.tooSmall = true
			return
		}
		heights[r] = maxCap + 3
		totalH += heights[r]
		if n := len(row); n > 0 {
			widths[r] = n*baseW + (n-1)*gap
		}
		maxW = max(maxW, widths[r])
	}
	if len(rows) > 1 {
		totalH += len(rows) - 1
	}

	if maxW > g.screenW || totalH > availH {
		g.tooSmall = true
		return
	}

	g.layout = layout{
		slots: make([]baseSlot, board.Len()),
		rows:  rows,
		objW:  g.opts.ObjectWidth,
	}
	top := hudHeight + (availH-totalH)/2
	for r, row := range rows {
		left := (g.screenW - widths[r]) / 2
		for col, idx := range row {
			x := left + col*(baseW+gap)
			g.layout.slots[idx] = baseSlot{
				row:      r,
				x:        x,
				bottom:   top + heights[r] - 3,
				capacity: board.Base(idx).Capacity(),
				hit:      platformcore.NewRect(x, top, baseW, heights[r]),
			}
		}
		top += heights[r] + 1
	}

	if g.cursor >= g.layout.count() {
		g.cursor = 0
	}
}
