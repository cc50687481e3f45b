package core

import (
	"fmt"
	"strings"
	"unicode"
)

// asciiHeadroom bounds the free slots drawn above a stack.
const asciiHeadroom = 8

// RenderASCII creates a text picture of the session, used for debugging,
// golden tests and the levels command.
//
// Format:
//   - one block per layout row, bases side by side, bottoms aligned
//   - objects use Color.Char; selected objects are lower-case
//   - '.' marks a free slot, blank space lies above a base's capacity
//   - the line under each block carries the base indices
//   - at most asciiHeadroom free slots are drawn above the tallest stack
func RenderASCII(s *Session) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.board
	var sb strings.Builder

	selected := "none"
	if s.selection != nil {
		selected = fmt.Sprintf("#%d (%d)", s.selection.Base, s.selection.Count)
	}
	sb.WriteString(fmt.Sprintf("Bases: %d | Objects: %d | Selected: %s | Undo: %s | Complete: %s\n",
		b.Len(), b.TotalObjects(), selected, yesNo(s.last != nil), yesNo(IsComplete(b))))

	width := 0
	for _, row := range b.rows {
		width = max(width, 4*len(row))
	}
	sb.WriteString(strings.Repeat("-", max(width, 8)) + "\n")

	for _, row := range b.rows {
		height := 0
		for _, idx := range row {
			base := &b.bases[idx]
			height = max(height, min(base.Capacity(), base.Len()+asciiHeadroom))
		}

		for level := height - 1; level >= 0; level-- {
			var line strings.Builder
			for _, idx := range row {
				line.WriteRune(' ')
				line.WriteRune(s.cellChar(idx, level))
				line.WriteString("  ")
			}
			sb.WriteString(strings.TrimRight(line.String(), " ") + "\n")
		}

		var labels strings.Builder
		for _, idx := range row {
			labels.WriteString(fmt.Sprintf("%-4s", fmt.Sprintf("[%d]", idx)))
		}
		sb.WriteString(strings.TrimRight(labels.String(), " ") + "\n")
	}

	return sb.String()
}

func (s *Session) cellChar(base, level int) rune {
	b := &s.board.bases[base]
	switch {
	case level >= b.Capacity():
		return ' '
	case level >= b.Len():
		return '.'
	case s.raised(base, level):
		return unicode.ToLower(b.At(level).Char())
	default:
		return b.At(level).Char()
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
