// Package tui runs Color Sort in a terminal with Bubble Tea, locally or per
// SSH session via Wish. It maps keys and mouse clicks to input frames, drives
// the game tick, and renders the game's screen buffer with lipgloss themes.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// model that scheduled it, so a tick chain left behind by a closed game is
// not picked up by the next one.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
