// Package tui runs flappy variants in the terminal with Bubble Tea: it
// drives the fixed-rate tick loop, maps keys to actions, and draws the
// screen buffer with lipgloss colors.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends the next tick after one interval.
// A non-positive rate falls back to 60 ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
