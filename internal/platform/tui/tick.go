// Package tui runs games in the terminal with Bubble Tea: the frame loop,
// key and mouse mapping, the menu and scoreboard screens and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameSeconds caps the measured frame time.
const maxFrameSeconds = 0.1

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameSeconds returns the elapsed time between two ticks, clamped to
// [0, maxFrameSeconds]. The first tick uses the nominal frame time.
func frameSeconds(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev).Seconds()
	return min(max(dt, 0), maxFrameSeconds)
}
