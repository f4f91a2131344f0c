// Package tui runs the game in a terminal through Bubble Tea.
// It owns the frame loop, key mapping, rendering and the SSH frontend.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the config carries no usable rate.
const defaultTickRate = 30

// TickMsg carries the wall time of one frame. The model derives the
// simulation step from the gap between consecutive ticks.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
