// Package tui provides the Bubble Tea frontend for slither, locally and over SSH.
// It handles the terminal UI loop, mouse and key mapping, menus and run recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg advances the game by one step.
type TickMsg time.Time

// tickInterval is the frame period for ticksPerSecond, falling back to 60Hz.
func tickInterval(ticksPerSecond int) time.Duration {
	if ticksPerSecond <= 0 {
		ticksPerSecond = defaultTickRate
	}
	return time.Second / time.Duration(ticksPerSecond)
}

func tickCmd(ticksPerSecond int) tea.Cmd {
	return tea.Tick(tickInterval(ticksPerSecond), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
