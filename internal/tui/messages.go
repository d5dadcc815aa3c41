package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	animFPS       = 60
	frameInterval = time.Second / animFPS
	flashDuration = 120 * time.Millisecond

	// settleTolerance is how close (rows, rows/frame) the spring must
	// get to its target before the tick loop stops.
	settleTolerance = 0.25
)

// frameMsg advances the sheet spring by one animation frame.
type frameMsg struct{}

// flashExpiredMsg clears the pressed-key highlight on the keypad.
type flashExpiredMsg struct{}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func flashTick() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashExpiredMsg{} })
}
