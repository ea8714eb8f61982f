// Package tui provides the Bubble Tea shell for the game. It handles
// the terminal loop, input resolution, and per-state rendering; all
// game rules live in the game package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg drives one update/render pass.
type FrameMsg time.Time

// frameCmd returns a command that sends frame messages at the given rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
