// Package tui provides the Bubble Tea integration: the frame loop, key
// mapping, styling and the match history view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick. In uncapped mode it fires immediately,
// so the loop runs as fast as the host permits.
func tickCmd(fps int, uncapped bool) tea.Cmd {
	if uncapped {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
