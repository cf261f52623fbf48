// Package tui drives the game in a terminal with Bubble Tea. It maps keys to
// paddle controls, rasterizes draw commands into character cells and shows
// the retry prompt when a round ends.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after the
// interval implied by tickRate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
