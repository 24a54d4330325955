// Package tui provides the Bubble Tea front end for the game. It maps keys
// to session commands, animates the dice and draws the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the dice animation by one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame at tickRate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
