// Package tui provides the Bubble Tea host for the arcade games.
// It drives the frame loop, infers key releases, renders the game canvas
// to the terminal and serves sessions over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one frame: release inference, Step, then View.
// Loop identifies the game model that scheduled it, so a tick still in
// flight when a session switches games is dropped.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// newLoopID returns a unique tick loop identifier.
func newLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickInterval returns the frame period for a tick rate, defaulting to 60 Hz.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
