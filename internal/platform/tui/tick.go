// Package tui provides the Bubble Tea front end for Flow3D.
// It handles the level picker, the play screen, the best-times table and
// the SSH server that hosts them.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to refresh the play clock.
// Clock identifies the play screen that scheduled it; ticks from a screen
// that has since been left are dropped.
type TickMsg struct {
	Clock int64
	Time  time.Time
}

var clockSeq atomic.Int64

// nextClock returns a fresh clock id.
func nextClock() int64 {
	return clockSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(clock int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Clock: clock, Time: t}
	})
}
