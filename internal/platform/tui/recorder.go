package tui

import (
	"time"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

// Recorder receives gameplay events from sessions, e.g. to export metrics.
// Implementations must be safe for concurrent use, since SSH sessions
// share one recorder.
type Recorder interface {
	SessionStarted()
	SessionEnded(d time.Duration)
	Committed(levelID string, reason puzzle.StopReason)
	Solved(levelID string, moves int, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) SessionStarted() {}
func (nopRecorder) SessionEnded(time.Duration) {}
func (nopRecorder) Committed(string, puzzle.StopReason) {}
func (nopRecorder) Solved(string, int, time.Duration) {}
