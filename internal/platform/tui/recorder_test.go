package tui

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

type recordedSolve struct {
	level string
	moves int
	d     time.Duration
}

type fakeRecorder struct {
	mu       sync.Mutex
	sessions int
	commits  []puzzle.StopReason
	solves   []recordedSolve
}

func (r *fakeRecorder) SessionStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions++
}

func (r *fakeRecorder) SessionEnded(time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions--
}

func (r *fakeRecorder) Committed(_ string, reason puzzle.StopReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits = append(r.commits, reason)
}

func (r *fakeRecorder) Solved(levelID string, moves int, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solves = append(r.solves, recordedSolve{levelID, moves, d})
}

func TestPlayReportsToRecorder(t *testing.T) {
	rec := &fakeRecorder{}
	now := time.Now()
	m := newTestPlay(t, nil, &now).WithRecorder(rec)

	// Straight down closes red on its twin start.
	m = press(m, keySpace, keyDown, keySpace)
	require.Equal(t, []puzzle.StopReason{puzzle.StopClosed}, rec.commits)
	assert.Empty(t, rec.solves)

	m = press(m, runeKey('r'), keyUp)
	now = now.Add(7 * time.Second)
	m = press(m, easySolveKeys...)
	require.True(t, m.IsSolved())

	assert.Len(t, rec.commits, 3)
	assert.Equal(t, []recordedSolve{{"easy", 2, 7 * time.Second}}, rec.solves)
}

func TestSessionPassesRecorderToPlay(t *testing.T) {
	rec := &fakeRecorder{}
	m := NewSessionModel(builtinLevels(t), nil, "bob", nil, 100, 30).WithRecorder(rec)

	m, err := m.StartAt("easy")
	require.NoError(t, err)
	require.NotNil(t, m.play)
	assert.Same(t, rec, m.play.recorder)

	assert.Equal(t, nopRecorder{}, NewSessionModel(nil, nil, "", nil, 80, 24).WithRecorder(nil).recorder)
}
