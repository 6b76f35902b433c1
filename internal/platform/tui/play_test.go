package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flow3d/internal/levels"
	"github.com/vovakirdan/flow3d/internal/puzzle"
	"github.com/vovakirdan/flow3d/internal/storage"
)

var (
	keySpace = runeKey(' ')
	keyLeft  = specialKey(tea.KeyLeft)
	keyRight = specialKey(tea.KeyRight)
	keyUp    = specialKey(tea.KeyUp)
	keyDown  = specialKey(tea.KeyDown)
	keyIn    = runeKey(']')
	keyEsc   = specialKey(tea.KeyEsc)
)

// easySolveKeys solves the built-in easy level from its initial cursor.
var easySolveKeys = []tea.KeyMsg{
	// red: (0,0,0) -> (1,0,0) -> (1,1,0) -> (0,1,0)
	keySpace, keyRight, keyDown, keyLeft, keySpace,
	// orange from its far start: (0,1,1) -> (1,1,1) -> (1,0,1) -> (0,0,1)
	keyIn, keySpace, keyRight, keyUp, keyLeft, keySpace,
}

func loadLevel(t *testing.T, id string) levels.Level {
	t.Helper()
	lvl, err := levels.NewLoader("", nil).LoadByID(id)
	require.NoError(t, err)
	return lvl
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestPlay returns a play model on the easy level whose clock reads *now.
func newTestPlay(t *testing.T, store *storage.Store, now *time.Time) PlayModel {
	t.Helper()
	m, err := NewPlayModel(loadLevel(t, "easy"), store, "alice", 100, 30)
	require.NoError(t, err)
	m.now = func() time.Time { return *now }
	m.started = *now
	return m
}

func press(m PlayModel, keys ...tea.KeyMsg) PlayModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(PlayModel)
	}
	return m
}

func TestPlayStartsOnFirstPair(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	assert.Equal(t, puzzle.C(0, 0, 0), m.Cursor())
	assert.False(t, m.Dragging())
	assert.False(t, m.IsSolved())
	assert.Contains(t, m.View(), "Easy")
}

func TestPlaySolvesAndRecords(t *testing.T) {
	store := openStore(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := newTestPlay(t, store, &now)

	m = press(m, easySolveKeys[:5]...)
	assert.True(t, m.Puzzle().IsClosed(puzzle.ColorRed))
	assert.Equal(t, "red connected", m.Message())
	assert.False(t, m.IsSolved())

	now = now.Add(42 * time.Second)
	m = press(m, easySolveKeys[5:]...)

	require.True(t, m.IsSolved())
	assert.Equal(t, 2, m.Moves())
	assert.True(t, m.Puzzle().CheckWin())
	assert.Contains(t, m.View(), "SOLVED!")

	solves, err := store.BestSolves("easy", 10)
	require.NoError(t, err)
	require.Len(t, solves, 1)
	assert.Equal(t, "alice", solves[0].Player)
	assert.Equal(t, 2, solves[0].Moves)
	assert.Equal(t, 42*time.Second, solves[0].Duration)

	// A solved board ignores edits and records nothing more.
	m = press(m, runeKey('x'), keySpace)
	assert.True(t, m.Puzzle().CheckWin())
	solves, err = store.BestSolves("easy", 10)
	require.NoError(t, err)
	assert.Len(t, solves, 1)
}

func TestPlayNextOnlyAfterWin(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	m = press(m, runeKey('n'))
	assert.False(t, m.WantsNext())
	assert.Equal(t, "solve the level first", m.Message())

	m = press(m, easySolveKeys...)
	m = press(m, runeKey('n'))
	assert.True(t, m.WantsNext())
}

func TestPlayRefusesBlockedMove(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	m = press(m, keySpace, keyIn)
	assert.True(t, m.Dragging())
	assert.Equal(t, puzzle.C(0, 0, 0), m.Cursor(), "orange start is not drawable for red")
	assert.Contains(t, m.Message(), "cannot draw red")

	m = press(m, keyLeft)
	assert.Equal(t, puzzle.C(0, 0, 0), m.Cursor(), "cursor stays inside the cube")
}

func TestPlayCancelLeavesPuzzleUntouched(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	m = press(m, keySpace, keyRight, keyDown, keyEsc)
	assert.False(t, m.Dragging())
	assert.Equal(t, 0, m.Moves())
	assert.True(t, m.Puzzle().Cell(puzzle.C(1, 0, 0)).IsEmpty())
	assert.True(t, m.Puzzle().Cell(puzzle.C(1, 1, 0)).IsEmpty())
	assert.False(t, m.BackToMenu())

	m = press(m, keyEsc)
	assert.True(t, m.BackToMenu(), "esc without a drag leaves the level")
}

func TestPlayRetreatShortensDrag(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	m = press(m, keySpace, keyRight, keyDown, keyUp, keySpace)
	assert.Equal(t, 1, m.Moves())
	assert.Equal(t, puzzle.SegmentCell(puzzle.ColorRed), m.Puzzle().Cell(puzzle.C(1, 0, 0)).WithoutOut())
	assert.True(t, m.Puzzle().Cell(puzzle.C(1, 1, 0)).IsEmpty())
	assert.Equal(t, "red drawn, 1 links", m.Message())
}

func TestPlayGrabEmptyCell(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	m = press(m, keyRight, keySpace)
	assert.False(t, m.Dragging())
	assert.Equal(t, "grab a start or a flow", m.Message())
}

func TestPlayGrabSegmentKeepsPrefix(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	// Draw red to (1,1,0), then regrab it at (1,0,0) and turn into layer 1.
	m = press(m, keySpace, keyRight, keyDown, keySpace)
	m = press(m, keyUp, keySpace, keyIn, keySpace)

	path, ok := m.Puzzle().FlowPath(puzzle.ColorRed)
	require.True(t, ok)
	assert.Equal(t, []puzzle.Coord{puzzle.C(0, 0, 0), puzzle.C(1, 0, 0), puzzle.C(1, 0, 1)}, path)
	assert.True(t, m.Puzzle().Cell(puzzle.C(1, 1, 0)).IsEmpty())
}

func TestPlayClearAndRestart(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	m = press(m, keySpace, keyRight, keySpace)
	require.Equal(t, 1, m.Moves())
	require.False(t, m.Puzzle().Cell(puzzle.C(1, 0, 0)).IsEmpty())

	m = press(m, runeKey('x'))
	assert.True(t, m.Puzzle().Cell(puzzle.C(1, 0, 0)).IsEmpty())
	assert.Equal(t, "red cleared", m.Message())

	m = press(m, keyLeft, keySpace, keyRight, keySpace, runeKey('r'))
	assert.Equal(t, 0, m.Moves())
	assert.Equal(t, 2*len(m.Puzzle().Pairs()), m.Puzzle().Stats().Filled, "only starts remain")
}

func TestPlayQuit(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	next, cmd := m.Update(runeKey('q'))
	m = next.(PlayModel)
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestPlayClock(t *testing.T) {
	now := time.Now()
	m := newTestPlay(t, nil, &now)

	now = now.Add(3 * time.Second)
	next, cmd := m.Update(TickMsg{Clock: m.clock + 1, Time: now})
	m = next.(PlayModel)
	assert.Nil(t, cmd, "stale ticks stop the chain")
	assert.Zero(t, m.elapsed)

	next, cmd = m.Update(TickMsg{Clock: m.clock, Time: now})
	m = next.(PlayModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, 3*time.Second, m.elapsed)
	assert.Contains(t, m.View(), "0:03")
}

func TestDescribeCommit(t *testing.T) {
	assert.Equal(t, "blue blocked at (1,0,2)", describeCommit(puzzle.CommitResult{
		Color: puzzle.ColorBlue, Reason: puzzle.StopBlocked, BlockedAt: puzzle.C(1, 0, 2),
	}))
	assert.Equal(t, "red drawn, 3 links (cut green, aqua)", describeCommit(puzzle.CommitResult{
		Color: puzzle.ColorRed, Steps: 3, Severed: []puzzle.Color{puzzle.ColorGreen, puzzle.ColorAqua},
	}))
}
