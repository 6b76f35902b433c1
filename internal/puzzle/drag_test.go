package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

func TestDragBegin(t *testing.T) {
	p := crossingPuzzle(t)
	var d puzzle.Drag

	require.ErrorIs(t, d.Begin(p, puzzle.C(1, 1, 0)), puzzle.ErrUnoccupiedHead)
	assert.False(t, d.Active())

	require.ErrorIs(t, d.Begin(p, puzzle.C(3, 0, 0)), puzzle.ErrUnoccupiedHead)

	require.NoError(t, d.Begin(p, puzzle.C(0, 1, 0)))
	assert.True(t, d.Active())
	assert.Equal(t, puzzle.ColorOrange, d.Color())
	assert.Equal(t, []puzzle.Coord{puzzle.C(0, 1, 0)}, d.Path())
}

func TestDragExtendAndRetreat(t *testing.T) {
	p := crossingPuzzle(t)
	var d puzzle.Drag
	require.NoError(t, d.Begin(p, puzzle.C(0, 0, 0)))

	assert.True(t, d.Extend(p, puzzle.C(1, 0, 0)))
	assert.True(t, d.Extend(p, puzzle.C(1, 1, 0)))
	assert.True(t, d.Extend(p, puzzle.C(1, 1, 1)))
	assert.Equal(t, 4, d.Len())

	assert.False(t, d.Extend(p, puzzle.C(0, 0, 1)), "not adjacent to the end")
	assert.False(t, d.Extend(p, puzzle.C(1, 1, 2)), "outside the cube")
	assert.False(t, d.Extend(p, puzzle.C(1, 0, 1)), "another color's start")
	assert.False(t, d.Extend(p, puzzle.C(1, 1, 1)), "already the end")

	assert.True(t, d.Extend(p, puzzle.C(1, 0, 0)), "retreat")
	assert.Equal(t, []puzzle.Coord{puzzle.C(0, 0, 0), puzzle.C(1, 0, 0)}, d.Path())
	assert.False(t, d.Contains(puzzle.C(1, 1, 0)))

	end, ok := d.End()
	require.True(t, ok)
	assert.Equal(t, puzzle.C(1, 0, 0), end)
}

func TestDragStopsAtTwinStart(t *testing.T) {
	p := crossingPuzzle(t)
	var d puzzle.Drag
	require.NoError(t, d.Begin(p, puzzle.C(0, 0, 0)))

	require.True(t, d.Extend(p, puzzle.C(0, 0, 1)))
	require.True(t, d.Extend(p, puzzle.C(0, 1, 1)))
	assert.False(t, d.Extend(p, puzzle.C(1, 1, 1)), "flow is complete")

	res, err := d.Commit(p)
	require.NoError(t, err)
	assert.True(t, res.Closed())
	assert.False(t, d.Active())
	assert.Zero(t, d.Len())
	assert.True(t, p.IsClosed(puzzle.ColorRed))
}

func TestDragFromSegmentSeedsPrefix(t *testing.T) {
	p := crossingPuzzle(t)
	_, err := p.Commit([]puzzle.Coord{puzzle.C(0, 0, 0), puzzle.C(1, 0, 0), puzzle.C(1, 1, 0)})
	require.NoError(t, err)

	var d puzzle.Drag
	require.NoError(t, d.Begin(p, puzzle.C(1, 0, 0)))
	assert.Equal(t, puzzle.ColorRed, d.Color())
	assert.Equal(t, []puzzle.Coord{puzzle.C(0, 0, 0), puzzle.C(1, 0, 0)}, d.Path())

	require.True(t, d.Extend(p, puzzle.C(1, 1, 0)))
	require.True(t, d.Extend(p, puzzle.C(1, 1, 1)))

	res, err := d.Commit(p)
	require.NoError(t, err)
	assert.Equal(t, puzzle.StopEnd, res.Reason)

	path, ok := p.FlowPath(puzzle.ColorRed)
	require.True(t, ok)
	assert.Equal(t, []puzzle.Coord{
		puzzle.C(0, 0, 0), puzzle.C(1, 0, 0), puzzle.C(1, 1, 0), puzzle.C(1, 1, 1),
	}, path)
}

func TestDragResetLeavesPuzzleAlone(t *testing.T) {
	p := crossingPuzzle(t)
	before := p.Clone()

	var d puzzle.Drag
	require.NoError(t, d.Begin(p, puzzle.C(0, 0, 0)))
	d.Extend(p, puzzle.C(1, 0, 0))
	d.Reset()

	assert.False(t, d.Active())
	assert.True(t, p.Equal(before))

	_, err := d.Commit(p)
	require.ErrorIs(t, err, puzzle.ErrEmptyPath)
}

func TestDragPathIsACopy(t *testing.T) {
	p := crossingPuzzle(t)
	var d puzzle.Drag
	require.NoError(t, d.Begin(p, puzzle.C(0, 0, 0)))

	path := d.Path()
	path[0] = puzzle.C(1, 1, 1)
	assert.Equal(t, puzzle.C(0, 0, 0), d.Path()[0])
}
