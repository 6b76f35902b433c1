package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

func TestSolveAndApply(t *testing.T) {
	p := twoLayerPuzzle(t)

	res := puzzle.Solve(p, 0)
	require.True(t, res.Solved)
	assert.False(t, res.Exhausted)
	assert.Positive(t, res.Steps)
	require.Len(t, res.Solution, 2)

	for color, flow := range res.Solution {
		pair, ok := p.PairOf(color)
		require.True(t, ok)
		assert.Equal(t, pair.A, flow[0])
		assert.Equal(t, pair.B, flow[len(flow)-1])
	}

	require.NoError(t, puzzle.Apply(p, res.Solution))
	assert.True(t, p.CheckWin())
}

func TestSolveIgnoresDrawnFlows(t *testing.T) {
	p := twoLayerPuzzle(t)
	_, err := p.Commit([]puzzle.Coord{puzzle.C(0, 0, 0), puzzle.C(0, 0, 1)})
	require.NoError(t, err)

	res := puzzle.Solve(p, 0)
	require.True(t, res.Solved)

	require.NoError(t, puzzle.Apply(p, res.Solution))
	assert.True(t, p.CheckWin())
}

func TestSolveReportsUnsolvable(t *testing.T) {
	// Parity rules this cube out: red joins two even cells, orange an odd
	// and an even one, and their lengths cannot sum to eight.
	res := puzzle.Solve(crossingPuzzle(t), 0)
	assert.False(t, res.Solved)
	assert.False(t, res.Exhausted)
	assert.Nil(t, res.Solution)
}

func TestSolveStepBudget(t *testing.T) {
	p, err := puzzle.New(4, []puzzle.Coord{
		puzzle.C(0, 0, 0), puzzle.C(3, 3, 3),
	})
	require.NoError(t, err)

	res := puzzle.Solve(p, 5)
	assert.False(t, res.Solved)
	assert.True(t, res.Exhausted)
	assert.LessOrEqual(t, res.Steps, 6)
}

func TestApplyMissingColor(t *testing.T) {
	p := twoLayerPuzzle(t)
	err := puzzle.Apply(p, puzzle.Solution{
		puzzle.ColorRed: {puzzle.C(0, 0, 0), puzzle.C(1, 0, 0), puzzle.C(1, 1, 0), puzzle.C(0, 1, 0)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "green")
}

func TestApplyRejectsOpenFlow(t *testing.T) {
	p := twoLayerPuzzle(t)
	err := puzzle.Apply(p, puzzle.Solution{
		puzzle.ColorRed:   {puzzle.C(0, 0, 0), puzzle.C(1, 0, 0)},
		puzzle.ColorGreen: {puzzle.C(0, 0, 1), puzzle.C(1, 0, 1), puzzle.C(1, 1, 1), puzzle.C(0, 1, 1)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "red flow stopped end")
}
