package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

func TestRenderLayer(t *testing.T) {
	p := twoLayerPuzzle(t)
	opt := puzzle.DefaultRenderOptions()

	assert.Equal(t, "R.\nR.\n", puzzle.RenderLayer(p, 0, opt))
	assert.Equal(t, "G.\nG.\n", puzzle.RenderLayer(p, 1, opt))

	_, err := p.Commit([]puzzle.Coord{puzzle.C(0, 0, 0), puzzle.C(1, 0, 0), puzzle.C(1, 1, 0), puzzle.C(0, 1, 0)})
	require.NoError(t, err)

	assert.Equal(t, "Rr\nRr\n", puzzle.RenderLayer(p, 0, opt))

	opt.ShowLinks = true
	assert.Equal(t, "Rv\nR<\n", puzzle.RenderLayer(p, 0, opt))
}

func TestRenderLayerWithCoords(t *testing.T) {
	p := twoLayerPuzzle(t)
	opt := puzzle.DefaultRenderOptions()
	opt.ShowCoords = true
	opt.EmptyChar = '_'

	expected := "  01\n" +
		" 0R_\n" +
		" 1R_\n"
	assert.Equal(t, expected, puzzle.RenderLayer(p, 0, opt))
}

func TestRenderASCII(t *testing.T) {
	p := twoLayerPuzzle(t)

	expected := "z=0\nR.\nR.\n\nz=1\nG.\nG.\n"
	assert.Equal(t, expected, puzzle.RenderASCII(p, puzzle.DefaultRenderOptions()))
}

func TestCellChar(t *testing.T) {
	opt := puzzle.RenderOptions{}

	assert.Equal(t, '.', puzzle.CellChar(puzzle.Empty(), opt), "zero EmptyChar falls back")
	assert.Equal(t, 'M', puzzle.CellChar(puzzle.StartCell(puzzle.ColorMagenta), opt))
	assert.Equal(t, 'm', puzzle.CellChar(puzzle.SegmentCell(puzzle.ColorMagenta), opt))

	opt.ShowLinks = true
	testCases := []struct {
		dir  puzzle.Dir
		char rune
	}{
		{puzzle.DirLeft, '<'},
		{puzzle.DirRight, '>'},
		{puzzle.DirUp, '^'},
		{puzzle.DirDown, 'v'},
		{puzzle.DirOut, 'o'},
		{puzzle.DirIn, 'x'},
	}
	for _, tc := range testCases {
		cell := puzzle.SegmentCell(puzzle.ColorBlue).WithOut(tc.dir)
		assert.Equal(t, tc.char, puzzle.CellChar(cell, opt), "direction %v", tc.dir)
	}
	assert.Equal(t, 'b', puzzle.CellChar(puzzle.SegmentCell(puzzle.ColorBlue), opt), "unlinked tail")
}
