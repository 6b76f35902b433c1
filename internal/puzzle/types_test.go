package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

func TestCoordOperations(t *testing.T) {
	c := puzzle.C(2, 3, 4)

	assert.Equal(t, puzzle.C(3, 2, 5), c.Add(1, -1, 1))
	assert.Equal(t, puzzle.C(3, 4, 5), c.AddCoord(puzzle.C(1, 1, 1)))
	assert.True(t, c.Equal(puzzle.C(2, 3, 4)))
	assert.False(t, c.Equal(puzzle.C(2, 3, 5)))
	assert.Equal(t, "(2,3,4)", c.String())

	assert.Equal(t, puzzle.C(3, 3, 4), c.Step(puzzle.DirRight))
	assert.Equal(t, puzzle.C(2, 2, 4), c.Step(puzzle.DirUp))
	assert.Equal(t, puzzle.C(2, 3, 5), c.Step(puzzle.DirIn))
	assert.Equal(t, puzzle.C(2, 3, 3), c.Step(puzzle.DirOut))

	assert.True(t, c.Adjacent(puzzle.C(2, 3, 3)))
	assert.False(t, c.Adjacent(puzzle.C(2, 3, 2)))
	assert.False(t, c.Adjacent(puzzle.C(3, 4, 4)))
	assert.False(t, c.Adjacent(c))
}

func TestDirBetween(t *testing.T) {
	origin := puzzle.C(1, 1, 1)

	testCases := []struct {
		name string
		to   puzzle.Coord
		dir  puzzle.Dir
		ok   bool
	}{
		{"right", puzzle.C(2, 1, 1), puzzle.DirRight, true},
		{"left", puzzle.C(0, 1, 1), puzzle.DirLeft, true},
		{"down", puzzle.C(1, 2, 1), puzzle.DirDown, true},
		{"up", puzzle.C(1, 0, 1), puzzle.DirUp, true},
		{"in", puzzle.C(1, 1, 2), puzzle.DirIn, true},
		{"out", puzzle.C(1, 1, 0), puzzle.DirOut, true},
		{"same point", origin, 0, false},
		{"two steps on one axis", puzzle.C(3, 1, 1), 0, false},
		{"diagonal", puzzle.C(2, 2, 1), 0, false},
		{"three axes", puzzle.C(2, 2, 2), 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := puzzle.DirBetween(origin, tc.to)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.dir, d)
				assert.Equal(t, tc.to, origin.Step(d))
			}
		})
	}
}

func TestDirOpposite(t *testing.T) {
	for _, d := range puzzle.AllDirs() {
		opp := d.Opposite()
		assert.NotEqual(t, d, opp, "direction %v", d)
		assert.Equal(t, d, opp.Opposite(), "direction %v", d)

		c := puzzle.C(5, 5, 5)
		assert.Equal(t, c, c.Step(d).Step(opp), "direction %v", d)
	}
	assert.Equal(t, puzzle.DirIn, puzzle.DirOut.Opposite())
	assert.Equal(t, puzzle.DirLeft, puzzle.DirRight.Opposite())
	assert.Equal(t, puzzle.DirUp, puzzle.DirDown.Opposite())
}

func TestColorAt(t *testing.T) {
	testCases := []struct {
		index    int
		expected puzzle.Color
	}{
		{0, puzzle.ColorRed},
		{1, puzzle.ColorGreen},
		{6, puzzle.ColorAqua},
		{7, puzzle.ColorRed},
		{8, puzzle.ColorGreen},
		{13, puzzle.ColorAqua},
		{-1, puzzle.ColorGreen},
		{-8, puzzle.ColorGreen},
		{-13, puzzle.ColorAqua},
		{-14, puzzle.ColorRed},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, puzzle.ColorAt(tc.index), "ColorAt(%d)", tc.index)
	}
}

func TestColorIndexIsStable(t *testing.T) {
	for i, c := range puzzle.AllColors() {
		assert.Equal(t, i, c.Index())
		assert.Equal(t, c, puzzle.ColorAt(i))
	}
	assert.Len(t, puzzle.AllColors(), int(puzzle.ColorCount))
}

func TestColorParsing(t *testing.T) {
	testCases := []struct {
		input    string
		expected puzzle.Color
		ok       bool
	}{
		{"red", puzzle.ColorRed, true},
		{"RED", puzzle.ColorRed, true},
		{"Orange", puzzle.ColorOrange, true},
		{"o", puzzle.ColorOrange, true},
		{"magenta", puzzle.ColorMagenta, true},
		{"aqua", puzzle.ColorAqua, true},
		{" blue ", puzzle.ColorBlue, true},
		{"purple", puzzle.ColorRed, false},
	}

	for _, tc := range testCases {
		color, ok := puzzle.ParseColor(tc.input)
		assert.Equal(t, tc.ok, ok, "ParseColor(%q)", tc.input)
		if tc.ok {
			assert.Equal(t, tc.expected, color, "ParseColor(%q)", tc.input)
		}
	}
}

func TestColorChars(t *testing.T) {
	assert.Equal(t, 'R', puzzle.ColorRed.Char())
	assert.Equal(t, 'r', puzzle.ColorRed.LowerChar())
	assert.Equal(t, 'O', puzzle.ColorOrange.Char())
	assert.Equal(t, 'a', puzzle.ColorAqua.LowerChar())
}

func TestCellVariants(t *testing.T) {
	empty := puzzle.Empty()
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.HasOut())
	assert.Equal(t, empty, empty.WithOut(puzzle.DirIn), "empty cells cannot hold a link")
	assert.Equal(t, puzzle.Cell{}, empty)

	start := puzzle.StartCell(puzzle.ColorBlue)
	assert.True(t, start.IsStart())
	assert.Equal(t, puzzle.KindStart, start.Kind())
	assert.Equal(t, puzzle.ColorBlue, start.Color())

	linked := start.WithOut(puzzle.DirDown)
	out, ok := linked.Out()
	assert.True(t, ok)
	assert.Equal(t, puzzle.DirDown, out)
	assert.Equal(t, start, linked.WithoutOut())

	seg := puzzle.SegmentCell(puzzle.ColorYellow)
	assert.True(t, seg.IsSegment())
	assert.False(t, seg.IsStart())
	assert.Equal(t, "Segment{yellow,In}", seg.WithOut(puzzle.DirIn).String())
}
