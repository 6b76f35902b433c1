package puzzle

import "fmt"

// Grid is the cubic play area.
// Cells are stored densely in x-major order: index = x + size*(y + size*z).
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates an empty grid with the given side length.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size*size),
	}
}

// Size returns the side length of the cube.
func (g *Grid) Size() int {
	return g.size
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.X + g.size*(c.Y+g.size*c.Z)
}

// InBounds returns true if the coordinate is within the cube on all three axes.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size &&
		c.Y >= 0 && c.Y < g.size &&
		c.Z >= 0 && c.Z < g.size
}

// Get returns the cell at the given coordinate.
// Returns an empty cell if the coordinate is out of bounds.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Empty()
	}
	return g.cells[g.index(c)]
}

// Set stores a cell unconditionally.
// Callers must bounds-check first; an out-of-range coordinate panics.
func (g *Grid) Set(c Coord, cell Cell) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("puzzle: Set out of bounds %v in cube of size %d", c, g.size))
	}
	g.cells[g.index(c)] = cell
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		size:  g.size,
		cells: cells,
	}
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// AllCoords returns every coordinate of the cube.
// Ordered by layer (Z), then row (Y), then column (X).
func (g *Grid) AllCoords() []Coord {
	coords := make([]Coord, 0, len(g.cells))
	for z := 0; z < g.size; z++ {
		for y := 0; y < g.size; y++ {
			for x := 0; x < g.size; x++ {
				coords = append(coords, C(x, y, z))
			}
		}
	}
	return coords
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.cells {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

// CellCount returns the total number of cells in the cube.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// IsFull returns true if no cell is empty.
func (g *Grid) IsFull() bool {
	return g.FilledCount() == len(g.cells)
}
