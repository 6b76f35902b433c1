package puzzle

// Pair is the two fixed endpoints of one color.
type Pair struct {
	Color Color
	A     Coord
	B     Coord
}

// Puzzle is one playable level: the cube plus its start pairs.
// A Puzzle is a plain value owned by its caller and is not safe for
// concurrent use; front ends serialize edits and queries.
type Puzzle struct {
	grid  *Grid
	pairs []Pair
}

// New creates a puzzle from a cube size and a flat, even-length list of
// start coordinates. Consecutive coordinates form a pair and pairs take
// palette colors in order.
func New(size int, starts []Coord) (*Puzzle, error) {
	pairs, err := PairsFromStarts(starts)
	if err != nil {
		return nil, err
	}
	return NewWithPairs(size, pairs)
}

// NewWithPairs creates a puzzle from explicitly colored start pairs.
func NewWithPairs(size int, pairs []Pair) (*Puzzle, error) {
	if err := validatePairs(size, pairs); err != nil {
		return nil, err
	}

	g := NewGrid(size)
	for _, p := range pairs {
		g.Set(p.A, StartCell(p.Color))
		g.Set(p.B, StartCell(p.Color))
	}

	owned := make([]Pair, len(pairs))
	copy(owned, pairs)

	return &Puzzle{grid: g, pairs: owned}, nil
}

// Clone returns a deep copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	pairs := make([]Pair, len(p.pairs))
	copy(pairs, p.pairs)
	return &Puzzle{grid: p.grid.Clone(), pairs: pairs}
}

// Size returns the side length of the cube.
func (p *Puzzle) Size() int {
	return p.grid.Size()
}

// ValidLocation returns true if all three components are in [0, size).
func (p *Puzzle) ValidLocation(c Coord) bool {
	return p.grid.InBounds(c)
}

// Cell returns the content at c. Out-of-range coordinates read as empty.
func (p *Puzzle) Cell(c Coord) Cell {
	return p.grid.Get(c)
}

// IsDrawable returns true if c is in range and holds nothing or a segment.
// Start cells are never drawable.
func (p *Puzzle) IsDrawable(c Coord) bool {
	if !p.ValidLocation(c) {
		return false
	}
	return !p.grid.Get(c).IsStart()
}

// Pairs returns a copy of the start pairs in construction order.
func (p *Puzzle) Pairs() []Pair {
	pairs := make([]Pair, len(p.pairs))
	copy(pairs, p.pairs)
	return pairs
}

// Colors returns the colors in use, in construction order.
func (p *Puzzle) Colors() []Color {
	colors := make([]Color, len(p.pairs))
	for i, pair := range p.pairs {
		colors[i] = pair.Color
	}
	return colors
}

// PairOf returns the start pair of a color.
func (p *Puzzle) PairOf(color Color) (Pair, bool) {
	for _, pair := range p.pairs {
		if pair.Color == color {
			return pair, true
		}
	}
	return Pair{}, false
}

// Snapshot returns a copy of the grid for read-only consumers.
func (p *Puzzle) Snapshot() *Grid {
	return p.grid.Clone()
}

// Equal returns true if both puzzles have the same pairs and cell contents.
func (p *Puzzle) Equal(other *Puzzle) bool {
	if len(p.pairs) != len(other.pairs) {
		return false
	}
	for i := range p.pairs {
		if p.pairs[i] != other.pairs[i] {
			return false
		}
	}
	return p.grid.Equal(other.grid)
}

// Stats summarizes progress on a puzzle.
type Stats struct {
	Cells       int // Total cells in the cube
	Filled      int // Occupied cells
	Flows       int // Colors in play
	ClosedFlows int // Flows joined start to start
}

// Percent returns the share of filled cells, 0..100.
func (s Stats) Percent() int {
	if s.Cells == 0 {
		return 0
	}
	return s.Filled * 100 / s.Cells
}

// Stats computes fill and flow progress.
func (p *Puzzle) Stats() Stats {
	st := Stats{
		Cells:  p.grid.CellCount(),
		Filled: p.grid.FilledCount(),
		Flows:  len(p.pairs),
	}
	for _, pair := range p.pairs {
		if p.IsClosed(pair.Color) {
			st.ClosedFlows++
		}
	}
	return st
}
