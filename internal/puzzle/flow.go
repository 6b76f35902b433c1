package puzzle

// head returns the start of color whose outgoing link is set.
// Pair order decides if both ends are linked, which a consistent puzzle
// never produces.
func (p *Puzzle) head(color Color) (Coord, bool) {
	pair, ok := p.PairOf(color)
	if !ok {
		return Coord{}, false
	}
	for _, c := range []Coord{pair.A, pair.B} {
		cell := p.grid.Get(c)
		if cell.IsStart() && cell.Color() == color && cell.HasOut() {
			return c, true
		}
	}
	return Coord{}, false
}

// FlowPath traces the flow of a color by following outgoing links from
// its linked start. Returns false if the flow has not been begun.
// For a closed flow the result ends at the color's other start.
func (p *Puzzle) FlowPath(color Color) ([]Coord, bool) {
	cur, ok := p.head(color)
	if !ok {
		return nil, false
	}

	path := make([]Coord, 0, 8)
	visited := make(map[Coord]bool)
	for {
		path = append(path, cur)
		visited[cur] = true

		out, linked := p.grid.Get(cur).Out()
		if !linked {
			break
		}
		next := cur.Step(out)
		cell := p.grid.Get(next)
		if !p.ValidLocation(next) || cell.IsEmpty() || cell.Color() != color || visited[next] {
			break
		}
		cur = next
	}
	return path, true
}

// IsClosed returns true if the color's flow runs from one start to the other.
func (p *Puzzle) IsClosed(color Color) bool {
	path, ok := p.FlowPath(color)
	if !ok || len(path) < 2 {
		return false
	}
	first := p.grid.Get(path[0])
	last := p.grid.Get(path[len(path)-1])
	return first.IsStart() && first.Color() == color &&
		last.IsStart() && last.Color() == color
}

// PreviousInFlow returns the neighbor whose outgoing link points at c.
// Returns false for start cells and for cells nothing links into.
func (p *Puzzle) PreviousInFlow(c Coord) (Coord, bool) {
	if !p.ValidLocation(c) || p.grid.Get(c).IsStart() {
		return Coord{}, false
	}
	for _, d := range AllDirs() {
		n := c.Step(d)
		if !p.ValidLocation(n) {
			continue
		}
		out, linked := p.grid.Get(n).Out()
		if linked && out == d.Opposite() {
			return n, true
		}
	}
	return Coord{}, false
}

// CheckWin returns true if every cell is occupied and every color present
// in the cube forms a closed flow. Cells must all lie on those flows.
func (p *Puzzle) CheckWin() bool {
	if !p.grid.IsFull() {
		return false
	}

	present := make(map[Color]bool)
	for _, cell := range p.grid.cells {
		present[cell.Color()] = true
	}

	covered := 0
	for color := range present {
		if !p.IsClosed(color) {
			return false
		}
		path, _ := p.FlowPath(color)
		covered += len(path)
	}
	return covered == p.grid.CellCount()
}

// ClearColor removes every segment of color and unlinks its starts.
// Start cells themselves are never removed.
func (p *Puzzle) ClearColor(color Color) {
	for i, cell := range p.grid.cells {
		if cell.IsEmpty() || cell.Color() != color {
			continue
		}
		if cell.IsSegment() {
			p.grid.cells[i] = Empty()
		} else {
			p.grid.cells[i] = cell.WithoutOut()
		}
	}
}

// Reset clears every flow, returning the puzzle to its starting layout.
func (p *Puzzle) Reset() {
	for _, pair := range p.pairs {
		p.ClearColor(pair.Color)
	}
}
