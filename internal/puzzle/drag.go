package puzzle

import "fmt"

// Drag accumulates the cells a player traces before releasing.
// It is owned by the input layer; nothing touches the puzzle until Commit.
type Drag struct {
	color  Color
	path   []Coord
	active bool
}

// Begin starts a drag at an occupied cell. Grabbing a segment seeds the
// drag with the flow prefix that leads to it, so the start of the flow is
// kept when the drag is committed.
func (d *Drag) Begin(p *Puzzle, at Coord) error {
	d.Reset()

	cell := p.Cell(at)
	if !p.ValidLocation(at) || cell.IsEmpty() {
		return fmt.Errorf("begin drag at %v: %w", at, ErrUnoccupiedHead)
	}

	d.color = cell.Color()
	if cell.IsSegment() {
		prefix, ok := p.prefixTo(d.color, at)
		if !ok {
			return fmt.Errorf("begin drag at %v: %w", at, ErrDetachedHead)
		}
		d.path = append(d.path, prefix...)
	} else {
		d.path = append(d.path, at)
	}
	d.active = true
	return nil
}

// Active returns true between Begin and Commit or Reset.
func (d *Drag) Active() bool {
	return d.active
}

// Color returns the color being drawn.
func (d *Drag) Color() Color {
	return d.color
}

// Extend moves the drag to the next cell.
// Revisiting a cell already in the drag retreats back to it. Cells that are
// not adjacent to the current end, are out of range, or hold another
// color's start are refused. Once the drag reaches its own color's other
// start it only accepts retreats.
// Returns true if the candidate path changed.
func (d *Drag) Extend(p *Puzzle, to Coord) bool {
	if !d.active || len(d.path) == 0 {
		return false
	}

	for i, c := range d.path {
		if c == to {
			if i == len(d.path)-1 {
				return false
			}
			d.path = d.path[:i+1]
			return true
		}
	}

	last := d.path[len(d.path)-1]
	if !p.ValidLocation(to) || !last.Adjacent(to) {
		return false
	}
	if d.reachedTwin(p) {
		return false
	}

	cell := p.Cell(to)
	if cell.IsStart() && cell.Color() != d.color {
		return false
	}

	d.path = append(d.path, to)
	return true
}

// reachedTwin returns true if the drag already ends on the other start.
func (d *Drag) reachedTwin(p *Puzzle) bool {
	if len(d.path) < 2 {
		return false
	}
	end := p.Cell(d.path[len(d.path)-1])
	return end.IsStart() && end.Color() == d.color
}

// Path returns a copy of the candidate sequence.
func (d *Drag) Path() []Coord {
	path := make([]Coord, len(d.path))
	copy(path, d.path)
	return path
}

// Len returns the number of cells in the candidate sequence.
func (d *Drag) Len() int {
	return len(d.path)
}

// Contains returns true if c is part of the candidate sequence.
func (d *Drag) Contains(c Coord) bool {
	for _, pc := range d.path {
		if pc == c {
			return true
		}
	}
	return false
}

// End returns the most recent cell of the drag.
func (d *Drag) End() (Coord, bool) {
	if len(d.path) == 0 {
		return Coord{}, false
	}
	return d.path[len(d.path)-1], true
}

// Commit applies the drag to the puzzle and resets it.
func (d *Drag) Commit(p *Puzzle) (CommitResult, error) {
	if !d.active {
		return CommitResult{}, ErrEmptyPath
	}
	path := d.path
	d.Reset()
	return p.Commit(path)
}

// Reset discards the drag without touching the puzzle.
func (d *Drag) Reset() {
	d.path = nil
	d.active = false
	d.color = 0
}
