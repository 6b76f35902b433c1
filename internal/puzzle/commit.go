package puzzle

import (
	"errors"
	"fmt"
)

// Commit precondition failures. The puzzle is left untouched when Commit
// returns one of these.
var (
	ErrEmptyPath      = errors.New("puzzle: empty path")
	ErrOutOfBounds    = errors.New("puzzle: coordinate out of bounds")
	ErrNotAdjacent    = errors.New("puzzle: consecutive cells are not adjacent")
	ErrRepeatedCell   = errors.New("puzzle: path visits a cell twice")
	ErrUnoccupiedHead = errors.New("puzzle: path does not start on an occupied cell")
	ErrDetachedHead   = errors.New("puzzle: path starts on a segment outside its flow")
)

// StopReason explains where a commit finished.
type StopReason uint8

const (
	StopEnd     StopReason = iota // Every element was committed, flow left dangling
	StopClosed                    // Reached the color's other start
	StopBlocked                   // Hit a cell that cannot be drawn on
)

// String returns the string representation of a stop reason.
func (r StopReason) String() string {
	switch r {
	case StopEnd:
		return "end"
	case StopClosed:
		return "closed"
	case StopBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// CommitResult describes what a commit did.
// A blocked commit is normal play, not a failure.
type CommitResult struct {
	Color     Color
	Steps     int        // Links laid, counting from the flow's start
	Reason    StopReason // Why processing stopped
	BlockedAt Coord      // Valid when Reason is StopBlocked
	Severed   []Color    // Other flows cut by this commit, in order of crossing
}

// Closed returns true if the commit joined the flow to its other start.
func (r CommitResult) Closed() bool {
	return r.Reason == StopClosed
}

// Commit replaces the flow that owns path[0] with the drawn path.
//
// path[0] must be occupied. It is either a start, or a segment of an
// existing flow; in the latter case the flow's prefix up to path[0] is kept
// and the rest of path is drawn from there. Consecutive elements must be
// unit-adjacent and no cell may repeat.
//
// Processing stops silently at the first cell that is neither drawable nor
// the color's other start; everything before it stays committed. Crossing a
// different flow cuts that flow at the crossing point.
func (p *Puzzle) Commit(path []Coord) (CommitResult, error) {
	full, err := p.resolvePath(path)
	if err != nil {
		return CommitResult{}, err
	}

	color := p.grid.Get(full[0]).Color()
	res := CommitResult{Color: color, Reason: StopEnd}

	p.ClearColor(color)

	for i := 1; i < len(full); i++ {
		prev, next := full[i-1], full[i]
		cell := p.grid.Get(next)

		if !cell.IsEmpty() && cell.Color() != color {
			if cell.IsSegment() || cell.HasOut() {
				res.Severed = append(res.Severed, cell.Color())
			}
			p.sever(next)
			cell = p.grid.Get(next)
		}

		switch {
		case p.IsDrawable(next):
			p.grid.Set(next, SegmentCell(color))
			p.link(prev, next)
			res.Steps++

		case cell.IsStart() && cell.Color() == color:
			p.link(prev, next)
			p.grid.Set(next, cell.WithoutOut())
			res.Steps++
			res.Reason = StopClosed
			return res, nil

		default:
			res.Reason = StopBlocked
			res.BlockedAt = next
			return res, nil
		}
	}

	return res, nil
}

// resolvePath checks the commit preconditions and, when path[0] is a
// segment, prepends the existing flow prefix that leads to it. Elements
// after the first twin start of the head's color are dropped unchecked.
func (p *Puzzle) resolvePath(path []Coord) ([]Coord, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if !p.ValidLocation(path[0]) {
		return nil, fmt.Errorf("element 0 %v: %w", path[0], ErrOutOfBounds)
	}
	first := p.grid.Get(path[0])
	if first.IsEmpty() {
		return nil, fmt.Errorf("element 0 %v: %w", path[0], ErrUnoccupiedHead)
	}

	for i := 1; i < len(path); i++ {
		c := path[i]
		if !p.ValidLocation(c) {
			return nil, fmt.Errorf("element %d %v: %w", i, c, ErrOutOfBounds)
		}
		if !path[i-1].Adjacent(c) {
			return nil, fmt.Errorf("elements %d %v and %d %v: %w", i-1, path[i-1], i, c, ErrNotAdjacent)
		}
		if cell := p.grid.Get(c); cell.IsStart() && cell.Color() == first.Color() {
			path = path[:i+1]
			break
		}
	}

	full := path
	if first.IsSegment() {
		prefix, ok := p.prefixTo(first.Color(), path[0])
		if !ok {
			return nil, fmt.Errorf("element 0 %v: %w", path[0], ErrDetachedHead)
		}
		full = make([]Coord, 0, len(prefix)+len(path)-1)
		full = append(full, prefix...)
		full = append(full, path[1:]...)
	}

	seen := make(map[Coord]int, len(full))
	for i, c := range full {
		if j, dup := seen[c]; dup {
			return nil, fmt.Errorf("%v at positions %d and %d: %w", c, j, i, ErrRepeatedCell)
		}
		seen[c] = i
	}
	return full, nil
}

// prefixTo returns the traced flow of color up to and including target.
func (p *Puzzle) prefixTo(color Color, target Coord) ([]Coord, bool) {
	flow, ok := p.FlowPath(color)
	if !ok {
		return nil, false
	}
	for i, c := range flow {
		if c == target {
			return flow[:i+1], true
		}
	}
	return nil, false
}

// link points prev's outgoing link at next.
func (p *Puzzle) link(prev, next Coord) {
	d, ok := DirBetween(prev, next)
	if !ok {
		return
	}
	p.grid.Set(prev, p.grid.Get(prev).WithOut(d))
}

// sever cuts the flow running through at. The link approaching at is
// cleared first, then every drawable cell from at onward is removed.
// Starts in the cut tail stay in place with their links cleared.
func (p *Puzzle) sever(at Coord) {
	if prev, ok := p.PreviousInFlow(at); ok {
		p.grid.Set(prev, p.grid.Get(prev).WithoutOut())
	}

	color := p.grid.Get(at).Color()
	visited := make(map[Coord]bool)
	cur := at
	for p.ValidLocation(cur) && !visited[cur] {
		cell := p.grid.Get(cur)
		if cell.IsEmpty() || cell.Color() != color {
			break
		}
		visited[cur] = true

		out, linked := cell.Out()
		if p.IsDrawable(cur) {
			p.grid.Set(cur, Empty())
		} else {
			p.grid.Set(cur, cell.WithoutOut())
		}
		if !linked {
			break
		}
		cur = cur.Step(out)
	}
}
