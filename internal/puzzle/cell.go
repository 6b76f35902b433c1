// Package puzzle provides the Flow3D state engine: the cubic grid, the
// per-color flows threaded through it, the win check and the edit
// transaction that commits a drawn path.
// This package is UI-agnostic and deterministic.
package puzzle

// Kind tags what occupies a cell.
type Kind uint8

const (
	KindEmpty   Kind = iota // Nothing at this position
	KindStart               // A fixed flow endpoint
	KindSegment             // A drawn piece of a flow
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindStart:
		return "Start"
	case KindSegment:
		return "Segment"
	default:
		return "Unknown"
	}
}

// Cell is the content of one grid position.
// The zero value is an empty cell. Occupied cells are built with
// StartCell or SegmentCell so that every Start and Segment has a color,
// and an empty cell never carries a color or a link.
type Cell struct {
	kind   Kind
	color  Color
	out    Dir
	hasOut bool
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// StartCell returns an unlinked endpoint of the given color.
func StartCell(c Color) Cell {
	return Cell{kind: KindStart, color: c}
}

// SegmentCell returns an unlinked path segment of the given color.
func SegmentCell(c Color) Cell {
	return Cell{kind: KindSegment, color: c}
}

// Kind returns what occupies the cell.
func (c Cell) Kind() Kind {
	return c.kind
}

// Color returns the flow color. Only meaningful when the cell is occupied.
func (c Cell) Color() Color {
	return c.color
}

// IsEmpty returns true if nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c.kind == KindEmpty
}

// IsStart returns true if the cell is a flow endpoint.
func (c Cell) IsStart() bool {
	return c.kind == KindStart
}

// IsSegment returns true if the cell is a drawn path piece.
func (c Cell) IsSegment() bool {
	return c.kind == KindSegment
}

// Out returns the outgoing link, if any.
func (c Cell) Out() (Dir, bool) {
	return c.out, c.hasOut
}

// HasOut returns true if the cell links to a next cell.
func (c Cell) HasOut() bool {
	return c.hasOut
}

// WithOut returns a copy of the cell linked towards d.
// Empty cells cannot hold a link and are returned unchanged.
func (c Cell) WithOut(d Dir) Cell {
	if c.kind == KindEmpty || !d.Valid() {
		return c
	}
	c.out = d
	c.hasOut = true
	return c
}

// WithoutOut returns a copy of the cell with its outgoing link removed.
func (c Cell) WithoutOut() Cell {
	c.out = 0
	c.hasOut = false
	return c
}

// String returns a short description, mostly for test failures.
func (c Cell) String() string {
	if c.kind == KindEmpty {
		return "Empty"
	}
	s := c.kind.String() + "{" + c.color.String()
	if c.hasOut {
		s += "," + c.out.String()
	}
	return s + "}"
}
