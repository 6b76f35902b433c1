package puzzle

// Dir is one of the six axis-aligned unit steps through the cube.
type Dir uint8

const (
	DirLeft  Dir = iota // -X
	DirRight            // +X
	DirUp               // -Y
	DirDown             // +Y
	DirOut              // -Z, towards the viewer
	DirIn               // +Z, away from the viewer
	DirCount            // Sentinel value for iteration
)

// AllDirs returns the six directions in a stable order.
func AllDirs() []Dir {
	return []Dir{DirLeft, DirRight, DirUp, DirDown, DirOut, DirIn}
}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirOut:
		return "Out"
	case DirIn:
		return "In"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy, dz) offset for moving one step in this direction.
func (d Dir) Delta() (dx, dy, dz int) {
	switch d {
	case DirLeft:
		return -1, 0, 0
	case DirRight:
		return 1, 0, 0
	case DirUp:
		return 0, -1, 0
	case DirDown:
		return 0, 1, 0
	case DirOut:
		return 0, 0, -1
	case DirIn:
		return 0, 0, 1
	default:
		return 0, 0, 0
	}
}

// Opposite returns the reverse direction.
// Directions are declared in pairs, so flipping the low bit swaps them.
func (d Dir) Opposite() Dir {
	if d >= DirCount {
		return d
	}
	return d ^ 1
}

// Valid reports whether d is one of the six real directions.
func (d Dir) Valid() bool {
	return d < DirCount
}

// DirBetween returns the direction that steps from a to b.
// The second result is false when a and b are equal or are not
// unit-adjacent along a single axis.
func DirBetween(a, b Coord) (Dir, bool) {
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	switch {
	case dy == 0 && dz == 0 && dx == 1:
		return DirRight, true
	case dy == 0 && dz == 0 && dx == -1:
		return DirLeft, true
	case dx == 0 && dz == 0 && dy == 1:
		return DirDown, true
	case dx == 0 && dz == 0 && dy == -1:
		return DirUp, true
	case dx == 0 && dy == 0 && dz == 1:
		return DirIn, true
	case dx == 0 && dy == 0 && dz == -1:
		return DirOut, true
	default:
		return DirCount, false
	}
}
