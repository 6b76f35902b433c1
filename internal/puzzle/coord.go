package puzzle

import "fmt"

// Coord represents a position in the cube.
// X increases to the right, Y increases downward, Z increases inward
// (away from the viewer, towards deeper layers).
type Coord struct {
	X int
	Y int
	Z int
}

// C is a convenience constructor for Coord.
func C(x, y, z int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Add returns a new Coord offset by (dx, dy, dz).
func (c Coord) Add(dx, dy, dz int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// AddCoord returns the component-wise sum of two coordinates.
func (c Coord) AddCoord(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy, dz := d.Delta()
	return c.Add(dx, dy, dz)
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c == other
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y) + abs(c.Z-other.Z)
}

// Adjacent returns true if other is exactly one axis step away.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
