package puzzle

import "strings"

// Color identifies a flow. Values are stable palette indices.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange
	ColorMagenta
	ColorAqua
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorMagenta:
		return "magenta"
	case ColorAqua:
		return "aqua"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
// Start cells use the upper-case letter, segments the lower-case one.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorOrange:
		return 'O'
	case ColorMagenta:
		return 'M'
	case ColorAqua:
		return 'A'
	default:
		return '?'
	}
}

// LowerChar returns the lower-case variant of Char, used for segments.
func (c Color) LowerChar() rune {
	r := c.Char()
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Index returns the stable palette index of the color.
func (c Color) Index() int {
	return int(c)
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ColorAt returns the palette color for any integer, wrapping by the
// absolute value modulo the palette size.
func ColorAt(i int) Color {
	return Color(abs(i%int(ColorCount)))
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "orange", "o":
		return ColorOrange, true
	case "magenta", "m":
		return ColorMagenta, true
	case "aqua", "a":
		return ColorAqua, true
	default:
		return ColorRed, false
	}
}

// AllColors returns a slice of all valid colors in palette order.
func AllColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorOrange, ColorMagenta, ColorAqua}
}
