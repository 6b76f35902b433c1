package puzzle

import "fmt"

// Validation error codes reported when a puzzle cannot be constructed.
const (
	CodeInvalidSize    = "INVALID_SIZE"
	CodeOddStarts      = "ODD_STARTS"
	CodeTooManyPairs   = "TOO_MANY_PAIRS"
	CodeOutOfBounds    = "OUT_OF_BOUNDS"
	CodeDuplicateStart = "DUPLICATE_START"
	CodeInvalidColor   = "INVALID_COLOR"
	CodeDuplicateColor = "DUPLICATE_COLOR"
)

// ValidationError contains details about a construction failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// PairsFromStarts groups a flat start list into pairs, assigning palette
// colors in order. The list must have even length and at most one pair per
// palette color.
func PairsFromStarts(starts []Coord) ([]Pair, error) {
	if len(starts)%2 != 0 {
		return nil, ValidationError{
			Code:    CodeOddStarts,
			Message: fmt.Sprintf("%d start coordinates cannot be paired", len(starts)),
		}
	}
	if len(starts)/2 > int(ColorCount) {
		return nil, ValidationError{
			Code: CodeTooManyPairs,
			Message: fmt.Sprintf("%d start pairs but only %d colors",
				len(starts)/2, ColorCount),
		}
	}

	pairs := make([]Pair, 0, len(starts)/2)
	for i := 0; i < len(starts); i += 2 {
		pairs = append(pairs, Pair{
			Color: ColorAt(i / 2),
			A:     starts[i],
			B:     starts[i+1],
		})
	}
	return pairs, nil
}

// validatePairs checks a pair list against a cube of the given size.
// Checks:
//   - size is positive
//   - no more pairs than palette colors, each color used once
//   - every start lies inside the cube
//   - no two starts share a coordinate
func validatePairs(size int, pairs []Pair) error {
	if size < 1 {
		return ValidationError{
			Code:    CodeInvalidSize,
			Message: fmt.Sprintf("cube size must be positive, got %d", size),
		}
	}
	if len(pairs) > int(ColorCount) {
		return ValidationError{
			Code: CodeTooManyPairs,
			Message: fmt.Sprintf("%d start pairs but only %d colors",
				len(pairs), ColorCount),
		}
	}

	inBounds := func(c Coord) bool {
		return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size && c.Z >= 0 && c.Z < size
	}

	usedColors := make(map[Color]bool, len(pairs))
	seen := make(map[Coord]Color, 2*len(pairs))
	for _, p := range pairs {
		if !p.Color.Valid() {
			return ValidationError{
				Code:    CodeInvalidColor,
				Message: fmt.Sprintf("color index %d is not in the palette", p.Color),
			}
		}
		if usedColors[p.Color] {
			return ValidationError{
				Code:    CodeDuplicateColor,
				Message: fmt.Sprintf("color %s has more than one start pair", p.Color),
			}
		}
		usedColors[p.Color] = true

		for _, c := range []Coord{p.A, p.B} {
			if !inBounds(c) {
				return ValidationError{
					Code: CodeOutOfBounds,
					Message: fmt.Sprintf("%s start %v outside cube of size %d",
						p.Color, c, size),
				}
			}
			if other, dup := seen[c]; dup {
				return ValidationError{
					Code: CodeDuplicateStart,
					Message: fmt.Sprintf("%s start %v collides with a %s start",
						p.Color, c, other),
				}
			}
			seen[c] = p.Color
		}
	}

	return nil
}
