package puzzle

import (
	"fmt"
	"strings"
)

// RenderOptions configures ASCII rendering behavior.
type RenderOptions struct {
	ShowCoords bool // Include axis labels
	ShowLinks  bool // Draw segments as arrows along their outgoing link
	EmptyChar  rune // Character for empty cells (default '.')
}

// DefaultRenderOptions returns sensible default rendering options.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		EmptyChar: '.',
	}
}

// CellChar returns the character used for a cell in ASCII output.
//
// Format:
//   - empty: opt.EmptyChar
//   - start: upper-case color letter (R, G, B, ...)
//   - segment: lower-case color letter, or an arrow when ShowLinks is set
func CellChar(cell Cell, opt RenderOptions) rune {
	if opt.EmptyChar == 0 {
		opt.EmptyChar = '.'
	}
	switch cell.Kind() {
	case KindStart:
		return cell.Color().Char()
	case KindSegment:
		if out, ok := cell.Out(); ok && opt.ShowLinks {
			return linkChar(out)
		}
		return cell.Color().LowerChar()
	default:
		return opt.EmptyChar
	}
}

// linkChar returns an arrow for a link direction.
func linkChar(d Dir) rune {
	switch d {
	case DirLeft:
		return '<'
	case DirRight:
		return '>'
	case DirUp:
		return '^'
	case DirDown:
		return 'v'
	case DirOut:
		return 'o'
	case DirIn:
		return 'x'
	default:
		return '?'
	}
}

// RenderLayer renders one Z layer as rows of characters, Y increasing downward.
func RenderLayer(p *Puzzle, z int, opt RenderOptions) string {
	var sb strings.Builder
	size := p.Size()

	if opt.ShowCoords {
		sb.WriteString("  ")
		for x := 0; x < size; x++ {
			sb.WriteString(fmt.Sprintf("%d", x%10))
		}
		sb.WriteString("\n")
	}

	for y := 0; y < size; y++ {
		if opt.ShowCoords {
			sb.WriteString(fmt.Sprintf("%2d", y%100))
		}
		for x := 0; x < size; x++ {
			sb.WriteRune(CellChar(p.Cell(C(x, y, z)), opt))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderASCII renders every layer from front (z=0) to back, each under a
// "z=N" header. Used for debugging, tests and the show command.
func RenderASCII(p *Puzzle, opt RenderOptions) string {
	var sb strings.Builder
	for z := 0; z < p.Size(); z++ {
		if z > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("z=%d\n", z))
		sb.WriteString(RenderLayer(p, z, opt))
	}
	return sb.String()
}
