package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

// boardOptions shows links as arrows so a flow can be followed across layers.
var boardOptions = puzzle.RenderOptions{ShowLinks: true, EmptyChar: '·'}

// stripOptions keeps the miniature layers compact.
var stripOptions = puzzle.RenderOptions{EmptyChar: '·'}

// renderBoard draws layer z of the cube with the cursor and the pending
// drag on top. Rows run top to bottom in Y, columns left to right in X.
func renderBoard(p *puzzle.Puzzle, z int, cursor puzzle.Coord, drag *puzzle.Drag, theme Theme) string {
	size := p.Size()
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(size * size * 16)

	for y := range size {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range size {
			if x > 0 {
				sb.WriteRune(' ')
			}
			c := puzzle.C(x, y, z)
			glyph, style := cellGlyph(p, c, drag, theme)
			if c == cursor {
				style = style.Inherit(theme.Cursor).Reverse(true)
			}
			sb.WriteString(style.Render(string(glyph)))
		}
	}
	return sb.String()
}

// cellGlyph picks the rune and style for one board cell.
func cellGlyph(p *puzzle.Puzzle, c puzzle.Coord, drag *puzzle.Drag, theme Theme) (rune, lipgloss.Style) {
	cell := p.Cell(c)

	if drag != nil && drag.Active() && drag.Contains(c) && !cell.IsStart() {
		return drag.Color().LowerChar(), theme.FlowStyle(drag.Color()).Inherit(theme.DragCell).Underline(true)
	}

	switch {
	case cell.IsStart():
		return puzzle.CellChar(cell, boardOptions), theme.FlowStyle(cell.Color()).Inherit(theme.Start).Bold(true)
	case cell.IsSegment():
		return puzzle.CellChar(cell, boardOptions), theme.FlowStyle(cell.Color())
	default:
		return boardOptions.EmptyChar, theme.EmptyCell
	}
}

// renderLayerStrip draws every layer in miniature, side by side, with the
// active one highlighted.
func renderLayerStrip(p *puzzle.Puzzle, active int, theme Theme) string {
	size := p.Size()
	blocks := make([]string, 0, size*2)

	for z := range size {
		var sb strings.Builder
		label := theme.LayerLabel
		if z == active {
			label = theme.LayerActive
		}
		sb.WriteString(label.Render(fmt.Sprintf("z%d", z)))
		for y := range size {
			sb.WriteRune('\n')
			for x := range size {
				cell := p.Cell(puzzle.C(x, y, z))
				ch := string(puzzle.CellChar(cell, stripOptions))
				if cell.IsEmpty() {
					sb.WriteString(theme.EmptyCell.Render(ch))
					continue
				}
				sb.WriteString(theme.FlowStyle(cell.Color()).Render(ch))
			}
		}
		if z > 0 {
			blocks = append(blocks, "  ")
		}
		blocks = append(blocks, sb.String())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block as one unit.
func centerBlock(block string, width int) string {
	w := lipgloss.Width(block)
	if w >= width {
		return block
	}
	return lipgloss.NewStyle().MarginLeft((width - w) / 2).Render(block)
}

// FormatDuration renders a solve time as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
