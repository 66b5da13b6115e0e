package table

import (
	"io"
	"strings"

	"github.com/arthur-debert/termrender/pkg/ansi"
	"github.com/arthur-debert/termrender/pkg/output"
)

// Render writes a laid-out grid. The top edge follows the first row's
// borders and the bottom edge the last row's. Every cell draws its left
// border; only the last cell of a row draws its right border.
func Render(w io.Writer, cells [][]Cell, colWidths []int, rowDims []Dimensions) error {
	lines := RenderLines(cells, colWidths, rowDims)
	return output.WriteLines(w, lines, output.LineOptions{})
}

// RenderLines is Render without the writing.
func RenderLines(cells [][]Cell, colWidths []int, rowDims []Dimensions) []string {
	if len(cells) == 0 || len(colWidths) == 0 {
		return nil
	}

	var out []string
	if top := edge(cells[0], colWidths, true); top != "" {
		out = append(out, top)
	}
	for r, row := range cells {
		height := 1
		if r < len(rowDims) {
			height = max(rowDims[r].Height, 1)
		}
		out = append(out, rowLines(row, colWidths, height)...)
	}
	if bottom := edge(cells[len(cells)-1], colWidths, false); bottom != "" {
		out = append(out, bottom)
	}
	return out
}

func rowLines(row []Cell, colWidths []int, height int) []string {
	split := make([][]string, len(colWidths))
	for c := range colWidths {
		split[c] = strings.Split(cellAt(row, c).Value, "\n")
	}

	last := len(colWidths) - 1
	lines := make([]string, 0, height)
	for i := 0; i < height; i++ {
		var b strings.Builder
		for c, width := range colWidths {
			cell := cellAt(row, c)
			text := ""
			if i < len(split[c]) {
				text = split[c][i]
			}
			pad := strings.Repeat(" ", cell.Padding)
			content := max(width-2*cell.Padding, 0)

			b.WriteString(cell.Border.Left)
			b.WriteString(pad)
			b.WriteString(output.Pad(text, content, cell.Align))
			b.WriteString(pad)
			if c == last {
				b.WriteString(cell.Border.Right)
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// edge draws the top or bottom edge of row. Column separators use the
// edge's fill glyph.
func edge(row []Cell, colWidths []int, top bool) string {
	var b strings.Builder
	last := len(colWidths) - 1
	for c, width := range colWidths {
		cell := cellAt(row, c)
		fill, leftCorner, rightCorner := cell.Border.Bottom, cell.Border.BottomLeft, cell.Border.BottomRight
		if top {
			fill, leftCorner, rightCorner = cell.Border.Top, cell.Border.TopLeft, cell.Border.TopRight
		}

		if lw := ansi.VisibleWidth(cell.Border.Left); lw > 0 {
			glyph := fill
			if c == 0 {
				glyph = leftCorner
			}
			b.WriteString(fit(glyph, lw))
		}
		b.WriteString(output.Repeat(fill, width))
		if c == last {
			if rw := ansi.VisibleWidth(cell.Border.Right); rw > 0 {
				b.WriteString(fit(rightCorner, rw))
			}
		}
	}

	s := b.String()
	if strings.TrimSpace(ansi.Strip(s)) == "" {
		return ""
	}
	return s
}

func fit(glyph string, width int) string {
	if ansi.VisibleWidth(glyph) == width {
		return glyph
	}
	return output.Repeat(glyph, width)
}

// cellAt returns row[c], or a blank cell carrying the row's last border for
// rows shorter than the grid.
func cellAt(row []Cell, c int) Cell {
	if c < len(row) {
		return row[c]
	}
	if len(row) == 0 {
		return Cell{}
	}
	return Cell{Border: row[len(row)-1].Border}
}
