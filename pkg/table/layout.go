package table

import (
	"sort"

	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/logging"
)

// Layout negotiates column widths so that no column exceeds its maximum
// and the grid fits terminalWidth. Cells are re-wrapped in place from their
// Source text. It returns the width of every column and the size of every
// row.
//
// Each pass re-wraps at least one cell to a strictly smaller width, so the
// loop is bounded; exceeding that bound is ErrLayoutUnstable. An overflow
// that no cell can shrink away is ErrWidthTooSmall.
func Layout(cells [][]Cell, terminalWidth int) ([]int, []Dimensions, error) {
	log := logging.GetLogger("table.layout")
	if terminalWidth < 1 {
		terminalWidth = 1
	}

	limit := 0
	for _, row := range cells {
		for i := range row {
			row[i].measure()
			limit += row[i].Width + 1
		}
	}

	for pass := 0; ; pass++ {
		if pass > limit {
			return nil, nil, errors.Newf(errors.ErrLayoutUnstable, "layout did not settle after %d passes", pass).
				WithDetail("passes", pass)
		}

		colWidths, rowDims := measure(cells)

		if shrinkColumns(cells, colWidths) {
			continue
		}
		shrunk, err := shrinkRows(cells, rowDims, terminalWidth)
		if err != nil {
			return nil, nil, err
		}
		if shrunk {
			continue
		}
		shrunk, err = shrinkTotal(cells, colWidths, terminalWidth)
		if err != nil {
			return nil, nil, err
		}
		if shrunk {
			continue
		}

		log.Debug().
			Int("passes", pass).
			Int("columns", len(colWidths)).
			Int("rows", len(rowDims)).
			Msg("layout settled")
		return colWidths, rowDims, nil
	}
}

func columnCount(cells [][]Cell) int {
	n := 0
	for _, row := range cells {
		n = max(n, len(row))
	}
	return n
}

func measure(cells [][]Cell) ([]int, []Dimensions) {
	colWidths := make([]int, columnCount(cells))
	rowDims := make([]Dimensions, len(cells))
	for r, row := range cells {
		for c, cell := range row {
			rowDims[r].Width += cell.Width
			rowDims[r].Height = max(rowDims[r].Height, cell.Height)
			colWidths[c] = max(colWidths[c], cell.Width)
		}
	}
	return colWidths, rowDims
}

// columnMax is the tightest MaxWidth set in column c, widened so that every
// cell keeps at least one content column. 0 means unlimited.
func columnMax(cells [][]Cell, c int) int {
	limit, padding := 0, 0
	for _, row := range cells {
		if c >= len(row) {
			continue
		}
		cell := row[c]
		padding = max(padding, cell.Padding)
		if cell.MaxWidth > 0 && (limit == 0 || cell.MaxWidth < limit) {
			limit = cell.MaxWidth
		}
	}
	if limit == 0 {
		return 0
	}
	return max(limit, 2*padding+1)
}

func shrinkColumns(cells [][]Cell, colWidths []int) bool {
	changed := false
	for c, width := range colWidths {
		limit := columnMax(cells, c)
		if limit == 0 || width <= limit {
			continue
		}
		for _, row := range cells {
			if c >= len(row) || row[c].Width <= limit {
				continue
			}
			if row[c].rewrap(limit - 2*row[c].Padding) {
				changed = true
			}
		}
	}
	return changed
}

func shrinkRows(cells [][]Cell, rowDims []Dimensions, terminalWidth int) (bool, error) {
	for r, dims := range rowDims {
		if dims.Width <= terminalWidth {
			continue
		}
		row := cells[r]
		for _, i := range widestFirst(len(row), func(i int) int { return row[i].Width }) {
			others := dims.Width - row[i].Width
			if row[i].rewrap(terminalWidth - others - 2*row[i].Padding) {
				return true, nil
			}
		}
		return false, tooSmall(terminalWidth, dims.Width).WithDetail("row", r)
	}
	return false, nil
}

func shrinkTotal(cells [][]Cell, colWidths []int, terminalWidth int) (bool, error) {
	total := 0
	for _, w := range colWidths {
		total += w
	}
	if total <= terminalWidth {
		return false, nil
	}

	type pos struct{ r, c int }
	var candidates []pos
	for r, row := range cells {
		for c, cell := range row {
			if cell.Width == colWidths[c] && cell.Width > 0 {
				candidates = append(candidates, pos{r, c})
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		return cells[a.r][a.c].Width > cells[b.r][b.c].Width
	})

	for _, p := range candidates {
		cell := &cells[p.r][p.c]
		available := terminalWidth - (total - colWidths[p.c])
		if cell.rewrap(available - 2*cell.Padding) {
			return true, nil
		}
	}
	return false, tooSmall(terminalWidth, total)
}

// widestFirst returns the indexes 0..n-1 ordered by descending width.
func widestFirst(n int, width func(int) int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return width(idx[a]) > width(idx[b]) })
	return idx
}

func tooSmall(available, needed int) *errors.TermError {
	return errors.Newf(errors.ErrWidthTooSmall, "table needs %d columns but only %d are available", needed, available).
		WithDetails(map[string]interface{}{"available": available, "needed": needed})
}
