package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/termrender/pkg/ansi"
	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/logging"
	"github.com/arthur-debert/termrender/pkg/output"
	"github.com/arthur-debert/termrender/pkg/size"
	"github.com/arthur-debert/termrender/pkg/theme"
)

// Row is a list of raw cells with row-level settings.
type Row struct {
	Cells []any
	Style Style
}

// Cells builds a Row without settings.
func Cells(values ...any) Row {
	return Row{Cells: values}
}

// Options describes a whole table.
type Options struct {
	// Header is rendered in bold above Rows when set.
	Header []any
	Rows   []Row
	// Style holds the table-level settings.
	Style             Style
	DoubleEdgePadding bool
	// ColumnWidths caps individual columns with size tokens.
	ColumnWidths []string
	// Width is a size token for the whole table; empty uses all columns.
	Width string
	// Columns is the terminal width; 0 means 80.
	Columns int
}

// Table builds, lays out and renders opts.
func Table(w io.Writer, opts Options, t theme.Theme) error {
	lines, err := Lines(opts, t)
	if err != nil {
		return err
	}
	return output.WriteLines(w, lines, output.LineOptions{})
}

// Lines renders opts without writing.
func Lines(opts Options, t theme.Theme) ([]string, error) {
	log := logging.GetLogger("table")

	columns := opts.Columns
	if columns <= 0 {
		columns = 80
	}
	total, err := size.Resolve(opts.Width, columns)
	if err != nil {
		return nil, err
	}

	cells, err := Build(opts, t)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, nil
	}

	if err := applyColumnWidths(cells, opts.ColumnWidths, total); err != nil {
		return nil, err
	}

	overhead := borderOverhead(cells)
	available := total - overhead
	if available < 1 {
		return nil, tooSmall(total, overhead+1)
	}

	colWidths, rowDims, err := Layout(cells, available)
	if err != nil {
		return nil, err
	}
	log.Debug().Ints("colWidths", colWidths).Int("available", available).Msg("table laid out")

	return RenderLines(cells, colWidths, rowDims), nil
}

// Build turns the header and rows of opts into cells. Short rows are padded
// with empty cells.
func Build(opts Options, t theme.Theme) ([][]Cell, error) {
	base := BuiltinDefaults().With(opts.Style)
	base.DoubleEdgePadding = opts.DoubleEdgePadding

	rows := opts.Rows
	if len(opts.Header) > 0 {
		rows = append([]Row{{Cells: opts.Header}}, rows...)
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row.Cells))
	}

	cells := make([][]Cell, 0, len(rows))
	for r, row := range rows {
		inherited := base.With(row.Style)
		line := make([]Cell, width)
		for c := 0; c < width; c++ {
			var raw any = ""
			if c < len(row.Cells) {
				raw = row.Cells[c]
			}
			cell, err := ExtractCell(raw, c, width, inherited, t)
			if err != nil {
				return nil, err
			}
			if r == 0 && len(opts.Header) > 0 {
				cell.Source = t.Bold(cell.Source)
				cell.Value = cell.Source
				cell.measure()
			}
			line[c] = cell
		}
		cells = append(cells, line)
	}
	return cells, nil
}

func applyColumnWidths(cells [][]Cell, tokens []string, total int) error {
	for c, token := range tokens {
		if token == "" {
			continue
		}
		limit, err := size.Resolve(token, total)
		if err != nil {
			return err
		}
		for _, row := range cells {
			if c < len(row) && (row[c].MaxWidth == 0 || limit < row[c].MaxWidth) {
				row[c].MaxWidth = limit
			}
		}
	}
	return nil
}

// borderOverhead is the widest border run of any row: every cell's left
// border plus the last cell's right border.
func borderOverhead(cells [][]Cell) int {
	overhead := 0
	for _, row := range cells {
		n := 0
		for _, cell := range row {
			n += ansi.VisibleWidth(cell.Border.Left)
		}
		if len(row) > 0 {
			n += ansi.VisibleWidth(row[len(row)-1].Border.Right)
		}
		overhead = max(overhead, n)
	}
	return overhead
}

// FromMap decodes a table described in a data file:
//
//	header: [Name, Size]
//	rows:
//	  - [a.txt, 12]
//	  - cells: [b.txt, 7]
//	    align: right
//	padding: 1
//	border: rounded
//	column_widths: ["half", 10]
func FromMap(m map[string]any) (Options, error) {
	var opts Options

	if v, ok := m["header"]; ok {
		list, ok := v.([]any)
		if !ok {
			return Options{}, errors.New(errors.ErrInvalidInput, "header must be a list").WithDetail("header", v)
		}
		opts.Header = list
	}

	if v, ok := m["rows"]; ok {
		list, ok := v.([]any)
		if !ok {
			return Options{}, errors.New(errors.ErrInvalidInput, "rows must be a list").WithDetail("rows", v)
		}
		for i, raw := range list {
			row, err := rowFromAny(raw)
			if err != nil {
				return Options{}, err.WithDetail("row", i)
			}
			opts.Rows = append(opts.Rows, row)
		}
	}

	_, opts.Style = styleFromMap(m)

	if v, ok := m["double_edge_padding"].(bool); ok {
		opts.DoubleEdgePadding = v
	}
	if v, ok := m["width"]; ok {
		opts.Width = token(v)
	}
	if v, ok := m["column_widths"].([]any); ok {
		for _, raw := range v {
			opts.ColumnWidths = append(opts.ColumnWidths, token(raw))
		}
	}
	return opts, nil
}

func rowFromAny(raw any) (Row, *errors.TermError) {
	switch v := raw.(type) {
	case []any:
		return Row{Cells: v}, nil
	case map[string]any:
		cells, ok := v["cells"].([]any)
		if !ok {
			return Row{}, errors.New(errors.ErrInvalidInput, "row map needs a cells list")
		}
		_, style := styleFromMap(v)
		return Row{Cells: cells, Style: style}, nil
	}
	return Row{}, errors.Newf(errors.ErrInvalidInput, "row must be a list or a map, got %T", raw)
}

func token(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	if n, ok := toInt(v); ok {
		return strconv.Itoa(n)
	}
	return fmt.Sprint(v)
}
