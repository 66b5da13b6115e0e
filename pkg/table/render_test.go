package table_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/table"
	"github.com/arthur-debert/termrender/pkg/theme"
)

func unbordered(padding int) table.Style {
	return table.Style{Padding: table.Int(padding), Border: table.BorderSpec{Preset: theme.BorderNone}}
}

func lines(t *testing.T, opts table.Options, th theme.Theme) []string {
	t.Helper()
	out, err := table.Lines(opts, th)
	require.NoError(t, err)
	return out
}

func TestRenderUnbordered(t *testing.T) {
	cells := grid(t, 1, []string{"a", "bb"})
	colWidths, rowDims, err := table.Layout(cells, 80)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf, cells, colWidths, rowDims))
	assert.Equal(t, " a  bb \n", buf.String())
}

func TestTableSingleBorder(t *testing.T) {
	got := lines(t, table.Options{Rows: []table.Row{table.Cells("a", "bb")}}, theme.Default())
	assert.Equal(t, []string{
		"┌────────┐",
		"│ a │ bb │",
		"└────────┘",
	}, got)
}

func TestTableASCIIBorder(t *testing.T) {
	got := lines(t, table.Options{Rows: []table.Row{table.Cells("a"), table.Cells("b")}}, theme.Plain())
	assert.Equal(t, []string{
		"+---+",
		"| a |",
		"| b |",
		"+---+",
	}, got)
}

func TestTableMultiLineCells(t *testing.T) {
	got := lines(t, table.Options{Rows: []table.Row{table.Cells("a\nb", "c")}, Style: unbordered(0)}, theme.Default())
	assert.Equal(t, []string{"ac", "b "}, got)
}

func TestTableAlignment(t *testing.T) {
	got := lines(t, table.Options{
		Rows: []table.Row{
			table.Cells("xxx"),
			table.Cells(table.CellOptions{Value: "x", Style: table.Style{Align: "right"}}),
			{Cells: []any{"y"}, Style: table.Style{Align: "center"}},
		},
		Style: unbordered(0),
	}, theme.Default())
	assert.Equal(t, []string{"xxx", "  x", " y "}, got)
}

func TestTableShortRowsPadded(t *testing.T) {
	got := lines(t, table.Options{Rows: []table.Row{table.Cells("a", "b"), table.Cells("c")}, Style: unbordered(0)}, theme.Default())
	assert.Equal(t, []string{"ab", "c "}, got)
}

func TestTableDoubleEdgePadding(t *testing.T) {
	got := lines(t, table.Options{
		Rows:              []table.Row{table.Cells("a", "b", "c")},
		Style:             unbordered(1),
		DoubleEdgePadding: true,
	}, theme.Default())
	assert.Equal(t, []string{"  a   b   c  "}, got)
}

func TestTableHeaderBold(t *testing.T) {
	got := lines(t, table.Options{
		Header: []any{"H"},
		Rows:   []table.Row{table.Cells("v")},
		Style:  unbordered(0),
	}, classic(t))
	assert.Equal(t, []string{"\x1b[1mH\x1b[22m", "v"}, got)
}

func TestTableWidthToken(t *testing.T) {
	got := lines(t, table.Options{
		Rows:    []table.Row{table.Cells("hello world")},
		Width:   "half",
		Columns: 20,
	}, theme.Default())
	assert.Equal(t, []string{
		"┌───────┐",
		"│ hello │",
		"│ world │",
		"└───────┘",
	}, got)
}

func TestTableColumnWidths(t *testing.T) {
	got := lines(t, table.Options{
		Rows:         []table.Row{table.Cells("abcdefgh", "z")},
		Style:        unbordered(1),
		ColumnWidths: []string{"5"},
	}, theme.Default())
	assert.Equal(t, []string{" abc  z ", " def    ", " gh     "}, got)
}

func TestTableErrors(t *testing.T) {
	t.Run("too narrow for borders", func(t *testing.T) {
		_, err := table.Lines(table.Options{Rows: []table.Row{table.Cells("abc")}, Columns: 2}, theme.Default())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrWidthTooSmall))
	})

	t.Run("bad width token", func(t *testing.T) {
		_, err := table.Lines(table.Options{Rows: []table.Row{table.Cells("a")}, Width: "lots"}, theme.Default())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSizeToken))
	})

	t.Run("bad column token", func(t *testing.T) {
		_, err := table.Lines(table.Options{Rows: []table.Row{table.Cells("a")}, ColumnWidths: []string{"some"}}, theme.Default())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSizeToken))
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, table.Table(&buf, table.Options{}, theme.Default()))
		assert.Empty(t, buf.String())
	})
}

func TestFromMap(t *testing.T) {
	m := map[string]any{
		"header": []any{"Name", "Size"},
		"rows": []any{
			[]any{"a", 12},
			map[string]any{"cells": []any{"b", 7}, "align": "right"},
		},
		"padding":             2,
		"border":              "rounded",
		"column_widths":       []any{"half", 20},
		"width":               int64(40),
		"double_edge_padding": true,
	}

	opts, err := table.FromMap(m)
	require.NoError(t, err)
	assert.Equal(t, []any{"Name", "Size"}, opts.Header)
	require.Len(t, opts.Rows, 2)
	assert.Equal(t, []any{"a", 12}, opts.Rows[0].Cells)
	assert.Equal(t, "right", opts.Rows[1].Style.Align)
	require.NotNil(t, opts.Style.Padding)
	assert.Equal(t, 2, *opts.Style.Padding)
	assert.Equal(t, "rounded", opts.Style.Border.Preset)
	assert.Equal(t, []string{"half", "20"}, opts.ColumnWidths)
	assert.Equal(t, "40", opts.Width)
	assert.True(t, opts.DoubleEdgePadding)

	out, err := table.Lines(opts, theme.Default())
	require.NoError(t, err)
	assert.Len(t, out, 5)
}

func TestFromMapErrors(t *testing.T) {
	for name, m := range map[string]map[string]any{
		"rows not a list":   {"rows": "x"},
		"row not a list":    {"rows": []any{"x"}},
		"row map no cells":  {"rows": []any{map[string]any{"align": "left"}}},
		"header not a list": {"header": 3},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := table.FromMap(m)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}
