package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/output"
	"github.com/arthur-debert/termrender/pkg/table"
	"github.com/arthur-debert/termrender/pkg/theme"
)

type named struct{ name string }

func (n named) String() string { return n.name }

func classic(t *testing.T) theme.Theme {
	t.Helper()
	th, err := theme.New(theme.Options{ColorLevel: theme.Color16, Palette: "classic", Unicode: true})
	require.NoError(t, err)
	return th
}

func extract(t *testing.T, input any, d table.Defaults) table.Cell {
	t.Helper()
	c, err := table.ExtractCell(input, 0, 1, d, theme.Default())
	require.NoError(t, err)
	return c
}

func TestExtractCellInputs(t *testing.T) {
	d := table.BuiltinDefaults()

	tests := []struct {
		name    string
		input   any
		value   string
		padding int
		width   int
		height  int
	}{
		{"string", "hi", "hi", 1, 4, 1},
		{"nil", nil, "", 1, 2, 1},
		{"stringer", named{"str"}, "str", 1, 5, 1},
		{"number", 42, "42", 1, 4, 1},
		{"multi-line", "a\nbcd", "a\nbcd", 1, 5, 2},
		{"options", table.CellOptions{Value: "x", Style: table.Style{Padding: table.Int(3)}}, "x", 3, 7, 1},
		{"options pointer", &table.CellOptions{Value: "xy"}, "xy", 1, 4, 1},
		{"map", map[string]any{"value": "m", "padding": int64(2)}, "m", 2, 5, 1},
		{"map text key", map[string]any{"text": "t", "padding": 0.0}, "t", 0, 1, 1},
		{"map non-numeric padding", map[string]any{"value": "m", "padding": "wide"}, "m", 1, 3, 1},
		{"map numeric string", map[string]any{"value": "m", "padding": "2"}, "m", 2, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := extract(t, tt.input, d)
			assert.Equal(t, tt.value, c.Value)
			assert.Equal(t, tt.value, c.Source)
			assert.Equal(t, tt.padding, c.Padding)
			assert.Equal(t, tt.width, c.Width)
			assert.Equal(t, tt.height, c.Height)
		})
	}
}

func TestExtractCellPrecedence(t *testing.T) {
	tableLevel := table.BuiltinDefaults().With(table.Style{Padding: table.Int(2), Align: "center"})
	rowLevel := tableLevel.With(table.Style{Align: "right"})

	c := extract(t, "x", rowLevel)
	assert.Equal(t, 2, c.Padding)
	assert.Equal(t, output.Right, c.Align)

	c = extract(t, table.CellOptions{Value: "x", Style: table.Style{Align: "left", MaxWidth: table.Int(9)}}, rowLevel)
	assert.Equal(t, output.Left, c.Align)
	assert.Equal(t, 9, c.MaxWidth)

	c = extract(t, map[string]any{"value": "x", "max_width": 12.0, "align": "center"}, rowLevel)
	assert.Equal(t, output.Center, c.Align)
	assert.Equal(t, 12, c.MaxWidth)
}

func TestDefaultsIgnoreInvalid(t *testing.T) {
	d := table.BuiltinDefaults().With(table.Style{Padding: table.Int(-1), Align: "diagonal", MaxWidth: table.Int(-4)})
	assert.Equal(t, table.BuiltinDefaults(), d)
}

func TestExtractCellDoubleEdgePadding(t *testing.T) {
	d := table.BuiltinDefaults()
	d.DoubleEdgePadding = true

	for col, want := range []int{2, 1, 2} {
		c, err := table.ExtractCell("x", col, 3, d, theme.Default())
		require.NoError(t, err)
		assert.Equal(t, want, c.Padding, "column %d", col)
	}
}

func TestExtractCellBorders(t *testing.T) {
	t.Run("default single", func(t *testing.T) {
		c := extract(t, "x", table.BuiltinDefaults())
		assert.Equal(t, "│", c.Border.Left)
		assert.Equal(t, "┌", c.Border.TopLeft)
	})

	t.Run("none", func(t *testing.T) {
		d := table.BuiltinDefaults().With(table.Style{Border: table.BorderSpec{Preset: theme.BorderNone}})
		assert.True(t, extract(t, "x", d).Border.IsZero())
	})

	t.Run("edge overrides", func(t *testing.T) {
		d := table.BuiltinDefaults().With(table.Style{Border: table.BorderSpec{Left: "none", Right: "#"}})
		c := extract(t, "x", d)
		assert.Empty(t, c.Border.Left)
		assert.Equal(t, "#", c.Border.Right)
		assert.Equal(t, "─", c.Border.Top)
	})

	t.Run("variant on whole border", func(t *testing.T) {
		d := table.BuiltinDefaults().With(table.Style{Border: table.BorderSpec{Variant: "primary"}})
		c, err := table.ExtractCell("x", 0, 1, d, classic(t))
		require.NoError(t, err)
		assert.Equal(t, "\x1b[34m│\x1b[39m", c.Border.Left)
		assert.Equal(t, 3, c.Width)
	})

	t.Run("variant on one edge", func(t *testing.T) {
		d := table.BuiltinDefaults().With(table.Style{Border: table.BorderSpec{Top: "primary"}})
		c, err := table.ExtractCell("x", 0, 1, d, classic(t))
		require.NoError(t, err)
		assert.Equal(t, "\x1b[34m─\x1b[39m", c.Border.Top)
		assert.Equal(t, "│", c.Border.Left)
	})

	t.Run("map border", func(t *testing.T) {
		c := extract(t, map[string]any{"value": "x", "border": map[string]any{"preset": "double", "right": "none"}}, table.BuiltinDefaults())
		assert.Equal(t, "║", c.Border.Left)
		assert.Empty(t, c.Border.Right)

		c = extract(t, map[string]any{"value": "x", "border": "rounded"}, table.BuiltinDefaults())
		assert.Equal(t, "╭", c.Border.TopLeft)
	})

	t.Run("unknown preset", func(t *testing.T) {
		d := table.BuiltinDefaults().With(table.Style{Border: table.BorderSpec{Preset: "wavy"}})
		_, err := table.ExtractCell("x", 0, 1, d, theme.Default())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownPreset))
	})

	t.Run("unknown variant", func(t *testing.T) {
		d := table.BuiltinDefaults().With(table.Style{Border: table.BorderSpec{Variant: "loud"}})
		_, err := table.ExtractCell("x", 0, 1, d, theme.Default())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownVariant))
	})
}

func TestStyleInherit(t *testing.T) {
	base := table.Style{
		Padding:  table.Int(2),
		Align:    "right",
		MaxWidth: table.Int(30),
		Border:   table.BorderSpec{Preset: "rounded", Variant: "primary"},
	}

	got := table.Style{Align: "center", Border: table.BorderSpec{Preset: "double"}}.Inherit(base)
	require.NotNil(t, got.Padding)
	assert.Equal(t, 2, *got.Padding)
	assert.Equal(t, "center", got.Align)
	assert.Equal(t, 30, *got.MaxWidth)
	assert.Equal(t, "double", got.Border.Preset)
	assert.Equal(t, "primary", got.Border.Variant)

	empty := table.Style{}.Inherit(table.Style{})
	assert.Nil(t, empty.Padding)
	assert.Equal(t, table.BorderSpec{}, empty.Border)
}
