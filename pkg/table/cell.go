package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/termrender/pkg/ansi"
	"github.com/arthur-debert/termrender/pkg/logging"
	"github.com/arthur-debert/termrender/pkg/output"
	"github.com/arthur-debert/termrender/pkg/theme"
	"github.com/arthur-debert/termrender/pkg/wrap"
)

// Dimensions is the visible size of a cell or row.
type Dimensions struct {
	Width  int
	Height int
}

// Cell is one laid-out table cell. After Layout, Width is the widest line
// of Value plus twice Padding and Height is its line count.
type Cell struct {
	Value   string
	Source  string
	Width   int
	Height  int
	Padding int
	Align   output.Align
	Border  theme.BorderSet
	// MaxWidth caps the cell's column, padding included; 0 is no cap.
	MaxWidth int
}

func (c *Cell) measure() {
	lines := strings.Split(c.Value, "\n")
	c.Width = widest(lines) + 2*c.Padding
	c.Height = len(lines)
}

// rewrap re-wraps the source text to target content columns and reports
// whether the cell got narrower. A cell never grows.
func (c *Cell) rewrap(target int) bool {
	if target < 1 {
		target = 1
	}
	lines := wrap.SplitText(c.Source, target)
	width := widest(lines) + 2*c.Padding
	if width >= c.Width {
		return false
	}
	c.Value = strings.Join(lines, "\n")
	c.Width = width
	c.Height = len(lines)
	return true
}

func widest(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, ansi.VisibleWidth(line))
	}
	return w
}

// BorderSpec selects a border. Edge fields override single edges with a
// variant name (primary, secondary, tertiary, none) or a literal glyph.
// Empty fields inherit.
type BorderSpec struct {
	Preset  string
	Variant string

	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

func (b BorderSpec) merge(over BorderSpec) BorderSpec {
	pick := func(base, o string) string {
		if o != "" {
			return o
		}
		return base
	}
	return BorderSpec{
		Preset:      pick(b.Preset, over.Preset),
		Variant:     pick(b.Variant, over.Variant),
		Top:         pick(b.Top, over.Top),
		Bottom:      pick(b.Bottom, over.Bottom),
		Left:        pick(b.Left, over.Left),
		Right:       pick(b.Right, over.Right),
		TopLeft:     pick(b.TopLeft, over.TopLeft),
		TopRight:    pick(b.TopRight, over.TopRight),
		BottomLeft:  pick(b.BottomLeft, over.BottomLeft),
		BottomRight: pick(b.BottomRight, over.BottomRight),
	}
}

// Resolve turns the selection into styled glyphs.
func (b BorderSpec) Resolve(t theme.Theme) (theme.BorderSet, error) {
	preset := b.Preset
	if preset == "" {
		preset = theme.BorderSingle
	}
	glyphs, err := t.Glyphs(preset)
	if err != nil {
		return theme.BorderSet{}, err
	}
	set, err := t.BorderErr(preset, b.Variant)
	if err != nil {
		return theme.BorderSet{}, err
	}

	edge := func(current, raw, override string) string {
		if override == "" {
			return current
		}
		role, ok := theme.VariantRole(override)
		if !ok {
			return override
		}
		if role == theme.None {
			return ""
		}
		return t.Paint(role, raw)
	}
	set.Top = edge(set.Top, glyphs.Top, b.Top)
	set.Bottom = edge(set.Bottom, glyphs.Bottom, b.Bottom)
	set.Left = edge(set.Left, glyphs.Left, b.Left)
	set.Right = edge(set.Right, glyphs.Right, b.Right)
	set.TopLeft = edge(set.TopLeft, glyphs.TopLeft, b.TopLeft)
	set.TopRight = edge(set.TopRight, glyphs.TopRight, b.TopRight)
	set.BottomLeft = edge(set.BottomLeft, glyphs.BottomLeft, b.BottomLeft)
	set.BottomRight = edge(set.BottomRight, glyphs.BottomRight, b.BottomRight)
	return set, nil
}

// Style holds the settings a cell, row or table may set. Nil and empty
// fields inherit.
type Style struct {
	Padding  *int
	Align    string
	MaxWidth *int
	Border   BorderSpec
}

// Inherit fills the unset fields of s from base.
func (s Style) Inherit(base Style) Style {
	if s.Padding == nil {
		s.Padding = base.Padding
	}
	if s.Align == "" {
		s.Align = base.Align
	}
	if s.MaxWidth == nil {
		s.MaxWidth = base.MaxWidth
	}
	s.Border = base.Border.merge(s.Border)
	return s
}

// Int returns a pointer to n, for Style fields.
func Int(n int) *int { return &n }

// CellOptions is a cell value with its own settings.
type CellOptions struct {
	Value string
	Style
}

// Defaults are the settings inherited by a cell.
type Defaults struct {
	Padding  int
	Align    output.Align
	MaxWidth int
	Border   BorderSpec
	// DoubleEdgePadding doubles the padding of the first and last column.
	DoubleEdgePadding bool
}

// BuiltinDefaults is the bottom of the inheritance chain.
func BuiltinDefaults() Defaults {
	return Defaults{
		Padding: 1,
		Align:   output.Left,
		Border:  BorderSpec{Preset: theme.BorderSingle},
	}
}

// With layers s over d. Invalid values are logged and ignored.
func (d Defaults) With(s Style) Defaults {
	log := logging.GetLogger("table")

	if s.Padding != nil {
		if *s.Padding >= 0 {
			d.Padding = *s.Padding
		} else {
			log.Warn().Int("padding", *s.Padding).Msg("negative padding ignored")
		}
	}
	if s.Align != "" {
		if a, ok := output.ParseAlign(s.Align); ok {
			d.Align = a
		} else {
			log.Warn().Str("align", s.Align).Msg("unknown alignment ignored")
		}
	}
	if s.MaxWidth != nil {
		if *s.MaxWidth >= 0 {
			d.MaxWidth = *s.MaxWidth
		} else {
			log.Warn().Int("maxWidth", *s.MaxWidth).Msg("negative max width ignored")
		}
	}
	d.Border = d.Border.merge(s.Border)
	return d
}

// ExtractCell normalizes input into a Cell for column col of a row with
// rowLen cells. Settings come from the input itself, then inherited.
func ExtractCell(input any, col, rowLen int, inherited Defaults, t theme.Theme) (Cell, error) {
	d := inherited
	var value string

	switch v := input.(type) {
	case nil:
	case string:
		value = v
	case CellOptions:
		value = v.Value
		d = d.With(v.Style)
	case *CellOptions:
		if v != nil {
			value = v.Value
			d = d.With(v.Style)
		}
	case map[string]any:
		var s Style
		value, s = styleFromMap(v)
		d = d.With(s)
	case fmt.Stringer:
		value = v.String()
	default:
		value = fmt.Sprint(v)
	}

	padding := d.Padding
	if d.DoubleEdgePadding && (col == 0 || col == rowLen-1) {
		padding *= 2
	}

	border, err := d.Border.Resolve(t)
	if err != nil {
		return Cell{}, err
	}

	c := Cell{
		Value:    value,
		Source:   value,
		Padding:  padding,
		Align:    d.Align,
		Border:   border,
		MaxWidth: d.MaxWidth,
	}
	c.measure()
	return c, nil
}

// styleFromMap reads a cell or row decoded from a data file.
func styleFromMap(m map[string]any) (string, Style) {
	var s Style

	value := ""
	for _, key := range []string{"value", "text", "content"} {
		if v, ok := m[key]; ok && v != nil {
			value = fmt.Sprint(v)
			break
		}
	}

	if v, ok := m["padding"]; ok {
		s.Padding = numericField("padding", v)
	}
	for _, key := range []string{"max_width", "maxWidth", "max-width"} {
		if v, ok := m[key]; ok {
			s.MaxWidth = numericField(key, v)
			break
		}
	}
	if v, ok := m["align"].(string); ok {
		s.Align = v
	}
	if v, ok := m["variant"].(string); ok {
		s.Border.Variant = v
	}

	switch b := m["border"].(type) {
	case string:
		s.Border.Preset = b
	case map[string]any:
		s.Border = s.Border.merge(borderFromMap(b))
	}
	return value, s
}

func borderFromMap(m map[string]any) BorderSpec {
	get := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := m[k].(string); ok {
				return v
			}
		}
		return ""
	}
	return BorderSpec{
		Preset:      get("preset", "style"),
		Variant:     get("variant"),
		Top:         get("top"),
		Bottom:      get("bottom"),
		Left:        get("left"),
		Right:       get("right"),
		TopLeft:     get("top_left", "topLeft"),
		TopRight:    get("top_right", "topRight"),
		BottomLeft:  get("bottom_left", "bottomLeft"),
		BottomRight: get("bottom_right", "bottomRight"),
	}
}

// numericField converts a decoded number. Anything non-numeric is logged
// and left unset so the inherited value stays.
func numericField(name string, v any) *int {
	if n, ok := toInt(v); ok {
		return &n
	}
	logger := logging.GetLogger("table")
	logger.Warn().
		Str("field", name).
		Interface("value", v).
		Msg("non-numeric value ignored, keeping inherited value")
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		if float32(int(n)) == n {
			return int(n), true
		}
	case float64:
		if float64(int(n)) == n {
			return int(n), true
		}
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}
