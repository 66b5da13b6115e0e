package theme

import (
	"github.com/arthur-debert/termrender/pkg/errors"
)

// BorderSet holds the eight edge glyphs of a box, already styled. An empty
// edge draws nothing.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// IsZero reports whether no edge draws anything.
func (b BorderSet) IsZero() bool {
	return b == BorderSet{}
}

// Border presets.
const (
	BorderNone    = "none"
	BorderSingle  = "single"
	BorderRounded = "rounded"
	BorderDouble  = "double"
	BorderHeavy   = "heavy"
	BorderASCII   = "ascii"
)

var borderPresets = map[string]BorderSet{
	BorderNone:    {},
	BorderSingle:  {"─", "─", "│", "│", "┌", "┐", "└", "┘"},
	BorderRounded: {"─", "─", "│", "│", "╭", "╮", "╰", "╯"},
	BorderDouble:  {"═", "═", "║", "║", "╔", "╗", "╚", "╝"},
	BorderHeavy:   {"━", "━", "┃", "┃", "┏", "┓", "┗", "┛"},
	BorderASCII:   {"-", "-", "|", "|", "+", "+", "+", "+"},
}

// Variants select the color of borders and accents.
var variants = map[string]Role{
	"":          None,
	"none":      None,
	"primary":   Primary,
	"secondary": Secondary,
	"tertiary":  Tertiary,
}

// VariantRole maps a variant name to its role.
func VariantRole(variant string) (Role, bool) {
	r, ok := variants[variant]
	return r, ok
}

// Glyphs returns the raw glyphs of preset, falling back to ASCII when the
// theme is not Unicode-capable.
func (t Theme) Glyphs(preset string) (BorderSet, error) {
	set, ok := borderPresets[preset]
	if !ok {
		return BorderSet{}, errors.Newf(errors.ErrUnknownPreset, "unknown border preset %q", preset).
			WithDetail("preset", preset)
	}
	if !t.Unicode() && preset != BorderNone {
		set = borderPresets[BorderASCII]
	}
	return set, nil
}

// BorderErr returns preset's glyphs painted with variant's color.
func (t Theme) BorderErr(preset, variant string) (BorderSet, error) {
	set, err := t.Glyphs(preset)
	if err != nil {
		return BorderSet{}, err
	}
	role, ok := VariantRole(variant)
	if !ok {
		return BorderSet{}, errors.Newf(errors.ErrUnknownVariant, "unknown variant %q", variant).
			WithDetail("variant", variant)
	}
	return t.PaintBorder(set, role), nil
}

// Border is BorderErr that falls back to a single, uncolored border.
func (t Theme) Border(preset, variant string) BorderSet {
	set, err := t.BorderErr(preset, variant)
	if err == nil {
		return set
	}
	if set, err = t.Glyphs(preset); err == nil {
		return set
	}
	set, _ = t.Glyphs(BorderSingle)
	return set
}

// PaintBorder colors every edge of set with role.
func (t Theme) PaintBorder(set BorderSet, role Role) BorderSet {
	if role == None {
		return set
	}
	paint := func(s string) string {
		if s == "" {
			return ""
		}
		return t.Paint(role, s)
	}
	return BorderSet{
		Top:         paint(set.Top),
		Bottom:      paint(set.Bottom),
		Left:        paint(set.Left),
		Right:       paint(set.Right),
		TopLeft:     paint(set.TopLeft),
		TopRight:    paint(set.TopRight),
		BottomLeft:  paint(set.BottomLeft),
		BottomRight: paint(set.BottomRight),
	}
}

// BorderPresets lists the preset names.
func BorderPresets() []string {
	return []string{BorderNone, BorderSingle, BorderRounded, BorderDouble, BorderHeavy, BorderASCII}
}
