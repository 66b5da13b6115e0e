// Package theme holds the immutable styling context passed to every
// rendering call: color level, palette, borders, icons and terminal
// capabilities such as Unicode and hyperlink support.
//
// A Theme is a value. It never consults the environment; callers detect
// capabilities (see pkg/term) and pass them in through Options.
package theme

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/termrender/pkg/ansi"
	"github.com/arthur-debert/termrender/pkg/errors"
)

// Role is a semantic color name.
type Role string

const (
	None      Role = "none"
	Primary   Role = "primary"
	Secondary Role = "secondary"
	Tertiary  Role = "tertiary"
	Success   Role = "success"
	Error     Role = "error"
	Warning   Role = "warning"
	Info      Role = "info"
	Help      Role = "help"
	Muted     Role = "muted"
)

// Roles lists every role a palette defines.
var Roles = []Role{Primary, Secondary, Tertiary, Success, Error, Warning, Info, Help, Muted}

// Color levels.
const (
	NoColor   = 0
	Color16   = 1
	Color256  = 2
	TrueColor = 3
)

// DefaultPalette is used when Options.Palette is empty.
const DefaultPalette = "default"

// Options configures a Theme.
type Options struct {
	ColorLevel     int
	Unicode        bool
	Hyperlinks     bool
	DarkBackground bool
	// Palette names an embedded palette.
	Palette string
	// Colors overrides palette entries; values are hex or ANSI numbers.
	Colors map[string]string
}

// Theme is an immutable rendering context.
type Theme struct {
	opts    Options
	palette Palette
	// opens holds the foreground sequence of every role, resolved once by
	// lipgloss against the color profile and background.
	opens map[Role]string
}

// New builds a Theme. An unknown palette name is an ErrUnknownVariant error.
func New(opts Options) (Theme, error) {
	if opts.ColorLevel < NoColor {
		opts.ColorLevel = NoColor
	}
	if opts.ColorLevel > TrueColor {
		opts.ColorLevel = TrueColor
	}
	if opts.Palette == "" {
		opts.Palette = DefaultPalette
	}

	all, err := builtinPalettes()
	if err != nil {
		return Theme{}, errors.Wrap(err, errors.ErrInternal, "embedded palettes are invalid")
	}
	base, ok := all[opts.Palette]
	if !ok {
		return Theme{}, errors.Newf(errors.ErrUnknownVariant, "unknown palette %q", opts.Palette).
			WithDetail("palette", opts.Palette)
	}

	palette := make(Palette, len(base)+len(opts.Colors))
	for role, c := range base {
		palette[role] = c
	}
	for role, value := range opts.Colors {
		if value == "" {
			continue
		}
		palette[Role(strings.ToLower(role))] = lipgloss.AdaptiveColor{Light: value, Dark: value}
	}

	opens := make(map[Role]string, len(palette))
	if opts.ColorLevel > NoColor {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(profileFor(opts.ColorLevel))
		r.SetHasDarkBackground(opts.DarkBackground)
		for role, c := range palette {
			opens[role] = openSequence(r, c)
		}
	}

	return Theme{opts: opts, palette: palette, opens: opens}, nil
}

// openSequence renders a marker in c and keeps what lipgloss put before it.
func openSequence(r *lipgloss.Renderer, c lipgloss.TerminalColor) string {
	const mark = "x"
	open, _, ok := strings.Cut(r.NewStyle().Foreground(c).Render(mark), mark)
	if !ok {
		return ""
	}
	return open
}

// Default is an uncolored, Unicode-capable theme.
func Default() Theme {
	t, _ := New(Options{Unicode: true})
	return t
}

// Plain is a theme with no color and ASCII-only glyphs.
func Plain() Theme {
	t, _ := New(Options{})
	return t
}

func profileFor(level int) termenv.Profile {
	switch level {
	case Color16:
		return termenv.ANSI
	case Color256:
		return termenv.ANSI256
	case TrueColor:
		return termenv.TrueColor
	}
	return termenv.Ascii
}

// Options returns a copy of the options the theme was built from.
func (t Theme) Options() Options {
	o := t.opts
	if o.Colors != nil {
		c := make(map[string]string, len(o.Colors))
		for k, v := range o.Colors {
			c[k] = v
		}
		o.Colors = c
	}
	return o
}

func (t Theme) ColorLevel() int { return t.opts.ColorLevel }
func (t Theme) Unicode() bool { return t.opts.Unicode }
func (t Theme) Hyperlinks() bool { return t.opts.Hyperlinks }
func (t Theme) Colorized() bool { return t.opts.ColorLevel > NoColor }
func (t Theme) PaletteName() string { return t.opts.Palette }

// StyleErr returns the open and close sequences for role.
func (t Theme) StyleErr(role Role) (open, close string, err error) {
	if role == None || role == "" {
		return "", "", nil
	}
	if _, ok := t.palette[role]; !ok {
		return "", "", errors.Newf(errors.ErrUnknownVariant, "unknown color role %q", role).
			WithDetail("role", string(role))
	}
	if !t.Colorized() {
		return "", "", nil
	}

	open = t.opens[role]
	if open == "" {
		return "", "", nil
	}
	return open, ansi.SGR("39"), nil
}

// Style is StyleErr with unknown roles rendered unstyled.
func (t Theme) Style(role Role) (open, close string) {
	open, close, _ = t.StyleErr(role)
	return open, close
}

// Paint colors text with role.
func (t Theme) Paint(role Role, text string) string {
	open, close := t.Style(role)
	if open == "" {
		return text
	}
	return ansi.Wrap(text, open, close)
}

func (t Theme) attr(text, on, off string) string {
	if !t.Colorized() {
		return text
	}
	return ansi.Wrap(text, ansi.SGR(on), ansi.SGR(off))
}

func (t Theme) Bold(text string) string { return t.attr(text, "1", "22") }
func (t Theme) Dim(text string) string { return t.attr(text, "2", "22") }
func (t Theme) Italic(text string) string { return t.attr(text, "3", "23") }
func (t Theme) Underline(text string) string { return t.attr(text, "4", "24") }
