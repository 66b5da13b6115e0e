package output

import (
	"io"
	"strings"

	"github.com/arthur-debert/termrender/pkg/ansi"
	"github.com/arthur-debert/termrender/pkg/size"
	"github.com/arthur-debert/termrender/pkg/theme"
	"github.com/arthur-debert/termrender/pkg/wrap"
)

// Align positions text inside a wider field.
type Align int

const (
	Left Align = iota
	Right
	Center
)

// ParseAlign maps "left", "right" and "center" to an Align. Anything else
// is reported as not ok and yields Left.
func ParseAlign(s string) (Align, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return Left, true
	case "right":
		return Right, true
	case "center", "centre":
		return Center, true
	}
	return Left, false
}

func (a Align) String() string {
	switch a {
	case Right:
		return "right"
	case Center:
		return "center"
	}
	return "left"
}

// Pad fills s with spaces to width visible columns according to align.
// Strings already at least width wide are returned unchanged.
func Pad(s string, width int, align Align) string {
	gap := width - ansi.VisibleWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case Right:
		return strings.Repeat(" ", gap) + s
	case Center:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	}
	return s + strings.Repeat(" ", gap)
}

// LineOptions controls WriteLine.
type LineOptions struct {
	// Padding is the number of spaces written before the text.
	Padding int
	// Color paints the text when set and Theme is colorized.
	Color theme.Role
	// Width wraps the text so that padding plus text fit; 0 disables
	// wrapping.
	Width int
	Theme theme.Theme
}

// WriteLine writes text followed by a newline. Embedded newlines start new
// lines, each padded the same way.
func WriteLine(w io.Writer, text string, opts LineOptions) error {
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	if opts.Color != "" && opts.Color != theme.None {
		text = opts.Theme.Paint(opts.Color, text)
	}

	var lines []string
	if opts.Width > 0 {
		lines = wrap.SplitText(text, opts.Width-opts.Padding)
	} else {
		lines = strings.Split(text, "\n")
	}

	pad := strings.Repeat(" ", opts.Padding)
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(pad)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteLines writes each line with WriteLine.
func WriteLines(w io.Writer, lines []string, opts LineOptions) error {
	for _, line := range lines {
		if err := WriteLine(w, line, opts); err != nil {
			return err
		}
	}
	return nil
}

// Message writes a status line: the kind's icon followed by the text, both
// in the kind's color.
func Message(w io.Writer, t theme.Theme, kind theme.Kind, text string) error {
	return WriteLine(w, FormatMessage(t, kind, text), LineOptions{Theme: t})
}

// FormatMessage renders a status line without writing it.
func FormatMessage(t theme.Theme, kind theme.Kind, text string) string {
	icon := t.Symbol(kind)
	if icon == "" {
		return text
	}
	return icon + " " + t.Paint(kind.Role(), text)
}

// DividerOptions controls Divider.
type DividerOptions struct {
	// Char is repeated to draw the rule; defaults to a horizontal line.
	Char string
	// Width is a size token resolved against Columns.
	Width   string
	Columns int
	Title   string
	Variant string
	Padding int
}

// Divider writes a horizontal rule, optionally with a title near its start.
func Divider(w io.Writer, t theme.Theme, opts DividerOptions) error {
	line, err := FormatDivider(t, opts)
	if err != nil {
		return err
	}
	return WriteLine(w, line, LineOptions{Padding: opts.Padding, Theme: t})
}

// FormatDivider renders a divider without writing it.
func FormatDivider(t theme.Theme, opts DividerOptions) (string, error) {
	width, err := size.Resolve(opts.Width, columnsOrDefault(opts.Columns))
	if err != nil {
		return "", err
	}
	width -= opts.Padding
	if width < 1 {
		width = 1
	}

	char := opts.Char
	if char == "" {
		if glyphs, err := t.Glyphs(theme.BorderSingle); err == nil {
			char = glyphs.Top
		}
	}
	if ansi.VisibleWidth(char) == 0 {
		char = "-"
	}

	role, ok := theme.VariantRole(opts.Variant)
	if !ok {
		role = theme.None
	}

	if opts.Title == "" {
		return t.Paint(role, repeatTo(char, width)), nil
	}

	lead := repeatTo(char, 2)
	title := " " + opts.Title + " "
	rest := width - ansi.VisibleWidth(lead) - ansi.VisibleWidth(title)
	if rest < 0 {
		rest = 0
	}
	return t.Paint(role, lead) + t.Bold(title) + t.Paint(role, repeatTo(char, rest)), nil
}

// repeatTo repeats char until exactly width visible columns are filled.
func repeatTo(char string, width int) string {
	cw := ansi.VisibleWidth(char)
	if cw == 0 || width <= 0 {
		return ""
	}
	s := strings.Repeat(char, width/cw)
	if rem := width % cw; rem > 0 {
		s += string([]rune(ansi.Strip(char))[:rem])
	}
	return s
}

// BannerOptions controls Banner.
type BannerOptions struct {
	Border  string
	Variant string
	Padding int
	// Width is a size token; empty fits the box to its content.
	Width   string
	Columns int
	Align   Align
}

// Banner writes text inside a box.
func Banner(w io.Writer, t theme.Theme, text string, opts BannerOptions) error {
	lines, err := FormatBanner(t, text, opts)
	if err != nil {
		return err
	}
	return WriteLines(w, lines, LineOptions{Theme: t})
}

// FormatBanner renders a banner as lines.
func FormatBanner(t theme.Theme, text string, opts BannerOptions) ([]string, error) {
	preset := opts.Border
	if preset == "" {
		preset = theme.BorderRounded
	}
	border, err := t.BorderErr(preset, opts.Variant)
	if err != nil {
		return nil, err
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}

	columns := columnsOrDefault(opts.Columns)
	frame := ansi.VisibleWidth(border.Left) + ansi.VisibleWidth(border.Right) + 2*opts.Padding

	var inner int
	if opts.Width == "" {
		for _, line := range strings.Split(text, "\n") {
			inner = max(inner, ansi.VisibleWidth(line))
		}
		inner = min(inner, columns-frame)
	} else {
		total, err := size.Resolve(opts.Width, columns)
		if err != nil {
			return nil, err
		}
		inner = total - frame
	}
	inner = max(inner, 1)

	pad := strings.Repeat(" ", opts.Padding)
	span := inner + 2*opts.Padding

	var out []string
	if edge := horizontal(border.TopLeft, border.Top, border.TopRight, span); edge != "" {
		out = append(out, edge)
	}
	for _, line := range wrap.SplitText(text, inner) {
		out = append(out, border.Left+pad+Pad(line, inner, opts.Align)+pad+border.Right)
	}
	if edge := horizontal(border.BottomLeft, border.Bottom, border.BottomRight, span); edge != "" {
		out = append(out, edge)
	}
	return out, nil
}

// horizontal draws a top or bottom edge spanning width columns between its
// corners. An edge with no glyphs draws nothing.
func horizontal(leftCorner, fill, rightCorner string, width int) string {
	if leftCorner == "" && fill == "" && rightCorner == "" {
		return ""
	}
	return leftCorner + Repeat(fill, width) + rightCorner
}

// Repeat fills width visible columns with a possibly styled glyph, keeping
// the styling around the whole run. An empty glyph yields spaces.
func Repeat(glyph string, width int) string {
	if width <= 0 {
		return ""
	}
	if glyph == "" {
		return strings.Repeat(" ", width)
	}
	plain := ansi.Strip(glyph)
	if plain == glyph {
		return repeatTo(glyph, width)
	}
	idx := strings.Index(glyph, plain)
	if idx < 0 || plain == "" {
		return repeatTo(glyph, width)
	}
	return glyph[:idx] + repeatTo(plain, width) + glyph[idx+len(plain):]
}

// Link renders a hyperlink. Terminals without hyperlink support get the
// text followed by the URL in parentheses.
func Link(t theme.Theme, url, text string) string {
	if t.Hyperlinks() {
		if text == "" {
			text = url
		}
		return ansi.Hyperlink(url, text)
	}
	if text == "" || text == url {
		return url
	}
	return text + " (" + url + ")"
}

func columnsOrDefault(columns int) int {
	if columns <= 0 {
		return 80
	}
	return columns
}
