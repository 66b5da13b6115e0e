package theme_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/theme"
)

func newTheme(t *testing.T, opts theme.Options) theme.Theme {
	t.Helper()
	th, err := theme.New(opts)
	require.NoError(t, err)
	return th
}

func TestStyleByColorLevel(t *testing.T) {
	t.Run("no color", func(t *testing.T) {
		th := newTheme(t, theme.Options{Palette: "classic"})
		open, close := th.Style(theme.Primary)
		assert.Empty(t, open)
		assert.Empty(t, close)
		assert.Equal(t, "text", th.Paint(theme.Primary, "text"))
	})

	t.Run("16 colors light", func(t *testing.T) {
		th := newTheme(t, theme.Options{ColorLevel: theme.Color16, Palette: "classic"})
		open, close := th.Style(theme.Primary)
		assert.Equal(t, "\x1b[34m", open)
		assert.Equal(t, "\x1b[39m", close)
	})

	t.Run("16 colors dark", func(t *testing.T) {
		th := newTheme(t, theme.Options{ColorLevel: theme.Color16, Palette: "classic", DarkBackground: true})
		open, _ := th.Style(theme.Primary)
		assert.Equal(t, "\x1b[94m", open)
	})

	t.Run("256 colors from hex", func(t *testing.T) {
		th := newTheme(t, theme.Options{ColorLevel: theme.Color256})
		open, _ := th.Style(theme.Success)
		assert.True(t, strings.HasPrefix(open, "\x1b[38;5;"), "got %q", open)
	})

	t.Run("truecolor override", func(t *testing.T) {
		th := newTheme(t, theme.Options{
			ColorLevel: theme.TrueColor,
			Colors:     map[string]string{"Primary": "#ff0000"},
		})
		open, _ := th.Style(theme.Primary)
		assert.Equal(t, "\x1b[38;2;255;0;0m", open)
	})

	t.Run("hex degraded to 16 colors", func(t *testing.T) {
		th := newTheme(t, theme.Options{
			ColorLevel:     theme.Color16,
			DarkBackground: true,
			Colors:         map[string]string{"primary": "#ff0000"},
		})
		open, close := th.Style(theme.Primary)
		assert.Regexp(t, `^\x1b\[(3|9)[0-7]m$`, open)
		assert.Equal(t, "\x1b[39m", close)
	})

	t.Run("level clamped", func(t *testing.T) {
		th := newTheme(t, theme.Options{ColorLevel: 9})
		assert.Equal(t, theme.TrueColor, th.ColorLevel())
	})
}

func TestStyleErr(t *testing.T) {
	th := newTheme(t, theme.Options{ColorLevel: theme.Color16})

	_, _, err := th.StyleErr("sparkly")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownVariant))

	open, close, err := th.StyleErr(theme.None)
	require.NoError(t, err)
	assert.Empty(t, open+close)

	assert.Equal(t, "plain", th.Paint("sparkly", "plain"))
}

func TestPaintAndAttributes(t *testing.T) {
	th := newTheme(t, theme.Options{ColorLevel: theme.Color16, Palette: "classic"})

	assert.Equal(t, "\x1b[31mboom\x1b[39m", th.Paint(theme.Error, "boom"))
	assert.Equal(t, "\x1b[1mhi\x1b[22m", th.Bold("hi"))
	assert.Equal(t, "\x1b[2mhi\x1b[22m", th.Dim("hi"))
	assert.Equal(t, "\x1b[3mhi\x1b[23m", th.Italic("hi"))
	assert.Equal(t, "\x1b[4mhi\x1b[24m", th.Underline("hi"))

	plain := theme.Plain()
	assert.Equal(t, "hi", plain.Bold("hi"))
}

func TestNewUnknownPalette(t *testing.T) {
	_, err := theme.New(theme.Options{Palette: "neon"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownVariant))
	assert.Equal(t, "neon", errors.GetErrorDetails(err)["palette"])
}

func TestOptionsCopy(t *testing.T) {
	colors := map[string]string{"primary": "1"}
	th := newTheme(t, theme.Options{Colors: colors})

	got := th.Options()
	got.Colors["primary"] = "2"
	assert.Equal(t, "1", th.Options().Colors["primary"])
	assert.Equal(t, theme.DefaultPalette, th.PaletteName())
}

func TestPalettes(t *testing.T) {
	assert.Equal(t, []string{"classic", "default", "mono"}, theme.PaletteNames())

	parsed, err := theme.ParsePalettes([]byte("palettes:\n  x:\n    primary: {light: \"1\", dark: \"9\"}\n"))
	require.NoError(t, err)
	assert.Equal(t, "9", parsed["x"][theme.Primary].Dark)

	_, err = theme.ParsePalettes([]byte("palettes: ["))
	assert.Error(t, err)
}
