package ansi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/termrender/pkg/ansi"
)

func TestCursorSequences(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{ansi.CursorUp(2), "\x1b[2A"},
		{ansi.CursorDown(1), "\x1b[1B"},
		{ansi.CursorForward(3), "\x1b[3C"},
		{ansi.CursorBack(4), "\x1b[4D"},
		{ansi.CursorNextLine(1), "\x1b[1E"},
		{ansi.CursorPrevLine(1), "\x1b[1F"},
		{ansi.CursorToColumn(1), "\x1b[1G"},
		{ansi.CursorTo(5, 10), "\x1b[10;5H"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}
}

func TestFixedSequences(t *testing.T) {
	assert.Equal(t, "\x1b[K", ansi.EraseLineEnd)
	assert.Equal(t, "\x1b[1K", ansi.EraseLineStart)
	assert.Equal(t, "\x1b[2K", ansi.EraseLine)
	assert.Equal(t, "\x1b[2J", ansi.EraseScreen)
	assert.Equal(t, "\x1b[1J", ansi.EraseScreenUp)
	assert.Equal(t, "\x1b[?25l", ansi.HideCursor)
	assert.Equal(t, "\x1b[?25h", ansi.ShowCursor)
	assert.Equal(t, "\x1b[S", ansi.ScrollUp)
	assert.Equal(t, "\x1b[T", ansi.ScrollDown)
	assert.Equal(t, "\x1b[?2026h", ansi.SyncStart)
	assert.Equal(t, "\x1b[?2026l", ansi.SyncEnd)
}

func TestSGRAndHyperlink(t *testing.T) {
	assert.Equal(t, "\x1b[1m", ansi.SGR("1"))
	assert.Equal(t, "\x1b[38;5;196m", ansi.SGR("38", "5", "196"))
	assert.Equal(t, "\x1b]8;;https://go.dev\x07Go\x1b]8;;\x07", ansi.Hyperlink("https://go.dev", "Go"))
}

func TestSequencesAreSingleEscapeTokens(t *testing.T) {
	for _, seq := range []string{ansi.EraseLine, ansi.HideCursor, ansi.SyncStart, ansi.CursorTo(1, 2), ansi.ScrollUp} {
		tokens := ansi.Tokenize(seq)
		if assert.Len(t, tokens, 1, "sequence %q", seq) {
			assert.Equal(t, ansi.Escape, tokens[0].Kind)
		}
	}
}
