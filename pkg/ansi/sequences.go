package ansi

import (
	"strconv"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Control sequences emitted by the engine.
const (
	CSI = "\x1b["
	OSC = "\x1b]"
	BEL = "\a"
	ST  = "\x1b\\"

	EraseLine      = xansi.EraseEntireLine
	EraseLineEnd   = xansi.EraseLineRight
	EraseLineStart = xansi.EraseLineLeft
	EraseScreen    = xansi.EraseEntireScreen
	EraseScreenUp  = xansi.EraseScreenAbove
	HideCursor     = xansi.HideCursor
	ShowCursor     = xansi.ShowCursor
	ScrollUp       = CSI + "S"
	ScrollDown     = CSI + "T"
	SyncStart      = xansi.SetSynchronizedOutputMode
	SyncEnd        = xansi.ResetSynchronizedOutputMode
	Reset          = CSI + "0m"
)

// cursor always writes the count; x/ansi drops it when it is 1.
func cursor(n int, final byte) string {
	return CSI + strconv.Itoa(n) + string(final)
}

// CursorUp moves the cursor up n lines.
func CursorUp(n int) string { return cursor(n, 'A') }

// CursorDown moves the cursor down n lines.
func CursorDown(n int) string { return cursor(n, 'B') }

// CursorForward moves the cursor right n columns.
func CursorForward(n int) string { return cursor(n, 'C') }

// CursorBack moves the cursor left n columns.
func CursorBack(n int) string { return cursor(n, 'D') }

// CursorNextLine moves to the beginning of the line n lines down.
func CursorNextLine(n int) string { return cursor(n, 'E') }

// CursorPrevLine moves to the beginning of the line n lines up.
func CursorPrevLine(n int) string { return cursor(n, 'F') }

// CursorToColumn moves to column x (1-based) of the current line.
func CursorToColumn(x int) string { return cursor(x, 'G') }

// CursorTo moves to column x, row y (both 1-based).
func CursorTo(x, y int) string {
	return CSI + strconv.Itoa(y) + ";" + strconv.Itoa(x) + "H"
}

// SGR builds a Select Graphic Rendition sequence from raw parameter strings,
// for example SGR("1") or SGR("38", "5", "196").
func SGR(params ...string) string {
	return CSI + strings.Join(params, ";") + "m"
}

// Hyperlink wraps text in an OSC-8 hyperlink to url.
func Hyperlink(url, text string) string {
	return xansi.SetHyperlink(url) + text + xansi.ResetHyperlink()
}
