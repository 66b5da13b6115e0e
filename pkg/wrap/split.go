package wrap

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/termrender/pkg/ansi"
)

// breakChars are tried in order; the first one found within the limit wins.
var breakChars = []rune{' ', '/', '.', ',', '-', ':', '|', '@', '+'}

// AdjustIndex maps a visible character offset in line to a raw byte offset.
// Escape sequences directly after the boundary stay on the left.
func AdjustIndex(line string, visibleIndex int) int {
	if visibleIndex <= 0 {
		return 0
	}
	seen, raw := 0, 0
	for _, tok := range ansi.Tokenize(line) {
		if tok.Kind == ansi.Escape {
			raw += len(tok.Value)
			continue
		}
		n := utf8.RuneCountInString(tok.Value)
		if seen+n <= visibleIndex {
			seen += n
			raw += len(tok.Value)
			continue
		}
		for i := range tok.Value {
			if seen == visibleIndex {
				return raw + i
			}
			seen++
		}
	}
	return raw
}

// BreakLine splits line at rawIndex. Styling open at the split is closed at
// the end of first and re-opened at the start of second; both halves are
// trimmed of surrounding whitespace. An index inside an escape sequence moves
// to its end, one inside a multi-byte character to that character's start.
func BreakLine(line string, rawIndex int) (first, second string) {
	rawIndex = boundary(line, rawIndex)
	first, second = carry(line[:rawIndex], line[rawIndex:])
	return trimVisible(first), trimVisible(second)
}

// boundary clamps rawIndex to line and moves it off the middle of a token.
func boundary(line string, rawIndex int) int {
	if rawIndex <= 0 {
		return 0
	}
	if rawIndex >= len(line) {
		return len(line)
	}
	start := 0
	for _, tok := range ansi.Tokenize(line) {
		end := start + len(tok.Value)
		if rawIndex < end {
			if tok.Kind == ansi.Escape && rawIndex > start {
				return end
			}
			for rawIndex > start && !utf8.RuneStart(line[rawIndex]) {
				rawIndex--
			}
			return rawIndex
		}
		start = end
	}
	return rawIndex
}

// carry moves the styling active at the end of head onto the start of tail.
func carry(head, tail string) (string, string) {
	codes := ActiveCodes(head)
	if len(codes) == 0 {
		return head, tail
	}
	return head + closing(codes), opening(codes) + tail
}

// SplitText breaks text into lines no wider than maxWidth visible
// characters. Existing newlines are honored; long lines break at the last
// suitable break character and are force-split when there is none.
func SplitText(text string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}

	var lines []string
	remaining := text
	broke := false

	for ansi.VisibleWidth(remaining) > maxWidth || strings.Contains(remaining, "\n") {
		if idx := strings.Index(remaining, "\n"); idx >= 0 {
			head, tail := carry(strings.TrimSuffix(remaining[:idx], "\r"), remaining[idx+1:])
			lines = append(lines, SplitText(head, maxWidth)...)
			remaining = tail
			broke = false
			continue
		}

		first, second := breakAtChar(remaining, maxWidth)
		if ansi.VisibleWidth(first) > 0 {
			lines = append(lines, first)
		}
		remaining = second
		broke = true
	}

	if broke && ansi.VisibleWidth(remaining) == 0 {
		return lines
	}
	return append(lines, remaining)
}

// String is SplitText joined with newlines.
func String(text string, maxWidth int) string {
	return strings.Join(SplitText(text, maxWidth), "\n")
}

// breakAtChar cuts line, which is wider than maxWidth and has no newline, at
// the preferred break character or, failing that, at exactly maxWidth.
func breakAtChar(line string, maxWidth int) (string, string) {
	runes := []rune(ansi.Strip(line))

	for _, bc := range breakChars {
		if cut := lastBreak(runes, bc, maxWidth); cut > 0 {
			return BreakLine(line, AdjustIndex(line, cut))
		}
	}
	return BreakLine(line, AdjustIndex(line, maxWidth))
}

// lastBreak returns the visible cut position for the last occurrence of bc
// that keeps the first line within maxWidth, or 0 when there is none. A space
// is dropped at the cut so it may sit at index maxWidth; other break
// characters end the first line.
func lastBreak(runes []rune, bc rune, maxWidth int) int {
	if bc == ' ' {
		for p := min(maxWidth, len(runes)-1); p >= 1; p-- {
			if runes[p] == ' ' && hasContent(runes[:p]) {
				return p
			}
		}
		return 0
	}
	for p := min(maxWidth, len(runes)) - 1; p >= 0; p-- {
		if runes[p] == bc {
			return p + 1
		}
	}
	return 0
}

func hasContent(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// trimVisible trims whitespace from both visible ends of s without touching
// escape sequences.
func trimVisible(s string) string {
	tokens := ansi.Tokenize(s)

	for i := range tokens {
		if tokens[i].Kind != ansi.Text {
			continue
		}
		tokens[i].Value = strings.TrimLeftFunc(tokens[i].Value, unicode.IsSpace)
		if tokens[i].Value != "" {
			break
		}
	}
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].Kind != ansi.Text {
			continue
		}
		tokens[i].Value = strings.TrimRightFunc(tokens[i].Value, unicode.IsSpace)
		if tokens[i].Value != "" {
			break
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, tok := range tokens {
		b.WriteString(tok.Value)
	}
	return b.String()
}
