package ansi

import (
	"strings"
	"unicode/utf8"
)

// TokenKind distinguishes literal runs from escape sequences.
type TokenKind int

const (
	// Text is a maximal run of literal characters.
	Text TokenKind = iota
	// Escape is exactly one recognized escape sequence.
	Escape
)

// String returns the kind name.
func (k TokenKind) String() string {
	if k == Escape {
		return "escape"
	}
	return "text"
}

// Token is one run of a tokenized string.
type Token struct {
	Kind  TokenKind
	Value string
}

const (
	esc  = 0x1b
	bel  = 0x07
	csi8 = "\u009b"
)

// Tokenize splits s into literal runs and escape sequences. The tokens are in
// input order, never overlap and concatenate back to s.
func Tokenize(s string) []Token {
	var tokens []Token
	textStart := 0

	flush := func(end int) {
		if end > textStart {
			tokens = append(tokens, Token{Kind: Text, Value: s[textStart:end]})
		}
	}

	for i := 0; i < len(s); {
		n := escapeLen(s, i)
		if n == 0 {
			i++
			continue
		}
		flush(i)
		tokens = append(tokens, Token{Kind: Escape, Value: s[i : i+n]})
		i += n
		textStart = i
	}
	flush(len(s))

	return tokens
}

// escapeLen returns the byte length of the escape sequence starting at s[i],
// or 0 when no complete sequence starts there.
func escapeLen(s string, i int) int {
	if strings.HasPrefix(s[i:], csi8) {
		if n := csiBodyLen(s, i+len(csi8)); n > 0 {
			return len(csi8) + n
		}
		return 0
	}
	if s[i] != esc || i+1 >= len(s) {
		return 0
	}

	switch next := s[i+1]; {
	case next == '[':
		if n := csiBodyLen(s, i+2); n > 0 {
			return 2 + n
		}
		return 0
	case next == ']':
		return oscLen(s, i)
	case next >= 0x30 && next <= 0x7e:
		return 2
	default:
		return 0
	}
}

// csiBodyLen measures parameter, intermediate and final bytes starting at j.
func csiBodyLen(s string, j int) int {
	start := j
	for j < len(s) && s[j] >= 0x30 && s[j] <= 0x3f {
		j++
	}
	for j < len(s) && s[j] >= 0x20 && s[j] <= 0x2f {
		j++
	}
	if j < len(s) && s[j] >= 0x40 && s[j] <= 0x7e {
		return j - start + 1
	}
	return 0
}

// oscLen measures an OSC sequence starting at s[i] (ESC ]) up to and
// including its BEL or ST terminator.
func oscLen(s string, i int) int {
	for j := i + 2; j < len(s); j++ {
		switch s[j] {
		case bel:
			return j - i + 1
		case esc:
			if j+1 < len(s) && s[j+1] == '\\' {
				return j - i + 2
			}
			return 0
		}
	}
	return 0
}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	if !strings.ContainsRune(s, esc) && !strings.Contains(s, csi8) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, tok := range Tokenize(s) {
		if tok.Kind == Text {
			b.WriteString(tok.Value)
		}
	}
	return b.String()
}

// VisibleWidth is the number of code points left after stripping s.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(Strip(s))
}

// Wrap surrounds every literal run of s with open and close. A run that sits
// between two escape sequences is left alone: it already belongs to styling
// that a neighbor opened. Escape sequences pass through unchanged.
func Wrap(s, open, close string) string {
	tokens := Tokenize(s)
	var b strings.Builder
	b.Grow(len(s) + len(tokens)*(len(open)+len(close)))

	for i, tok := range tokens {
		if tok.Kind == Escape {
			b.WriteString(tok.Value)
			continue
		}
		flanked := i > 0 && tokens[i-1].Kind == Escape &&
			i+1 < len(tokens) && tokens[i+1].Kind == Escape
		if flanked {
			b.WriteString(tok.Value)
			continue
		}
		b.WriteString(open)
		b.WriteString(tok.Value)
		b.WriteString(close)
	}

	return b.String()
}
