// Package wrap splits styled strings into width-limited lines.
//
// Widths are visible widths: escape sequences do not count. When a line is
// broken, the SGR styling active at the break point is closed at the end of
// the first half and re-opened at the start of the second, so each produced
// line is self-contained.
package wrap

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/termrender/pkg/ansi"
)

// CloseCode returns the canonical SGR code that resets open. Codes without a
// dedicated reset map to 0.
func CloseCode(open int) int {
	switch {
	case open >= 30 && open <= 38, open >= 90 && open <= 97:
		return 39
	case open >= 40 && open <= 48, open >= 100 && open <= 107:
		return 49
	}
	switch open {
	case 1, 2:
		return 22
	case 3:
		return 23
	case 4:
		return 24
	case 5, 6:
		return 25
	case 7:
		return 27
	case 8:
		return 28
	case 9:
		return 29
	case 53:
		return 55
	}
	return 0
}

// isReset reports whether code closes styling rather than opening it.
func isReset(code int) bool {
	switch code {
	case 0, 22, 23, 24, 25, 27, 28, 29, 39, 49, 55:
		return true
	}
	return false
}

// replacesSameFamily reports whether a newly opened code supersedes earlier
// open codes sharing its reset. Colors do; bold and dim coexist under 22.
func replacesSameFamily(closeCode int) bool {
	return closeCode == 39 || closeCode == 49
}

// sgrParams returns the parameter string of an SGR escape token, or false
// when the token is some other escape sequence.
func sgrParams(tok ansi.Token) (string, bool) {
	v := tok.Value
	if tok.Kind != ansi.Escape || !strings.HasPrefix(v, ansi.CSI) || !strings.HasSuffix(v, "m") {
		return "", false
	}
	params := v[len(ansi.CSI) : len(v)-1]
	for _, r := range params {
		if (r < '0' || r > '9') && r != ';' {
			return "", false
		}
	}
	return params, true
}

// splitCodes groups an SGR parameter list into individual codes, keeping
// extended color forms such as 38;5;n and 38;2;r;g;b together.
func splitCodes(params string) []string {
	if params == "" {
		return []string{"0"}
	}
	parts := strings.Split(params, ";")
	var codes []string
	for i := 0; i < len(parts); i++ {
		p := parts[i]
		if p == "" {
			p = "0"
		}
		if (p == "38" || p == "48") && i+1 < len(parts) {
			extra := 0
			switch parts[i+1] {
			case "5":
				extra = 2
			case "2":
				extra = 4
			}
			if extra > 0 && i+extra < len(parts) {
				codes = append(codes, strings.Join(parts[i:i+extra+1], ";"))
				i += extra
				continue
			}
		}
		codes = append(codes, p)
	}
	return codes
}

func leadingCode(code string) int {
	head, _, _ := strings.Cut(code, ";")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return n
}

// styleStack tracks the open SGR codes at a cursor position.
type styleStack []string

func (s *styleStack) apply(code string) {
	n := leadingCode(code)
	if n == 0 {
		*s = (*s)[:0]
		return
	}
	if isReset(n) {
		s.removeClosedBy(n)
		return
	}
	closeCode := CloseCode(n)
	if replacesSameFamily(closeCode) {
		s.removeClosedBy(closeCode)
	}
	*s = append(*s, code)
}

func (s *styleStack) removeClosedBy(closeCode int) {
	kept := (*s)[:0]
	for _, open := range *s {
		if CloseCode(leadingCode(open)) != closeCode {
			kept = append(kept, open)
		}
	}
	*s = kept
}

// ActiveCodes returns the SGR codes still open at the end of s, oldest first.
func ActiveCodes(s string) []string {
	stack := styleStack{}
	for _, tok := range ansi.Tokenize(s) {
		params, ok := sgrParams(tok)
		if !ok {
			continue
		}
		for _, code := range splitCodes(params) {
			stack.apply(code)
		}
	}
	return append([]string(nil), stack...)
}

// closing builds the reset sequences for codes, newest first.
func closing(codes []string) string {
	var b strings.Builder
	for i := len(codes) - 1; i >= 0; i-- {
		b.WriteString(ansi.SGR(strconv.Itoa(CloseCode(leadingCode(codes[i])))))
	}
	return b.String()
}

// opening re-emits codes in the order they were opened.
func opening(codes []string) string {
	var b strings.Builder
	for _, code := range codes {
		b.WriteString(ansi.SGR(code))
	}
	return b.String()
}
