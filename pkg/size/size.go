// Package size resolves symbolic width tokens against a terminal width.
package size

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/termrender/pkg/errors"
)

// named fractions of the terminal width.
var named = map[string][2]int{
	"":               {1, 1},
	"auto":           {1, 1},
	"full":           {1, 1},
	"half":           {1, 2},
	"third":          {1, 3},
	"quarter":        {1, 4},
	"two-thirds":     {2, 3},
	"three-quarters": {3, 4},
}

// Resolve turns token into a column count for a terminal columns wide.
// Tokens are a name (half, third, ...), a fraction "a/b", a percentage "N%",
// a positive integer, or a negative integer meaning columns minus N.
func Resolve(token string, columns int) (int, error) {
	t := strings.ToLower(strings.TrimSpace(token))

	if frac, ok := named[t]; ok {
		return fraction(columns, frac[0], frac[1]), nil
	}

	if num, den, ok := strings.Cut(t, "/"); ok {
		a, errA := strconv.Atoi(num)
		b, errB := strconv.Atoi(den)
		if errA == nil && errB == nil && a > 0 && b > 0 {
			return fraction(columns, a, b), nil
		}
		return 0, invalid(token)
	}

	if pct, ok := strings.CutSuffix(t, "%"); ok {
		p, err := strconv.ParseFloat(pct, 64)
		if err != nil || p < 0 {
			return 0, invalid(token)
		}
		return clamp(int(float64(columns)*p/100), columns), nil
	}

	n, err := strconv.Atoi(t)
	if err != nil || n == 0 {
		return 0, invalid(token)
	}
	if n < 0 {
		return clamp(columns+n, columns), nil
	}
	return n, nil
}

// MustResolve is Resolve for tokens known to be valid; invalid tokens fall
// back to the full width.
func MustResolve(token string, columns int) int {
	n, err := Resolve(token, columns)
	if err != nil {
		return max(columns, 1)
	}
	return n
}

func fraction(columns, a, b int) int {
	return clamp(columns*a/b, columns)
}

func clamp(n, columns int) int {
	if n > columns {
		n = columns
	}
	if n < 1 {
		n = 1
	}
	return n
}

func invalid(token string) error {
	return errors.Newf(errors.ErrInvalidSizeToken, "invalid size token %q", token).
		WithDetail("token", token)
}
