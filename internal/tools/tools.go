package tools

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var _numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParsePrice reads the longest numeric prefix of s, leading whitespace is
// skipped and trailing garbage ignored ("12.5abc" is 12.5). Values out of
// float64 range overflow to ±Inf and underflow to 0. ok is false when s has
// no numeric prefix.
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	prefix := _numericPrefix.FindString(s)
	if prefix == "" {
		return 0, false
	}

	if strings.HasSuffix(prefix, "Infinity") {
		if prefix[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// FormatPrice prints a price in its shortest form, 9.0 is "9".
func FormatPrice(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return decimal.NewFromFloat(f).String()
}
