package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	leadingDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInteger = regexp.MustCompile(`^[+-]?\d+`)
)

// ParsePrice reads the longest decimal literal at the start of s, ignoring
// leading whitespace, so "1.50 USD" parses as 1.50. The literal is read as a
// float64; one that overflows it does not parse.
func ParsePrice(s string) (decimal.Decimal, bool) {
	literal := leadingDecimal.FindString(strings.TrimLeft(s, " \t\r\n"))
	if literal == "" {
		return decimal.Zero, false
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// ParseStock reads the integer at the start of s, so "10.7" parses as 10.
// Integers beyond the int range are clamped to it, keeping their sign.
func ParseStock(s string) (int, bool) {
	literal := leadingInteger.FindString(strings.TrimLeft(s, " \t\r\n"))
	if literal == "" {
		return 0, false
	}
	n, err := strconv.Atoi(literal)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(literal, "-") {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

// CoerceStock is ParseStock with anything unparsable treated as zero.
func CoerceStock(s string) int {
	n, _ := ParseStock(s)
	return n
}
