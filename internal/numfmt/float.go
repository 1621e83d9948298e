// Package numfmt renders numbers the way the console programs print them.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal exponents in [minFixedExp, maxFixedExp) print in fixed notation.
const (
	minFixedExp = -4
	maxFixedExp = 16
)

// Float formats f with the fewest digits that round-trip to the same
// float64. Fixed notation always carries a fractional part ("6.0"); values
// with a decimal exponent outside [-4, 16) use scientific notation with at
// least two exponent digits ("1e+16", "1.5e-05").
func Float(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	// Shortest digits, one before the point: "-1.2345e+06".
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expPart)

	sign := ""
	if strings.HasPrefix(mantissa, "-") {
		sign = "-"
		mantissa = mantissa[1:]
	}
	digits := strings.Replace(mantissa, ".", "", 1)

	if exp < minFixedExp || exp >= maxFixedExp {
		return sign + scientific(digits, exp)
	}
	return sign + fixed(digits, exp)
}

func scientific(digits string, exp int) string {
	var b strings.Builder
	b.WriteString(digits[:1])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	expSign := '+'
	if exp < 0 {
		expSign = '-'
		exp = -exp
	}
	fmt.Fprintf(&b, "e%c%02d", expSign, exp)
	return b.String()
}

func fixed(digits string, exp int) string {
	if exp < 0 {
		return "0." + strings.Repeat("0", -exp-1) + digits
	}
	point := exp + 1
	if len(digits) <= point {
		return digits + strings.Repeat("0", point-len(digits)) + ".0"
	}
	return digits[:point] + "." + digits[point:]
}
