// Package numeral folds numbers typed on a console into the ASCII form that
// strconv parses.
//
// Any Unicode decimal digit (category Nd) is accepted in place of an ASCII
// digit, and single underscores may group digits ("1_000"). Hexadecimal
// markers are never accepted.
package numeral

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold returns s with compatibility forms folded (NFKC), every decimal digit
// rewritten as its ASCII digit and grouping underscores removed.
// ok is false when an underscore is not between two digits or s contains an
// 'x' or 'X'.
func Fold(s string) (string, bool) {
	runes := []rune(norm.NFKC.String(s))

	var b strings.Builder
	b.Grow(len(runes))
	for i, r := range runes {
		switch {
		case r == '_':
			if i == 0 || i == len(runes)-1 || !isDigit(runes[i-1]) || !isDigit(runes[i+1]) {
				return "", false
			}
		case r == 'x' || r == 'X':
			return "", false
		default:
			if d, ok := DigitValue(r); ok {
				b.WriteByte(byte('0' + d))
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String(), true
}

// DigitValue returns the value of a Unicode decimal digit.
// Every Nd range is made of complete runs of ten, zero first.
func DigitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if r < 0x80 {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		if rune(rg.Lo) <= r && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if rune(rg.Lo) <= r && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10, true
		}
	}
	return 0, false
}

func isDigit(r rune) bool {
	_, ok := DigitValue(r)
	return ok
}
