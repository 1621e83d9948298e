package euclid

import (
	"errors"
	"strconv"
	"strings"

	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/numeral"
)

// ParseInteger parses a single decimal integer literal as typed on a console
// line. Surrounding whitespace is ignored and a leading sign is allowed.
// Digits may come from any script (full-width, Arabic-Indic, ...) and may be
// grouped with single underscores ("1_000").
func ParseInteger(s string) (int64, error) {
	literal, ok := numeral.Fold(strings.TrimSpace(s))
	if !ok {
		return 0, &SyntaxError{Input: s}
	}

	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Input: literal}
		}
		return 0, &SyntaxError{Input: s}
	}
	return n, nil
}
