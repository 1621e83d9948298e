package summation

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/numeral"
)

// Sequence is the parsed prefix of a line of numbers.
type Sequence struct {
	Values []float64

	stopToken string
	stopIndex int
	stopped   bool
}

// Parse tokenizes line and parses tokens until the first one that is not a
// number. An empty or blank line yields an empty sequence.
func Parse(line string) Sequence {
	var seq Sequence
	for i, token := range strings.Fields(line) {
		v, ok := ParseToken(token)
		if !ok {
			seq.stopToken = token
			seq.stopIndex = i
			seq.stopped = true
			break
		}
		seq.Values = append(seq.Values, v)
	}
	return seq
}

// ParseToken parses a single token as a decimal floating-point literal.
// Digits may come from any script and be grouped with underscores.
// Infinities and NaN are accepted by name, optionally signed. A literal whose
// magnitude exceeds float64 parses to ±Inf. Hexadecimal forms are rejected.
func ParseToken(token string) (float64, bool) {
	literal, ok := numeral.Fold(token)
	if !ok {
		return 0, false
	}
	if isNaN(literal) {
		return math.NaN(), true
	}

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// ParseFloat returns ±Inf or ±0 alongside ErrRange.
			return v, true
		}
		return 0, false
	}
	return v, true
}

// isNaN reports whether literal spells NaN with an optional sign, which
// strconv only accepts unsigned.
func isNaN(literal string) bool {
	if strings.HasPrefix(literal, "+") || strings.HasPrefix(literal, "-") {
		literal = literal[1:]
	}
	return strings.EqualFold(literal, "nan")
}

// Len returns the number of parsed values.
func (s Sequence) Len() int {
	return len(s.Values)
}

// Empty reports whether no value was parsed.
func (s Sequence) Empty() bool {
	return len(s.Values) == 0
}

// Sum returns the sum of the parsed values, accumulated left to right.
func (s Sequence) Sum() float64 {
	var total float64
	for _, v := range s.Values {
		total += v
	}
	return total
}

// Stopped returns the token that ended the sequence and its position among
// all tokens of the line. ok is false when every token parsed.
func (s Sequence) Stopped() (token string, index int, ok bool) {
	return s.stopToken, s.stopIndex, s.stopped
}
