package euclid

import (
	"math"
	"strconv"
)

// GCD returns the greatest common divisor of a and b.
//
// Signs are dropped before the computation, so GCD(-8, 12) == 4.
// If either operand is zero the divisor is zero after ordering and
// ErrZeroDivisor is returned. math.MinInt64 has no int64 absolute value
// and yields a *RangeError.
func GCD(a, b int64) (int64, error) {
	a, err := abs(a)
	if err != nil {
		return 0, err
	}
	b, err = abs(b)
	if err != nil {
		return 0, err
	}

	if a < b {
		a, b = b, a
	}
	if b == 0 {
		return 0, ErrZeroDivisor
	}

	for a%b != 0 {
		a, b = b, a%b
	}
	return b, nil
}

func abs(n int64) (int64, error) {
	if n == math.MinInt64 {
		return 0, &RangeError{Input: strconv.FormatInt(n, 10)}
	}
	if n < 0 {
		return -n, nil
	}
	return n, nil
}
