package euclid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD_Examples(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"common_factor", 12, 18, 6},
		{"coprime", 17, 5, 1},
		{"negative_first", -8, 12, 4},
		{"both_negative", -24, -36, 12},
		{"equal", 7, 7, 7},
		{"one_divides_other", 5, 25, 5},
		{"ones", 1, 1, 1},
		{"large", 29024, 7964, 4},
		{"max_int", math.MaxInt64, math.MaxInt64, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GCD(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGCD_Commutative(t *testing.T) {
	pairs := [][2]int64{
		{12, 18}, {17, 5}, {-8, 12}, {1071, 462}, {270, -192}, {1, 99}, {-1000000007, 998244353},
	}

	for _, p := range pairs {
		ab, err := GCD(p[0], p[1])
		require.NoError(t, err)
		ba, err := GCD(p[1], p[0])
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "gcd(%d, %d) != gcd(%d, %d)", p[0], p[1], p[1], p[0])
	}
}

func TestGCD_DividesBothOperands(t *testing.T) {
	for a := int64(-30); a <= 30; a++ {
		for b := int64(-30); b <= 30; b++ {
			if a == 0 || b == 0 {
				continue
			}
			g, err := GCD(a, b)
			require.NoError(t, err)
			require.Positive(t, g)
			assert.Zero(t, a%g, "gcd(%d, %d) = %d does not divide %d", a, b, g, a)
			assert.Zero(t, b%g, "gcd(%d, %d) = %d does not divide %d", a, b, g, b)

			// No larger integer divides both.
			for d := g + 1; d <= 30; d++ {
				assert.False(t, a%d == 0 && b%d == 0, "gcd(%d, %d) = %d but %d divides both", a, b, g, d)
			}
		}
	}
}

func TestGCD_ZeroDivisor(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
	}{
		{"second_zero", 12, 0},
		{"first_zero", 0, 12},
		{"both_zero", 0, 0},
		{"negative_and_zero", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GCD(tt.a, tt.b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrZeroDivisor)
			assert.Equal(t, "integer division or modulo by zero", err.Error())
		})
	}
}

func TestGCD_MinInt64(t *testing.T) {
	_, err := GCD(math.MinInt64, 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.True(t, IsRangeError(err))

	_, err = GCD(6, math.MinInt64)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
