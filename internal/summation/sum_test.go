package summation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLen   int
		wantSum   float64
		wantStop  string
		wantIndex int
		stopped   bool
	}{
		{"three_integers", "1 2 3", 3, 6, "", 0, false},
		{"stops_at_first_bad_token", "1 2 abc 4", 2, 3, "abc", 2, true},
		{"empty", "", 0, 0, "", 0, false},
		{"blank", "   \t  ", 0, 0, "", 0, false},
		{"only_bad", "abc", 0, 0, "abc", 0, true},
		{"bad_first", "x 1 2", 0, 0, "x", 0, true},
		{"decimals", "0.5 0.25 -1", 3, -0.25, "", 0, false},
		{"exponents", "1e3 2E-1", 2, 1000.2, "", 0, false},
		{"extra_whitespace", "  1\t\t2   3\n", 3, 6, "", 0, false},
		{"signs", "+1 -2 +3", 3, 2, "", 0, false},
		{"hex_rejected", "1 0x10 2", 1, 1, "0x10", 1, true},
		{"grouping_underscores", "1_000 2", 2, 1002, "", 0, false},
		{"misplaced_underscore", "1 1__0 2", 1, 1, "1__0", 1, true},
		{"arabic_indic_digits", "١.٥ 1", 2, 2.5, "", 0, false},
		{"full_width_digits", "１ ２", 2, 3, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := Parse(tt.line)
			assert.Equal(t, tt.wantLen, seq.Len())
			assert.InDelta(t, tt.wantSum, seq.Sum(), 1e-9)
			assert.Equal(t, tt.wantLen == 0, seq.Empty())

			token, index, ok := seq.Stopped()
			assert.Equal(t, tt.stopped, ok)
			assert.Equal(t, tt.wantStop, token)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}

func TestParse_DiscardsTrailingValidTokens(t *testing.T) {
	seq := Parse("1 2 abc 4")
	require.Equal(t, []float64{1, 2}, seq.Values)
}

func TestParseToken_SpecialValues(t *testing.T) {
	v, ok := ParseToken("inf")
	require.True(t, ok)
	assert.True(t, math.IsInf(v, 1))

	v, ok = ParseToken("-Infinity")
	require.True(t, ok)
	assert.True(t, math.IsInf(v, -1))

	for _, token := range []string{"NaN", "-nan", "+NAN"} {
		v, ok = ParseToken(token)
		require.True(t, ok, token)
		assert.True(t, math.IsNaN(v), token)
	}
}

func TestParse_SignedNaNCounts(t *testing.T) {
	seq := Parse("-nan 1")
	assert.Equal(t, 2, seq.Len())
	assert.True(t, math.IsNaN(seq.Sum()))
}

func TestSum_AccumulatesLeftToRight(t *testing.T) {
	seq := Parse("0.1 0.2 0.3")
	assert.Equal(t, 0.6000000000000001, seq.Sum())
}

func TestParseToken_Overflow(t *testing.T) {
	v, ok := ParseToken("1e400")
	require.True(t, ok)
	assert.True(t, math.IsInf(v, 1))

	v, ok = ParseToken("-1e400")
	require.True(t, ok)
	assert.True(t, math.IsInf(v, -1))
}

func TestParseToken_Invalid(t *testing.T) {
	for _, token := range []string{"abc", "1.2.3", "1e", "--1", ".", "1,5", "_1", "1_", "1_.5", "0x1p-2", "--nan", "nan1"} {
		_, ok := ParseToken(token)
		assert.False(t, ok, "token %q should not parse", token)
	}
}
