package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		in, lo, hi, want float64
	}{
		{0.5, -1, 1, 0.5},
		{-3, -1, 1, -1},
		{3, -1, 1, 1},
		{-1, -1, 1, -1}, // inclusive bounds
		{1, -1, 1, 1},
		{math.Inf(1), -1, 1, 1},
		{math.Inf(-1), -1, 1, -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Clamp(tc.in, tc.lo, tc.hi), "Clamp(%v, %v, %v)", tc.in, tc.lo, tc.hi)
	}
}

func TestClamp_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Clamp(math.NaN(), -1, 1)))
}

func TestFmtFloat(t *testing.T) {
	assert.Equal(t, "0.5", FmtFloat(0.5))
	assert.Equal(t, "1e+09", FmtFloat(1e9))
	assert.Equal(t, "12345", FmtFloat(12345))
	assert.Equal(t, "NaN", FmtFloat(math.NaN()))
	assert.Equal(t, "+Inf", FmtFloat(math.Inf(1)))
}
