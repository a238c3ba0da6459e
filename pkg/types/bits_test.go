package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBits_Humanized_Boundaries(t *testing.T) {
	cases := []struct {
		in   Bits
		want string
	}{
		{Bits(0), "0 b"},
		{Bits(1), "1 b"},
		{Bits(999), "999 b"},           // just below 1 Kb
		{Bits(1000), "1.00 Kb"},        // exactly 1 Kb
		{Bits(999_999), "1000.00 Kb"},  // just below 1 Mb
		{Bits(1e6), "1.00 Mb"},         // exactly 1 Mb
		{Bits(8e6), "8.00 Mb"},         // 1 MB payload
		{Bits(1e9), "1.00 Gb"},         // exactly 1 Gb
		{Bits(1e12 - 1), "1000.00 Gb"}, // just below 1 Tb
		{Bits(1e12), "1.00 Tb"},        // exactly 1 Tb
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d_%g", i, float64(tc.in)), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Humanized())
		})
	}
}

func TestBits_ByteConversions(t *testing.T) {
	assert.Equal(t, Bits(8192), FromBytes(1024))
	assert.InDelta(t, 1024.0, Bits(8192).Bytes(), 1e-12)
	assert.InDelta(t, 1.5, FromBytes(1.5).Bytes(), 1e-12)
	assert.Equal(t, 12.0, Bits(12).Float64())
}

func TestParseBits(t *testing.T) {
	cases := []struct {
		in   string
		want Bits
	}{
		{"4096", 4096},
		{"512b", 512},
		{"12Mb", 12e6},
		{"12mb", 12e6},
		{"1.5MB", 12e6},
		{"2kB", 16e3},
		{"3 Gb", 3e9},
		{"0.25Tb", 0.25e12},
		{" 8B ", 64},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseBits(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, float64(tc.want), float64(got), 1e-6)
		})
	}
}

func TestParseBits_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "Mb", "abc", "-5Mb", "1.2.3"} {
		_, err := ParseBits(in)
		assert.ErrorIs(t, err, ErrBadSize, "input %q", in)
	}
}

func TestBits_UnmarshalText(t *testing.T) {
	var b Bits
	require.NoError(t, b.UnmarshalText([]byte("1MB")))
	assert.Equal(t, Bits(8e6), b)
	assert.Error(t, b.UnmarshalText([]byte("lots")))
	assert.Equal(t, Bits(8e6), b, "failed parse leaves the value untouched")
}
