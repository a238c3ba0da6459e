package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadSize indicates a data size string that ParseBits cannot read.
var ErrBadSize = errors.New("types: malformed data size")

// Bits is a payload size in bits. Link rates are quoted in bit/s, so sizes
// use the same unit and 1000-based prefixes.
type Bits float64

// FromBytes converts a byte count to Bits.
func FromBytes(n float64) Bits { return Bits(n * 8) }

// Bytes returns the size in bytes.
func (b Bits) Bytes() float64 { return float64(b) / 8 }

// Float64 returns the raw bit count.
func (b Bits) Float64() float64 { return float64(b) }

// Humanized returns a human-readable string with automatic unit (b, Kb, Mb, Gb, Tb).
func (b Bits) Humanized() string {
	v := float64(b)
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2f Tb", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2f Gb", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2f Mb", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f Kb", v/1e3)
	default:
		return fmt.Sprintf("%g b", v)
	}
}

func (b Bits) String() string { return b.Humanized() }

var _prefixes = map[byte]float64{
	'k': 1e3,
	'm': 1e6,
	'g': 1e9,
	't': 1e12,
}

// ParseBits reads sizes such as "4096", "512b", "12Mb" or "1.5MB". A trailing
// lowercase b means bits, an uppercase B means bytes, and a bare number is
// bits. Prefixes k, M, G, T are 1000-based and case-insensitive.
func ParseBits(s string) (Bits, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadSize)
	}

	scale := 1.0
	switch in[len(in)-1] {
	case 'B':
		scale = 8
		in = in[:len(in)-1]
	case 'b':
		in = in[:len(in)-1]
	}
	if n := len(in); n > 0 {
		if m, ok := _prefixes[lower(in[n-1])]; ok {
			scale *= m
			in = in[:n-1]
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative %q", ErrBadSize, s)
	}
	return Bits(v * scale), nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// UnmarshalText lets Bits be set from YAML/flag text such as "12Mb".
func (b *Bits) UnmarshalText(text []byte) error {
	v, err := ParseBits(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
