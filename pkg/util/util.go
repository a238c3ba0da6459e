package util

import "strconv"

// Clamp bounds x to [lo, hi]. NaN is returned unchanged.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// FmtFloat renders v in the shortest form that round-trips, using
// exponent notation only for very large or small magnitudes.
func FmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
