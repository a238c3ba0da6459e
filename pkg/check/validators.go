package check

import (
	"cmp"
	"fmt"
	"math"
)

// Number is the set of scalar types the stock validators accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Positive rejects values <= 0 (and NaN) with "must be positive".
func Positive[T Number]() Validator[T] {
	return ValidatorFunc[T](func(v T) (T, error) {
		if v > 0 {
			return v, nil
		}
		return v, Invalid("must be positive")
	})
}

// Nonzero rejects the zero value with "must be nonzero".
func Nonzero[T Number]() Validator[T] {
	return ValidatorFunc[T](func(v T) (T, error) {
		if v != 0 {
			return v, nil
		}
		return v, Invalid("must be nonzero")
	})
}

// NonNegative rejects values < 0 (and NaN) with "must be non-negative".
func NonNegative[T Number]() Validator[T] {
	return ValidatorFunc[T](func(v T) (T, error) {
		if v >= 0 {
			return v, nil
		}
		return v, Invalid("must be non-negative")
	})
}

// AtLeast rejects values below lower.
func AtLeast[T Number](lower T) Validator[T] {
	return ValidatorFunc[T](func(v T) (T, error) {
		if cmp.Compare(v, lower) >= 0 {
			return v, nil
		}
		return v, Invalid(fmt.Sprintf("must be >= %v", lower))
	})
}

// Finite rejects NaN and ±Inf.
func Finite() Validator[float64] {
	return ValidatorFunc[float64](func(v float64) (float64, error) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v, Invalid("must be finite")
		}
		return v, nil
	})
}

// Named prefixes any *InvalidError reported by v with name, so that
// "must be positive" becomes "local.freq_hz must be positive".
func Named[T any](name string, v Validator[T]) Validator[T] {
	return ValidatorFunc[T](func(x T) (T, error) {
		out, err := v.Validate(x)
		if err == nil {
			return out, nil
		}
		if reason, ok := Reason(err); ok {
			return out, Invalid(name + " " + reason)
		}
		return out, err
	})
}
