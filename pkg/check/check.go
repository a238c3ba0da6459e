// Package check runs a computation only after every argument has passed its
// own validator. Validation stops at the first failure and the computation is
// never invoked on a partial result.
package check

// ReasonLengthMismatch is reported when args and validators differ in length.
const ReasonLengthMismatch = "args and validators length mismatch"

// Validator validates (and may transform) a single value.
type Validator[T any] interface {
	Validate(v T) (T, error)
}

// ValidatorFunc adapts a plain function to a Validator.
type ValidatorFunc[T any] func(v T) (T, error)

// Validate calls f(v).
func (f ValidatorFunc[T]) Validate(v T) (T, error) { return f(v) }

// WithChecks validates args[i] with validators[i], in order, and then invokes
// f exactly once with the validated values. The first validator error is
// returned unchanged and f is not called. A length mismatch fails before any
// validator runs.
func WithChecks[T, R any](args []T, validators []Validator[T], f func([]T) R) (R, error) {
	var zero R
	if len(args) != len(validators) {
		return zero, Invalid(ReasonLengthMismatch)
	}

	validated := make([]T, 0, len(args))
	for i, arg := range args {
		v, err := validators[i].Validate(arg)
		if err != nil {
			return zero, err
		}
		validated = append(validated, v)
	}

	return f(validated), nil
}

// All chains validators on a single value, feeding each one's output into the
// next and stopping at the first error.
func All[T any](validators ...Validator[T]) Validator[T] {
	return ValidatorFunc[T](func(v T) (T, error) {
		for _, val := range validators {
			var err error
			if v, err = val.Validate(v); err != nil {
				return v, err
			}
		}
		return v, nil
	})
}
