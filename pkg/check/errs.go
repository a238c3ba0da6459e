package check

import "errors"

// ErrInvalid matches every *InvalidError via errors.Is.
var ErrInvalid = errors.New("invalid")

// InvalidError is the single failure kind of a checked invocation. It covers
// both an argument/validator length mismatch and any validator-reported
// domain violation.
type InvalidError struct {
	Reason string
}

// Invalid returns an *InvalidError carrying reason.
func Invalid(reason string) error {
	return &InvalidError{Reason: reason}
}

func (e *InvalidError) Error() string { return "invalid: " + e.Reason }

func (e *InvalidError) Is(target error) bool { return target == ErrInvalid }

// Reason extracts the reason of an *InvalidError anywhere in err's chain.
func Reason(err error) (string, bool) {
	var ie *InvalidError
	if errors.As(err, &ie) {
		return ie.Reason, true
	}
	return "", false
}
