package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positive(x int) (int, error) {
	if x > 0 {
		return x, nil
	}
	return x, Invalid("must be positive")
}

func nonzero(x int) (int, error) {
	if x != 0 {
		return x, nil
	}
	return x, Invalid("must be nonzero")
}

func sum(vals []int) int {
	var s int
	for _, v := range vals {
		s += v
	}
	return s
}

func TestWithChecks_ValidInputs(t *testing.T) {
	validators := []Validator[int]{ValidatorFunc[int](positive), ValidatorFunc[int](nonzero)}
	got, err := WithChecks([]int{5, 10}, validators, sum)
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestWithChecks_InvalidInput(t *testing.T) {
	validators := []Validator[int]{ValidatorFunc[int](positive), ValidatorFunc[int](nonzero)}
	_, err := WithChecks([]int{5, 0}, validators, sum)
	require.Error(t, err)

	reason, ok := Reason(err)
	require.True(t, ok, "expected *InvalidError, got %T", err)
	assert.Equal(t, "must be nonzero", reason)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestWithChecks_LengthMismatch(t *testing.T) {
	calls := 0
	validators := []Validator[int]{ValidatorFunc[int](positive), ValidatorFunc[int](nonzero)}
	_, err := WithChecks([]int{1}, validators, func(vals []int) int {
		calls++
		return len(vals)
	})
	require.Error(t, err)

	reason, ok := Reason(err)
	require.True(t, ok)
	assert.Equal(t, "args and validators length mismatch", reason)
	assert.Equal(t, 0, calls, "computation must not run on mismatch")
}

func TestWithChecks_ShortCircuits(t *testing.T) {
	var seen []int
	record := func(x int) (int, error) {
		seen = append(seen, x)
		if x < 0 {
			return x, Invalid("negative")
		}
		return x, nil
	}
	v := ValidatorFunc[int](record)

	calls := 0
	_, err := WithChecks([]int{1, -2, 3, 4}, []Validator[int]{v, v, v, v}, func([]int) int {
		calls++
		return 0
	})
	require.Error(t, err)
	assert.Equal(t, []int{1, -2}, seen, "validators after the first failure must not run")
	assert.Equal(t, 0, calls)
}

func TestWithChecks_PropagatesErrorUnchanged(t *testing.T) {
	custom := errors.New("custom failure")
	v := ValidatorFunc[int](func(x int) (int, error) { return x, custom })

	_, err := WithChecks([]int{1}, []Validator[int]{v}, sum)
	assert.Same(t, custom, err)
}

func TestWithChecks_PassesTransformedValuesInOrder(t *testing.T) {
	double := ValidatorFunc[int](func(x int) (int, error) { return 2 * x, nil })
	neg := ValidatorFunc[int](func(x int) (int, error) { return -x, nil })

	calls := 0
	got, err := WithChecks([]int{1, 2, 3}, []Validator[int]{double, neg, double}, func(vals []int) []int {
		calls++
		return vals
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, -2, 6}, got)
	assert.Equal(t, 1, calls)
}

func TestWithChecks_Empty(t *testing.T) {
	got, err := WithChecks(nil, nil, func(vals []string) int { return len(vals) })
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestInvalidError_Message(t *testing.T) {
	err := Invalid("must be positive")
	assert.EqualError(t, err, "invalid: must be positive")
	assert.True(t, errors.Is(err, ErrInvalid))

	_, ok := Reason(errors.New("plain"))
	assert.False(t, ok)
}
