package offload

import (
	"iter"
	"math"
)

// HeavyIterations is the fixed number of terms HeavyCalc sums.
const HeavyIterations = 1_000_000

// Range yields the integers [lo, hi). Each call to the returned sequence
// starts over from lo.
func Range(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := lo; i < hi; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// HeavyCalc is a synthetic CPU-bound workload: the sum of 0.5*sin(2(x+i)) for
// i in [0, HeavyIterations). It always runs every term.
func HeavyCalc(x float64) float64 {
	var sum float64
	for i := range Range(0, HeavyIterations) {
		sum += 0.5 * math.Sin(2*(x+float64(i)))
	}
	return sum
}
