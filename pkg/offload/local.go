package offload

import "math"

// LocalTime returns the local execution wall time in seconds.
func LocalTime(cycles, freqHz float64) float64 {
	return cycles / freqHz
}

// LocalEnergy returns the CMOS dynamic energy of running cycles at freqHz:
// kappa * freqHz^2 * cycles, in joules.
func LocalEnergy(cycles, freqHz, kappa float64) float64 {
	return kappa * (freqHz * freqHz) * cycles
}

// OptimalFrequency is the closed-form minimizer of the weighted time+energy
// cost under the LocalEnergy model:
//
//	cbrt(alpha * eLocalJ / (2 * beta * kappa * tRefS))
//
// A zero denominator yields ±Inf (or NaN when alpha*eLocalJ is also zero); a
// negative ratio yields a negative root.
func OptimalFrequency(alpha, beta, eLocalJ, kappa, tRefS float64) float64 {
	denom := 2 * beta * kappa * tRefS
	return math.Cbrt(alpha * eLocalJ / denom)
}
