package offload

import "github.com/ja7ad/offload/pkg/util"

// EfficiencyScore weighs the relative time and energy savings of offloading
// against the local reference and clamps the sum to [-1, 1]:
//
//	alpha*(tRefS-tOffS)/tRefS + beta*(eLocalJ-eOffJ)/eLocalJ
//
// alpha and beta need not sum to 1. NaN inputs produce NaN.
func EfficiencyScore(alpha, beta, tRefS, tOffS, eLocalJ, eOffJ float64) float64 {
	timeTerm := (tRefS - tOffS) / tRefS
	energyTerm := (eLocalJ - eOffJ) / eLocalJ
	return util.Clamp(alpha*timeTerm+beta*energyTerm, -1, 1)
}
