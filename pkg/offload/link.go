package offload

import "math"

// SNRLinear returns the linear (non-dB) signal-to-noise ratio.
func SNRLinear(pWatt, channelGain, noiseWatt float64) float64 {
	return pWatt * channelGain / noiseWatt
}

// LinkRateBps is the Shannon capacity of one allocated sub-band:
// (bandwidthHz / subchannels) * log2(1 + snr).
func LinkRateBps(bandwidthHz, snrLinear, subchannels float64) float64 {
	return (bandwidthHz / subchannels) * math.Log2(1+snrLinear)
}

// LinkRateSimplifiedBps is the linear rate model for a known spectral
// efficiency in bit/s/Hz.
func LinkRateSimplifiedBps(bandwidthHz, spectralEff float64) float64 {
	return bandwidthHz * spectralEff
}

// TxTimeS returns the transmission duration of dataBits at rateBps.
func TxTimeS(dataBits, rateBps float64) float64 {
	return dataBits / rateBps
}

// TxEnergyJ returns the energy spent transmitting at pWatt for tTxS seconds.
func TxEnergyJ(pWatt, tTxS float64) float64 {
	return pWatt * tTxS
}

// PowerForTargetRateW is the minimum transmit power that achieves
// targetRateBps on one sub-band. The required SNR is floored at zero (a NaN
// requirement floors to zero too), so the result is never negative for
// channelGain > 0 and noiseWatt > 0.
func PowerForTargetRateW(targetRateBps, bandwidthHz, subchannels, channelGain, noiseWatt float64) float64 {
	exp := targetRateBps / (bandwidthHz / subchannels)
	snrReq := math.Pow(2, exp) - 1
	if !(snrReq > 0) {
		snrReq = 0
	}
	return (noiseWatt / channelGain) * snrReq
}
