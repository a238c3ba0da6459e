package offload

// RemoteComputeTimeS returns the compute time on the destination processor.
func RemoteComputeTimeS(cycles, destFreqHz float64) float64 {
	return cycles / destFreqHz
}

// TotalOffloadTimeS is transmission time plus remote compute time. Queuing
// and propagation delay are not modeled.
func TotalOffloadTimeS(dataBits, rateBps, cycles, destFreqHz float64) float64 {
	return TxTimeS(dataBits, rateBps) + RemoteComputeTimeS(cycles, destFreqHz)
}

// TotalOffloadEnergyJ is the device-side energy of offloading, which is the
// transmission energy only.
func TotalOffloadEnergyJ(pWatt, dataBits, rateBps float64) float64 {
	return TxEnergyJ(pWatt, TxTimeS(dataBits, rateBps))
}
