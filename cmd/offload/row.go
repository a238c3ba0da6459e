package main

import (
	"math"
	"strconv"

	"github.com/ja7ad/offload/pkg/scenario"
)

// num encodes non-finite values as null, which encoding/json refuses to do
// for a plain float64.
type num float64

func (n num) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type row struct {
	Name           string `json:"name"`
	DataBits       num    `json:"data_bits"`
	LocalTimeS     num    `json:"local_time_s"`
	LocalEnergyJ   num    `json:"local_energy_j"`
	OptimalFreqHz  num    `json:"optimal_freq_hz"`
	TxPowerW       num    `json:"tx_power_w"`
	SNR            num    `json:"snr_linear"`
	RateBps        num    `json:"rate_bps"`
	TxTimeS        num    `json:"tx_time_s"`
	RemoteTimeS    num    `json:"remote_compute_time_s"`
	OffloadTimeS   num    `json:"total_offload_time_s"`
	OffloadEnergyJ num    `json:"total_offload_energy_j"`
	Score          num    `json:"efficiency_score"`
	Offload        bool   `json:"offload"`
}

func toRow(d scenario.Decision) row {
	return row{
		Name:           d.Name,
		DataBits:       num(d.DataBits),
		LocalTimeS:     num(d.LocalTimeS),
		LocalEnergyJ:   num(d.LocalEnergyJ),
		OptimalFreqHz:  num(d.OptimalFreqHz),
		TxPowerW:       num(d.TxPowerW),
		SNR:            num(d.SNR),
		RateBps:        num(d.RateBps),
		TxTimeS:        num(d.TxTimeS),
		RemoteTimeS:    num(d.RemoteTimeS),
		OffloadTimeS:   num(d.OffloadTimeS),
		OffloadEnergyJ: num(d.OffloadEnergyJ),
		Score:          num(d.Score),
		Offload:        d.Offload,
	}
}
