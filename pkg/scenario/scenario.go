package scenario

import (
	"github.com/ja7ad/offload/pkg/check"
	"github.com/ja7ad/offload/pkg/offload"
)

// Merge overlays every non-zero field of override onto base. Zero means
// "unset"; negative values are carried over so that Validate rejects them.
// Weights are taken as a pair: if either is non-zero both replace the base,
// which allows a deliberate 0 weight such as {Alpha: 1, Beta: 0}.
func Merge(base, override Scenario) Scenario {
	m := base

	if override.Name != "" {
		m.Name = override.Name
	}

	setF(&m.Task.Cycles, override.Task.Cycles)
	setF((*float64)(&m.Task.DataBits), float64(override.Task.DataBits))

	setF(&m.Local.FreqHz, override.Local.FreqHz)
	setF(&m.Local.Kappa, override.Local.Kappa)

	setF(&m.Link.BandwidthHz, override.Link.BandwidthHz)
	setF(&m.Link.Subchannels, override.Link.Subchannels)
	setF(&m.Link.ChannelGain, override.Link.ChannelGain)
	setF(&m.Link.NoiseWatt, override.Link.NoiseWatt)
	setF(&m.Link.TxPowerWatt, override.Link.TxPowerWatt)
	setF(&m.Link.SpectralEff, override.Link.SpectralEff)
	setF(&m.Link.TargetRateBps, override.Link.TargetRateBps)

	setF(&m.Remote.DestFreqHz, override.Remote.DestFreqHz)

	if override.Weights.Alpha != 0 || override.Weights.Beta != 0 {
		m.Weights = override.Weights
	}

	return m
}

func setF(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

type field struct {
	name string
	ref  func(s *Scenario) *float64
	rule check.Validator[float64]
}

var (
	_positive    = check.All(check.Finite(), check.Positive[float64]())
	_nonNegative = check.All(check.Finite(), check.NonNegative[float64]())
)

// _fields lists every numeric parameter in validation order.
var _fields = []field{
	{"task.cycles", func(s *Scenario) *float64 { return &s.Task.Cycles }, _positive},
	{"task.data_bits", func(s *Scenario) *float64 { return (*float64)(&s.Task.DataBits) }, _positive},
	{"local.freq_hz", func(s *Scenario) *float64 { return &s.Local.FreqHz }, _positive},
	{"local.kappa", func(s *Scenario) *float64 { return &s.Local.Kappa }, _positive},
	{"link.bandwidth_hz", func(s *Scenario) *float64 { return &s.Link.BandwidthHz }, _positive},
	{"link.subchannels", func(s *Scenario) *float64 { return &s.Link.Subchannels }, check.All(check.Finite(), check.AtLeast(1.0))},
	{"link.channel_gain", func(s *Scenario) *float64 { return &s.Link.ChannelGain }, _nonNegative},
	{"link.noise_watt", func(s *Scenario) *float64 { return &s.Link.NoiseWatt }, _positive},
	{"link.tx_power_watt", func(s *Scenario) *float64 { return &s.Link.TxPowerWatt }, _positive},
	{"link.spectral_eff", func(s *Scenario) *float64 { return &s.Link.SpectralEff }, _nonNegative},
	{"link.target_rate_bps", func(s *Scenario) *float64 { return &s.Link.TargetRateBps }, _nonNegative},
	{"remote.dest_freq_hz", func(s *Scenario) *float64 { return &s.Remote.DestFreqHz }, _positive},
	{"weights.alpha", func(s *Scenario) *float64 { return &s.Weights.Alpha }, check.Finite()},
	{"weights.beta", func(s *Scenario) *float64 { return &s.Weights.Beta }, check.Finite()},
}

// with runs f over the validated parameters of s.
func with[R any](s Scenario, f func(Scenario) R) (R, error) {
	args := make([]float64, len(_fields))
	validators := make([]check.Validator[float64], len(_fields))
	for i, fd := range _fields {
		args[i] = *fd.ref(&s)
		validators[i] = check.Named(fd.name, fd.rule)
	}

	return check.WithChecks(args, validators, func(vals []float64) R {
		v := s
		for i, fd := range _fields {
			*fd.ref(&v) = vals[i]
		}
		return f(v)
	})
}

// Validate reports the first parameter of s that violates its domain as a
// *check.InvalidError, e.g. "local.freq_hz must be positive".
func Validate(s Scenario) error {
	_, err := with(s, func(Scenario) struct{} { return struct{}{} })
	return err
}

// Evaluate validates s and prices local execution against offloading.
//
// The transmit power is TxPowerWatt unless TargetRateBps is set, in which case
// the minimum power reaching that rate is used. The rate is the linear
// SpectralEff model when SpectralEff is set, otherwise the Shannon capacity of
// one sub-band at that power.
func Evaluate(s Scenario) (Decision, error) {
	return with(s, evaluate)
}

func evaluate(s Scenario) Decision {
	var (
		task = s.Task
		link = s.Link
		bits = task.DataBits.Float64()
		d    = Decision{Name: s.Name, DataBits: task.DataBits}
	)

	d.LocalTimeS = offload.LocalTime(task.Cycles, s.Local.FreqHz)
	d.LocalEnergyJ = offload.LocalEnergy(task.Cycles, s.Local.FreqHz, s.Local.Kappa)
	d.OptimalFreqHz = offload.OptimalFrequency(s.Weights.Alpha, s.Weights.Beta, d.LocalEnergyJ, s.Local.Kappa, d.LocalTimeS)

	d.TxPowerW = link.TxPowerWatt
	if link.TargetRateBps > 0 {
		d.TxPowerW = offload.PowerForTargetRateW(link.TargetRateBps, link.BandwidthHz, link.Subchannels, link.ChannelGain, link.NoiseWatt)
	}
	d.SNR = offload.SNRLinear(d.TxPowerW, link.ChannelGain, link.NoiseWatt)

	if link.SpectralEff > 0 {
		d.RateBps = offload.LinkRateSimplifiedBps(link.BandwidthHz, link.SpectralEff)
	} else {
		d.RateBps = offload.LinkRateBps(link.BandwidthHz, d.SNR, link.Subchannels)
	}

	d.TxTimeS = offload.TxTimeS(bits, d.RateBps)
	d.RemoteTimeS = offload.RemoteComputeTimeS(task.Cycles, s.Remote.DestFreqHz)
	d.OffloadTimeS = offload.TotalOffloadTimeS(bits, d.RateBps, task.Cycles, s.Remote.DestFreqHz)
	d.OffloadEnergyJ = offload.TotalOffloadEnergyJ(d.TxPowerW, bits, d.RateBps)

	d.Score = offload.EfficiencyScore(s.Weights.Alpha, s.Weights.Beta, d.LocalTimeS, d.OffloadTimeS, d.LocalEnergyJ, d.OffloadEnergyJ)
	d.Offload = d.Score > 0

	return d
}
