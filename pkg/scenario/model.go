package scenario

import "github.com/ja7ad/offload/pkg/types"

// Task is the work to place.
type Task struct {
	Cycles   float64    `yaml:"cycles"`    // CPU cycles
	DataBits types.Bits `yaml:"data_bits"` // payload to ship when offloading
}

// Local describes the device processor.
type Local struct {
	FreqHz float64 `yaml:"freq_hz"`
	Kappa  float64 `yaml:"kappa"` // J per cycle per Hz^2
}

// Link describes the wireless uplink.
// Units:
//   - BandwidthHz: Hz, split evenly across Subchannels
//   - ChannelGain: dimensionless, >= 0
//   - NoiseWatt/TxPowerWatt: Watts
//   - SpectralEff: bit/s/Hz; when > 0 it replaces the Shannon rate
//   - TargetRateBps: bit/s; when > 0 the transmit power is derived from it
type Link struct {
	BandwidthHz   float64 `yaml:"bandwidth_hz"`
	Subchannels   float64 `yaml:"subchannels"`
	ChannelGain   float64 `yaml:"channel_gain"`
	NoiseWatt     float64 `yaml:"noise_watt"`
	TxPowerWatt   float64 `yaml:"tx_power_watt"`
	SpectralEff   float64 `yaml:"spectral_eff"`
	TargetRateBps float64 `yaml:"target_rate_bps"`
}

// Remote describes the destination processor.
type Remote struct {
	DestFreqHz float64 `yaml:"dest_freq_hz"`
}

// Weights sets the relative importance of time (Alpha) and energy (Beta).
// They need not sum to 1.
type Weights struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

// Scenario is one decision instance.
type Scenario struct {
	Name    string  `yaml:"name"`
	Task    Task    `yaml:"task"`
	Local   Local   `yaml:"local"`
	Link    Link    `yaml:"link"`
	Remote  Remote  `yaml:"remote"`
	Weights Weights `yaml:"weights"`
}

// Defaults returns a Scenario pre-filled with a typical handset offloading a
// 1 GCycle, 1 MB task to a 10 GHz edge server over a 20 MHz channel.
func Defaults() Scenario {
	return Scenario{
		Name: "default",
		Task: Task{
			Cycles:   1e9,
			DataBits: types.FromBytes(1e6),
		},
		Local: Local{
			FreqHz: 1e9,   // 1 GHz
			Kappa:  1e-27, // typical mobile SoC
		},
		Link: Link{
			BandwidthHz: 20e6,
			Subchannels: 1,
			ChannelGain: 1e-6,  // -60 dB path loss
			NoiseWatt:   1e-10, // -70 dBm
			TxPowerWatt: 0.2,   // 23 dBm
		},
		Remote: Remote{
			DestFreqHz: 10e9,
		},
		Weights: Weights{
			Alpha: 0.5,
			Beta:  0.5,
		},
	}
}

// Decision is the evaluated cost breakdown of one Scenario.
type Decision struct {
	Name     string
	DataBits types.Bits

	LocalTimeS    float64
	LocalEnergyJ  float64
	OptimalFreqHz float64

	TxPowerW       float64
	SNR            float64 // linear
	RateBps        float64
	TxTimeS        float64
	RemoteTimeS    float64
	OffloadTimeS   float64
	OffloadEnergyJ float64

	Score   float64 // efficiency score in [-1, 1]
	Offload bool
}
