// Package offload holds the closed-form cost model behind a local-versus-
// offload execution decision for a single task.
//
// A task is described by its CPU cycles and its payload size in bits. The
// model prices two alternatives:
//
//   - Local execution on a processor at freq_hz with per-cycle energy
//     coefficient kappa:
//
//     t_local = cycles / freq_hz
//     e_local = kappa * freq_hz^2 * cycles
//
//   - Offloading over a wireless link and running on a remote processor at
//     dest_freq_hz:
//
//     snr   = p * gain / noise
//     rate  = (bandwidth / subchannels) * log2(1 + snr)
//     t_off = data_bits / rate + cycles / dest_freq_hz
//     e_off = p * data_bits / rate
//
//     Remote compute energy is borne by the server and excluded from e_off.
//
// EfficiencyScore folds both alternatives into a weighted, normalized value in
// [-1, 1]; positive means offloading pays off under the given weights.
//
// Every function is pure and total over float64. Invalid inputs such as zero
// denominators or negative log arguments yield NaN or ±Inf; nothing here
// returns an error. Guard inputs with package check before calling when a
// strict domain is required.
//
// Units follow the name suffix: _s seconds, _j joules, _hz hertz, _w watts,
// _bps bits per second.
package offload
