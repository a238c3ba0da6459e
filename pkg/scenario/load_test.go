package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ja7ad/offload/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Single(t *testing.T) {
	out, err := Parse([]byte(`
name: phone
task:
  cycles: 2e9
  data_bits: 4MB
local:
  freq_hz: 1.5e9
weights:
  alpha: 0.8
  beta: 0.2
`))
	require.NoError(t, err)
	require.Len(t, out, 1)

	s := out[0]
	def := Defaults()
	assert.Equal(t, "phone", s.Name)
	assert.Equal(t, 2e9, s.Task.Cycles)
	assert.Equal(t, types.Bits(32e6), s.Task.DataBits)
	assert.Equal(t, 1.5e9, s.Local.FreqHz)
	assert.Equal(t, def.Local.Kappa, s.Local.Kappa, "unset fields keep defaults")
	assert.Equal(t, def.Link, s.Link)
	assert.Equal(t, Weights{Alpha: 0.8, Beta: 0.2}, s.Weights)
}

func TestParse_List(t *testing.T) {
	out, err := Parse([]byte(`
defaults:
  link:
    bandwidth_hz: 5e6
scenarios:
  - name: near
    link:
      channel_gain: 1e-5
  - link:
      spectral_eff: 3
  - task:
      data_bits: 1000
`))
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "near", out[0].Name)
	assert.Equal(t, 1e-5, out[0].Link.ChannelGain)
	assert.Equal(t, "scenario-2", out[1].Name)
	assert.Equal(t, 3.0, out[1].Link.SpectralEff)
	assert.Equal(t, types.Bits(1000), out[2].Task.DataBits)

	for _, s := range out {
		assert.Equal(t, 5e6, s.Link.BandwidthHz, "%s inherits the shared defaults", s.Name)
		require.NoError(t, Validate(s))
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrNoScenario)

	_, err = Parse([]byte("scenarios: []\n"))
	assert.ErrorIs(t, err, ErrNoScenario)

	_, err = Parse([]byte("link:\n  bandwidth_hz: 1e3\nscenarios:\n  - name: a\n"))
	assert.ErrorIs(t, err, ErrMixedDocument, "top-level fields must not be dropped silently")

	_, err = Parse([]byte("local:\n  frequency: 1e9\n"))
	assert.ErrorContains(t, err, "frequency", "unknown keys are rejected")

	_, err = Parse([]byte("task:\n  data_bits: lots\n"))
	assert.ErrorIs(t, err, types.ErrBadSize)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("remote:\n  dest_freq_hz: 20e9\n"), 0o644))

	out, err := Load(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 20e9, out[0].Remote.DestFreqHz)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
