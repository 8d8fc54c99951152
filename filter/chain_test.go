package filter_test

import (
	"testing"

	"github.com/robotlib/signals/filter"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestChainUnmarshalYAML(t *testing.T) {
	yamlStr := `
- type: highpass
  CutoffFreq: 0.5
- type: lowpass
  CutoffFreq: 20.0
  InitValue: 1.0
- type: bandpass
  LowCutoffFreq: 1.0
  HighCutoffFreq: 10.0
- type: bandstop
  LowCutoffFreq: 2.0
  HighCutoffFreq: 8.0
- type: clip
  MinValue: -1.0
  MaxValue: 1.0
`

	var chain filter.Chain
	err := yaml.Unmarshal([]byte(yamlStr), &chain)
	assert.NoError(t, err)
	assert.Len(t, chain, 5)

	// Order of the cascade follows the yaml list order
	assert.Equal(t, "highpass", chain[0].TypeAsString())
	assert.Equal(t, "lowpass", chain[1].TypeAsString())
	assert.Equal(t, "bandpass", chain[2].TypeAsString())
	assert.Equal(t, "bandstop", chain[3].TypeAsString())
	assert.Equal(t, "clip", chain[4].TypeAsString())
}

func TestChainUnmarshalYAMLUnknownType(t *testing.T) {
	yamlStr := `
- type: notchy
  CutoffFreq: 1.0
`

	var chain filter.Chain
	err := yaml.Unmarshal([]byte(yamlStr), &chain)
	assert.ErrorContains(t, err, "unknown filter type")
}

// Invalid parameters are rejected during unmarshalling because construction
// is routed through the validating constructors.
func TestChainUnmarshalYAMLInvalidParams(t *testing.T) {
	yamlStr := `
- type: lowpass
  CutoffFreq: -5.0
`

	var chain filter.Chain
	err := yaml.Unmarshal([]byte(yamlStr), &chain)
	assert.Error(t, err)
}

func TestChainFilterAll(t *testing.T) {
	var chain filter.Chain

	hpf, err := filter.NewHighPassFilter(filter.HighPassParams{CutoffFreq: 0.0})
	assert.NoError(t, err)
	lpf, err := filter.NewLowPassFilter(filter.LowPassParams{CutoffFreq: 0.0, InitValue: 5.0})
	assert.NoError(t, err)

	chain.AddFilter(hpf)
	chain.AddFilter(lpf)

	// The high-pass passes everything at zero cutoff and the zero-cutoff
	// low-pass holds its init value, so the chain output stays at 5.
	output := chain.FilterAll(100.0, 0.01)
	assert.Equal(t, 5.0, output)
}

func TestGetDecodeHook(t *testing.T) {
	hook, err := filter.GetDecodeHook()
	assert.NoError(t, err)
	assert.NotNil(t, hook)
}
