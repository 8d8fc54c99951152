package filter

import (
	"math"
)

// Passes signal content above the cutoff frequency and attenuates content
// below it, such as a slowly drifting sensor bias. At cutoffFreq=0 every
// input change passes through; as the cutoff grows large the output
// decays to zero.
type highPassFilter struct {
	SinglePoleBase

	// internal state
	prevValue float64 // the last raw input, for differencing
}

// Parameters used to request a high-pass filter. These map onto the fields of highPassFilter.
type HighPassParams struct {
	CutoffFreq float64 `yaml:"CutoffFreq"` // cutoff frequency in Hz, must be >= 0
	InitValue  float64 `yaml:"InitValue"`  // seeds the recursive filter state and the last raw input, default 0
}

// Initialise the internal fields of highPassFilter when it is unmarshalled from yaml.
func (f *highPassFilter) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params HighPassParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	hpf, err := NewHighPassFilter(params)
	if err != nil {
		return err
	}

	*f = *hpf
	return nil
}

// Returns a highPassFilter pointer with the requested parameters, checking for invalid values.
func NewHighPassFilter(params HighPassParams) (*highPassFilter, error) {
	hpf := &highPassFilter{}

	// Invalid values checked by setters
	if err := hpf.SetCutoffFreq(params.CutoffFreq); err != nil {
		return nil, err
	}

	hpf.typeName = "highpass"
	hpf.prevOutput = params.InitValue
	hpf.prevValue = params.InitValue

	return hpf, nil
}

// Applies one-pole high-pass filtering to value over timestep dt and
// returns the new output.
func (f *highPassFilter) Filter(value float64, dt float64) float64 {
	dValue := value - f.prevValue
	f.prevValue = value

	alpha := f.alpha(dt)
	output := alpha * (f.prevOutput + dValue)
	f.prevOutput = output
	return output
}

// Returns the decay coefficient for timestep dt. Always in (0, 1]:
// the denominator 2*pi*dt*cutoffFreq + 1 is >= 1.
func (f *highPassFilter) alpha(dt float64) float64 {
	return 1 / (2*math.Pi*sanitizeDt(dt)*f.cutoffFreq + 1)
}
