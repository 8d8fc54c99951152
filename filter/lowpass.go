package filter

import (
	"math"
)

// Passes signal content below the cutoff frequency and smooths out content
// above it. At cutoffFreq=0 the filter holds its state forever; as the
// cutoff grows large the output tracks the input exactly.
type lowPassFilter struct {
	SinglePoleBase
}

// Parameters used to request a low-pass filter. These map onto the fields of lowPassFilter.
type LowPassParams struct {
	CutoffFreq float64 `yaml:"CutoffFreq"` // cutoff frequency in Hz, must be >= 0
	InitValue  float64 `yaml:"InitValue"`  // seeds the recursive filter state, default 0
}

// Initialise the internal fields of lowPassFilter when it is unmarshalled from yaml.
func (f *lowPassFilter) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params LowPassParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	lpf, err := NewLowPassFilter(params)
	if err != nil {
		return err
	}

	*f = *lpf
	return nil
}

// Returns a lowPassFilter pointer with the requested parameters, checking for invalid values.
func NewLowPassFilter(params LowPassParams) (*lowPassFilter, error) {
	lpf := &lowPassFilter{}

	// Invalid values checked by setters
	if err := lpf.SetCutoffFreq(params.CutoffFreq); err != nil {
		return nil, err
	}

	lpf.typeName = "lowpass"
	lpf.prevOutput = params.InitValue

	return lpf, nil
}

// Applies one-pole low-pass smoothing to value over timestep dt and
// returns the new output.
func (f *lowPassFilter) Filter(value float64, dt float64) float64 {
	alpha := f.alpha(dt)
	output := alpha*value + (1-alpha)*f.prevOutput
	f.prevOutput = output
	return output
}

// Returns the smoothing coefficient for timestep dt. Always in [0, 1):
// a/(a+1) with a = 2*pi*dt*cutoffFreq >= 0.
func (f *lowPassFilter) alpha(dt float64) float64 {
	a := 2 * math.Pi * sanitizeDt(dt) * f.cutoffFreq
	return a / (a + 1)
}
