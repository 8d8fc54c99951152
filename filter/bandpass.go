package filter

// Passes signal content between the two cutoff frequencies. Implemented as
// a cascade: the input runs through a high-pass tuned to the low cutoff,
// then a low-pass tuned to the high cutoff. The cascade order is fixed.
type bandPassFilter struct {
	DualCutoffBase

	// sub-filters owned exclusively by the composite
	hpf highPassFilter // tuned to the low cutoff frequency
	lpf lowPassFilter  // tuned to the high cutoff frequency
}

// Parameters used to request a band-pass filter. These map onto the fields of bandPassFilter.
type BandPassParams struct {
	LowCutoffFreq  float64 `yaml:"LowCutoffFreq"`  // lower edge of the pass band in Hz, must be >= 0
	HighCutoffFreq float64 `yaml:"HighCutoffFreq"` // upper edge of the pass band in Hz, must be >= LowCutoffFreq
	InitValue      float64 `yaml:"InitValue"`      // forwarded to both sub-filters, default 0
}

// Initialise the internal fields of bandPassFilter when it is unmarshalled from yaml.
func (f *bandPassFilter) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params BandPassParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	bpf, err := NewBandPassFilter(params)
	if err != nil {
		return err
	}

	*f = *bpf
	return nil
}

// Returns a bandPassFilter pointer with the requested parameters, checking
// for invalid values. The cutoff pair is validated before either
// sub-filter is built.
func NewBandPassFilter(params BandPassParams) (*bandPassFilter, error) {
	bpf := &bandPassFilter{}

	if err := bpf.CheckCutoffFreqs(params.LowCutoffFreq, params.HighCutoffFreq); err != nil {
		return nil, err
	}

	hpf, err := NewHighPassFilter(HighPassParams{CutoffFreq: params.LowCutoffFreq, InitValue: params.InitValue})
	if err != nil {
		return nil, err
	}
	lpf, err := NewLowPassFilter(LowPassParams{CutoffFreq: params.HighCutoffFreq, InitValue: params.InitValue})
	if err != nil {
		return nil, err
	}

	bpf.typeName = "bandpass"
	bpf.hpf = *hpf
	bpf.lpf = *lpf

	return bpf, nil
}

// Runs value through the high-pass then the low-pass sub-filter and
// returns the result.
func (f *bandPassFilter) Filter(value float64, dt float64) float64 {
	value = f.hpf.Filter(value, dt)
	value = f.lpf.Filter(value, dt)
	return value
}

// Retunes both sub-filters in place if 0 <= lowCutoffFreq <= highCutoffFreq.
// Recursive sub-filter state is preserved, this is a live retune rather
// than a reconstruction.
func (f *bandPassFilter) SetCutoffFreqs(lowCutoffFreq float64, highCutoffFreq float64) error {
	if err := f.CheckCutoffFreqs(lowCutoffFreq, highCutoffFreq); err != nil {
		return err
	}

	if err := f.hpf.SetCutoffFreq(lowCutoffFreq); err != nil {
		return err
	}
	return f.lpf.SetCutoffFreq(highCutoffFreq)
}

// Getters

func (f *bandPassFilter) GetLowCutoffFreq() float64 {
	return f.hpf.GetCutoffFreq()
}

func (f *bandPassFilter) GetHighCutoffFreq() float64 {
	return f.lpf.GetCutoffFreq()
}
