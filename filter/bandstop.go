package filter

// Attenuates signal content between the two cutoff frequencies. Implemented
// in parallel: the same raw input runs independently through a low-pass
// tuned to the low cutoff and a high-pass tuned to the high cutoff, and
// the two outputs are summed.
type bandStopFilter struct {
	DualCutoffBase

	// sub-filters owned exclusively by the composite
	lpf lowPassFilter  // tuned to the low cutoff frequency
	hpf highPassFilter // tuned to the high cutoff frequency
}

// Parameters used to request a band-stop filter. These map onto the fields of bandStopFilter.
type BandStopParams struct {
	LowCutoffFreq  float64 `yaml:"LowCutoffFreq"`  // lower edge of the stop band in Hz, must be >= 0
	HighCutoffFreq float64 `yaml:"HighCutoffFreq"` // upper edge of the stop band in Hz, must be >= LowCutoffFreq
	InitValue      float64 `yaml:"InitValue"`      // forwarded to both sub-filters, default 0
}

// Initialise the internal fields of bandStopFilter when it is unmarshalled from yaml.
func (f *bandStopFilter) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params BandStopParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	bsf, err := NewBandStopFilter(params)
	if err != nil {
		return err
	}

	*f = *bsf
	return nil
}

// Returns a bandStopFilter pointer with the requested parameters, checking
// for invalid values. The cutoff pair is validated before either
// sub-filter is built.
func NewBandStopFilter(params BandStopParams) (*bandStopFilter, error) {
	bsf := &bandStopFilter{}

	if err := bsf.CheckCutoffFreqs(params.LowCutoffFreq, params.HighCutoffFreq); err != nil {
		return nil, err
	}

	lpf, err := NewLowPassFilter(LowPassParams{CutoffFreq: params.LowCutoffFreq, InitValue: params.InitValue})
	if err != nil {
		return nil, err
	}
	hpf, err := NewHighPassFilter(HighPassParams{CutoffFreq: params.HighCutoffFreq, InitValue: params.InitValue})
	if err != nil {
		return nil, err
	}

	bsf.typeName = "bandstop"
	bsf.lpf = *lpf
	bsf.hpf = *hpf

	return bsf, nil
}

// Runs value through both sub-filters in parallel, neither seeing the
// other's output, and returns the sum.
func (f *bandStopFilter) Filter(value float64, dt float64) float64 {
	return f.lpf.Filter(value, dt) + f.hpf.Filter(value, dt)
}

// Retunes both sub-filters in place if 0 <= lowCutoffFreq <= highCutoffFreq.
// Recursive sub-filter state is preserved, this is a live retune rather
// than a reconstruction.
func (f *bandStopFilter) SetCutoffFreqs(lowCutoffFreq float64, highCutoffFreq float64) error {
	if err := f.CheckCutoffFreqs(lowCutoffFreq, highCutoffFreq); err != nil {
		return err
	}

	if err := f.lpf.SetCutoffFreq(lowCutoffFreq); err != nil {
		return err
	}
	return f.hpf.SetCutoffFreq(highCutoffFreq)
}

// Getters

func (f *bandStopFilter) GetLowCutoffFreq() float64 {
	return f.lpf.GetCutoffFreq()
}

func (f *bandStopFilter) GetHighCutoffFreq() float64 {
	return f.hpf.GetCutoffFreq()
}
