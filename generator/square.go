package generator

// Generates a square wave alternating between 1.0 and 0.0. The output is
// 1.0 for the duty cycle fraction of each period.
type squareGenerator struct {
	DutyCycleBase
}

// Parameters used to request a square wave generator. Exactly one of Freq
// or Period must be non-zero.
type SquareParams struct {
	Freq      float64  `yaml:"Freq"`      // frequency in Hz, must be > 0 if given
	Period    float64  `yaml:"Period"`    // period in seconds, must be > 0 if given
	DutyCycle *float64 `yaml:"DutyCycle"` // fraction of the period at 1.0, in [0, 1]; defaults to 0.5 when omitted
}

// Initialise the internal fields of squareGenerator when it is unmarshalled from yaml.
func (g *squareGenerator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params SquareParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	sg, err := NewSquareGenerator(params)
	if err != nil {
		return err
	}

	*g = *sg
	return nil
}

// Returns a squareGenerator pointer with the requested parameters, checking for invalid values.
func NewSquareGenerator(params SquareParams) (*squareGenerator, error) {
	sg := &squareGenerator{}

	if err := sg.setFreqOrPeriod(params.Freq, params.Period); err != nil {
		return nil, err
	}
	if err := sg.setDutyCycleParam(params.DutyCycle); err != nil {
		return nil, err
	}

	sg.typeName = "square"

	return sg, nil
}

// Advances the clock by dt and returns 1.0 while inside the duty cycle
// portion of the period, else 0.0.
func (g *squareGenerator) Sample(dt float64) float64 {
	g.advanceTime(dt)
	if g.isInDutyCycle() {
		return 1.0
	}
	return 0.0
}
