package generator

// Generates a triangle wave: a linear ramp 0 to 1 across the duty cycle
// portion of the period, then a linear ramp 1 to 0 across the remainder.
type triangleGenerator struct {
	DutyCycleBase
}

// Parameters used to request a triangle wave generator. Exactly one of
// Freq or Period must be non-zero.
type TriangleParams struct {
	Freq      float64  `yaml:"Freq"`      // frequency in Hz, must be > 0 if given
	Period    float64  `yaml:"Period"`    // period in seconds, must be > 0 if given
	DutyCycle *float64 `yaml:"DutyCycle"` // fraction of the period spent ramping up, in [0, 1]; defaults to 0.5 when omitted
}

// Initialise the internal fields of triangleGenerator when it is unmarshalled from yaml.
func (g *triangleGenerator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params TriangleParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	tg, err := NewTriangleGenerator(params)
	if err != nil {
		return err
	}

	*g = *tg
	return nil
}

// Returns a triangleGenerator pointer with the requested parameters, checking for invalid values.
func NewTriangleGenerator(params TriangleParams) (*triangleGenerator, error) {
	tg := &triangleGenerator{}

	if err := tg.setFreqOrPeriod(params.Freq, params.Period); err != nil {
		return nil, err
	}
	if err := tg.setDutyCycleParam(params.DutyCycle); err != nil {
		return nil, err
	}

	tg.typeName = "triangle"

	return tg, nil
}

// Advances the clock by dt and returns the ramp value for the current
// position in the period. Branch selection guarantees the divisor in the
// taken branch is non-zero, so the degenerate duty cycles 0 and 1 are safe.
func (g *triangleGenerator) Sample(dt float64) float64 {
	g.advanceTime(dt)
	if g.isInDutyCycle() {
		return g.upswing()
	}
	return g.downswing()
}

// Ramp 0 to 1 across the duty cycle portion of the period. Only called
// when periodFraction < dutyCycle, so dutyCycle > 0 here.
func (g *triangleGenerator) upswing() float64 {
	return g.periodFraction() / g.dutyCycle
}

// Ramp 1 to 0 across the remainder of the period. Only called when
// periodFraction >= dutyCycle, so dutyCycle < 1 here.
func (g *triangleGenerator) downswing() float64 {
	return (1.0 - g.periodFraction()) / (1.0 - g.dutyCycle)
}
