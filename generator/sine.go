package generator

import (
	"math"
)

// Generates a unit-amplitude sine wave at the configured frequency.
type sineGenerator struct {
	PeriodicBase
}

// Parameters used to request a sine wave generator. Exactly one of Freq or
// Period must be non-zero.
type SineParams struct {
	Freq   float64 `yaml:"Freq"`   // frequency in Hz, must be > 0 if given
	Period float64 `yaml:"Period"` // period in seconds, must be > 0 if given
}

// Initialise the internal fields of sineGenerator when it is unmarshalled from yaml.
func (g *sineGenerator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params SineParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	sg, err := NewSineGenerator(params)
	if err != nil {
		return err
	}

	*g = *sg
	return nil
}

// Returns a sineGenerator pointer with the requested parameters, checking for invalid values.
func NewSineGenerator(params SineParams) (*sineGenerator, error) {
	sg := &sineGenerator{}

	if err := sg.setFreqOrPeriod(params.Freq, params.Period); err != nil {
		return nil, err
	}

	sg.typeName = "sine"

	return sg, nil
}

// Advances the clock by dt and returns sin(2*pi*freq*t).
func (g *sineGenerator) Sample(dt float64) float64 {
	g.advanceTime(dt)
	return math.Sin(2 * math.Pi * g.freq * g.t)
}
