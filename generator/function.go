package generator

import (
	"github.com/robotlib/signals/wavefuncs"
)

// Samples a named waveform function y=f(t, amplitude, period) from the
// wavefuncs registry, advancing the accumulated clock by dt each call.
type functionGenerator struct {
	PeriodicBase

	Amplitude    float64 // amplitude passed to the waveform function, default 0
	waveFuncName string  // name of the waveform function, defaults to "sine" if empty

	// internal state
	waveFunction wavefuncs.WaveFunction // set internally from waveFuncName
}

// Parameters used to request a function generator. Exactly one of Freq or
// Period must be non-zero.
type FunctionParams struct {
	Freq         float64 `yaml:"Freq"`      // frequency in Hz, must be > 0 if given
	Period       float64 `yaml:"Period"`    // period in seconds, must be > 0 if given
	Amplitude    float64 `yaml:"Amplitude"` // amplitude passed to the waveform function, default 0
	WaveFuncName string  `yaml:"WaveFunc"`  // name of the waveform function, empty defaults to "sine"
}

// Initialise the internal fields of functionGenerator when it is unmarshalled from yaml.
func (g *functionGenerator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params FunctionParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	fg, err := NewFunctionGenerator(params)
	if err != nil {
		return err
	}

	*g = *fg
	return nil
}

// Returns a functionGenerator pointer with the requested parameters, checking for invalid values.
func NewFunctionGenerator(params FunctionParams) (*functionGenerator, error) {
	fg := &functionGenerator{}

	// Invalid values checked by setters
	if err := fg.setFreqOrPeriod(params.Freq, params.Period); err != nil {
		return nil, err
	}
	if err := fg.SetWaveFunctionByName(params.WaveFuncName); err != nil {
		return nil, err
	}

	fg.typeName = "function"
	fg.Amplitude = params.Amplitude

	return fg, nil
}

// Advances the clock by dt and evaluates the waveform function at the new
// accumulated time.
func (g *functionGenerator) Sample(dt float64) float64 {
	g.advanceTime(dt)
	return g.waveFunction(g.t, g.Amplitude, g.GetPeriod())
}

// Sets the field waveFunction to the function with the given name.
func (g *functionGenerator) SetWaveFunctionByName(name string) error {
	if name == "" {
		name = "sine" // default to sine if no name is provided
	}

	waveFunc, err := wavefuncs.GetWaveFunctionFromName(name)
	if err != nil {
		return err
	}

	g.waveFunction = waveFunc
	g.waveFuncName = name
	return nil
}

// Getters

func (g *functionGenerator) GetWaveFuncName() string {
	return g.waveFuncName
}

// Returns the waveform function used by the generator.
func (g *functionGenerator) GetWaveFunction() wavefuncs.WaveFunction {
	return g.waveFunction
}
