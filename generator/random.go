package generator

import (
	"fmt"

	"github.com/robotlib/signals/randsource"
)

// RandomBase is the base struct for generators that draw an independent
// random value every call. Random generators do not accumulate time and
// ignore dt.
type RandomBase struct {
	GeneratorBase

	source randsource.Source // injected entropy source
}

// Replaces the entropy source of the generator. Useful for supplying a
// custom source rather than one built from a randomness selector.
func (r *RandomBase) SetSource(source randsource.Source) error {
	if source == nil {
		return fmt.Errorf("%w: source must not be nil", ErrInvalidParameter)
	}
	r.source = source
	return nil
}

// Builds the entropy source from a randomness selector and optional seed.
// A rejected selector is re-wrapped so callers see the one error kind of
// this package.
func (r *RandomBase) setSourceFromParams(randomness string, seed *uint64) error {
	source, err := randsource.New(randomness, seed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	r.source = source
	return nil
}

// Generates uniformly distributed random samples over [low, high).
type uniformRandomGenerator struct {
	RandomBase

	low  float64 // inclusive lower bound of the range
	high float64 // exclusive upper bound of the range, must be > low
}

// Parameters used to request a uniform random generator.
type UniformRandomParams struct {
	Low        float64 `yaml:"Low"`        // inclusive lower bound of the range
	High       float64 `yaml:"High"`       // exclusive upper bound of the range, must be > Low
	Seed       *uint64 `yaml:"Seed"`       // optional seed, pseudo randomness only
	Randomness string  `yaml:"Randomness"` // "pseudo" (default) or "true"
}

// Initialise the internal fields of uniformRandomGenerator when it is unmarshalled from yaml.
func (g *uniformRandomGenerator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params UniformRandomParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	ug, err := NewUniformRandomGenerator(params)
	if err != nil {
		return err
	}

	*g = *ug
	return nil
}

// Returns a uniformRandomGenerator pointer with the requested parameters, checking for invalid values.
func NewUniformRandomGenerator(params UniformRandomParams) (*uniformRandomGenerator, error) {
	ug := &uniformRandomGenerator{}

	// Invalid values checked by setters
	if err := ug.SetRange(params.Low, params.High); err != nil {
		return nil, err
	}
	if err := ug.setSourceFromParams(params.Randomness, params.Seed); err != nil {
		return nil, err
	}

	ug.typeName = "uniform"

	return ug, nil
}

// Draws an independent sample from [low, high). dt is ignored.
func (g *uniformRandomGenerator) Sample(_ float64) float64 {
	return g.low + g.source.Float64()*(g.high-g.low)
}

// Sets the sampling range of the generator if low < high.
func (g *uniformRandomGenerator) SetRange(low float64, high float64) error {
	if low >= high {
		return fmt.Errorf("%w: low (%v) must be less than high (%v)", ErrInvalidParameter, low, high)
	}

	g.low = low
	g.high = high
	return nil
}

// Getters

func (g *uniformRandomGenerator) GetLow() float64 {
	return g.low
}

func (g *uniformRandomGenerator) GetHigh() float64 {
	return g.high
}

// Generates random samples drawn from a Gaussian distribution.
type gaussianRandomGenerator struct {
	RandomBase

	mean   float64 // mean of the distribution
	stdDev float64 // standard deviation of the distribution, must be >= 0
}

// Parameters used to request a Gaussian random generator.
type GaussianRandomParams struct {
	Mean       float64 `yaml:"Mean"`       // mean of the distribution
	StdDev     float64 `yaml:"StdDev"`     // standard deviation of the distribution, must be >= 0
	Seed       *uint64 `yaml:"Seed"`       // optional seed, pseudo randomness only
	Randomness string  `yaml:"Randomness"` // "pseudo" (default) or "true"
}

// Initialise the internal fields of gaussianRandomGenerator when it is unmarshalled from yaml.
func (g *gaussianRandomGenerator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params GaussianRandomParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	gg, err := NewGaussianRandomGenerator(params)
	if err != nil {
		return err
	}

	*g = *gg
	return nil
}

// Returns a gaussianRandomGenerator pointer with the requested parameters, checking for invalid values.
func NewGaussianRandomGenerator(params GaussianRandomParams) (*gaussianRandomGenerator, error) {
	gg := &gaussianRandomGenerator{}

	// Invalid values checked by setters
	if err := gg.SetStdDev(params.StdDev); err != nil {
		return nil, err
	}
	if err := gg.setSourceFromParams(params.Randomness, params.Seed); err != nil {
		return nil, err
	}

	gg.typeName = "gaussian"
	gg.mean = params.Mean

	return gg, nil
}

// Draws an independent Gaussian sample. dt is ignored.
func (g *gaussianRandomGenerator) Sample(_ float64) float64 {
	return g.mean + g.source.NormFloat64()*g.stdDev
}

// Sets the standard deviation of the generator if stdDev >= 0.
func (g *gaussianRandomGenerator) SetStdDev(stdDev float64) error {
	if stdDev < 0 {
		return fmt.Errorf("%w: standard deviation must be greater than or equal to 0; got %v", ErrInvalidParameter, stdDev)
	}

	g.stdDev = stdDev
	return nil
}

// Getters

func (g *gaussianRandomGenerator) GetMean() float64 {
	return g.mean
}

func (g *gaussianRandomGenerator) GetStdDev() float64 {
	return g.stdDev
}
