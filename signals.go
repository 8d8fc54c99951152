package signals

import (
	"fmt"

	"github.com/robotlib/signals/filter"
	"github.com/robotlib/signals/generator"
	"gopkg.in/yaml.v2"
)

// Conditioner drives a set of signal sources through a filter chain one
// timestep at a time. A host control loop calls Step once per tick; each
// call advances every source and filter and returns the conditioned output.
type Conditioner struct {
	// common inputs
	SamplingRate int     // ticks per second used to derive Ts
	Ts           float64 // timestep in seconds supplied to sources and filters

	Sources generator.Container // signal sources, outputs summed each tick
	Filters filter.Chain        // ordered filter cascade applied to the summed signal

	// outputs
	Raw float64 // summed source output of the most recent step
	Out float64 // conditioned output of the most recent step
}

// Config is the yaml document describing a complete conditioning pipeline.
type Config struct {
	SamplingRate int                 `yaml:"SamplingRate"`
	Generators   generator.Container `yaml:"Generators"`
	Filters      filter.Chain        `yaml:"Filters"`
}

// Returns a Conditioner stepping at the given sampling rate with no
// sources or filters attached.
func NewConditioner(samplingRate int) (*Conditioner, error) {
	if samplingRate <= 0 {
		return nil, fmt.Errorf("sampling rate must be greater than 0; got %d", samplingRate)
	}

	return &Conditioner{
		SamplingRate: samplingRate,
		Ts:           1 / float64(samplingRate),
		Sources:      make(generator.Container),
	}, nil
}

// Builds a Conditioner from a yaml config. Generator and filter entries
// are routed through their validating constructors, so an invalid
// parameter anywhere rejects the whole document.
func FromConfig(data []byte) (*Conditioner, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	c, err := NewConditioner(cfg.SamplingRate)
	if err != nil {
		return nil, err
	}

	if cfg.Generators != nil {
		c.Sources = cfg.Generators
	}
	c.Filters = cfg.Filters

	return c, nil
}

// Step performs one iteration of the conditioning pipeline: samples every
// source, sums the outputs, and runs the sum through the filter chain.
func (c *Conditioner) Step() float64 {
	c.Raw = c.Sources.SampleAll(c.Ts)
	c.Out = c.Filters.FilterAll(c.Raw, c.Ts)
	return c.Out
}
