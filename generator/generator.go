package generator

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// ErrInvalidParameter is wrapped by all generator validation errors. Setters
// and constructors return it before mutating any state.
var ErrInvalidParameter = errors.New("invalid parameter")

// GeneratorInterface is the interface for all signal generator types
// (periodic waveforms, duty-cycle waveforms, random noise).
type GeneratorInterface interface {
	UnmarshalYAML(unmarshal func(interface{}) error) error // Unmarshals a generator entry into the correct type based on the type field
	TypeAsString() string                                  // Returns the generator type as a string
	Sample(dt float64) float64                             // Advances the generator by dt and returns the new sample
}

// GeneratorBase is the base struct for all generator types.
type GeneratorBase struct {
	typeName string // the type of generator
}

// Returns the type of generator as a string.
func (g *GeneratorBase) TypeAsString() string {
	return g.typeName
}

// Container is a collection of generators keyed by UUID.
type Container map[string]GeneratorInterface

// Samples all generators within the container and returns the sum of their
// outputs for this timestep.
func (c Container) SampleAll(dt float64) float64 {
	value := 0.0
	for key := range c {
		// Do by key to not work on a copy
		value += c[key].Sample(dt)
	}
	return value
}

// Adds a generator to the container with a UUID and returns the UUID.
func (c *Container) AddGenerator(g GeneratorInterface) uuid.UUID {
	uuid := uuid.New()
	(*c)[uuid.String()] = g
	return uuid
}

// Clamps dt to zero when it is negative or not finite, so a bad timestep
// cannot rewind or corrupt the accumulated clock.
func sanitizeDt(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0
	}
	return dt
}
