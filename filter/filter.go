package filter

import (
	"errors"
	"math"
)

// ErrInvalidParameter is wrapped by all filter validation errors. Setters
// and constructors return it before mutating any state, so a rejected
// call never leaves a filter partially updated.
var ErrInvalidParameter = errors.New("invalid parameter")

// FilterInterface is the interface for all filter types (low-pass, high-pass,
// band-pass, band-stop).
type FilterInterface interface {
	UnmarshalYAML(unmarshal func(interface{}) error) error // Unmarshals a filter entry into the correct type based on the type field
	TypeAsString() string                                  // Returns the filter type as a string
	Filter(value float64, dt float64) float64              // Applies the filter to value over timestep dt, updating recursive state
}

// Chain is an ordered cascade of filters. The output of each filter feeds
// the input of the next.
type Chain []FilterInterface

// Runs value through every filter in the chain in order and returns the
// final output.
func (c Chain) FilterAll(value float64, dt float64) float64 {
	for _, f := range c {
		value = f.Filter(value, dt)
	}
	return value
}

// Appends a filter to the end of the chain.
func (c *Chain) AddFilter(f FilterInterface) {
	*c = append(*c, f)
}

// Clamps dt to zero when it is negative or not finite. A zero dt holds
// filter state: both alpha formulas are well defined at dt=0.
func sanitizeDt(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0
	}
	return dt
}
