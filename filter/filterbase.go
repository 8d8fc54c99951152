package filter

import (
	"fmt"
)

// FilterBase is the base struct for all filter types.
type FilterBase struct {
	typeName string // the type of filter
}

// Returns the type of filter as a string.
func (f *FilterBase) TypeAsString() string {
	return f.typeName
}

// SinglePoleBase holds the state shared by the one-pole low-pass and
// high-pass filters: one cutoff frequency and the previous filter output.
type SinglePoleBase struct {
	FilterBase

	// Setters and getters are provided for private fields below to allow for error checking
	cutoffFreq float64 // cutoff frequency in Hz, must be >= 0

	// internal state
	prevOutput float64 // recursive filter state, updated on every Filter call
}

// Returns the cutoff frequency of the filter in Hz.
func (s *SinglePoleBase) GetCutoffFreq() float64 {
	return s.cutoffFreq
}

// Returns the most recent filter output.
func (s *SinglePoleBase) GetOutput() float64 {
	return s.prevOutput
}

// Sets the cutoff frequency of the filter in Hz if cutoffFreq >= 0.
// The recursive state is preserved, so a live filter can be retuned
// without resetting.
func (s *SinglePoleBase) SetCutoffFreq(cutoffFreq float64) error {
	if cutoffFreq < 0 {
		return fmt.Errorf("%w: cutoff frequency must be greater than or equal to 0; got %v", ErrInvalidParameter, cutoffFreq)
	}

	s.cutoffFreq = cutoffFreq
	return nil
}

// DualCutoffBase is the base struct for filters tuned with an ordered pair
// of cutoff frequencies (band-pass and band-stop).
type DualCutoffBase struct {
	FilterBase
}

// Returns an error unless 0 <= lowCutoffFreq <= highCutoffFreq.
func (d *DualCutoffBase) CheckCutoffFreqs(lowCutoffFreq float64, highCutoffFreq float64) error {
	if lowCutoffFreq < 0 {
		return fmt.Errorf("%w: cutoff frequencies must be greater than or equal to 0; got %v", ErrInvalidParameter, lowCutoffFreq)
	}
	if lowCutoffFreq > highCutoffFreq {
		return fmt.Errorf("%w: low cutoff frequency (%v) cannot be higher than high cutoff frequency (%v)", ErrInvalidParameter, lowCutoffFreq, highCutoffFreq)
	}
	return nil
}
