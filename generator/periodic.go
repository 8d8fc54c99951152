package generator

import (
	"fmt"
	"math"
)

// Duty cycle used when a duty-cycle generator is requested without one.
const defaultDutyCycle = 0.5

// PeriodicBase is the base struct for generators that repeat with a fixed
// period. The accumulated clock advances by dt on every Sample call and is
// never reset except by re-construction.
type PeriodicBase struct {
	GeneratorBase

	// Setters and getters are provided for private fields below to allow for error checking
	freq float64 // frequency in Hz, must be > 0; period is the derived view 1/freq

	// internal state
	t float64 // accumulated time in seconds, monotonically increasing
}

// Returns the frequency of the generator in Hz.
func (p *PeriodicBase) GetFreq() float64 {
	return p.freq
}

// Sets the frequency of the generator in Hz if freq > 0. The period view
// updates with it.
func (p *PeriodicBase) SetFreq(freq float64) error {
	if freq <= 0 {
		return fmt.Errorf("%w: freq must be greater than 0; got %v", ErrInvalidParameter, freq)
	}

	p.freq = freq
	return nil
}

// Returns the period of the generator in seconds.
func (p *PeriodicBase) GetPeriod() float64 {
	return 1.0 / p.freq
}

// Sets the period of the generator in seconds if period > 0. The frequency
// view updates with it.
func (p *PeriodicBase) SetPeriod(period float64) error {
	if period <= 0 {
		return fmt.Errorf("%w: period must be greater than 0; got %v", ErrInvalidParameter, period)
	}
	return p.SetFreq(1.0 / period)
}

// Returns the accumulated time of the generator in seconds.
func (p *PeriodicBase) GetElapsedTime() float64 {
	return p.t
}

// Applies exactly one of freq or period from construction parameters.
// Supplying both, or neither, is rejected.
func (p *PeriodicBase) setFreqOrPeriod(freq float64, period float64) error {
	switch {
	case freq == 0 && period == 0:
		return fmt.Errorf("%w: either Freq or Period must be given", ErrInvalidParameter)
	case freq != 0 && period != 0:
		return fmt.Errorf("%w: only one of Freq or Period should be given, not both", ErrInvalidParameter)
	case freq != 0:
		return p.SetFreq(freq)
	default:
		return p.SetPeriod(period)
	}
}

// Advances the accumulated clock by dt.
func (p *PeriodicBase) advanceTime(dt float64) {
	p.t += sanitizeDt(dt)
}

// Returns the fraction of the current period that has elapsed, in [0, 1).
func (p *PeriodicBase) periodFraction() float64 {
	period := p.GetPeriod()
	return math.Mod(p.t, period) / period
}

// DutyCycleBase is the base struct for periodic generators with a
// configurable on-fraction of each period.
type DutyCycleBase struct {
	PeriodicBase

	dutyCycle float64 // fraction of the period spent "on", must be in [0, 1]
}

// Returns the duty cycle of the generator.
func (d *DutyCycleBase) GetDutyCycle() float64 {
	return d.dutyCycle
}

// Sets the duty cycle of the generator if dutyCycle is in [0, 1].
func (d *DutyCycleBase) SetDutyCycle(dutyCycle float64) error {
	if dutyCycle < 0.0 || dutyCycle > 1.0 {
		return fmt.Errorf("%w: duty cycle must be in range [0.0, 1.0]; got %v", ErrInvalidParameter, dutyCycle)
	}

	d.dutyCycle = dutyCycle
	return nil
}

// Applies the requested duty cycle, defaulting when none was given.
func (d *DutyCycleBase) setDutyCycleParam(dutyCycle *float64) error {
	if dutyCycle == nil {
		d.dutyCycle = defaultDutyCycle
		return nil
	}
	return d.SetDutyCycle(*dutyCycle)
}

// Returns whether the accumulated clock currently sits inside the duty
// cycle portion of the period.
func (d *DutyCycleBase) isInDutyCycle() bool {
	return d.periodFraction() < d.dutyCycle
}
