package wavefuncs

import (
	"errors"
	"math"

	"github.com/stevenblair/sigourney/fast"
)

// A waveform function y=f(t,A,T). Takes amplitude, A, and period, T,
// as inputs and returns the value of the waveform at time, t.
type WaveFunction func(t, A, T float64) float64

// A map between string name and waveform function pairs
var waveFunctions = map[string]WaveFunction{
	"linear":            linearRamp,
	"sine":              sineWave,
	"cosine":            cosineWave,
	"square":            squareWave,
	"sawtooth":          sawtoothWave,
	"parabolic":         parabolicRamp,
	"step":              stepFunction,
	"exponential_decay": exponentialDecay,
	"flat":              flat,
}

func GetWaveFunctionNames() []string {
	names := make([]string, 0, len(waveFunctions))
	for name := range waveFunctions {
		names = append(names, name)
	}
	return names
}

// Returns the named waveform function.
func GetWaveFunctionFromName(name string) (WaveFunction, error) {
	waveFunc, ok := waveFunctions[name]
	if !ok {
		return nil, errors.New("wave function not found")
	}

	return waveFunc, nil
}

// Returns a linear ramp y=(A/T)*t where A is the magnitude of the ramp, T is
// its duration, and t is elapsed time.
func linearRamp(t, A, T float64) float64 {
	m := A / T // slope of the ramp
	return m * t
}

// Returns a sine wave y=A*sin(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func sineWave(t, A, T float64) float64 {
	return A * math.Sin(2*math.Pi*t/T)
}

// Returns a cosine wave y=A*cos(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func cosineWave(t, A, T float64) float64 {
	return A * fast.Cos(2*math.Pi*t/T)
}

// Returns a square wave y=A if sin(2*pi*t/T) >= 0, else -A.
// where A is the amplitude, T is the period, and t is elapsed time.
func squareWave(t, A, T float64) float64 {
	if fast.Sin(2*math.Pi*t/T) >= 0 {
		return A
	} else {
		return -A
	}
}

// Returns a sawtooth wave y=(2*A/pi)*atan(tan(pi*t/T)),
// where A is the amplitude, T is the period, and t is elapsed time.
func sawtoothWave(t, A, T float64) float64 {
	return (2 * A / math.Pi) * math.Atan(math.Tan(math.Pi*t/T))
}

// Returns a parabolic ramp of amplitude A every period T.
func parabolicRamp(t, A, T float64) float64 {
	return A * (t / T) * (t / T) // faster power of two compared to math.Pow(t/T, 2)
}

// Returns a step function of amplitude A every period T.
func stepFunction(t, A, T float64) float64 {
	if math.Mod(t, T) < T/2 {
		return 0
	} else {
		return A
	}
}

// Returns an exponential decay y=A*exp(-t/T) where A is the amplitude,
// T is the time constant, and t is elapsed time.
func exponentialDecay(t, A, T float64) float64 {
	return A * math.Exp(-t/T)
}

// Returns a constant value equal to A, independent of time t or period T.
func flat(_, A, _ float64) float64 {
	return A
}
