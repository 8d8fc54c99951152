package generator

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestFreqAndPeriodAreDualViews(t *testing.T) {
	sg, err := NewSineGenerator(SineParams{Freq: 2.0})
	assert.NoError(t, err)
	assert.Equal(t, 2.0, sg.GetFreq())
	assert.Equal(t, 0.5, sg.GetPeriod())

	err = sg.SetPeriod(0.25)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, sg.GetFreq())

	err = sg.SetFreq(10.0)
	assert.NoError(t, err)
	assert.Equal(t, 0.1, sg.GetPeriod())
}

func TestExactlyOneOfFreqOrPeriod(t *testing.T) {
	testCases := []struct {
		name    string
		freq    float64
		period  float64
		isError bool
	}{
		{name: "freq_only", freq: 1.0},
		{name: "period_only", period: 2.0},
		{name: "neither", isError: true},
		{name: "both", freq: 1.0, period: 2.0, isError: true},
		{name: "negative_freq", freq: -1.0, isError: true},
		{name: "negative_period", period: -2.0, isError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSineGenerator(SineParams{Freq: tc.freq, Period: tc.period})
			if tc.isError {
				assert.True(t, errors.Is(err, ErrInvalidParameter))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSineGeneratorSamples(t *testing.T) {
	sg, err := NewSineGenerator(SineParams{Freq: 1.0})
	assert.NoError(t, err)

	// t advances to 0.25, 0.5, 0.75, 1.0 within the 1 second period
	expected := []float64{1.0, 0.0, -1.0, 0.0}
	for i, exp := range expected {
		assert.InDelta(t, exp, sg.Sample(0.25), 1e-9, "at step %d", i)
	}

	assert.InDelta(t, 1.0, sg.GetElapsedTime(), 1e-12)
}

// The accumulated clock only ever moves forward, regardless of dt.
func TestPeriodicClockIsMonotonic(t *testing.T) {
	sg, err := NewSineGenerator(SineParams{Freq: 1.0})
	assert.NoError(t, err)

	sg.Sample(0.5)
	for _, dt := range []float64{-1.0, math.NaN(), math.Inf(1)} {
		sg.Sample(dt)
		assert.Equal(t, 0.5, sg.GetElapsedTime())
	}
}

func TestSquareGeneratorDutyCycle(t *testing.T) {
	sg, err := NewSquareGenerator(SquareParams{Freq: 1.0, DutyCycle: floatPtr(0.5)})
	assert.NoError(t, err)

	// t progresses 0.3, 0.6, 0.9 within the 1 second period; fractions
	// 0.3, 0.6, 0.9 against duty cycle 0.5
	expected := []float64{1.0, 0.0, 0.0}
	for i, exp := range expected {
		assert.Equal(t, exp, sg.Sample(0.3), "at step %d", i)
	}
}

func TestSquareGeneratorDefaultDutyCycle(t *testing.T) {
	sg, err := NewSquareGenerator(SquareParams{Freq: 1.0})
	assert.NoError(t, err)
	assert.Equal(t, 0.5, sg.GetDutyCycle())
}

func TestDutyCycleValidation(t *testing.T) {
	for _, dutyCycle := range []float64{-0.1, 1.5} {
		t.Run(fmt.Sprintf("duty:%v", dutyCycle), func(t *testing.T) {
			_, err := NewSquareGenerator(SquareParams{Freq: 1.0, DutyCycle: floatPtr(dutyCycle)})
			assert.True(t, errors.Is(err, ErrInvalidParameter))
		})
	}

	sg, err := NewSquareGenerator(SquareParams{Freq: 1.0})
	assert.NoError(t, err)
	err = sg.SetDutyCycle(2.0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Equal(t, 0.5, sg.GetDutyCycle())
}

func TestTriangleGeneratorRamps(t *testing.T) {
	tg, err := NewTriangleGenerator(TriangleParams{Freq: 1.0, DutyCycle: floatPtr(0.5)})
	assert.NoError(t, err)

	// Upswing: fraction/0.5; downswing: (1-fraction)/0.5
	testCases := []struct {
		dt       float64
		expected float64
	}{
		{dt: 0.1, expected: 0.2}, // t=0.1, upswing 0.1/0.5
		{dt: 0.2, expected: 0.6}, // t=0.3, upswing 0.3/0.5
		{dt: 0.2, expected: 1.0}, // t=0.5, downswing (1-0.5)/0.5
		{dt: 0.3, expected: 0.4}, // t=0.8, downswing (1-0.8)/0.5
	}

	for i, tc := range testCases {
		assert.InDelta(t, tc.expected, tg.Sample(tc.dt), 1e-9, "at step %d", i)
	}
}

// Degenerate duty cycles select the branch with a non-zero divisor, so
// neither extreme divides by zero.
func TestTriangleGeneratorDegenerateDutyCycles(t *testing.T) {
	t.Run("duty:0", func(t *testing.T) {
		tg, err := NewTriangleGenerator(TriangleParams{Freq: 1.0, DutyCycle: floatPtr(0.0)})
		assert.NoError(t, err)

		// Always on the downswing: (1 - fraction) / 1
		assert.InDelta(t, 0.75, tg.Sample(0.25), 1e-9)
		assert.InDelta(t, 0.5, tg.Sample(0.25), 1e-9)
	})

	t.Run("duty:1", func(t *testing.T) {
		tg, err := NewTriangleGenerator(TriangleParams{Freq: 1.0, DutyCycle: floatPtr(1.0)})
		assert.NoError(t, err)

		// Always on the upswing: fraction / 1
		assert.InDelta(t, 0.25, tg.Sample(0.25), 1e-9)
		assert.InDelta(t, 0.5, tg.Sample(0.25), 1e-9)
	})
}

func TestGeneratorTypeNames(t *testing.T) {
	sine, _ := NewSineGenerator(SineParams{Freq: 1.0})
	square, _ := NewSquareGenerator(SquareParams{Freq: 1.0})
	triangle, _ := NewTriangleGenerator(TriangleParams{Freq: 1.0})

	assert.Equal(t, "sine", sine.TypeAsString())
	assert.Equal(t, "square", square.TypeAsString())
	assert.Equal(t, "triangle", triangle.TypeAsString())
}

func BenchmarkSineGenerator(b *testing.B) {
	sg, _ := NewSineGenerator(SineParams{Freq: 50.0})

	for i := 0; i < b.N; i++ {
		sg.Sample(0.001)
	}
}
