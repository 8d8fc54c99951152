package generator_test

import (
	"testing"

	"github.com/robotlib/signals/generator"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestContainerUnmarshalYAML(t *testing.T) {
	yamlStr := `
carrier:
  type: sine
  Freq: 50.0
clock:
  type: square
  Period: 2.0
  DutyCycle: 0.25
ramp:
  type: triangle
  Freq: 1.0
noise:
  type: gaussian
  Mean: 0.0
  StdDev: 0.1
  Seed: 42
dither:
  type: uniform
  Low: -0.5
  High: 0.5
sweep:
  type: function
  Period: 10.0
  Amplitude: 3.0
  WaveFunc: sawtooth
`

	var container generator.Container
	err := yaml.Unmarshal([]byte(yamlStr), &container)
	assert.NoError(t, err)
	assert.Len(t, container, 6)

	assert.Equal(t, "sine", container["carrier"].TypeAsString())
	assert.Equal(t, "square", container["clock"].TypeAsString())
	assert.Equal(t, "triangle", container["ramp"].TypeAsString())
	assert.Equal(t, "gaussian", container["noise"].TypeAsString())
	assert.Equal(t, "uniform", container["dither"].TypeAsString())
	assert.Equal(t, "function", container["sweep"].TypeAsString())
}

func TestContainerUnmarshalYAMLUnknownType(t *testing.T) {
	yamlStr := `
bad:
  type: whitenoise
`

	var container generator.Container
	err := yaml.Unmarshal([]byte(yamlStr), &container)
	assert.ErrorContains(t, err, "unknown generator type")
}

func TestContainerUnmarshalYAMLInvalidParams(t *testing.T) {
	yamlStr := `
bad:
  type: sine
  Freq: 1.0
  Period: 2.0
`

	var container generator.Container
	err := yaml.Unmarshal([]byte(yamlStr), &container)
	assert.Error(t, err)
}

func TestAddGeneratorAndSampleAll(t *testing.T) {
	container := make(generator.Container)

	square, err := generator.NewSquareGenerator(generator.SquareParams{Freq: 1.0})
	assert.NoError(t, err)
	sine, err := generator.NewSineGenerator(generator.SineParams{Freq: 1.0})
	assert.NoError(t, err)

	id := container.AddGenerator(square)
	container.AddGenerator(sine)
	assert.Len(t, container, 2)
	assert.Contains(t, container, id.String())

	// square at t=0.25 gives 1.0, sine at t=0.25 gives 1.0
	total := container.SampleAll(0.25)
	assert.InDelta(t, 2.0, total, 1e-9)
}

func TestGetDecodeHook(t *testing.T) {
	hook, err := generator.GetDecodeHook()
	assert.NoError(t, err)
	assert.NotNil(t, hook)
}
