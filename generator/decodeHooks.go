package generator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Unmarshals a yaml mapping of named generator entries into the container.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// Temporary structure to unmarshal the yaml file
	var unmarshaledYaml map[string]map[string]interface{}
	if err := unmarshal(&unmarshaledYaml); err != nil {
		return err
	}

	if *c == nil {
		*c = make(Container)
	}

	for key, yamlEntry := range unmarshaledYaml {
		gi, err := createGeneratorFromYamlEntry(yamlEntry)
		if err != nil {
			return err
		}
		(*c)[key] = gi
	}

	return nil
}

// Returns a decodeHook function that can be used to unmarshal generators from a yaml file using mapstructure.
// This supports configuration solutions like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*GeneratorInterface)(nil)).Elem() {
			// If the target type is GeneratorInterface, create the correct generator type from the yaml entry
			return createGeneratorFromYamlEntry(yamlEntry)
		}
		// Otherwise, return the yaml entry as is (default behaviour)
		return yamlEntry, nil
	}

	return decodeHook, nil
}

// Creates a generic generator from a yaml entry based on the generator "type" (or "Type") field.
// Construction is routed through the validating constructors, so invalid
// parameters are rejected here.
func createGeneratorFromYamlEntry(yamlEntry interface{}) (GeneratorInterface, error) {
	// yaml entries should always be a string key with some sort of value
	m, ok := yamlEntry.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("yaml entry cannot be parsed to map[string]interface{}: %v", yamlEntry)
	}

	// must check both m["type"] and m["Type"] because some yaml parsers convert to lower case and some don't
	typeStr, ok := m["type"].(string)
	if !ok {
		typeStr, ok = m["Type"].(string)
		if !ok {
			return nil, errors.New("generator type field is missing or not a string")
		}
	}

	switch typeStr {
	case "sine":
		var params SineParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewSineGenerator(params)
	case "square":
		var params SquareParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewSquareGenerator(params)
	case "triangle":
		var params TriangleParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewTriangleGenerator(params)
	case "uniform":
		var params UniformRandomParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewUniformRandomGenerator(params)
	case "gaussian":
		var params GaussianRandomParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewGaussianRandomGenerator(params)
	case "function":
		var params FunctionParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewFunctionGenerator(params)
	default:
		return nil, fmt.Errorf("unknown generator type: %s", typeStr)
	}
}

// Decodes a yaml entry map into a params struct using mapstructure.
func decodeParams(m map[string]interface{}, params interface{}) error {
	decoderConfig := &mapstructure.DecoderConfig{
		Result: params,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(m)
}
