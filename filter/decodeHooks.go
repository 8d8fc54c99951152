package filter

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Unmarshals a yaml list of filter entries into the chain, preserving order.
func (c *Chain) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// Temporary structure to unmarshal the yaml file
	var unmarshaledYaml []map[string]interface{}
	if err := unmarshal(&unmarshaledYaml); err != nil {
		return err
	}

	for _, yamlEntry := range unmarshaledYaml {
		fi, err := createFilterFromYamlEntry(yamlEntry)
		if err != nil {
			return err
		}
		*c = append(*c, fi)
	}

	return nil
}

// Returns a decodeHook function that can be used to unmarshal filters from a yaml file using mapstructure.
// This supports configuration solutions like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*FilterInterface)(nil)).Elem() {
			// If the target type is FilterInterface, create the correct filter type from the yaml entry
			return createFilterFromYamlEntry(yamlEntry)
		}
		// Otherwise, return the yaml entry as is (default behaviour)
		return yamlEntry, nil
	}

	return decodeHook, nil
}

// Creates a generic filter from a yaml entry based on the filter "type" (or "Type") field.
// Construction is routed through the validating constructors, so invalid
// parameters are rejected here.
func createFilterFromYamlEntry(yamlEntry interface{}) (FilterInterface, error) {
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
			return nil, errors.New("filter type field is missing or not a string")
		}
	}

	switch typeStr {
	case "lowpass":
		var params LowPassParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewLowPassFilter(params)
	case "highpass":
		var params HighPassParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewHighPassFilter(params)
	case "bandpass":
		var params BandPassParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewBandPassFilter(params)
	case "bandstop":
		var params BandStopParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewBandStopFilter(params)
	case "clip":
		var params ClipParams
		if err := decodeParams(m, &params); err != nil {
			return nil, err
		}
		return NewClipFilter(params)
	default:
		return nil, fmt.Errorf("unknown filter type: %s", typeStr)
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
