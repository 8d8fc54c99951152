package filter

import (
	"fmt"
)

// Clamps the signal to optional lower and upper limits. Either limit may
// be absent, leaving that side unbounded. The clip filter is stateless:
// dt is ignored and no recursive state is kept.
type clipFilter struct {
	FilterBase

	// Limits are set together so they can be validated as a pair
	minValue *float64 // optional lower limit, nil for unbounded
	maxValue *float64 // optional upper limit, nil for unbounded
}

// Parameters used to request a clip filter. These map onto the fields of clipFilter.
type ClipParams struct {
	MinValue *float64 `yaml:"MinValue"` // optional lower limit, omit for unbounded
	MaxValue *float64 `yaml:"MaxValue"` // optional upper limit, must be >= MinValue when both are given
}

// Initialise the internal fields of clipFilter when it is unmarshalled from yaml.
func (f *clipFilter) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params ClipParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	cf, err := NewClipFilter(params)
	if err != nil {
		return err
	}

	*f = *cf
	return nil
}

// Returns a clipFilter pointer with the requested parameters, checking for invalid values.
func NewClipFilter(params ClipParams) (*clipFilter, error) {
	cf := &clipFilter{}

	// Invalid values checked by setters
	if err := cf.SetLimits(params.MinValue, params.MaxValue); err != nil {
		return nil, err
	}

	cf.typeName = "clip"

	return cf, nil
}

// Clamps value to the configured limits. dt is ignored.
func (f *clipFilter) Filter(value float64, _ float64) float64 {
	if f.minValue != nil && value <= *f.minValue {
		return *f.minValue
	}
	if f.maxValue != nil && value >= *f.maxValue {
		return *f.maxValue
	}
	return value
}

// Sets both limits of the filter unless the pair is inverted. A nil limit
// leaves that side unbounded. The limit values are copied, so the filter
// keeps no reference to caller memory.
func (f *clipFilter) SetLimits(minValue *float64, maxValue *float64) error {
	if minValue != nil && maxValue != nil && *minValue > *maxValue {
		return fmt.Errorf("%w: min value (%v) cannot be greater than max value (%v)", ErrInvalidParameter, *minValue, *maxValue)
	}

	f.minValue = copyLimit(minValue)
	f.maxValue = copyLimit(maxValue)
	return nil
}

func copyLimit(limit *float64) *float64 {
	if limit == nil {
		return nil
	}
	v := *limit
	return &v
}

// Getters

// Returns the lower limit of the filter, nil if unbounded.
func (f *clipFilter) GetMinValue() *float64 {
	return copyLimit(f.minValue)
}

// Returns the upper limit of the filter, nil if unbounded.
func (f *clipFilter) GetMaxValue() *float64 {
	return copyLimit(f.maxValue)
}
