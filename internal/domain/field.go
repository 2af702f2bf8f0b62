package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxIntegerDigits is the integer digit limit when none is configured
	DefaultMaxIntegerDigits = 15
	// DefaultMaxDecimalDigits is the fraction digit limit when none is configured
	DefaultMaxDecimalDigits = 15
	// DefaultLocale selects grouping and decimal symbols when none is configured
	DefaultLocale = "en"
)

// FieldConfig describes a masked decimal field. It is fixed once a field is built.
type FieldConfig struct {
	Name             string  `yaml:"name,omitempty" json:"name,omitempty" mapstructure:"name"`
	Prefix           string  `yaml:"prefix,omitempty" json:"prefix,omitempty" mapstructure:"prefix"`
	Suffix           string  `yaml:"suffix,omitempty" json:"suffix,omitempty" mapstructure:"suffix"`
	MaxValue         float64 `yaml:"max_value,omitempty" json:"max_value,omitempty" mapstructure:"max_value"`
	MaxIntegerDigits int     `yaml:"max_integer_digits,omitempty" json:"max_integer_digits,omitempty" mapstructure:"max_integer_digits"`
	MaxDecimalDigits int     `yaml:"max_decimal_digits" json:"max_decimal_digits" mapstructure:"max_decimal_digits"`
	// Hint is shown instead of "0" when the field holds no value
	Hint   string `yaml:"hint,omitempty" json:"hint,omitempty" mapstructure:"hint"`
	Locale string `yaml:"locale,omitempty" json:"locale,omitempty" mapstructure:"locale"`

	// the *Set flags distinguish an explicit zero from an omitted value
	maxValueSet      bool
	integerDigitsSet bool
	decimalDigitsSet bool
}

// NewFieldConfig returns a config with every limit at its default.
func NewFieldConfig() FieldConfig {
	return FieldConfig{
		MaxValue:         math.MaxFloat64,
		MaxIntegerDigits: DefaultMaxIntegerDigits,
		MaxDecimalDigits: DefaultMaxDecimalDigits,
		Locale:           DefaultLocale,
		maxValueSet:      true,
		integerDigitsSet: true,
		decimalDigitsSet: true,
	}
}

// WithMaxValue returns a copy of fc with an explicit max value. Zero is kept
// as a real ceiling.
func (fc FieldConfig) WithMaxValue(v float64) FieldConfig {
	fc.MaxValue = v
	fc.maxValueSet = true
	return fc
}

// WithIntegerDigits returns a copy of fc with an explicit integer digit limit.
func (fc FieldConfig) WithIntegerDigits(n int) FieldConfig {
	fc.MaxIntegerDigits = n
	fc.integerDigitsSet = true
	return fc
}

// WithDecimalDigits returns a copy of fc with an explicit fraction digit limit.
func (fc FieldConfig) WithDecimalDigits(n int) FieldConfig {
	fc.MaxDecimalDigits = n
	fc.decimalDigitsSet = true
	return fc
}

// WithDefaults fills unset limits. A zero limit is only replaced when it was
// never set explicitly.
func (fc FieldConfig) WithDefaults() FieldConfig {
	if fc.MaxValue == 0 && !fc.maxValueSet {
		fc.MaxValue = math.MaxFloat64
	}
	if fc.MaxIntegerDigits == 0 && !fc.integerDigitsSet {
		fc.MaxIntegerDigits = DefaultMaxIntegerDigits
	}
	if fc.MaxDecimalDigits == 0 && !fc.decimalDigitsSet {
		fc.MaxDecimalDigits = DefaultMaxDecimalDigits
	}
	if strings.TrimSpace(fc.Locale) == "" {
		fc.Locale = DefaultLocale
	}
	fc.maxValueSet, fc.integerDigitsSet, fc.decimalDigitsSet = true, true, true
	return fc
}

// Validate checks the digit limits and the max value. A negative max value
// is allowed: every typed value is then rolled back.
func (fc FieldConfig) Validate() error {
	if fc.MaxIntegerDigits < 1 {
		return fmt.Errorf("max integer digits must be at least 1, got %d", fc.MaxIntegerDigits)
	}
	if fc.MaxDecimalDigits < 0 {
		return fmt.Errorf("max decimal digits cannot be negative, got %d", fc.MaxDecimalDigits)
	}
	if math.IsNaN(fc.MaxValue) {
		return fmt.Errorf("max value must be a number")
	}
	return nil
}

// HasHint reports whether an empty field renders blank instead of zero.
func (fc FieldConfig) HasHint() bool { return fc.Hint != "" }

// UnmarshalYAML accepts max_value as a number or as the word "max", and keeps
// track of which limits were present.
func (fc *FieldConfig) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Name             string  `yaml:"name"`
		Prefix           string  `yaml:"prefix"`
		Suffix           string  `yaml:"suffix"`
		MaxValue         *string `yaml:"max_value"`
		MaxIntegerDigits *int    `yaml:"max_integer_digits"`
		MaxDecimalDigits *int    `yaml:"max_decimal_digits"`
		Hint             string  `yaml:"hint"`
		Locale           string  `yaml:"locale"`
	}

	var alias Alias
	if err := value.Decode(&alias); err != nil {
		return err
	}

	*fc = FieldConfig{
		Name:   alias.Name,
		Prefix: alias.Prefix,
		Suffix: alias.Suffix,
		Hint:   alias.Hint,
		Locale: alias.Locale,
	}
	if alias.MaxValue != nil {
		maxValue, err := ParseMaxValue(*alias.MaxValue)
		if err != nil {
			return fmt.Errorf("invalid max_value: %w", err)
		}
		fc.MaxValue = maxValue
		fc.maxValueSet = true
	}
	if alias.MaxIntegerDigits != nil {
		fc.MaxIntegerDigits = *alias.MaxIntegerDigits
		fc.integerDigitsSet = true
	}
	if alias.MaxDecimalDigits != nil {
		fc.MaxDecimalDigits = *alias.MaxDecimalDigits
		fc.decimalDigitsSet = true
	}
	return nil
}

// ParseMaxValue reads a max value setting. Empty and "max" mean unbounded.
func ParseMaxValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "max":
		return math.MaxFloat64, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64, nil
	case math.IsInf(v, -1):
		return -math.MaxFloat64, nil
	}
	return v, nil
}

// FieldSet is a named collection of fields, as loaded from a fields file.
type FieldSet struct {
	Title  string        `yaml:"title,omitempty" json:"title,omitempty"`
	Fields []FieldConfig `yaml:"fields" json:"fields"`
}
