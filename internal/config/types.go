package config

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/numinput/internal/numeric"
	numerrors "github.com/alexisbeaulieu97/numinput/pkg/errors"
)

// Document is a YAML file describing a set of numeric fields.
type Document struct {
	Version     string  `yaml:"version" validate:"required,semver"`
	Name        string  `yaml:"name" validate:"required,min=1,max=100"`
	Description string  `yaml:"description,omitempty"`
	Fields      []Field `yaml:"fields" validate:"required,min=1,dive"`
}

// Field describes one numeric input. Unset booleans take the engine defaults.
type Field struct {
	Name  string `yaml:"name" validate:"required,field_name"`
	Label string `yaml:"label,omitempty" validate:"max=80"`
	Mode  string `yaml:"mode,omitempty" validate:"omitempty,oneof=number bigint"`

	Value        Number `yaml:"value,omitempty"`
	DefaultValue Number `yaml:"default_value,omitempty"`
	Min          Number `yaml:"min,omitempty"`
	Max          Number `yaml:"max,omitempty"`
	Step         Number `yaml:"step,omitempty"`
	StartValue   Number `yaml:"start_value,omitempty"`

	AllowNegative           *bool  `yaml:"allow_negative,omitempty"`
	AllowDecimal            *bool  `yaml:"allow_decimal,omitempty"`
	AllowLeadingZeros       *bool  `yaml:"allow_leading_zeros,omitempty"`
	TrimLeadingZeroesOnBlur *bool  `yaml:"trim_leading_zeroes_on_blur,omitempty"`
	ClampBehavior           string `yaml:"clamp_behavior,omitempty" validate:"omitempty,oneof=strict blur none"`
	DecimalScale            *int   `yaml:"decimal_scale,omitempty" validate:"omitempty,min=0,max=100"`

	Prefix            string `yaml:"prefix,omitempty" validate:"max=16"`
	Suffix            string `yaml:"suffix,omitempty" validate:"max=16"`
	DecimalSeparator  string `yaml:"decimal_separator,omitempty" validate:"max=4"`
	ThousandSeparator string `yaml:"thousand_separator,omitempty" validate:"max=4"`
	FixedDecimalScale bool   `yaml:"fixed_decimal_scale,omitempty"`

	StepHoldDelay        Duration `yaml:"step_hold_delay,omitempty" validate:"min=0"`
	StepHoldInterval     Duration `yaml:"step_hold_interval,omitempty" validate:"min=0"`
	StepHoldAcceleration float64  `yaml:"step_hold_acceleration,omitempty" validate:"omitempty,gt=0,lte=1"`
	StepHoldMinInterval  Duration `yaml:"step_hold_min_interval,omitempty" validate:"min=0"`

	KeyboardStepping *bool `yaml:"keyboard_stepping,omitempty"`
	ReadOnly         bool  `yaml:"read_only,omitempty"`
	Disabled         bool  `yaml:"disabled,omitempty"`
	SelectAllOnFocus bool  `yaml:"select_all_on_focus,omitempty"`
}

// Number is a numeric scalar kept as written so that big integers keep every digit.
type Number string

// UnmarshalYAML accepts any scalar.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	if node.Tag == "!!null" {
		*n = ""
		return nil
	}
	*n = Number(node.Value)
	return nil
}

// Duration accepts Go duration strings ("150ms") or integer milliseconds.
type Duration time.Duration

// UnmarshalYAML parses the duration scalar.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a duration", node.Line)
	}
	if ms, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", node.Line, node.Value)
	}
	*d = Duration(parsed)
	return nil
}

// Field returns the field with the given name.
func (d *Document) Field(name string) (*Field, error) {
	if d != nil {
		for i := range d.Fields {
			if d.Fields[i].Name == name {
				return &d.Fields[i], nil
			}
		}
	}
	return nil, numerrors.NewNotFoundError("field", name)
}

// Names lists the field names in document order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

// NumericMode is the arithmetic mode the field's numbers are parsed in.
func (f Field) NumericMode() numeric.Mode {
	if f.Mode == "bigint" {
		return numeric.ModeBigInt
	}
	return numeric.ModeNumber
}

// DisplayLabel returns the label, falling back to the name.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// NumericConfig converts the field into an engine configuration.
func (f Field) NumericConfig() (numeric.Config, error) {
	cfg := numeric.DefaultConfig()
	mode := f.NumericMode()

	bounds := []struct {
		name string
		raw  Number
		dst  *numeric.Value
	}{
		{"min", f.Min, &cfg.Min},
		{"max", f.Max, &cfg.Max},
		{"step", f.Step, &cfg.Step},
		{"start_value", f.StartValue, &cfg.StartValue},
	}
	for _, b := range bounds {
		v, err := numeric.ParseValue(string(b.raw), mode)
		if err != nil {
			return numeric.Config{}, numerrors.NewValidationError(fieldPath(f.Name, b.name), err.Error(), err)
		}
		*b.dst = v
	}

	setBool(&cfg.AllowNegative, f.AllowNegative)
	setBool(&cfg.AllowDecimal, f.AllowDecimal)
	setBool(&cfg.AllowLeadingZeros, f.AllowLeadingZeros)
	setBool(&cfg.TrimLeadingZeroesOnBlur, f.TrimLeadingZeroesOnBlur)
	setBool(&cfg.KeyboardStepping, f.KeyboardStepping)

	if f.ClampBehavior != "" {
		cfg.ClampBehavior = numeric.ClampBehavior(f.ClampBehavior)
	}
	if f.DecimalScale != nil {
		cfg.DecimalScale = *f.DecimalScale
	}

	cfg.Prefix = f.Prefix
	cfg.Suffix = f.Suffix
	if f.DecimalSeparator != "" {
		cfg.DecimalSeparator = f.DecimalSeparator
	}
	cfg.ThousandSeparator = f.ThousandSeparator
	cfg.FixedDecimalScale = f.FixedDecimalScale

	cfg.StepHoldDelay = time.Duration(f.StepHoldDelay)
	cfg.StepHoldInterval = f.holdInterval()

	cfg.ReadOnly = f.ReadOnly
	cfg.Disabled = f.Disabled
	cfg.SelectAllOnFocus = f.SelectAllOnFocus
	return cfg, nil
}

// InitialValues parses value and default_value. controlled is true when
// value is set.
func (f Field) InitialValues() (value, defaultValue numeric.Value, controlled bool, err error) {
	mode := f.NumericMode()
	value, err = numeric.ParseValue(string(f.Value), mode)
	if err != nil {
		return value, defaultValue, false, numerrors.NewValidationError(fieldPath(f.Name, "value"), err.Error(), err)
	}
	defaultValue, err = numeric.ParseValue(string(f.DefaultValue), mode)
	if err != nil {
		return value, defaultValue, false, numerrors.NewValidationError(fieldPath(f.Name, "default_value"), err.Error(), err)
	}
	return value, defaultValue, f.Value != "", nil
}

func (f Field) holdInterval() numeric.HoldInterval {
	base := time.Duration(f.StepHoldInterval)
	if base <= 0 {
		return nil
	}
	if f.StepHoldAcceleration <= 0 || f.StepHoldAcceleration >= 1 {
		return numeric.ConstantInterval(base)
	}
	floor := time.Duration(f.StepHoldMinInterval)
	if floor <= 0 {
		floor = base / 4
	}
	return numeric.AcceleratingInterval(base, floor, f.StepHoldAcceleration)
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
