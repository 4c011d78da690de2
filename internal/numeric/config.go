package numeric

import (
	"math"
	"math/big"
	"time"
)

// ClampBehavior controls when out-of-range values are corrected.
type ClampBehavior string

const (
	// ClampStrict rejects keystrokes that would leave [Min, Max].
	ClampStrict ClampBehavior = "strict"
	// ClampBlur clamps resolved values when the field loses focus.
	ClampBlur ClampBehavior = "blur"
	// ClampNone never clamps typed values.
	ClampNone ClampBehavior = "none"
)

// NoDecimalScale leaves the number of fractional digits unlimited.
const NoDecimalScale = -1

// HoldInterval returns the delay before the next repeated step of a held
// control, given how many steps the session has already taken.
type HoldInterval func(stepCount int) time.Duration

// ConstantInterval repeats at a fixed rate.
func ConstantInterval(d time.Duration) HoldInterval {
	return func(int) time.Duration { return d }
}

// AcceleratingInterval starts at start and multiplies by factor on every
// step, never dropping below floor.
func AcceleratingInterval(start, floor time.Duration, factor float64) HoldInterval {
	return func(stepCount int) time.Duration {
		d := time.Duration(float64(start) * math.Pow(factor, float64(stepCount)))
		if d < floor {
			return floor
		}
		return d
	}
}

// Config holds the per-render settings of a numeric input. Use DefaultConfig
// as the starting point; the zero Config disables most features.
type Config struct {
	// Min and Max bound the value; Empty means unbounded.
	Min Value
	Max Value
	// Step is the increment size; Empty means 1.
	Step Value
	// StartValue is used when stepping from an empty or unparseable value; Empty means 0.
	StartValue Value

	AllowNegative           bool
	AllowDecimal            bool
	AllowLeadingZeros       bool
	TrimLeadingZeroesOnBlur bool
	ClampBehavior           ClampBehavior
	// DecimalScale caps fractional digits; NoDecimalScale leaves them unlimited.
	DecimalScale int

	Prefix            string
	Suffix            string
	DecimalSeparator  string
	ThousandSeparator string
	FixedDecimalScale bool

	// StepHoldDelay and StepHoldInterval enable repeat-on-hold when both are set.
	StepHoldDelay    time.Duration
	StepHoldInterval HoldInterval

	KeyboardStepping bool
	ReadOnly         bool
	Disabled         bool
	SelectAllOnFocus bool

	// IsAllowed vetoes keystrokes before any other rule runs.
	IsAllowed func(FormatValues) bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		AllowNegative:           true,
		AllowDecimal:            true,
		AllowLeadingZeros:       true,
		TrimLeadingZeroesOnBlur: true,
		ClampBehavior:           ClampBlur,
		DecimalScale:            NoDecimalScale,
		DecimalSeparator:        ".",
		KeyboardStepping:        true,
	}
}

// HoldEnabled reports whether held step controls repeat.
func (c Config) HoldEnabled() bool {
	return c.StepHoldDelay > 0 && c.StepHoldInterval != nil
}

func (c Config) decimalSeparator() string {
	if c.DecimalSeparator == "" {
		return "."
	}
	return c.DecimalSeparator
}

func (c Config) floatMin() (float64, bool) { return c.Min.toFloat() }
func (c Config) floatMax() (float64, bool) { return c.Max.toFloat() }

func (c Config) floatStep() float64 {
	if f, ok := c.Step.toFloat(); ok && !math.IsInf(f, 0) {
		return f
	}
	return 1
}

func (c Config) floatStart() float64 {
	if f, ok := c.StartValue.toFloat(); ok {
		return f
	}
	return 0
}

func (c Config) bigMin() (*big.Int, bool) { return c.Min.toBigInt() }
func (c Config) bigMax() (*big.Int, bool) { return c.Max.toBigInt() }

func (c Config) bigStep() *big.Int {
	if i, ok := c.Step.toBigInt(); ok {
		return i
	}
	return big.NewInt(1)
}

func (c Config) bigStart() *big.Int {
	if i, ok := c.StartValue.toBigInt(); ok {
		return i
	}
	return new(big.Int)
}
