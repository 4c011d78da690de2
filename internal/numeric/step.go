package numeric

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Direction is the sense of a step.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "up"
}

// StepResult describes the outcome of one increment or decrement.
type StepResult struct {
	// Applied is false when the current value could not be stepped.
	Applied bool
	// Value is the new, already clamped, stored value.
	Value Value
	// Values carries the numeric and fixed-precision text forms for listeners.
	Values FormatValues
	// MinReached and MaxReached report that the unclamped result crossed a bound.
	MinReached bool
	MaxReached bool
}

// Increment steps current up by cfg.Step.
func Increment(current Value, cfg Config, mode Mode) StepResult {
	return Step(current, DirectionUp, cfg, mode)
}

// Decrement steps current down by cfg.Step.
func Decrement(current Value, cfg Config, mode Mode) StepResult {
	return Step(current, DirectionDown, cfg, mode)
}

// Step moves current one step in dir.
func Step(current Value, dir Direction, cfg Config, mode Mode) StepResult {
	if mode == ModeBigInt {
		return stepBigInt(current, dir, cfg)
	}
	return stepFloat(current, dir, cfg)
}

// CanStep reports whether current is steppable in dir.
func CanStep(current Value, dir Direction, cfg Config, mode Mode) bool {
	if mode == ModeBigInt {
		_, _, ok := bigOperand(current)
		return ok
	}
	return canStepFloat(current, dir)
}

func canStepFloat(current Value, dir Direction) bool {
	within := func(f float64) bool {
		if dir == DirectionUp {
			return f < MaxSafeInteger
		}
		return f > MinSafeInteger
	}

	switch current.Kind() {
	case KindEmpty:
		return true
	case KindFloat:
		return within(current.f)
	case KindText:
		if !isNumberString(current.text) {
			return false
		}
		f, _ := parseNumberString(current.text)
		return within(f)
	default:
		return false
	}
}

// floatOperand returns the number to step from, if current holds one.
func floatOperand(current Value) (float64, bool) {
	switch current.Kind() {
	case KindFloat:
		if math.IsNaN(current.f) {
			return 0, false
		}
		return current.f, true
	case KindText:
		if !isNumberString(current.text) {
			return 0, false
		}
		return parseNumberString(current.text)
	default:
		return 0, false
	}
}

func stepFloat(current Value, dir Direction, cfg Config) StepResult {
	if !canStepFloat(current, dir) {
		return StepResult{}
	}

	step := cfg.floatStep()
	precision := max(decimalPlaces(current.String()), decimalPlaces(FormatJS(step)))

	minBound := cfg.Min
	if dir == DirectionDown && minBound.IsEmpty() {
		if cfg.AllowNegative {
			minBound = Float(MinSafeInteger)
		} else {
			minBound = Float(0)
		}
	}

	res := StepResult{Applied: true}
	var next float64

	cur, ok := floatOperand(current)
	if !ok {
		next = ClampFloat(cfg.floatStart(), minBound, cfg.Max)
	} else {
		next = scaledStep(cur, step, precision, dir)
		switch dir {
		case DirectionUp:
			if hi, ok := cfg.floatMax(); ok && next > hi {
				next = hi
				res.MaxReached = true
			}
		case DirectionDown:
			if lo, ok := minBound.toFloat(); ok && next < lo {
				next = lo
				res.MinReached = true
			}
		}
	}

	// A clamped bound or a start value may carry more decimals than the step.
	precision = max(precision, decimalPlaces(FormatJS(next)))
	formatted := toFixed(next, precision)
	f, err := strconv.ParseFloat(formatted, 64)
	if err != nil {
		return StepResult{}
	}

	res.Value = Float(f)
	res.Values = FormatValues{Value: formatted, FormattedValue: formatted, FloatValue: &f}
	return res
}

// scaledStep adds or subtracts step on integers scaled by 10^precision so the
// result carries no binary floating-point drift.
func scaledStep(cur, step float64, precision int, dir Direction) float64 {
	exp := int32(precision)
	scaledCur := decimal.NewFromFloat(cur).Shift(exp).Round(0)
	scaledBy := decimal.NewFromFloat(step).Shift(exp).Round(0)

	var sum decimal.Decimal
	if dir == DirectionUp {
		sum = scaledCur.Add(scaledBy)
	} else {
		sum = scaledCur.Sub(scaledBy)
	}
	f, _ := sum.Shift(-exp).Float64()
	return f
}

// bigOperand extracts the integer to step from. hasValue is false for empty
// input or a bare sign, which step from the start value; ok is false for
// malformed text, which cannot be stepped at all.
func bigOperand(current Value) (i *big.Int, hasValue, ok bool) {
	switch current.Kind() {
	case KindEmpty:
		return nil, false, true
	case KindBigInt:
		return current.Int(), true, true
	case KindText:
		if current.text == "-" {
			return nil, false, true
		}
		if !bigIntPattern.MatchString(current.text) {
			return nil, false, false
		}
		i, ok := new(big.Int).SetString(current.text, 10)
		if !ok {
			return nil, false, false
		}
		return i, true, true
	default:
		return nil, false, false
	}
}

func stepBigInt(current Value, dir Direction, cfg Config) StepResult {
	cur, hasValue, ok := bigOperand(current)
	if !ok {
		return StepResult{}
	}

	lo, hasMin := cfg.bigMin()
	if !hasMin && !cfg.AllowNegative {
		lo, hasMin = new(big.Int), true
	}
	hi, hasMax := cfg.bigMax()

	res := StepResult{Applied: true}
	var next *big.Int

	if !hasValue {
		next = clampBig(cfg.bigStart(), lo, hasMin, hi, hasMax)
	} else {
		step := cfg.bigStep()
		next = new(big.Int)
		switch dir {
		case DirectionUp:
			next.Add(cur, step)
			if hasMax && next.Cmp(hi) > 0 {
				next.Set(hi)
				res.MaxReached = true
			}
		case DirectionDown:
			next.Sub(cur, step)
			if hasMin && next.Cmp(lo) < 0 {
				next.Set(lo)
				res.MinReached = true
			}
		}
	}

	text := next.String()
	res.Value = BigInt(next)
	res.Values = FormatValues{Value: text, FormattedValue: text}
	return res
}
