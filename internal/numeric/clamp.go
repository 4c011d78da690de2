package numeric

import "math/big"

// ClampFloat constrains v to [min, max]; Empty bounds are open. When min > max
// the result is max.
func ClampFloat(v float64, min, max Value) float64 {
	if lo, ok := min.toFloat(); ok && v < lo {
		v = lo
	}
	if hi, ok := max.toFloat(); ok && v > hi {
		v = hi
	}
	return v
}

// ClampBigInt constrains v to [min, max] using exact integer comparison and
// returns a new integer. Bounds that are not integers are ignored.
func ClampBigInt(v *big.Int, min, max Value) *big.Int {
	lo, hasMin := min.toBigInt()
	hi, hasMax := max.toBigInt()
	return clampBig(v, lo, hasMin, hi, hasMax)
}

func clampBig(v, lo *big.Int, hasMin bool, hi *big.Int, hasMax bool) *big.Int {
	out := new(big.Int).Set(v)
	if hasMin && out.Cmp(lo) < 0 {
		out.Set(lo)
	}
	if hasMax && out.Cmp(hi) > 0 {
		out.Set(hi)
	}
	return out
}

// Clamp constrains a resolved value to the configured range. Empty and Text
// values pass through untouched.
func Clamp(v Value, cfg Config) Value {
	switch v.Kind() {
	case KindFloat:
		f, _ := v.Float64()
		return Float(ClampFloat(f, cfg.Min, cfg.Max))
	case KindBigInt:
		return BigInt(ClampBigInt(v.i, cfg.Min, cfg.Max))
	default:
		return v
	}
}

// InRange reports whether a resolved value lies within [Min, Max].
func InRange(v Value, cfg Config) bool {
	switch v.Kind() {
	case KindFloat:
		f, _ := v.Float64()
		return floatInRange(f, cfg)
	case KindBigInt:
		return bigInRange(v.i, cfg)
	default:
		return true
	}
}

func floatInRange(f float64, cfg Config) bool {
	if lo, ok := cfg.floatMin(); ok && f < lo {
		return false
	}
	if hi, ok := cfg.floatMax(); ok && f > hi {
		return false
	}
	return true
}

func bigInRange(i *big.Int, cfg Config) bool {
	if lo, ok := cfg.bigMin(); ok && i.Cmp(lo) < 0 {
		return false
	}
	if hi, ok := cfg.bigMax(); ok && i.Cmp(hi) > 0 {
		return false
	}
	return true
}

// AtOrAboveMax reports whether v has reached the upper bound.
func AtOrAboveMax(v Value, cfg Config) bool {
	switch v.Kind() {
	case KindFloat:
		hi, ok := cfg.floatMax()
		return ok && v.f >= hi
	case KindBigInt:
		hi, ok := cfg.bigMax()
		return ok && v.i.Cmp(hi) >= 0
	default:
		return false
	}
}

// AtOrBelowMin reports whether v has reached the lower bound.
func AtOrBelowMin(v Value, cfg Config) bool {
	switch v.Kind() {
	case KindFloat:
		lo, ok := cfg.floatMin()
		return ok && v.f <= lo
	case KindBigInt:
		lo, ok := cfg.bigMin()
		return ok && v.i.Cmp(lo) <= 0
	default:
		return false
	}
}
