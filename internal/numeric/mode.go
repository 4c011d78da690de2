package numeric

// Mode selects the arithmetic used by an input instance.
type Mode int

const (
	// ModeNumber stores resolved values as float64.
	ModeNumber Mode = iota
	// ModeBigInt stores resolved values as arbitrary-precision integers.
	ModeBigInt
)

func (m Mode) String() string {
	if m == ModeBigInt {
		return "bigint"
	}
	return "number"
}

// SelectMode picks the mode for a new instance: big-integer when either the
// controlled value or the default value is a BigInt.
func SelectMode(value, defaultValue Value) Mode {
	if value.Kind() == KindBigInt || defaultValue.Kind() == KindBigInt {
		return ModeBigInt
	}
	return ModeNumber
}

// ModeLatch caches the mode of one input instance. Text and Empty values never
// move it, and once it has seen a BigInt it stays in big-integer mode.
type ModeLatch struct {
	mode Mode
}

// NewModeLatch seeds the latch from the first observed values.
func NewModeLatch(value, defaultValue Value) ModeLatch {
	return ModeLatch{mode: SelectMode(value, defaultValue)}
}

// Mode returns the cached mode.
func (l ModeLatch) Mode() Mode {
	return l.mode
}

// Observe updates the latch from a newly supplied value and returns the mode.
func (l *ModeLatch) Observe(v Value) Mode {
	if v.Kind() == KindBigInt {
		l.mode = ModeBigInt
	}
	return l.mode
}

// Coerce adapts v to the latched mode so the stored value never holds a Float
// in big-integer mode. Integral floats become integers; anything else is kept
// as text for the sanitizer to deal with on the next edit.
func (l ModeLatch) Coerce(v Value) Value {
	if l.mode != ModeBigInt || v.Kind() != KindFloat {
		return v
	}
	if i, ok := v.toBigInt(); ok {
		return BigInt(i)
	}
	return Text(v.String())
}
