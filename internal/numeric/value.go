package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindEmpty means no value has been entered.
	KindEmpty Kind = iota
	// KindText is in-progress text that is not a complete number yet ("-", "1.", "5.0").
	KindText
	// KindFloat is a resolved fixed-precision number.
	KindFloat
	// KindBigInt is a resolved arbitrary-precision integer.
	KindBigInt
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindFloat:
		return "float"
	case KindBigInt:
		return "bigint"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the stored value of a numeric input. The zero Value is Empty.
type Value struct {
	kind Kind
	text string
	f    float64
	i    *big.Int
}

// Empty returns the empty value.
func Empty() Value {
	return Value{}
}

// Text returns a partial-text value. An empty string yields Empty.
func Text(s string) Value {
	if s == "" {
		return Empty()
	}
	return Value{kind: KindText, text: s}
}

// Float returns a resolved floating-point value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// BigInt returns a resolved big-integer value holding a copy of i.
// A nil i yields Empty.
func BigInt(i *big.Int) Value {
	if i == nil {
		return Empty()
	}
	return Value{kind: KindBigInt, i: new(big.Int).Set(i)}
}

// Int64 is shorthand for BigInt(big.NewInt(n)).
func Int64(n int64) Value {
	return Value{kind: KindBigInt, i: big.NewInt(n)}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether v holds no value.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// IsResolved reports whether v holds a number or an integer.
func (v Value) IsResolved() bool {
	return v.kind == KindFloat || v.kind == KindBigInt
}

// RawText returns the partial text held by v, or "" for other kinds.
func (v Value) RawText() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

// Float64 returns the number held by v. ok is false unless v is a Float.
func (v Value) Float64() (f float64, ok bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// Int returns a copy of the integer held by v, or nil unless v is a BigInt.
func (v Value) Int() *big.Int {
	if v.kind != KindBigInt {
		return nil
	}
	return new(big.Int).Set(v.i)
}

// String renders the value as plain numeric text: "" for Empty, the raw text
// for Text, JavaScript number formatting for Float and base-10 digits for BigInt.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindFloat:
		return FormatJS(v.f)
	case KindBigInt:
		return v.i.String()
	default:
		return ""
	}
}

// GoString makes test failures readable.
func (v Value) GoString() string {
	switch v.kind {
	case KindText:
		return fmt.Sprintf("Text(%q)", v.text)
	case KindFloat:
		return fmt.Sprintf("Float(%s)", FormatJS(v.f))
	case KindBigInt:
		return fmt.Sprintf("BigInt(%s)", v.i.String())
	default:
		return "Empty()"
	}
}

// Equal compares values: numerically for Float and BigInt, exactly for Text.
// Values of different kinds are never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(other.f) {
			return true
		}
		return v.f == other.f
	case KindBigInt:
		return v.i.Cmp(other.i) == 0
	default:
		return true
	}
}

// ParseValue converts configuration text to a Value for the given mode.
// Blank input yields Empty.
func ParseValue(s string, mode Mode) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty(), nil
	}

	if mode == ModeBigInt {
		i, ok := new(big.Int).SetString(strings.TrimPrefix(s, "+"), 10)
		if !ok {
			return Empty(), fmt.Errorf("%q is not an integer", s)
		}
		return BigInt(i), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Empty(), fmt.Errorf("%q is not a number: %w", s, err)
	}
	return Float(f), nil
}

// toFloat converts resolved values to float64, used for bounds and steps.
func (v Value) toFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		if math.IsNaN(v.f) {
			return 0, false
		}
		return v.f, true
	case KindBigInt:
		f, _ := new(big.Float).SetInt(v.i).Float64()
		return f, true
	default:
		return 0, false
	}
}

// toBigInt converts resolved values to an integer. Non-integral floats fail.
func (v Value) toBigInt() (*big.Int, bool) {
	switch v.kind {
	case KindBigInt:
		return new(big.Int).Set(v.i), true
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) || v.f != math.Trunc(v.f) {
			return nil, false
		}
		i, _ := new(big.Float).SetFloat64(v.f).Int(nil)
		return i, true
	default:
		return nil, false
	}
}
