package numeric

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxSafeInteger is the largest integer a float64 represents without gaps (2^53 - 1).
const MaxSafeInteger = 1<<53 - 1

// MinSafeInteger is the negation of MaxSafeInteger.
const MinSafeInteger = -MaxSafeInteger

var (
	decimalPlacesPattern = regexp.MustCompile(`(?:\.(\d+))?(?:[eE]([+-]?\d+))?$`)
	floatPrefixPattern   = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	numberLiteralPattern = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)$`)
)

// FormatJS renders f with the ECMAScript Number::toString rules: shortest
// round-trip digits, plain notation for exponents in [-7, 21), exponent
// notation otherwise.
func FormatJS(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
		f = -f
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(exponent)
	k := len(digits)
	n := exp + 1

	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(n - 1))
	}
	return b.String()
}

// decimalPlaces counts fractional digits in numeric text, accounting for an
// exponent suffix ("1.5e-7" has 8).
func decimalPlaces(s string) int {
	m := decimalPlacesPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	places := len(m[1])
	if m[2] != "" {
		exp, err := strconv.Atoi(m[2])
		if err == nil {
			places -= exp
		}
	}
	if places < 0 {
		return 0
	}
	return places
}

// parseFloatPrefix mirrors JavaScript parseFloat: the longest numeric prefix
// of s is parsed and NaN is returned when there is none.
func parseFloatPrefix(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")
	lit := floatPrefixPattern.FindString(s)
	if lit == "" {
		return math.NaN()
	}
	return parseLiteral(lit)
}

// parseNumberString mirrors JavaScript Number(s) for decimal literals.
// ok is false for anything Number would turn into NaN.
func parseNumberString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if !numberLiteralPattern.MatchString(s) {
		return 0, false
	}
	return parseLiteral(s), true
}

// isNumberString reports whether s is non-empty text that converts to a number.
func isNumberString(s string) bool {
	if s == "" {
		return false
	}
	_, ok := parseNumberString(s)
	return ok
}

func parseLiteral(lit string) float64 {
	f, err := strconv.ParseFloat(lit, 64)
	// Overflow comes back as a signed infinity, which is what JavaScript yields too.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// toFixed formats f with exactly precision fractional digits.
func toFixed(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}
