package numeric

import (
	"math"
	"math/big"
	"regexp"
)

// maxTotalDigits is the digit count from which typed text is no longer
// trusted to survive a float64 round trip.
const maxTotalDigits = 14

var (
	leadingDecimalZeroPattern = regexp.MustCompile(`^(0\.0*|-0(\.0*)?)$`)
	leadingZerosPattern       = regexp.MustCompile(`^-?0\d+(\.\d+)?\.?$`)
	trailingZerosPattern      = regexp.MustCompile(`\.\d*0$`)
	bigIntPattern             = regexp.MustCompile(`^-?\d+$`)
	bigIntLeadingZerosPattern = regexp.MustCompile(`^-?0+\d`)
)

// Sanitize decides what a keystroke stores: a resolved number when the text
// is a complete, safe number, otherwise the raw text so the next keystroke
// can continue from it.
func Sanitize(values FormatValues, cfg Config, mode Mode) Value {
	if mode == ModeBigInt {
		return sanitizeBigInt(values.Value, cfg)
	}
	return sanitizeFloat(values, cfg)
}

func sanitizeFloat(values FormatValues, cfg Config) Value {
	text := values.Value
	f, ok := values.Float()
	switch {
	case !ok || math.IsNaN(f) || math.IsInf(f, 0):
	case math.Abs(f) >= MaxSafeInteger:
	case totalDigits(text) >= maxTotalDigits:
	case text == "":
	case leadingDecimalZeroPattern.MatchString(text):
	case !cfg.AllowLeadingZeros && leadingZerosPattern.MatchString(text):
	case trailingZerosPattern.MatchString(text):
	case text[len(text)-1] == '.':
	default:
		return Float(f)
	}
	return Text(text)
}

func sanitizeBigInt(text string, cfg Config) Value {
	if !IsValidBigIntString(text, cfg.AllowNegative) {
		return Text(text)
	}
	if !cfg.AllowLeadingZeros && bigIntLeadingZerosPattern.MatchString(text) {
		return Text(text)
	}
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return Text(text)
	}
	return BigInt(i)
}

// IsValidBigIntString reports whether text is a complete integer literal the
// configuration accepts.
func IsValidBigIntString(text string, allowNegative bool) bool {
	if text == "" || text == "-" || !bigIntPattern.MatchString(text) {
		return false
	}
	return allowNegative || text[0] != '-'
}

// totalDigits counts significant digits, ignoring zeros that lead the integer part.
func totalDigits(text string) int {
	count := 0
	leading := true
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '.':
			leading = false
		case c >= '0' && c <= '9':
			if leading && c == '0' {
				continue
			}
			leading = false
			count++
		}
	}
	return count
}
