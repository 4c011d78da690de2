package numeric

import (
	"math"
	"math/big"
	"strings"
)

// maxTrimPrecision is the fractional precision from which parseFloat can no
// longer be trusted to keep the typed digits.
const maxTrimPrecision = 15

// NormalizeOnBlur computes the value to store when the field loses focus.
// changed reports whether it differs from current.
func NormalizeOnBlur(current Value, cfg Config, mode Mode) (next Value, changed bool) {
	next = current

	if cfg.ClampBehavior == ClampBlur && next.IsResolved() {
		next = Clamp(next, cfg)
	}

	if cfg.TrimLeadingZeroesOnBlur && next.Kind() == KindText {
		if mode == ModeBigInt {
			next = normalizeBigIntText(next.text, cfg)
		} else if decimalPlaces(next.text) < maxTrimPrecision {
			next = normalizeFloatText(next.text, cfg)
		}
	}

	return next, !next.Equal(current)
}

func normalizeFloatText(text string, cfg Config) Value {
	stripped := StripLeadingZeros(text)
	f := parseFloatPrefix(stripped)
	if math.IsNaN(f) || f > MaxSafeInteger {
		return Text(stripped)
	}
	return Float(ClampFloat(f, cfg.Min, cfg.Max))
}

func normalizeBigIntText(text string, cfg Config) Value {
	stripped := StripLeadingZeros(text)
	if !IsValidBigIntString(stripped, cfg.AllowNegative) {
		return Text(stripped)
	}
	i, ok := new(big.Int).SetString(stripped, 10)
	if !ok {
		return Text(stripped)
	}
	return BigInt(ClampBigInt(i, cfg.Min, cfg.Max))
}

// StripLeadingZeros removes redundant zeros in front of the integer part,
// keeping the sign and a single zero before a decimal point or when the
// integer part is all zeros ("00100" -> "100", "-007" -> "-7", "00.5" -> "0.5").
func StripLeadingZeros(text string) string {
	negative := strings.HasPrefix(text, "-")
	body := strings.TrimPrefix(text, "-")

	trimmed := strings.TrimLeft(body, "0")
	if trimmed != body && (trimmed == "" || trimmed[0] == '.') {
		trimmed = "0" + trimmed
	}

	if negative {
		return "-" + trimmed
	}
	return trimmed
}
