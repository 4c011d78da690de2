package numeric

import (
	"math"
	"strings"
	"unicode/utf8"
)

// FormatValues is the parse result handed to the sanitizer for each edit.
type FormatValues struct {
	// Value is the bare numeric string: optional '-', digits, optional '.' and fraction.
	Value string
	// FormattedValue is Value rendered with grouping, prefix and suffix.
	FormattedValue string
	// FloatValue is parseFloat(Value), nil when that is NaN.
	FloatValue *float64
}

// Float returns the parsed float, if any.
func (fv FormatValues) Float() (float64, bool) {
	if fv.FloatValue == nil {
		return 0, false
	}
	return *fv.FloatValue, true
}

// ParseInput turns the text shown in the field into FormatValues. Formatting
// characters are stripped, characters the configuration does not allow are
// dropped and the fraction is cut to DecimalScale. Without decimals the
// fraction is dropped entirely.
func ParseInput(display string, cfg Config, mode Mode) FormatValues {
	s := display
	if cfg.Prefix != "" {
		s = strings.TrimPrefix(s, cfg.Prefix)
	}
	if cfg.Suffix != "" {
		s = strings.TrimSuffix(s, cfg.Suffix)
	}
	if cfg.ThousandSeparator != "" && cfg.ThousandSeparator != cfg.decimalSeparator() {
		s = strings.ReplaceAll(s, cfg.ThousandSeparator, "")
	}

	sep := cfg.decimalSeparator()
	allowDecimal := cfg.AllowDecimal && mode == ModeNumber && cfg.DecimalScale != 0

	var (
		b           strings.Builder
		negations   int
		started     bool
		seenDecimal bool
		fraction    int
	)
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], sep) {
			if !seenDecimal {
				seenDecimal = true
				if allowDecimal {
					b.WriteByte('.')
				}
			}
			started = true
			i += len(sep)
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == '-':
			if !started {
				negations++
			}
		case r >= '0' && r <= '9':
			started = true
			if seenDecimal {
				if !allowDecimal || (cfg.DecimalScale >= 0 && fraction >= cfg.DecimalScale) {
					continue
				}
				fraction++
			}
			b.WriteRune(r)
		}
	}

	value := b.String()
	if negations%2 == 1 && cfg.AllowNegative {
		value = "-" + value
	}

	values := FormatValues{
		Value:          value,
		FormattedValue: formatNumeric(value, cfg, false),
	}
	if f := parseFloatPrefix(value); !math.IsNaN(f) {
		values.FloatValue = &f
	}
	return values
}

// DisplayText renders a stored value the way the field shows it.
func DisplayText(v Value, cfg Config) string {
	switch v.Kind() {
	case KindEmpty:
		return ""
	case KindFloat:
		f, _ := v.Float64()
		text := FormatJS(f)
		if math.Abs(f) >= 1e21 || (f != 0 && math.Abs(f) < 1e-6) {
			// Exponent notation has no sensible grouping; show it bare.
			return cfg.Prefix + text + cfg.Suffix
		}
		return formatNumeric(text, cfg, cfg.FixedDecimalScale)
	default:
		return formatNumeric(v.String(), cfg, false)
	}
}

// formatNumeric renders a bare numeric string with the configured decoration.
// pad extends the fraction with zeros up to DecimalScale.
func formatNumeric(value string, cfg Config, pad bool) string {
	if value == "" {
		return ""
	}

	negative := strings.HasPrefix(value, "-")
	body := strings.TrimPrefix(value, "-")
	intPart, frac, hasFrac := strings.Cut(body, ".")

	if pad && cfg.DecimalScale > 0 && len(frac) < cfg.DecimalScale {
		frac += strings.Repeat("0", cfg.DecimalScale-len(frac))
		hasFrac = true
	}

	var b strings.Builder
	b.WriteString(cfg.Prefix)
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart, cfg.ThousandSeparator))
	if hasFrac {
		b.WriteString(cfg.decimalSeparator())
		b.WriteString(frac)
	}
	b.WriteString(cfg.Suffix)
	return b.String()
}

func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ValuesOf builds the notification payload for a stored value.
func ValuesOf(v Value, cfg Config) FormatValues {
	values := FormatValues{Value: v.String(), FormattedValue: DisplayText(v, cfg)}
	if f, ok := v.Float64(); ok {
		values.FloatValue = &f
	} else if v.Kind() == KindText {
		if f := parseFloatPrefix(v.String()); !math.IsNaN(f) {
			values.FloatValue = &f
		}
	}
	return values
}
