package numeric

import "math/big"

// AllowEntry decides whether a keystroke may reach the sanitizer at all. The
// external IsAllowed validator runs first; in strict clamp mode any complete
// value outside [Min, Max] is rejected.
func AllowEntry(values FormatValues, cfg Config, mode Mode) bool {
	if cfg.IsAllowed != nil && !cfg.IsAllowed(values) {
		return false
	}
	if cfg.ClampBehavior != ClampStrict {
		return true
	}

	if mode == ModeBigInt {
		text := values.Value
		// Keep typing possible: a lone sign or an empty field is never final.
		if text == "" || text == "-" || !bigIntPattern.MatchString(text) {
			return true
		}
		i, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return true
		}
		return bigInRange(i, cfg)
	}

	f, ok := values.Float()
	if !ok {
		return true
	}
	return floatInRange(f, cfg)
}
