package config

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/numinput/internal/numeric"
	numerrors "github.com/alexisbeaulieu97/numinput/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation on a field document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return numerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Fields))
	for i, field := range doc.Fields {
		if first, exists := seen[field.Name]; exists {
			return numerrors.NewValidationError(fieldForIndex(i, "name"), fmt.Sprintf("duplicate field name %q (first defined at index %d)", field.Name, first), nil)
		}
		seen[field.Name] = i

		if err := ValidateField(field); err != nil {
			return err
		}
	}

	return nil
}

// ValidateField checks a single field independent of the rest of the document.
func ValidateField(field Field) error {
	v := validatorInstance()
	if err := v.Struct(field); err != nil {
		return convertValidationError(err)
	}

	cfg, err := field.NumericConfig()
	if err != nil {
		return err
	}
	if _, _, _, err := field.InitialValues(); err != nil {
		return err
	}

	if !cfg.Min.IsEmpty() && !cfg.Max.IsEmpty() && !numeric.InRange(cfg.Min, numeric.Config{Max: cfg.Max}) {
		return numerrors.NewValidationError(fieldPath(field.Name, "min"), fmt.Sprintf("min %s exceeds max %s", cfg.Min, cfg.Max), nil)
	}

	if !cfg.Step.IsEmpty() && !isPositive(cfg.Step) {
		return numerrors.NewValidationError(fieldPath(field.Name, "step"), "step must be positive", nil)
	}

	if field.StepHoldInterval > 0 && field.StepHoldDelay <= 0 {
		return numerrors.NewValidationError(fieldPath(field.Name, "step_hold_interval"), "requires step_hold_delay", nil)
	}

	if field.StepHoldMinInterval > 0 && time.Duration(field.StepHoldMinInterval) > time.Duration(field.StepHoldInterval) {
		return numerrors.NewValidationError(fieldPath(field.Name, "step_hold_min_interval"), "must not exceed step_hold_interval", nil)
	}

	if field.DecimalSeparator != "" && field.DecimalSeparator == field.ThousandSeparator {
		return numerrors.NewValidationError(fieldPath(field.Name, "thousand_separator"), "must differ from decimal_separator", nil)
	}

	return nil
}

func isPositive(v numeric.Value) bool {
	if f, ok := v.Float64(); ok {
		return f > 0
	}
	if i := v.Int(); i != nil {
		return i.Sign() > 0
	}
	return false
}
