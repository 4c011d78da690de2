package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	numerrors "github.com/alexisbeaulieu97/numinput/pkg/errors"
)

// convertValidationError normalizes validator errors into document validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return numerrors.NewValidationError(field, msg, err)
	}

	return numerrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	// The root type name carries no information for document authors.
	if len(lowered) > 1 {
		lowered = lowered[1:]
	}
	return strings.Join(lowered, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fieldPath(name, attr string) string {
	return fmt.Sprintf("fields[%s].%s", name, attr)
}

func fieldForIndex(index int, attr string) string {
	return fmt.Sprintf("fields[%d].%s", index, attr)
}
