// Package validation checks converted parameter values against
// go-playground/validator tags, like `min=1` or `dive,hostname`.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// ValidateFunc validates the converted value of a parameter against
// a validation tag, returning an error when the value is invalid.
type ValidateFunc func(value any, tag, id string) error

// NewDefault returns a validation function backed
// by a default go-playground/validator instance.
func NewDefault() ValidateFunc {
	return NewWith(validator.New())
}

// NewWith returns a validation function using the given validator,
// which may carry custom validations registered by the caller.
func NewWith(custom *validator.Validate) ValidateFunc {
	if custom == nil {
		return nil
	}

	return func(value any, tag, id string) error {
		if tag == "" {
			return nil
		}

		if err := custom.Var(value, tag); err != nil {
			return &invalidVarError{
				fieldName:    id,
				fieldValue:   formatValue(value),
				validatorErr: err,
			}
		}

		return nil
	}
}
