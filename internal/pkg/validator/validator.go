// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// It supports validating struct fields using tags (e.g., `validate:"required"`) and returns
// descriptive error messages when validation rules are violated. Besides the stock tags it
// understands decimal.Decimal fields and registers the `base_units` tag, which accepts only
// strictly positive integral amounts (token amounts expressed in their smallest unit).
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value '' does not meet the requirements for the 'required_without' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// init initializes the singleton validator instance automatically on package import.
func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	// Registration only fails for an empty tag or a nil function.
	_ = validator.RegisterValidation("base_units", isBaseUnits)
}

// decimalValue exposes decimal.Decimal fields to the validator as their
// canonical string form, so stock string tags (required, numeric...) apply.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}

	return nil
}

// isBaseUnits reports whether the field holds a strictly positive integer.
func isBaseUnits(fl gvalidator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	s := fl.Field().String()
	if s == "" || strings.ContainsAny(s, ".-+eE") {
		return false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}

	return d.IsPositive()
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
//
// Example usage:
//
//	type SendParams struct {
//	    ToAddress string          `validate:"required"`
//	    Amount    decimal.Decimal `validate:"base_units"`
//	}
//
//	if err := validator.Validate(params); errors.Is(err, validator.ErrValidationFailed) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
