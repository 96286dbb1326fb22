package validation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Validator struct {
	Errors []ValidationError
}

func New() *Validator {
	return &Validator{
		Errors: make([]ValidationError, 0),
	}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) Required(value, field string) {
	v.Check(value != "", field, "is required")
}

func (v *Validator) NonNegativeAmount(amount decimal.Decimal, field string) {
	v.Check(!amount.IsNegative(), field, "must not be negative")
}

// First returns the first error message, for single-message API responses.
func (v *Validator) First() string {
	if len(v.Errors) == 0 {
		return ""
	}
	return v.Errors[0].Error()
}
