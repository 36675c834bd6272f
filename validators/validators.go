// Package validators checks request payloads before they are sent to the
// API, so obviously broken input fails fast with a field→reason map instead
// of a round trip.
package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries per-field validation failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Check validates the struct tags on req and returns a *ValidationError when
// any field fails.
func Check(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(invalid))
	for _, fe := range invalid {
		fields[fe.Field()] = messageFor(fe)
	}
	return &ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Invalid email!"
	case "min":
		return fmt.Sprintf("Must be at least %s characters long!", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s!", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation!", fe.Tag())
	}
}
