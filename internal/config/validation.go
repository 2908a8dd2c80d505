package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// Collect records err, if any, keeping the field of a ValidationError.
func (ve *ValidationErrors) Collect(err error) {
	if err == nil {
		return
	}
	var single ValidationError
	if errors.As(err, &single) {
		*ve = append(*ve, single)
		return
	}
	*ve = append(*ve, ValidationError{Message: err.Error()})
}

// ValidateOneOf checks if a value is in a list of allowed values
func ValidateOneOf(field, value string, allowed []string) error {
	for _, allowedValue := range allowed {
		if value == allowedValue {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// ValidateToken checks that value can be used as a single command line
// token: non-empty, at most 64 bytes, and free of whitespace.
func ValidateToken(field, value string) error {
	switch {
	case strings.TrimSpace(value) == "":
		return ValidationError{Field: field, Value: value, Message: "must not be empty"}
	case len(value) > 64:
		return ValidationError{Field: field, Value: value, Message: "must not exceed 64 characters"}
	case strings.ContainsAny(value, " \t\r\n"):
		return ValidationError{Field: field, Value: value, Message: "cannot contain spaces"}
	}
	return nil
}
