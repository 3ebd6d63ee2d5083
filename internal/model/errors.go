package model

import (
	"errors"
	"fmt"
)

// ValidationError reports a classified candidate that is missing a field
// required to build an ExpenseRecord.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ResourceExhaustedError reports that a ledger reached its configured
// record capacity.
type ResourceExhaustedError struct {
	Limit int
}

func (e *ResourceExhaustedError) Error() string {
	return fmt.Sprintf("resource exhausted: ledger capacity of %d records reached", e.Limit)
}

// IsValidation returns true if err (or any error in its chain) is a
// ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsResourceExhausted returns true if err (or any error in its chain) is a
// ResourceExhaustedError.
func IsResourceExhausted(err error) bool {
	var re *ResourceExhaustedError
	return errors.As(err, &re)
}
