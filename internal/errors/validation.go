package errors

import (
	stdErrors "errors"
	"fmt"
)

// ValidationError represents operator input that is not a usable barcode
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid barcode %q: %s", e.Input, e.Reason)
}

// NewValidationError creates a ValidationError for the rejected input
func NewValidationError(input, reason string) *ValidationError {
	return &ValidationError{Input: input, Reason: reason}
}

// IsValidationError reports whether err is a ValidationError (even when wrapped).
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return stdErrors.As(err, &valErr)
}
