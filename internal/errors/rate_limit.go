package errors

import (
	stdErrors "errors"
	"fmt"
)

// RateLimitError represents a request quota rejection from a lookup service
type RateLimitError struct {
	Service string
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Service == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// NewRateLimitError creates a new RateLimitError for the given service
func NewRateLimitError(service, message string) *RateLimitError {
	return &RateLimitError{Service: service, Message: message}
}

// IsRateLimitError reports whether err is a RateLimitError (even when wrapped).
func IsRateLimitError(err error) bool {
	var rateErr *RateLimitError
	return stdErrors.As(err, &rateErr)
}
