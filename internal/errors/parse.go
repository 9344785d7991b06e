package errors

import (
	stdErrors "errors"
	"fmt"
)

// ParseError means a service answered with a body that could not be decoded
type ParseError struct {
	Service string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response from %s: %v", e.Service, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a decode failure.
func NewParseError(service string, err error) *ParseError {
	return &ParseError{Service: service, Err: err}
}

// IsParseError reports whether err is a ParseError (even when wrapped).
func IsParseError(err error) bool {
	var parseErr *ParseError
	return stdErrors.As(err, &parseErr)
}
