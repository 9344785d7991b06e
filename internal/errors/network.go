package errors

import (
	stdErrors "errors"
	"fmt"
)

// NetworkError is a transport failure or an unexpected HTTP status from a service
type NetworkError struct {
	Service    string
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned HTTP %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("could not connect to %s: %v", e.Service, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(service string, err error) *NetworkError {
	return &NetworkError{Service: service, Err: err}
}

// NewStatusError records a non-success HTTP status.
func NewStatusError(service string, statusCode int) *NetworkError {
	return &NetworkError{Service: service, StatusCode: statusCode}
}

// IsNetworkError reports whether err is a NetworkError (even when wrapped).
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return stdErrors.As(err, &netErr)
}
