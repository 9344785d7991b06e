package errors

import stdErrors "errors"

// NotFoundError is the normal "no usable result" outcome for a lookup.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return e.Reason
}

// NewNotFoundError creates a NotFoundError with the provided reason.
func NewNotFoundError(reason string) *NotFoundError {
	return &NotFoundError{Reason: reason}
}

// IsNotFoundError reports whether err is a NotFoundError (even when wrapped).
func IsNotFoundError(err error) bool {
	var nfErr *NotFoundError
	return stdErrors.As(err, &nfErr)
}
