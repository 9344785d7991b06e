package errors

import (
	stdErrors "errors"
	"fmt"
)

// WriteError is an I/O failure while appending to the collection file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError wraps an I/O failure for path.
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}

// IsWriteError reports whether err is a WriteError (even when wrapped).
func IsWriteError(err error) bool {
	var writeErr *WriteError
	return stdErrors.As(err, &writeErr)
}
