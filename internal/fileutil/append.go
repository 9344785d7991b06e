package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lepinkainen/shelfscan/internal/errors"
)

// Appender appends text blocks to the collection file. It holds no open
// handle between calls.
type Appender struct {
	path string
}

// NewAppender creates an Appender for path.
func NewAppender(path string) *Appender {
	return &Appender{path: path}
}

// Path returns the collection file path.
func (a *Appender) Path() string {
	return a.path
}

// Ensure creates the collection file and its directory if they don't exist.
// Existing content is left untouched.
func (a *Appender) Ensure() error {
	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewWriteError(a.path, err)
		}
	}

	f, err := os.OpenFile(a.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return errors.NewWriteError(a.path, err)
	}
	if err := f.Close(); err != nil {
		return errors.NewWriteError(a.path, err)
	}
	return nil
}

// Append writes block to the end of the collection file, creating the file
// if needed. The handle is closed on every path.
func (a *Appender) Append(block string) (err error) {
	f, err := os.OpenFile(a.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return errors.NewWriteError(a.path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.NewWriteError(a.path, closeErr)
		}
	}()

	n, err := f.WriteString(block)
	if err != nil {
		return errors.NewWriteError(a.path, err)
	}
	if n != len(block) {
		return errors.NewWriteError(a.path, fmt.Errorf("short write: %d of %d bytes", n, len(block)))
	}
	return nil
}
