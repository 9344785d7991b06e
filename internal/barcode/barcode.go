// Package barcode validates product barcodes read from the operator or a CSV file.
package barcode

import (
	"strings"

	"github.com/lepinkainen/shelfscan/internal/errors"
)

// Parse trims raw input and returns it as a barcode if it consists only of
// decimal digits. No length is enforced; UPC-A, EAN-13 and shorter codes all pass.
func Parse(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", errors.NewValidationError(raw, "barcode is empty")
	}
	if !IsDigits(code) {
		return "", errors.NewValidationError(code, "please enter numbers only")
	}
	return code, nil
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
