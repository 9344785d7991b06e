package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError("OMDb", "Request limit reached!")

	expected := "OMDb: Request limit reached!"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsRateLimitError(err) {
		t.Fatalf("IsRateLimitError returned false for RateLimitError")
	}

	wrapped := stdErrors.Join(err)
	if !IsRateLimitError(wrapped) {
		t.Fatalf("IsRateLimitError returned false for wrapped RateLimitError")
	}
}

func TestRateLimitError_NoService(t *testing.T) {
	err := NewRateLimitError("", "slow down")

	if err.Error() != "slow down" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "slow down")
	}
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("omdb.api_key", "OMDb API key is missing")

	expected := "OMDb API key is missing (config key omdb.api_key)"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	wrapped := fmt.Errorf("fetch: %w", err)
	if !IsConfigurationError(wrapped) {
		t.Fatalf("IsConfigurationError returned false for wrapped ConfigurationError")
	}
	if IsNotFoundError(wrapped) {
		t.Fatalf("IsNotFoundError returned true for ConfigurationError")
	}
}

func TestNetworkError(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := NewNetworkError("UPCitemdb", cause)

	expected := "could not connect to UPCitemdb: connection refused"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !stdErrors.Is(err, cause) {
		t.Fatalf("NetworkError does not unwrap to its cause")
	}

	if !IsNetworkError(fmt.Errorf("resolve: %w", err)) {
		t.Fatalf("IsNetworkError returned false for wrapped NetworkError")
	}
}

func TestStatusError(t *testing.T) {
	err := NewStatusError("OMDb", 503)

	expected := "OMDb returned HTTP 503"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if err.StatusCode != 503 {
		t.Fatalf("StatusCode = %d, want 503", err.StatusCode)
	}
}

func TestParseError(t *testing.T) {
	cause := stdErrors.New("unexpected EOF")
	err := NewParseError("OMDb", cause)

	expected := "failed to parse response from OMDb: unexpected EOF"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsParseError(err) || !stdErrors.Is(err, cause) {
		t.Fatalf("ParseError classification or unwrap failed")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Movie not found!")

	if err.Error() != "Movie not found!" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "Movie not found!")
	}

	if !IsNotFoundError(stdErrors.Join(err, stdErrors.New("context"))) {
		t.Fatalf("IsNotFoundError returned false for joined NotFoundError")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("12a4", "must contain only digits")

	expected := `invalid barcode "12a4": must contain only digits`
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsValidationError(err) {
		t.Fatalf("IsValidationError returned false for ValidationError")
	}
}

func TestWriteError(t *testing.T) {
	err := NewWriteError("/tmp/movies.txt", fs.ErrPermission)

	expected := "could not write to /tmp/movies.txt: permission denied"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !stdErrors.Is(err, fs.ErrPermission) {
		t.Fatalf("WriteError does not unwrap to fs.ErrPermission")
	}

	if !IsWriteError(err) {
		t.Fatalf("IsWriteError returned false for WriteError")
	}
}

func TestPredicatesRejectOtherKinds(t *testing.T) {
	plain := stdErrors.New("plain")

	checks := map[string]func(error) bool{
		"configuration": IsConfigurationError,
		"network":       IsNetworkError,
		"parse":         IsParseError,
		"not found":     IsNotFoundError,
		"validation":    IsValidationError,
		"write":         IsWriteError,
		"rate limit":    IsRateLimitError,
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			if check(plain) {
				t.Fatalf("predicate %s matched a plain error", name)
			}
			if check(nil) {
				t.Fatalf("predicate %s matched nil", name)
			}
		})
	}
}
