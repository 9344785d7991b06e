package errors

import stdErrors "errors"

// ConfigurationError means a required setting is missing or still holds its
// placeholder value. The failing call made no network request.
type ConfigurationError struct {
	Key     string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return e.Message
	}
	return e.Message + " (config key " + e.Key + ")"
}

// NewConfigurationError creates a ConfigurationError for a config key.
func NewConfigurationError(key, message string) *ConfigurationError {
	return &ConfigurationError{Key: key, Message: message}
}

// IsConfigurationError reports whether err is a ConfigurationError (even when wrapped).
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return stdErrors.As(err, &cfgErr)
}
