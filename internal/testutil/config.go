package testutil

import (
	"testing"
	"time"

	"github.com/lepinkainen/shelfscan/internal/config"
	"github.com/spf13/viper"
)

// ResetConfig resets viper now and again when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// SetViperValue sets a viper configuration value for the duration of the test.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset; a key that was unset stays overridden
		// until the next ResetConfig.
	})
}

// ConfigOption is a functional option for TestConfig.
type ConfigOption func(*config.Config)

// WithOMDBAPIKey sets the OMDb API key.
func WithOMDBAPIKey(key string) ConfigOption {
	return func(c *config.Config) {
		c.OMDBAPIKey = key
	}
}

// WithOutputFile sets the collection file path.
func WithOutputFile(path string) ConfigOption {
	return func(c *config.Config) {
		c.OutputFile = path
	}
}

// WithBaseURLs points both services at a test server.
func WithBaseURLs(omdbURL, upcURL string) ConfigOption {
	return func(c *config.Config) {
		c.OMDBBaseURL = omdbURL
		c.UPCItemDBBaseURL = upcURL
	}
}

// TestConfig returns a Config with a fake OMDb key and a collection file
// inside env.
func TestConfig(env *TestEnv, opts ...ConfigOption) config.Config {
	cfg := config.Config{
		OMDBAPIKey:       "test-omdb-key",
		OMDBBaseURL:      config.DefaultOMDBBaseURL,
		UPCItemDBBaseURL: config.DefaultUPCItemDBBaseURL,
		OutputFile:       env.Path("movies_collection.txt"),
		HTTPTimeout:      5 * time.Second,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
