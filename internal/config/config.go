// Package config turns viper settings into the explicit Config value that
// every shelfscan component is constructed with.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config keys
const (
	KeyOMDBAPIKey       = "omdb.api_key"
	KeyOMDBBaseURL      = "omdb.base_url"
	KeyUPCItemDBAPIKey  = "upcitemdb.api_key"
	KeyUPCItemDBBaseURL = "upcitemdb.base_url"
	KeyOutputFile       = "output.file"
	KeyHTTPTimeout      = "http.timeout"
)

const (
	// PlaceholderOMDBAPIKey is written to starter configs and counts as "no key".
	PlaceholderOMDBAPIKey = "YOUR_OMDB_API_KEY"

	DefaultOMDBBaseURL      = "http://www.omdbapi.com"
	DefaultUPCItemDBBaseURL = "https://api.upcitemdb.com"
	DefaultOutputFile       = "movies_collection.txt"
	DefaultHTTPTimeout      = 15 * time.Second
)

// Config holds everything the lookup pipeline needs. It is built once at
// startup and passed by value; nothing reads viper after that.
type Config struct {
	OMDBAPIKey       string
	OMDBBaseURL      string
	UPCItemDBAPIKey  string
	UPCItemDBBaseURL string
	OutputFile       string
	HTTPTimeout      time.Duration
}

// SetDefaults registers default values for all keys on the global viper instance.
func SetDefaults() {
	viper.SetDefault(KeyOMDBAPIKey, PlaceholderOMDBAPIKey)
	viper.SetDefault(KeyOMDBBaseURL, DefaultOMDBBaseURL)
	viper.SetDefault(KeyUPCItemDBAPIKey, "")
	viper.SetDefault(KeyUPCItemDBBaseURL, DefaultUPCItemDBBaseURL)
	viper.SetDefault(KeyOutputFile, DefaultOutputFile)
	viper.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout.String())
}

// BindEnv maps the documented environment variables onto config keys.
func BindEnv() error {
	bindings := map[string]string{
		KeyOMDBAPIKey:      "OMDB_API_KEY",
		KeyUPCItemDBAPIKey: "UPCITEMDB_API_KEY",
		KeyOutputFile:      "SHELFSCAN_OUTPUT",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the current viper state into a Config.
func Load() Config {
	timeout := viper.GetDuration(KeyHTTPTimeout)
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	return Config{
		OMDBAPIKey:       strings.TrimSpace(viper.GetString(KeyOMDBAPIKey)),
		OMDBBaseURL:      viper.GetString(KeyOMDBBaseURL),
		UPCItemDBAPIKey:  strings.TrimSpace(viper.GetString(KeyUPCItemDBAPIKey)),
		UPCItemDBBaseURL: viper.GetString(KeyUPCItemDBBaseURL),
		OutputFile:       viper.GetString(KeyOutputFile),
		HTTPTimeout:      timeout,
	}
}

// IsPlaceholderKey reports whether an OMDb key is missing or was never filled in.
func IsPlaceholderKey(key string) bool {
	key = strings.TrimSpace(key)
	return key == "" || key == PlaceholderOMDBAPIKey
}
