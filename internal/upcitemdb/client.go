// Package upcitemdb resolves product barcodes through the UPCitemdb lookup API.
package upcitemdb

import (
	"net/http"
	"strings"
	"time"

	"github.com/lepinkainen/shelfscan/internal/config"
)

const (
	serviceName = "UPCitemdb"
	trialPath   = "/prod/trial/lookup"
	paidPath    = "/prod/v1/lookup"
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a UPCitemdb API client. Without an API key it uses the keyless
// trial endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new UPCitemdb client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    config.DefaultUPCItemDBBaseURL,
		httpClient: &http.Client{Timeout: config.DefaultHTTPTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithAPIKey switches the client to the paid endpoint.
func WithAPIKey(key string) Option {
	return func(client *Client) {
		client.apiKey = strings.TrimSpace(key)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the lookup API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithTimeout replaces the HTTP client with one bounded by timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		if timeout > 0 {
			client.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

func (c *Client) lookupPath() string {
	if c.apiKey != "" {
		return paidPath
	}
	return trialPath
}
