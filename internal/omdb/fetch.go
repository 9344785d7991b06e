package omdb

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/lepinkainen/shelfscan/internal/config"
	"github.com/lepinkainen/shelfscan/internal/errors"
	"github.com/lepinkainen/shelfscan/internal/movie"
)

const requestLimitMessage = "Request limit reached!"

// Fetch retrieves metadata for id with a single GET request.
//
// A missing or placeholder API key yields a ConfigurationError without any
// network activity. OMDb answering Response != "True" yields a
// NotFoundError carrying OMDb's error text.
func (c *Client) Fetch(ctx context.Context, id movie.Identifier) (*movie.Record, error) {
	if config.IsPlaceholderKey(c.apiKey) {
		return nil, errors.NewConfigurationError(config.KeyOMDBAPIKey, "OMDb API key is missing")
	}

	if id.IsZero() {
		return nil, errors.NewNotFoundError("no IMDb ID or title to look up")
	}

	params := url.Values{}
	switch id.Kind() {
	case movie.KindExternalID:
		params.Set("i", id.ExternalID())
	case movie.KindTitle:
		params.Set("t", id.Title())
	}

	slog.Info("Looking up movie details", "service", serviceName, "query", id.String())

	params.Set("apikey", c.apiKey)
	endpoint := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewNetworkError(serviceName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(serviceName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var omdbResp Response
	if err := json.NewDecoder(resp.Body).Decode(&omdbResp); err != nil {
		return nil, errors.NewParseError(serviceName, err)
	}

	if omdbResp.Response != "True" {
		return nil, apiError(omdbResp.Error)
	}

	return omdbResp.Record(), nil
}

// statusError classifies a non-200 answer, using the OMDb error body when there is one.
func statusError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		slog.Warn("Failed to read error response body", "service", serviceName, "error", err)
		return errors.NewStatusError(serviceName, resp.StatusCode)
	}

	var errorResp Response
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
		return errors.NewStatusError(serviceName, resp.StatusCode)
	}

	if errorResp.Error != requestLimitMessage && resp.StatusCode == http.StatusUnauthorized {
		return errors.NewConfigurationError(config.KeyOMDBAPIKey, "OMDb rejected the API key: "+errorResp.Error)
	}
	return apiError(errorResp.Error)
}

func apiError(message string) error {
	if message == requestLimitMessage {
		return errors.NewRateLimitError(serviceName, message)
	}
	if message == "" {
		message = "Unknown error"
	}
	return errors.NewNotFoundError(message)
}
