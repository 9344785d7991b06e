package upcitemdb

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/lepinkainen/shelfscan/internal/errors"
	"github.com/lepinkainen/shelfscan/internal/movie"
)

// Resolve looks up barcode with a single GET request and returns the IMDb ID
// of the first match, or its cleaned title when no IMDb ID is listed.
func (c *Client) Resolve(ctx context.Context, barcode string) (movie.Identifier, error) {
	slog.Info("Searching for barcode", "service", serviceName, "barcode", barcode)

	endpoint := c.baseURL + c.lookupPath() + "?" + url.Values{"upc": {barcode}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return movie.Identifier{}, errors.NewNetworkError(serviceName, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("user_key", c.apiKey)
		req.Header.Set("key_type", "3scale")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return movie.Identifier{}, errors.NewNetworkError(serviceName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return movie.Identifier{}, statusError(resp)
	}

	var lookup LookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return movie.Identifier{}, errors.NewParseError(serviceName, err)
	}

	return SelectIdentifier(lookup.Items)
}

// SelectIdentifier applies the match policy to the first item: a non-empty
// IMDb ID wins, then a non-empty cleaned title, otherwise NotFound.
func SelectIdentifier(items []Item) (movie.Identifier, error) {
	if len(items) == 0 {
		return movie.Identifier{}, errors.NewNotFoundError("no product listed for this barcode")
	}

	item := items[0]
	if id := strings.TrimSpace(item.ImdbID); id != "" {
		return movie.ByExternalID(id), nil
	}
	if title := movie.CleanTitle(item.Title); title != "" {
		return movie.ByTitle(title), nil
	}

	return movie.Identifier{}, errors.NewNotFoundError("product listing has neither an IMDb ID nor a title")
}

func statusError(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		message := "request limit reached"
		body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err == nil {
			var errorResp LookupResponse
			if json.Unmarshal(body, &errorResp) == nil && errorResp.Message != "" {
				message = errorResp.Message
			}
		}
		return errors.NewRateLimitError(serviceName, message)
	}
	return errors.NewStatusError(serviceName, resp.StatusCode)
}
