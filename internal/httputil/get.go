// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for upstream requests.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Doer is satisfied by *http.Client. Tests substitute fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	// Snippet holds at most the first 512 bytes of the response body.
	Snippet string
}

func (e *StatusError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Snippet)
}

const snippetLimit = 512

// Get issues a single GET for rawURL and returns the full response body.
// There is no retry: a transport error is returned as-is and a non-2xx
// status is returned as a *StatusError after the body has been drained.
func Get(ctx context.Context, client Doer, rawURL, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, snippetLimit))
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Snippet: string(b)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}
	return body, nil
}
