// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// HTTP implements API over the fleet service's REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g. "http://host:3000/api")
	baseURL string
	// tokens supplies the bearer token for authenticated requests
	tokens TokenSource
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// userAgent identifies this CLI install to the backend
	userAgent string
}

// newHTTP creates an HTTP client with a 10-second timeout for all requests.
func newHTTP(baseURL string, tokens TokenSource, userAgent string) *HTTP {
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		tokens:    tokens,
		client:    &http.Client{Timeout: 10 * time.Second},
		userAgent: userAgent,
	}
}

// New creates the fleet API implementation.
func New(baseURL string, tokens TokenSource, userAgent string) API {
	return newHTTP(baseURL, tokens, userAgent)
}

// setStandardHeaders applies headers every request carries.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	req.Header.Set("Accept", "application/json")
}

// authorize attaches the Authorization header when a token is stored.
func (h *HTTP) authorize(ctx context.Context, req *http.Request) error {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}
