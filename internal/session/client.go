package session

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// HTTPAuthClient talks to the auth endpoint over HTTP.
type HTTPAuthClient struct {
	client  *http.Client
	baseURL string
}

// NewHTTPAuthClient constructs a client for the endpoint at baseURL.
func NewHTTPAuthClient(baseURL string, timeout time.Duration) *HTTPAuthClient {
	return &HTTPAuthClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Login posts credentials and decodes the token/user payload. Every failure
// mode, transport faults included, surfaces as *AuthError so the caller has a
// single message to show.
func (c *HTTPAuthClient) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &AuthError{Reason: "authentication request failed"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := "Invalid credentials"
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
			reason = payload.Message
		}
		return nil, &AuthError{Reason: reason}
	}

	var result LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &AuthError{Reason: "malformed login response"}
	}
	return &result, nil
}

var _ AuthClient = (*HTTPAuthClient)(nil)
