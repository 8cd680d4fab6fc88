// Package api speaks the SmartCart backend's REST contract: JSON bodies,
// bearer tokens from the session cache, and per-request correlation ids.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnauthorized means the backend rejected the token; the session has
	// already been cleared by the time a caller sees this.
	ErrUnauthorized = errors.New("authentication required")
	// ErrNetwork covers transport failures and unparseable responses. The
	// user-facing message is generic; the wrapped cause stays for logs.
	ErrNetwork = errors.New("network error")
)

// Error is a non-2xx response. Message, when present, is the server's own
// wording and is shown to the user verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// TokenSource supplies the bearer token for authenticated requests and
// drops it once the backend rejects it.
type TokenSource interface {
	Token() string
	Clear() error
}

const headerCorrelationID = "X-Correlation-Id"

// Client is the shared HTTP plumbing under every typed client.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: u, http: httpClient, tokens: tokens}, nil
}

// do runs one JSON request/response cycle. in may be nil for bodyless
// requests, out may be nil when the response body does not matter.
func (c *Client) do(ctx context.Context, method, path, rawQuery string, in, out any) error {
	rel := &url.URL{Path: path, RawQuery: rawQuery}
	u := c.baseURL.ResolveReference(rel)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerCorrelationID, uuid.NewString())
	authed := false
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
			authed = true
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	// A 401 on a request that carried a token means the session expired.
	// Without a token, as on a login attempt, the server's own wording
	// (say, bad credentials) belongs to the user.
	if resp.StatusCode == http.StatusUnauthorized && authed {
		_ = c.tokens.Clear()
		return ErrUnauthorized
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrNetwork, err)
	}
	return nil
}

// serverMessage pulls a human-readable message out of an error body when one
// is there. A missing or non-JSON body yields an empty message and callers
// fall back to a generic one.
func serverMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		ErrMsg  string `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.ErrMsg
}
