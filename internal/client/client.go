// Package client is the single chokepoint for all traffic to the marketplace
// API. It serializes JSON bodies, attaches the bearer credential, and applies
// one uniform response policy: 401 tears down the session and notifies the
// unauthorized hook, every other non-success status surfaces the server's
// message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// TokenSource yields the current bearer token and owns session teardown.
// The token is consulted on every call so that a logout or re-login between
// calls is observed immediately.
type TokenSource interface {
	// Token returns the trimmed bearer token, or "" when no session exists.
	Token() string
	// Clear removes the persisted token and user record.
	Clear()
}

// Config captures the settings for constructing a Client.
type Config struct {
	// BaseURL is the API origin, e.g. http://localhost:3000.
	BaseURL string
	// Tokens supplies the bearer credential. May be nil for a client that
	// only performs unauthenticated calls.
	Tokens TokenSource
	// OnUnauthorized is invoked after session teardown when the server
	// responds 401. The hook replaces in-band navigation: a shell that owns
	// routing subscribes here and performs the redirect itself.
	OnUnauthorized func()
	// HTTPClient overrides the underlying transport. Defaults to a client
	// with a 30s timeout.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client issues JSON requests against the marketplace API.
type Client struct {
	baseURL        string
	tokens         TokenSource
	onUnauthorized func()
	http           *http.Client
	log            zerolog.Logger
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		tokens:         cfg.Tokens,
		onUnauthorized: cfg.OnUnauthorized,
		http:           hc,
		log:            cfg.Logger,
	}
}

type callSettings struct {
	requireAuth bool
}

// CallOption adjusts a single request.
type CallOption func(*callSettings)

// WithoutAuth skips the Authorization header for this call. Used by the
// login endpoint, which must work without a prior session.
func WithoutAuth() CallOption {
	return func(s *callSettings) { s.requireAuth = false }
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts)
}

// Post issues a POST with an optional JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts)
}

// Put issues a PUT with an optional JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, opts)
}

// errorBody is the error envelope the API uses. Some deployments respond
// with "error" instead of "message"; both are accepted.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opts []CallOption) error {
	settings := callSettings{requireAuth: true}
	for _, opt := range opts {
		opt(&settings)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Message: "encode request body", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindValidation, Message: "build request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if settings.requireAuth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: "read response body", Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The only place session teardown happens as a side effect of
		// routine traffic.
		if c.tokens != nil {
			c.tokens.Clear()
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		c.log.Warn().Str("method", method).Str("path", path).Msg("unauthorized, session cleared")
		return &Error{Kind: KindAuthorization, Message: "Unauthorized - please login again", Status: resp.StatusCode}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{Kind: KindRequest, Message: extractMessage(raw, resp.StatusCode), Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}

	if isJSON(resp.Header.Get("Content-Type")) {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Kind: KindRequest, Message: "decode response body", Status: resp.StatusCode, Err: err}
		}
		return nil
	}

	if s, ok := out.(*string); ok {
		*s = string(raw)
		return nil
	}
	return &Error{
		Kind:    KindRequest,
		Message: fmt.Sprintf("unexpected content type %q", resp.Header.Get("Content-Type")),
		Status:  resp.StatusCode,
	}
}

// extractMessage pulls a human-readable message out of an error body,
// falling back to a generic one when the body is not the known envelope.
func extractMessage(raw []byte, status int) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return fmt.Sprintf("Request failed with status %d", status)
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
