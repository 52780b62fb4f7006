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
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource yields the stored session token. session.Store satisfies
// it. A nil source or a failed Load sends the request unauthenticated;
// the backend decides whether that is acceptable for the route.
type TokenSource interface {
	Load(ctx context.Context) (string, error)
}

type requestIDContextKey struct{}

// WithRequestID attaches an explicit request ID to ctx, overriding the
// generated one for the next call.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// Client defines a public type used by exitpass APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
	log    *zap.Logger
}

// NewClient describes the newclient operation and its observable behavior.
//
// NewClient may return an error when input validation fails. The base URL
// must be absolute; httpClient defaults to http.DefaultClient and logger
// to a no-op when nil.
func NewClient(base string, httpClient *http.Client, tokens TokenSource, logger *zap.Logger) (*Client, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return nil, errors.New("api client requires a base URL")
	}
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("invalid base URL %q", base)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{base: base, http: httpClient, tokens: tokens, log: logger}, nil
}

// Do issues one request against base+path and returns the parsed JSON
// body. body, when non-nil, is JSON-serialized; Content-Type is always
// application/json. Transport failures come back as *NetworkError,
// non-2xx statuses as *ServerError. Do never retries.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := requestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		if tok, err := c.tokens.Load(ctx); err == nil && tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{
			Status:  resp.StatusCode,
			Message: serverMessage(data, resp.StatusCode),
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return raw, nil
}

// serverMessage pulls the body's "message" field; absent or unreadable
// bodies fall back to "HTTP <status>".
func serverMessage(body []byte, status int) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && strings.TrimSpace(envelope.Message) != "" {
		return envelope.Message
	}
	return fmt.Sprintf("HTTP %d", status)
}
