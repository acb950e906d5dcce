package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
	"github.com/sultanm/shopfront/pkg/logger"
	"github.com/sultanm/shopfront/pkg/metrics"
)

const (
	defaultBaseURL        = "http://localhost:8080/api/v1"
	responseBodyReadLimit = 1 << 20
	notFoundMessage       = "Resource not found"
	headerRequestID       = "X-Request-ID"
	defaultTimeout        = 15 * time.Second
)

// TokenSource supplies the bearer credential for authenticated calls.
// An empty token means the request goes out anonymous.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client wraps the springshop REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logg       *logger.Logger
	metrics    *metrics.ClientMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithTokenSource installs the credential supplier.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithLogger attaches a structured logger for request tracing.
func WithLogger(logg *logger.Logger) Option {
	return func(c *Client) {
		c.logg = logg
	}
}

// WithMetrics attaches request duration/failure collectors.
func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds the API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}

	return client
}

// envelope is the ApiResponse wrapper every springshop endpoint returns.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
}

// call issues a request, unwraps the response envelope, and decodes data
// into out when provided. The backend's "Resource not found" outcome maps
// to CodeNotFound so callers can treat it as a recognized state.
func (c *Client) call(ctx context.Context, operation, method, path string, query url.Values, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), bodyReader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(req)

	resp, err := c.execute(ctx, operation, req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if err != nil {
		c.countFailure(operation)
		return pkgerrors.Wrap(pkgerrors.CodeBackend, err, "read response body")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.countFailure(operation)
		if resp.StatusCode >= 400 {
			return pkgerrors.New(pkgerrors.CodeBackend, fmt.Sprintf("backend returned status %d", resp.StatusCode))
		}
		return pkgerrors.Wrap(pkgerrors.CodeBackend, err, "decode response envelope")
	}

	if !env.Success || resp.StatusCode >= 400 {
		c.countFailure(operation)
		if resp.StatusCode == http.StatusNotFound || env.Message == notFoundMessage {
			return pkgerrors.New(pkgerrors.CodeNotFound, env.Message)
		}
		return pkgerrors.New(pkgerrors.CodeBackend, env.Message)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeBackend, err, "decode response data")
		}
	}

	return nil
}

// execute performs the round trip and records request metrics.
func (c *Client) execute(ctx context.Context, operation string, req *http.Request) (*http.Response, error) {
	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.ObserveRequest(operation, time.Since(started))
	}
	if err != nil {
		c.countFailure(operation)
		return nil, pkgerrors.Wrap(pkgerrors.CodeBackend, err, "execute request")
	}
	if c.logg != nil {
		entry := c.logg.WithFields(ctx, map[string]any{
			"operation": operation,
			"status":    resp.StatusCode,
		})
		c.logg.Debug(entry, "backend request completed")
	}
	return resp, nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set(headerRequestID, uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func (c *Client) countFailure(operation string) {
	if c.metrics != nil {
		c.metrics.IncRequestFailure(operation)
	}
}

func (c *Client) buildURL(path string, query url.Values) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	full := fmt.Sprintf("%s/%s", trimmed, path)
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	return full
}
