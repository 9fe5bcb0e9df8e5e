// Package base provides the shared HTTP transport for the Wikipedia and page-view clients.
package base

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
	"github.com/olgasafonova/wikipedia-mcp-server/tracing"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to upstream services
	DefaultUserAgent = "wikipedia-mcp-server/1.0 (https://github.com/olgasafonova/wikipedia-mcp-server)"

	// maxErrorBody bounds how much of a failed response body ends up in errors
	maxErrorBody = 200
)

// Client provides common HTTP client infrastructure. Every call is a single
// attempt: failures are reported, never retried.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	UserAgent  string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		if ua != "" {
			client.UserAgent = ua
		}
	}
}

// WithTimeout sets the per-call timeout on the default HTTP client
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		if d > 0 {
			client.HTTPClient = newHTTPClient(d)
		}
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
		UserAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RequestConfig configures a single HTTP request
type RequestConfig struct {
	URL string

	// Form, when non-nil, is sent as an application/x-www-form-urlencoded POST body.
	// A nil Form issues a GET.
	Form url.Values

	// Service and Action label metrics and spans (e.g. "wikipedia", "query")
	Service string
	Action  string
}

func (cfg RequestConfig) method() string {
	if cfg.Form != nil {
		return http.MethodPost
	}
	return http.MethodGet
}

// DoRequest performs one HTTP request and returns the body of a 2xx response.
// Network failures and non-2xx statuses are returned as *errors.TransportError.
func (c *Client) DoRequest(ctx context.Context, cfg RequestConfig) ([]byte, error) {
	ctx, span := tracing.StartSpan(ctx, cfg.Service+".api."+cfg.Action)
	defer span.End()
	tracing.AddUpstreamAttributes(span, cfg.Service, cfg.Action, cfg.URL)

	start := time.Now()
	body, err := c.do(ctx, cfg)
	c.record(cfg, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return body, nil
}

// DoJSON performs one HTTP request and decodes the JSON body into v.
// Invalid JSON is returned as *errors.DecodeError.
func (c *Client) DoJSON(ctx context.Context, cfg RequestConfig, v interface{}) error {
	ctx, span := tracing.StartSpan(ctx, cfg.Service+".api."+cfg.Action)
	defer span.End()
	tracing.AddUpstreamAttributes(span, cfg.Service, cfg.Action, cfg.URL)

	start := time.Now()
	body, err := c.do(ctx, cfg)
	if err == nil {
		if jsonErr := json.Unmarshal(body, v); jsonErr != nil {
			err = &apierrors.DecodeError{URL: cfg.URL, Err: jsonErr}
		}
	}
	c.record(cfg, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (c *Client) do(ctx context.Context, cfg RequestConfig) ([]byte, error) {
	var bodyReader io.Reader
	if cfg.Form != nil {
		bodyReader = strings.NewReader(cfg.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, cfg.method(), cfg.URL, bodyReader)
	if err != nil {
		return nil, &apierrors.TransportError{URL: cfg.URL, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	if cfg.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.Logger.Debug("Upstream request",
		"service", cfg.Service,
		"action", cfg.Action,
		"method", req.Method,
		"url", cfg.URL)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &apierrors.TransportError{URL: cfg.URL, Err: err}
	}

	body, err := readAndClose(resp)
	if err != nil {
		return nil, &apierrors.TransportError{URL: cfg.URL, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apierrors.TransportError{
			URL:        cfg.URL,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), maxErrorBody),
		}
	}

	return body, nil
}

func (c *Client) record(cfg RequestConfig, start time.Time, err error) {
	duration := time.Since(start).Seconds()
	metrics.RecordAPICall(cfg.Service, cfg.Action, duration, err == nil, apierrors.Code(err))
	if err != nil {
		c.Logger.Warn("Upstream request failed",
			"service", cfg.Service,
			"action", cfg.Action,
			"url", cfg.URL,
			"error", err)
	}
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
