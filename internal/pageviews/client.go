// Package pageviews fetches monthly article view counts from the
// stats.grok.se page-view service.
package pageviews

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/base"
)

const (
	// DefaultBaseURL is the root of the JSON page-view API
	DefaultBaseURL = "http://stats.grok.se/json"

	// DefaultLanguage is used when no language is given
	DefaultLanguage = "en"

	service = "pageviews"
)

// EarliestMonth is the first month the service has data for
var EarliestMonth = time.Date(2007, time.December, 1, 0, 0, 0, 0, time.UTC)

// Client fetches page-view statistics.
// It holds only immutable configuration and is safe for concurrent use.
type Client struct {
	*base.Client

	baseURL string
	now     func() time.Time
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		base.WithHTTPClient(c)(client.Client)
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		base.WithLogger(l)(client.Client)
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		base.WithUserAgent(ua)(client.Client)
	}
}

// WithTimeout sets the per-call timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		base.WithTimeout(d)(client.Client)
	}
}

// WithBaseURL sets the service root (e.g., http://stats.grok.se/json)
func WithBaseURL(u string) ClientOption {
	return func(client *Client) {
		if u != "" {
			client.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithClock replaces time.Now when clamping the end date
func WithClock(now func() time.Time) ClientOption {
	return func(client *Client) {
		if now != nil {
			client.now = now
		}
	}
}

// NewClient creates a new page-view client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		Client:  base.NewClient(),
		baseURL: DefaultBaseURL,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURLFromEnv returns PAGEVIEWS_URL, or "" when unset
func BaseURLFromEnv() string {
	return strings.TrimSpace(os.Getenv("PAGEVIEWS_URL"))
}
