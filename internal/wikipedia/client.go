// Package wikipedia is a thin client over the MediaWiki action API of
// Wikipedia: search, article text, inter-language links and categories.
package wikipedia

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/base"
)

const (
	// DefaultAPIURL is the endpoint template; "%s" selects the language subdomain
	DefaultAPIURL = "https://%s.wikipedia.org/w/api.php"

	// DefaultLanguage is used when no language is given
	DefaultLanguage = "en"

	// DefaultMaxPages bounds pagination against servers that never stop continuing
	DefaultMaxPages = 500

	// MaxResultsPerRequest is the server-side cap on list sizes for regular clients
	MaxResultsPerRequest = 500

	service = "wikipedia"
)

// Client provides access to the Wikipedia API.
// It holds only immutable configuration and is safe for concurrent use.
type Client struct {
	*base.Client

	apiURL          string
	defaultLanguage string
	maxPages        int
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

// WithAPIURL sets the endpoint template. Every "%s" is replaced by the
// language code; a template without one is used as a fixed endpoint.
func WithAPIURL(template string) ClientOption {
	return func(client *Client) {
		if template != "" {
			client.apiURL = template
		}
	}
}

// WithDefaultLanguage sets the language used when an operation gets ""
func WithDefaultLanguage(lang string) ClientOption {
	return func(client *Client) {
		if lang != "" {
			client.defaultLanguage = lang
		}
	}
}

// WithMaxPages caps continuation pages per listing; 0 disables the cap
func WithMaxPages(n int) ClientOption {
	return func(client *Client) {
		if n >= 0 {
			client.maxPages = n
		}
	}
}

// WithConfig applies every setting from cfg
func WithConfig(cfg *Config) ClientOption {
	return func(client *Client) {
		if cfg == nil {
			return
		}
		WithAPIURL(cfg.APIURL)(client)
		WithDefaultLanguage(cfg.DefaultLanguage)(client)
		WithMaxPages(cfg.MaxPages)(client)
		WithUserAgent(cfg.UserAgent)(client)
		WithTimeout(cfg.Timeout)(client)
	}
}

// NewClient creates a new Wikipedia client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		Client:          base.NewClient(),
		apiURL:          DefaultAPIURL,
		defaultLanguage: DefaultLanguage,
		maxPages:        DefaultMaxPages,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// DefaultLanguage returns the language used for calls that pass ""
func (c *Client) DefaultLanguage() string {
	return c.defaultLanguage
}

// language resolves an empty language code to the configured default
func (c *Client) language(lang string) string {
	if lang == "" {
		return c.defaultLanguage
	}
	return lang
}

// endpoint builds the API URL for a language. The code is not validated:
// an unknown language fails at the transport as an unresolvable host.
func (c *Client) endpoint(lang string) string {
	return strings.ReplaceAll(c.apiURL, "%s", lang)
}

// clampLimit maps a caller limit onto the server's per-request range
func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxResultsPerRequest {
		return MaxResultsPerRequest
	}
	return limit
}
