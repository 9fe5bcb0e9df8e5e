package wikipedia

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/base"
)

// Config holds Wikipedia API connection settings
type Config struct {
	// APIURL is the endpoint template; "%s" is replaced by the language code
	// (e.g., https://%s.wikipedia.org/w/api.php)
	APIURL string

	// DefaultLanguage is used when an operation is called with an empty language
	DefaultLanguage string

	// Timeout for a single API call
	Timeout time.Duration

	// UserAgent identifies the client to Wikipedia
	UserAgent string

	// MaxPages caps how many continuation pages one listing may fetch.
	// Zero disables the cap.
	MaxPages int
}

// DefaultConfig returns the settings used when no environment overrides are present
func DefaultConfig() *Config {
	return &Config{
		APIURL:          DefaultAPIURL,
		DefaultLanguage: DefaultLanguage,
		Timeout:         base.DefaultTimeout,
		UserAgent:       base.DefaultUserAgent,
		MaxPages:        DefaultMaxPages,
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if u := os.Getenv("WIKIPEDIA_API_URL"); u != "" {
		if !strings.Contains(u, "%s") {
			return nil, fmt.Errorf("WIKIPEDIA_API_URL must contain %%s for the language code, got %q", u)
		}
		cfg.APIURL = u
	}

	if lang := os.Getenv("WIKIPEDIA_DEFAULT_LANGUAGE"); lang != "" {
		cfg.DefaultLanguage = strings.ToLower(strings.TrimSpace(lang))
	}

	if t := os.Getenv("WIKIPEDIA_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if ua := os.Getenv("WIKIPEDIA_USER_AGENT"); ua != "" {
		cfg.UserAgent = ua
	}

	if p := os.Getenv("WIKIPEDIA_MAX_PAGES"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n >= 0 {
			cfg.MaxPages = n
		}
	}

	return cfg, nil
}
