package wikipedia

import (
	"fmt"
	"regexp"
	"strings"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
)

const (
	// MaxQueryLength is the maximum allowed search query length
	MaxQueryLength = 300

	// MaxTitleLength is MediaWiki's title limit in bytes
	MaxTitleLength = 255

	// MaxBatchTitles is the most titles one request may carry for regular clients
	MaxBatchTitles = 50
)

// languageRegex accepts subdomain-safe language codes such as "en",
// "zh-min-nan" or "simple". Whether the edition exists is left to the server.
var languageRegex = regexp.MustCompile(`^[a-z][a-z0-9-]{0,19}$`)

// ValidateSearchQuery validates a search query.
func ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return apierrors.NewValidationError("query", "", "search query is required")
	}
	if len(query) > MaxQueryLength {
		return apierrors.NewValidationError("query", "", fmt.Sprintf("search query exceeds maximum length of %d characters", MaxQueryLength))
	}
	return nil
}

// ValidateTitle validates an article title.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apierrors.NewValidationError("title", "", "title is required")
	}
	if len(title) > MaxTitleLength {
		return apierrors.NewValidationError("title", "", fmt.Sprintf("title exceeds maximum length of %d bytes", MaxTitleLength))
	}
	if i := strings.IndexAny(title, "#<>[]{}|"); i >= 0 {
		return apierrors.NewValidationError("title", title, fmt.Sprintf("title contains invalid character %q", title[i]))
	}
	return nil
}

// ValidateTitles validates the titles of a batch request.
func ValidateTitles(titles []string) error {
	if len(titles) == 0 {
		return apierrors.NewValidationError("titles", "", "at least one title is required")
	}
	if len(titles) > MaxBatchTitles {
		return apierrors.NewValidationError("titles", "", fmt.Sprintf("at most %d titles per request", MaxBatchTitles))
	}
	for _, t := range titles {
		if err := ValidateTitle(t); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLanguage validates a language code. Empty selects the default language.
func ValidateLanguage(lang string) error {
	if lang == "" {
		return nil
	}
	if !languageRegex.MatchString(lang) {
		return apierrors.NewValidationError("language", lang, "must be a lowercase language code such as 'en' or 'zh-min-nan'")
	}
	return nil
}

// ValidateLimit validates a result limit. Zero means the default.
func ValidateLimit(limit, maxLimit int) error {
	if limit < 0 {
		return apierrors.NewValidationError("limit", fmt.Sprint(limit), "cannot be negative")
	}
	if maxLimit > 0 && limit > maxLimit {
		return apierrors.NewValidationError("limit", fmt.Sprint(limit), fmt.Sprintf("cannot exceed %d", maxLimit))
	}
	return nil
}

// ValidateFormat validates an article output format.
func ValidateFormat(format string) error {
	switch format {
	case "", FormatHTML, FormatText:
		return nil
	}
	return apierrors.NewValidationError("format", format, "must be 'html' or 'text'")
}
