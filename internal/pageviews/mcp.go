package pageviews

import (
	"context"
	"strings"
	"time"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikipedia-mcp-server/internal/wikipedia"
)

// DateLayout is the accepted form of start and end dates
const DateLayout = "2006-01-02"

// GetPageViewsArgs contains parameters for a page-view query
type GetPageViewsArgs struct {
	Title     string `json:"title" jsonschema:"required" jsonschema_description:"Article title"`
	Language  string `json:"language,omitempty" jsonschema_description:"Wikipedia language code (default: en)"`
	StartDate string `json:"start_date" jsonschema:"required" jsonschema_description:"First day of the range (YYYY-MM-DD); data starts 2007-12"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End of the range, exclusive (YYYY-MM-DD, default: today)"`
}

// GetPageViewsResult holds monthly view counts and their total
type GetPageViewsResult struct {
	Title    string                            `json:"title"`
	Language string                            `json:"language"`
	Months   int                               `json:"months"`
	Total    int64                             `json:"total"`
	Monthly  map[string]map[string]interface{} `json:"monthly"`
}

// GetPageViewsMCP is the MCP wrapper for PageViewStats
func (c *Client) GetPageViewsMCP(ctx context.Context, args GetPageViewsArgs) (GetPageViewsResult, error) {
	if strings.TrimSpace(args.Title) == "" {
		return GetPageViewsResult{}, apierrors.NewValidationError("title", "", "title is required")
	}
	if err := wikipedia.ValidateLanguage(args.Language); err != nil {
		return GetPageViewsResult{}, err
	}

	start, err := parseDate("start_date", args.StartDate)
	if err != nil {
		return GetPageViewsResult{}, err
	}
	end := c.now()
	if args.EndDate != "" {
		if end, err = parseDate("end_date", args.EndDate); err != nil {
			return GetPageViewsResult{}, err
		}
	}

	lang := args.Language
	if lang == "" {
		lang = DefaultLanguage
	}

	stats, err := c.PageViewStats(ctx, args.Title, lang, start, end)
	if err != nil {
		return GetPageViewsResult{}, err
	}

	return GetPageViewsResult{
		Title:    args.Title,
		Language: lang,
		Months:   len(stats.Monthly),
		Total:    stats.Total,
		Monthly:  stats.Monthly,
	}, nil
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apierrors.NewValidationError(field, "", "date is required")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apierrors.NewValidationError(field, value, "must be a date in YYYY-MM-DD form")
	}
	return t, nil
}
