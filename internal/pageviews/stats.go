package pageviews

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
	"github.com/olgasafonova/wikipedia-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// MonthKeyLayout formats the keys of Stats.Monthly
const MonthKeyLayout = "200601"

// Stats holds monthly view statistics for one article
type Stats struct {
	// Monthly maps YYYYMM to the service's raw response for that month
	Monthly map[string]map[string]interface{} `json:"monthly"`

	// Total is the sum of total_views over all fetched months
	Total int64 `json:"total"`
}

// PageViewStats fetches one month at a time from start through end and sums
// the monthly totals. start is clamped to EarliestMonth and moved to the first
// of its month; end is clamped to the current time. An end before start gives
// an empty result without any request.
func (c *Client) PageViewStats(ctx context.Context, title, language string, start, end time.Time) (*Stats, error) {
	if language == "" {
		language = DefaultLanguage
	}

	ctx, span := tracing.StartSpan(ctx, "pageviews.stats")
	defer span.End()
	tracing.AddPageAttributes(span, language, title)

	cursor, end := c.window(start, end)
	stats := &Stats{Monthly: make(map[string]map[string]interface{})}

	for cursor.Before(end) {
		month := cursor.Format(MonthKeyLayout)
		blob, err := c.month(ctx, title, language, month)
		if err != nil {
			err = fmt.Errorf("page views for %s/%s in %s: %w", language, title, month, err)
			tracing.RecordError(span, err)
			return nil, err
		}

		views, ok := totalViews(blob)
		if !ok {
			err := &apierrors.UnexpectedResponseShapeError{Path: "total_views"}
			tracing.RecordError(span, err)
			return nil, err
		}
		stats.Monthly[month] = blob
		stats.Total += views

		// from the first of a month this lands on the first of the next
		cursor = cursor.AddDate(0, 0, daysIn(cursor))
	}

	span.SetAttributes(
		attribute.Int("pageviews.months", len(stats.Monthly)),
		attribute.Int64("pageviews.total", stats.Total),
	)
	c.Logger.Debug("Page views fetched",
		"title", title,
		"language", language,
		"months", len(stats.Monthly),
		"total", stats.Total)

	return stats, nil
}

// window applies the date clamping rules and returns the first month to fetch
// and the exclusive upper bound
func (c *Client) window(start, end time.Time) (time.Time, time.Time) {
	start = start.UTC()
	if start.Before(EarliestMonth) {
		start = EarliestMonth
	}
	start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)

	end = end.UTC()
	if now := c.now().UTC(); end.After(now) {
		end = now
	}
	return start, end
}

func (c *Client) month(ctx context.Context, title, language, month string) (map[string]interface{}, error) {
	metrics.PageViewMonths.Inc()

	var blob map[string]interface{}
	err := c.DoJSON(ctx, base.RequestConfig{
		URL:     c.monthURL(title, language, month),
		Service: service,
		Action:  "monthly",
	}, &blob)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, &apierrors.UnexpectedResponseShapeError{Path: "total_views"}
	}
	return blob, nil
}

// monthURL builds <base>/<language>/<YYYYMM>/<title>, escaping the title as UTF-8
func (c *Client) monthURL(title, language, month string) string {
	return c.baseURL + "/" + url.PathEscape(language) + "/" + month + "/" + url.PathEscape(title)
}

func totalViews(blob map[string]interface{}) (int64, bool) {
	switch v := blob["total_views"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// daysIn returns the number of days in t's month
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
