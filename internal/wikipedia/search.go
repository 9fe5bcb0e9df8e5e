package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
)

// OpenSearch runs a title-suggestion search and returns the decoded response
// unchanged: [query, [titles], [descriptions], [urls]].
func (c *Client) OpenSearch(ctx context.Context, query, language string) (interface{}, error) {
	return c.openSearch(ctx, query, language, 0)
}

func (c *Client) openSearch(ctx context.Context, query, language string, limit int) (interface{}, error) {
	params := url.Values{"search": {query}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	resp, err := c.Execute(ctx, NewRequest(ActionOpenSearch, params, language))
	if err != nil {
		return nil, fmt.Errorf("opensearch %q: %w", query, err)
	}
	return resp, nil
}

// ParseSuggestions converts a raw opensearch response into suggestions.
// Description and URL columns are optional.
func ParseSuggestions(raw interface{}) ([]Suggestion, error) {
	columns := getSlice(raw)
	if len(columns) < 2 {
		return nil, &apierrors.UnexpectedResponseShapeError{Path: "opensearch[1]"}
	}
	titles := getSlice(columns[1])
	if titles == nil && columns[1] != nil {
		return nil, &apierrors.UnexpectedResponseShapeError{Path: "opensearch[1]"}
	}

	var descriptions, urls []interface{}
	if len(columns) > 2 {
		descriptions = getSlice(columns[2])
	}
	if len(columns) > 3 {
		urls = getSlice(columns[3])
	}

	suggestions := make([]Suggestion, 0, len(titles))
	for i, t := range titles {
		s := Suggestion{Title: getString(t)}
		if i < len(descriptions) {
			s.Description = getString(descriptions[i])
		}
		if i < len(urls) {
			s.URL = getString(urls[i])
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}
