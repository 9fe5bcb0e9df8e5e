package wikipedia

import (
	"context"
	"iter"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
)

// pages issues req and keeps following continuation tokens found under key,
// yielding each response. The sequence ends when a response carries no token,
// on the first error, or when the consumer stops. It is not restartable.
func (c *Client) pages(ctx context.Context, req Request, key string) iter.Seq2[Response, error] {
	return func(yield func(Response, error) bool) {
		for n := 1; ; n++ {
			if c.maxPages > 0 && n > c.maxPages {
				c.Logger.Warn("Pagination cap reached",
					"action", req.Action,
					"continuation_key", key,
					"max_pages", c.maxPages)
				yield(nil, &apierrors.PaginationLimitError{MaxPages: c.maxPages})
				return
			}

			resp, err := c.query(ctx, req)
			if err != nil {
				yield(nil, err)
				return
			}
			metrics.RecordContinuationPage(key)

			if !yield(resp, nil) {
				return
			}

			tokens, ok := resp.continuation(key)
			if !ok {
				return
			}
			req = req.WithContinuation(tokens)
		}
	}
}

// Paginate lazily yields the items extract pulls from each result page.
// The next page is requested only after every item of the current one has
// been consumed, so stopping early saves the remaining requests.
func (c *Client) Paginate(ctx context.Context, req Request, key string, extract func(Response) []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for resp, err := range c.pages(ctx, req, key) {
			if err != nil {
				yield("", err)
				return
			}
			for _, item := range extract(resp) {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// collect gathers paginated items. With limit > 0 it stops fetching once
// limit items are in hand and returns exactly that many.
func (c *Client) collect(ctx context.Context, req Request, key string, extract func(Response) []string, limit int) ([]string, error) {
	items := make([]string, 0)
	for item, err := range c.Paginate(ctx, req, key, extract) {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}
