package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ListCategories returns the categories an article belongs to, in server
// order, following clcontinue until exhausted. limit <= 0 means unbounded.
func (c *Client) ListCategories(ctx context.Context, title, language string, limit int) ([]string, error) {
	req := NewRequest(ActionQuery, url.Values{
		"titles":    {title},
		"prop":      {"categories"},
		"cllimit":   {"max"},
		"redirects": {"1"},
	}, c.language(language))

	categories, err := c.collect(ctx, req, "clcontinue", extractCategories, limit)
	if err != nil {
		return nil, fmt.Errorf("categories of %q: %w", title, err)
	}
	return categories, nil
}

func extractCategories(resp Response) []string {
	var titles []string
	for _, page := range resp.pages() {
		for _, cat := range getSlice(page["categories"]) {
			if t := getString(getMap(cat)["title"]); t != "" {
				titles = append(titles, t)
			}
		}
	}
	return titles
}

// ListCategoryMembers returns the titles of pages in a category, in server
// order, following cmcontinue until limit titles are gathered. Each request
// asks for at most 500 members. limit <= 0 means unbounded.
func (c *Client) ListCategoryMembers(ctx context.Context, category, language string, limit int) ([]string, error) {
	category = normalizeCategoryName(category)

	req := NewRequest(ActionQuery, url.Values{
		"list":    {"categorymembers"},
		"cmtitle": {category},
		"cmlimit": {strconv.Itoa(clampLimit(limit))},
	}, c.language(language))

	members, err := c.collect(ctx, req, "cmcontinue", extractCategoryMembers, limit)
	if err != nil {
		return nil, fmt.Errorf("members of %q: %w", category, err)
	}
	return members, nil
}

func extractCategoryMembers(resp Response) []string {
	var titles []string
	for _, m := range getSlice(resp.query()["categorymembers"]) {
		if t := getString(getMap(m)["title"]); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

// normalizeCategoryName adds the Category: namespace to a bare name.
// Names that already carry a namespace, localized or not, are kept as is.
func normalizeCategoryName(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, ":") {
		return name
	}
	return "Category:" + name
}
