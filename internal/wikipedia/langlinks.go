package wikipedia

import (
	"context"
	"fmt"
	"maps"
	"net/url"
	"strconv"
	"strings"
)

// LanguageLinks returns the inter-language links of an article as a map of
// language code to the article's title in that language.
//
// The lookup is a single request capped at limit links (500 when limit <= 0
// or above 500); longer link lists are truncated by the server. An empty map
// means the article has no links or does not exist.
func (c *Client) LanguageLinks(ctx context.Context, title, language string, limit int) (map[string]string, error) {
	return c.languageLinks(ctx, title, c.language(language), "", limit)
}

// languageLinks optionally filters server-side to a single target language,
// which keeps the link being looked for out of reach of the per-request cap.
func (c *Client) languageLinks(ctx context.Context, title, language, only string, limit int) (map[string]string, error) {
	params := url.Values{
		"titles":    {title},
		"prop":      {"langlinks"},
		"lllimit":   {strconv.Itoa(clampLimit(limit))},
		"redirects": {"1"},
	}
	if only != "" {
		params.Set("lllang", only)
	}

	resp, err := c.query(ctx, NewRequest(ActionQuery, params, language))
	if err != nil {
		return nil, fmt.Errorf("language links of %q: %w", title, err)
	}

	page := pageByTitle(title, resp)
	if page == nil {
		if pages := resp.pages(); len(pages) > 0 {
			page = pages[0]
		}
	}
	return langLinksOf(page), nil
}

// LanguageLinksBatch resolves the inter-language links of several articles in
// one request. Results are keyed by the titles exactly as given, even when the
// server normalized or redirected them. Every requested title is present;
// articles without links, and missing articles, map to an empty map.
//
// limit caps the links returned across the whole batch, as the server applies
// lllimit to the request rather than to each page.
func (c *Client) LanguageLinksBatch(ctx context.Context, titles []string, language string, limit int) (map[string]map[string]string, error) {
	result := make(map[string]map[string]string, len(titles))
	for _, t := range titles {
		result[t] = map[string]string{}
	}
	if len(titles) == 0 {
		return result, nil
	}

	language = c.language(language)
	req := NewRequest(ActionQuery, url.Values{
		"titles":    {strings.Join(titles, "|")},
		"prop":      {"langlinks"},
		"lllimit":   {strconv.Itoa(clampLimit(limit))},
		"redirects": {"1"},
	}, language)

	resp, err := c.query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("language links of %d titles: %w", len(titles), err)
	}

	originals := Originals(titles, resp)
	for _, page := range resp.pages() {
		serverTitle := getString(page["title"])
		requested, ok := originals[serverTitle]
		if !ok {
			c.Logger.Warn("Dropping page not matching any requested title",
				"title", serverTitle,
				"language", language)
			continue
		}
		links := langLinksOf(page)
		for _, original := range requested {
			result[original] = maps.Clone(links)
		}
	}

	return result, nil
}

// langLinksOf reads page.langlinks[] into a lang -> title map
func langLinksOf(page map[string]interface{}) map[string]string {
	links := map[string]string{}
	for _, l := range getSlice(page["langlinks"]) {
		link := getMap(l)
		lang := getString(link["lang"])
		if lang == "" {
			continue
		}
		title := getString(link["*"])
		if title == "" {
			title = getString(link["title"])
		}
		links[lang] = title
	}
	return links
}
