package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
)

// FetchRawText returns the current wikitext of an article, following redirects.
//
// A title that does not exist fails with *errors.NotFoundError. An existing
// page with an empty revision is valid content, not a missing page.
func (c *Client) FetchRawText(ctx context.Context, title, language string) (*RawText, error) {
	language = c.language(language)

	req := NewRequest(ActionQuery, url.Values{
		"titles":    {title},
		"prop":      {"revisions"},
		"rvprop":    {"content|ids"},
		"redirects": {"1"},
	}, language)

	resp, err := c.query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch wikitext of %q: %w", title, err)
	}

	// A single-title query returns at most one page
	page := pageByTitle(title, resp)
	if page == nil {
		if pages := resp.pages(); len(pages) > 0 {
			page = pages[0]
		}
	}
	if page == nil || has(page, "missing") || has(page, "invalid") {
		return nil, apierrors.NewNotFoundError(language, title)
	}

	revisions := getSlice(page["revisions"])
	if len(revisions) == 0 {
		return nil, apierrors.NewNotFoundError(language, title)
	}
	rev := getMap(revisions[0])
	if rev == nil {
		return nil, &apierrors.UnexpectedResponseShapeError{Path: "query.pages.*.revisions[0]"}
	}

	text, ok := revisionContent(rev)
	if !ok {
		return nil, &apierrors.UnexpectedResponseShapeError{Path: "query.pages.*.revisions[0].*"}
	}

	revID := getInt(rev["revid"])
	if revID == 0 {
		revID = getInt(page["lastrevid"])
	}

	metrics.RecordContentSize("wikitext", len(text))

	return &RawText{
		Title:      title,
		Text:       text,
		RevisionID: revID,
	}, nil
}

// revisionContent reads revision text from the legacy "*" field, the
// formatversion=2 "content" field, or the multi-content slots layout.
func revisionContent(rev map[string]interface{}) (string, bool) {
	if s, ok := rev["*"].(string); ok {
		return s, true
	}
	if s, ok := rev["content"].(string); ok {
		return s, true
	}
	slot := getMap(getMap(rev["slots"])["main"])
	if s, ok := slot["*"].(string); ok {
		return s, true
	}
	if s, ok := slot["content"].(string); ok {
		return s, true
	}
	return "", false
}

// FetchRenderedText returns an article rendered to HTML, following redirects.
// A title that does not exist fails with *errors.NotFoundError.
func (c *Client) FetchRenderedText(ctx context.Context, title, language string) (*RenderedText, error) {
	language = c.language(language)

	req := NewRequest(ActionParse, url.Values{
		"page":      {title},
		"prop":      {"text|revid"},
		"redirects": {"1"},
	}, language)

	resp, err := c.query(ctx, req)
	if err != nil {
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) && apiErr.Code == "missingtitle" {
			return nil, apierrors.NewNotFoundError(language, title)
		}
		return nil, fmt.Errorf("fetch rendered text of %q: %w", title, err)
	}

	parse := getMap(resp["parse"])
	if parse == nil {
		return nil, &apierrors.UnexpectedResponseShapeError{Path: "parse"}
	}

	var html string
	switch text := parse["text"].(type) {
	case map[string]interface{}:
		s, ok := text["*"].(string)
		if !ok {
			return nil, &apierrors.UnexpectedResponseShapeError{Path: "parse.text.*"}
		}
		html = s
	case string:
		html = text
	default:
		return nil, &apierrors.UnexpectedResponseShapeError{Path: "parse.text"}
	}

	metrics.RecordContentSize("html", len(html))

	return &RenderedText{
		Title:      title,
		HTML:       html,
		RevisionID: getInt(parse["revid"]),
	}, nil
}

// FetchCrossLanguageArticle fetches the rendered version of an article in
// another language edition by following its inter-language link.
//
// When source and target are the same language this is a plain
// FetchRenderedText with no link lookup. When the article has no link to the
// target language it fails with *errors.LanguageNotSupportedError; callers
// should treat that as an expected outcome.
func (c *Client) FetchCrossLanguageArticle(ctx context.Context, title, sourceLanguage, targetLanguage string) (*RenderedText, error) {
	sourceLanguage = c.language(sourceLanguage)
	targetLanguage = c.language(targetLanguage)

	if sourceLanguage == targetLanguage {
		return c.FetchRenderedText(ctx, title, sourceLanguage)
	}

	links, err := c.languageLinks(ctx, title, sourceLanguage, targetLanguage, 0)
	if err != nil {
		return nil, err
	}

	linked, ok := links[targetLanguage]
	if !ok || linked == "" {
		c.Logger.Debug("No inter-language link",
			"title", title,
			"source", sourceLanguage,
			"target", targetLanguage)
		return nil, &apierrors.LanguageNotSupportedError{
			Title:          title,
			SourceLanguage: sourceLanguage,
			TargetLanguage: targetLanguage,
		}
	}

	return c.FetchRenderedText(ctx, linked, targetLanguage)
}
