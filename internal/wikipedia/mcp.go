package wikipedia

import (
	"context"
	"errors"
	"fmt"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikipedia-mcp-server/internal/markup"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

const (
	defaultSearchLimit  = 10
	defaultMembersLimit = 100
)

// SearchMCP is the MCP wrapper for OpenSearch
func (c *Client) SearchMCP(ctx context.Context, args SearchArgs) (SearchResult, error) {
	if err := ValidateSearchQuery(args.Query); err != nil {
		return SearchResult{}, err
	}
	if err := validateCommon(args.Language, args.Limit, MaxResultsPerRequest); err != nil {
		return SearchResult{}, err
	}

	limit := args.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}
	lang := c.language(args.Language)

	raw, err := c.openSearch(ctx, args.Query, lang, limit)
	if err != nil {
		return SearchResult{}, err
	}
	suggestions, err := ParseSuggestions(raw)
	if err != nil {
		return SearchResult{}, err
	}

	return SearchResult{
		Query:       args.Query,
		Language:    lang,
		Suggestions: suggestions,
	}, nil
}

// GetWikitextMCP is the MCP wrapper for FetchRawText
func (c *Client) GetWikitextMCP(ctx context.Context, args GetWikitextArgs) (GetWikitextResult, error) {
	if err := validateArticle(args.Title, args.Language); err != nil {
		return GetWikitextResult{}, err
	}

	lang := c.language(args.Language)
	raw, err := c.FetchRawText(ctx, args.Title, lang)
	if err != nil {
		return GetWikitextResult{}, err
	}

	return GetWikitextResult{
		Title:      raw.Title,
		Language:   lang,
		RevisionID: raw.RevisionID,
		Wikitext:   raw.Text,
	}, nil
}

// GetHTMLMCP is the MCP wrapper for FetchRenderedText
func (c *Client) GetHTMLMCP(ctx context.Context, args GetHTMLArgs) (GetHTMLResult, error) {
	if err := validateArticle(args.Title, args.Language); err != nil {
		return GetHTMLResult{}, err
	}
	if err := ValidateFormat(args.Format); err != nil {
		return GetHTMLResult{}, err
	}

	lang := c.language(args.Language)
	rendered, err := c.FetchRenderedText(ctx, args.Title, lang)
	if err != nil {
		return GetHTMLResult{}, err
	}

	result := GetHTMLResult{
		Title:      rendered.Title,
		Language:   lang,
		RevisionID: rendered.RevisionID,
	}
	if err := setBody(&result.HTML, &result.Text, rendered.HTML, args.Format); err != nil {
		return GetHTMLResult{}, err
	}
	return result, nil
}

// GetLanguageLinksMCP is the MCP wrapper for LanguageLinks
func (c *Client) GetLanguageLinksMCP(ctx context.Context, args GetLanguageLinksArgs) (GetLanguageLinksResult, error) {
	if err := validateArticle(args.Title, args.Language); err != nil {
		return GetLanguageLinksResult{}, err
	}
	if err := ValidateLimit(args.Limit, MaxResultsPerRequest); err != nil {
		return GetLanguageLinksResult{}, err
	}

	lang := c.language(args.Language)
	links, err := c.LanguageLinks(ctx, args.Title, lang, args.Limit)
	if err != nil {
		return GetLanguageLinksResult{}, err
	}

	return GetLanguageLinksResult{
		Title:    args.Title,
		Language: lang,
		Links:    links,
		Count:    len(links),
	}, nil
}

// GetLanguageLinksBatchMCP is the MCP wrapper for LanguageLinksBatch
func (c *Client) GetLanguageLinksBatchMCP(ctx context.Context, args GetLanguageLinksBatchArgs) (GetLanguageLinksBatchResult, error) {
	if err := ValidateTitles(args.Titles); err != nil {
		return GetLanguageLinksBatchResult{}, err
	}
	if err := validateCommon(args.Language, args.Limit, MaxResultsPerRequest); err != nil {
		return GetLanguageLinksBatchResult{}, err
	}

	lang := c.language(args.Language)
	links, err := c.LanguageLinksBatch(ctx, args.Titles, lang, args.Limit)
	if err != nil {
		return GetLanguageLinksBatchResult{}, err
	}

	return GetLanguageLinksBatchResult{
		Language: lang,
		Links:    links,
	}, nil
}

// GetArticleInLanguageMCP is the MCP wrapper for FetchCrossLanguageArticle.
// A missing target-language version is reported as Supported=false, not as an error.
func (c *Client) GetArticleInLanguageMCP(ctx context.Context, args GetArticleInLanguageArgs) (GetArticleInLanguageResult, error) {
	if err := validateArticle(args.Title, args.SourceLanguage); err != nil {
		return GetArticleInLanguageResult{}, err
	}
	if args.TargetLanguage == "" {
		return GetArticleInLanguageResult{}, apierrors.NewValidationError("target_language", "", "target language is required")
	}
	if err := ValidateLanguage(args.TargetLanguage); err != nil {
		return GetArticleInLanguageResult{}, err
	}
	if err := ValidateFormat(args.Format); err != nil {
		return GetArticleInLanguageResult{}, err
	}

	source := c.language(args.SourceLanguage)
	rendered, err := c.FetchCrossLanguageArticle(ctx, args.Title, source, args.TargetLanguage)
	if err != nil {
		var unsupported *apierrors.LanguageNotSupportedError
		if errors.As(err, &unsupported) {
			return GetArticleInLanguageResult{
				Supported:   false,
				SourceTitle: args.Title,
				Language:    args.TargetLanguage,
				Message:     fmt.Sprintf("No %s version of %s.wikipedia article: %s", args.TargetLanguage, source, args.Title),
			}, nil
		}
		return GetArticleInLanguageResult{}, err
	}

	result := GetArticleInLanguageResult{
		Supported:   true,
		SourceTitle: args.Title,
		Title:       rendered.Title,
		Language:    args.TargetLanguage,
		RevisionID:  rendered.RevisionID,
	}
	if err := setBody(&result.HTML, &result.Text, rendered.HTML, args.Format); err != nil {
		return GetArticleInLanguageResult{}, err
	}
	return result, nil
}

// ListCategoriesMCP is the MCP wrapper for ListCategories
func (c *Client) ListCategoriesMCP(ctx context.Context, args ListCategoriesArgs) (ListCategoriesResult, error) {
	if err := validateArticle(args.Title, args.Language); err != nil {
		return ListCategoriesResult{}, err
	}
	if err := ValidateLimit(args.Limit, 0); err != nil {
		return ListCategoriesResult{}, err
	}

	lang := c.language(args.Language)
	categories, err := c.ListCategories(ctx, args.Title, lang, args.Limit)
	if err != nil {
		return ListCategoriesResult{}, err
	}

	return ListCategoriesResult{
		Title:      args.Title,
		Language:   lang,
		Categories: categories,
		Count:      len(categories),
	}, nil
}

// ListCategoryMembersMCP is the MCP wrapper for ListCategoryMembers
func (c *Client) ListCategoryMembersMCP(ctx context.Context, args ListCategoryMembersArgs) (ListCategoryMembersResult, error) {
	if err := validateArticle(args.Category, args.Language); err != nil {
		return ListCategoryMembersResult{}, err
	}
	if err := ValidateLimit(args.Limit, 0); err != nil {
		return ListCategoryMembersResult{}, err
	}

	limit := args.Limit
	if limit == 0 {
		limit = defaultMembersLimit
	}
	lang := c.language(args.Language)

	members, err := c.ListCategoryMembers(ctx, args.Category, lang, limit)
	if err != nil {
		return ListCategoryMembersResult{}, err
	}

	return ListCategoryMembersResult{
		Category: normalizeCategoryName(args.Category),
		Language: lang,
		Members:  members,
		Count:    len(members),
	}, nil
}

// GetSectionsMCP fetches an article's wikitext and splits it into sections
func (c *Client) GetSectionsMCP(ctx context.Context, args GetSectionsArgs) (GetSectionsResult, error) {
	if err := validateArticle(args.Title, args.Language); err != nil {
		return GetSectionsResult{}, err
	}

	lang := c.language(args.Language)
	raw, err := c.FetchRawText(ctx, args.Title, lang)
	if err != nil {
		return GetSectionsResult{}, err
	}

	sections := markup.SplitSections(raw.Text)
	if args.HeadersOnly {
		headers := make([]markup.Section, 0, len(sections))
		for _, s := range sections {
			if s.Header != "" {
				headers = append(headers, markup.Section{Header: s.Header, Level: s.Level})
			}
		}
		sections = headers
	}

	return GetSectionsResult{
		Title:      raw.Title,
		Language:   lang,
		RevisionID: raw.RevisionID,
		Sections:   sections,
	}, nil
}

// GetLinksMCP fetches an article's wikitext and extracts its internal links
func (c *Client) GetLinksMCP(ctx context.Context, args GetLinksArgs) (GetLinksResult, error) {
	if err := validateArticle(args.Title, args.Language); err != nil {
		return GetLinksResult{}, err
	}

	lang := c.language(args.Language)
	raw, err := c.FetchRawText(ctx, args.Title, lang)
	if err != nil {
		return GetLinksResult{}, err
	}

	result := GetLinksResult{
		Title:    raw.Title,
		Language: lang,
	}
	if args.Ordered {
		result.Pairs = markup.ExtractLinkPairs(raw.Text)
		result.Count = len(result.Pairs)
	} else {
		result.Links = markup.ExtractLinks(raw.Text)
		result.Count = len(result.Links)
	}
	return result, nil
}

func validateArticle(title, language string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	return ValidateLanguage(language)
}

func validateCommon(language string, limit, maxLimit int) error {
	if err := ValidateLanguage(language); err != nil {
		return err
	}
	return ValidateLimit(limit, maxLimit)
}

// setBody fills either the HTML or the plain-text field according to format
func setBody(htmlField, textField *string, html, format string) error {
	if format != FormatText {
		*htmlField = html
		return nil
	}
	text, err := markup.HTMLToText(html)
	if err != nil {
		return err
	}
	*textField = text
	return nil
}
