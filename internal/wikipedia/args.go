package wikipedia

import "github.com/olgasafonova/wikipedia-mcp-server/internal/markup"

// Output formats for rendered articles
const (
	FormatHTML = "html"
	FormatText = "text"
)

// SearchArgs contains parameters for an opensearch query
type SearchArgs struct {
	Query    string `json:"query" jsonschema:"required" jsonschema_description:"Text to search article titles for"`
	Language string `json:"language,omitempty" jsonschema_description:"Wikipedia language code (default: en)"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum suggestions (default: 10, max 500)"`
}

// SearchResult is the result of a search
type SearchResult struct {
	Query       string       `json:"query"`
	Language    string       `json:"language"`
	Suggestions []Suggestion `json:"suggestions"`
}

// GetWikitextArgs contains parameters for fetching raw wikitext
type GetWikitextArgs struct {
	Title    string `json:"title" jsonschema:"required" jsonschema_description:"Article title"`
	Language string `json:"language,omitempty" jsonschema_description:"Wikipedia language code (default: en)"`
}

// GetWikitextResult is the raw wikitext of an article
type GetWikitextResult struct {
	Title      string `json:"title"`
	Language   string `json:"language"`
	RevisionID int    `json:"revision_id"`
	Wikitext   string `json:"wikitext"`
}

// GetHTMLArgs contains parameters for fetching a rendered article
type GetHTMLArgs struct {
	Title    string `json:"title" jsonschema:"required" jsonschema_description:"Article title"`
	Language string `json:"language,omitempty" jsonschema_description:"Wikipedia language code (default: en)"`
	Format   string `json:"format,omitempty" jsonschema_description:"Output format: html (default) or text"`
}

// GetHTMLResult is a rendered article
type GetHTMLResult struct {
	Title      string `json:"title"`
	Language   string `json:"language"`
	RevisionID int    `json:"revision_id"`
	HTML       string `json:"html,omitempty"`
	Text       string `json:"text,omitempty"`
}

// GetLanguageLinksArgs contains parameters for inter-language link lookup
type GetLanguageLinksArgs struct {
	Title    string `json:"title" jsonschema:"required" jsonschema_description:"Article title"`
	Language string `json:"language,omitempty" jsonschema_description:"Language of the article (default: en)"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum links (default and max: 500)"`
}

// GetLanguageLinksResult maps language codes to article titles
type GetLanguageLinksResult struct {
	Title    string            `json:"title"`
	Language string            `json:"language"`
	Links    map[string]string `json:"links"`
	Count    int               `json:"count"`
}

// GetLanguageLinksBatchArgs contains parameters for a multi-title link lookup
type GetLanguageLinksBatchArgs struct {
	Titles   []string `json:"titles" jsonschema:"required" jsonschema_description:"Article titles (max 50)"`
	Language string   `json:"language,omitempty" jsonschema_description:"Language of the articles (default: en)"`
	Limit    int      `json:"limit,omitempty" jsonschema_description:"Maximum links across all titles (default and max: 500)"`
}

// GetLanguageLinksBatchResult maps each requested title to its links
type GetLanguageLinksBatchResult struct {
	Language string                       `json:"language"`
	Links    map[string]map[string]string `json:"links"`
}

// GetArticleInLanguageArgs contains parameters for a cross-language fetch
type GetArticleInLanguageArgs struct {
	Title          string `json:"title" jsonschema:"required" jsonschema_description:"Article title in the source language"`
	SourceLanguage string `json:"source_language,omitempty" jsonschema_description:"Language of the given title (default: en)"`
	TargetLanguage string `json:"target_language" jsonschema:"required" jsonschema_description:"Language edition to fetch"`
	Format         string `json:"format,omitempty" jsonschema_description:"Output format: html (default) or text"`
}

// GetArticleInLanguageResult is the article in the target language.
// Supported is false when no version exists in that language.
type GetArticleInLanguageResult struct {
	Supported   bool   `json:"supported"`
	SourceTitle string `json:"source_title"`
	Title       string `json:"title,omitempty"`
	Language    string `json:"language"`
	RevisionID  int    `json:"revision_id,omitempty"`
	HTML        string `json:"html,omitempty"`
	Text        string `json:"text,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ListCategoriesArgs contains parameters for listing an article's categories
type ListCategoriesArgs struct {
	Title    string `json:"title" jsonschema:"required" jsonschema_description:"Article title"`
	Language string `json:"language,omitempty" jsonschema_description:"Wikipedia language code (default: en)"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum categories (default: all)"`
}

// ListCategoriesResult lists an article's categories
type ListCategoriesResult struct {
	Title      string   `json:"title"`
	Language   string   `json:"language"`
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

// ListCategoryMembersArgs contains parameters for listing category members
type ListCategoryMembersArgs struct {
	Category string `json:"category" jsonschema:"required" jsonschema_description:"Category name, with or without the Category: prefix"`
	Language string `json:"language,omitempty" jsonschema_description:"Wikipedia language code (default: en)"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum members (default: 100)"`
}

// ListCategoryMembersResult lists the pages in a category
type ListCategoryMembersResult struct {
	Category string   `json:"category"`
	Language string   `json:"language"`
	Members  []string `json:"members"`
	Count    int      `json:"count"`
}

// GetSectionsArgs contains parameters for splitting an article into sections
type GetSectionsArgs struct {
	Title       string `json:"title" jsonschema:"required" jsonschema_description:"Article title"`
	Language    string `json:"language,omitempty" jsonschema_description:"Wikipedia language code (default: en)"`
	HeadersOnly bool   `json:"headers_only,omitempty" jsonschema_description:"Return section headers without bodies (default: false)"`
}

// GetSectionsResult is an article split at its section headers
type GetSectionsResult struct {
	Title      string           `json:"title"`
	Language   string           `json:"language"`
	RevisionID int              `json:"revision_id"`
	Sections   []markup.Section `json:"sections"`
}

// GetLinksArgs contains parameters for extracting an article's internal links
type GetLinksArgs struct {
	Title    string `json:"title" jsonschema:"required" jsonschema_description:"Article title"`
	Language string `json:"language,omitempty" jsonschema_description:"Wikipedia language code (default: en)"`
	Ordered  bool   `json:"ordered,omitempty" jsonschema_description:"Return every link in document order instead of a display-text map (default: false)"`
}

// GetLinksResult holds an article's internal links. Links is keyed by display
// text and keeps only the last link per display text; Pairs keeps them all.
type GetLinksResult struct {
	Title    string            `json:"title"`
	Language string            `json:"language"`
	Links    map[string]string `json:"links,omitempty"`
	Pairs    []markup.LinkPair `json:"pairs,omitempty"`
	Count    int               `json:"count"`
}
