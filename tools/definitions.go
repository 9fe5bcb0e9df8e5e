package tools

const (
	serviceWikipedia = "wikipedia"
	servicePageViews = "pageviews"
)

// AllTools contains all tool specifications for the Wikipedia MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_search",
		Method:   "Search",
		Title:    "Search Wikipedia Titles",
		Category: CategorySearch,
		Service:  serviceWikipedia,
		Description: `Suggest Wikipedia article titles matching a text prefix (opensearch).

USE WHEN: User asks "is there an article about X", "what is the Wikipedia page for X", or the exact title is unknown.

NOT FOR: Reading an article (use wikipedia_get_html or wikipedia_get_wikitext once the title is known).

PARAMETERS:
- query: Text to match (required)
- language: Language edition, e.g. en, de, zh-min-nan (default en)
- limit: Max suggestions (default 10, max 500)

RETURNS: Suggested titles with short descriptions and URLs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// READ TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_get_wikitext",
		Method:   "GetWikitext",
		Title:    "Get Article Wikitext",
		Category: CategoryRead,
		Service:  serviceWikipedia,
		Description: `Get the raw wikitext source of an article's latest revision. Redirects are followed.

USE WHEN: User needs the article markup, templates or infobox source.

NOT FOR: Reading prose (use wikipedia_get_html with format=text).

PARAMETERS:
- title: Article title (required)
- language: Language edition (default en)

RETURNS: Wikitext and revision id. Fails with not found when the article does not exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_html",
		Method:   "GetHTML",
		Title:    "Get Rendered Article",
		Category: CategoryRead,
		Service:  serviceWikipedia,
		Description: `Get the rendered article body as HTML or plain text. Redirects are followed.

USE WHEN: User says "read the Wikipedia article on X", "what does Wikipedia say about X".

NOT FOR: Markup source (use wikipedia_get_wikitext); other language editions (use wikipedia_get_article_in_language).

PARAMETERS:
- title: Article title (required)
- language: Language edition (default en)
- format: html (default) or text

RETURNS: Article body and revision id.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// LANGUAGE TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_get_language_links",
		Method:   "GetLanguageLinks",
		Title:    "Get Language Links",
		Category: CategoryLanguages,
		Service:  serviceWikipedia,
		Description: `List the titles of an article in other language editions.

USE WHEN: User asks "what is X called in German", "which languages have an article on X".

NOT FOR: Fetching the translated article itself (use wikipedia_get_article_in_language).

PARAMETERS:
- title: Article title (required)
- language: Language of the given title (default en)
- limit: Max links (default and max 500; longer lists are truncated)

RETURNS: Map of language code to title.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_language_links_batch",
		Method:   "GetLanguageLinksBatch",
		Title:    "Get Language Links (Batch)",
		Category: CategoryLanguages,
		Service:  serviceWikipedia,
		Description: `List other-language titles for up to 50 articles in one request.

USE WHEN: User needs translations of several article titles at once.

NOT FOR: A single title (use wikipedia_get_language_links).

PARAMETERS:
- titles: Article titles (required, max 50)
- language: Language of the given titles (default en)
- limit: Max links across all titles (default and max 500)

RETURNS: For each title as given, a map of language code to title. Titles without links map to an empty object.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_article_in_language",
		Method:   "GetArticleInLanguage",
		Title:    "Get Article in Another Language",
		Category: CategoryLanguages,
		Service:  serviceWikipedia,
		Description: `Fetch the version of an article from another language edition by following its inter-language link.

USE WHEN: User says "show me the French article on X", "read the German Wikipedia page for Berlin".

NOT FOR: Only listing available languages (use wikipedia_get_language_links).

PARAMETERS:
- title: Title in the source language (required)
- source_language: Language of the title (default en)
- target_language: Language edition to fetch (required)
- format: html (default) or text

RETURNS: The target-language title and body. supported=false when that edition has no version of the article.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// CATEGORY TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_list_categories",
		Method:   "ListCategories",
		Title:    "List Article Categories",
		Category: CategoryCategories,
		Service:  serviceWikipedia,
		Description: `List the categories an article belongs to, following continuation until done.

USE WHEN: User asks "what categories is X in", "how is X classified on Wikipedia".

NOT FOR: Pages inside a category (use wikipedia_list_category_members).

PARAMETERS:
- title: Article title (required)
- language: Language edition (default en)
- limit: Max categories (default all)

RETURNS: Category titles in server order.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_list_category_members",
		Method:   "ListCategoryMembers",
		Title:    "List Category Members",
		Category: CategoryCategories,
		Service:  serviceWikipedia,
		Description: `List the pages in a category.

USE WHEN: User asks "which articles are in Category:X", "list all X on Wikipedia".

NOT FOR: An article's own categories (use wikipedia_list_categories).

PARAMETERS:
- category: Category name, with or without the Category: prefix (required)
- language: Language edition (default en)
- limit: Max members (default 100)

RETURNS: Member titles in server order, truncated to limit.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// STATS TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_get_page_views",
		Method:   "GetPageViews",
		Title:    "Get Monthly Page Views",
		Category: CategoryStats,
		Service:  servicePageViews,
		Description: `Get monthly view counts for an article from stats.grok.se, one request per month.

USE WHEN: User asks "how popular is the X article", "how many views did X get in 2014".

NOT FOR: Article content (use the read tools).

PARAMETERS:
- title: Article title (required)
- language: Language edition (default en)
- start_date: YYYY-MM-DD, clamped to 2007-12-01 (required)
- end_date: YYYY-MM-DD, exclusive, clamped to today (default today)

RETURNS: Raw monthly statistics keyed YYYYMM and the total across months.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// MARKUP TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_get_sections",
		Method:   "GetSections",
		Title:    "Get Article Sections",
		Category: CategoryMarkup,
		Service:  serviceWikipedia,
		Description: `Split an article's wikitext at its == headers ==.

USE WHEN: User wants the outline of an article or the text of one section.

NOT FOR: Rendered prose (use wikipedia_get_html).

PARAMETERS:
- title: Article title (required)
- language: Language edition (default en)
- headers_only: Return headers and levels without bodies (default false)

RETURNS: Sections in order. Text before the first header is returned as a section with an empty header.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_links",
		Method:   "GetLinks",
		Title:    "Get Internal Links",
		Category: CategoryMarkup,
		Service:  serviceWikipedia,
		Description: `Extract the [[internal links]] of an article's wikitext.

USE WHEN: User asks "what does the X article link to", "which pages are referenced from X".

NOT FOR: Other-language versions (use wikipedia_get_language_links).

PARAMETERS:
- title: Article title (required)
- language: Language edition (default en)
- ordered: Return every link in document order instead of a map (default false)

RETURNS: Map of display text to target title (later links with the same display text win), or an ordered list of target/display pairs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
