package wikipedia

// RawText is an article's wikitext at a given revision
type RawText struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	RevisionID int    `json:"revision_id"`
}

// RenderedText is an article rendered to HTML at a given revision
type RenderedText struct {
	Title      string `json:"title"`
	HTML       string `json:"html"`
	RevisionID int    `json:"revision_id"`
}

// Suggestion is one opensearch hit
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}
