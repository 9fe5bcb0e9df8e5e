// Package markup extracts structure from raw wikitext and rendered article HTML.
// It works on text that has already been fetched and never touches the network.
package markup

import (
	"regexp"
	"strings"
)

// headerPattern matches a section header delimiter such as "== History ==".
// Header text stays on one line and ends at the first run of two or more "=",
// so a single "=" inside it ("== E=mc2 ==") is part of the text.
var headerPattern = regexp.MustCompile(`(={2,})([^\n]+?)(={2,})`)

// Section is one header/body pair of an article.
// The lead section has an empty Header and Level 0.
type Section struct {
	Header string `json:"header"`
	Level  int    `json:"level"`
	Body   string `json:"body"`
}

// SplitSections splits wikitext on section headers.
//
// Text before the first header becomes a lead section with an empty header,
// included only when non-empty. Each body is the exact text between the end of
// its header delimiter and the start of the next one; delimiters never appear
// in a body.
func SplitSections(wikitext string) []Section {
	matches := headerPattern.FindAllStringSubmatchIndex(wikitext, -1)
	sections := make([]Section, 0, len(matches)+1)

	if len(matches) == 0 {
		if wikitext != "" {
			sections = append(sections, Section{Body: wikitext})
		}
		return sections
	}

	if lead := wikitext[:matches[0][0]]; lead != "" {
		sections = append(sections, Section{Body: lead})
	}

	for i, m := range matches {
		bodyEnd := len(wikitext)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		sections = append(sections, Section{
			Header: strings.TrimSpace(wikitext[m[4]:m[5]]),
			Level:  min(m[3]-m[2], m[7]-m[6]),
			Body:   wikitext[m[1]:bodyEnd],
		})
	}

	return sections
}

// Headers returns the section headers in document order, lead excluded.
func Headers(wikitext string) []string {
	var headers []string
	for _, s := range SplitSections(wikitext) {
		if s.Header != "" {
			headers = append(headers, s.Header)
		}
	}
	return headers
}
