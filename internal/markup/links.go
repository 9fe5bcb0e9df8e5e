package markup

import (
	"regexp"
	"strings"
)

// linkPattern matches the innermost [[...]] span.
var linkPattern = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

// LinkPair is one internal link in document order.
type LinkPair struct {
	Target  string `json:"target"`
	Display string `json:"display"`
}

// ExtractLinkPairs returns every [[target|display]] link in the order it
// appears. A link without a pipe uses its target as display text.
func ExtractLinkPairs(wikitext string) []LinkPair {
	matches := linkPattern.FindAllStringSubmatch(wikitext, -1)
	pairs := make([]LinkPair, 0, len(matches))
	for _, m := range matches {
		target, display, found := strings.Cut(m[1], "|")
		if !found {
			display = target
		}
		pairs = append(pairs, LinkPair{Target: target, Display: display})
	}
	return pairs
}

// ExtractLinks maps display text to link target.
//
// The map is keyed by display text, so when two different links share the
// same display text the later one wins and the earlier is dropped. Use
// ExtractLinkPairs when every link matters.
func ExtractLinks(wikitext string) map[string]string {
	pairs := ExtractLinkPairs(wikitext)
	links := make(map[string]string, len(pairs))
	for _, p := range pairs {
		links[p.Display] = p.Target
	}
	return links
}
