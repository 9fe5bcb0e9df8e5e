package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector covers rendered-page chrome that carries no article text.
const noiseSelector = "script, style, sup.reference, span.mw-editsection, table.navbox, div.reflist, .mw-empty-elt"

// blockSelector lists the elements rendered as separate paragraphs.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, dd, blockquote"

// HTMLToText renders article HTML as plain text, one block per paragraph.
// Edit links, reference markers, scripts and navigation boxes are dropped.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Nested blocks are emitted by their own match.
		if sel.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		if text := collapseSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return collapseSpace(doc.Text()), nil
	}
	return strings.Join(blocks, "\n\n"), nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
