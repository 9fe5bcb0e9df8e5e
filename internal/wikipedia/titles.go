package wikipedia

// The API may rewrite a requested title twice: normalization (case, underscores,
// whitespace) and then redirect resolution. Pages in the response carry the
// final title, while callers expect results under the spelling they sent.

// resolveTitle follows the normalization and redirect tables forward
func resolveTitle(title string, resp Response) string {
	for _, n := range resp.normalized() {
		if n.From == title {
			title = n.To
			break
		}
	}
	for _, r := range resp.redirects() {
		if r.From == title {
			title = r.To
			break
		}
	}
	return title
}

// ResolvePageID finds the page id the response assigned to title, after
// normalization and redirect substitution. It returns (0, false) when no page
// matches or the matching page is missing.
func ResolvePageID(title string, resp Response) (int, bool) {
	target := resolveTitle(title, resp)
	for _, page := range resp.pages() {
		if getString(page["title"]) != target {
			continue
		}
		if has(page, "missing") || has(page, "invalid") {
			return 0, false
		}
		id := getInt(page["pageid"])
		return id, id != 0
	}
	return 0, false
}

// Unnormalize maps each title the server reports back to the title the caller
// sent. Titles the server left untouched map to themselves. When several
// caller titles resolve to the same page only the last is kept; use Originals
// when every spelling matters.
func Unnormalize(titles []string, resp Response) map[string]string {
	originals := make(map[string]string, len(titles))
	for _, t := range titles {
		originals[resolveTitle(t, resp)] = t
	}
	return originals
}

// Originals maps each title the server reports back to every caller title that
// resolved to it, in request order.
func Originals(titles []string, resp Response) map[string][]string {
	originals := make(map[string][]string, len(titles))
	for _, t := range titles {
		resolved := resolveTitle(t, resp)
		originals[resolved] = append(originals[resolved], t)
	}
	return originals
}

// pageByTitle returns the response page for title, or nil
func pageByTitle(title string, resp Response) map[string]interface{} {
	target := resolveTitle(title, resp)
	for _, page := range resp.pages() {
		if getString(page["title"]) == target {
			return page
		}
	}
	return nil
}
