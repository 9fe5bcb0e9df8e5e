package wikipedia

import (
	"sort"
	"strconv"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
)

// Response is a decoded object-shaped API response.
// Read it only through the accessors below: a missing path is an empty
// result, never a panic.
type Response map[string]interface{}

// titleMapping is one entry of query.normalized or query.redirects
type titleMapping struct {
	From string
	To   string
}

func getMap(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return nil
}

func getSlice(v interface{}) []interface{} {
	if s, ok := v.([]interface{}); ok {
		return s
	}
	return nil
}

func getString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func getInt(v interface{}) int {
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return 0
}

// has reports whether a flag key such as "missing" is present
func has(m map[string]interface{}, key string) bool {
	_, ok := m[key]
	return ok
}

func (r Response) query() map[string]interface{} {
	return getMap(r["query"])
}

// pages returns query.pages in ascending page-key order.
// Both the object form (formatversion=1) and the array form are accepted.
func (r Response) pages() []map[string]interface{} {
	raw := r.query()["pages"]

	if list := getSlice(raw); list != nil {
		pages := make([]map[string]interface{}, 0, len(list))
		for _, p := range list {
			if page := getMap(p); page != nil {
				pages = append(pages, page)
			}
		}
		return pages
	}

	byID := getMap(raw)
	keys := make([]string, 0, len(byID))
	for k := range byID {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	pages := make([]map[string]interface{}, 0, len(keys))
	for _, k := range keys {
		if page := getMap(byID[k]); page != nil {
			pages = append(pages, page)
		}
	}
	return pages
}

func (r Response) titleMappings(key string) []titleMapping {
	entries := getSlice(r.query()[key])
	mappings := make([]titleMapping, 0, len(entries))
	for _, e := range entries {
		m := getMap(e)
		from, to := getString(m["from"]), getString(m["to"])
		if from == "" || to == "" {
			continue
		}
		mappings = append(mappings, titleMapping{From: from, To: to})
	}
	return mappings
}

// normalized returns query.normalized (original -> normalized title)
func (r Response) normalized() []titleMapping {
	return r.titleMappings("normalized")
}

// redirects returns query.redirects (redirect page -> target page)
func (r Response) redirects() []titleMapping {
	return r.titleMappings("redirects")
}

// continuation returns the fields to merge into the next request when the
// response carries a token under key. The current API reports tokens in a
// top-level "continue" object; older servers use "query-continue.<list>".
func (r Response) continuation(key string) (map[string]string, bool) {
	if cont := getMap(r["continue"]); has(cont, key) {
		return tokenFields(cont), true
	}

	for _, v := range getMap(r["query-continue"]) {
		if list := getMap(v); has(list, key) {
			return tokenFields(list), true
		}
	}

	return nil, false
}

func tokenFields(m map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case float64:
			fields[k] = strconv.FormatFloat(val, 'f', -1, 64)
		}
	}
	return fields
}

// apiError returns the error object of a failed API call, if any
func (r Response) apiError() *apierrors.APIError {
	errObj := getMap(r["error"])
	if errObj == nil {
		return nil
	}
	return &apierrors.APIError{
		Code: getString(errObj["code"]),
		Info: getString(errObj["info"]),
	}
}
