// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are declared as ToolSpecs and bound to client methods with
// type-safe handlers, keeping main.go free of per-tool boilerplate.
package tools

import (
	"fmt"
	"strings"
)

// Categories group tools in traces and logs
const (
	CategorySearch     = "search"
	CategoryRead       = "read"
	CategoryLanguages  = "languages"
	CategoryCategories = "categories"
	CategoryStats      = "stats"
	CategoryMarkup     = "markup"
)

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "wikipedia_search")
	Name string

	// Method is the client method name (e.g., "Search")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (search, read, languages, etc.)
	Category string

	// Service is the upstream the tool talks to ("wikipedia" or "pageviews")
	Service string

	// ReadOnly indicates the tool doesn't modify remote state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ToolsByService returns the tools that call the given upstream service
func ToolsByService(service string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Service == service {
			out = append(out, spec)
		}
	}
	return out
}

// ToolsByCategory returns the tools in one category
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}

// categoryOrder lists categories in the order Instructions presents them
var categoryOrder = []string{CategorySearch, CategoryRead, CategoryLanguages, CategoryCategories, CategoryStats, CategoryMarkup}

// Instructions renders the MCP server instructions: a summary line per tool,
// grouped by category.
func Instructions() string {
	var b strings.Builder
	b.WriteString("Wikipedia MCP Server reads articles, language links, categories and page-view statistics from Wikipedia.\n")
	b.WriteString("Every tool takes an optional language code (default en) selecting the language edition.\n")
	for _, category := range categoryOrder {
		specs := ToolsByCategory(category)
		if len(specs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(category[:1])+category[1:])
		for _, spec := range specs {
			summary, _, _ := strings.Cut(spec.Description, "\n")
			fmt.Fprintf(&b, "- %s: %s\n", spec.Name, summary)
		}
	}
	return b.String()
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
