package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikipedia-mcp-server/internal/pageviews"
	"github.com/olgasafonova/wikipedia-mcp-server/internal/wikipedia"
	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
	"github.com/olgasafonova/wikipedia-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	wikiClient  *wikipedia.Client
	viewsClient *pageviews.Client
	logger      *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(wikiClient *wikipedia.Client, viewsClient *pageviews.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		wikiClient:  wikiClient,
		viewsClient: viewsClient,
		logger:      logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	registered := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			registered++
		}
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// registerByName dispatches to the correct typed registration function.
// It reports false for a spec whose method is unknown.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Wikipedia tools
	case "Search":
		register(h, server, tool, spec, h.wikiClient.SearchMCP)
	case "GetWikitext":
		register(h, server, tool, spec, h.wikiClient.GetWikitextMCP)
	case "GetHTML":
		register(h, server, tool, spec, h.wikiClient.GetHTMLMCP)
	case "GetLanguageLinks":
		register(h, server, tool, spec, h.wikiClient.GetLanguageLinksMCP)
	case "GetLanguageLinksBatch":
		register(h, server, tool, spec, h.wikiClient.GetLanguageLinksBatchMCP)
	case "GetArticleInLanguage":
		register(h, server, tool, spec, h.wikiClient.GetArticleInLanguageMCP)
	case "ListCategories":
		register(h, server, tool, spec, h.wikiClient.ListCategoriesMCP)
	case "ListCategoryMembers":
		register(h, server, tool, spec, h.wikiClient.ListCategoryMembersMCP)
	case "GetSections":
		register(h, server, tool, spec, h.wikiClient.GetSectionsMCP)
	case "GetLinks":
		register(h, server, tool, spec, h.wikiClient.GetLinksMCP)

	// Page-view tools
	case "GetPageViews":
		register(h, server, tool, spec, h.viewsClient.GetPageViewsMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return true
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register adds a tool to the MCP server, wrapping the client method with
// panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		return invoke(h, ctx, spec, method, args)
	})
}

// invoke runs one tool call. A panic in method is turned into an error result.
func invoke[Args, Result any](
	h *HandlerRegistry,
	ctx context.Context,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
	args Args,
) (_ *mcp.CallToolResult, result Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logPanic(spec.Name, rec)
			var zero Result
			result = zero
			err = fmt.Errorf("%s failed: internal error: %v", spec.Name, rec)
		}
	}()

	ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
	defer span.End()

	tracing.AddToolAttributes(span, spec.Name, spec.Category)
	span.SetAttributes(
		attribute.String("mcp.tool.service", spec.Service),
		attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
	)

	metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
	defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

	start := time.Now()
	result, err = method(ctx, args)
	duration := time.Since(start).Seconds()

	span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.RecordRequest(spec.Name, duration, false)
		h.logger.Info("Tool failed", "tool", spec.Name, "error", err)
		var zero Result
		return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
	}

	span.SetStatus(codes.Ok, "")
	metrics.RecordRequest(spec.Name, duration, true)
	h.logExecution(spec, args, result)
	return nil, result, nil
}

// logPanic records a panic recovered in a tool handler.
func (h *HandlerRegistry) logPanic(toolName string, rec any) {
	metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
	h.logger.Error("Panic recovered",
		"tool", toolName,
		"panic", rec,
		"stack", string(debug.Stack()))
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "service", spec.Service}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case wikipedia.SearchArgs:
		attrs = append(attrs, "query", a.Query, "language", a.Language)
	case wikipedia.GetWikitextArgs:
		attrs = append(attrs, "title", a.Title, "language", a.Language)
	case wikipedia.GetHTMLArgs:
		attrs = append(attrs, "title", a.Title, "language", a.Language, "format", a.Format)
	case wikipedia.GetLanguageLinksArgs:
		attrs = append(attrs, "title", a.Title, "language", a.Language)
	case wikipedia.GetLanguageLinksBatchArgs:
		attrs = append(attrs, "titles_requested", len(a.Titles), "language", a.Language)
	case wikipedia.GetArticleInLanguageArgs:
		attrs = append(attrs, "title", a.Title, "source_language", a.SourceLanguage, "target_language", a.TargetLanguage)
	case wikipedia.ListCategoriesArgs:
		attrs = append(attrs, "title", a.Title, "language", a.Language)
	case wikipedia.ListCategoryMembersArgs:
		attrs = append(attrs, "category", a.Category, "language", a.Language)
	case wikipedia.GetSectionsArgs:
		attrs = append(attrs, "title", a.Title, "language", a.Language)
	case wikipedia.GetLinksArgs:
		attrs = append(attrs, "title", a.Title, "language", a.Language)
	case pageviews.GetPageViewsArgs:
		attrs = append(attrs, "title", a.Title, "start_date", a.StartDate, "end_date", a.EndDate)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case wikipedia.SearchResult:
		attrs = append(attrs, "results_count", len(r.Suggestions))
	case wikipedia.GetWikitextResult:
		attrs = append(attrs, "revision_id", r.RevisionID, "output_chars", len(r.Wikitext))
	case wikipedia.GetHTMLResult:
		attrs = append(attrs, "revision_id", r.RevisionID, "output_chars", len(r.HTML)+len(r.Text))
	case wikipedia.GetLanguageLinksResult:
		attrs = append(attrs, "links", r.Count)
	case wikipedia.GetLanguageLinksBatchResult:
		attrs = append(attrs, "titles_returned", len(r.Links))
	case wikipedia.GetArticleInLanguageResult:
		attrs = append(attrs, "supported", r.Supported, "output_chars", len(r.HTML)+len(r.Text))
	case wikipedia.ListCategoriesResult:
		attrs = append(attrs, "categories", r.Count)
	case wikipedia.ListCategoryMembersResult:
		attrs = append(attrs, "members", r.Count)
	case wikipedia.GetSectionsResult:
		attrs = append(attrs, "sections", len(r.Sections))
	case wikipedia.GetLinksResult:
		attrs = append(attrs, "links", r.Count)
	case pageviews.GetPageViewsResult:
		attrs = append(attrs, "months", r.Months, "total_views", r.Total)
	}

	h.logger.Info("Tool executed", attrs...)
}
