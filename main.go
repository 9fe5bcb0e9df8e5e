// Wikipedia MCP Server - A Model Context Protocol server for Wikipedia
// Provides tools for searching articles, reading them in any language edition,
// walking categories, extracting markup structure and fetching page-view statistics.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikipedia-mcp-server/internal/pageviews"
	"github.com/olgasafonova/wikipedia-mcp-server/internal/wikipedia"
	"github.com/olgasafonova/wikipedia-mcp-server/tools"
	"github.com/olgasafonova/wikipedia-mcp-server/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "wikipedia-mcp-server"
	ServerVersion = "1.0.0"

	// DefaultMaxBodySize bounds MCP request bodies on the HTTP transport
	DefaultMaxBodySize = 1 << 20
)

// recoverPanic recovers from a panic and logs it instead of crashing
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

func main() {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ignoring .env: %v", err)
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	config, err := wikipedia.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	wikiClient := wikipedia.NewClient(
		wikipedia.WithConfig(config),
		wikipedia.WithLogger(logger),
	)
	viewsClient := pageviews.NewClient(
		pageviews.WithBaseURL(pageviews.BaseURLFromEnv()),
		pageviews.WithUserAgent(config.UserAgent),
		pageviews.WithTimeout(config.Timeout),
		pageviews.WithLogger(logger),
	)

	server := newServer(wikiClient, viewsClient, logger)

	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(addr, logger)
	}

	logger.Info("Starting Wikipedia MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"api_url", config.APIURL,
		"default_language", config.DefaultLanguage,
	)

	if addr := os.Getenv("MCP_HTTP_ADDR"); addr != "" {
		return serveHTTP(ctx, addr, server, logger)
	}
	return server.Run(ctx, &mcp.StdioTransport{})
}

// newServer creates the MCP server with every tool registered
func newServer(wikiClient *wikipedia.Client, viewsClient *pageviews.Client, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: tools.Instructions(),
	})

	tools.NewHandlerRegistry(wikiClient, viewsClient, logger).RegisterAll(server)
	return server
}

// serveMetrics exposes Prometheus metrics on addr until the process exits
func serveMetrics(addr string, logger *slog.Logger) {
	defer recoverPanic(logger, "metrics server")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("Serving metrics", "addr", addr, "path", "/metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Metrics server stopped", "error", err)
	}
}

// serveHTTP runs the MCP streamable HTTP transport until ctx is done
func serveHTTP(ctx context.Context, addr string, server *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewSecurityMiddleware(handler, logger, SecurityConfig{MaxBodySize: DefaultMaxBodySize}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving MCP over HTTP", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// SecurityConfig configures the HTTP transport middleware
type SecurityConfig struct {
	// MaxBodySize caps request bodies in bytes; 0 disables the cap
	MaxBodySize int64
}

// SecurityMiddleware caps request bodies on the HTTP transport and turns
// handler panics into 500 responses.
type SecurityMiddleware struct {
	next   http.Handler
	logger *slog.Logger
	config SecurityConfig
}

// NewSecurityMiddleware wraps next with the configured protections
func NewSecurityMiddleware(next http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	return &SecurityMiddleware{
		next:   next,
		logger: logger,
		config: config,
	}
}

func (m *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			m.logger.Error("Panic recovered",
				"operation", "http "+r.Method+" "+r.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")

	if m.config.MaxBodySize > 0 {
		if r.ContentLength > m.config.MaxBodySize {
			m.logger.Warn("Request body too large",
				"remote_addr", r.RemoteAddr,
				"content_length", r.ContentLength)
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, m.config.MaxBodySize)
	}

	m.next.ServeHTTP(w, r)
}

// parseLogLevel maps LOG_LEVEL values to slog levels, defaulting to Info
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
