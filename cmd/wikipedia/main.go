// Command wikipedia queries Wikipedia and the page-view service from the
// command line. Every subcommand prints its result as indented JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/pageviews"
	"github.com/olgasafonova/wikipedia-mcp-server/internal/wikipedia"
)

var (
	verbose  bool
	language string
	apiURL   string
	viewsURL string
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "ignoring .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wikipedia",
		Short: "Query Wikipedia articles, language links, categories and page views",
		Long: `wikipedia is a command-line client for the MediaWiki API and the
stats.grok.se page-view service.

Configuration is read from the environment (and an optional .env file):
  WIKIPEDIA_API_URL           endpoint template, %s is the language code
  WIKIPEDIA_DEFAULT_LANGUAGE  language used when --language is not given
  WIKIPEDIA_TIMEOUT           per-request timeout (e.g. 30s)
  WIKIPEDIA_USER_AGENT        User-Agent sent with every request
  WIKIPEDIA_MAX_PAGES         continuation page cap for listings
  PAGEVIEWS_URL               page-view service base URL`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "Wikipedia language code (default from config)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "override the API endpoint template")
	rootCmd.PersistentFlags().StringVar(&viewsURL, "views-url", "", "override the page-view service base URL")

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(wikitextCmd())
	rootCmd.AddCommand(htmlCmd())
	rootCmd.AddCommand(langLinksCmd())
	rootCmd.AddCommand(articleCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(membersCmd())
	rootCmd.AddCommand(viewsCmd())
	rootCmd.AddCommand(sectionsCmd())
	rootCmd.AddCommand(linksCmd())

	return rootCmd
}

// setupLogger creates a structured logger.
func setupLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newWikiClient builds a Wikipedia client from the environment and flags.
func newWikiClient(logger *slog.Logger) (*wikipedia.Client, error) {
	cfg, err := wikipedia.LoadConfig()
	if err != nil {
		return nil, err
	}
	opts := []wikipedia.ClientOption{
		wikipedia.WithConfig(cfg),
		wikipedia.WithLogger(logger),
	}
	if apiURL != "" {
		opts = append(opts, wikipedia.WithAPIURL(apiURL))
	}
	return wikipedia.NewClient(opts...), nil
}

// newViewsClient builds a page-view client from the environment and flags.
func newViewsClient(logger *slog.Logger) (*pageviews.Client, error) {
	cfg, err := wikipedia.LoadConfig()
	if err != nil {
		return nil, err
	}
	base := viewsURL
	if base == "" {
		base = pageviews.BaseURLFromEnv()
	}
	return pageviews.NewClient(
		pageviews.WithBaseURL(base),
		pageviews.WithUserAgent(cfg.UserAgent),
		pageviews.WithTimeout(cfg.Timeout),
		pageviews.WithLogger(logger),
	), nil
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
