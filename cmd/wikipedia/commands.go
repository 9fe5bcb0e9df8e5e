package main

import (
	"github.com/spf13/cobra"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/pageviews"
	"github.com/olgasafonova/wikipedia-mcp-server/internal/wikipedia"
)

var (
	searchLimit     int
	htmlAsText      bool
	langLinksLimit  int
	articleTarget   string
	articleAsText   bool
	categoriesLimit int
	membersLimit    int
	viewsFrom       string
	viewsTo         string
	headersOnly     bool
	linksOrdered    bool
)

// wikiCommand runs fn with a configured Wikipedia client and prints its result.
func wikiCommand[R any](fn func(cmd *cobra.Command, client *wikipedia.Client, args []string) (R, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := newWikiClient(setupLogger())
		if err != nil {
			return err
		}
		result, err := fn(cmd, client, args)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	}
}

func format(asText bool) string {
	if asText {
		return wikipedia.FormatText
	}
	return wikipedia.FormatHTML
}

// searchCmd creates the "search" subcommand.
func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Suggest article titles matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: wikiCommand(func(cmd *cobra.Command, client *wikipedia.Client, args []string) (wikipedia.SearchResult, error) {
			return client.SearchMCP(cmd.Context(), wikipedia.SearchArgs{
				Query:    args[0],
				Language: language,
				Limit:    searchLimit,
			})
		}),
	}
	cmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum suggestions")
	return cmd
}

// wikitextCmd creates the "wikitext" subcommand.
func wikitextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wikitext [title]",
		Short: "Print the raw wikitext of an article",
		Args:  cobra.ExactArgs(1),
		RunE: wikiCommand(func(cmd *cobra.Command, client *wikipedia.Client, args []string) (wikipedia.GetWikitextResult, error) {
			return client.GetWikitextMCP(cmd.Context(), wikipedia.GetWikitextArgs{
				Title:    args[0],
				Language: language,
			})
		}),
	}
}

// htmlCmd creates the "html" subcommand.
func htmlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html [title]",
		Short: "Print the rendered HTML of an article",
		Args:  cobra.ExactArgs(1),
		RunE: wikiCommand(func(cmd *cobra.Command, client *wikipedia.Client, args []string) (wikipedia.GetHTMLResult, error) {
			return client.GetHTMLMCP(cmd.Context(), wikipedia.GetHTMLArgs{
				Title:    args[0],
				Language: language,
				Format:   format(htmlAsText),
			})
		}),
	}
	cmd.Flags().BoolVar(&htmlAsText, "text", false, "strip markup and print plain text")
	return cmd
}

// langLinksCmd creates the "langlinks" subcommand. More than one title
// switches to a single batched lookup.
func langLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langlinks [title...]",
		Short: "List the other language editions of one or more articles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newWikiClient(setupLogger())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				result, err := client.GetLanguageLinksMCP(cmd.Context(), wikipedia.GetLanguageLinksArgs{
					Title:    args[0],
					Language: language,
					Limit:    langLinksLimit,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			}
			result, err := client.GetLanguageLinksBatchMCP(cmd.Context(), wikipedia.GetLanguageLinksBatchArgs{
				Titles:   args,
				Language: language,
				Limit:    langLinksLimit,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().IntVarP(&langLinksLimit, "limit", "n", 0, "maximum links (0 for the server maximum)")
	return cmd
}

// articleCmd creates the "article" subcommand.
func articleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "article [title]",
		Short: "Fetch an article from another language edition",
		Args:  cobra.ExactArgs(1),
		RunE: wikiCommand(func(cmd *cobra.Command, client *wikipedia.Client, args []string) (wikipedia.GetArticleInLanguageResult, error) {
			return client.GetArticleInLanguageMCP(cmd.Context(), wikipedia.GetArticleInLanguageArgs{
				Title:          args[0],
				SourceLanguage: language,
				TargetLanguage: articleTarget,
				Format:         format(articleAsText),
			})
		}),
	}
	cmd.Flags().StringVarP(&articleTarget, "to", "t", "", "target language code")
	cmd.Flags().BoolVar(&articleAsText, "text", false, "strip markup and print plain text")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// categoriesCmd creates the "categories" subcommand.
func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories [title]",
		Short: "List the categories an article belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: wikiCommand(func(cmd *cobra.Command, client *wikipedia.Client, args []string) (wikipedia.ListCategoriesResult, error) {
			return client.ListCategoriesMCP(cmd.Context(), wikipedia.ListCategoriesArgs{
				Title:    args[0],
				Language: language,
				Limit:    categoriesLimit,
			})
		}),
	}
	cmd.Flags().IntVarP(&categoriesLimit, "limit", "n", 0, "maximum categories (0 for all)")
	return cmd
}

// membersCmd creates the "members" subcommand.
func membersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members [category]",
		Short: "List the pages in a category",
		Args:  cobra.ExactArgs(1),
		RunE: wikiCommand(func(cmd *cobra.Command, client *wikipedia.Client, args []string) (wikipedia.ListCategoryMembersResult, error) {
			return client.ListCategoryMembersMCP(cmd.Context(), wikipedia.ListCategoryMembersArgs{
				Category: args[0],
				Language: language,
				Limit:    membersLimit,
			})
		}),
	}
	cmd.Flags().IntVarP(&membersLimit, "limit", "n", 100, "maximum members")
	return cmd
}

// viewsCmd creates the "views" subcommand.
func viewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "views [title]",
		Short: "Sum monthly page views over a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newViewsClient(setupLogger())
			if err != nil {
				return err
			}
			result, err := client.GetPageViewsMCP(cmd.Context(), pageviews.GetPageViewsArgs{
				Title:     args[0],
				Language:  language,
				StartDate: viewsFrom,
				EndDate:   viewsTo,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&viewsFrom, "from", "", "first day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&viewsTo, "to", "", "end of the range, exclusive (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

// sectionsCmd creates the "sections" subcommand.
func sectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections [title]",
		Short: "Split an article's wikitext at its section headers",
		Args:  cobra.ExactArgs(1),
		RunE: wikiCommand(func(cmd *cobra.Command, client *wikipedia.Client, args []string) (wikipedia.GetSectionsResult, error) {
			return client.GetSectionsMCP(cmd.Context(), wikipedia.GetSectionsArgs{
				Title:       args[0],
				Language:    language,
				HeadersOnly: headersOnly,
			})
		}),
	}
	cmd.Flags().BoolVar(&headersOnly, "headers-only", false, "omit section bodies")
	return cmd
}

// linksCmd creates the "links" subcommand.
func linksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links [title]",
		Short: "Extract the internal links of an article",
		Args:  cobra.ExactArgs(1),
		RunE: wikiCommand(func(cmd *cobra.Command, client *wikipedia.Client, args []string) (wikipedia.GetLinksResult, error) {
			return client.GetLinksMCP(cmd.Context(), wikipedia.GetLinksArgs{
				Title:    args[0],
				Language: language,
				Ordered:  linksOrdered,
			})
		}),
	}
	cmd.Flags().BoolVar(&linksOrdered, "ordered", false, "print every link in document order")
	return cmd
}
