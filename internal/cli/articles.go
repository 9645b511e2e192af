package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	newshub "github.com/goliatone/go-newshub"
	"github.com/goliatone/go-newshub/internal/articles"
	"github.com/goliatone/go-newshub/internal/views"
)

func newArticlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "List and show articles",
	}
	cmd.AddCommand(newArticlesListCmd())
	cmd.AddCommand(newArticlesShowCmd())
	return cmd
}

func newArticlesListCmd() *cobra.Command {
	var (
		search   string
		category string
		status   string
		manage   bool
		fuzzy    bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles as the home or management page would",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := getModule(cmd)
			if err != nil {
				return err
			}
			locale := localeFor(cmd, module)

			query := articles.HomeQuery(search, category)
			if manage {
				query = articles.ManagementQuery(search)
				query.Category = category
			}
			if cmd.Flags().Changed("status") {
				query.Status = status
			}
			query.Fuzzy = fuzzy

			list, err := module.Articles().List(cmd.Context(), query)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if manage {
				stats, err := module.Articles().Stats(cmd.Context())
				if err != nil {
					return err
				}
				view := views.Management(stats, list, locale)
				for _, row := range view.Rows {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.ID, row.StatusLabel, row.Category, row.Author, row.Title)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d  %s: %d  %s: %d\n",
					view.Heading, stats.Total,
					locale.Translate("published"), stats.Published,
					locale.Translate("draft"), stats.Drafts,
				)
				return nil
			}

			for _, a := range list {
				card := views.ArticleCard(a, locale)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", card.Slug, card.Date, card.Category, card.Title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive search text")
	cmd.Flags().StringVar(&category, "category", "", "category filter (all for any)")
	cmd.Flags().StringVar(&status, "status", "", "status filter: published, draft or all")
	cmd.Flags().BoolVar(&manage, "manage", false, "management listing (all statuses, search title/author/category)")
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "rank by fuzzy match instead of substring")
	return cmd
}

func newArticlesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|slug>",
		Short: "Render an article as its detail page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := getModule(cmd)
			if err != nil {
				return err
			}
			article, err := findArticle(cmd, module, args[0])
			if err != nil {
				return err
			}

			detail := views.ArticleDetail(article, localeFor(cmd, module), module.Renderer())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, detail.Title)
			fmt.Fprintf(out, "%s · %s · %s\n", detail.Author, detail.Date, detail.Category)
			if len(detail.Tags) > 0 {
				fmt.Fprintf(out, "#%s\n", strings.Join(detail.Tags, " #"))
			}
			fmt.Fprintf(out, "dir=%s\n\n%s\n", detail.Direction, detail.Body)
			return nil
		},
	}
}

func findArticle(cmd *cobra.Command, module *newshub.Module, ref string) (*articles.Article, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return module.Articles().Get(cmd.Context(), id)
	}
	return module.Articles().GetBySlug(cmd.Context(), ref)
}
