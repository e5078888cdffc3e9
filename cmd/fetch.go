package cmd

import (
	"context"

	pagerhttp "github.com/kasuboski/pager/pkg/http"
	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/kasuboski/pager/pkg/storage"
	"github.com/kasuboski/pager/pkg/transport"
	"github.com/oapi-codegen/nullable"
	"github.com/spf13/cobra"
)

var (
	fetchPage     float64
	fetchPageSize float64
	fetchCategory string
)

// fetchResult is what fetch prints: the extracted page plus derived metadata
type fetchResult struct {
	pagination.Result[storage.Item]
	Meta  pagination.Meta `json:"meta"`
	Pages []int           `json:"pages"`
}

// fetchCmd pages through a remote pager server over GraphQL
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "fetch one page of items from a remote server",
	Long:  `fetch one page of items from a remote pager server's GraphQL endpoint. Requests the server asks to be retried are retried with backoff.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, p, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}

		doer := pagerhttp.NewRetryClient(
			pagerhttp.WithMaxAttempts(cfg.Client.MaxAttempts),
			pagerhttp.WithBaseBackoff(cfg.Client.BaseBackoff),
		)
		client := transport.NewClient(cfg.Client.URL, doer)

		raw := pagination.RawParams{}
		if cmd.Flags().Changed("page") {
			raw.Page = nullable.NewNullableWithValue(fetchPage)
		}
		if cmd.Flags().Changed("page-size") {
			raw.PageSize = nullable.NewNullableWithValue(fetchPageSize)
		}
		if fetchCategory != "" {
			raw.Extra = map[string]any{"category": fetchCategory}
		}

		params := p.Normalize(raw)
		ctx := logger.WithCtx(context.Background(), log.With("url", cfg.Client.URL))
		result, err := transport.Items(ctx, client, p.ToQueryVariables(raw))
		if err != nil {
			log.Fatalw("failed to fetch items", "error", err)
		}

		total := 0
		if result.Pagination != nil {
			total = result.Pagination.Total
		}
		meta := pagination.Calculate(total, params.Page, params.PageSize)

		out := fetchResult{
			Result: result,
			Meta:   meta,
			Pages:  p.Window(meta.CurrentPage, meta.TotalPages),
		}
		if err := printJSON(cmd.OutOrStdout(), out); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	fetchCmd.Flags().Float64Var(&fetchPage, "page", 1, "page to fetch")
	fetchCmd.Flags().Float64Var(&fetchPageSize, "page-size", pagination.DefaultPageSize, "items per page")
	fetchCmd.Flags().StringVar(&fetchCategory, "category", "", "only fetch items in this category")
	rootCmd.AddCommand(fetchCmd)
}
