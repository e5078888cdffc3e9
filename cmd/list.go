package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/kasuboski/pager/pkg/storage/sqlite"
	"github.com/kasuboski/pager/pkg/transport"
	"github.com/oapi-codegen/nullable"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	listPage     float64
	listPageSize float64
	listCategory string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list paginated records",
	Long:  `list paginated records`,
}

// listItemsCmd runs one page of the catalog through the transport and prints it
var listItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "list one page of catalog items",
	Long:  `list one page of catalog items. Out of range page and page size values are repaired, not rejected.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, p, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		store, err := sqlite.New(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatalw("failed to open storage", "error", err)
		}
		defer store.Close()

		tr, err := transport.New(store)
		if err != nil {
			log.Fatal(err)
		}

		raw := pagination.RawParams{}
		if cmd.Flags().Changed("page") {
			raw.Page = nullable.NewNullableWithValue(listPage)
		}
		if cmd.Flags().Changed("page-size") {
			raw.PageSize = nullable.NewNullableWithValue(listPageSize)
		}
		if listCategory != "" {
			raw.Extra = map[string]any{"category": listCategory}
		}

		params := p.Normalize(raw)
		result, err := tr.Items(ctx, p.ToQueryVariables(raw))
		if err != nil {
			log.Fatalw("failed to list items", "error", err)
		}

		total := 0
		if result.Pagination != nil {
			total = result.Pagination.Total
		}
		meta := pagination.Calculate(total, params.Page, params.PageSize)

		out := cmd.OutOrStdout()
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"ID", "Name", "Category", "Created"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, item := range result.Data {
			table.Append([]string{
				strconv.FormatInt(item.ID, 10),
				item.Name,
				item.Category,
				humanize.Time(item.CreatedAt),
			})
		}
		table.Render()

		fmt.Fprintf(out, "\npage %s of %s (%s items)\n",
			humanize.Comma(int64(meta.CurrentPage)),
			humanize.Comma(int64(meta.TotalPages)),
			humanize.Comma(int64(meta.TotalCount)),
		)
		fmt.Fprintln(out, renderWindow(p.Window(meta.CurrentPage, meta.TotalPages), meta.CurrentPage, meta.TotalPages))
	},
}

func init() {
	listItemsCmd.Flags().Float64Var(&listPage, "page", 1, "page to show")
	listItemsCmd.Flags().Float64Var(&listPageSize, "page-size", pagination.DefaultPageSize, "items per page")
	listItemsCmd.Flags().StringVar(&listCategory, "category", "", "only list items in this category")
	listCmd.AddCommand(listItemsCmd)
	rootCmd.AddCommand(listCmd)
}
