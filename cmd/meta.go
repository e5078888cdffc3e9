package cmd

import (
	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/spf13/cobra"
)

var (
	metaTotal    int
	metaPage     int
	metaPageSize int
)

// metaCmd prints pagination metadata for a total count
var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "print pagination metadata",
	Long:  `print total pages and next/previous flags for a total count, page and page size`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		meta := pagination.Calculate(metaTotal, metaPage, metaPageSize)
		if err := printJSON(cmd.OutOrStdout(), meta); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	metaCmd.Flags().IntVar(&metaTotal, "total", 0, "total number of items")
	metaCmd.Flags().IntVar(&metaPage, "page", 1, "current page")
	metaCmd.Flags().IntVar(&metaPageSize, "page-size", pagination.DefaultPageSize, "items per page")
	rootCmd.AddCommand(metaCmd)
}
