package cmd

import (
	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/spf13/cobra"
)

var (
	convertPage     int
	convertPageSize int
	convertOffset   int
	convertLimit    int
)

// convertCmd groups the page/offset conversions
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "convert between page and offset addressing",
	Long:  `convert between page and offset addressing`,
}

var convertOffsetCmd = &cobra.Command{
	Use:   "offset",
	Short: "convert a page into limit and offset",
	Long:  `convert a page into limit and offset. Input is normalized first.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		_, p, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}

		pp := p.Normalize(pagination.NewRawParams(float64(convertPage), float64(convertPageSize), 0))
		if err := printJSON(cmd.OutOrStdout(), pp.OffsetParams()); err != nil {
			log.Fatal(err)
		}
	},
}

var convertPageCmd = &cobra.Command{
	Use:   "page",
	Short: "convert limit and offset into a page",
	Long:  `convert limit and offset into a page. Offsets between page boundaries round down.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		if convertLimit < 1 || convertOffset < 0 {
			log.Fatal("limit must be positive and offset must not be negative")
		}

		pp := pagination.OffsetToPage(convertOffset, convertLimit)
		if convertOffset%convertLimit != 0 {
			log.Warnw("offset is not aligned to a page boundary", "offset", convertOffset, "limit", convertLimit, "page", pp.Page)
		}

		if err := printJSON(cmd.OutOrStdout(), pp); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	convertOffsetCmd.Flags().IntVar(&convertPage, "page", 1, "1-indexed page number")
	convertOffsetCmd.Flags().IntVar(&convertPageSize, "page-size", pagination.DefaultPageSize, "items per page")

	convertPageCmd.Flags().IntVar(&convertOffset, "offset", 0, "number of items to skip")
	convertPageCmd.Flags().IntVar(&convertLimit, "limit", pagination.DefaultPageSize, "maximum number of items")

	convertCmd.AddCommand(convertOffsetCmd)
	convertCmd.AddCommand(convertPageCmd)
	rootCmd.AddCommand(convertCmd)
}
