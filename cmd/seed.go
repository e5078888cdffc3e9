package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/storage"
	"github.com/kasuboski/pager/pkg/storage/sqlite"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var seedCount int

var (
	seedCategories = []string{"books", "music", "films", "games"}
	seedAdjectives = []string{"quiet", "bright", "hollow", "amber", "northern", "paper", "silver", "lost"}
	seedNouns      = []string{"harbor", "garden", "signal", "river", "engine", "lantern", "orchard", "atlas"}
)

// seedCmd fills the catalog with generated items
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "insert generated catalog items",
	Long:  `insert generated catalog items so listing and paging have something to show`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, _, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		store, err := sqlite.New(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatalw("failed to open storage", "error", err)
		}
		defer store.Close()

		if err := store.CreateItems(ctx, seedItems(seedCount)...); err != nil {
			log.Fatalw("failed to seed items", "error", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %s items into %s\n", humanize.Comma(int64(seedCount)), cfg.Storage.FilePath)
	},
}

// seedItems deterministically names n items and spreads them across categories
func seedItems(n int) []storage.Item {
	title := cases.Title(language.English)

	return lo.Times(max(n, 0), func(i int) storage.Item {
		adj := seedAdjectives[i%len(seedAdjectives)]
		noun := seedNouns[(i/len(seedAdjectives))%len(seedNouns)]
		return storage.Item{
			Name:     title.String(fmt.Sprintf("the %s %s %d", adj, noun, i+1)),
			Category: seedCategories[i%len(seedCategories)],
		}
	})
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 100, "number of items to insert")
	rootCmd.AddCommand(seedCmd)
}
