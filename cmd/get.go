package cmd

import (
	"context"
	"errors"
	"strconv"

	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/storage"
	"github.com/kasuboski/pager/pkg/storage/sqlite"
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "get a single record",
	Long:  `get a single record`,
}

// getItemCmd prints one catalog item by id
var getItemCmd = &cobra.Command{
	Use:   "item <id>",
	Short: "get a catalog item by id",
	Long:  `get a catalog item by id`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalw("id must be an integer", "id", args[0])
		}

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

		item, err := store.GetItem(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			log.Fatalw("item not found", "id", id)
		}
		if err != nil {
			log.Fatal(err)
		}

		if err := printJSON(cmd.OutOrStdout(), item); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	getCmd.AddCommand(getItemCmd)
	rootCmd.AddCommand(getCmd)
}
