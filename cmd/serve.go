package cmd

import (
	"context"

	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/storage/sqlite"
	"github.com/kasuboski/pager/pkg/transport"
	"github.com/kasuboski/pager/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the catalog server",
	Long:  `start the catalog server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, p, err := loadConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := sqlite.New(context.Background(), cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}
		defer store.Close()

		tr, err := transport.New(store)
		if err != nil {
			log.Fatal("failed to build transport", zap.Error(err))
		}

		server := server.New(log, p, tr)
		log.Error(server.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
