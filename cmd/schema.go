package cmd

import (
	"context"
	"os"

	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/storage/sqlite"
	"github.com/spf13/cobra"

	jet "github.com/go-jet/jet/v2/generator/sqlite"
)

const tmpDatabase = "tmp.sqlite"

var outputDirectory string

// schemaCmd regenerates the jet table and model code from the embedded migrations
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "generate database code",
	Long:  `generate database code by migrating a scratch database and reading its schema`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		tmpStorage, err := sqlite.New(context.Background(), tmpDatabase)
		if err != nil {
			log.Fatal(err)
		}
		defer os.Remove(tmpDatabase)
		defer tmpStorage.Close()

		err = jet.GenerateDSN(tmpDatabase, outputDirectory)
		if err != nil {
			log.Fatal(err)
		}

		log.Infow("successfully generated", "out", outputDirectory)
	},
}

func init() {
	generateCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&outputDirectory, "out", "o", "./pkg/storage/sqlite/schema/gen", "directory to output generated code to")
}
