package cmd

import (
	"encoding/json"

	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/spf13/cobra"
)

// varsCmd turns a raw params object into query variables
var varsCmd = &cobra.Command{
	Use:   "vars <json>",
	Short: "print query variables for raw pagination params",
	Long: `print query variables for a raw pagination params object such as
'{"page": 2, "pageSize": 10, "category": "books"}'. Keys other than page,
pageSize and totalCount are passed through unchanged.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		_, p, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}

		var raw pagination.RawParams
		if err := json.Unmarshal([]byte(args[0]), &raw); err != nil {
			log.Fatalw("params must be a JSON object", "error", err)
		}

		if err := printJSON(cmd.OutOrStdout(), p.ToQueryVariables(raw)); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)
}
