package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/spf13/cobra"
)

var extractKey string

// extractCmd reads a response envelope and prints the uniform result
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "extract data and pagination from a response envelope",
	Long: `extract data and pagination from a response envelope read from a file or stdin.
A missing key prints an empty result.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
			in = f
		}

		b, err := io.ReadAll(in)
		if err != nil {
			log.Fatal(err)
		}

		env, err := decodeEnvelope(b)
		if err != nil {
			log.Fatalw("envelope must be a JSON object", "error", err)
		}

		result := pagination.ExtractResult[any](env, extractKey)
		if err := printJSON(cmd.OutOrStdout(), result); err != nil {
			log.Fatal(err)
		}
	},
}

// decodeEnvelope accepts either a bare envelope or a GraphQL style {"data": {...}} document
func decodeEnvelope(b []byte) (pagination.Envelope, error) {
	var doc map[string]any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	if data, ok := doc["data"].(map[string]any); ok && len(doc) <= 2 {
		if _, hasErrors := doc["errors"]; hasErrors || len(doc) == 1 {
			return pagination.Envelope(data), nil
		}
	}

	return pagination.Envelope(doc), nil
}

func init() {
	extractCmd.Flags().StringVarP(&extractKey, "key", "k", "", "envelope key holding the paginated list")
	extractCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(extractCmd)
}
