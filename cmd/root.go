package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kasuboski/pager/config"
	pagerhttp "github.com/kasuboski/pager/pkg/http"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pager",
	Short: "pager cli",
	Long:  `pager converts between page, offset and response envelope pagination and serves a paginated catalog`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

const (
	defaultPort     = 8080
	defaultFilePath = "pager.sqlite"
)

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("PAGER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("pagination.defaultPageSize", pagination.DefaultPageSize)
	viper.SetDefault("pagination.minPageSize", pagination.MinPageSize)
	viper.SetDefault("pagination.maxPageSize", pagination.MaxPageSize)
	viper.SetDefault("pagination.windowSize", pagination.DefaultWindow)

	viper.SetDefault("server.port", defaultPort)

	viper.SetDefault("storage.filePath", defaultFilePath)

	viper.SetDefault("client.url", fmt.Sprintf("http://localhost:%d/graphql", defaultPort))
	viper.SetDefault("client.maxAttempts", pagerhttp.DefaultMaxAttempts)
	viper.SetDefault("client.baseBackoff", pagerhttp.DefaultBaseBackoff)
}

// loadConfig reads the configuration and builds the paginator it describes
func loadConfig() (config.Config, *pagination.Paginator, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return cfg, nil, err
	}

	p, err := cfg.Paginator()
	if err != nil {
		return cfg, nil, err
	}

	return cfg, p, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
