package config

import (
	"fmt"
	"time"

	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/spf13/viper"
)

type Config struct {
	Pagination pagination.Config `json:"pagination" yaml:"pagination" mapstructure:"pagination"`
	Storage    Storage           `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server     Server            `json:"server" yaml:"server" mapstructure:"server"`
	Client     Client            `json:"client" yaml:"client" mapstructure:"client"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Client configures calls to a remote pager server
type Client struct {
	URL         string        `json:"url" yaml:"url" mapstructure:"url"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts" mapstructure:"maxAttempts"`
	BaseBackoff time.Duration `json:"baseBackoff" yaml:"baseBackoff" mapstructure:"baseBackoff"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Paginator builds the paginator described by the pagination section
func (c Config) Paginator() (*pagination.Paginator, error) {
	p, err := pagination.New(c.Pagination)
	if err != nil {
		return nil, fmt.Errorf("pagination config: %w", err)
	}
	return p, nil
}
