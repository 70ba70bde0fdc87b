package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fbgraph/fbgraph"
)

// Load loads the configuration from file. An empty configPath searches the
// standard locations; a missing file is not an error since every setting has
// a default or can come from flags.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fbgraph"))
		}

		v.AddConfigPath("/etc/fbgraph/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("graph.url", fbgraph.DefaultGraphURL)
	v.SetDefault("graph.dialog_url", fbgraph.DefaultDialogURL)
	v.SetDefault("graph.dialog_url_mobile", fbgraph.DefaultDialogURLMobile)
	v.SetDefault("graph.timeout", "30s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Graph.URL == "" {
		return fmt.Errorf("graph.url is required")
	}

	if cfg.Graph.Timeout < 0 {
		return fmt.Errorf("graph.timeout must not be negative")
	}

	switch cfg.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid logging.format: %s (must be 'console' or 'json')", cfg.Logging.Format)
	}

	return nil
}
