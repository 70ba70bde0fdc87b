package config

import "time"

// Config represents the complete CLI configuration structure
type Config struct {
	Graph   GraphConfig   `mapstructure:"graph"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GraphConfig holds Graph API credentials and endpoints
type GraphConfig struct {
	AccessToken     string        `mapstructure:"access_token"`
	AppSecret       string        `mapstructure:"app_secret"`
	URL             string        `mapstructure:"url"`
	DialogURL       string        `mapstructure:"dialog_url"`
	DialogURLMobile string        `mapstructure:"dialog_url_mobile"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
