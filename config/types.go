package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	RottenTomatoes RottenTomatoesConfig `mapstructure:"rottentomatoes"`
	Radarr         RadarrConfig         `mapstructure:"radarr"`
	Output         OutputConfig         `mapstructure:"output"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

// RottenTomatoesConfig holds API connection details
type RottenTomatoesConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// RadarrConfig holds Radarr API connection details
type RadarrConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// Enabled reports whether Radarr is configured
func (r RadarrConfig) Enabled() bool {
	return r.APIKey != ""
}

// OutputConfig controls how responses are printed
type OutputConfig struct {
	Format      string `mapstructure:"format"`
	ShowDetails bool   `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
