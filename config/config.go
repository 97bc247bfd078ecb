package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TOMATOES_ROTTENTOMATOES_API_KEY
const EnvPrefix = "TOMATOES"

// Load loads the configuration from file and environment. A missing config
// file is not an error; an explicitly named one must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	return LoadWith(v, configPath)
}

// LoadWith loads configuration into an existing viper instance, so callers
// can bind command line flags before loading.
func LoadWith(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tomatoes"))
		}

		v.AddConfigPath("/etc/tomatoes/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
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
	v.SetDefault("rottentomatoes.api_key", "")
	v.SetDefault("rottentomatoes.base_url", "http://api.rottentomatoes.com/api/public/v1.0")
	v.SetDefault("rottentomatoes.timeout", "30s")
	v.SetDefault("rottentomatoes.user_agent", "tomatoes")

	v.SetDefault("radarr.url", "http://localhost:7878")
	v.SetDefault("radarr.api_key", "")

	v.SetDefault("output.format", "pretty")
	v.SetDefault("output.show_details", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.RottenTomatoes.APIKey == "" || cfg.RottenTomatoes.APIKey == "your-api-key-here" {
		return fmt.Errorf("rottentomatoes.api_key must be set to a valid API key")
	}

	if cfg.RottenTomatoes.BaseURL == "" {
		return fmt.Errorf("rottentomatoes.base_url is required")
	}

	if cfg.RottenTomatoes.Timeout < 0 {
		return fmt.Errorf("rottentomatoes.timeout must not be negative")
	}

	if cfg.Radarr.Enabled() && cfg.Radarr.URL == "" {
		return fmt.Errorf("radarr.url is required when radarr.api_key is set")
	}

	validOutputs := map[string]bool{
		"pretty": true,
		"json":   true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
