package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		RottenTomatoes: RottenTomatoesConfig{
			APIKey:  "valid-api-key",
			BaseURL: "http://api.rottentomatoes.com/api/public/v1.0",
			Timeout: 30 * time.Second,
		},
		Radarr:  RadarrConfig{URL: "http://localhost:7878"},
		Output:  OutputConfig{Format: "pretty"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.RottenTomatoes.APIKey = "" },
			wantErr: "rottentomatoes.api_key",
		},
		{
			name:    "placeholder api key",
			mutate:  func(c *Config) { c.RottenTomatoes.APIKey = "your-api-key-here" },
			wantErr: "rottentomatoes.api_key",
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.RottenTomatoes.BaseURL = "" },
			wantErr: "rottentomatoes.base_url",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.RottenTomatoes.Timeout = -time.Second },
			wantErr: "rottentomatoes.timeout",
		},
		{
			name: "radarr key without url",
			mutate: func(c *Config) {
				c.Radarr.APIKey = "radarr-key"
				c.Radarr.URL = ""
			},
			wantErr: "radarr.url",
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.Format = "yaml" },
			wantErr: "invalid output format: yaml",
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level: trace",
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
rottentomatoes:
  api_key: file-key
  timeout: 5s
radarr:
  url: http://radarr:7878
  api_key: radarr-key
output:
  format: json
  show_details: true
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.RottenTomatoes.APIKey)
	assert.Equal(t, 5*time.Second, cfg.RottenTomatoes.Timeout)
	assert.Equal(t, "http://api.rottentomatoes.com/api/public/v1.0", cfg.RottenTomatoes.BaseURL)
	assert.Equal(t, "tomatoes", cfg.RottenTomatoes.UserAgent)
	assert.True(t, cfg.Radarr.Enabled())
	assert.Equal(t, "http://radarr:7878", cfg.Radarr.URL)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowDetails)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "rottentomatoes:\n  api_key: file-key\n")
	t.Setenv("TOMATOES_ROTTENTOMATOES_API_KEY", "env-key")
	t.Setenv("TOMATOES_OUTPUT_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.RottenTomatoes.APIKey)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Radarr.Enabled())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoadWithoutFileUsesEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TOMATOES_ROTTENTOMATOES_API_KEY", "env-only")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-only", cfg.RottenTomatoes.APIKey)
	assert.Equal(t, "pretty", cfg.Output.Format)
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, "rottentomatoes:\n  api_key: k\nlogging:\n  level: loud\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
