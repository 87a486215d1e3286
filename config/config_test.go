package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/eandb/eandb"
	"github.com/s0up4200/eandb/transport"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
api:
  token: file-token
  version: v1
http:
  timeout: 5s
  retries: 2
  headers:
    User-Agent: eandb-cli
  breaker:
    enabled: true
    max_failures: 3
    open_timeout: 10s
batch:
  concurrency: 8
output:
  format: json
  language: de
filters:
  Vegan: isVegan()
logging:
  level: debug
  format: json
  color: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, transport.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "file-token", cfg.API.Token)
	assert.Equal(t, eandb.V1, cfg.APIVersion())
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 2, cfg.HTTP.Retries)
	assert.Equal(t, 8, cfg.Batch.Concurrency)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "de", cfg.Output.Language)
	assert.Equal(t, FilterConfig{"vegan": "isVegan()"}, cfg.Filters)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Color)

	tc := cfg.TransportConfig()
	assert.Equal(t, "file-token", tc.Token)
	assert.Equal(t, 2, tc.Retries)
	assert.True(t, tc.Breaker.Enabled)
	assert.Equal(t, uint32(3), tc.Breaker.MaxFailures)
	assert.Equal(t, 10*time.Second, tc.Breaker.OpenTimeout)
	assert.NotEmpty(t, tc.Headers)
}

func TestLoadDefaultsFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EANDB_API_TOKEN", "env-token")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.API.Token)
	assert.Equal(t, eandb.V2, cfg.APIVersion())
	assert.Equal(t, transport.DefaultTimeout, cfg.HTTP.Timeout)
	assert.Equal(t, 0, cfg.HTTP.Retries)
	assert.False(t, cfg.HTTP.Breaker.Enabled)
	assert.Equal(t, eandb.DefaultConcurrency, cfg.Batch.Concurrency)
	assert.Equal(t, "console", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Color)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "api:\n  token: file-token\n  version: v2\n")
	t.Setenv("EANDB_API_TOKEN", "env-token")
	t.Setenv("EANDB_API_VERSION", "v1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.API.Token)
	assert.Equal(t, eandb.V1, cfg.APIVersion())
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EANDB_API_TOKEN", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.token is required")

	_, err = Load(writeConfig(t, "api: [not, a, map"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API:     APIConfig{Token: "TEST", Version: "v2"},
			HTTP:    HTTPConfig{Timeout: time.Second},
			Batch:   BatchConfig{Concurrency: 1},
			Output:  OutputConfig{Format: "console"},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "upper case level", mutate: func(c *Config) { c.Logging.Level = "DEBUG" }},
		{name: "mixed case log format", mutate: func(c *Config) { c.Logging.Format = "Json" }},
		{name: "missing token", mutate: func(c *Config) { c.API.Token = " " }, wantErr: "api.token"},
		{name: "bad version", mutate: func(c *Config) { c.API.Version = "v9" }, wantErr: "api.version"},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTP.Timeout = 0 }, wantErr: "http.timeout"},
		{name: "negative retries", mutate: func(c *Config) { c.HTTP.Retries = -1 }, wantErr: "http.retries"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Batch.Concurrency = 0 }, wantErr: "batch.concurrency"},
		{name: "bad output", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: "output.format"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
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
