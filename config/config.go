package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/eandb/eandb"
	"github.com/s0up4200/eandb/format"
	"github.com/s0up4200/eandb/transport"
)

// EnvPrefix prefixes environment overrides, e.g. EANDB_API_TOKEN
const EnvPrefix = "EANDB"

// Load loads the configuration from file and environment. Without an explicit
// path a missing config file is not an error, so the token can come from the
// environment alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
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

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".eandb"))
		}

		// Check /etc
		v.AddConfigPath("/etc/eandb/")
	}

	// Read config file
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

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", transport.DefaultBaseURL)
	v.SetDefault("api.token", "")
	v.SetDefault("api.version", eandb.DefaultVersion.String())

	// HTTP defaults
	v.SetDefault("http.timeout", transport.DefaultTimeout)
	v.SetDefault("http.retries", 0)
	v.SetDefault("http.breaker.enabled", false)
	v.SetDefault("http.breaker.max_failures", transport.DefaultMaxFailures)
	v.SetDefault("http.breaker.open_timeout", transport.DefaultOpenTimeout)

	// Batch defaults
	v.SetDefault("batch.concurrency", eandb.DefaultConcurrency)

	// Output defaults
	v.SetDefault("output.format", string(format.OutputConsole))
	v.SetDefault("output.language", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.API.Token) == "" {
		return fmt.Errorf("api.token is required (or set %s_API_TOKEN)", EnvPrefix)
	}

	if _, err := eandb.ParseVersion(cfg.API.Version); err != nil {
		return fmt.Errorf("invalid api.version: %w", err)
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %s", cfg.HTTP.Timeout)
	}

	if cfg.HTTP.Retries < 0 {
		return fmt.Errorf("http.retries must not be negative, got %d", cfg.HTTP.Retries)
	}

	if cfg.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be at least 1, got %d", cfg.Batch.Concurrency)
	}

	if _, err := format.ParseOutput(cfg.Output.Format); err != nil {
		return fmt.Errorf("invalid output.format: %w", err)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[strings.ToLower(cfg.Logging.Format)] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// APIVersion returns the configured API version
func (c *Config) APIVersion() eandb.Version {
	v, err := eandb.ParseVersion(c.API.Version)
	if err != nil {
		return eandb.DefaultVersion
	}
	return v
}

// TransportConfig builds the HTTP transport settings
func (c *Config) TransportConfig() transport.Config {
	return transport.Config{
		BaseURL: c.API.BaseURL,
		Token:   c.API.Token,
		Timeout: c.HTTP.Timeout,
		Retries: c.HTTP.Retries,
		Headers: c.HTTP.Headers,
		Breaker: transport.BreakerConfig{
			Enabled:     c.HTTP.Breaker.Enabled,
			MaxFailures: c.HTTP.Breaker.MaxFailures,
			OpenTimeout: c.HTTP.Breaker.OpenTimeout,
		},
	}
}
