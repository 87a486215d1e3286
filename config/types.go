package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Output  OutputConfig  `mapstructure:"output"`
	Filters FilterConfig  `mapstructure:"filters"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds ean-db connection details
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Token   string `mapstructure:"token"`
	Version string `mapstructure:"version"`
}

// HTTPConfig tunes the HTTP transport
type HTTPConfig struct {
	Timeout time.Duration     `mapstructure:"timeout"`
	Retries int               `mapstructure:"retries"`
	Headers map[string]string `mapstructure:"headers"`
	Breaker BreakerConfig     `mapstructure:"breaker"`
}

// BreakerConfig configures the circuit breaker in front of the API
type BreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

// BatchConfig controls batch lookups
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format   string `mapstructure:"format"`
	Language string `mapstructure:"language"`
}

// FilterConfig contains named filter expressions. Viper lowercases the names.
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
