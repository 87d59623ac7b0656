package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Adda-Baaj/bazar-khobor/pkg/gdelt"
)

// Config carries run defaults. CLI flags override these, these override the
// built-in defaults, and any BAZAR_* environment variable overrides the file.
type Config struct {
	Days           int    `mapstructure:"days"`
	Limit          int    `mapstructure:"limit"`
	EnglishOnly    bool   `mapstructure:"english_only"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	Endpoint       string `mapstructure:"endpoint"`
	LogLevel       string `mapstructure:"log_level"`

	Enrich     EnrichConfig `mapstructure:"enrich"`
	Cache      CacheConfig  `mapstructure:"cache"`
	Publishers string       `mapstructure:"publishers_file"`
}

// EnrichConfig controls the optional article page metadata scrape.
type EnrichConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Workers int  `mapstructure:"workers"`
	DelayMS int  `mapstructure:"delay_ms"`
}

// CacheConfig controls the optional run history store. An empty path
// disables it and the tool writes nothing to disk.
type CacheConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads config from the given file (optional) plus BAZAR_* env vars.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("days", 3)
	v.SetDefault("limit", 25)
	v.SetDefault("english_only", true)
	v.SetDefault("timeout_seconds", 15)
	v.SetDefault("endpoint", gdelt.DefaultEndpoint)
	v.SetDefault("log_level", "warn")
	v.SetDefault("enrich.enabled", false)
	v.SetDefault("enrich.workers", 5)
	v.SetDefault("enrich.delay_ms", 200)
	v.SetDefault("cache.path", "")
	v.SetDefault("publishers_file", "")

	v.SetEnvPrefix("BAZAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the invariants the search pipeline relies on.
func (c *Config) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("days must be >= 0, got %d", c.Days)
	}
	if c.Limit < 1 || c.Limit > gdelt.MaxRecords {
		return fmt.Errorf("limit must be in [1,%d], got %d", gdelt.MaxRecords, c.Limit)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.Enrich.Workers < 1 {
		return fmt.Errorf("enrich.workers must be >= 1, got %d", c.Enrich.Workers)
	}
	if c.Enrich.DelayMS < 0 {
		return fmt.Errorf("enrich.delay_ms must be >= 0, got %d", c.Enrich.DelayMS)
	}
	return nil
}

// Timeout returns the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// EnrichDelay returns the per-request delay for the metadata scrape.
func (c *Config) EnrichDelay() time.Duration {
	return time.Duration(c.Enrich.DelayMS) * time.Millisecond
}
