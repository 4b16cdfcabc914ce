package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const Prefix = "TYPOUNIVERSE"

// Keys come from split field names rather than envconfig tags: a tag makes
// envconfig also read the unprefixed name, and LANG is always set.
type Config struct {
	Addr            string        `default:":8080"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`

	// KnowledgeBase is a JSON or YAML file; empty means the embedded copy.
	KnowledgeBase  string `split_words:"true"`
	Lang           string `default:"en"`
	GuideCacheSize int    `split_words:"true" default:"256"`

	LogLevel  string `split_words:"true" default:"info"`
	LogFormat string `split_words:"true" default:"console"`

	OtelEnabled  bool   `split_words:"true" default:"false"`
	OtelEndpoint string `split_words:"true"`
	OtelInsecure bool   `split_words:"true" default:"false"`
}

// Load reads TYPOUNIVERSE_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.GuideCacheSize <= 0 {
		return fmt.Errorf("GUIDE_CACHE_SIZE must be positive, got %d", c.GuideCacheSize)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if c.OtelEnabled && c.OtelEndpoint == "" {
		return fmt.Errorf("OTEL_ENDPOINT is required when OTEL_ENABLED is set")
	}
	return nil
}
