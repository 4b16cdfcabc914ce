package otel

import "github.com/emiliopalmerini/typouniverse/internal/config"

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// ConfigFrom extracts the exporter settings from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Endpoint: cfg.OtelEndpoint,
		Enabled:  cfg.OtelEnabled,
		Insecure: cfg.OtelInsecure,
	}
}
