package config

import (
	"github.com/caarlos0/env/v11"

	"biohub/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields are
// populated from environment variables using the caarlos0/env library; the
// nested structs carry envPrefix so their fields are parsed with the given
// prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the optional lookup cache and rate limiter (REDIS_*).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// App carries the short-link service's own knobs (APP_*).
	App configs.App `envPrefix:"APP_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
