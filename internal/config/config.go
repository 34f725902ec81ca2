package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"ContaSimple"`
		Port int    `envconfig:"PORT" default:"8080"`
		// Start every ledger with the sample records.
		SeedData bool `envconfig:"SEED_DATA" default:"true"`
	}

	Server struct {
		Timeout            time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
		RateLimitPerMinute int           `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
		// TUI only; empty discards logs so they never draw over the screen.
		File string `envconfig:"LOG_FILE"`
	}

	UI struct {
		ToastDuration time.Duration `envconfig:"TOAST_DURATION" default:"4s"`
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
