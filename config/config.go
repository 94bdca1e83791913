package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" envDefault:"0"`
	Backend  Backend `envPrefix:"APPWRITE_"`
	Cache    Cache   `envPrefix:"CACHE_"`
}

// Backend contains remote identity service parameters. Defaults point at the
// production project; overrides exist for staging and tests.
type Backend struct {
	Endpoint        string        `env:"ENDPOINT" envDefault:"https://cloud.appwrite.io/v1"`
	ProjectID       string        `env:"PROJECT_ID" envDefault:"66884cb9003db574cc26"`
	DatabaseID      string        `env:"DATABASE_ID" envDefault:"66884de5001e47798693"`
	UsersCollection string        `env:"USERS_COLLECTION" envDefault:"66884eaf002c11b5586d"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Cache contains local profile cache parameters.
type Cache struct {
	Path string `env:"PATH" envDefault:"fellowship.db"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
