package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"dev"`
	Port     int    `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	SeedDemo bool   `env:"SEED_DEMO" envDefault:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
