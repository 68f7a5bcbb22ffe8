package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Backend variants and local media.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"

	MediumFile     = "file"
	MediumPostgres = "postgres"
	MediumMemory   = "memory"
)

// Config selects the backend variant and its medium. Values come from the
// process environment, optionally seeded from a .env file.
type Config struct {
	Backend     string `env:"SHOPFRONT_BACKEND" env-default:"local"`
	Medium      string `env:"SHOPFRONT_MEDIUM" env-default:"file"`
	DataDir     string `env:"SHOPFRONT_DATA_DIR" env-default:".shopfront"`
	DatabaseURL string `env:"DATABASE_URL"`
	APIBaseURL  string `env:"API_URL" env-default:"http://localhost:3000/api"`
	Token       string `env:"SHOPFRONT_TOKEN"`
	Env         string `env:"ENV" env-default:"local"`
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch cfg.Backend {
	case BackendLocal, BackendRemote:
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	switch cfg.Medium {
	case MediumFile, MediumPostgres, MediumMemory:
	default:
		return nil, fmt.Errorf("unknown medium %q", cfg.Medium)
	}
	return &cfg, nil
}
