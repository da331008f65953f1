// Package config loads every externally sourced setting and secret into a
// single immutable Config value. Loading happens once at startup; the value
// is then shared read-only with every component that needs it.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/pagi-sec/pagi/internal/crowdstrike"
	"github.com/pagi-sec/pagi/internal/jira"
	"github.com/pagi-sec/pagi/internal/provider/openrouter"
)

// ErrMissingAPIKey indicates the mandatory chat-provider credential is
// absent from the environment. Nothing downstream can work without it, so
// the bootstrap should treat this as fatal.
var ErrMissingAPIKey = errors.New("missing required env var: OPENROUTER_API_KEY")

// Config represents the full process configuration.
type Config struct {
	OpenRouter  openrouter.Config
	Jira        jira.Config
	Crowdstrike crowdstrike.Config
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	OpenRouter  *openrouter.Config
	Jira        *jira.Config
	Crowdstrike *crowdstrike.Config
}

// Load loads environment files and parses configuration.
//
// A `.env` file in the working directory is read first, best-effort: its
// values only fill gaps and never override variables already present in
// the shell environment. A missing or malformed file is not an error.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.OpenRouter.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &cfg, nil
}

// MustLoad is like Load but panics on failure. It keeps the original
// fail-fast surface for callers that have no error path of their own.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.OpenRouter,
		&cfg.Jira,
		&cfg.Crowdstrike,
	}
}
