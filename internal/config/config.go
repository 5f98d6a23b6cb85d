// Package config loads the process configuration from the environment.
//
// Values are read from the process environment after loading dotenv files,
// so an exported variable always wins over a .env entry.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/teemow/todoist-mcp/internal/logging"
)

// TokenEnvVar is the environment variable holding the Todoist API token.
const TokenEnvVar = "TODOIST_API_TOKEN"

// Config is the connection configuration of the Todoist API
type Config struct {
	APIToken string `env:"TODOIST_API_TOKEN,required,notEmpty"`
	BaseURL  string `env:"TODOIST_BASE_URL" envDefault:"https://api.todoist.com/rest/v2"`
}

// Load reads dotenv files and parses the environment into a Config.
// Without files, a .env in the working directory is loaded if present.
// Files named explicitly must exist.
func Load(envFiles ...string) (*Config, error) {
	if err := LoadDotenv(envFiles...); err != nil {
		return nil, err
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotenv loads dotenv files into the process environment without
// overriding variables that are already set.
func LoadDotenv(envFiles ...string) error {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(envFiles...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LogValue implements slog.LogValuer and masks the token.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_token", logging.SanitizeToken(c.APIToken)),
		slog.String("base_url", c.BaseURL),
	)
}
