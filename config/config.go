package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL string        `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	HTTPAddr    string        `envconfig:"HTTP_ADDR" default:":9090"`
	Environment string        `envconfig:"ENV" default:"development"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"168h"`
	Timezone    string        `envconfig:"TIMEZONE" default:"America/Chicago"`
}

// Load reads configuration from the environment, after loading a .env file
// if one is present in the working directory.
func Load() (Config, error) {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	return cfg, nil
}

// Location resolves the reference timezone all dates are normalized in.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
