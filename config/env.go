// Package config loads environment configuration shared by the showcase
// binaries.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/cybersky/showcase/counter"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv reads the given .env files into the process environment
// without overriding variables that are already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Common holds the settings every binary reads.
type Common struct {
	Catalog         string        `env:"SHOWCASE_CATALOG"`
	AssetsDir       string        `env:"SHOWCASE_ASSETS_DIR" envDefault:"public"`
	LogLevel        string        `env:"SHOWCASE_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"SHOWCASE_LOG_FORMAT" envDefault:"json"`
	CounterDuration time.Duration `env:"SHOWCASE_COUNTER_DURATION" envDefault:"2s"`
	CounterSteps    int           `env:"SHOWCASE_COUNTER_STEPS" envDefault:"60"`
}

// Counter returns the counter animation settings.
func (c Common) Counter() counter.Config {
	return counter.Config{Duration: c.CounterDuration, Steps: c.CounterSteps}
}

// LoadCommon parses the shared settings.
func LoadCommon() (Common, error) {
	var cfg Common
	if err := ParseEnv(&cfg); err != nil {
		return Common{}, err
	}
	if cfg.CounterDuration <= 0 || cfg.CounterSteps <= 0 {
		return Common{}, fmt.Errorf("counter duration and steps must be positive")
	}
	return cfg, nil
}
