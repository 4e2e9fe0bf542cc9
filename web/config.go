package web

import (
	"fmt"
	"time"

	"github.com/cybersky/showcase/config"
)

type Config struct {
	config.Common
	Port           string        `env:"PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"SHOWCASE_REQUEST_TIMEOUT" envDefault:"30s"`
}

// LoadConfig reads the web server settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.CounterDuration <= 0 || cfg.CounterSteps <= 0 {
		return Config{}, fmt.Errorf("counter duration and steps must be positive")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}
