package mcpsrv

import (
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cybersky/showcase/config"
)

type Config struct {
	config.Common
	Port               string        `env:"PORT" envDefault:"8080"`
	AllowedOrigins     []string      `env:"SHOWCASE_MCP_ALLOWED_ORIGINS" envSeparator:","`
	Stateless          bool          `env:"SHOWCASE_MCP_STATELESS" envDefault:"false"`
	EnableAdmin        bool          `env:"SHOWCASE_MCP_ENABLE_ADMIN" envDefault:"false"`
	APIKey             string        `env:"SHOWCASE_MCP_API_KEY"`
	RPS                float64       `env:"SHOWCASE_MCP_RPS" envDefault:"2"`
	Burst              int           `env:"SHOWCASE_MCP_BURST" envDefault:"5"`
	SessionTimeout     time.Duration `env:"SHOWCASE_MCP_SESSION_TIMEOUT" envDefault:"15m"`
	CacheClearInterval time.Duration `env:"SHOWCASE_CATALOG_REFRESH_INTERVAL" envDefault:"30m"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if v := strings.TrimSpace(o); v != "" {
			origins = append(origins, v)
		}
	}
	cfg.AllowedOrigins = origins
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)

	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8080"
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	return cfg, nil
}

// AdminEnabled reports whether admin tools may be registered. They require
// an API key so the HTTP transport can authenticate callers.
func (c Config) AdminEnabled() bool {
	return c.EnableAdmin && c.APIKey != ""
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}
