package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCommonDefaults(t *testing.T) {
	for _, key := range []string{"SHOWCASE_CATALOG", "SHOWCASE_ASSETS_DIR", "SHOWCASE_LOG_LEVEL", "SHOWCASE_LOG_FORMAT", "SHOWCASE_COUNTER_DURATION", "SHOWCASE_COUNTER_STEPS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadCommon()
	if err != nil {
		t.Fatalf("LoadCommon: %v", err)
	}
	if cfg.Catalog != "" || cfg.AssetsDir != "public" || cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if c := cfg.Counter(); c.Duration != 2*time.Second || c.Steps != 60 {
		t.Fatalf("counter = %+v", c)
	}
}

func TestLoadCommonOverrides(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", "https://cdn.example/catalog.json")
	t.Setenv("SHOWCASE_COUNTER_DURATION", "500ms")
	t.Setenv("SHOWCASE_COUNTER_STEPS", "10")

	cfg, err := LoadCommon()
	if err != nil {
		t.Fatalf("LoadCommon: %v", err)
	}
	if cfg.Catalog != "https://cdn.example/catalog.json" {
		t.Errorf("catalog = %q", cfg.Catalog)
	}
	if c := cfg.Counter(); c.Duration != 500*time.Millisecond || c.Steps != 10 {
		t.Errorf("counter = %+v", c)
	}
}

func TestLoadCommonErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad duration", key: "SHOWCASE_COUNTER_DURATION", value: "soon"},
		{name: "zero steps", key: "SHOWCASE_COUNTER_STEPS", value: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadCommon(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SHOWCASE_DOTENV_PROBE=from-file\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("SHOWCASE_DOTENV_PROBE", "")
	os.Unsetenv("SHOWCASE_DOTENV_PROBE")

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SHOWCASE_DOTENV_PROBE"); got != "from-file" {
		t.Fatalf("probe = %q", got)
	}
}
