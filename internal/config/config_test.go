package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8090" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTP.Addr)
	}
	if !cfg.Normalize.ASCIIOnly {
		t.Fatalf("ascii conversion must default on")
	}
	if cfg.Fuzzy.Enabled {
		t.Fatalf("fuzzy matching must default off")
	}
	if cfg.Fuzzy.MaxDistance != 5 || cfg.Fuzzy.MinConfidence != 0.8 {
		t.Fatalf("unexpected fuzzy defaults: %+v", cfg.Fuzzy)
	}
	if cfg.Embedding.Provider != "noop" {
		t.Fatalf("expected noop embedding provider, got %q", cfg.Embedding.Provider)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MG_HTTP_ADDR", ":9100")
	t.Setenv("MG_ASCII_ONLY", "false")
	t.Setenv("MG_FUZZY_ENABLED", "yes")
	t.Setenv("MG_FUZZY_MAX_DISTANCE", "3")
	t.Setenv("MG_FUZZY_MIN_CONFIDENCE", "0.9")
	t.Setenv("MG_EMBED_PROVIDER", "openai")
	t.Setenv("MG_OPENAI_API_KEY", "sk_test_123")
	t.Setenv("MG_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("MG_CACHE_TTL", "1h")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9100" {
		t.Fatalf("expected http addr override")
	}
	if cfg.Normalize.ASCIIOnly {
		t.Fatalf("expected ascii override to false")
	}
	if !cfg.Fuzzy.Enabled {
		t.Fatalf("expected fuzzy enabled")
	}
	if cfg.Fuzzy.MaxDistance != 3 {
		t.Fatalf("expected fuzzy distance override")
	}
	if cfg.Fuzzy.MinConfidence != 0.9 {
		t.Fatalf("expected fuzzy confidence override")
	}
	if cfg.Embedding.Provider != "openai" || cfg.Embedding.OpenAIKey != "sk_test_123" {
		t.Fatalf("expected embedding overrides, got %+v", cfg.Embedding)
	}
	if cfg.Cache.RedisURL != "redis://localhost:6379/0" {
		t.Fatalf("expected redis url override")
	}
	if cfg.Cache.TTL != time.Hour {
		t.Fatalf("expected ttl override, got %v", cfg.Cache.TTL)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := []byte("http:\n  addr: \":7777\"\nfuzzy:\n  enabled: true\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":7777" {
		t.Fatalf("expected yaml addr, got %q", cfg.HTTP.Addr)
	}
	if !cfg.Fuzzy.Enabled {
		t.Fatalf("expected yaml fuzzy enable")
	}
	// Untouched fields keep their defaults.
	if cfg.Embedding.Provider != "noop" {
		t.Fatalf("expected default provider, got %q", cfg.Embedding.Provider)
	}
}
