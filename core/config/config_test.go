package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run_mode = %q, want longpoll", cfg.Telegram.RunMode)
	}
	if cfg.Catalog.Source != SourceFile {
		t.Errorf("catalog.source = %q, want file", cfg.Catalog.Source)
	}
	if cfg.Catalog.ProductsFile != "products.json" || cfg.Catalog.NewsFile != "news.json" {
		t.Errorf("unexpected default file paths: %q %q", cfg.Catalog.ProductsFile, cfg.Catalog.NewsFile)
	}
	if cfg.Catalog.ButtonsPerRow != 2 {
		t.Errorf("buttons_per_row = %d, want 2", cfg.Catalog.ButtonsPerRow)
	}
	if cfg.Catalog.MaxNewsItems != 5 {
		t.Errorf("max_news_items = %d, want 5", cfg.Catalog.MaxNewsItems)
	}
}

func TestNormalizeRejectsMissingToken(t *testing.T) {
	cfg := &Config{}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestNormalizeRunModeAlias(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run_mode = %q, want longpoll", cfg.Telegram.RunMode)
	}
}

func TestNormalizeWebhookRequiresListener(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook.URL = "https://bot.example.com"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing webhook listen address")
	}
}

func TestNormalizePostgresSourceRequiresDatabase(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.Catalog.Source = SourcePostgres
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing database settings")
	}

	cfg.Database.Host = "localhost"
	cfg.Database.Name = "catalog"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
}

func TestNormalizeInvalidSource(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.Catalog.Source = "redis"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown catalog source")
	}
}

func TestNormalizeRateLimitExclusions(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Errorf("exclusion not normalized: %q", cfg.RateLimit.ExcludeUpdates[0])
	}

	cfg2 := &Config{}
	cfg2.Telegram.Token = "t"
	cfg2.RateLimit.ExcludeUpdates = []string{"inline_query"}
	if err := Normalize(cfg2); err == nil {
		t.Fatal("expected error for unsupported exclusion")
	}
}
