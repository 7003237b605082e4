package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize default config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate default config: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.Provider.Binary != defaultProviderBinary {
		t.Fatalf("expected default provider binary, got %q", cfg.Provider.Binary)
	}
}

func TestLoadOverridesAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
content_dir = "` + filepath.Join(dir, "content") + `"

[ingest]
pacing_min_millis = 100
pacing_max_millis = 200
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Paths.ContentDir != filepath.Join(dir, "content") {
		t.Fatalf("unexpected content dir: %q", cfg.Paths.ContentDir)
	}
	if cfg.Ingest.PacingMinMillis != 100 || cfg.Ingest.PacingMaxMillis != 200 {
		t.Fatalf("pacing not applied: %+v", cfg.Ingest)
	}
	if !strings.HasSuffix(cfg.Paths.CatalogDB, "catalog.db") {
		t.Fatalf("expected default catalog db, got %q", cfg.Paths.CatalogDB)
	}
}

func TestValidateRejectsInvertedPacing(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Ingest.PacingMinMillis = 500
	cfg.Ingest.PacingMaxMillis = 100
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for max < min pacing")
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}
