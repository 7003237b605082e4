package testsupport

import (
	"path/filepath"
	"testing"

	"mvault/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ContentDir = filepath.Join(base, "content")
	cfgVal.Paths.CoversDir = filepath.Join(base, "covers")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.CatalogDB = filepath.Join(base, "data", "catalog.db")
	cfgVal.Ingest.PacingMinMillis = 0
	cfgVal.Ingest.PacingMaxMillis = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithOverwrite makes ingestion replace existing records.
func WithOverwrite() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ingest.OverwriteExisting = true
	}
}

// WithZombieThresholdKB overrides the placeholder-cover size floor.
func WithZombieThresholdKB(kb int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ingest.ZombieThresholdKB = kb
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ContentDir)
}
