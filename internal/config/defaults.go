package config

const (
	defaultContentDir        = "~/.local/share/mvault/content"
	defaultCoversDir         = "~/.local/share/mvault/covers"
	defaultDataDir           = "~/.local/share/mvault/data"
	defaultLogDir            = "~/.local/share/mvault/logs"
	defaultCatalogDB         = "~/.local/share/mvault/catalog.db"
	defaultProviderBinary    = "yt-dlp"
	defaultProviderTimeout   = 120
	defaultPacingMinMillis   = 2000
	defaultPacingMaxMillis   = 7000
	defaultZombieThresholdKB = 8
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ContentDir: defaultContentDir,
			CoversDir:  defaultCoversDir,
			DataDir:    defaultDataDir,
			LogDir:     defaultLogDir,
			CatalogDB:  defaultCatalogDB,
		},
		Provider: Provider{
			Binary:         defaultProviderBinary,
			TimeoutSeconds: defaultProviderTimeout,
		},
		Ingest: Ingest{
			PacingMinMillis:   defaultPacingMinMillis,
			PacingMaxMillis:   defaultPacingMaxMillis,
			ZombieThresholdKB: defaultZombieThresholdKB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
