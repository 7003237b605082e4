package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}

	if c.Provider.TimeoutSeconds <= 0 {
		return fmt.Errorf("provider.timeout_seconds: must be positive, got %d", c.Provider.TimeoutSeconds)
	}

	if c.Ingest.PacingMinMillis < 0 || c.Ingest.PacingMaxMillis < 0 {
		return fmt.Errorf("ingest: pacing values must not be negative")
	}
	if c.Ingest.PacingMaxMillis < c.Ingest.PacingMinMillis {
		return fmt.Errorf("ingest: pacing_max_millis (%d) must be >= pacing_min_millis (%d)",
			c.Ingest.PacingMaxMillis, c.Ingest.PacingMinMillis)
	}
	if c.Ingest.ZombieThresholdKB < 0 {
		return fmt.Errorf("ingest.zombie_threshold_kb: must not be negative, got %d", c.Ingest.ZombieThresholdKB)
	}

	return nil
}
