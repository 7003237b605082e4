package config

import "strings"

// normalize expands user paths and trims string fields so downstream code
// never sees tilde shortcuts or stray whitespace.
func (c *Config) normalize() error {
	paths := []*string{
		&c.Paths.ContentDir,
		&c.Paths.CoversDir,
		&c.Paths.DataDir,
		&c.Paths.LogDir,
		&c.Paths.CatalogDB,
	}
	for _, field := range paths {
		expanded, err := expandPath(strings.TrimSpace(*field))
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Provider.Binary = strings.TrimSpace(c.Provider.Binary)
	if c.Provider.Binary == "" {
		c.Provider.Binary = defaultProviderBinary
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
