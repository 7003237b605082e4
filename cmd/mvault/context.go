package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"mvault/internal/config"
	"mvault/internal/content"
	"mvault/internal/ingest"
	"mvault/internal/logging"
	"mvault/internal/metadata"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerValue builds the process logger once. Commands run after
// PersistentPreRunE has loaded the config, so a nil config here means the
// command opted out of config loading and a nop logger is fine.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.logger = logging.NewNop()
			return
		}
		logger, logErr := logging.NewFileLogger(cfg.Logging.Level, cfg.Logging.Format, cfg.Paths.LogDir, "mvault")
		if logErr != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) contentStore() (*content.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return content.NewStore(cfg.Paths.ContentDir, c.loggerValue()), nil
}

func (c *commandContext) newPipeline() (*ingest.Pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := c.contentStore()
	if err != nil {
		return nil, err
	}
	provider := metadata.NewProvider(cfg.Provider.Binary, time.Duration(cfg.Provider.TimeoutSeconds)*time.Second)
	return ingest.NewPipeline(cfg, store, provider, nil, c.loggerValue()), nil
}
