package main

import (
	"log/slog"
	"strings"
	"sync"

	"ladle/internal/config"
	"ladle/internal/favorites"
	"ladle/internal/library"
	"ladle/internal/logging"
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

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// withRepository opens the favorites store for the duration of fn and hands
// over a wired repository.
func (c *commandContext) withRepository(fn func(cfg *config.Config, repo *library.Repository) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := favorites.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	repo := library.NewRepository(cfg, store, c.ensureLogger())
	return fn(cfg, repo)
}
