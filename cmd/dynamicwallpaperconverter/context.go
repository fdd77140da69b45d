package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/config"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/logging"
)

// commandContext carries the persistent flag values and lazily loaded
// configuration shared by all commands.
type commandContext struct {
	configFlag *string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureConfig loads the configuration once, applying logging flag overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = strings.TrimSpace(*c.configFlag)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if c.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(c.logLevel)
	}
	if c.logFormat != "" {
		cfg.Logging.Format = strings.ToLower(c.logFormat)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// logger builds the process logger from the effective configuration. Log
// lines go to stderr so stdout stays clean for command output.
func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, os.Stderr)
}
