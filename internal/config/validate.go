package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTools() error {
	if c.Tools.HeifConvert == "" {
		return errors.New("tools.heif_convert must be set")
	}
	if c.Tools.WallpaperBuilder == "" {
		return errors.New("tools.wallpaper_builder must be set")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.ImageFormat {
	case "jpg", "png":
	default:
		return fmt.Errorf("output.image_format must be jpg or png, got %q", c.Output.ImageFormat)
	}
	if c.Output.Path == "" {
		return errors.New("output.path must be set")
	}
	if c.Output.Speed == "" {
		return errors.New("output.speed must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
