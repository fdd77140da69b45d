package config

import "strings"

func (c *Config) normalize() {
	c.Tools.HeifConvert = strings.TrimSpace(c.Tools.HeifConvert)
	if c.Tools.HeifConvert == "" {
		c.Tools.HeifConvert = defaultHeifConvert
	}
	c.Tools.WallpaperBuilder = strings.TrimSpace(c.Tools.WallpaperBuilder)
	if c.Tools.WallpaperBuilder == "" {
		c.Tools.WallpaperBuilder = defaultWallpaperBuilder
	}

	c.Output.Path = strings.TrimSpace(c.Output.Path)
	if c.Output.Path == "" {
		c.Output.Path = defaultOutputPath
	}
	c.Output.ImageFormat = strings.ToLower(strings.TrimSpace(c.Output.ImageFormat))
	if c.Output.ImageFormat == "" {
		c.Output.ImageFormat = defaultImageFormat
	}
	c.Output.Speed = strings.TrimSpace(c.Output.Speed)
	if c.Output.Speed == "" {
		c.Output.Speed = defaultSpeed
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
