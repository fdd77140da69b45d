package config

const (
	defaultHeifConvert      = "heif-convert"
	defaultWallpaperBuilder = "kdynamicwallpaperbuilder"
	defaultOutputPath       = "wallpaper.avif"
	defaultImageFormat      = "jpg"
	defaultSpeed            = "5"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			HeifConvert:      defaultHeifConvert,
			WallpaperBuilder: defaultWallpaperBuilder,
		},
		Output: Output{
			Path:        defaultOutputPath,
			ImageFormat: defaultImageFormat,
			Speed:       defaultSpeed,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
