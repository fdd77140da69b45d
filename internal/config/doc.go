// Package config loads, normalizes, and validates converter configuration.
//
// Configuration lives in a TOML file and is entirely optional: every field
// has a default, and command-line flags override whatever the file provides.
// The file is searched at ~/.config/dynamicwallpaperconverter/config.toml,
// then at ./dynamicwallpaperconverter.toml, unless an explicit path is given.
package config
