// Package builder wraps the kdynamicwallpaperbuilder command line, which
// assembles the final wallpaper artifact from a schedule description and the
// split images next to it.
package builder
