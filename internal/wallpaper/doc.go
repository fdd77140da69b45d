// Package wallpaper turns decoded Apple wallpaper metadata into the schedule
// document kdynamicwallpaperbuilder consumes.
//
// The three metadata flavours translate into one Schedule shape: solar frames
// keep their sun coordinates, timed frames get a wall-clock HH:MM stamp, and
// appearance-based wallpapers become a fixed day/night pair. Image files are
// referenced by the image-<n>.<format> convention the pipeline uses when it
// splits the container.
package wallpaper
