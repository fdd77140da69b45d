// Package heicmeta locates and decodes the Apple dynamic-wallpaper metadata
// embedded in HEIC containers.
//
// macOS dynamic wallpapers carry a base64-encoded property list inside an XMP
// attribute that appears as a printable string in the container bytes, one of
// apple_desktop:solar, apple_desktop:h24, or apple_desktop:apr. Locate finds
// the marker without parsing the container structure, Decode turns the payload
// into a nested dictionary, and Extract combines the two. Interpreting the
// dictionary is left to the wallpaper package.
package heicmeta
