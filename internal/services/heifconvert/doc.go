// Package heifconvert wraps the heif-convert command-line decoder used to
// split a HEIC container into one image file per frame.
package heifconvert
