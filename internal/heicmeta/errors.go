package heicmeta

import "errors"

var (
	// ErrNoMetadata reports that none of the known markers is present.
	ErrNoMetadata = errors.New("no dynamic wallpaper metadata found")
	// ErrDecode reports a marker whose payload is not valid base64.
	ErrDecode = errors.New("metadata decode error")
	// ErrPlist reports a payload that is not a parseable property list.
	ErrPlist = errors.New("metadata plist error")
)
