package heicmeta

import (
	"encoding/base64"
	"fmt"

	"howett.net/plist"
)

// Decode base64-decodes a marker payload and parses it as a property list.
// Both binary and XML plists occur in the wild; howett.net/plist sniffs the
// format. No schema validation happens here, shape problems surface when the
// dictionary is translated into a schedule.
func Decode(payload string) (map[string]any, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrDecode, err)
	}

	var dict map[string]any
	if _, err := plist.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlist, err)
	}
	return dict, nil
}

// Extract runs Locate and Decode over raw container bytes in one step.
func Extract(raw []byte) (Kind, map[string]any, error) {
	kind, payload, err := Locate(raw)
	if err != nil {
		return kind, nil, err
	}
	dict, err := Decode(payload)
	if err != nil {
		return kind, nil, err
	}
	return kind, dict, nil
}
