package heicmeta

import (
	"bytes"
	"fmt"
)

// markers lists the recognized attribute prefixes. Order matters: when a
// container pathologically carries more than one marker the first entry wins.
var markers = []struct {
	kind   Kind
	prefix []byte
}{
	{KindSolar, []byte(`apple_desktop:solar="`)},
	{KindTime, []byte(`apple_desktop:h24="`)},
	{KindDayNight, []byte(`apple_desktop:apr="`)},
}

// Locate scans raw container bytes for a dynamic-wallpaper marker and returns
// the kind together with the base64 payload between the marker's quotes. The
// marker may sit anywhere inside binary content; only the quoted base64 run is
// extracted. Returns ErrNoMetadata when no marker is present.
func Locate(raw []byte) (Kind, string, error) {
	for _, m := range markers {
		start := bytes.Index(raw, m.prefix)
		if start < 0 {
			continue
		}
		payload, err := readBase64Run(raw[start+len(m.prefix):])
		if err != nil {
			return m.kind, "", fmt.Errorf("%s marker: %w", m.kind, err)
		}
		return m.kind, payload, nil
	}
	return 0, "", ErrNoMetadata
}

// readBase64Run consumes base64 alphabet characters up to the closing quote.
// Padding is limited to two trailing '=' characters; anything else before the
// quote makes the payload unusable.
func readBase64Run(rest []byte) (string, error) {
	padding := 0
	for i, b := range rest {
		switch {
		case b == '"':
			if i == 0 {
				return "", fmt.Errorf("%w: empty payload", ErrDecode)
			}
			return string(rest[:i]), nil
		case b == '=':
			padding++
			if padding > 2 {
				return "", fmt.Errorf("%w: excess base64 padding", ErrDecode)
			}
		case isBase64Char(b):
			if padding > 0 {
				return "", fmt.Errorf("%w: base64 data after padding", ErrDecode)
			}
		default:
			return "", fmt.Errorf("%w: byte %#x is not base64", ErrDecode, b)
		}
	}
	return "", fmt.Errorf("%w: unterminated payload", ErrDecode)
}

func isBase64Char(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '+', b == '/':
		return true
	default:
		return false
	}
}
