// Package testsupport provides synthetic wallpaper containers and plist
// payloads shared by tests across packages.
package testsupport

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// SolarItem describes one frame of a synthetic solar plist.
type SolarItem struct {
	Elevation float64
	Azimuth   float64
	Index     int
}

// TimeItem describes one frame of a synthetic 24-hour plist. Fraction is the
// time of day expressed as a fraction of a full day.
type TimeItem struct {
	Fraction float64
	Index    int
}

const plistHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
`

// SolarPlist renders an XML plist with an si array, matching the layout Apple
// embeds for sun-position wallpapers.
func SolarPlist(items ...SolarItem) []byte {
	var b strings.Builder
	b.WriteString(plistHeader)
	b.WriteString("<dict>\n\t<key>si</key>\n\t<array>\n")
	for _, item := range items {
		b.WriteString("\t\t<dict>\n")
		fmt.Fprintf(&b, "\t\t\t<key>a</key><real>%s</real>\n", formatFloat(item.Elevation))
		fmt.Fprintf(&b, "\t\t\t<key>i</key><integer>%d</integer>\n", item.Index)
		fmt.Fprintf(&b, "\t\t\t<key>z</key><real>%s</real>\n", formatFloat(item.Azimuth))
		b.WriteString("\t\t</dict>\n")
	}
	b.WriteString("\t</array>\n</dict>\n</plist>\n")
	return []byte(b.String())
}

// TimePlist renders an XML plist with a ti array.
func TimePlist(items ...TimeItem) []byte {
	var b strings.Builder
	b.WriteString(plistHeader)
	b.WriteString("<dict>\n\t<key>ti</key>\n\t<array>\n")
	for _, item := range items {
		b.WriteString("\t\t<dict>\n")
		fmt.Fprintf(&b, "\t\t\t<key>i</key><integer>%d</integer>\n", item.Index)
		fmt.Fprintf(&b, "\t\t\t<key>t</key><real>%s</real>\n", formatFloat(item.Fraction))
		b.WriteString("\t\t</dict>\n")
	}
	b.WriteString("\t</array>\n</dict>\n</plist>\n")
	return []byte(b.String())
}

// DayNightPlist renders an XML plist carrying the light and dark image
// indices of an appearance-based wallpaper.
func DayNightPlist(light, dark int) []byte {
	var b strings.Builder
	b.WriteString(plistHeader)
	b.WriteString("<dict>\n")
	fmt.Fprintf(&b, "\t<key>d</key><integer>%d</integer>\n", dark)
	fmt.Fprintf(&b, "\t<key>l</key><integer>%d</integer>\n", light)
	b.WriteString("</dict>\n</plist>\n")
	return []byte(b.String())
}

// EmbedMarker wraps a plist payload in an apple_desktop marker surrounded by
// binary noise, imitating how the attribute appears inside a HEIC byte
// stream. Token is one of "solar", "h24", or "apr".
func EmbedMarker(token string, plistData []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(plistData)
	var out []byte
	out = append(out, 0x00, 0x00, 0x00, 0x18)
	out = append(out, []byte("ftypheic")...)
	out = append(out, 0x89, 0x50, 0x4e, 0x47, 0x1a, 0x00)
	out = append(out, []byte(`xmlns:apple_desktop="http://ns.apple.com/namespace/1.0/" apple_desktop:`)...)
	out = append(out, []byte(token)...)
	out = append(out, '=', '"')
	out = append(out, []byte(encoded)...)
	out = append(out, '"', '/', '>')
	out = append(out, 0xff, 0xd9, 0x00)
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
