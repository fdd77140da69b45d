package wallpaper

import (
	"encoding/json"
	"fmt"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/heicmeta"
)

// Schedule type tags understood by kdynamicwallpaperbuilder.
const (
	TypeSolar    = "solar"
	TypeDayNight = "day-night"
)

// SolarEntry describes one image keyed to a sun position. Time carries a
// placeholder; the builder derives display timing from the sun coordinates.
type SolarEntry struct {
	SolarElevation float64 `json:"SolarElevation"`
	SolarAzimuth   float64 `json:"SolarAzimuth"`
	Time           string  `json:"Time"`
	CrossFade      bool    `json:"CrossFade"`
	FileName       string  `json:"FileName"`
}

// TimeEntry describes one image keyed to a wall-clock time of day.
type TimeEntry struct {
	Time      string `json:"Time"`
	CrossFade bool   `json:"CrossFade"`
	FileName  string `json:"FileName"`
}

// DayNightEntry describes the day or the night image of an appearance-based
// wallpaper.
type DayNightEntry struct {
	TimeOfDay string `json:"TimeOfDay"`
	FileName  string `json:"FileName"`
}

// Schedule is the normalized translation result. Exactly one of the entry
// slices is populated, matching Kind.
type Schedule struct {
	Kind     heicmeta.Kind
	Solar    []SolarEntry
	Times    []TimeEntry
	DayNight []DayNightEntry
}

// Type returns the tag written into the builder document. Timed schedules
// keep the solar tag; kdynamicwallpaperbuilder selects the entry shape from
// the fields present, not from the tag.
func (s *Schedule) Type() string {
	if s.Kind == heicmeta.KindDayNight {
		return TypeDayNight
	}
	return TypeSolar
}

// Len reports the number of schedule entries.
func (s *Schedule) Len() int {
	switch s.Kind {
	case heicmeta.KindSolar:
		return len(s.Solar)
	case heicmeta.KindTime:
		return len(s.Times)
	default:
		return len(s.DayNight)
	}
}

// FileNames returns the image files the schedule references, in entry order.
func (s *Schedule) FileNames() []string {
	names := make([]string, 0, s.Len())
	switch s.Kind {
	case heicmeta.KindSolar:
		for _, e := range s.Solar {
			names = append(names, e.FileName)
		}
	case heicmeta.KindTime:
		for _, e := range s.Times {
			names = append(names, e.FileName)
		}
	default:
		for _, e := range s.DayNight {
			names = append(names, e.FileName)
		}
	}
	return names
}

// MarshalJSON renders the builder transfer document: a Type tag plus a Meta
// list whose entry shape depends on the schedule kind.
func (s *Schedule) MarshalJSON() ([]byte, error) {
	doc := struct {
		Type string `json:"Type"`
		Meta []any  `json:"Meta"`
	}{Type: s.Type(), Meta: make([]any, 0, s.Len())}

	switch s.Kind {
	case heicmeta.KindSolar:
		for _, e := range s.Solar {
			doc.Meta = append(doc.Meta, e)
		}
	case heicmeta.KindTime:
		for _, e := range s.Times {
			doc.Meta = append(doc.Meta, e)
		}
	default:
		for _, e := range s.DayNight {
			doc.Meta = append(doc.Meta, e)
		}
	}
	return json.Marshal(doc)
}

// ImageFileName builds the file name for a zero-based image index using the
// image-<n>.<format> convention, numbered from 1.
func ImageFileName(index int, format string) string {
	return fmt.Sprintf("image-%d.%s", index+1, format)
}
