package wallpaper

import (
	"errors"
	"fmt"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/heicmeta"
)

// ErrMalformedMetadata reports a decoded plist that does not have the shape
// its kind promises.
var ErrMalformedMetadata = errors.New("malformed wallpaper metadata")

// Config carries the caller choices every translated entry reflects.
type Config struct {
	CrossFade   bool
	ImageFormat string
}

// Translate maps a decoded metadata dictionary into a Schedule. The plist
// shape must match kind; any missing or mistyped key aborts the translation
// with ErrMalformedMetadata and no partial schedule.
func Translate(kind heicmeta.Kind, meta map[string]any, cfg Config) (*Schedule, error) {
	switch kind {
	case heicmeta.KindSolar:
		return translateSolar(meta, cfg)
	case heicmeta.KindTime:
		return translateTime(meta, cfg)
	case heicmeta.KindDayNight:
		return translateDayNight(meta, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrMalformedMetadata, kind)
	}
}

func translateSolar(meta map[string]any, cfg Config) (*Schedule, error) {
	items, err := dictList(meta, "si")
	if err != nil {
		return nil, err
	}

	schedule := &Schedule{Kind: heicmeta.KindSolar, Solar: make([]SolarEntry, 0, len(items))}
	for n, item := range items {
		elevation, err := floatField(item, "a", n)
		if err != nil {
			return nil, err
		}
		azimuth, err := floatField(item, "z", n)
		if err != nil {
			return nil, err
		}
		index, err := intField(item, "i", n)
		if err != nil {
			return nil, err
		}
		schedule.Solar = append(schedule.Solar, SolarEntry{
			SolarElevation: elevation,
			SolarAzimuth:   azimuth,
			Time:           "00:00",
			CrossFade:      cfg.CrossFade,
			FileName:       ImageFileName(index, cfg.ImageFormat),
		})
	}
	return schedule, nil
}

func translateTime(meta map[string]any, cfg Config) (*Schedule, error) {
	items, err := dictList(meta, "ti")
	if err != nil {
		return nil, err
	}

	schedule := &Schedule{Kind: heicmeta.KindTime, Times: make([]TimeEntry, 0, len(items))}
	for n, item := range items {
		fraction, err := floatField(item, "t", n)
		if err != nil {
			return nil, err
		}
		index, err := intField(item, "i", n)
		if err != nil {
			return nil, err
		}
		schedule.Times = append(schedule.Times, TimeEntry{
			Time:      clockTime(fraction),
			CrossFade: cfg.CrossFade,
			FileName:  ImageFileName(index, cfg.ImageFormat),
		})
	}
	return schedule, nil
}

func translateDayNight(meta map[string]any, cfg Config) (*Schedule, error) {
	light, err := intField(meta, "l", -1)
	if err != nil {
		return nil, err
	}
	dark, err := intField(meta, "d", -1)
	if err != nil {
		return nil, err
	}
	return &Schedule{
		Kind: heicmeta.KindDayNight,
		DayNight: []DayNightEntry{
			{TimeOfDay: "day", FileName: ImageFileName(light, cfg.ImageFormat)},
			{TimeOfDay: "night", FileName: ImageFileName(dark, cfg.ImageFormat)},
		},
	}, nil
}

// clockTime converts a fraction of a day in [0,1) to a zero-padded HH:MM
// string. Minutes truncate, they never round up.
func clockTime(fraction float64) string {
	minutes := int(fraction * 24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func dictList(meta map[string]any, key string) ([]map[string]any, error) {
	value, ok := meta[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %q missing", ErrMalformedMetadata, key)
	}
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: key %q is %T, want a list", ErrMalformedMetadata, key, value)
	}
	items := make([]map[string]any, 0, len(list))
	for n, element := range list {
		item, ok := element.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T, want a dictionary", ErrMalformedMetadata, key, n, element)
		}
		items = append(items, item)
	}
	return items, nil
}

func floatField(item map[string]any, key string, n int) (float64, error) {
	value, ok := item[key]
	if !ok {
		return 0, missingField(key, n)
	}
	f, ok := asFloat(value)
	if !ok {
		return 0, fmt.Errorf("%w: key %q is %T, want a number", ErrMalformedMetadata, key, value)
	}
	return f, nil
}

func intField(item map[string]any, key string, n int) (int, error) {
	value, ok := item[key]
	if !ok {
		return 0, missingField(key, n)
	}
	f, ok := asFloat(value)
	if !ok {
		return 0, fmt.Errorf("%w: key %q is %T, want an integer", ErrMalformedMetadata, key, value)
	}
	return int(f), nil
}

func missingField(key string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: key %q missing", ErrMalformedMetadata, key)
	}
	return fmt.Errorf("%w: item %d: key %q missing", ErrMalformedMetadata, n, key)
}

// asFloat widens the numeric types the plist decoder may produce.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
