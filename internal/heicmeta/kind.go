package heicmeta

// Kind identifies which metadata flavour a container embeds.
type Kind int

const (
	// KindSolar schedules images by sun elevation and azimuth.
	KindSolar Kind = iota
	// KindTime schedules images by time of day.
	KindTime
	// KindDayNight carries exactly one day image and one night image.
	KindDayNight
)

func (k Kind) String() string {
	switch k {
	case KindSolar:
		return "solar"
	case KindTime:
		return "h24"
	case KindDayNight:
		return "apr"
	default:
		return "unknown"
	}
}
