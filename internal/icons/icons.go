// Package icons provides the transport and listing glyphs for each icon style.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play       string
	Pause      string
	Stop       string
	Loading    string
	Volume     string
	VolumeMute string
	Audio      string
	Producer   string
	Sold       string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b",     // nf-fa-play
		Pause:      "\uf04c",     // nf-fa-pause
		Stop:       "\uf04d",     // nf-fa-stop
		Loading:    "\U000f051f", // nf-md-timer_sand
		Volume:     "\U000f057e", // nf-md-volume_high
		VolumeMute: "\U000f075f", // nf-md-volume_mute
		Audio:      "\uf001 ",    // nf-fa-music
		Producer:   "\uf007 ",    // nf-fa-user
		Sold:       "\U000f012c", // nf-md-check
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Stop:       "⏹",
		Loading:    "⏳",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Audio:      "🎵 ",
		Producer:   "👤 ",
		Sold:       "✓",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Stop:       "[]",
		Loading:    "...",
		Volume:     "vol",
		VolumeMute: "mute",
		Audio:      "",
		Producer:   "",
		Sold:       "(sold)",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Play returns the playing indicator.
func Play() string {
	return current.Play
}

// Pause returns the paused indicator.
func Pause() string {
	return current.Pause
}

// Stop returns the stopped indicator.
func Stop() string {
	return current.Stop
}

// Loading returns the indicator shown while a start is pending.
func Loading() string {
	return current.Loading
}

// Volume returns the volume icon.
func Volume() string {
	return current.Volume
}

// VolumeMute returns the icon shown at zero volume.
func VolumeMute() string {
	return current.VolumeMute
}

// Sold returns the marker for tracks that are no longer for sale.
func Sold() string {
	return current.Sold
}

// FormatTrack formats a track title with the appropriate icon.
func FormatTrack(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// FormatProducer formats a producer name with the appropriate icon.
func FormatProducer(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Producer + name
}
