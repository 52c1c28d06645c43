//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	Init("none")
}

func TestTransportIcons(t *testing.T) {
	tests := []struct {
		style                   string
		play, pause, stop, wait string
	}{
		{"none", ">", "||", "[]", "..."},
		{"unicode", "▶", "⏸", "⏹", "⏳"},
		{"nerd", "\uf04b", "\uf04c", "\uf04d", "\U000f051f"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")

			if got := Play(); got != tt.play {
				t.Errorf("Play() = %q, want %q", got, tt.play)
			}
			if got := Pause(); got != tt.pause {
				t.Errorf("Pause() = %q, want %q", got, tt.pause)
			}
			if got := Stop(); got != tt.stop {
				t.Errorf("Stop() = %q, want %q", got, tt.stop)
			}
			if got := Loading(); got != tt.wait {
				t.Errorf("Loading() = %q, want %q", got, tt.wait)
			}
		})
	}
}

func TestVolumeIcons(t *testing.T) {
	Init("unicode")
	defer Init("none")

	if Volume() == VolumeMute() {
		t.Error("Volume() and VolumeMute() should differ")
	}
}

func TestFormatTrack(t *testing.T) {
	tests := []struct {
		style    string
		input    string
		expected string
	}{
		{"none", "Midnight Drive", "Midnight Drive"},
		{"unicode", "Midnight Drive", "🎵 Midnight Drive"},
		{"nerd", "Midnight Drive", "\uf001 Midnight Drive"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")

			if got := FormatTrack(tt.input); got != tt.expected {
				t.Errorf("FormatTrack(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatProducer(t *testing.T) {
	tests := []struct {
		style    string
		input    string
		expected string
	}{
		{"none", "Nightfall", "Nightfall"},
		{"unicode", "Nightfall", "👤 Nightfall"},
		{"nerd", "Nightfall", "\uf007 Nightfall"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")

			if got := FormatProducer(tt.input); got != tt.expected {
				t.Errorf("FormatProducer(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNoneStyleUsesASCII(t *testing.T) {
	all := []string{
		noneIcons.Play, noneIcons.Pause, noneIcons.Stop, noneIcons.Loading,
		noneIcons.Volume, noneIcons.VolumeMute, noneIcons.Sold,
	}
	for _, icon := range all {
		for _, r := range icon {
			if r > 127 {
				t.Errorf("none icon %q contains non-ASCII rune %q", icon, r)
			}
		}
	}
}

func TestIconSetsAreComplete(t *testing.T) {
	for name, set := range map[string]Icons{"nerd": nerdIcons, "unicode": unicodeIcons, "none": noneIcons} {
		for field, icon := range map[string]string{
			"Play": set.Play, "Pause": set.Pause, "Stop": set.Stop,
			"Loading": set.Loading, "Volume": set.Volume, "VolumeMute": set.VolumeMute,
			"Sold": set.Sold,
		} {
			if strings.TrimSpace(icon) == "" {
				t.Errorf("%s icons: %s is empty", name, field)
			}
		}
	}
}
