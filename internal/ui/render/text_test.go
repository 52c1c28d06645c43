package render

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string unchanged", "Midnight Drive", "Midnight Drive"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "Dark\nTrap", "DarkTrap"},
		{"escape dropped", "beat\x1b[31m", "beat[31m"},
		{"invalid byte dropped", "lo\xfffi", "lofi"},
		{"nbsp becomes space", "Lo\u00a0Fi", "Lo Fi"},
		{"C1 control dropped", "x\u0085y", "xy"},
		{"accents kept", "Café Noir", "Café Noir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Trap Soul", 20, "Trap Soul"},
		{"truncated", "Midnight Drive", 6, "Midni…"},
		{"multibyte kept whole", "Café Noir", 4, "Caf…"},
		{"zero width", "anything", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateEllipsis(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis_WideCharacters(t *testing.T) {
	got := TruncateEllipsis("東京ナイトビート", 7)
	if w := runewidth.StringWidth(got); w > 7 {
		t.Errorf("TruncateEllipsis width = %d, want <= 7 (%q)", w, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("TruncateEllipsis(%q) should end with an ellipsis", got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"padding needed", "hello", 10, "hello     "},
		{"exact width", "hello", 5, "hello"},
		{"already wider", "hello world", 5, "hello world"},
		{"empty string", "", 5, "     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.input, tt.width); got != tt.want {
				t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		contains string
	}{
		{"hello world", 8, "…"},
		{"hi", 8, "hi"},
	}

	for _, tt := range tests {
		got := TruncateAndPad(tt.input, tt.width)
		if w := runewidth.StringWidth(got); w != tt.width {
			t.Errorf("TruncateAndPad(%q, %d) width = %d, want %d", tt.input, tt.width, w, tt.width)
		}
		if !strings.Contains(got, tt.contains) {
			t.Errorf("TruncateAndPad(%q, %d) = %q, should contain %q", tt.input, tt.width, got, tt.contains)
		}
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name      string
		left      string
		right     string
		width     int
		wantWidth int
	}{
		{"basic row", "left", "right", 20, 20},
		{"tight fit keeps one space", "left", "right", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Row(tt.left, tt.right, tt.width)
			if len(got) != tt.wantWidth {
				t.Errorf("Row(%q, %q, %d) length = %d, want %d", tt.left, tt.right, tt.width, len(got), tt.wantWidth)
			}
			if !strings.HasPrefix(got, tt.left) || !strings.HasSuffix(got, tt.right) {
				t.Errorf("Row(%q, %q, %d) = %q", tt.left, tt.right, tt.width, got)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(10); got != "──────────" {
		t.Errorf("Separator(10) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{83 * time.Second, "1:23"},
		{83*time.Second + 900*time.Millisecond, "1:23"},
		{12 * time.Minute, "12:00"},
		{-3 * time.Second, "0:00"},
	}

	for _, tt := range tests {
		if got := Duration(tt.in); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0%"},
		{0.5, "50%"},
		{0.555, "56%"},
		{1, "100%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
