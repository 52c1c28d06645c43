// Package render provides text rendering utilities for TUI components.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes,
// and turns non-breaking spaces into plain spaces.
// Catalog titles and producer names come from user input on the storefront.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
			// dropped
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := range len(s) {
		b := s[i]
		if (b < 0x20 && b != '\t') || b == 0x7f {
			return true
		}
		// U+0080..U+00A0 (C1 controls and NBSP) all start with 0xc2.
		if b == 0xc2 && i+1 < len(s) && s[i+1] >= 0x80 && s[i+1] <= 0xa0 {
			return true
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth, adding "..." if truncated.
// Uses runewidth for proper handling of wide characters (CJK, emoji).
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis shortens a string using a single character ellipsis (…).
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return Pad(TruncateEllipsis(s, width), width)
}

// Row creates a row with left and right aligned content separated by spaces.
// Styled strings are measured without their escape sequences.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Duration formats a playback time as m:ss, clamping negatives to zero.
func Duration(d time.Duration) string {
	d = max(d, 0)
	m := int(d / time.Minute)
	s := int(d/time.Second) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// Percent formats a [0, 1] level as a whole percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%d%%", int(v*100+0.5))
}
