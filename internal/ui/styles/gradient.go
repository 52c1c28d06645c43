package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Brand renders the application name in the bold emerald gradient used by the header.
func Brand(text string) string {
	t := T()
	return applyGradient(text, true, t.BorderFocus, t.Secondary)
}

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, false, from, to)
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	if len(clusters) == 0 {
		return ""
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorToHex(colors[i])))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// graphemes splits text into user-perceived characters so that a blended
// color never lands inside a combining sequence or an emoji.
func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// blendColors returns size colors blended from from to to in HCL space.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	if size < 2 {
		return []color.Color{c1}
	}
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// lipglossToColor converts a hex lipgloss.Color; ANSI numbers fall back to gray.
func lipglossToColor(c lipgloss.Color) color.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
