package playerbar

import (
	"math"
	"strings"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
)

// RenderProgressBar renders a width-cell bar filled to progress.
// Progress outside [0, 1] is clamped.
func RenderProgressBar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := filledCells(progress, width)
	return progressBarFilled().Render(strings.Repeat(filledBlock, filled)) +
		progressBarEmpty().Render(strings.Repeat(emptyBlock, width-filled))
}

func filledCells(progress float64, width int) int {
	switch {
	case math.IsNaN(progress), progress <= 0:
		return 0
	case progress >= 1:
		return width
	default:
		return min(int(float64(width)*progress), width)
	}
}
