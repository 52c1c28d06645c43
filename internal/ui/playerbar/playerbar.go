// Package playerbar renders the bottom transport bar from a playback snapshot.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/prodify/internal/icons"
	"github.com/llehouerou/prodify/internal/playback"
	"github.com/llehouerou/prodify/internal/ui"
	"github.com/llehouerou/prodify/internal/ui/render"
)

// Height is the rendered height: top border, content, bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Title    string
	Producer string
	Status   playback.State
	Pending  bool
	Position time.Duration
	Duration time.Duration
	Progress float64
	Volume   float64
}

// NewState builds a State from a controller snapshot.
// Returns the zero State when no track was ever played.
func NewState(s playback.Snapshot) State {
	if s.Track == nil {
		return State{}
	}
	return State{
		Title:    s.Track.Title,
		Producer: s.Track.Producer.DisplayName,
		Status:   s.State(),
		Pending:  s.Pending,
		Position: s.Position,
		Duration: s.Duration,
		Progress: s.Progress,
		Volume:   s.Volume,
	}
}

// Visible reports whether there is a track to show.
func (s State) Visible() bool {
	return s.Title != "" || s.Producer != ""
}

// Render returns the player bar string for the given width.
// Returns an empty string when no track is bound.
func Render(s State, width int) string {
	if !s.Visible() {
		return ""
	}

	// border (2) + horizontal padding (2*2)
	innerWidth := max(width-6, 0)

	separator := "   "
	sepWidth := lipgloss.Width(separator)

	status := statusStyle().Render(statusIcon(s))
	timeStr := timeStyle().Render(render.Duration(s.Position) + " / " + render.Duration(s.Duration))
	volume := RenderVolume(s.Volume)

	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(timeStr) + 1 + lipgloss.Width(volume) + sepWidth*2
	available := innerWidth - fixed - ui.MinProgressBarWidth

	info := renderInfo(s, available)
	barWidth := max(innerWidth-fixed-lipgloss.Width(info), ui.MinProgressBarWidth)

	// Producer · Title   ▶  ━━━━────── 1:23 / 3:00   vol  80%
	var content strings.Builder
	content.WriteString(info)
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(RenderProgressBar(s.Progress, barWidth))
	content.WriteString(" ")
	content.WriteString(timeStr)
	content.WriteString(separator)
	content.WriteString(volume)

	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(content.String())
}

// renderInfo renders "Producer · Title" within maxWidth, dropping the producer first.
func renderInfo(s State, maxWidth int) string {
	title := s.Title
	if title == "" {
		title = "Untitled"
	}
	maxWidth = max(maxWidth, 10)

	titleWidth := lipgloss.Width(title)
	if s.Producer == "" || titleWidth >= maxWidth {
		return titleStyle().Render(render.TruncateEllipsis(title, maxWidth))
	}

	dot := " · "
	producerRoom := maxWidth - titleWidth - lipgloss.Width(dot)
	if producerRoom < 3 {
		return titleStyle().Render(title)
	}
	producer := render.TruncateEllipsis(s.Producer, producerRoom)
	return producerStyle().Render(producer) + timeStyle().Render(dot) + titleStyle().Render(title)
}

func statusIcon(s State) string {
	switch {
	case s.Pending:
		return icons.Loading()
	case s.Status == playback.StatePlaying:
		return icons.Play()
	case s.Status == playback.StatePaused:
		return icons.Pause()
	default:
		return icons.Stop()
	}
}
