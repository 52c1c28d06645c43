package playerbar

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/prodify/internal/catalog"
	"github.com/llehouerou/prodify/internal/icons"
	"github.com/llehouerou/prodify/internal/playback"
)

func testTrack() *catalog.Track {
	return &catalog.Track{
		Title:    "Midnight Drive",
		Producer: catalog.Producer{DisplayName: "Nightfall"},
	}
}

func TestNewState_NoTrack(t *testing.T) {
	s := NewState(playback.Snapshot{Volume: 1})
	assert.False(t, s.Visible())
	assert.Empty(t, Render(s, 100))
}

func TestNewState_FromSnapshot(t *testing.T) {
	snap := playback.Snapshot{
		Track:    testTrack(),
		Playing:  true,
		Position: 30 * time.Second,
		Duration: 2 * time.Minute,
		Progress: 0.25,
		Volume:   0.8,
	}

	s := NewState(snap)

	assert.Equal(t, "Midnight Drive", s.Title)
	assert.Equal(t, "Nightfall", s.Producer)
	assert.Equal(t, playback.StatePlaying, s.Status)
	assert.InDelta(t, 0.25, s.Progress, 1e-9)
	assert.InDelta(t, 0.8, s.Volume, 1e-9)
	assert.True(t, s.Visible())
}

func TestNewState_EndedIsStopped(t *testing.T) {
	s := NewState(playback.Snapshot{Track: testTrack(), Ended: true})
	assert.Equal(t, playback.StateStopped, s.Status)
}

func TestRender_Contents(t *testing.T) {
	icons.Init("none")
	s := State{
		Title:    "Midnight Drive",
		Producer: "Nightfall",
		Status:   playback.StatePaused,
		Position: 83 * time.Second,
		Duration: 3 * time.Minute,
		Progress: 83.0 / 180,
		Volume:   0.8,
	}

	out := Render(s, 100)

	assert.Contains(t, out, "Nightfall · Midnight Drive")
	assert.Contains(t, out, "1:23 / 3:00")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, icons.Pause())
	assert.Equal(t, Height, lipgloss.Height(out))
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100)
	}
}

func TestRender_NarrowDropsProducer(t *testing.T) {
	icons.Init("none")
	s := State{Title: "A Very Long Beat Title That Goes On", Producer: "Nightfall", Volume: 1}

	out := Render(s, 50)

	assert.NotContains(t, out, "Nightfall")
	assert.Contains(t, out, "…")
}

func TestStatusIcon(t *testing.T) {
	icons.Init("none")
	tests := []struct {
		name string
		s    State
		want string
	}{
		{"playing", State{Status: playback.StatePlaying}, icons.Play()},
		{"paused", State{Status: playback.StatePaused}, icons.Pause()},
		{"stopped", State{Status: playback.StateStopped}, icons.Stop()},
		{"pending wins", State{Status: playback.StatePaused, Pending: true}, icons.Loading()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusIcon(tt.s))
		})
	}
}

func TestFilledCells(t *testing.T) {
	tests := []struct {
		progress float64
		width    int
		want     int
	}{
		{0, 10, 0},
		{0.5, 10, 5},
		{0.99, 10, 9},
		{1, 10, 10},
		{1.5, 10, 10},
		{-0.2, 10, 0},
		{math.NaN(), 10, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, filledCells(tt.progress, tt.width), "filledCells(%v, %d)", tt.progress, tt.width)
	}
}

func TestRenderProgressBar_Width(t *testing.T) {
	assert.Equal(t, 20, lipgloss.Width(RenderProgressBar(0.3, 20)))
	assert.Empty(t, RenderProgressBar(0.3, 0))
}

func TestRenderVolume(t *testing.T) {
	icons.Init("none")
	assert.Contains(t, RenderVolume(0.8), "vol")
	assert.Contains(t, RenderVolume(0.8), " 80%")
	assert.Contains(t, RenderVolume(0), "mute")
	assert.Contains(t, RenderVolume(1), "100%")
}
