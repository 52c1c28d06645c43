package tracklist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/prodify/internal/catalog"
	"github.com/llehouerou/prodify/internal/icons"
)

func tracks(titles ...string) []catalog.Track {
	out := make([]catalog.Track, len(titles))
	for i, title := range titles {
		bpm := 90 + i
		out[i] = catalog.Track{
			ID:       uuid.New(),
			Title:    title,
			Producer: catalog.Producer{DisplayName: "Nightfall"},
			Genre:    "Trap",
			BPM:      &bpm,
			Price:    29.99,
		}
	}
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newFocused(t *testing.T, items []catalog.Track) Model {
	t.Helper()
	m := New()
	m.SetSize(100, 12)
	m.SetFocused(true)
	m.SetTracks(items)
	return m
}

func TestUpdate_EnterPlaysSelected(t *testing.T) {
	items := tracks("Midnight Drive", "Cold Summer", "Lo Fi Rain")
	m := newFocused(t, items)

	m.Update(key("j"))
	m.Update(key("down"))
	res := m.Update(key("enter"))

	assert.Equal(t, ActionPlay, res.Action)
	assert.Equal(t, items[2].ID, res.Track.ID)
	assert.Equal(t, 2, m.SelectedIndex())
}

func TestUpdate_EmptyListEnterDoesNothing(t *testing.T) {
	m := newFocused(t, nil)

	res := m.Update(key("enter"))

	assert.Equal(t, ActionNone, res.Action)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestUpdate_IgnoredWhenUnfocused(t *testing.T) {
	m := newFocused(t, tracks("a", "b"))
	m.SetFocused(false)

	m.Update(key("j"))
	res := m.Update(key("enter"))

	assert.Equal(t, ActionNone, res.Action)
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestSetTracks_ClampsCursor(t *testing.T) {
	m := newFocused(t, tracks("a", "b", "c", "d"))
	m.Update(key("G"))
	require.Equal(t, 3, m.SelectedIndex())

	m.SetTracks(tracks("x", "y"))

	assert.Equal(t, 1, m.SelectedIndex())
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "y", sel.Title)
}

func TestView_RendersRows(t *testing.T) {
	icons.Init("none")
	items := tracks("Midnight Drive", "Cold Summer")
	items[1].Sold = true
	m := newFocused(t, items)
	m.SetTitle("Search: midnight")
	m.SetPlaying(items[0].ID)

	out := m.View()

	assert.Contains(t, out, "Search: midnight")
	assert.Contains(t, out, "(2)")
	assert.Contains(t, out, "Midnight Drive")
	assert.Contains(t, out, "Cold Summer (sold)")
	assert.Contains(t, out, "90 bpm")
	assert.Contains(t, out, "29.99 €")
	assert.Contains(t, out, icons.Play()+" Midnight Drive")
	assert.Equal(t, 12, lipgloss.Height(out))
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 100, lipgloss.Width(line))
	}
}

func TestView_Empty(t *testing.T) {
	m := newFocused(t, nil)
	assert.Contains(t, m.View(), "No beats match.")
}

func TestView_ScrollsWithCursor(t *testing.T) {
	titles := make([]string, 30)
	for i := range titles {
		titles[i] = "Beat " + string(rune('A'+i%26)) + string(rune('a'+i/26))
	}
	m := newFocused(t, tracks(titles...))

	m.Update(key("G"))
	out := m.View()

	assert.Contains(t, out, titles[29])
	assert.NotContains(t, out, titles[0]+" ")
}
