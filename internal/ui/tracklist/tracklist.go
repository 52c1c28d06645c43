// Package tracklist renders the scrollable list of catalog tracks.
package tracklist

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/llehouerou/prodify/internal/catalog"
	"github.com/llehouerou/prodify/internal/icons"
	"github.com/llehouerou/prodify/internal/ui"
	"github.com/llehouerou/prodify/internal/ui/render"
	"github.com/llehouerou/prodify/internal/ui/styles"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone Action = iota
	ActionPlay        // enter on a row
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Track  catalog.Track
}

const (
	producerWidth = 18
	genreWidth    = 12
	bpmWidth      = 7
	priceWidth    = 10
	markerWidth   = 2
)

// Model is the track list panel. The parent owns the tracks and tells the
// list which one is bound to the player.
type Model struct {
	ui.Base
	tracks  []catalog.Track
	cur     cursor
	playing uuid.UUID
	title   string
}

// New creates an empty list.
func New() Model {
	return Model{
		cur:   cursor{margin: ui.ScrollMargin},
		title: "Beats",
	}
}

// SetTracks replaces the listed tracks, keeping the cursor in bounds.
func (m *Model) SetTracks(tracks []catalog.Track) {
	m.tracks = tracks
	m.cur.clampToBounds(len(tracks), m.listHeight())
}

// SetTitle sets the panel header, e.g. the active search term.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetPlaying marks the track bound to the player.
func (m *Model) SetPlaying(id uuid.UUID) {
	m.playing = id
}

// Tracks returns the listed tracks.
func (m Model) Tracks() []catalog.Track {
	return m.tracks
}

// Len returns the number of listed tracks.
func (m Model) Len() int {
	return len(m.tracks)
}

// Selected returns the track under the cursor and true, or false when the list is empty.
func (m Model) Selected() (catalog.Track, bool) {
	if m.cur.pos >= len(m.tracks) {
		return catalog.Track{}, false
	}
	return m.tracks[m.cur.pos], true
}

// SelectedIndex returns the cursor position.
func (m Model) SelectedIndex() int {
	return m.cur.pos
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

// Update handles navigation keys while focused. Enter on a row returns ActionPlay.
func (m *Model) Update(msg tea.Msg) Result {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return Result{}
	}
	if m.cur.handleKey(key.String(), len(m.tracks), m.listHeight()) {
		return Result{}
	}
	if key.String() == "enter" {
		if t, ok := m.Selected(); ok {
			return Result{Action: ActionPlay, Track: t}
		}
	}
	return Result{}
}

// View renders the panel at the size set with SetSize.
func (m Model) View() string {
	innerWidth := max(m.Width()-2, 0) // left and right border
	height := m.listHeight()

	header := styles.T().S().Title.Render(render.TruncateEllipsis(m.title, innerWidth-8)) +
		styles.T().S().Muted.Render(" ("+strconv.Itoa(len(m.tracks))+")")

	lines := make([]string, 0, height+ui.HeaderHeight)
	lines = append(lines, header, styles.T().S().Subtle.Render(render.Separator(innerWidth)))

	if len(m.tracks) == 0 {
		lines = append(lines, styles.T().S().Muted.Render("No beats match."))
	}
	start, end := m.cur.visibleRange(len(m.tracks), height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.tracks[i], i == m.cur.pos, innerWidth))
	}
	for len(lines) < height+ui.HeaderHeight {
		lines = append(lines, "")
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Height(height + ui.HeaderHeight).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(t catalog.Track, selected bool, width int) string {
	s := styles.T().S()

	marker := "  "
	titleStyle := s.Base
	if t.ID == m.playing && m.playing != uuid.Nil {
		marker = render.Pad(icons.Play(), markerWidth)
		titleStyle = s.Playing
	}

	titleWidth := max(width-markerWidth-producerWidth-genreWidth-bpmWidth-priceWidth, 8)
	title := t.Title
	if t.Sold {
		title += " " + icons.Sold()
	}

	bpm := ""
	if t.BPMValue() > 0 {
		bpm = strconv.Itoa(t.BPMValue()) + " bpm"
	}

	row := marker +
		titleStyle.Render(render.TruncateAndPad(icons.FormatTrack(title), titleWidth)) +
		s.Producer.Render(render.TruncateAndPad(t.Producer.DisplayName, producerWidth)) +
		s.Muted.Render(render.TruncateAndPad(t.Genre, genreWidth)) +
		s.Muted.Render(render.Pad(bpm, bpmWidth)) +
		s.Price.Render(lipgloss.PlaceHorizontal(priceWidth, lipgloss.Right, t.FormatPrice()))

	if selected && m.IsFocused() {
		return s.Cursor.Width(width).Render(row)
	}
	return row
}
