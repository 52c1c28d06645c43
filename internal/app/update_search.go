package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/prodify/internal/errmsg"
	"github.com/llehouerou/prodify/internal/keymap"
)

// enterSearch focuses the search input.
func (m *Model) enterSearch() tea.Cmd {
	m.SearchMode = true
	m.Tracks.SetFocused(false)
	return m.Search.Focus()
}

func (m *Model) leaveSearch() {
	m.SearchMode = false
	m.Search.Blur()
	m.Tracks.SetFocused(true)
}

// handleSearchInput feeds keys to the search input while it has focus.
// Every edit bumps the version and schedules a debounced search.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.searchKeys.Resolve(msg.String()) {
	case keymap.ActionLeaveSearch:
		m.leaveSearch()
		return m, nil
	case keymap.ActionSubmitSearch:
		m.leaveSearch()
		if m.searchVersion != m.loadedVersion {
			// Skip the remaining delay.
			m.Loading = true
			return m, SearchCmd(m.catalog, m.searchVersion, m.Search.Value())
		}
		return m, nil
	}

	before := m.Search.Value()
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if m.Search.Value() == before {
		return m, cmd
	}

	m.searchVersion++
	return m, tea.Batch(cmd, SearchTimeoutCmd(m.searchDebounce, m.searchVersion))
}

// handleSearchMsg routes debounce ticks and catalog results.
func (m Model) handleSearchMsg(msg SearchMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SearchTimeoutMsg:
		if msg.Version != m.searchVersion {
			return m, nil
		}
		m.Loading = true
		return m, SearchCmd(m.catalog, msg.Version, m.Search.Value())

	case TracksLoadedMsg:
		// Results of an older query must not replace newer ones.
		if msg.Version < m.loadedVersion || msg.Version > m.searchVersion {
			return m, nil
		}
		if msg.Version == m.searchVersion {
			m.Loading = false
		}
		if msg.Err != nil {
			m.logger.Warn("catalog search failed", zap.String("query", msg.Query), zap.Error(msg.Err))
			m.ErrorMsg = errmsg.Format(errmsg.OpCatalogSearch, msg.Err)
			m.resizeComponents()
			return m, nil
		}
		m.loadedVersion = msg.Version
		m.Tracks.SetTracks(msg.Tracks)
		m.Tracks.SetTitle(listTitle(msg.Query))
		if m.Snapshot.Track != nil {
			m.Tracks.SetPlaying(m.Snapshot.Track.ID)
		}
		return m, nil
	}
	return m, nil
}

func listTitle(query string) string {
	if q := strings.TrimSpace(query); q != "" {
		return "Search: " + q
	}
	return "Beats"
}
