package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/prodify/internal/icons"
	"github.com/llehouerou/prodify/internal/keymap"
	"github.com/llehouerou/prodify/internal/ui/playerbar"
	"github.com/llehouerou/prodify/internal/ui/render"
	"github.com/llehouerou/prodify/internal/ui/styles"
)

const (
	appName = "prodify"

	// searchChrome is the room the brand and loading marker take on the search line.
	searchChrome = len(appName) + 2 + loadingWidth
	loadingWidth = 4

	helpHeight = 1
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	parts := []string{m.renderSearch(), m.Tracks.View()}
	if m.ErrorMsg != "" {
		parts = append(parts, styles.T().S().Error.Render(render.TruncateEllipsis(m.ErrorMsg, m.Width)))
	}
	if s := playerbar.NewState(m.Snapshot); s.Visible() {
		parts = append(parts, playerbar.Render(s, m.Width))
	}
	parts = append(parts, m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderSearch draws the brand, the search input and the loading marker in one bordered line.
func (m Model) renderSearch() string {
	innerWidth := max(m.Width-2, 0)

	loading := strings.Repeat(" ", loadingWidth)
	if m.Loading {
		loading = render.Pad(" "+icons.Loading(), loadingWidth)
	}

	line := styles.Brand(appName) + "  " + m.Search.View()
	gap := innerWidth - lipgloss.Width(line) - lipgloss.Width(loading)
	if gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	line += styles.T().S().Muted.Render(loading)

	return styles.PanelStyle(m.SearchMode).
		Width(innerWidth).
		MaxHeight(3).
		Render(line)
}

func (m Model) renderHelp() string {
	var hint string
	if m.SearchMode {
		hint = keymap.Hint(keymap.Bindings, keymap.ActionSubmitSearch, keymap.ActionLeaveSearch)
	} else {
		hint = keymap.Hint(keymap.Bindings,
			keymap.ActionSearch, keymap.ActionSelect, keymap.ActionPlayPause,
			keymap.ActionSeekBack, keymap.ActionSeekForward,
			keymap.ActionVolumeUp, keymap.ActionVolumeDown, keymap.ActionQuit)
	}
	return styles.T().S().Subtle.Render(render.TruncateEllipsis(hint, m.Width))
}
