package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/llehouerou/prodify/internal/errmsg"
	"github.com/llehouerou/prodify/internal/keymap"
	"github.com/llehouerou/prodify/internal/playback"
	"github.com/llehouerou/prodify/internal/ui"
	"github.com/llehouerou/prodify/internal/ui/playerbar"
	"github.com/llehouerou/prodify/internal/ui/tracklist"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resizeComponents()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case SearchMessage:
		return m.handleSearchMsg(msg)
	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)
	}
	return m, nil
}

// handleKey routes key presses: the search input swallows keys while focused.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, m.quit()
	}
	if m.SearchMode {
		return m.handleSearchInput(msg)
	}

	switch action := m.keys.Resolve(key); action {
	case keymap.ActionQuit:
		return m, m.quit()
	case keymap.ActionSearch:
		return m, m.enterSearch()
	case keymap.ActionPlayPause, keymap.ActionSeekForward, keymap.ActionSeekBack:
		return m, m.handlePlaybackAction(action)
	case keymap.ActionVolumeUp:
		m.changeVolume(volumeStep)
		return m, nil
	case keymap.ActionVolumeDown:
		m.changeVolume(-volumeStep)
		return m, nil
	}

	res := m.Tracks.Update(msg)
	if res.Action == tracklist.ActionPlay {
		m.clearError()
		return m, PlayTrackCmd(m.playback, res.Track)
	}
	return m, nil
}

func (m *Model) quit() tea.Cmd {
	m.playback.Pause()
	return tea.Quit
}

func (m *Model) handlePlaybackAction(action keymap.Action) tea.Cmd {
	switch action {
	case keymap.ActionPlayPause:
		if m.Snapshot.Track == nil {
			return nil
		}
		m.clearError()
		return TogglePlayCmd(m.playback, *m.Snapshot.Track)
	case keymap.ActionSeekForward:
		m.playback.SkipForward()
	case keymap.ActionSeekBack:
		m.playback.SkipBackward()
	}
	return nil
}

// changeVolume applies delta and persists the new level.
func (m *Model) changeVolume(delta float64) {
	m.playback.SetVolume(m.Snapshot.Volume + delta)
	m.Snapshot = m.playback.Snapshot()
	m.stateMgr.SaveVolume(m.Snapshot.Volume)
}

// handlePlaybackMsg applies controller events and keeps listening.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PlayResultMsg:
		m.Snapshot = m.playback.Snapshot()
		// Start failures arrive as ServiceErrorMsg; superseded starts are expected.
		if msg.Err != nil && !errors.Is(msg.Err, playback.ErrSuperseded) && !errors.Is(msg.Err, playback.ErrStartFailed) {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpPlaybackStart, msg.Track.Title, msg.Err)
		}
		return m, nil
	case ServiceClosedMsg:
		return m, nil
	case ServiceTrackChangedMsg:
		m.Snapshot = m.playback.Snapshot()
		m.onTrackChanged(msg)
	case ServiceErrorMsg:
		m.Snapshot = m.playback.Snapshot()
		title := ""
		if msg.Track != nil {
			title = msg.Track.Title
		}
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpPlaybackStart, title, msg.Err)
	case ServiceStateChangedMsg, ServicePositionMsg, ServiceVolumeMsg:
		m.Snapshot = m.playback.Snapshot()
	}
	m.resizeComponents()
	return m, WatchServiceEvents(m.sub)
}

// onTrackChanged marks the bound row, records the preview and notifies the desktop.
func (m *Model) onTrackChanged(msg ServiceTrackChangedMsg) {
	if msg.Current == nil {
		return
	}
	t := *msg.Current
	m.Tracks.SetPlaying(t.ID)

	if err := m.stateMgr.RecordPreview(t, m.now()); err != nil {
		m.logger.Warn("record preview", zap.String("track", t.ID.String()), zap.Error(err))
		m.ErrorMsg = errmsg.Format(errmsg.OpHistoryRecord, err)
	}
	if m.notifier != nil {
		if err := m.notifier.Show(t); err != nil {
			m.logger.Debug("preview notification", zap.Error(err))
		}
	}
}

func (m *Model) clearError() {
	if m.ErrorMsg == "" {
		return
	}
	m.ErrorMsg = ""
	m.resizeComponents()
}

// resizeComponents gives the track list what the search box, player bar
// and error line leave.
func (m *Model) resizeComponents() {
	height := m.Height - ui.SearchHeight
	if playerbar.NewState(m.Snapshot).Visible() {
		height -= playerbar.Height
	}
	if m.ErrorMsg != "" {
		height--
	}
	height -= helpHeight
	m.Tracks.SetSize(m.Width, max(height, ui.PanelOverhead+1))
	m.Search.Width = max(m.Width-ui.BorderHeight-searchChrome-lipgloss.Width(m.Search.Prompt)-1, 1)
}
