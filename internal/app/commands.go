package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/prodify/internal/catalog"
	"github.com/llehouerou/prodify/internal/playback"
)

// searchTimeout bounds a single catalog request issued by the UI.
const searchTimeout = 15 * time.Second

// SearchTimeoutCmd returns a command that sends SearchTimeoutMsg after delay.
func SearchTimeoutCmd(delay time.Duration, version int) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return SearchTimeoutMsg{Version: version}
	})
}

// SearchCmd queries the catalog with the parsed search text.
func SearchCmd(src catalog.Source, version int, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		tracks, err := src.Search(ctx, catalog.ParseQuery(query))
		return TracksLoadedMsg{Version: version, Query: query, Tracks: tracks, Err: err}
	}
}

// PlayTrackCmd binds and starts t. It blocks until the media element answers,
// so it runs as a command rather than inside Update.
func PlayTrackCmd(svc playback.Service, t catalog.Track) tea.Cmd {
	return func() tea.Msg {
		return PlayResultMsg{Track: t, Err: svc.PlayTrack(context.Background(), t)}
	}
}

// TogglePlayCmd pauses or resumes the bound track.
func TogglePlayCmd(svc playback.Service, t catalog.Track) tea.Cmd {
	return func() tea.Msg {
		return PlayResultMsg{Track: t, Err: svc.TogglePlay(context.Background())}
	}
}

// WatchServiceEvents returns a command that waits for the next controller event.
// It listens on all subscription channels and converts events to tea.Msg.
func WatchServiceEvents(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg(e)
		case e := <-sub.PositionChanged:
			return ServicePositionMsg(e)
		case e := <-sub.VolumeChanged:
			return ServiceVolumeMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}
