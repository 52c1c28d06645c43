// Package app contains the storefront browser TUI: search, track list and player bar.
package app

import (
	"github.com/llehouerou/prodify/internal/catalog"
	"github.com/llehouerou/prodify/internal/playback"
)

// Message category interfaces for type-based routing in Update().

// PlaybackMessage is implemented by messages coming from the playback controller.
type PlaybackMessage interface {
	playbackMessage()
}

// SearchMessage is implemented by messages related to catalog search.
type SearchMessage interface {
	searchMessage()
}

// SearchTimeoutMsg fires once the search input has been idle for the debounce delay.
// Version ties it to the keystroke that scheduled it; older versions are ignored.
type SearchTimeoutMsg struct {
	Version int
}

func (SearchTimeoutMsg) searchMessage() {}

// TracksLoadedMsg carries catalog results for the search issued at Version.
type TracksLoadedMsg struct {
	Version int
	Query   string
	Tracks  []catalog.Track
	Err     error
}

func (TracksLoadedMsg) searchMessage() {}

// PlayResultMsg reports the outcome of a start request.
type PlayResultMsg struct {
	Track catalog.Track
	Err   error
}

func (PlayResultMsg) playbackMessage() {}

// ServiceStateChangedMsg wraps a controller state transition.
type ServiceStateChangedMsg playback.StateChange

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg wraps a controller rebind.
type ServiceTrackChangedMsg playback.TrackChange

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServicePositionMsg wraps a position/duration update.
type ServicePositionMsg playback.PositionChange

func (ServicePositionMsg) playbackMessage() {}

// ServiceVolumeMsg wraps a volume change.
type ServiceVolumeMsg playback.VolumeChange

func (ServiceVolumeMsg) playbackMessage() {}

// ServiceErrorMsg wraps an asynchronous controller error.
type ServiceErrorMsg playback.ErrorEvent

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the controller subscription ends.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}
