package playback

import (
	"time"

	"github.com/llehouerou/prodify/internal/catalog"
)

// StateChange is emitted when the derived transport state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when the controller rebinds to a different track.
//
// Emitted by PlayTrack only when the track identity changes; re-selecting
// the bound track resumes it without a TrackChange.
//
// The app should handle track-related side effects (notifications,
// preview history) in response to this event.
type TrackChange struct {
	Previous *catalog.Track
	Current  *catalog.Track
}

// PositionChange is emitted on seeks and media time notifications.
type PositionChange struct {
	Position time.Duration
	Duration time.Duration
	Progress float64
}

// VolumeChange is emitted when the volume is set.
type VolumeChange struct {
	Volume float64
}

// ErrorEvent is emitted when an operation fails.
type ErrorEvent struct {
	Operation string // e.g., "play"
	Track     *catalog.Track
	Err       error
}
