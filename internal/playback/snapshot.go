package playback

import (
	"math"
	"time"

	"github.com/llehouerou/prodify/internal/catalog"
)

// Snapshot is a read-only copy of the playback session.
type Snapshot struct {
	Track    *catalog.Track // nil when no track was ever played
	Playing  bool
	Pending  bool // a start request is awaiting the element
	Position time.Duration
	Duration time.Duration // 0 while unknown
	Progress float64       // Position/Duration in [0, 1]
	Volume   float64
	Ended    bool
}

// State derives the transport state.
func (s Snapshot) State() State {
	switch {
	case s.Track == nil:
		return StateStopped
	case s.Playing:
		return StatePlaying
	case s.Ended:
		return StateStopped
	default:
		return StatePaused
	}
}

// Remaining returns the time left, or 0 when the duration is unknown.
func (s Snapshot) Remaining() time.Duration {
	if s.Duration <= 0 {
		return 0
	}
	return max(s.Duration-s.Position, 0)
}

// progress returns pos/dur clamped to [0, 1], or 0 when dur is unknown.
func progress(pos, dur time.Duration) float64 {
	if dur <= 0 {
		return 0
	}
	p := float64(pos) / float64(dur)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

func clampVolume(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
