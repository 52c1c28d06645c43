package playback

import (
	"context"
	"errors"
	"time"

	"github.com/llehouerou/prodify/internal/catalog"
)

var (
	// ErrStartFailed wraps the cause when the media element refuses to start.
	ErrStartFailed = errors.New("playback start failed")
	// ErrSuperseded is returned when a start result arrives after a newer
	// pause or start request; the result was discarded.
	ErrSuperseded = errors.New("start superseded")
	// ErrClosed is returned by calls made after Close.
	ErrClosed = errors.New("playback controller closed")
)

// Service defines the playback controller contract used by presentation code.
type Service interface {
	// Transport
	PlayTrack(ctx context.Context, t catalog.Track) error
	TogglePlay(ctx context.Context) error
	Pause()
	Seek(target time.Duration)
	SkipForward()
	SkipBackward()
	SetVolume(v float64)

	// State queries
	Snapshot() Snapshot

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
