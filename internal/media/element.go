// Package media owns the audio output handle the playback controller drives.
package media

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInterrupted is returned by Play when a Pause or Load arrives before output started.
	ErrInterrupted = errors.New("play interrupted")
	// ErrNoSource is returned by Play when no source was loaded.
	ErrNoSource = errors.New("no source loaded")
	// ErrUnsupportedFormat is returned when the audio format cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrTooLarge is returned when a remote source exceeds the download limit.
	ErrTooLarge = errors.New("audio source too large")
	// ErrClosed is returned by calls made after Close.
	ErrClosed = errors.New("media element closed")
)

// Element is an audio output bound to one source at a time.
//
// Load rebinds the source and returns its sequence number. Every Event carries
// the sequence of the source it was produced for, so consumers can drop
// notifications from a previous source.
type Element interface {
	Load(src string) uint64
	// Play blocks until output started, the source failed to load, ctx is done,
	// or a Pause/Load interrupted it (ErrInterrupted).
	Play(ctx context.Context) error
	Pause()
	Seek(pos time.Duration)
	SetVolume(level float64)
	Position() time.Duration
	Duration() time.Duration
	// Events is never closed; stop reading when the element is closed.
	Events() <-chan Event
	Close() error
}

// EventType identifies a media notification.
type EventType int

const (
	TimeUpdate EventType = iota
	LoadedMetadata
	Ended
)

// String returns the notification name.
func (t EventType) String() string {
	switch t {
	case TimeUpdate:
		return "TimeUpdate"
	case LoadedMetadata:
		return "LoadedMetadata"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Event is a notification from the element.
type Event struct {
	Type     EventType
	Source   uint64
	Position time.Duration
	Duration time.Duration
}
