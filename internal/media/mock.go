package media

import (
	"context"
	"sync"
	"time"
)

// Mock is a test double for Element.
//
// Unlike Player, a held Play is not interrupted by Pause or Load: it completes
// with the configured result once released, like an output whose start was
// already under way.
type Mock struct {
	mu        sync.Mutex
	seq       uint64
	src       string
	loads     []string
	seeks     []time.Duration
	pauses    int
	playCalls int
	playing   bool
	volume    float64
	position  time.Duration
	duration  time.Duration
	playErr   error
	hold      chan struct{}
	closed    bool
	events    chan Event
}

// NewMock creates a new mock element for testing.
func NewMock() *Mock {
	return &Mock{
		volume: 1,
		events: make(chan Event, 64),
	}
}

func (m *Mock) Load(src string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.src = src
	m.loads = append(m.loads, src)
	m.playing = false
	m.position = 0
	m.duration = 0
	return m.seq
}

func (m *Mock) Play(ctx context.Context) error {
	m.mu.Lock()
	m.playCalls++
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	hold := m.hold
	m.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playErr != nil {
		return m.playErr
	}
	m.playing = true
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauses++
	m.playing = false
}

func (m *Mock) Seek(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeks = append(m.seeks, pos)
	m.position = pos
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = level
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

// SetPlayError makes subsequent Play calls fail with err (nil restores success).
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// HoldPlay makes subsequent Play calls block until ReleasePlay.
func (m *Mock) HoldPlay() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hold == nil {
		m.hold = make(chan struct{})
	}
}

// ReleasePlay unblocks held Play calls.
func (m *Mock) ReleasePlay() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hold != nil {
		close(m.hold)
		m.hold = nil
	}
}

// Emit delivers e on the Events channel.
func (m *Mock) Emit(e Event) { m.events <- e }

// LoadedMetadata returns a metadata notification for the current source.
func (m *Mock) LoadedMetadata(d time.Duration) Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
	m.position = 0
	return Event{Type: LoadedMetadata, Source: m.seq, Duration: d}
}

// TimeUpdate returns a position notification for the current source.
func (m *Mock) TimeUpdate(pos time.Duration) Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = pos
	return Event{Type: TimeUpdate, Source: m.seq, Position: pos, Duration: m.duration}
}

// Ended returns an end-of-playback notification for the current source.
func (m *Mock) Ended() Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	return Event{Type: Ended, Source: m.seq, Position: m.duration, Duration: m.duration}
}

func (m *Mock) Source() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seq
}

func (m *Mock) Loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loads...)
}

func (m *Mock) Seeks() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seeks...)
}

func (m *Mock) Pauses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Element at compile time.
var _ Element = (*Mock)(nil)
