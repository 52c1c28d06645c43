// internal/state/mock.go
package state

import (
	"sync"
	"time"

	"github.com/llehouerou/prodify/internal/catalog"
)

// Mock is a test double for Manager.
type Mock struct {
	mu       sync.Mutex
	volume   float64
	saves    []float64
	previews []Preview
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{volume: defaultVolume}
}

func (m *Mock) GetVolume() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume, nil
}

func (m *Mock) SaveVolume(volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = volume
	m.saves = append(m.saves, volume)
}

func (m *Mock) RecordPreview(t catalog.Track, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := Preview{
		TrackID:  t.ID,
		Title:    t.Title,
		Producer: t.Producer.DisplayName,
		AudioURL: t.AudioURL,
		PlayedAt: at,
	}
	m.previews = append([]Preview{p}, m.previews...)
	return nil
}

func (m *Mock) RecentPreviews(limit int) ([]Preview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Preview(nil), m.previews[:min(limit, len(m.previews))]...), nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = v
}

func (m *Mock) VolumeSaves() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.saves...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
