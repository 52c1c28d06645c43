// internal/state/interface.go
package state

import (
	"time"

	"github.com/llehouerou/prodify/internal/catalog"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetVolume() (float64, error)
	SaveVolume(volume float64)
	RecordPreview(t catalog.Track, at time.Time) error
	RecentPreviews(limit int) ([]Preview, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
