package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Verify Local implements Source at compile time.
var _ Source = (*Local)(nil)

// Local is an in-memory catalog, used for offline browsing and tests.
type Local struct {
	tracks []Track
}

// NewLocal creates a source over the given tracks.
func NewLocal(tracks ...Track) *Local {
	return &Local{tracks: append([]Track(nil), tracks...)}
}

// LoadLocal reads a JSON array of tracks, in the same shape the API returns.
func LoadLocal(path string) (*Local, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tracks []Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return NewLocal(tracks...), nil
}

// Search returns copies of the tracks matching f, in catalog order.
func (l *Local) Search(ctx context.Context, f Filter) ([]Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make([]Track, 0, len(l.tracks))
	for _, t := range l.tracks {
		if f.Match(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

// Track returns the track with the given id.
func (l *Local) Track(ctx context.Context, id uuid.UUID) (*Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, t := range l.tracks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

// Len returns the number of tracks.
func (l *Local) Len() int {
	return len(l.tracks)
}
