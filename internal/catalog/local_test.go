package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_Search(t *testing.T) {
	a := Track{ID: uuid.New(), Title: "Midnight", Genre: "trap"}
	b := Track{ID: uuid.New(), Title: "Sunrise", Genre: "lofi"}
	l := NewLocal(a, b)

	got, err := l.Search(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, []Track{a, b}, got)

	got, err = l.Search(context.Background(), Filter{Genre: "LOFI"})
	require.NoError(t, err)
	assert.Equal(t, []Track{b}, got)
}

func TestLocal_Track(t *testing.T) {
	a := Track{ID: uuid.New(), Title: "Midnight"}
	l := NewLocal(a)

	got, err := l.Track(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Midnight", got.Title)

	_, err = l.Track(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocal_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocal().Search(ctx, Filter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `[
		{"id":"6f1f6c4e-8c55-4b8e-9d2a-0f9b1a4c2d11","title":"Solo","price":19.5,
		 "audioUrl":"file:///tmp/solo.mp3","bpm":92,"producer":{"displayName":"Kay"}}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	l, err := LoadLocal(path)
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())

	got, err := l.Search(context.Background(), Filter{MinBPM: intPtr(90)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kay - Solo", got[0].DisplayTitle())
}

func TestLoadLocal_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := LoadLocal(path)
	assert.Error(t, err)
}
