//go:build linux

package mpris

import (
	"context"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"go.uber.org/zap"

	"github.com/llehouerou/prodify/internal/playback"
)

// Adapter exposes a playback.Service as an MPRIS media player over D-Bus,
// so media keys and desktop widgets drive the controller.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(service playback.Service, logger *zap.Logger) (*Adapter, error) {
	pa := &playerAdapter{service: service, logger: logger}
	srv := server.NewServer("prodify", &rootAdapter{}, pa)

	go func() {
		if err := srv.Listen(); err != nil {
			logger.Debug("mpris server stopped", zap.Error(err))
		}
	}()

	return &Adapter{server: srv}, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "prodify", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https", "file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
// There is no queue: Next and Previous are unsupported.
type playerAdapter struct {
	service playback.Service
	logger  *zap.Logger
}

func (p *playerAdapter) Next() error {
	return nil
}

func (p *playerAdapter) Previous() error {
	return nil
}

func (p *playerAdapter) Pause() error {
	p.service.Pause()
	return nil
}

// PlayPause returns once the request is issued; start failures reach
// presentation code through the controller's error events.
func (p *playerAdapter) PlayPause() error {
	go p.toggle()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.service.Pause()
	return nil
}

func (p *playerAdapter) Play() error {
	snap := p.service.Snapshot()
	if snap.Track == nil || snap.Playing || snap.Pending {
		return nil
	}
	go p.toggle()
	return nil
}

func (p *playerAdapter) toggle() {
	if err := p.service.TogglePlay(context.Background()); err != nil {
		p.logger.Debug("mpris toggle", zap.Error(err))
	}
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	pos := p.service.Snapshot().Position
	p.service.Seek(pos + time.Duration(offset)*time.Microsecond)
	return nil
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	snap := p.service.Snapshot()
	if snap.Track == nil || trackID != trackObjectPath(snap) {
		return nil
	}
	p.service.Seek(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.service.Snapshot().State()), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.service.Snapshot()), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.service.Snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.service.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.service.Snapshot().Track != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.service.Snapshot().Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch s {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	default:
		return types.PlaybackStatusStopped
	}
}

func metadata(snap playback.Snapshot) types.Metadata {
	t := snap.Track
	if t == nil {
		return types.Metadata{}
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(trackObjectPath(snap)),
		Length:  types.Microseconds(snap.Duration.Microseconds()),
		Title:   t.Title,
		ArtUrl:  t.CoverURL,
	}
	if t.Producer.DisplayName != "" {
		meta.Artist = []string{t.Producer.DisplayName}
	}
	return meta
}

// trackObjectPath derives a D-Bus object path from the track id.
// Object path elements only allow [A-Za-z0-9_].
func trackObjectPath(snap playback.Snapshot) string {
	return "/org/mpris/MediaPlayer2/Track/t" + strings.ReplaceAll(snap.Track.ID.String(), "-", "")
}
