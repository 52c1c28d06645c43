// internal/playback/controller.go
package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/prodify/internal/catalog"
	"github.com/llehouerou/prodify/internal/media"
)

const defaultSkipIncrement = 5 * time.Second

// Verify Controller implements Service at compile time.
var _ Service = (*Controller)(nil)

// Controller owns the playback session and the media element that renders it.
//
// Every start request captures a generation number. Pause, PlayTrack and
// resume bump it, so a start result that arrives after a newer request is
// discarded instead of overwriting the session.
type Controller struct {
	mu sync.Mutex

	el     media.Element
	logger *zap.Logger
	skip   time.Duration

	track    *catalog.Track
	source   uint64
	playing  bool
	position time.Duration
	duration time.Duration
	volume   float64
	ended    bool

	gen      uint64
	pending  bool
	wantPlay bool

	subs   []*Subscription
	subsMu sync.Mutex

	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithVolume sets the initial volume, clamped to [0, 1].
func WithVolume(v float64) Option {
	return func(c *Controller) { c.volume = clampVolume(v) }
}

// WithSkipIncrement sets the step used by SkipForward and SkipBackward.
func WithSkipIncrement(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.skip = d
		}
	}
}

// New creates a controller that takes sole ownership of el.
func New(el media.Element, opts ...Option) *Controller {
	c := &Controller{
		el:     el,
		logger: zap.NewNop(),
		skip:   defaultSkipIncrement,
		volume: 1,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.el.SetVolume(c.volume)

	c.wg.Add(1)
	go c.watchElement()
	return c
}

// PlayTrack binds t, unless it is already bound, and requests a start.
// Re-selecting the bound track resumes it without resetting its position.
func (c *Controller) PlayTrack(ctx context.Context, t catalog.Track) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.track == nil || c.track.ID != t.ID {
		c.rebindLocked(t)
	}
	gen := c.beginStartLocked()
	c.mu.Unlock()

	return c.start(ctx, gen)
}

// TogglePlay pauses when playing and requests a start otherwise.
// Without a bound track it does nothing.
func (c *Controller) TogglePlay(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.track == nil {
		c.mu.Unlock()
		return nil
	}
	if c.playing {
		c.pauseLocked()
		c.mu.Unlock()
		return nil
	}
	gen := c.beginStartLocked()
	c.mu.Unlock()

	return c.start(ctx, gen)
}

// Pause pauses the element. Idempotent.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.pauseLocked()
}

// Seek moves to target, clamped to [0, Duration].
// Ignored while the duration is unknown.
func (c *Controller) Seek(target time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seekLocked(target)
}

// SkipForward seeks one skip increment ahead, stopping at the end.
func (c *Controller) SkipForward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seekLocked(min(c.position+c.skip, c.duration))
}

// SkipBackward seeks one skip increment back, stopping at the start.
func (c *Controller) SkipBackward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seekLocked(c.position - c.skip)
}

// SetVolume clamps v to [0, 1] and applies it. No track is needed.
func (c *Controller) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.volume = clampVolume(v)
	c.el.SetVolume(c.volume)
	c.broadcast(func(s *Subscription) { s.sendVolume(VolumeChange{Volume: c.volume}) })
}

// Snapshot returns a copy of the session.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// HandleEvent applies a media notification. Notifications produced for a
// previously bound source are dropped.
func (c *Controller) HandleEvent(e media.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.track == nil {
		return
	}
	if e.Source != c.source {
		c.logger.Debug("dropping stale media event",
			zap.Stringer("type", e.Type),
			zap.Uint64("source", e.Source),
			zap.Uint64("current", c.source))
		return
	}

	switch e.Type {
	case media.TimeUpdate:
		c.position = max(e.Position, 0)
		c.duration = max(e.Duration, 0)
	case media.LoadedMetadata:
		c.duration = max(e.Duration, 0)
		c.position = 0
	case media.Ended:
		prev := c.stateLocked()
		c.playing = false
		c.ended = true
		c.position = 0
		c.publishStateLocked(prev)
	}
	c.publishPositionLocked()
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.isClosed() {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Close stops event delivery and closes the element. Idempotent.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.gen++
	close(c.done)
	c.mu.Unlock()

	c.wg.Wait()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	return c.el.Close()
}

func (c *Controller) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Controller) watchElement() {
	defer c.wg.Done()
	events := c.el.Events()
	for {
		select {
		case <-c.done:
			return
		case e := <-events:
			c.HandleEvent(e)
		}
	}
}

func (c *Controller) rebindLocked(t catalog.Track) {
	prevState := c.stateLocked()
	prev := c.track
	cur := t

	c.track = &cur
	c.source = c.el.Load(t.AudioURL)
	c.playing = false
	c.ended = false
	c.position = 0
	c.duration = 0

	c.logger.Debug("source rebound",
		zap.String("track", t.ID.String()),
		zap.Uint64("source", c.source))

	c.broadcast(func(s *Subscription) {
		s.sendTrack(TrackChange{Previous: copyTrack(prev), Current: copyTrack(c.track)})
	})
	c.publishStateLocked(prevState)
	c.publishPositionLocked()
}

func (c *Controller) beginStartLocked() uint64 {
	c.gen++
	c.pending = true
	c.wantPlay = true
	return c.gen
}

// start asks the element to play and applies the result if it is still current.
func (c *Controller) start(ctx context.Context, gen uint64) error {
	err := c.el.Play(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if gen != c.gen {
		c.logger.Debug("discarding superseded start result",
			zap.Uint64("generation", gen),
			zap.Uint64("current", c.gen),
			zap.Error(err))
		if err == nil && !c.wantPlay {
			c.el.Pause()
		}
		return ErrSuperseded
	}

	c.pending = false
	if err != nil {
		c.logger.Warn("playback start failed",
			zap.String("track", c.track.ID.String()),
			zap.String("src", c.track.AudioURL),
			zap.Error(err))
		ev := ErrorEvent{Operation: "play", Track: copyTrack(c.track), Err: err}
		c.broadcast(func(s *Subscription) { s.sendError(ev) })
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	prev := c.stateLocked()
	c.playing = true
	c.ended = false
	c.publishStateLocked(prev)
	return nil
}

func (c *Controller) pauseLocked() {
	c.gen++
	c.pending = false
	c.wantPlay = false
	c.el.Pause()

	prev := c.stateLocked()
	c.playing = false
	c.publishStateLocked(prev)
}

func (c *Controller) seekLocked(target time.Duration) {
	if c.closed || c.duration <= 0 {
		return
	}
	target = min(max(target, 0), c.duration)
	c.el.Seek(target)
	c.position = target
	c.publishPositionLocked()
}

func (c *Controller) stateLocked() State {
	return c.snapshotLocked().State()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Track:    copyTrack(c.track),
		Playing:  c.playing,
		Pending:  c.pending,
		Position: c.position,
		Duration: c.duration,
		Progress: progress(c.position, c.duration),
		Volume:   c.volume,
		Ended:    c.ended,
	}
}

func (c *Controller) publishStateLocked(prev State) {
	cur := c.stateLocked()
	if cur == prev {
		return
	}
	c.broadcast(func(s *Subscription) { s.sendState(StateChange{Previous: prev, Current: cur}) })
}

func (c *Controller) publishPositionLocked() {
	e := PositionChange{
		Position: c.position,
		Duration: c.duration,
		Progress: progress(c.position, c.duration),
	}
	c.broadcast(func(s *Subscription) { s.sendPosition(e) })
}

func (c *Controller) broadcast(send func(*Subscription)) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		send(sub)
	}
}

func copyTrack(t *catalog.Track) *catalog.Track {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
