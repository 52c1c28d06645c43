package media

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"
)

const (
	defaultMaxBytes = 64 << 20
	defaultInterval = 250 * time.Millisecond
	defaultTimeout  = 30 * time.Second
)

var (
	speakerMu          sync.Mutex
	speakerRate        beep.SampleRate
	speakerInitialized bool
)

// initSpeaker initializes the output device once, at the rate of the first stream.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerInitialized {
		return speakerRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerRate = rate
	speakerInitialized = true
	return rate, nil
}

// stream is the decoded audio of one source.
type stream struct {
	seq      uint64
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	playing  bool
	drained  bool // consumed by the speaker; Play must enqueue again
}

func (s *stream) position() time.Duration {
	return s.format.SampleRate.D(s.streamer.Position())
}

func (s *stream) duration() time.Duration {
	return s.format.SampleRate.D(s.streamer.Len())
}

// pendingPlay is a Play call still fetching or decoding its source.
type pendingPlay struct {
	cancel context.CancelCauseFunc
}

// Player is the speaker-backed Element.
//
// Sources are fetched and decoded by Play; Load only rebinds.
type Player struct {
	client   *http.Client
	maxBytes int64
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	src     string
	seq     uint64
	cur     *stream
	pending *pendingPlay
	level   float64
	closed  bool

	events chan Event
	done   chan struct{}
}

// Verify Player implements Element at compile time.
var _ Element = (*Player)(nil)

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithHTTPClient sets the client used for remote sources.
func WithHTTPClient(c *http.Client) PlayerOption {
	return func(p *Player) { p.client = c }
}

// WithMaxBytes bounds the size of a downloaded source.
func WithMaxBytes(n int64) PlayerOption {
	return func(p *Player) { p.maxBytes = n }
}

// WithPositionInterval sets how often TimeUpdate is emitted while playing.
func WithPositionInterval(d time.Duration) PlayerOption {
	return func(p *Player) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithPlayerLogger sets the logger.
func WithPlayerLogger(l *zap.Logger) PlayerOption {
	return func(p *Player) { p.logger = l }
}

// NewPlayer creates a player. The speaker is initialized by the first successful Play.
func NewPlayer(opts ...PlayerOption) *Player {
	p := &Player{
		client:   &http.Client{Timeout: defaultTimeout},
		maxBytes: defaultMaxBytes,
		interval: defaultInterval,
		logger:   zap.NewNop(),
		level:    1,
		events:   make(chan Event, 64),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	go p.tickLoop()
	return p
}

// Load rebinds the player to src, stopping the current source.
func (p *Player) Load(src string) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	p.src = src
	p.interruptLocked()
	p.stopLocked()
	p.logger.Debug("source loaded", zap.Uint64("seq", p.seq), zap.String("src", src))
	return p.seq
}

// Play starts or resumes output of the loaded source.
// The first Play of a source fetches and decodes it; playing after the end restarts from 0.
func (p *Player) Play(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.src == "" {
		p.mu.Unlock()
		return ErrNoSource
	}
	if p.cur != nil {
		p.resumeLocked(p.cur)
		p.mu.Unlock()
		return nil
	}

	// A newer Play supersedes one still loading.
	p.interruptLocked()
	playCtx, cancel := context.WithCancelCause(ctx)
	pp := &pendingPlay{cancel: cancel}
	p.pending = pp
	seq, src := p.seq, p.src
	p.mu.Unlock()
	defer cancel(nil)

	rsc, format, err := p.openSource(playCtx, src)
	var (
		streamer beep.StreamSeekCloser
		sf       beep.Format
	)
	if err == nil {
		streamer, sf, err = decode(format, rsc)
	}

	p.mu.Lock()
	if p.pending == pp {
		p.pending = nil
	}
	if cause := context.Cause(playCtx); errors.Is(cause, ErrInterrupted) || p.seq != seq {
		p.mu.Unlock()
		if streamer != nil {
			streamer.Close()
		}
		return ErrInterrupted
	}
	if err != nil {
		p.mu.Unlock()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}

	rate, err := initSpeaker(sf.SampleRate)
	if err != nil {
		p.mu.Unlock()
		streamer.Close()
		return err
	}

	s := &stream{seq: seq, streamer: streamer, format: sf}
	var out beep.Streamer = streamer
	if sf.SampleRate != rate {
		out = beep.Resample(4, sf.SampleRate, rate, streamer)
	}
	s.ctrl = &beep.Ctrl{Streamer: out}
	s.volume = &effects.Volume{
		Streamer: s.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.level),
		Silent:   p.level <= 0,
	}
	p.cur = s
	s.playing = true
	p.enqueueLocked(s)
	meta := Event{Type: LoadedMetadata, Source: seq, Duration: s.duration()}
	p.mu.Unlock()

	p.logger.Debug("source decoded",
		zap.Uint64("seq", seq),
		zap.Stringer("format", format),
		zap.Duration("duration", meta.Duration))
	p.emit(meta)
	return nil
}

// Pause pauses output and interrupts a Play still loading.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.interruptLocked()
	s := p.cur
	if s == nil || !s.playing {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
	s.playing = false
}

// Seek moves the playback position, clamped to the source bounds.
// Ignored until the source is decoded.
func (p *Player) Seek(pos time.Duration) {
	p.mu.Lock()
	s := p.cur
	if s == nil {
		p.mu.Unlock()
		return
	}
	speaker.Lock()
	n := min(max(s.format.SampleRate.N(pos), 0), s.streamer.Len())
	if err := s.streamer.Seek(n); err != nil {
		p.logger.Warn("seek failed", zap.Error(err))
	}
	e := Event{Type: TimeUpdate, Source: s.seq, Position: s.position(), Duration: s.duration()}
	speaker.Unlock()
	p.mu.Unlock()

	p.notify(e)
}

// SetVolume sets the volume level, clamped to [0, 1].
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.level = clampLevel(level)
	if p.cur == nil {
		return
	}
	speaker.Lock()
	p.cur.volume.Volume = levelToVolume(p.level)
	p.cur.volume.Silent = p.level <= 0
	speaker.Unlock()
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cur == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.cur.position()
}

// Duration returns the decoded source length, or 0 before decoding.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cur == nil {
		return 0
	}
	return p.cur.duration()
}

func (p *Player) Events() <-chan Event {
	return p.events
}

// Close stops output and releases the current source. Idempotent.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.interruptLocked()
	p.stopLocked()
	close(p.done)
	return nil
}

func (p *Player) interruptLocked() {
	if p.pending != nil {
		p.pending.cancel(ErrInterrupted)
		p.pending = nil
	}
}

func (p *Player) stopLocked() {
	if p.cur == nil {
		return
	}
	speaker.Clear()
	if err := p.cur.streamer.Close(); err != nil {
		p.logger.Debug("close stream", zap.Error(err))
	}
	p.cur = nil
}

func (p *Player) resumeLocked(s *stream) {
	speaker.Lock()
	if s.drained && s.streamer.Position() >= s.streamer.Len() {
		if err := s.streamer.Seek(0); err != nil {
			p.logger.Warn("rewind failed", zap.Error(err))
		}
	}
	s.ctrl.Paused = false
	speaker.Unlock()

	s.playing = true
	if s.drained {
		s.drained = false
		p.enqueueLocked(s)
	}
}

// enqueueLocked hands s to the speaker. The end callback runs with the
// speaker lock held, so the notification is delivered from a new goroutine.
func (p *Player) enqueueLocked(s *stream) {
	speaker.Play(beep.Seq(s.volume, beep.Callback(func() {
		go p.finished(s)
	})))
}

func (p *Player) finished(s *stream) {
	p.mu.Lock()
	if p.closed || p.cur != s {
		p.mu.Unlock()
		return
	}
	s.drained = true
	s.playing = false
	d := s.duration()
	p.mu.Unlock()

	p.emit(Event{Type: Ended, Source: s.seq, Position: d, Duration: d})
}

func (p *Player) tickLoop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
		}

		p.mu.Lock()
		s := p.cur
		if s == nil || !s.playing {
			p.mu.Unlock()
			continue
		}
		speaker.Lock()
		e := Event{Type: TimeUpdate, Source: s.seq, Position: s.position(), Duration: s.duration()}
		speaker.Unlock()
		p.mu.Unlock()

		p.notify(e)
	}
}

// emit delivers a notification that must not be dropped.
func (p *Player) emit(e Event) {
	select {
	case p.events <- e:
	case <-p.done:
	}
}

// notify delivers a position update, dropping it when the consumer lags.
func (p *Player) notify(e Event) {
	select {
	case p.events <- e:
	default:
	}
}
