// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"sync"

	"github.com/llehouerou/prodify/internal/catalog"
)

// Urgency represents the freedesktop notification priority levels.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// previewTimeout is how long a "now previewing" bubble stays up, in ms.
const previewTimeout = 4000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// NowPreviewing builds the notification shown when a track is bound to the player.
func NowPreviewing(t catalog.Track) Notification {
	body := t.Producer.DisplayName
	if t.Genre != "" {
		if body != "" {
			body += " · "
		}
		body += t.Genre
	}
	return Notification{
		Title:   t.Title,
		Body:    body,
		Icon:    "audio-x-generic",
		Timeout: previewTimeout,
		Urgency: UrgencyLow,
	}
}

// Previews keeps a single "now previewing" bubble on screen, replacing it
// on every track change.
type Previews struct {
	mu       sync.Mutex
	notifier Notifier
	lastID   uint32
}

// NewPreviews wraps a Notifier.
func NewPreviews(n Notifier) *Previews {
	return &Previews{notifier: n}
}

// Show announces t, replacing the previous preview notification.
func (p *Previews) Show(t catalog.Track) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := NowPreviewing(t)
	n.ReplacesID = p.lastID
	id, err := p.notifier.Notify(n)
	if err != nil {
		return err
	}
	p.lastID = id
	return nil
}

// Dismiss closes the current preview notification, if any.
func (p *Previews) Dismiss() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastID == 0 {
		return nil
	}
	id := p.lastID
	p.lastID = 0
	return p.notifier.Close(id)
}
