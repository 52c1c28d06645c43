package notify

import (
	"errors"
	"testing"

	"github.com/llehouerou/prodify/internal/catalog"
)

type fakeNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sent = append(f.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) Close(id uint32) error {
	f.closed = append(f.closed, id)
	return nil
}

func testTrack(title string) catalog.Track {
	return catalog.Track{
		Title:    title,
		Producer: catalog.Producer{DisplayName: "Nightfall"},
		Genre:    "Trap",
	}
}

func TestUrgencyValues(t *testing.T) {
	if UrgencyLow != 0 || UrgencyNormal != 1 || UrgencyCritical != 2 {
		t.Errorf("urgency constants = %d/%d/%d, want 0/1/2", UrgencyLow, UrgencyNormal, UrgencyCritical)
	}
}

func TestNowPreviewing(t *testing.T) {
	tests := []struct {
		name     string
		track    catalog.Track
		wantBody string
	}{
		{"producer and genre", testTrack("Midnight Drive"), "Nightfall · Trap"},
		{"producer only", catalog.Track{Title: "x", Producer: catalog.Producer{DisplayName: "Nightfall"}}, "Nightfall"},
		{"genre only", catalog.Track{Title: "x", Genre: "Drill"}, "Drill"},
		{"neither", catalog.Track{Title: "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NowPreviewing(tt.track)
			if n.Title != tt.track.Title {
				t.Errorf("Title = %q, want %q", n.Title, tt.track.Title)
			}
			if n.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", n.Body, tt.wantBody)
			}
			if n.Timeout <= 0 {
				t.Errorf("Timeout = %d, want a positive expiry", n.Timeout)
			}
		})
	}
}

func TestPreviews_ReplacesPrevious(t *testing.T) {
	f := &fakeNotifier{}
	p := NewPreviews(f)

	if err := p.Show(testTrack("Midnight Drive")); err != nil {
		t.Fatalf("Show() error: %v", err)
	}
	if err := p.Show(testTrack("Cold Summer")); err != nil {
		t.Fatalf("Show() error: %v", err)
	}

	if len(f.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(f.sent))
	}
	if f.sent[0].ReplacesID != 0 {
		t.Errorf("first ReplacesID = %d, want 0", f.sent[0].ReplacesID)
	}
	if f.sent[1].ReplacesID != 1 {
		t.Errorf("second ReplacesID = %d, want 1", f.sent[1].ReplacesID)
	}
}

func TestPreviews_ErrorKeepsLastID(t *testing.T) {
	f := &fakeNotifier{}
	p := NewPreviews(f)
	if err := p.Show(testTrack("a")); err != nil {
		t.Fatalf("Show() error: %v", err)
	}

	f.err = errors.New("bus gone")
	if err := p.Show(testTrack("b")); err == nil {
		t.Error("Show() should return the notifier error")
	}
	if p.lastID != 1 {
		t.Errorf("lastID = %d, want 1", p.lastID)
	}
}

func TestPreviews_Dismiss(t *testing.T) {
	f := &fakeNotifier{}
	p := NewPreviews(f)

	if err := p.Dismiss(); err != nil {
		t.Fatalf("Dismiss() with nothing shown: %v", err)
	}
	if len(f.closed) != 0 {
		t.Errorf("closed %v, want nothing", f.closed)
	}

	_ = p.Show(testTrack("a"))
	if err := p.Dismiss(); err != nil {
		t.Fatalf("Dismiss() error: %v", err)
	}
	if len(f.closed) != 1 || f.closed[0] != 1 {
		t.Errorf("closed %v, want [1]", f.closed)
	}
	if err := p.Dismiss(); err != nil || len(f.closed) != 1 {
		t.Error("second Dismiss() should be a no-op")
	}
}

func TestStubNotifier(t *testing.T) {
	var n Notifier = stubNotifier{}
	id, err := n.Notify(Notification{Title: "x"})
	if id != 0 || err != nil {
		t.Errorf("stub Notify() = %d, %v", id, err)
	}
}
