// Package catalog holds the storefront's track records and the sources that supply them.
package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Producer is the beatmaker a track belongs to.
type Producer struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Slug        string    `json:"slug,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
}

// Track is a beat listed in the catalog.
// Records are owned by the catalog service; consumers treat them as read-only values.
type Track struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug,omitempty"`
	Description string    `json:"description,omitempty"`
	Producer    Producer  `json:"producer"`
	Price       float64   `json:"price"`
	CoverURL    string    `json:"coverImageUrl"`
	AudioURL    string    `json:"audioUrl"`
	Genre       string    `json:"genre,omitempty"`
	BPM         *int      `json:"bpm,omitempty"`
	Mood        string    `json:"mood,omitempty"`
	Sold        bool      `json:"isSold,omitempty"`
}

// DisplayTitle returns "Producer - Title", or just the title when the producer is unknown.
func (t Track) DisplayTitle() string {
	if t.Producer.DisplayName == "" {
		return t.Title
	}
	return t.Producer.DisplayName + " - " + t.Title
}

// FormatPrice renders the price the way the storefront shows it.
func (t Track) FormatPrice() string {
	return fmt.Sprintf("%.2f €", t.Price)
}

// BPMValue returns the bpm or 0 when unknown.
func (t Track) BPMValue() int {
	if t.BPM == nil {
		return 0
	}
	return *t.BPM
}
