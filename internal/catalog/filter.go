package catalog

import "strings"

// Filter holds the search criteria accepted by the catalog search endpoint.
// Every field is optional; the zero Filter matches the whole catalog.
type Filter struct {
	Title    string   `json:"title,omitempty"`
	Genre    string   `json:"genre,omitempty"`
	Mood     string   `json:"mood,omitempty"`
	MinBPM   *int     `json:"minBpm,omitempty"`
	MaxBPM   *int     `json:"maxBpm,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// Active returns how many criteria are set.
func (f Filter) Active() int {
	n := 0
	for _, set := range []bool{
		strings.TrimSpace(f.Title) != "",
		f.Genre != "",
		f.Mood != "",
		f.MinBPM != nil,
		f.MaxBPM != nil,
		f.MinPrice != nil,
		f.MaxPrice != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// IsZero reports whether no criteria are set.
func (f Filter) IsZero() bool {
	return f.Active() == 0
}

// Match applies the criteria to a single track.
// Tracks without a bpm never satisfy a bpm bound.
func (f Filter) Match(t Track) bool {
	if q := strings.TrimSpace(f.Title); q != "" &&
		!strings.Contains(strings.ToLower(t.Title), strings.ToLower(q)) {
		return false
	}
	if f.Genre != "" && !strings.EqualFold(f.Genre, t.Genre) {
		return false
	}
	if f.Mood != "" && !strings.EqualFold(f.Mood, t.Mood) {
		return false
	}
	if f.MinBPM != nil && (t.BPM == nil || *t.BPM < *f.MinBPM) {
		return false
	}
	if f.MaxBPM != nil && (t.BPM == nil || *t.BPM > *f.MaxBPM) {
		return false
	}
	if f.MinPrice != nil && t.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && t.Price > *f.MaxPrice {
		return false
	}
	return true
}

// WithTitle returns a copy of f with the title criterion replaced.
func (f Filter) WithTitle(title string) Filter {
	f.Title = strings.TrimSpace(title)
	return f
}
