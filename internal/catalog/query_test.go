package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Filter
	}{
		{"empty", "", Filter{}},
		{"title only", "  midnight   drive ", Filter{Title: "midnight drive"}},
		{"genre and mood", "genre:trap mood:dark", Filter{Genre: "trap", Mood: "dark"}},
		{"keys are case insensitive", "GENRE:Trap", Filter{Genre: "Trap"}},
		{"bpm range", "bpm:90-120", Filter{MinBPM: intPtr(90), MaxBPM: intPtr(120)}},
		{"bpm open upper", "bpm:90-", Filter{MinBPM: intPtr(90)}},
		{"bpm open lower", "bpm:-120", Filter{MaxBPM: intPtr(120)}},
		{"bpm exact", "bpm:140", Filter{MinBPM: intPtr(140), MaxBPM: intPtr(140)}},
		{"price range", "price:9.99-30", Filter{MinPrice: floatPtr(9.99), MaxPrice: floatPtr(30)}},
		{
			"mixed with title",
			"dark genre:drill bpm:140- keys",
			Filter{Title: "dark keys", Genre: "drill", MinBPM: intPtr(140)},
		},
		{"malformed bpm becomes title", "bpm:fast", Filter{Title: "bpm:fast"}},
		{"bare dash becomes title", "bpm:-", Filter{Title: "bpm:-"}},
		{"unknown key becomes title", "feat:someone", Filter{Title: "feat:someone"}},
		{"empty value becomes title", "genre:", Filter{Title: "genre:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseQuery(tt.query)); diff != "" {
				t.Errorf("ParseQuery(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestParseQuery_ExactBPMMatches(t *testing.T) {
	f := ParseQuery("bpm:140")
	if !f.Match(Track{BPM: intPtr(140)}) {
		t.Error("bpm:140 should match a 140 bpm track")
	}
	if f.Match(Track{BPM: intPtr(141)}) {
		t.Error("bpm:140 should not match a 141 bpm track")
	}
}
