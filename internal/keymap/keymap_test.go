package keymap

import "testing"

func TestByContext(t *testing.T) {
	tests := []struct {
		context  string
		minCount int
	}{
		{ContextGlobal, 2},
		{ContextPlayback, 5},
		{ContextList, 7},
		{ContextSearch, 2},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			result := ByContext(tt.context)
			if len(result) < tt.minCount {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.minCount)
			}
			if tt.minCount == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected none", tt.context, len(result))
			}
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("binding context = %q, want %q", b.Context, tt.context)
				}
			}
		})
	}
}

func TestBindingsHaveKeysAndLabels(t *testing.T) {
	for _, b := range Bindings {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
	}
}

func TestHint(t *testing.T) {
	got := Hint(Bindings, ActionSearch, ActionPlayPause, ActionSeekForward, Action("missing"), ActionQuit)
	want := "/ search · space play/pause · → +5s · q quit"
	if got != want {
		t.Errorf("Hint() = %q, want %q", got, want)
	}
}
