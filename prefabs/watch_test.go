package prefabs

import "testing"

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestIsWatchedFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"player.yaml", true},
		{"player.YML", true},
		{"map.json", true},
		{"notes.txt", false},
		{"player", false},
	}

	for _, tt := range tests {
		if got := isWatchedFile(tt.path); got != tt.want {
			t.Errorf("isWatchedFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
