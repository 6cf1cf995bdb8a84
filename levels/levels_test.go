package levels

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedMap(t *testing.T) {
	lvl, err := Load("map.json")
	if err != nil {
		t.Fatalf("load embedded map: %v", err)
	}

	if lvl.Width <= 0 || lvl.Height <= 0 {
		t.Fatalf("bad dimensions %dx%d", lvl.Width, lvl.Height)
	}
	if len(lvl.Layers) == 0 {
		t.Fatal("expected at least one layer")
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			t.Errorf("layer %d: got %d tiles, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	if len(lvl.PhysicsLayers()) == 0 {
		t.Error("expected a physics layer to land on")
	}
	if len(lvl.Coins) == 0 {
		t.Error("expected coin placements")
	}
}

func TestParseRejectsInvalidLevels(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name:    "bad_json",
			json:    `{`,
			wantErr: "unmarshal",
		},
		{
			name:    "zero_dimensions",
			json:    `{"width": 0, "height": 5}`,
			wantErr: "invalid dimensions",
		},
		{
			name:    "short_layer",
			json:    `{"width": 2, "height": 2, "layers": [[1, 2, 3]]}`,
			wantErr: "layer 0 has 3 tiles, want 4",
		},
		{
			name:    "spawn_out_of_bounds",
			json:    `{"width": 2, "height": 2, "layers": [], "spawn_x": 5, "spawn_y": 0}`,
			wantErr: "spawn (5,0) outside",
		},
		{
			name:    "coin_out_of_bounds",
			json:    `{"width": 2, "height": 2, "layers": [], "coins": [{"x": 0, "y": 9}]}`,
			wantErr: "coin (0,9) outside",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(tt.name, []byte(tt.json))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestMetaDefaultsPhysicsOff(t *testing.T) {
	lvl := &Level{
		Width:     1,
		Height:    1,
		Layers:    [][]int{{1}, {1}},
		LayerMeta: []LayerMeta{{Physics: true, Color: "#4caf50"}},
	}

	if !lvl.Meta(0).Physics {
		t.Error("declared meta lost")
	}
	if lvl.Meta(1).Physics {
		t.Error("missing meta should default physics off")
	}
	if got := len(lvl.PhysicsLayers()); got != 1 {
		t.Errorf("physics layers: got %d, want 1", got)
	}
}
