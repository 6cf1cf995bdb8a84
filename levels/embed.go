package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a tile map stored as JSON. Layers are flat row-major int grids
// of length Width*Height; a zero tile is empty. Layer 0 draws first.
type Level struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layers [][]int `json:"layers"`

	// LayerMeta holds per-layer physics participation and tile color.
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`

	// Player spawn in tile coordinates.
	SpawnX int `json:"spawn_x,omitempty"`
	SpawnY int `json:"spawn_y,omitempty"`

	// Coin placements in tile coordinates.
	Coins []TilePoint `json:"coins,omitempty"`

	// Background color as #rrggbb; empty means the default dark grey.
	BackgroundColor string `json:"background_color,omitempty"`
}

type LayerMeta struct {
	Physics bool   `json:"physics"`
	Color   string `json:"color"`
}

type TilePoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Load reads an embedded level by name.
func Load(name string) (*Level, error) {
	data, err := LevelsFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return parse(name, data)
}

// LoadFile reads a level from disk, for the -level override.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return parse(path, data)
}

func parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	if l.SpawnX < 0 || l.SpawnX >= l.Width || l.SpawnY < 0 || l.SpawnY >= l.Height {
		return fmt.Errorf("spawn (%d,%d) outside %dx%d map", l.SpawnX, l.SpawnY, l.Width, l.Height)
	}
	for _, c := range l.Coins {
		if c.X < 0 || c.X >= l.Width || c.Y < 0 || c.Y >= l.Height {
			return fmt.Errorf("coin (%d,%d) outside %dx%d map", c.X, c.Y, l.Width, l.Height)
		}
	}
	return nil
}

// Meta returns the layer meta for index i, defaulting physics off.
func (l *Level) Meta(i int) LayerMeta {
	if l == nil || i < 0 || i >= len(l.LayerMeta) {
		return LayerMeta{}
	}
	return l.LayerMeta[i]
}

// PhysicsLayers returns the tile grids that participate in collision.
func (l *Level) PhysicsLayers() [][]int {
	if l == nil {
		return nil
	}
	var out [][]int
	for i, layer := range l.Layers {
		if l.Meta(i).Physics {
			out = append(out, layer)
		}
	}
	return out
}
