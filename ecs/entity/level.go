package entity

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

const levelLayer = 0

// NewLevel bakes the level's tile layers into a single background image
// entity and spawns a coin entity per placement.
func NewLevel(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: nil level")
	}

	baked := bakeLevelImage(lvl)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("level: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: baked}); err != nil {
		return 0, fmt.Errorf("level: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: levelLayer}); err != nil {
		return 0, fmt.Errorf("level: add layer: %w", err)
	}

	coins, err := NewCoinBuilder()
	if err != nil {
		return 0, err
	}
	for _, c := range lvl.Coins {
		x := float64(c.X * common.TileSize)
		y := float64(c.Y * common.TileSize)
		if _, err := coins.Build(w, x, y); err != nil {
			return 0, err
		}
	}

	return e, nil
}

// SpawnPosition returns the player spawn in world coordinates.
func SpawnPosition(lvl *levels.Level) (float64, float64) {
	if lvl == nil {
		return 0, 0
	}
	return float64(lvl.SpawnX * common.TileSize), float64(lvl.SpawnY * common.TileSize)
}

func bakeLevelImage(lvl *levels.Level) *ebiten.Image {
	img := ebiten.NewImage(lvl.Width*common.TileSize, lvl.Height*common.TileSize)

	for i, layer := range lvl.Layers {
		tile := ebiten.NewImage(common.TileSize, common.TileSize)
		tile.Fill(ParseHexColor(lvl.Meta(i).Color))
		for y := 0; y < lvl.Height; y++ {
			for x := 0; x < lvl.Width; x++ {
				if layer[y*lvl.Width+x] == 0 {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x*common.TileSize), float64(y*common.TileSize))
				img.DrawImage(tile, op)
			}
		}
	}
	return img
}

// ParseHexColor parses #rrggbb, falling back to a neutral blue.
func ParseHexColor(s string) color.Color {
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: r, G: g, B: b, A: 0xff}
		}
	}
	return color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}
}
