package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

const scoreCounterLayer = 1000

// NewScoreCounter builds the HUD score tracker plus its icon and text
// entities from hud.yaml.
func NewScoreCounter(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadHUDSpec()
	if err != nil {
		return 0, fmt.Errorf("score counter: %w", err)
	}

	iconImage, err := assets.LoadImage(spec.Icon)
	if err != nil {
		return 0, fmt.Errorf("score counter: load icon: %w", err)
	}

	trackerEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, trackerEntity, component.ScoreTrackerComponent.Kind(), &component.ScoreTracker{}); err != nil {
		return 0, fmt.Errorf("score counter: add tracker: %w", err)
	}
	if err := ecs.Add(w, trackerEntity, component.ScoreCounterComponent.Kind(), &component.ScoreCounter{}); err != nil {
		return 0, fmt.Errorf("score counter: add counter: %w", err)
	}

	iconEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, iconEntity, component.ScoreCounterIconComponent.Kind(), &component.ScoreCounterIcon{}); err != nil {
		return 0, fmt.Errorf("score counter: add icon tag: %w", err)
	}
	if err := ecs.Add(w, iconEntity, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("score counter: add icon screen-space: %w", err)
	}
	if err := ecs.Add(w, iconEntity, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("score counter: add icon transform: %w", err)
	}
	if err := ecs.Add(w, iconEntity, component.SpriteComponent.Kind(), &component.Sprite{Image: iconImage}); err != nil {
		return 0, fmt.Errorf("score counter: add icon sprite: %w", err)
	}
	if err := ecs.Add(w, iconEntity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: scoreCounterLayer}); err != nil {
		return 0, fmt.Errorf("score counter: add icon layer: %w", err)
	}

	textEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, textEntity, component.ScoreCounterTextComponent.Kind(), &component.ScoreCounterText{}); err != nil {
		return 0, fmt.Errorf("score counter: add text tag: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("score counter: add text screen-space: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("score counter: add text transform: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.SpriteComponent.Kind(), &component.Sprite{Image: ebiten.NewImage(1, 1)}); err != nil {
		return 0, fmt.Errorf("score counter: add text sprite: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: scoreCounterLayer}); err != nil {
		return 0, fmt.Errorf("score counter: add text layer: %w", err)
	}

	return trackerEntity, nil
}
