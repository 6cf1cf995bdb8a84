package entity

import (
	"fmt"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

const coinLayer = 50

// CoinBuilder builds coin entities from coin.yaml. The spec and sprite are
// loaded once per world build and shared across coins.
type CoinBuilder struct {
	spec   *prefabs.CoinSpec
	sprite *component.Sprite
}

func NewCoinBuilder() (*CoinBuilder, error) {
	spec, err := prefabs.LoadCoinSpec()
	if err != nil {
		return nil, fmt.Errorf("coin: %w", err)
	}
	img, err := assets.LoadImage(spec.Sprite.Image)
	if err != nil {
		return nil, fmt.Errorf("coin: load sprite: %w", err)
	}
	return &CoinBuilder{
		spec: spec,
		sprite: &component.Sprite{
			Image:   img,
			OriginX: spec.Sprite.OriginX,
			OriginY: spec.Sprite.OriginY,
		},
	}, nil
}

func (b *CoinBuilder) Build(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("coin: add transform: %w", err)
	}
	sprite := *b.sprite
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite); err != nil {
		return 0, fmt.Errorf("coin: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: coinLayer}); err != nil {
		return 0, fmt.Errorf("coin: add layer: %w", err)
	}
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		Kind:            "coin",
		BobAmplitude:    b.spec.BobAmplitude,
		BobSpeed:        b.spec.BobSpeed,
		CollisionWidth:  b.spec.CollisionWidth,
		CollisionHeight: b.spec.CollisionHeight,
	}); err != nil {
		return 0, fmt.Errorf("coin: add pickup: %w", err)
	}

	audioComp, err := buildAudio(b.spec.Audio)
	if err != nil {
		return 0, fmt.Errorf("coin: %w", err)
	}
	if audioComp != nil {
		if err := ecs.Add(w, e, component.AudioComponent.Kind(), audioComp); err != nil {
			return 0, fmt.Errorf("coin: add audio: %w", err)
		}
	}
	return e, nil
}
