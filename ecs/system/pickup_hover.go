package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PickupHoverSystem bobs pickups around their base Y. Purely cosmetic; the
// collection AABB uses the live transform, so the bob slightly shifts the
// overlap window along with the sprite.
type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		if !pickup.Initialized {
			pickup.BaseY = t.Y
			pickup.Initialized = true
			if pickup.BobAmplitude == 0 {
				pickup.BobAmplitude = 4
			}
			if pickup.BobSpeed == 0 {
				pickup.BobSpeed = 0.08
			}
		}

		pickup.BobPhase += pickup.BobSpeed
		t.Y = pickup.BaseY + math.Sin(pickup.BobPhase)*pickup.BobAmplitude
	})
}
