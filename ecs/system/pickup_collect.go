package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PickupCollectSystem collects every pickup overlapping the player's
// collider this tick: the sprite disappears, the pickup sound is queued,
// and the score goes up by one per coin. No ordering guarantee across
// multiple overlaps in the same tick.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	playerTransform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	playerBody, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}

	px := playerTransform.X + playerBody.OffsetX
	py := playerTransform.Y + playerBody.OffsetY
	pw := playerBody.Width
	ph := playerBody.Height

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		kw := pickup.CollisionWidth
		kh := pickup.CollisionHeight
		if kw <= 0 || kh <= 0 {
			kw = 24
			kh = 24
		}

		if !intersects(px, py, pw, ph, t.X, t.Y, kw, kh) {
			return
		}

		if audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
			audioComp.RequestPlay("coin")
		}

		score := 0
		if trackerEntity, found := ecs.First(w, component.ScoreTrackerComponent.Kind()); found {
			if tracker, ok := ecs.Get(w, trackerEntity, component.ScoreTrackerComponent.Kind()); ok {
				tracker.Score++
				score = tracker.Score
			}
		}

		w.Events().Push(ecs.Event{
			Type: ecs.EventCoinCollected,
			Data: ecs.CoinCollected{Coin: e, Score: score},
		})

		// The audio system runs before collection in the scheduler, so a
		// same-tick destroy would drop the queued sound. Strip the pickup
		// behavior and sprite now and let the TTL finish the entity.
		ecs.Remove(w, e, component.PickupComponent.Kind())
		ecs.Remove(w, e, component.SpriteComponent.Kind())
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 2})
	})
}

func intersects(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}
