package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPickupWorld(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()

	player := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 100, Y: 100}))
	require.NoError(t, ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 28, Height: 46}))

	tracker := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, tracker, component.ScoreTrackerComponent.Kind(), &component.ScoreTracker{}))

	return w, tracker
}

func addCoin(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		Kind:            "coin",
		CollisionWidth:  16,
		CollisionHeight: 16,
	}))
	return e
}

func TestCollectIncrementsScorePerOverlappingCoin(t *testing.T) {
	w, tracker := newPickupWorld(t)

	overlapping := []ecs.Entity{
		addCoin(t, w, 100, 100),
		addCoin(t, w, 110, 120),
		addCoin(t, w, 95, 130),
	}
	outside := addCoin(t, w, 500, 100)

	NewPickupCollectSystem().Update(w)

	score, ok := ecs.Get(w, tracker, component.ScoreTrackerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 3, score.Score, "one point per overlapping coin")

	for _, e := range overlapping {
		assert.False(t, ecs.Has(w, e, component.PickupComponent.Kind()), "collected coin loses pickup behavior")
		assert.True(t, ecs.Has(w, e, component.TTLComponent.Kind()), "collected coin is destroyed via TTL")
	}
	assert.True(t, ecs.Has(w, outside, component.PickupComponent.Kind()), "distant coin survives")

	events := w.Events().Drain()
	assert.Len(t, events, 3)
	for _, evt := range events {
		assert.Equal(t, ecs.EventCoinCollected, evt.Type)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	w, tracker := newPickupWorld(t)
	addCoin(t, w, 100, 100)

	sys := NewPickupCollectSystem()
	sys.Update(w)
	score, _ := ecs.Get(w, tracker, component.ScoreTrackerComponent.Kind())
	require.Equal(t, 1, score.Score)

	// further ticks with nothing to collect leave the score alone
	for i := 0; i < 10; i++ {
		sys.Update(w)
	}
	score, _ = ecs.Get(w, tracker, component.ScoreTrackerComponent.Kind())
	assert.Equal(t, 1, score.Score)
}

func TestCollectedCoinExpiresThroughTTL(t *testing.T) {
	w, _ := newPickupWorld(t)
	coin := addCoin(t, w, 100, 100)

	NewPickupCollectSystem().Update(w)
	require.True(t, ecs.IsAlive(w, coin))

	ttlSys := NewTTLSystem()
	ttlSys.Update(w)
	ttlSys.Update(w)
	assert.False(t, ecs.IsAlive(w, coin), "coin destroyed once the TTL runs out")
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		bx   float64
		want bool
	}{
		{"overlapping", 10, true},
		{"touching_edges", 28, false},
		{"separate", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intersects(0, 0, 28, 46, tt.bx, 0, 16, 16))
		})
	}
}
