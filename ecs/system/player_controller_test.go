package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizontalVelocityRule(t *testing.T) {
	const speed = 10.0

	tests := []struct {
		name  string
		left  bool
		right bool
		want  float64
	}{
		{"neither", false, false, 0},
		{"left_only", true, false, -speed},
		{"right_only", false, true, speed},
		{"both", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, horizontalVelocity(tt.left, tt.right, speed))
		})
	}
}

func TestAccelerationStaysClamped(t *testing.T) {
	const rate = 0.1

	tests := []struct {
		name  string
		left  bool
		right bool
		want  float64 // fixed point after many ticks
	}{
		{"hold_right", false, true, 1},
		{"hold_left", true, false, -1},
		{"hold_both", true, true, 0},
		{"hold_none", false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accel := 0.5
			for i := 0; i < 1000; i++ {
				accel = advanceAcceleration(accel, rate, tt.left, tt.right)
				assert.GreaterOrEqual(t, accel, -1.0)
				assert.LessOrEqual(t, accel, 1.0)
			}
			assert.InDelta(t, tt.want, accel, 1e-9)
		})
	}
}

func TestAccelerationDecaysTowardZero(t *testing.T) {
	accel := advanceAcceleration(0.05, 0.1, false, false)
	assert.Equal(t, 0.0, accel, "decay should not overshoot zero")

	accel = advanceAcceleration(-0.05, 0.1, false, false)
	assert.Equal(t, 0.0, accel)
}

func newImpulsePlayer(t *testing.T, grounded bool) (*ecs.World, ecs.Entity, *cp.Body) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	body := cp.NewBody(1.0, math.Inf(1))

	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{
		Mode:      component.MovementInstant,
		MoveSpeed: 10,
	}))
	require.NoError(t, ecs.Add(w, e, component.JumpComponent.Kind(), &component.Jump{
		Mode:      component.JumpImpulse,
		JumpSpeed: 20,
		Pose:      component.JumpPoseFirst,
	}))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:   body,
		Width:  28,
		Height: 46,
	}))
	require.NoError(t, ecs.Add(w, e, component.CollisionStateComponent.Kind(), &component.CollisionState{Grounded: grounded}))

	return w, e, body
}

func TestImpulseJumpFiresOnGroundedPress(t *testing.T) {
	w, e, body := newImpulsePlayer(t, true)
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	input.Up = true
	input.JumpPressed = true

	NewPlayerControllerSystem().Update(w)

	assert.Equal(t, -20.0, body.Velocity().Y, "jump velocity written on the press itself")

	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventJumpFired, events[0].Type)
}

func TestImpulseJumpIgnoredInAir(t *testing.T) {
	w, e, body := newImpulsePlayer(t, false)
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	input.Up = true
	input.JumpPressed = true

	NewPlayerControllerSystem().Update(w)

	assert.Equal(t, 0.0, body.Velocity().Y, "airborne press does nothing")
	assert.Empty(t, w.Events().Drain())
}

func TestReleasingUpCancelsAscent(t *testing.T) {
	w, _, body := newImpulsePlayer(t, false)
	body.SetVelocity(0, -15)

	NewPlayerControllerSystem().Update(w)

	assert.Equal(t, 0.0, body.Velocity().Y, "releasing the key cuts the remaining ascent")
}

func TestReleasingUpLeavesDescentAlone(t *testing.T) {
	w, _, body := newImpulsePlayer(t, false)
	body.SetVelocity(0, 5)

	NewPlayerControllerSystem().Update(w)

	assert.Equal(t, 5.0, body.Velocity().Y)
}

func TestSquishCycleFiresOncePerCharge(t *testing.T) {
	jump := &component.Jump{
		Mode:      component.JumpSquish,
		JumpSpeed: 20,
		Pose:      component.JumpPoseFirst,
		Charging:  true,
	}

	fires := 0
	ticks := 0
	for i := 0; i < 20 && jump.Charging; i++ {
		ticks++
		if stepSquish(jump, true, 0) {
			fires++
		}
	}

	assert.Equal(t, 1, fires, "one impulse per charge cycle")
	assert.Equal(t, component.JumpPoseLast-component.JumpPoseFirst, ticks, "pose advances once per tick up to the last pose")
	assert.Equal(t, component.JumpPoseFirst, jump.Pose, "pose resets after firing")
	assert.False(t, jump.Charging)
}

func TestSquishRequiresGroundAndRest(t *testing.T) {
	t.Run("airborne_cancels_charge", func(t *testing.T) {
		jump := &component.Jump{Mode: component.JumpSquish, Pose: 3, Charging: true}
		assert.False(t, stepSquish(jump, false, -5))
		assert.False(t, jump.Charging)
		assert.Equal(t, component.JumpPoseFirst, jump.Pose)
	})

	t.Run("vertical_motion_cancels_charge", func(t *testing.T) {
		jump := &component.Jump{Mode: component.JumpSquish, Pose: 3, Charging: true}
		assert.False(t, stepSquish(jump, true, 8))
		assert.False(t, jump.Charging)
		assert.Equal(t, component.JumpPoseFirst, jump.Pose)
	})

	t.Run("airborne_without_charge_resets_pose", func(t *testing.T) {
		jump := &component.Jump{Mode: component.JumpSquish, Pose: 4}
		assert.False(t, stepSquish(jump, false, 3))
		assert.Equal(t, component.JumpPoseFirst, jump.Pose)
	})

	t.Run("idle_on_ground_keeps_pose", func(t *testing.T) {
		jump := &component.Jump{Mode: component.JumpSquish, Pose: component.JumpPoseFirst}
		assert.False(t, stepSquish(jump, true, 0))
		assert.Equal(t, component.JumpPoseFirst, jump.Pose)
	})
}
