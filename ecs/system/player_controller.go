package system

import (
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// restingEpsilon is how close vertical velocity must be to zero for the
// squish charge to advance; a body settled on the ground sits within it.
const restingEpsilon = 1.0

// PlayerControllerSystem turns input flags into velocity writes on the
// player's physics body and drives the squish jump pose cycle.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.MotionComponent.Kind(),
		component.JumpComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		motion, _ := ecs.Get(w, e, component.MotionComponent.Kind())
		jump, _ := ecs.Get(w, e, component.JumpComponent.Kind())
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if input == nil || motion == nil || jump == nil || bodyComp == nil || bodyComp.Body == nil {
			continue
		}

		grounded := false
		if state, ok := ecs.Get(w, e, component.CollisionStateComponent.Kind()); ok {
			grounded = state.Grounded
		}

		vel := bodyComp.Body.Velocity()

		switch motion.Mode {
		case component.MovementSmoothed:
			motion.Acceleration = advanceAcceleration(motion.Acceleration, motion.AccelRate, input.Left, input.Right)
			vel.X = motion.Acceleration * motion.MoveSpeed
		default:
			vel.X = horizontalVelocity(input.Left, input.Right, motion.MoveSpeed)
		}

		fired := false
		switch jump.Mode {
		case component.JumpSquish:
			if input.JumpPressed && grounded && !jump.Charging {
				jump.Charging = true
				jump.Pose = component.JumpPoseFirst
			}
			fired = stepSquish(jump, grounded, vel.Y)
			if fired {
				vel.Y = -jump.JumpSpeed
			}
		default:
			if input.JumpPressed && grounded {
				vel.Y = -jump.JumpSpeed
				fired = true
			}
			// Releasing the key cancels the remaining ascent.
			if !input.Up && vel.Y < 0 {
				vel.Y = 0
			}
		}

		if fired {
			if audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
				audioComp.RequestPlay("jump")
			}
			w.Events().Push(ecs.Event{Type: ecs.EventJumpFired, Data: e})
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			applyPose(sprite, jump.Pose)
			if vel.X < 0 {
				sprite.FacingLeft = true
			} else if vel.X > 0 {
				sprite.FacingLeft = false
			}
		}

		bodyComp.Body.SetVelocityVector(vel)
		bodyComp.Body.SetAngle(0)
		bodyComp.Body.SetAngularVelocity(0)
	}
}

// horizontalVelocity implements the instant rule: one key held moves at
// full speed in that direction, neither or both stops the player.
func horizontalVelocity(left, right bool, moveSpeed float64) float64 {
	switch {
	case left && !right:
		return -moveSpeed
	case right && !left:
		return moveSpeed
	default:
		return 0
	}
}

// advanceAcceleration nudges the accumulator toward the held direction, or
// decays it toward zero when neither or both keys are held. The result
// always stays within [-1, 1].
func advanceAcceleration(accel, rate float64, left, right bool) float64 {
	switch {
	case left && !right:
		accel -= rate
	case right && !left:
		accel += rate
	default:
		if accel > 0 {
			accel = math.Max(0, accel-rate)
		} else if accel < 0 {
			accel = math.Min(0, accel+rate)
		}
	}
	return common.Clamp(accel, -1, 1)
}

// stepSquish advances the pose cycle one tick and reports whether the jump
// impulse fires this tick. The cycle only advances while the player is
// grounded with no vertical motion; going airborne without firing resets it.
func stepSquish(jump *component.Jump, grounded bool, velY float64) bool {
	if jump == nil {
		return false
	}
	if jump.Pose < component.JumpPoseFirst {
		jump.Pose = component.JumpPoseFirst
	}

	if !jump.Charging {
		if !grounded {
			jump.Pose = component.JumpPoseFirst
		}
		return false
	}

	if !grounded || math.Abs(velY) > restingEpsilon {
		jump.Charging = false
		jump.Pose = component.JumpPoseFirst
		return false
	}

	jump.Pose++
	if jump.Pose >= component.JumpPoseLast {
		jump.Pose = component.JumpPoseFirst
		jump.Charging = false
		return true
	}
	return false
}

// applyPose points the sprite's source rect at the frame for the pose.
// The sheet lays the six poses out left to right in one row.
func applyPose(sprite *component.Sprite, pose int) {
	if sprite == nil || !sprite.UseSource {
		return
	}
	if pose < component.JumpPoseFirst || pose > component.JumpPoseLast {
		pose = component.JumpPoseFirst
	}
	frameW := sprite.Source.Dx()
	if frameW <= 0 {
		return
	}
	frameH := sprite.Source.Dy()
	x := (pose - 1) * frameW
	sprite.Source.Min.X = x
	sprite.Source.Max.X = x + frameW
	sprite.Source.Min.Y = 0
	sprite.Source.Max.Y = frameH
}
