package entity

import (
	"fmt"
	"image"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

const playerLayer = 100

// NewPlayerAt builds the player entity from player.yaml at a world position.
func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	sheet, err := assets.LoadImage(spec.Sprite.Image)
	if err != nil {
		return 0, fmt.Errorf("player: load sheet: %w", err)
	}

	frameW := spec.Sprite.FrameW
	frameH := spec.Sprite.FrameH
	if frameW <= 0 {
		frameW = sheet.Bounds().Dx()
	}
	if frameH <= 0 {
		frameH = sheet.Bounds().Dy()
	}

	moveSpeed := spec.MoveSpeed
	if moveSpeed <= 0 {
		moveSpeed = common.PlayerMoveSpeed
	}
	jumpSpeed := spec.JumpSpeed
	if jumpSpeed <= 0 {
		jumpSpeed = common.PlayerJumpSpeed
	}
	accelRate := spec.AccelRate
	if accelRate <= 0 {
		accelRate = common.PlayerAccelRate
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: scaleOrOne(spec.Transform.ScaleX),
		ScaleY: scaleOrOne(spec.Transform.ScaleY),
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:     sheet,
		Source:    image.Rect(0, 0, frameW, frameH),
		UseSource: true,
		OriginX:   spec.Sprite.OriginX,
		OriginY:   spec.Sprite.OriginY,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: playerLayer}); err != nil {
		return 0, fmt.Errorf("player: add layer: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{
		Mode:      component.MovementMode(spec.Movement),
		MoveSpeed: moveSpeed,
		AccelRate: accelRate,
	}); err != nil {
		return 0, fmt.Errorf("player: add motion: %w", err)
	}
	if err := ecs.Add(w, e, component.JumpComponent.Kind(), &component.Jump{
		Mode:      component.JumpMode(spec.Jump),
		JumpSpeed: jumpSpeed,
		Pose:      component.JumpPoseFirst,
	}); err != nil {
		return 0, fmt.Errorf("player: add jump: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:   spec.Collider.Width,
		Height:  spec.Collider.Height,
		OffsetX: spec.Collider.OffsetX,
		OffsetY: spec.Collider.OffsetY,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionStateComponent.Kind(), &component.CollisionState{}); err != nil {
		return 0, fmt.Errorf("player: add collision state: %w", err)
	}

	audioComp, err := buildAudio(spec.Audio)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if audioComp != nil {
		if err := ecs.Add(w, e, component.AudioComponent.Kind(), audioComp); err != nil {
			return 0, fmt.Errorf("player: add audio: %w", err)
		}
	}

	return e, nil
}

func scaleOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
