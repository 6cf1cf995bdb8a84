package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem centers the camera on its target's visual center, clamped so
// the offset never drops below the configured minimum on either axis.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if !cs.camEntity.Valid() || !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
		cs.targetEntity = 0
	}

	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if !cs.targetEntity.Valid() || !ecs.IsAlive(w, cs.targetEntity) {
		target := findEntityByName(w, camComp.TargetName)
		if !target.Valid() {
			return
		}
		cs.targetEntity = target
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	centerX := targetTransform.X
	centerY := targetTransform.Y
	if sprite, ok := ecs.Get(w, cs.targetEntity, component.SpriteComponent.Kind()); ok && sprite.Image != nil {
		spriteW := float64(sprite.Image.Bounds().Dx())
		spriteH := float64(sprite.Image.Bounds().Dy())
		if sprite.UseSource {
			spriteW = float64(sprite.Source.Dx())
			spriteH = float64(sprite.Source.Dy())
		}
		sx, sy := scaleOrOne(targetTransform.ScaleX), scaleOrOne(targetTransform.ScaleY)
		centerX += spriteW * sx / 2
		centerY += spriteH * sy / 2
	}

	offsetX, offsetY := followOffset(centerX, centerY, camComp.MinX, camComp.MinY)
	if camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind()); ok {
		camTransform.X = offsetX
		camTransform.Y = offsetY
	}
}

// followOffset computes the camera offset that centers (centerX, centerY)
// on screen, clamped to the per-axis minimums.
func followOffset(centerX, centerY, minX, minY float64) (float64, float64) {
	x := centerX - common.BaseWidth/2
	y := centerY - common.BaseHeight/2
	if x < minX {
		x = minX
	}
	if y < minY {
		y = minY
	}
	return x, y
}

func scaleOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

func findEntityByName(w *ecs.World, name string) ecs.Entity {
	if name == "player" {
		if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
