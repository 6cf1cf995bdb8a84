package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewCamera builds the follow camera from camera.yaml.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.Target,
		MinX:       spec.MinX,
		MinY:       spec.MinY,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	return e, nil
}
