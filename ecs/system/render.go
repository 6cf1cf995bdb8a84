package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// RenderSystem draws sprites in two passes: world entities shifted by the
// camera offset, then screen-space entities (the HUD) at fixed positions.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Update is a no-op; the system only draws.
func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY := 0.0, 0.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return entities[i] < entities[j]
	})

	for _, pass := range []bool{false, true} {
		for _, e := range entities {
			if e == r.camEntity {
				continue
			}
			screenSpace := ecs.Has(w, e, component.ScreenSpaceComponent.Kind())
			if screenSpace != pass {
				continue
			}

			t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			if t == nil || s == nil || s.Image == nil {
				continue
			}

			img := s.Image
			if s.UseSource {
				if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
					img = sub
				}
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-s.OriginX, -s.OriginY)

			sx := scaleOrOne(t.ScaleX)
			sy := scaleOrOne(t.ScaleY)
			if s.FacingLeft {
				sx = -sx
				op.GeoM.Translate(float64(-img.Bounds().Dx()), 0)
			}

			op.GeoM.Scale(sx, sy)
			op.GeoM.Rotate(t.Rotation)
			if screenSpace {
				op.GeoM.Translate(t.X, t.Y)
			} else {
				op.GeoM.Translate(t.X-camX, t.Y-camY)
			}

			screen.DrawImage(img, op)
		}
	}
}
