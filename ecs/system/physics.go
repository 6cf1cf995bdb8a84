package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeGroundSensor
)

const groundGraceFrames = 6

// PhysicsSystem owns the Chipmunk space: static shapes merged from the
// level's physics layers, dynamic bodies for entities with a PhysicsBody,
// and the ground sensor that feeds CollisionState.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	groundShapes map[*cp.Shape]ecs.Entity
	contacts     map[ecs.Entity]*contactState
}

type bodyInfo struct {
	body        *cp.Body
	mainShape   *cp.Shape
	groundShape *cp.Shape
}

type contactState struct {
	grounded bool
	grace    int
}

func NewPhysicsSystem(lvl *levels.Level) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	ps := &PhysicsSystem{
		space:        space,
		entities:     make(map[ecs.Entity]*bodyInfo),
		groundShapes: make(map[*cp.Shape]ecs.Entity),
		contacts:     make(map[ecs.Entity]*contactState),
	}
	ps.buildStaticShapes(lvl)
	ps.ensureHandlers()
	return ps
}

// Space returns the underlying Chipmunk space.
func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncBodies(w)

	for _, st := range ps.contacts {
		st.grounded = false
	}

	ps.space.Step(1.0)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

// buildStaticShapes greedily merges runs of solid tiles into the fewest
// axis-aligned boxes and walls off the level edges.
func (ps *PhysicsSystem) buildStaticShapes(lvl *levels.Level) {
	if ps == nil || ps.space == nil || lvl == nil {
		return
	}

	for _, layer := range lvl.PhysicsLayers() {
		ps.mergeLayerTiles(lvl, layer)
	}

	worldW := float64(lvl.Width * common.TileSize)
	worldH := float64(lvl.Height * common.TileSize)
	segments := [][2]cp.Vector{
		{{X: 0, Y: 0}, {X: worldW, Y: 0}},
		{{X: 0, Y: worldH}, {X: worldW, Y: worldH}},
		{{X: 0, Y: 0}, {X: 0, Y: worldH}},
		{{X: worldW, Y: 0}, {X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg[0], seg[1], 1.0)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
	}
}

func (ps *PhysicsSystem) mergeLayerTiles(lvl *levels.Level, layer []int) {
	processed := make([]bool, lvl.Width*lvl.Height)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			idx := y*lvl.Width + x
			if processed[idx] || layer[idx] == 0 {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < lvl.Width {
				next := y*lvl.Width + (x + w)
				if processed[next] || layer[next] == 0 {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < lvl.Height {
				for xi := x; xi < x+w; xi++ {
					next := (y+h)*lvl.Width + xi
					if processed[next] || layer[next] == 0 {
						break heightLoop
					}
				}
				h++
			}

			x0 := float64(x * common.TileSize)
			y0 := float64(y * common.TileSize)
			bb := cp.BB{
				L: x0,
				B: y0,
				R: x0 + float64(w*common.TileSize),
				T: y0 + float64(h*common.TileSize),
			}
			shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
			shape.SetFriction(0.8)
			shape.SetCollisionType(collisionTypeSolid)
			ps.space.AddShape(shape)

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*lvl.Width+xx] = true
				}
			}
		}
	}
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		e, okA := sys.groundShapes[shapeA]
		if !okA {
			var okB bool
			e, okB = sys.groundShapes[shapeB]
			if !okB {
				return true
			}
		}

		st := sys.contacts[e]
		if st == nil {
			st = &contactState{}
			sys.contacts[e] = st
		}
		st.grounded = true
		st.grace = groundGraceFrames
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncBodies(w *ecs.World) {
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if bodyComp == nil || transform == nil {
			continue
		}

		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil {
				bodyComp.Body = info.body
				bodyComp.Shape = info.mainShape
			}
			continue
		}

		info := ps.createBody(transform, bodyComp)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		if info.groundShape != nil {
			ps.groundShapes[info.groundShape] = e
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.mainShape
	}
}

func (ps *PhysicsSystem) createBody(t *component.Transform, c *component.PhysicsBody) *bodyInfo {
	if ps.space == nil || c.Width <= 0 || c.Height <= 0 {
		return nil
	}

	mass := 1.0
	// infinite moment keeps the box from rotating
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{
		X: t.X + c.Width/2 + c.OffsetX,
		Y: t.Y + c.Height/2 + c.OffsetY,
	})

	shape := cp.NewBox(body, c.Width, c.Height, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypePlayer)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	// thin sensor strip under the feet
	sensorBB := cp.BB{
		L: -c.Width * 0.45,
		B: c.Height / 2,
		R: c.Width * 0.45,
		T: c.Height/2 + 2,
	}
	groundShape := cp.NewBox2(body, sensorBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypeGroundSensor)
	ps.space.AddShape(groundShape)

	return &bodyInfo{body: body, mainShape: shape, groundShape: groundShape}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info == nil || info.body == nil || !ecs.IsAlive(w, e) {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if bodyComp == nil || transform == nil {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X - bodyComp.Width/2 - bodyComp.OffsetX
		transform.Y = pos.Y - bodyComp.Height/2 - bodyComp.OffsetY
	}
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	for e, st := range ps.contacts {
		if !ecs.IsAlive(w, e) {
			delete(ps.contacts, e)
			continue
		}
		state, ok := ecs.Get(w, e, component.CollisionStateComponent.Kind())
		if !ok {
			continue
		}
		if st.grounded {
			st.grace = groundGraceFrames
		} else if st.grace > 0 {
			st.grace--
		}
		state.Grounded = st.grounded || st.grace > 0
		state.GroundGrace = st.grace
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info != nil {
			if info.groundShape != nil {
				ps.space.RemoveShape(info.groundShape)
				delete(ps.groundShapes, info.groundShape)
			}
			if info.mainShape != nil {
				ps.space.RemoveShape(info.mainShape)
			}
			if info.body != nil {
				ps.space.RemoveBody(info.body)
			}
		}
		delete(ps.entities, e)
		delete(ps.contacts, e)
	}
}
