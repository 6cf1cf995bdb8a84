package component

import "github.com/jakecoffman/cp"

// PhysicsBody holds the Chipmunk runtime body plus collider configuration.
// Width/Height describe the box collider; the body position is its center
// while Transform stays top-left.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// CollisionState is written by the physics system after each step.
type CollisionState struct {
	Grounded    bool
	GroundGrace int
}

var CollisionStateComponent = NewComponent[CollisionState]()
