package component

// Pickup is a collectible with a bob idle animation and an AABB collider.
type Pickup struct {
	Kind string

	BaseY        float64
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
	Initialized  bool

	CollisionWidth  float64
	CollisionHeight float64
}

var PickupComponent = NewComponent[Pickup]()
