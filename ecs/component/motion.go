package component

// MovementMode selects how held keys turn into horizontal velocity.
type MovementMode string

const (
	// MovementInstant snaps velocity to +-moveSpeed or zero.
	MovementInstant MovementMode = "instant"
	// MovementSmoothed eases an acceleration accumulator toward the held
	// direction and derives velocity from it.
	MovementSmoothed MovementMode = "smoothed"
)

// Motion carries the player's horizontal movement tuning and, in smoothed
// mode, the acceleration accumulator. Acceleration stays within [-1, 1].
type Motion struct {
	Mode         MovementMode
	MoveSpeed    float64
	AccelRate    float64
	Acceleration float64
}

var MotionComponent = NewComponent[Motion]()
