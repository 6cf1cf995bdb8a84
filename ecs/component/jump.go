package component

// JumpMode selects how a grounded jump press becomes an impulse.
type JumpMode string

const (
	// JumpImpulse applies the jump velocity on the press itself.
	JumpImpulse JumpMode = "impulse"
	// JumpSquish charges through the six squish poses first and applies the
	// velocity when the final pose is reached.
	JumpSquish JumpMode = "squish"
)

const (
	JumpPoseFirst = 1
	JumpPoseLast  = 6
)

// Jump holds the jump tuning and the squish pose machine. Pose cycles
// JumpPoseFirst..JumpPoseLast while Charging; reaching the last pose fires
// the impulse exactly once and resets the cycle.
type Jump struct {
	Mode      JumpMode
	JumpSpeed float64

	Pose     int
	Charging bool
}

var JumpComponent = NewComponent[Jump]()
