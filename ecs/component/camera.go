package component

// Camera follows the target entity, clamped so the offset never drops
// below MinX/MinY on either axis.
type Camera struct {
	TargetName string
	MinX       float64
	MinY       float64
}

var CameraComponent = NewComponent[Camera]()
