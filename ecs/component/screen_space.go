package component

// ScreenSpace marks an entity as drawn in screen coordinates, ignoring the
// camera offset (HUD elements).
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
