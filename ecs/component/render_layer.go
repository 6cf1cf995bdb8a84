package component

// RenderLayer orders sprite drawing; lower indices draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
