package component

// TTL destroys the entity after Frames update ticks.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
