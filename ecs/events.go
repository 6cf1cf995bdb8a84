package ecs

// Event is a typed payload posted by systems during an update.
type Event struct {
	Type string
	Data any
}

const (
	// EventCoinCollected fires once per coin the player overlaps in a tick.
	EventCoinCollected = "coin_collected"
	// EventJumpFired fires on the tick the jump impulse is applied.
	EventJumpFired = "jump_fired"
)

// CoinCollected is the payload for EventCoinCollected.
type CoinCollected struct {
	Coin  Entity
	Score int
}

// EventQueue is a FIFO drained once per frame by the game loop.
type EventQueue struct {
	items []Event
}

// Push appends an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
