package component

// ScoreTracker accumulates collected coins. Score only ever increases
// within a session; a fresh world starts it back at zero.
type ScoreTracker struct {
	Score int
}

var ScoreTrackerComponent = NewComponent[ScoreTracker]()

// ScoreCounter caches the last rendered HUD string so the text image is
// only rebuilt when the value changes.
type ScoreCounter struct {
	RenderedText string
}

var ScoreCounterComponent = NewComponent[ScoreCounter]()

type ScoreCounterIcon struct{}

var ScoreCounterIconComponent = NewComponent[ScoreCounterIcon]()

type ScoreCounterText struct{}

var ScoreCounterTextComponent = NewComponent[ScoreCounterText]()
