package component

// Input stores the per-frame key state for an entity. Left/Right/Up/Down
// mirror the held arrow keys; JumpPressed is the just-pressed edge of Up.
// Down is tracked but currently drives nothing.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
