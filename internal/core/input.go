package core

import "slices"

// Action is a player intent, decoupled from the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionRestart
	ActionQuit
	ActionPause
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:      "None",
	ActionMoveLeft:  "MoveLeft",
	ActionMoveRight: "MoveRight",
	ActionSoftDrop:  "SoftDrop",
	ActionRotate:    "Rotate",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions pressed between two ticks. It answers
// both "was X pressed" and "in what order", so a burst of keys inside one
// frame is replayed in sequence. The zero value is ready to use.
type InputFrame struct {
	pressed uint64
	order   []Action
}

func NewInputFrame() InputFrame {
	return InputFrame{}
}

func actionBit(a Action) uint64 {
	if a < 0 || a >= 64 {
		return 0
	}
	return 1 << uint(a)
}

// Set records a press. Repeats are kept in the sequence.
func (f *InputFrame) Set(a Action) {
	f.pressed |= actionBit(a)
	f.order = append(f.order, a)
}

// Has reports whether a was pressed at least once.
func (f InputFrame) Has(a Action) bool {
	return f.pressed&actionBit(a) != 0
}

// Sequence returns the presses in arrival order. The slice is reused after
// Clear, so callers that keep it must copy.
func (f InputFrame) Sequence() []Action {
	return f.order
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.pressed = 0
	f.order = f.order[:0]
}

// Clone returns a copy that does not share storage with f.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{pressed: f.pressed, order: slices.Clone(f.order)}
}
