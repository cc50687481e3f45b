package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - cursor to the previous row
	ActionDown           // S, Down arrow - cursor to the next row
	ActionLeft           // A, Left arrow - cursor to the previous base
	ActionRight          // D, Right arrow - cursor to the next base
	ActionSelect         // Space, Enter - select the base under the cursor
	ActionUndo           // U, Backspace - undo the last move
	ActionHint           // H - show the next move of a solution
	ActionRestart        // R - reload the current level
	ActionNext           // N - next level
	ActionPrev           // P - previous level
	ActionBack           // B, Escape - go back to the level picker
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionUndo:
		return "Undo"
	case ActionHint:
		return "Hint"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a screen position in cells.
type Point struct {
	X, Y int
}

// InputFrame represents the input collected during one simulation tick:
// the triggered actions plus at most one pointer click.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	click    Point
	hasClick bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer click at (x, y). A later click in the same frame
// replaces an earlier one: one point-and-click per action.
func (f *InputFrame) Click(x, y int) {
	f.click = Point{X: x, Y: y}
	f.hasClick = true
}

// Pointer returns the click recorded this frame, if any.
func (f InputFrame) Pointer() (Point, bool) {
	return f.click, f.hasClick
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	if f.hasClick {
		return false
	}
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasClick = false
	f.click = Point{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.click = f.click
	clone.hasClick = f.hasClick
	return clone
}
