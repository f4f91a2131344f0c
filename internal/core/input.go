package core

// Action represents a semantic player intent, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - walk left
	ActionRight           // D, Right arrow - walk right
	ActionStop            // S, Down arrow - drop the walk target
	ActionInteract        // E, Up arrow - use the nearest door, pickup or sign
	ActionFire            // Space - fire the selected gun
	ActionNextItem        // Tab - select the next inventory slot
	ActionPrevItem        // Shift+Tab - select the previous inventory slot
	ActionUse             // U - use the first consumable, such as a medkit
	ActionConfirm         // Enter - confirm a prompt
	ActionBack            // Escape - cancel a prompt
	ActionRestart         // R - start a new run after death
	ActionQuit            // Q, Ctrl+C - exit
	ActionPause           // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionInteract:
		return "Interact"
	case ActionFire:
		return "Fire"
	case ActionNextItem:
		return "NextItem"
	case ActionPrevItem:
		return "PrevItem"
	case ActionUse:
		return "Use"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one simulation frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
