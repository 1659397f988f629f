package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionChargeStart          // Space down - begin charging while held by a perch
	ActionChargeRelease        // Space up - launch with the current charge
	ActionLeft                 // Left arrow - aim launches to the left
	ActionRight                // Right arrow - aim launches to the right
	ActionImpulse              // Mouse button / i - kick the angle indicator upward
	ActionRelease              // Enter - drop the egg out of the nest
	ActionTeleport             // t - debug teleport to the topmost perch
	ActionUp                   // Up arrow - menu navigation
	ActionDown                 // Down arrow - menu navigation
	ActionConfirm              // Enter - confirm selection in menu
	ActionBack                 // B, Escape - go back to menu
	ActionRestart              // R key - regenerate the level and start over
	ActionQuit                 // Q, Ctrl+C - exit game/session
	ActionPause                // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionChargeStart:
		return "ChargeStart"
	case ActionChargeRelease:
		return "ChargeRelease"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionImpulse:
		return "Impulse"
	case ActionRelease:
		return "Release"
	case ActionTeleport:
		return "Teleport"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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

// gameplayOrder is the order in which a frame's actions are applied.
// Charge release comes after charge start so a press and release landing in
// the same frame still launch.
var gameplayOrder = []Action{
	ActionPause,
	ActionRestart,
	ActionRelease,
	ActionLeft,
	ActionRight,
	ActionImpulse,
	ActionChargeStart,
	ActionChargeRelease,
	ActionTeleport,
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// Ordered returns the gameplay actions of this frame in application order.
func (f InputFrame) Ordered() []Action {
	var out []Action
	for _, a := range gameplayOrder {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
