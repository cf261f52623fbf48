package core

// Action is a semantic input, decoupled from physical keys.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Move paddle left
	ActionRight        // Move paddle right
	ActionStop         // Release both directions
	ActionYes          // Accept the retry prompt
	ActionNo           // Decline the retry prompt
	ActionQuit         // Leave immediately
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
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
