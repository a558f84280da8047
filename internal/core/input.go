package core

// Action represents a semantic player intent, abstracted from physical keys and
// mouse buttons. The platform maps raw input to actions; the engine never sees keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - steer pointer up
	ActionDown           // S, Down arrow - steer pointer down
	ActionLeft           // A, Left arrow - steer pointer left
	ActionRight          // D, Right arrow - steer pointer right
	ActionCenter         // C - recentre pointer (stop steering)
	ActionSkill          // Space - toggle the species skill
	ActionConfirm        // Enter - start / continue from an overlay
	ActionRestart        // R key - new run after game over or victory
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
	case ActionCenter:
		return "Center"
	case ActionSkill:
		return "Skill"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
