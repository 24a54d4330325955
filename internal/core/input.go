package core

// Action represents a semantic player command, abstracted from key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionRoll           // Space, Enter - roll the dice for the current player
	ActionRestart        // R - start a new game
	ActionHelp           // ? - toggle the full help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRoll:
		return "Roll"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
