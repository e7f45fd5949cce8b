package world

// State represents where the game stands after a turn.
type State int

const (
	// StateRunning - the game continues
	StateRunning State = iota
	// StatePlayerDead - the player ran out of hit points
	StatePlayerDead
	// StateVictory - every monster has been killed
	StateVictory
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePlayerDead:
		return "player_dead"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// IsOver reports whether the state is terminal.
func (s State) IsOver() bool {
	return s == StatePlayerDead || s == StateVictory
}

// Action is a single player input.
type Action int

const (
	ActionNone Action = iota
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveEast
	ActionMoveWest
	ActionRest
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionMoveNorth:
		return "move_north"
	case ActionMoveSouth:
		return "move_south"
	case ActionMoveEast:
		return "move_east"
	case ActionMoveWest:
		return "move_west"
	case ActionRest:
		return "rest"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Delta returns the row and column step for a movement action.
// ok is false for actions that do not move the player.
func (a Action) Delta() (dx, dy int, ok bool) {
	switch a {
	case ActionMoveNorth:
		return -1, 0, true
	case ActionMoveSouth:
		return 1, 0, true
	case ActionMoveEast:
		return 0, 1, true
	case ActionMoveWest:
		return 0, -1, true
	default:
		return 0, 0, false
	}
}
