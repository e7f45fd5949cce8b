package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rascal/internal/world"
)

// runeActions maps the vi-style movement keys.
var runeActions = map[rune]world.Action{
	'h': world.ActionMoveWest,
	'j': world.ActionMoveSouth,
	'k': world.ActionMoveNorth,
	'l': world.ActionMoveEast,
	'.': world.ActionRest,
	'q': world.ActionQuit,
}

// ActionForKey maps a key press to a player action.
// ok is false for keys with no binding.
func ActionForKey(ev *tcell.EventKey) (action world.Action, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return world.ActionQuit, true
	case tcell.KeyUp:
		return world.ActionMoveNorth, true
	case tcell.KeyDown:
		return world.ActionMoveSouth, true
	case tcell.KeyLeft:
		return world.ActionMoveWest, true
	case tcell.KeyRight:
		return world.ActionMoveEast, true
	case tcell.KeyRune:
		action, ok = runeActions[ev.Rune()]
		return action, ok
	}
	return world.ActionNone, false
}
