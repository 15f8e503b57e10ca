// Package core holds the UI-facing vocabulary shared by the terminal
// front end: semantic actions and the runtime settings of a session.
package core

import "github.com/vovakirdan/tui-2048/internal/engine"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - slide up
	ActionDown            // S, Down arrow - slide down
	ActionLeft            // A, Left arrow - slide left
	ActionRight           // D, Right arrow - slide right
	ActionNewGame         // N, R - start a new game
	ActionSizeUp          // + - next board size
	ActionSizeDown        // - - previous board size
	ActionContinue        // C - dismiss the win overlay and keep playing
	ActionHelp            // ? - toggle full help
	ActionQuit            // Q, Ctrl+C - exit
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
	case ActionNewGame:
		return "NewGame"
	case ActionSizeUp:
		return "SizeUp"
	case ActionSizeDown:
		return "SizeDown"
	case ActionContinue:
		return "Continue"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the slide direction for a movement action.
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionUp:
		return engine.Up, true
	case ActionDown:
		return engine.Down, true
	case ActionLeft:
		return engine.Left, true
	case ActionRight:
		return engine.Right, true
	default:
		return 0, false
	}
}
