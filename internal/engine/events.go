package engine

// Overlay texts shown when a game reaches a terminal state.
const (
	WinTitle        = "You Win!"
	WinMessage      = "Congratulations! You reached 2048!"
	GameOverTitle   = "Game Over!"
	GameOverMessage = "No more moves available. Try again!"
)

// EventKind identifies what happened inside the engine.
type EventKind int

const (
	EventNewGame EventKind = iota
	EventMoved
	EventWin
	EventGameOver
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNewGame:
		return "new_game"
	case EventMoved:
		return "moved"
	case EventWin:
		return "win"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is delivered to observers after the engine state has changed.
type Event struct {
	Kind      EventKind
	Direction Direction // EventMoved only
	Gained    int       // Score gained by the move (EventMoved only)
	Score     int       // Running score after the change
	Tile      Tile      // Spawned tile (EventMoved only)
}

// Observer receives engine events. Observers run synchronously inside
// the engine call that raised the event.
type Observer func(Event)
