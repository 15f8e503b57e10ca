package engine

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateWin      GameStateType = "win"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of the engine state for rendering and
// determinism checks.
type Snapshot struct {
	Size    int
	Board   Board
	Score   int
	Won     bool
	Over    bool
	Moves   int // Effective moves made in this game
	MaxTile int
	State   GameStateType
}

// Snapshot returns a copy of the current game state.
func (e *Engine) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case e.won:
		state = StateWin
	case e.over:
		state = StateGameOver
	}

	return Snapshot{
		Size:    e.board.Size(),
		Board:   e.board.Clone(),
		Score:   e.score,
		Won:     e.won,
		Over:    e.over,
		Moves:   e.moves,
		MaxTile: e.board.MaxTile(),
		State:   state,
	}
}
