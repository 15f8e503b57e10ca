// Package engine implements the board-state transition engine of the 2048
// sliding-tile puzzle: move resolution, merging, random tile spawning and
// terminal-state detection. It performs no I/O; collaborators read state
// through Snapshot and react to events through observers.
package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// spawn2Prob is the probability that a spawned tile is a 2 rather than a 4.
const spawn2Prob = 0.9

// RandomSource supplies the random draws used for tile spawning.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the randomness source used for spawning.
func WithSource(src RandomSource) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithSeed seeds a private math/rand source. A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// Engine owns one game of 2048.
type Engine struct {
	rng       RandomSource
	observers []Observer

	board Board
	score int
	moves int
	won   bool
	over  bool
}

// MoveResult describes the outcome of a single Move call.
type MoveResult struct {
	Effective bool // Whether any line changed
	Gained    int  // Score added by merges
	Spawned   Tile // Tile placed after the move
	Won       bool // The win signal was raised by this move
	Over      bool // The game-over signal was raised by this move
}

// New creates an engine. The board is empty until NewGame is called.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// Subscribe registers an observer for engine events.
func (e *Engine) Subscribe(o Observer) {
	e.observers = append(e.observers, o)
}

func (e *Engine) notify(ev Event) {
	ev.Score = e.score
	for _, o := range e.observers {
		o(ev)
	}
}

// NewGame replaces the current game with an empty size x size board and
// places two random tiles. Sizes below MinBoardSize panic.
func (e *Engine) NewGame(size int) {
	if size < MinBoardSize {
		panic(fmt.Sprintf("engine: board size %d is below minimum %d", size, MinBoardSize))
	}

	e.board = NewBoard(size)
	e.score = 0
	e.moves = 0
	e.won = false
	e.over = false

	e.SpawnTile()
	e.SpawnTile()

	e.notify(Event{Kind: EventNewGame})
}

// Restore replaces the current game with a copy of b and the given score,
// without spawning. The won and over flags are derived from the board.
// Returns an error for boards that are not square or smaller than
// MinBoardSize.
func (e *Engine) Restore(b Board, score int) error {
	if b.Size() < MinBoardSize {
		return fmt.Errorf("engine: board size %d is below minimum %d", b.Size(), MinBoardSize)
	}
	for y, row := range b {
		if len(row) != b.Size() {
			return fmt.Errorf("engine: row %d has %d cells, want %d", y, len(row), b.Size())
		}
	}
	if score < 0 {
		return fmt.Errorf("engine: negative score %d", score)
	}

	e.board = b.Clone()
	e.score = score
	e.moves = 0
	e.won = e.board.HasWinTile()
	e.over = e.board.IsGameOver()

	e.notify(Event{Kind: EventNewGame})
	return nil
}

// SpawnTile places a 2 (90%) or 4 (10%) on a uniformly chosen empty cell.
// Returns false without touching the board if no cell is empty.
func (e *Engine) SpawnTile() (Tile, bool) {
	empty := e.board.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 4
	if e.rng.Float64() < spawn2Prob {
		value = 2
	}

	e.board[cell.Row][cell.Col] = value
	return Tile{Cell: cell, Value: value}, true
}

// Move slides the board in dir. Moves that change nothing, moves after
// game over and invalid directions are inert.
func (e *Engine) Move(dir Direction) MoveResult {
	if e.over || e.board == nil {
		return MoveResult{}
	}

	next, gained, changed := Slide(e.board, dir)
	if !changed {
		return MoveResult{}
	}

	e.board = next
	e.score += gained
	e.moves++

	res := MoveResult{Effective: true, Gained: gained}
	res.Spawned, _ = e.SpawnTile()

	e.notify(Event{Kind: EventMoved, Direction: dir, Gained: gained, Tile: res.Spawned})

	// A win suppresses the game-over check on the same move.
	if e.CheckWin() && !e.won {
		e.won = true
		res.Won = true
		e.notify(Event{Kind: EventWin})
	} else if e.CheckGameOver() {
		e.over = true
		res.Over = true
		e.notify(Event{Kind: EventGameOver})
	}

	return res
}

// CheckWin reports whether any cell equals WinTile.
func (e *Engine) CheckWin() bool {
	return e.board.HasWinTile()
}

// CheckGameOver reports whether the board is full with no equal neighbours.
func (e *Engine) CheckGameOver() bool {
	return e.board.IsGameOver()
}

// Board returns a copy of the grid.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// Size returns the current board dimension, 0 before the first NewGame.
func (e *Engine) Size() int {
	return e.board.Size()
}

// Score returns the running score.
func (e *Engine) Score() int {
	return e.score
}

// Won reports whether the win tile has been reached in this game.
func (e *Engine) Won() bool {
	return e.won
}

// Over reports whether the game has no moves left.
func (e *Engine) Over() bool {
	return e.over
}
