// Package autoplay drives an engine without a terminal using a fixed
// direction-priority strategy.
package autoplay

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// DefaultPriority keeps large tiles in the bottom-left corner.
var DefaultPriority = []engine.Direction{engine.Down, engine.Left, engine.Right, engine.Up}

// Outcome is how an autoplayed game ended.
type Outcome string

const (
	OutcomeWon     Outcome = "won"
	OutcomeOver    Outcome = "game_over"
	OutcomeStopped Outcome = "stopped" // Move limit reached, or no listed direction moves
)

// ParsePriority parses a comma separated list of direction names such as
// "down,left,right,up". Each direction may appear once.
func ParsePriority(s string) ([]engine.Direction, error) {
	var priority []engine.Direction
	for name := range strings.SplitSeq(s, ",") {
		dir, err := engine.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("autoplay: %w", err)
		}
		if slices.Contains(priority, dir) {
			return nil, fmt.Errorf("autoplay: direction %s listed twice", dir)
		}
		priority = append(priority, dir)
	}
	return priority, nil
}

// Result summarises an autoplayed game.
type Result struct {
	Snapshot engine.Snapshot
	Outcome  Outcome
}

// Player picks moves by trying directions in priority order.
type Player struct {
	Priority  []engine.Direction
	MaxMoves  int  // 0 means no limit
	StopOnWin bool // Stop at the first win instead of playing on
}

// Choose returns the first direction in priority order that changes b.
func (p Player) Choose(b engine.Board) (engine.Direction, bool) {
	priority := p.Priority
	if len(priority) == 0 {
		priority = DefaultPriority
	}
	for _, dir := range priority {
		if _, _, changed := engine.Slide(b, dir); changed {
			return dir, true
		}
	}
	return 0, false
}

// Play starts a new game of the given size on e and plays it out.
func (p Player) Play(e *engine.Engine, size int) Result {
	e.NewGame(size)
	return p.Run(e)
}

// Run plays from the current position of e until the game ends, the move
// limit is reached or no direction in the priority list changes the board.
func (p Player) Run(e *engine.Engine) Result {
	stuck := false
	for moves := 0; p.MaxMoves == 0 || moves < p.MaxMoves; moves++ {
		dir, ok := p.Choose(e.Board())
		if !ok {
			stuck = true
			break
		}
		res := e.Move(dir)
		if res.Over || (res.Won && p.StopOnWin) {
			break
		}
	}

	return Result{Snapshot: e.Snapshot(), Outcome: outcome(e, p, stuck)}
}

// outcome classifies a finished run. A won board that locks up never
// raises game over, so it counts as won once no move is left.
func outcome(e *engine.Engine, p Player, stuck bool) Outcome {
	switch {
	case e.Over():
		return OutcomeOver
	case e.Won() && (p.StopOnWin || stuck):
		return OutcomeWon
	default:
		return OutcomeStopped
	}
}
