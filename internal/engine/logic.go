package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every move direction in a fixed order.
var Directions = []Direction{Up, Down, Left, Right}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection converts a direction name such as "left" or "Up" into a
// Direction. Only full names are accepted.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// SlideAndMerge slides a single line towards index 0 and merges equal
// neighbours. The input is not modified.
// Returns the new line (same length as the input) and the score gained.
func SlideAndMerge(line []int) (result []int, score int) {
	result = make([]int, len(line))
	writePos := 0
	mergeable := false // whether result[writePos-1] may still absorb a tile

	for _, v := range line {
		if v == 0 {
			continue
		}

		if mergeable && result[writePos-1] == v {
			// Merge with previous tile; the result cannot merge again
			result[writePos-1] *= 2
			score += result[writePos-1]
			mergeable = false
			continue
		}

		result[writePos] = v
		writePos++
		mergeable = true
	}

	return result, score
}

// lineCells returns the coordinates of line i in the order tiles travel
// towards when moving in dir. Left and up read rows/columns forwards,
// right and down read the same lines backwards, so every direction shares
// the same slide semantics.
func lineCells(size int, dir Direction, i int) []Cell {
	cells := make([]Cell, size)
	for k := range size {
		switch dir {
		case Left:
			cells[k] = Cell{Row: i, Col: k}
		case Right:
			cells[k] = Cell{Row: i, Col: size - 1 - k}
		case Up:
			cells[k] = Cell{Row: k, Col: i}
		case Down:
			cells[k] = Cell{Row: size - 1 - k, Col: i}
		}
	}
	return cells
}

// Slide performs a move in the given direction on a copy of board.
// Returns the new board, score gained, and whether the board changed.
// An invalid direction leaves the board unchanged.
func Slide(board Board, dir Direction) (Board, int, bool) {
	next := board.Clone()
	if !dir.Valid() {
		return next, 0, false
	}

	size := board.Size()
	totalScore := 0
	changed := false
	line := make([]int, size)

	for i := range size {
		cells := lineCells(size, dir, i)
		for k, c := range cells {
			line[k] = board[c.Row][c.Col]
		}

		slid, score := SlideAndMerge(line)
		totalScore += score

		for k, c := range cells {
			if next[c.Row][c.Col] != slid[k] {
				changed = true
			}
			next[c.Row][c.Col] = slid[k]
		}
	}

	return next, totalScore, changed
}
