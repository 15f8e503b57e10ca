package engine

import (
	"strconv"
	"strings"
)

// WinTile is the tile value that wins the game.
const WinTile = 2048

// MinBoardSize is the smallest supported board dimension.
const MinBoardSize = 2

// Cell addresses a single board position.
type Cell struct {
	Row, Col int
}

// Tile is a value placed at a cell.
type Tile struct {
	Cell
	Value int
}

// Board is a square grid of tile values indexed as board[row][col].
// 0 denotes an empty cell.
type Board [][]int

// NewBoard returns an empty size x size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for y := range b {
		b[y] = make([]int, size)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for y, row := range b {
		c[y] = append([]int(nil), row...)
	}
	return c
}

// Equal reports whether both boards have the same size and values.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for y := range b {
		if len(b[y]) != len(other[y]) {
			return false
		}
		for x := range b[y] {
			if b[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b Board) HasEmptyCell() bool {
	for _, row := range b {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles hold the same value.
func (b Board) HasPossibleMerge() bool {
	size := b.Size()
	for y := range size {
		for x := range size {
			val := b[y][x]
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < size-1 && b[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < size-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true if the board is full and no neighbours match.
func (b Board) IsGameOver() bool {
	return !b.HasEmptyCell() && !b.HasPossibleMerge()
}

// HasWinTile returns true if any cell holds exactly WinTile.
func (b Board) HasWinTile() bool {
	for _, row := range b {
		for _, v := range row {
			if v == WinTile {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}

// String renders the board as right-aligned columns, empty cells as dots.
func (b Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	var sb strings.Builder
	for y, row := range b {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
