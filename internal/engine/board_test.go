package engine

import "testing"

func TestIsGameOver(t *testing.T) {
	// Board with no empty cells and no possible merges
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if !board.IsGameOver() {
		t.Error("Board with no moves should be game over")
	}

	// Board with no empty cells but possible merges
	boardWithMerge := Board{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if boardWithMerge.IsGameOver() {
		t.Error("Board with possible merge should not be game over")
	}

	// Vertical neighbours count as well
	boardWithVerticalMerge := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 16},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if boardWithVerticalMerge.IsGameOver() {
		t.Error("Board with vertical merge should not be game over")
	}

	// Board with empty cells, even with no equal neighbours
	boardWithEmpty := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	}

	if boardWithEmpty.IsGameOver() {
		t.Error("Board with empty cell should not be game over")
	}
}

func TestHasWinTile(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{name: "empty", board: NewBoard(4), want: false},
		{name: "win tile", board: Board{{0, 0}, {2048, 0}}, want: true},
		{name: "only larger tile", board: Board{{4096, 0}, {0, 0}}, want: false},
		{name: "below threshold", board: Board{{1024, 1024}, {512, 2}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.HasWinTile(); got != tt.want {
				t.Errorf("HasWinTile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := board.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := board.EmptyCells()
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Cell{Row: 0, Col: 1}) || cells[7] != (Cell{Row: 3, Col: 2}) {
		t.Errorf("EmptyCells not in row-major order: %v", cells)
	}
}

func TestBoardCloneAndEqual(t *testing.T) {
	b := Board{{2, 0}, {0, 4}}
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c[0][0] = 8
	if b[0][0] != 2 {
		t.Error("clone shares rows with original")
	}
	if b.Equal(c) {
		t.Error("boards with different values should not be equal")
	}
	if b.Equal(NewBoard(3)) {
		t.Error("boards with different sizes should not be equal")
	}
}

func TestBoardString(t *testing.T) {
	b := Board{
		{2, 0, 128},
		{0, 16, 0},
		{4, 0, 0},
	}

	want := "  2   . 128\n" +
		"  .  16   .\n" +
		"  4   .   ."
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
