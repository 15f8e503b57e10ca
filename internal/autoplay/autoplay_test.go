package autoplay

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

func TestChoosePriority(t *testing.T) {
	p := Player{}

	tests := []struct {
		name  string
		board engine.Board
		want  engine.Direction
		ok    bool
	}{
		{
			name:  "down first",
			board: engine.Board{{2, 0}, {0, 0}},
			want:  engine.Down,
			ok:    true,
		},
		{
			name:  "left when down is blocked",
			board: engine.Board{{0, 0}, {0, 2}},
			want:  engine.Left,
			ok:    true,
		},
		{
			name:  "right when down and left are blocked",
			board: engine.Board{{0, 0}, {2, 0}},
			want:  engine.Right,
			ok:    true,
		},
		{
			name:  "stuck",
			board: engine.Board{{2, 4}, {4, 2}},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Choose(tt.board)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Choose() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPlayIsDeterministic(t *testing.T) {
	p := Player{}

	a := p.Play(engine.New(engine.WithSeed(2048)), 4)
	b := p.Play(engine.New(engine.WithSeed(2048)), 4)

	if !a.Snapshot.Board.Equal(b.Snapshot.Board) || a.Snapshot.Score != b.Snapshot.Score {
		t.Errorf("same seed produced different games:\n%v\n---\n%v", a.Snapshot.Board, b.Snapshot.Board)
	}
	if a.Outcome != OutcomeOver {
		t.Errorf("unlimited play should end in game over, got %s", a.Outcome)
	}
	if a.Snapshot.Moves == 0 || a.Snapshot.Score == 0 {
		t.Errorf("no progress made: %+v", a.Snapshot)
	}
}

func TestPlayMoveLimit(t *testing.T) {
	p := Player{MaxMoves: 5}

	res := p.Play(engine.New(engine.WithSeed(7)), 4)
	if res.Snapshot.Moves > 5 {
		t.Errorf("made %d moves, limit is 5", res.Snapshot.Moves)
	}
	if res.Outcome == OutcomeWon {
		t.Error("cannot win in five moves")
	}
}

// fourSource always picks the first empty cell and spawns a 4.
type fourSource struct{}

func (fourSource) Intn(int) int     { return 0 }
func (fourSource) Float64() float64 { return 0.95 }

func TestRunWinThenLockedIsWon(t *testing.T) {
	e := engine.New(engine.WithSource(fourSource{}))
	// Left makes 2048 and the spawned 4 fills the last cell:
	// {{2048, 4}, {4, 2}} has no move left but a win never raises game over.
	if err := e.Restore(engine.Board{{1024, 1024}, {4, 2}}, 0); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	res := Player{}.Run(e)

	if res.Outcome != OutcomeWon {
		t.Errorf("Outcome = %s, want %s", res.Outcome, OutcomeWon)
	}
	if res.Snapshot.Over || res.Snapshot.Moves != 1 {
		t.Errorf("snapshot = %+v", res.Snapshot)
	}
}

func TestRunStuckWithoutWinIsStopped(t *testing.T) {
	e := engine.New(engine.WithSource(fourSource{}))
	// Only up is listed and nothing can move up.
	if err := e.Restore(engine.Board{{2, 4}, {0, 0}}, 0); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	res := Player{Priority: []engine.Direction{engine.Up}}.Run(e)
	if res.Outcome != OutcomeStopped {
		t.Errorf("Outcome = %s, want %s", res.Outcome, OutcomeStopped)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    []engine.Direction
		wantErr bool
	}{
		{in: "down,left,right,up", want: DefaultPriority},
		{in: " Up , left", want: []engine.Direction{engine.Up, engine.Left}},
		{in: "right", want: []engine.Direction{engine.Right}},
		{in: "down,down", wantErr: true},
		{in: "down,d", wantErr: true},
		{in: "", wantErr: true},
		{in: "left,", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q) error: %v", tt.in, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
