package score

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

var errBroken = errors.New("broken")

// failingKV fails every operation.
type failingKV struct{}

func (failingKV) Get(string) (string, bool, error) { return "", false, errBroken }
func (failingKV) Set(string, string) error         { return errBroken }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestTrackerStartsAtZero(t *testing.T) {
	tr := NewTracker(NewMemoryKV(), "", quietLogger())
	if tr.Best() != 0 {
		t.Errorf("Best() = %d, want 0", tr.Best())
	}
}

func TestTrackerReadsStoredValue(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   int
	}{
		{name: "plain", stored: "1234", want: 1234},
		{name: "whitespace", stored: " 56 ", want: 56},
		{name: "trailing garbage", stored: "88px", want: 88},
		{name: "garbage", stored: "NaN", want: 0},
		{name: "negative", stored: "-10", want: 0},
		{name: "empty", stored: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			kv.Set(DefaultKey, tt.stored)

			tr := NewTracker(kv, DefaultKey, quietLogger())
			if tr.Best() != tt.want {
				t.Errorf("Best() = %d, want %d", tr.Best(), tt.want)
			}
		})
	}
}

func TestTrackerNeverDecreases(t *testing.T) {
	kv := NewMemoryKV()
	tr := NewTracker(kv, DefaultKey, quietLogger())

	steps := []struct {
		score   int
		changed bool
		best    int
	}{
		{score: 100, changed: true, best: 100},
		{score: 50, changed: false, best: 100},
		{score: 100, changed: false, best: 100},
		{score: 340, changed: true, best: 340},
		{score: 0, changed: false, best: 340},
	}

	for _, s := range steps {
		changed, err := tr.Observe(s.score)
		if err != nil {
			t.Fatalf("Observe(%d) error: %v", s.score, err)
		}
		if changed != s.changed || tr.Best() != s.best {
			t.Errorf("Observe(%d) = %v, best %d; want %v, best %d", s.score, changed, tr.Best(), s.changed, s.best)
		}
	}

	stored, ok, _ := kv.Get(DefaultKey)
	if !ok || stored != "340" {
		t.Errorf("stored best = %q (%v), want 340", stored, ok)
	}
}

func TestTrackerReadErrorStartsAtZero(t *testing.T) {
	tr := NewTracker(failingKV{}, DefaultKey, quietLogger())
	if tr.Best() != 0 {
		t.Errorf("Best() = %d, want 0", tr.Best())
	}

	changed, err := tr.Observe(10)
	if !changed {
		t.Error("Observe should still raise the in-memory best")
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("Observe error = %v, want wrapped errBroken", err)
	}
	if tr.Best() != 10 {
		t.Errorf("Best() = %d, want 10", tr.Best())
	}
}

func TestTrackerCustomKey(t *testing.T) {
	kv := NewMemoryKV()
	tr := NewTracker(kv, "best-5x5", quietLogger())
	tr.Observe(64)

	if _, ok, _ := kv.Get(DefaultKey); ok {
		t.Error("default key should be untouched")
	}
	if v, _, _ := kv.Get("best-5x5"); v != "64" {
		t.Errorf("custom key = %q, want 64", v)
	}
}

func TestTrackerObserverFollowsEngine(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set(DefaultKey, "8")
	tr := NewTracker(kv, DefaultKey, quietLogger())

	e := engine.New(engine.WithSeed(99))
	e.Subscribe(tr.Observer())
	e.NewGame(4)

	for i := range 200 {
		e.Move(engine.Directions[i%len(engine.Directions)])
		if e.Over() {
			break
		}
	}

	want := max(8, e.Score())
	if tr.Best() != want {
		t.Errorf("Best() = %d, want %d (score %d)", tr.Best(), want, e.Score())
	}

	// A fresh game does not lower the best.
	e.NewGame(4)
	if tr.Best() != want {
		t.Errorf("Best() after new game = %d, want %d", tr.Best(), want)
	}
}
