package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

type fakeHistory struct {
	games map[int][]storage.GameRecord
}

func (f fakeHistory) TopGames(size, limit int) ([]storage.GameRecord, error) {
	games := f.games[size]
	if len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}

func (f fakeHistory) Sizes() ([]int, error) {
	var sizes []int
	for s := range f.games {
		sizes = append(sizes, s)
	}
	return sizes, nil
}

func (f fakeHistory) Stats(size int) (*storage.GameStats, error) {
	stats := &storage.GameStats{Size: size}
	for _, g := range f.games[size] {
		stats.GamesCount++
		stats.HighScore = max(stats.HighScore, g.Score)
	}
	return stats, nil
}

func newFakeHistory() fakeHistory {
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	return fakeHistory{games: map[int][]storage.GameRecord{
		4: {
			{ID: 2, Size: 4, Score: 20480, MaxTile: 2048, Won: true, Moves: 950, CreatedAt: now},
			{ID: 1, Size: 4, Score: 1200, MaxTile: 128, Moves: 140, CreatedAt: now},
		},
		6: {
			{ID: 3, Size: 6, Score: 300, MaxTile: 32, Moves: 60, CreatedAt: now},
		},
	}}
}

func pressScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T, want ScoreboardModel", next)
	}
	return nm
}

func TestScoreboardSizes(t *testing.T) {
	m := NewScoreboardModel(newFakeHistory(), []int{4, 3}, 100, 30)

	want := []int{3, 4, 6}
	if len(m.sizes) != len(want) {
		t.Fatalf("sizes = %v, want %v", m.sizes, want)
	}
	for i := range want {
		if m.sizes[i] != want[i] {
			t.Fatalf("sizes = %v, want %v", m.sizes, want)
		}
	}
	if m.CurrentSize() != 3 || len(m.games) != 0 {
		t.Errorf("expected empty first tab for 3x3, got size %d with %d games", m.CurrentSize(), len(m.games))
	}
}

func TestScoreboardSwitchSize(t *testing.T) {
	m := NewScoreboardModel(newFakeHistory(), []int{3, 4}, 100, 30)

	m = pressScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.CurrentSize() != 4 || len(m.games) != 2 {
		t.Fatalf("after tab: size %d, %d games", m.CurrentSize(), len(m.games))
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - 4x4", "20480", "won", "Games: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = pressScoreboard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = pressScoreboard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.CurrentSize() != 6 {
		t.Errorf("shift+tab should wrap to the last size, got %d", m.CurrentSize())
	}
}

func TestScoreboardNarrowLayout(t *testing.T) {
	m := NewScoreboardModel(newFakeHistory(), nil, 60, 30)
	if m.wide() {
		t.Fatal("sidebar should be hidden on narrow screens")
	}
	if !strings.Contains(m.View(), "4x4") {
		t.Error("narrow layout should render size tabs")
	}

	m = pressScoreboard(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.wide() {
		t.Error("sidebar should appear after widening")
	}
}

func TestScoreboardWithoutHistory(t *testing.T) {
	m := NewScoreboardModel(nil, []int{4}, 100, 30)

	if !strings.Contains(m.View(), "No games recorded yet") {
		t.Error("expected empty message without history")
	}

	m = pressScoreboard(t, m, runeKey('b'))
	if !m.IsGoingBack() {
		t.Error("b should go back")
	}

	m = pressScoreboard(t, NewScoreboardModel(nil, nil, 100, 30), runeKey('q'))
	if !m.IsQuitting() || m.CurrentSize() != 0 {
		t.Error("q should quit an empty scoreboard")
	}
}
