// Package tui provides the Bubble Tea front end for 2048.
// It handles the terminal UI loop, input mapping and result recording.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/score"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Recorder stores the results of finished games.
type Recorder interface {
	SaveGame(rec storage.GameRecord) (int64, error)
}

// Model is the Bubble Tea model for one 2048 session.
type Model struct {
	engine   *engine.Engine
	tracker  *score.Tracker
	recorder Recorder // May be nil
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	showWin  bool // Win overlay is up and moves are held back
	recorded bool // Current game has been saved
	quitting bool
}

// NewModel creates a session and starts its first game.
func NewModel(cfg core.RuntimeConfig, tracker *score.Tracker, recorder Recorder, logger *log.Logger) Model {
	if cfg.Size < engine.MinBoardSize {
		cfg.Size = core.DefaultConfig().Size
	}
	return newModel(cfg, engine.New(engine.WithSeed(cfg.Seed)), tracker, recorder, logger)
}

// newModel wires a session around e and deals the first board.
func newModel(cfg core.RuntimeConfig, e *engine.Engine, tracker *score.Tracker, recorder Recorder, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	e.Subscribe(tracker.Observer())
	e.Subscribe(logEvents(logger))

	m := Model{
		engine:   e,
		tracker:  tracker,
		recorder: recorder,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		config:   cfg,
	}
	m.help.Width = cfg.ScreenW

	// Started here rather than in Init (value receiver limitation)
	e.NewGame(cfg.Size)
	logger.Info("new game", "size", cfg.Size, "best", tracker.Best())

	return m
}

// logEvents reports engine events to the session log.
func logEvents(logger *log.Logger) engine.Observer {
	return func(ev engine.Event) {
		switch ev.Kind {
		case engine.EventMoved:
			logger.Debug("move", "dir", ev.Direction, "gained", ev.Gained, "score", ev.Score)
		case engine.EventWin:
			logger.Info("reached win tile", "tile", engine.WinTile, "score", ev.Score)
		case engine.EventGameOver:
			logger.Info("game over", "score", ev.Score)
		}
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.recordGame()
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNewGame:
		m.restart(m.config.Size)

	case core.ActionSizeUp, core.ActionSizeDown:
		step := 1
		if action == core.ActionSizeDown {
			step = -1
		}
		board := config.BoardConfig{Size: m.config.Size, Sizes: m.config.Sizes}
		if next := board.NextSize(m.config.Size, step); next != m.config.Size {
			m.restart(next)
		}

	case core.ActionContinue:
		m.showWin = false

	default:
		if dir, ok := action.Direction(); ok {
			m.move(dir)
		}
	}

	return m, nil
}

// move forwards a slide to the engine unless an overlay is blocking input.
func (m *Model) move(dir engine.Direction) {
	if m.engine.Over() || m.showWin {
		return
	}

	res := m.engine.Move(dir)
	if res.Won {
		m.showWin = true
	}
	if res.Over {
		m.recordGame()
	}
}

// restart records the current game if worth keeping and deals a new board.
func (m *Model) restart(size int) {
	m.recordGame()

	m.config.Size = size
	m.engine.NewGame(size)
	m.showWin = false
	m.recorded = false
	m.logger.Info("new game", "size", size, "best", m.tracker.Best())
}

// recordGame saves the current game once. Untouched games are skipped.
func (m *Model) recordGame() {
	if m.recorded {
		return
	}
	snap := m.engine.Snapshot()
	if !snap.Over && snap.Score == 0 {
		return
	}
	m.recorded = true

	if m.recorder == nil {
		return
	}
	_, err := m.recorder.SaveGame(storage.GameRecord{
		Size:    snap.Size,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Won:     snap.Won,
		Moves:   snap.Moves,
	})
	if err != nil {
		m.logger.Error("could not save game", "error", err)
	}
}

// Snapshot returns the state of the current game.
func (m Model) Snapshot() engine.Snapshot {
	return m.engine.Snapshot()
}

// ShowingWin reports whether the win overlay is up.
func (m Model) ShowingWin() bool {
	return m.showWin
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()

	parts := []string{
		renderHeader(snap, m.tracker.Best()),
		renderBoard(snap.Board),
	}

	switch {
	case snap.Over:
		parts = append(parts, renderOverlay(engine.GameOverTitle, engine.GameOverMessage, "n: new game  q: quit"))
	case m.showWin:
		parts = append(parts, renderOverlay(engine.WinTitle, engine.WinMessage, "c: keep playing  n: new game"))
	}

	parts = append(parts, hintStyle.Render(m.help.View(m.keys)))

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)

	var b strings.Builder
	b.WriteString("\n")
	for i, line := range strings.Split(body, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(centerText(line, m.config.ScreenW))
	}
	return b.String()
}

// Run starts the Bubble Tea program for a game session.
func Run(cfg core.RuntimeConfig, tracker *score.Tracker, recorder Recorder, logger *log.Logger) error {
	model := NewModel(cfg, tracker, recorder, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
