package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuModel lets users choose the board size before a game.
type MenuModel struct {
	sizes      []int
	cursor     int
	best       int
	config     core.RuntimeConfig
	chosen     int  // Selected size, 0 while choosing
	scoreboard bool // Tab pressed
	quitting   bool
}

// NewMenuModel creates a size menu with the cursor on cfg.Size.
func NewMenuModel(cfg core.RuntimeConfig, best int) MenuModel {
	sizes := slices.Clone(cfg.Sizes)
	if len(sizes) == 0 {
		sizes = core.DefaultConfig().Sizes
	}
	slices.Sort(sizes)

	return MenuModel{
		sizes:  sizes,
		cursor: max(slices.Index(sizes, cfg.Size), 0),
		best:   best,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.sizes)-1)
	case MenuActionSelect:
		m.chosen = m.sizes[m.cursor]
		m.config.Size = m.chosen
		return m, tea.Quit
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		titleStyle.Render("2 0 4 8"),
		"",
		fmt.Sprintf("Best score: %d", m.best),
		"",
		"Board size:",
		"",
	}
	for i, size := range m.sizes {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%dx%d", marker, size, size))
	}
	lines = append(lines, "", hintStyle.Render("↑/↓: choose  enter: play  tab: scores  q: quit"))

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the chosen board size, or 0 if none was chosen.
func (m MenuModel) Selected() int {
	return m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config, updated by resizes and the selection.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Size            int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the size menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, best int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, best), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{
		Size:            m.Selected(),
		Config:          m.Config(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            m.IsQuitting() || (m.Selected() == 0 && !m.WantsScoreboard()),
	}, nil
}
