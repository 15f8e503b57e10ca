package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	minWidthForSidebar = 80  // Narrower screens get tabs instead of a sidebar
	sidebarWidth       = 20
	maxScores          = 100 // Games loaded per board size
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	activeTabStyle = headingStyle.
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	emptyStyle = hintStyle.
			Italic(true).
			Padding(2, 4)
)

// GameHistory is the read side of the game store.
type GameHistory interface {
	TopGames(size, limit int) ([]storage.GameRecord, error)
	Sizes() ([]int, error)
	Stats(size int) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextSize key.Binding
	PrevSize key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSize, k.PrevSize, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextSize, k.PrevSize}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextSize: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next board")),
		PrevSize: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev board")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows recorded games with one tab per board size.
type ScoreboardModel struct {
	history GameHistory // May be nil
	sizes   []int
	current int // Index into sizes
	games   []storage.GameRecord
	stats   *storage.GameStats
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
	quit    bool
	back    bool
}

// NewScoreboardModel creates a scoreboard over the configured sizes plus
// every size that has recorded games.
func NewScoreboardModel(history GameHistory, sizes []int, width, height int) ScoreboardModel {
	all := slices.Clone(sizes)
	if history != nil {
		if played, err := history.Sizes(); err == nil {
			all = append(all, played...)
		}
	}
	slices.Sort(all)

	m := ScoreboardModel{
		history: history,
		sizes:   slices.Compact(all),
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = newGamesTable(m.tableWidth(), m.height)
	m.reload()

	return m
}

// newGamesTable builds the games table for the available space.
func newGamesTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Result", Width: 6},
		{Title: "Date", Width: 12},
	}

	// Spare width goes to the date column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := width - used; spare > 0 {
		columns[len(columns)-1].Width = min(12+spare, 20)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)), // Room for title, stats and help
		table.WithStyles(styles),
	)
}

// wide reports whether the sidebar layout fits.
func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) tableWidth() int {
	w := m.width - 4
	if m.wide() {
		w -= sidebarWidth + 3
	}
	return w
}

// CurrentSize returns the board size being shown, 0 if there is none.
func (m ScoreboardModel) CurrentSize() int {
	if len(m.sizes) == 0 {
		return 0
	}
	return m.sizes[m.current]
}

// reload fetches games and stats for the current size.
func (m *ScoreboardModel) reload() {
	m.games, m.stats = nil, nil

	if size := m.CurrentSize(); size > 0 && m.history != nil {
		if games, err := m.history.TopGames(size, maxScores); err == nil {
			m.games = games
		}
		if stats, err := m.history.Stats(size); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.games))
	for i, g := range m.games {
		result := "lost"
		if g.Won {
			result = "won"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(g.Score),
			strconv.Itoa(g.MaxTile),
			strconv.Itoa(g.Moves),
			result,
			g.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves to the next or previous size, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	n := len(m.sizes)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextSize):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevSize):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newGamesTable(m.tableWidth(), m.height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	title := "HIGH SCORES"
	if size := m.CurrentSize(); size > 0 {
		title += " - " + sizeLabel(size)
	}

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", panelStyle.Render(m.content()))
	} else {
		body = centerText(m.tabs(), m.width) + "\n\n" + centerText(panelStyle.Render(m.content()), m.width)
	}

	return strings.Join([]string{
		centerText(headingStyle.Render(title), m.width),
		"",
		body,
		hintStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

func sizeLabel(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}

// sidebar lists the board sizes with the current one highlighted.
func (m ScoreboardModel) sidebar() string {
	lines := []string{"Boards", strings.Repeat("─", sidebarWidth-4)}
	for i, size := range m.sizes {
		if i == m.current {
			lines = append(lines, headingStyle.Render("> "+sizeLabel(size)))
		} else {
			lines = append(lines, "  "+sizeLabel(size))
		}
	}
	return panelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// tabs renders the size tabs, or just the current size when they do not fit.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.sizes))
	for i, size := range m.sizes {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(sizeLabel(size))
		} else {
			tabs[i] = hintStyle.Render(" " + sizeLabel(size) + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.sizes) > 0 {
		return "< " + sizeLabel(m.CurrentSize()) + " >"
	}
	return line
}

// content renders stats and the games table, or a hint when empty.
func (m ScoreboardModel) content() string {
	if len(m.games) == 0 {
		return emptyStyle.Render("No games recorded yet.\nPlay a game to set a high score!")
	}

	stats := ""
	if s := m.stats; s != nil && s.GamesCount > 0 {
		stats = fmt.Sprintf("Games: %d  Wins: %d  High: %d  Avg: %.0f  Best tile: %d",
			s.GamesCount, s.Wins, s.HighScore, s.AvgScore, s.BestTile)
	}
	return lipgloss.JoinVertical(lipgloss.Left, stats, "", m.table.View())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(history GameHistory, sizes []int, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(history, sizes, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
