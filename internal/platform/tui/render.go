package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	minCellWidth = 6 // Narrowest tile, fits "2048" with padding
	cellPadding  = 2
)

// tileColors maps tile values to background/foreground pairs.
var tileColors = map[int][2]string{
	2:    {"255", "238"},
	4:    {"230", "238"},
	8:    {"215", "231"},
	16:   {"209", "231"},
	32:   {"203", "231"},
	64:   {"196", "231"},
	128:  {"228", "238"},
	256:  {"227", "238"},
	512:  {"226", "238"},
	1024: {"220", "231"},
	2048: {"214", "231"},
}

var (
	emptyTileStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("250"))
	superTileStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("231")).
			Bold(true)
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245"))
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))
	statStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("231"))
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 2).
			Align(lipgloss.Center)
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tileStyle returns the style for a tile value.
func tileStyle(value int) lipgloss.Style {
	if value == 0 {
		return emptyTileStyle
	}
	c, ok := tileColors[value]
	if !ok {
		return superTileStyle
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c[0])).
		Foreground(lipgloss.Color(c[1])).
		Bold(true)
}

// cellWidth returns the tile width that fits the largest value on the board.
func cellWidth(maxTile int) int {
	return max(minCellWidth, len(strconv.Itoa(maxTile))+cellPadding)
}

// renderBoard draws the grid with one coloured block per cell.
func renderBoard(b engine.Board) string {
	w := cellWidth(b.MaxTile())

	rows := make([]string, 0, len(b))
	for _, row := range b {
		cells := make([]string, 0, len(row))
		for x, v := range row {
			label := ""
			if v != 0 {
				label = strconv.Itoa(v)
			}
			style := tileStyle(v).
				Width(w).
				Height(3).
				Align(lipgloss.Center, lipgloss.Center)
			if x < len(row)-1 {
				style = style.MarginRight(1)
			}
			cells = append(cells, style.Render(label))
		}
		// Cells are multi-line blocks, so rows are joined side by side
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHeader draws the title and score counters.
func renderHeader(snap engine.Snapshot, best int) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("2048"),
		"  ",
		statStyle.Render(fmt.Sprintf("SCORE %d", snap.Score)),
		" ",
		statStyle.Render(fmt.Sprintf("BEST %d", best)),
		" ",
		statStyle.Render(fmt.Sprintf("%dx%d", snap.Size, snap.Size)),
	)
}

// renderOverlay draws the terminal-state message box.
func renderOverlay(title, message, hint string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		message,
		hintStyle.Render(hint),
	)
	return overlayStyle.Render(body)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
