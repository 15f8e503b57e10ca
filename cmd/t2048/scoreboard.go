package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse recorded games interactively",
	Long: `Open the interactive scoreboard with one tab per board size.

Controls:
  Tab/Right    - Next board size
  S-Tab/Left   - Previous board size
  Up/Down      - Scroll
  Esc/Q        - Close`,
	Args: cobra.NoArgs,
	Run:  runScoreboard,
}

func runScoreboard(cmd *cobra.Command, args []string) {
	if err := browseScores(loadConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func browseScores(cfg config.Config) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := terminalSize()
	_, err = tui.RunScoreboard(store, cfg.Board.Sizes, width, height)
	return err
}
