package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/score"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresSize  int
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded games and the best score",
	Long: `Display the top recorded games, best score first.

Examples:
  t2048 scores
  t2048 scores --size 4 --limit 20
  t2048 scores --size 3 --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", 0, "Board size to show (0 = all sizes)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete recorded games for --size (all when 0); keeps the best score")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg)

	if err := showScores(os.Stdout, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// showScores prints the top games and the best score to w, or clears
// recorded games when --clear is set.
func showScores(w io.Writer, cfg config.Config, logger *log.Logger) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearGames(flagScoresSize); err != nil {
			return err
		}
		logger.Info("cleared recorded games", "size", flagScoresSize)
		return nil
	}

	games, err := store.TopGames(flagScoresSize, flagScoresLimit)
	if err != nil {
		return err
	}

	if flagScoresSize > 0 {
		fmt.Fprintf(w, "High Scores - %dx%d\n", flagScoresSize, flagScoresSize)
	} else {
		fmt.Fprintln(w, "High Scores - all boards")
	}
	fmt.Fprintln(w)

	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048 play' to set the first high score!")
	} else {
		printGames(w, games)
	}

	if flagScoresSize > 0 && len(games) > 0 {
		if stats, err := store.Stats(flagScoresSize); err == nil {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Games: %d  Wins: %d  Average: %.0f  Best tile: %d\n",
				stats.GamesCount, stats.Wins, stats.AvgScore, stats.BestTile)
		}
	}

	tracker := score.NewTracker(store, cfg.Storage.BestScoreKey, logger)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", tracker.Best())
	return nil
}

func printGames(w io.Writer, games []storage.GameRecord) {
	fmt.Fprintf(w, "  %-4s  %-5s  %-8s  %-6s  %-6s  %-6s  %s\n", "Rank", "Board", "Score", "Tile", "Moves", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-5s  %-8s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----", "-----", "------", "----")

	for i, g := range games {
		result := "lost"
		if g.Won {
			result = "won"
		}
		board := fmt.Sprintf("%dx%d", g.Size, g.Size)
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-5s  %-8d  %-6d  %-6d  %-6s  %s\n", i+1, board, g.Score, g.MaxTile, g.Moves, result, dateStr)
	}
}
