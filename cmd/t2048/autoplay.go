package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/autoplay"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/score"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagAutoSize     int
	flagAutoMoves    int
	flagAutoRecord   bool
	flagAutoWin      bool
	flagAutoPriority string
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Play a seeded game without a terminal UI",
	Long: `Play a game headlessly. Each turn slides in the first direction of the
priority list that changes the board (default: down, left, right, up).
The same --seed always produces the same game.

Examples:
  t2048 autoplay --seed 42
  t2048 autoplay --size 5 --moves 200
  t2048 autoplay --priority left,down,right,up
  t2048 autoplay --seed 7 --record`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagAutoSize, "size", 0, "Board size (default from config)")
	autoplayCmd.Flags().IntVar(&flagAutoMoves, "moves", 0, "Stop after this many moves (0 = until game over)")
	autoplayCmd.Flags().BoolVar(&flagAutoRecord, "record", false, "Save the result and update the best score")
	autoplayCmd.Flags().BoolVar(&flagAutoWin, "stop-on-win", false, "Stop when 2048 is reached")
	autoplayCmd.Flags().StringVar(&flagAutoPriority, "priority", "down,left,right,up", "Comma separated direction order")
}

// autoplayOptions holds the resolved flags of one autoplay run.
type autoplayOptions struct {
	size     int
	seed     int64
	record   bool
	priority []engine.Direction
	maxMoves int
	stopWin  bool
}

func runAutoplay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg)

	priority, err := autoplay.ParsePriority(flagAutoPriority)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	size := cfg.Board.Size
	if flagAutoSize != 0 {
		size = flagAutoSize
	}
	validateSize(size)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := autoplayOptions{
		size:     size,
		seed:     seed,
		record:   flagAutoRecord,
		priority: priority,
		maxMoves: flagAutoMoves,
		stopWin:  flagAutoWin,
	}
	if err := playHeadless(os.Stdout, cfg, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playHeadless plays one game and prints the result to w. With record set
// the game is saved and the best score updated.
func playHeadless(w io.Writer, cfg config.Config, opts autoplayOptions, logger *log.Logger) error {
	e := engine.New(engine.WithSeed(opts.seed))

	var store *storage.Store
	if opts.record {
		var err error
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		e.Subscribe(score.NewTracker(store, cfg.Storage.BestScoreKey, logger).Observer())
	}

	player := autoplay.Player{
		Priority:  opts.priority,
		MaxMoves:  opts.maxMoves,
		StopOnWin: opts.stopWin,
	}
	res := player.Play(e, opts.size)
	snap := res.Snapshot

	fmt.Fprintln(w, snap.Board.String())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Seed:     %d\n", opts.seed)
	fmt.Fprintf(w, "Score:    %d\n", snap.Score)
	fmt.Fprintf(w, "Max tile: %d\n", snap.MaxTile)
	fmt.Fprintf(w, "Moves:    %d\n", snap.Moves)
	fmt.Fprintf(w, "Outcome:  %s\n", res.Outcome)

	if store == nil {
		return nil
	}
	id, err := store.SaveGame(storage.GameRecord{
		Size:    snap.Size,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Won:     snap.Won,
		Moves:   snap.Moves,
	})
	if err != nil {
		return err
	}
	logger.Info("game recorded", "id", id, "score", snap.Score)
	return nil
}
