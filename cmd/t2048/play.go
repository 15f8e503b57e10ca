package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/score"
)

var flagPlaySize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048. Without --size a menu lets you pick the board size.

Controls:
  Arrows/WASD  - Slide tiles
  N/R          - New game
  +/-          - Bigger/smaller board (starts a new game)
  C            - Keep playing after reaching 2048
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Examples:
  t2048 play
  t2048 play --size 6
  t2048 play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlaySize, "size", 0, "Board size (skips the size menu)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagPlaySize != 0 {
		validateSize(flagPlaySize)
	}

	if err := playSession(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playSession runs the menu and game loop until the player quits.
func playSession(cfg config.Config) error {
	// Log to a file while the game owns the terminal
	var logOut io.Writer = io.Discard
	if logFile, err := logging.OpenFile(cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger, err := logging.New(logOut, cfg.Log.Level)
	if err != nil {
		return err
	}

	store, kv := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	tracker := score.NewTracker(kv, cfg.Storage.BestScoreKey, logger)

	var recorder tui.Recorder
	var history tui.GameHistory
	if store != nil {
		recorder = store
		history = store
	}

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Size:    cfg.Board.Size,
		Sizes:   cfg.Board.Sizes,
		Seed:    flagSeed,
	}

	// Explicit size: play a single game
	if flagPlaySize != 0 {
		rc.Size = flagPlaySize
		if err := tui.Run(rc, tracker, recorder, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}

	for {
		result, err := tui.RunMenu(rc, tracker.Best())
		if err != nil {
			return err
		}
		rc = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(history, cfg.Board.Sizes, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		rc.Size = result.Size
		if err := tui.Run(rc, tracker, recorder, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
