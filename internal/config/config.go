// Package config provides YAML-based configuration loading and validation
// for the terminal 2048 game.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Config contains all user-tunable settings.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the board sizes offered to the player.
type BoardConfig struct {
	Size  int   `yaml:"size"`  // Default board size
	Sizes []int `yaml:"sizes"` // Sizes offered by the menu and +/- keys
}

// StorageConfig defines where persistent data lives.
type StorageConfig struct {
	DBPath       string `yaml:"db_path"`
	BestScoreKey string `yaml:"best_score_key"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log destination while the TUI owns the terminal
}

// MinBoardSize is the smallest playable board dimension.
const MinBoardSize = engine.MinBoardSize

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error

	if len(c.Board.Sizes) == 0 {
		errs = append(errs, errors.New("board.sizes must not be empty"))
	}
	for _, s := range c.Board.Sizes {
		if s < MinBoardSize {
			errs = append(errs, fmt.Errorf("board.sizes: size %d is below minimum %d", s, MinBoardSize))
		}
	}
	if c.Board.Size < MinBoardSize {
		errs = append(errs, fmt.Errorf("board.size %d is below minimum %d", c.Board.Size, MinBoardSize))
	} else if len(c.Board.Sizes) > 0 && !slices.Contains(c.Board.Sizes, c.Board.Size) {
		errs = append(errs, fmt.Errorf("board.size %d is not listed in board.sizes", c.Board.Size))
	}

	if strings.TrimSpace(c.Storage.DBPath) == "" {
		errs = append(errs, errors.New("storage.db_path must not be empty"))
	}
	if strings.TrimSpace(c.Storage.BestScoreKey) == "" {
		errs = append(errs, errors.New("storage.best_score_key must not be empty"))
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of %s", c.Log.Level, strings.Join(logLevels, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// NextSize returns the configured size after current, wrapping around.
// step is +1 or -1. A size missing from the list moves to the nearest
// listed size in the step direction.
func (b BoardConfig) NextSize(current, step int) int {
	if len(b.Sizes) == 0 {
		return current
	}
	sizes := slices.Clone(b.Sizes)
	slices.Sort(sizes)
	n := len(sizes)

	i, found := slices.BinarySearch(sizes, current)
	if !found {
		// i is where current would be inserted
		if step > 0 {
			return sizes[i%n]
		}
		return sizes[(i-1+n)%n]
	}
	return sizes[((i+step)%n+n)%n]
}
