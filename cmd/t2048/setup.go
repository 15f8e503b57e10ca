package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/score"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// loadConfig loads the config file and applies command line overrides.
// Exits on invalid configuration.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger on w at the configured level.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	logger, err := logging.New(w, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// openStore opens the database. On failure the game continues with an
// in-memory best score and no history.
func openStore(cfg config.Config, logger *log.Logger) (*storage.Store, score.KV) {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("continuing without storage", "path", cfg.Storage.DBPath, "error", err)
		return nil, score.NewMemoryKV()
	}
	return store, store
}

// validateSize rejects board sizes the engine cannot play.
func validateSize(size int) {
	if size < config.MinBoardSize {
		fmt.Fprintf(os.Stderr, "Error: board size must be at least %d, got %d\n", config.MinBoardSize, size)
		os.Exit(1)
	}
}

// terminalSize returns the terminal dimensions, or 80x24 when unknown.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
