// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Pick a board size and play
//	t2048 scores             - Show recorded games and the best score
//	t2048 scoreboard         - Browse recorded games interactively
//	t2048 autoplay           - Play a seeded game headlessly
//	t2048 config             - Print the default configuration
//
// Global flags:
//
//	--config <path>    - Use a specific config file
//	--db <path>        - Set database path (default from config: ~/.t2048/t2048.db)
//	--seed <value>     - Set RNG seed for reproducible games
//	--log-level <lvl>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.
Slide the board, merge equal tiles and reach 2048.

Available commands:
  play        - Pick a board size and play
  scores      - Show recorded games
  scoreboard  - Interactive scoreboard
  autoplay    - Play a seeded game without a terminal UI
  config      - Print the default configuration

Examples:
  t2048 play
  t2048 play --size 5
  t2048 scores --size 4
  t2048 autoplay --seed 42 --moves 500`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(configCmd)
}
