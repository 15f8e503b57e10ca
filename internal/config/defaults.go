package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size:  4,
			Sizes: []int{3, 4, 5, 6},
		},
		Storage: StorageConfig{
			DBPath:       "~/.t2048/t2048.db",
			BestScoreKey: "bestScore",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
