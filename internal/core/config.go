package core

// RuntimeConfig contains the settings a UI session starts with.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Size    int   // Initial board size
	Sizes   []int // Board sizes reachable with +/-
	Seed    int64 // RNG seed, 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Size:    4,
		Sizes:   []int{3, 4, 5, 6},
		Seed:    0,
	}
}
