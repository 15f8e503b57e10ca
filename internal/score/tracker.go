// Package score keeps the best score across games. Persistence goes
// through a minimal key-value capability so the tracker can run on SQLite,
// in memory, or anything else that can get and set a string.
package score

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// DefaultKey is the storage key of the best score.
const DefaultKey = "bestScore"

// KV is the get/set capability the tracker persists through.
type KV interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// Tracker holds the best score, read once at construction and raised
// whenever a higher score is observed.
type Tracker struct {
	kv     KV
	key    string
	best   int
	logger *log.Logger
}

// NewTracker reads the stored best score. A missing, unreadable or
// unparseable value starts the tracker at 0.
func NewTracker(kv KV, key string, logger *log.Logger) *Tracker {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.Default()
	}

	t := &Tracker{kv: kv, key: key, logger: logger}

	raw, ok, err := kv.Get(key)
	switch {
	case err != nil:
		logger.Warn("could not read best score", "key", key, "error", err)
	case ok:
		t.best = parseBest(raw)
	}

	return t
}

// parseBest accepts a leading integer the way the browser's parseInt
// does; anything else, or a negative number, reads as 0.
func parseBest(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	v, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return v
}

// Best returns the best score known to the tracker.
func (t *Tracker) Best() int {
	return t.best
}

// Observe records score as the new best if it beats the current one.
// Returns whether the best score changed. The in-memory best is raised
// even when persisting fails.
func (t *Tracker) Observe(score int) (bool, error) {
	if score <= t.best {
		return false, nil
	}

	t.best = score
	if err := t.kv.Set(t.key, strconv.Itoa(score)); err != nil {
		return true, fmt.Errorf("score: cannot persist best score: %w", err)
	}

	t.logger.Info("new best score", "score", score)
	return true, nil
}

// Observer adapts the tracker to engine events: every effective move
// feeds the running score into Observe.
func (t *Tracker) Observer() engine.Observer {
	return func(ev engine.Event) {
		if ev.Kind != engine.EventMoved {
			return
		}
		if _, err := t.Observe(ev.Score); err != nil {
			t.logger.Error("best score not saved", "error", err)
		}
	}
}

// MemoryKV is a map-backed KV.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
