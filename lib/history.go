package lib

import "sync"

const historySize = 100

type HistoryEntry struct {
	Expression string
	Value      float64
}

// History keeps the most recent evaluations, oldest first, evicting from
// the front once full. It lives entirely in memory: the engine persists
// nothing between runs.
type History struct {
	mu      sync.RWMutex
	entries []HistoryEntry
	maxSize int
}

func NewHistory() *History {
	return &History{
		entries: make([]HistoryEntry, 0, historySize),
		maxSize: historySize,
	}
}

func (h *History) Add(expression string, value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == h.maxSize {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, HistoryEntry{Expression: expression, Value: value})
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	entries := make([]HistoryEntry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
