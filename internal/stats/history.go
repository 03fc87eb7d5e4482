package stats

import (
	"sync"

	"evogene/internal/model"
)

// History is an in-memory record of per-generation summaries. It is safe
// for concurrent use so a caller may read it while a run is in progress.
type History struct {
	mu      sync.RWMutex
	entries []model.GenerationStats
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(s model.GenerationStats) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, s)
}

// All returns a copy of every recorded summary in append order.
func (h *History) All() []model.GenerationStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]model.GenerationStats, len(h.entries))
	copy(out, h.entries)
	return out
}

// Last returns the most recent summary, if any.
func (h *History) Last() (model.GenerationStats, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return model.GenerationStats{}, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}
