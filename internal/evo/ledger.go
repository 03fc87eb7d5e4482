package evo

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"evogene/internal/model"
	"evogene/internal/stats"
)

var (
	// ErrEmptyGeneration is returned when statistics are requested before
	// any candidate was added in the current generation.
	ErrEmptyGeneration = errors.New("no candidates added this generation")

	// ErrInsufficientCandidates is returned when fewer candidates are
	// retained than survivors requested.
	ErrInsufficientCandidates = errors.New("not enough retained candidates")
)

// candidate pairs a genome with its caller-supplied priority. Genomes live
// inside heap entries, so evicting a candidate drops its genome with it.
type candidate struct {
	priority float64
	seq      uint64
	id       uuid.UUID
	genome   model.Vector
}

// candidateHeap is a min-heap on priority. On equal priority the earlier
// insertion is treated as smaller, which makes eviction and survivor order
// deterministic.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Ledger tracks the children of the current generation in bounded memory.
// Only the capacity highest-priority candidates are retained for selection;
// every priority seen is kept for generation statistics. Not safe for
// concurrent use.
type Ledger struct {
	capacity   int
	retained   candidateHeap
	priorities []float64
	seq        uint64
}

// NewLedger creates an empty ledger retaining at most capacity candidates.
func NewLedger(capacity int) (*Ledger, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ledger capacity must be > 0: %d", capacity)
	}
	return &Ledger{capacity: capacity}, nil
}

// Add records a child with the given priority and returns its identifier.
// Once the ledger is full a new child replaces the current minimum only if
// its priority is strictly greater; otherwise it is not retained for
// selection, though its priority still counts toward the generation stats.
// The identifier is returned regardless of retention.
func (l *Ledger) Add(genome model.Vector, priority float64) uuid.UUID {
	id := uuid.New()
	entry := candidate{priority: priority, seq: l.seq, id: id, genome: genome.Clone()}
	l.seq++
	l.priorities = append(l.priorities, priority)

	if l.retained.Len() < l.capacity {
		heap.Push(&l.retained, entry)
	} else if priority > l.retained[0].priority {
		l.retained[0] = entry
		heap.Fix(&l.retained, 0)
	}
	return id
}

// Survivors returns the k highest-priority retained genomes in descending
// priority order, breaking ties by insertion order. The returned genomes
// are copies.
func (l *Ledger) Survivors(k int) ([]model.Vector, error) {
	if k <= 0 {
		return nil, fmt.Errorf("survivor count must be > 0: %d", k)
	}
	if k > l.retained.Len() {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCandidates, k, l.retained.Len())
	}

	ranked := make([]candidate, len(l.retained))
	copy(ranked, l.retained)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].priority != ranked[j].priority {
			return ranked[i].priority > ranked[j].priority
		}
		return ranked[i].seq < ranked[j].seq
	})

	out := make([]model.Vector, 0, k)
	for _, c := range ranked[:k] {
		out = append(out, c.genome.Clone())
	}
	return out, nil
}

// Stats summarizes every priority added this generation, survivors or not.
func (l *Ledger) Stats(generation int) (model.GenerationStats, error) {
	if len(l.priorities) == 0 {
		return model.GenerationStats{}, ErrEmptyGeneration
	}
	mean, std, err := stats.Summarize(l.priorities)
	if err != nil {
		return model.GenerationStats{}, err
	}
	return model.GenerationStats{Generation: generation, Mean: mean, Std: std}, nil
}

// Len reports how many candidates are retained for selection.
func (l *Ledger) Len() int {
	return l.retained.Len()
}

// Seen reports how many candidates were added this generation.
func (l *Ledger) Seen() int {
	return len(l.priorities)
}

// Reset clears all per-generation state. The sequence counter is not
// rewound, so identifiers stay unique across generations.
func (l *Ledger) Reset() {
	l.retained = l.retained[:0]
	l.priorities = nil
}
