package evo

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evogene/internal/model"
)

// DefaultNumParents is the parent set size used when Config leaves it zero.
const DefaultNumParents = 2

// Config carries the knobs for a vector evolver.
type Config struct {
	// Size is the genome length. Required for the vector engine; derived
	// from the declared shapes by NewMatrixEvolver.
	Size int

	// Crossover and Mutation are the offspring operators. Required.
	Crossover Crossover
	Mutation  Mutation

	// Initializer seeds the first parent set. Defaults to BinaryInit.
	Initializer Initializer

	// NumParents is the parent set size. Defaults to DefaultNumParents.
	NumParents int

	// Seed seeds the engine's random source when Rand is nil.
	Seed int64

	// Rand overrides the seeded source, for deterministic tests.
	Rand *rand.Rand

	// Logger defaults to a nop logger.
	Logger *zap.Logger
}

// Evolver owns the current parent set and advances it one generation at a
// time: spawn children, record externally evaluated priorities, then
// promote the top candidates to parents. Not safe for concurrent use; a
// caller evaluating children in parallel must serialize AddChild.
type Evolver struct {
	cfg        Config
	rng        *rand.Rand
	logger     *zap.Logger
	parents    []model.Vector
	ledger     *Ledger
	generation int
}

// NewEvolver validates the configuration and builds the initial parent set.
func NewEvolver(cfg Config) (*Evolver, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("genome size must be > 0: %d", cfg.Size)
	}
	if cfg.Crossover == nil {
		return nil, errors.New("crossover strategy is required")
	}
	if cfg.Mutation == nil {
		return nil, errors.New("mutation strategy is required")
	}
	if cfg.NumParents == 0 {
		cfg.NumParents = DefaultNumParents
	}
	if cfg.NumParents < 2 {
		return nil, fmt.Errorf("num parents must be >= 2: %d", cfg.NumParents)
	}
	if cfg.Initializer == nil {
		cfg.Initializer = BinaryInit{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	parents := make([]model.Vector, 0, cfg.NumParents)
	for i := 0; i < cfg.NumParents; i++ {
		genome, err := cfg.Initializer.NewGenome(rng, cfg.Size)
		if err != nil {
			return nil, fmt.Errorf("initialize parent %d: %w", i, err)
		}
		if len(genome) != cfg.Size {
			return nil, fmt.Errorf("initializer %s produced %d elements, want %d", cfg.Initializer.Name(), len(genome), cfg.Size)
		}
		parents = append(parents, genome)
	}

	ledger, err := NewLedger(cfg.NumParents)
	if err != nil {
		return nil, err
	}

	return &Evolver{
		cfg:     cfg,
		rng:     rng,
		logger:  cfg.Logger,
		parents: parents,
		ledger:  ledger,
	}, nil
}

// SpawnChild produces a new candidate genome by crossing the first two
// parents and mutating the result. The caller evaluates it externally and
// hands it back through AddChild.
func (e *Evolver) SpawnChild() (model.Vector, error) {
	child, err := e.cfg.Crossover.Apply(e.rng, e.parents[0], e.parents[1])
	if err != nil {
		return nil, fmt.Errorf("crossover %s: %w", e.cfg.Crossover.Name(), err)
	}
	mutated, err := e.cfg.Mutation.Apply(e.rng, child)
	if err != nil {
		return nil, fmt.Errorf("mutation %s: %w", e.cfg.Mutation.Name(), err)
	}
	return mutated, nil
}

// AddChild records an evaluated candidate for the current generation and
// returns its identifier.
func (e *Evolver) AddChild(genome model.Vector, priority float64) (uuid.UUID, error) {
	if len(genome) != e.cfg.Size {
		return uuid.Nil, fmt.Errorf("child genome has %d elements, want %d", len(genome), e.cfg.Size)
	}
	return e.ledger.Add(genome, priority), nil
}

// UpdateParents promotes the current generation's top candidates to the
// parent set (in descending priority order), clears the ledger, and
// increments the generation counter by exactly one.
func (e *Evolver) UpdateParents() error {
	survivors, err := e.ledger.Survivors(e.cfg.NumParents)
	if err != nil {
		return fmt.Errorf("select survivors for generation %d: %w", e.generation, err)
	}
	e.parents = survivors
	e.ledger.Reset()
	e.generation++

	e.logger.Debug("parents updated",
		zap.Int("generation", e.generation),
		zap.Int("num_parents", len(e.parents)),
	)
	return nil
}

// GenerationStats summarizes the priorities of every candidate added in the
// current generation. It fails with ErrEmptyGeneration right after
// construction or UpdateParents, before any AddChild call.
func (e *Evolver) GenerationStats() (model.GenerationStats, error) {
	return e.ledger.Stats(e.generation)
}

// Generation is the zero-based counter of completed parent updates.
func (e *Evolver) Generation() int {
	return e.generation
}

// NumParents is the configured parent set size.
func (e *Evolver) NumParents() int {
	return e.cfg.NumParents
}

// Size is the genome length.
func (e *Evolver) Size() int {
	return e.cfg.Size
}

// Parents returns deep copies of the current parent set.
func (e *Evolver) Parents() []model.Vector {
	out := make([]model.Vector, 0, len(e.parents))
	for _, p := range e.parents {
		out = append(out, p.Clone())
	}
	return out
}
