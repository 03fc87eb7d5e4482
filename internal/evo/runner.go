package evo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"evogene/internal/model"
	"evogene/internal/stats"
)

// Fitness scores a spawned genome. Higher is fitter. Evaluation is the
// caller's concern; the engine never computes priorities itself.
type Fitness func(ctx context.Context, genome model.Vector) (float64, error)

// RunConfig drives Runner.Run.
type RunConfig struct {
	// ChildrenPerGeneration is how many candidates are spawned and
	// evaluated before each parent update. Must be at least the parent
	// set size.
	ChildrenPerGeneration int

	// Generations is how many parent updates to perform. Stopping earlier
	// remains the caller's policy: cancel the context.
	Generations int

	// Fitness evaluates each spawned genome. Required.
	Fitness Fitness
}

// RunResult reports one completed run.
type RunResult struct {
	StatsByGeneration []model.GenerationStats
	BestByGeneration  []float64
	BestGenome        model.Vector
	BestPriority      float64
}

// Runner drives the spawn / evaluate / promote cycle for a fixed number of
// generations and records per-generation summaries.
type Runner struct {
	evolver *Evolver
	history *stats.History
	logger  *zap.Logger
}

func NewRunner(evolver *Evolver) (*Runner, error) {
	if evolver == nil {
		return nil, errors.New("evolver is required")
	}
	return &Runner{
		evolver: evolver,
		history: stats.NewHistory(),
		logger:  evolver.logger,
	}, nil
}

// History is the accumulated per-generation record across Run calls.
func (r *Runner) History() *stats.History {
	return r.history
}

func (r *Runner) Run(ctx context.Context, cfg RunConfig) (RunResult, error) {
	if cfg.Fitness == nil {
		return RunResult{}, errors.New("fitness function is required")
	}
	if cfg.Generations <= 0 {
		return RunResult{}, fmt.Errorf("generations must be > 0: %d", cfg.Generations)
	}
	if cfg.ChildrenPerGeneration < r.evolver.NumParents() {
		return RunResult{}, fmt.Errorf("children per generation must be >= %d: %d", r.evolver.NumParents(), cfg.ChildrenPerGeneration)
	}

	result := RunResult{
		StatsByGeneration: make([]model.GenerationStats, 0, cfg.Generations),
		BestByGeneration:  make([]float64, 0, cfg.Generations),
	}

	haveBest := false
	for gen := 0; gen < cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}

		generationBest := 0.0
		var generationBestGenome model.Vector
		for i := 0; i < cfg.ChildrenPerGeneration; i++ {
			child, err := r.evolver.SpawnChild()
			if err != nil {
				return RunResult{}, err
			}
			priority, err := cfg.Fitness(ctx, child)
			if err != nil {
				return RunResult{}, fmt.Errorf("evaluate child %d in generation %d: %w", i, r.evolver.Generation(), err)
			}
			if _, err := r.evolver.AddChild(child, priority); err != nil {
				return RunResult{}, err
			}
			if generationBestGenome == nil || priority > generationBest {
				generationBest = priority
				generationBestGenome = child
			}
		}

		// Stats must be read before the parent update resets the ledger.
		generationStats, err := r.evolver.GenerationStats()
		if err != nil {
			return RunResult{}, err
		}
		r.history.Append(generationStats)
		result.StatsByGeneration = append(result.StatsByGeneration, generationStats)
		result.BestByGeneration = append(result.BestByGeneration, generationBest)
		if !haveBest || generationBest > result.BestPriority {
			result.BestPriority = generationBest
			result.BestGenome = generationBestGenome.Clone()
			haveBest = true
		}

		r.logger.Info("generation complete",
			zap.Int("generation", generationStats.Generation),
			zap.Float64("best", generationBest),
			zap.Float64("mean", generationStats.Mean),
			zap.Float64("std", generationStats.Std),
		)

		if err := r.evolver.UpdateParents(); err != nil {
			return RunResult{}, err
		}
	}
	return result, nil
}
