// Package evogene is the public surface of the generational genetic
// algorithm engine. It evolves fixed-shape numeric genomes (bit vectors,
// or matrix sets reshaped from one flat vector) across discrete
// generations using truncation selection over a bounded priority
// structure. Fitness evaluation stays with the caller.
package evogene

import (
	"fmt"

	"go.uber.org/zap"

	"evogene/internal/evo"
	"evogene/internal/model"
	"evogene/internal/stats"
)

const (
	defaultCrossoverType   = "uniform"
	defaultMutationType    = "flip_bit"
	defaultInitializerType = "binary"
)

// Core types, re-exported so callers never need the internal packages.
type (
	Vector          = model.Vector
	Matrix          = model.Matrix
	GenerationStats = model.GenerationStats

	Evolver       = evo.Evolver
	MatrixEvolver = evo.MatrixEvolver
	Runner        = evo.Runner
	RunConfig     = evo.RunConfig
	RunResult     = evo.RunResult
	Fitness       = evo.Fitness
	History       = stats.History
)

// Options selects the offspring strategies by name. The sets are closed:
// unknown names fail at construction, never silently no-op.
type Options struct {
	// CrossoverType is one of: "uniform". Defaults to "uniform".
	CrossoverType string

	// MutationType is one of: "flip_bit". Defaults to "flip_bit".
	MutationType string

	// InitializerType is one of: "binary", "zeros". Defaults to "binary".
	InitializerType string

	// Seed seeds the engine's random source.
	Seed int64

	// Logger defaults to a nop logger.
	Logger *zap.Logger
}

// NewVectorEvolver builds an engine over flat bit-vector genomes of the
// given length.
func NewVectorEvolver(size int, opts Options) (*Evolver, error) {
	cfg, err := configFromOptions(opts)
	if err != nil {
		return nil, err
	}
	cfg.Size = size
	return evo.NewEvolver(cfg)
}

// NewMatrixEvolver builds an engine over genomes shaped as the given list
// of matrices; the flat genome length is derived from the shapes.
func NewMatrixEvolver(shapes [][]int, opts Options) (*MatrixEvolver, error) {
	cfg, err := configFromOptions(opts)
	if err != nil {
		return nil, err
	}
	return evo.NewMatrixEvolver(shapes, cfg)
}

// NewRunner wraps an evolver with a generation loop driver.
func NewRunner(evolver *Evolver) (*Runner, error) {
	return evo.NewRunner(evolver)
}

func configFromOptions(opts Options) (evo.Config, error) {
	crossover, err := crossoverFromName(nameOrDefault(opts.CrossoverType, defaultCrossoverType))
	if err != nil {
		return evo.Config{}, err
	}
	mutation, err := mutationFromName(nameOrDefault(opts.MutationType, defaultMutationType))
	if err != nil {
		return evo.Config{}, err
	}
	initializer, err := initializerFromName(nameOrDefault(opts.InitializerType, defaultInitializerType))
	if err != nil {
		return evo.Config{}, err
	}
	return evo.Config{
		Crossover:   crossover,
		Mutation:    mutation,
		Initializer: initializer,
		Seed:        opts.Seed,
		Logger:      opts.Logger,
	}, nil
}

func nameOrDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func crossoverFromName(name string) (evo.Crossover, error) {
	switch name {
	case "uniform":
		return evo.UniformCrossover{}, nil
	default:
		return nil, fmt.Errorf("unsupported crossover strategy: %s", name)
	}
}

func mutationFromName(name string) (evo.Mutation, error) {
	switch name {
	case "flip_bit":
		return evo.FlipBit{}, nil
	default:
		return nil, fmt.Errorf("unsupported mutation strategy: %s", name)
	}
}

func initializerFromName(name string) (evo.Initializer, error) {
	switch name {
	case "binary":
		return evo.BinaryInit{}, nil
	case "zeros":
		return evo.ZeroInit{}, nil
	default:
		return nil, fmt.Errorf("unsupported initializer: %s", name)
	}
}
