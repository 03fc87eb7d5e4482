package evo

import (
	"errors"
	"fmt"
	"math/rand"

	"evogene/internal/model"
)

// BinaryInit samples each element uniformly from {0, 1}. This is the
// default initializer for bit-vector genomes.
type BinaryInit struct{}

func (BinaryInit) Name() string {
	return "binary"
}

func (BinaryInit) NewGenome(rng *rand.Rand, size int) (model.Vector, error) {
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("genome size must be > 0: %d", size)
	}

	genome := make(model.Vector, size)
	for i := range genome {
		genome[i] = float64(rng.Intn(2))
	}
	return genome, nil
}

// ZeroInit yields the all-zero genome. It reproduces the reference
// initializer, whose integer sampling range collapses to a single value;
// kept selectable for callers that depend on that starting point.
type ZeroInit struct{}

func (ZeroInit) Name() string {
	return "zeros"
}

func (ZeroInit) NewGenome(_ *rand.Rand, size int) (model.Vector, error) {
	if size <= 0 {
		return nil, fmt.Errorf("genome size must be > 0: %d", size)
	}
	return make(model.Vector, size), nil
}
