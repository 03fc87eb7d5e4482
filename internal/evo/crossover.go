package evo

import (
	"errors"
	"fmt"
	"math/rand"

	"evogene/internal/model"
)

// ErrLengthMismatch reports parent genomes of unequal length. The parent
// set invariant keeps lengths equal, but operators check it anyway since
// callers may apply them to arbitrary vectors.
var ErrLengthMismatch = errors.New("parent genomes differ in length")

// UniformCrossover draws each child position from either parent with equal
// probability. Both parents are treated symmetrically.
type UniformCrossover struct{}

func (UniformCrossover) Name() string {
	return "uniform"
}

func (UniformCrossover) Apply(rng *rand.Rand, p1, p2 model.Vector) (model.Vector, error) {
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if len(p1) != len(p2) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(p1), len(p2))
	}

	child := p1.Clone()
	for i := range child {
		if rng.Float64() < 0.5 {
			child[i] = p2[i]
		}
	}
	return child, nil
}
