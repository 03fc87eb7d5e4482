package evo

import (
	"errors"
	"math/rand"

	"evogene/internal/model"
)

// FlipBit flips each position independently with probability 1/len(genome),
// replacing a value v with 1-v. The expected number of flips per genome is
// one. Only meaningful for {0, 1}-valued elements.
type FlipBit struct{}

func (FlipBit) Name() string {
	return "flip_bit"
}

func (FlipBit) Apply(rng *rand.Rand, genome model.Vector) (model.Vector, error) {
	if rng == nil {
		return nil, errors.New("random source is required")
	}

	mutated := genome.Clone()
	if len(mutated) == 0 {
		return mutated, nil
	}
	rate := 1.0 / float64(len(mutated))
	for i := range mutated {
		if rng.Float64() < rate {
			mutated[i] = 1 - mutated[i]
		}
	}
	return mutated, nil
}
