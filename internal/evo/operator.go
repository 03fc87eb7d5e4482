package evo

import (
	"math/rand"

	"evogene/internal/model"
)

// Crossover combines two parent genomes into one child genome.
type Crossover interface {
	Name() string
	Apply(rng *rand.Rand, p1, p2 model.Vector) (model.Vector, error)
}

// Mutation perturbs a single genome independent of other genomes.
type Mutation interface {
	Name() string
	Apply(rng *rand.Rand, genome model.Vector) (model.Vector, error)
}

// Initializer produces the genomes the first parent set starts from.
type Initializer interface {
	Name() string
	NewGenome(rng *rand.Rand, size int) (model.Vector, error)
}
