package evo

import (
	"errors"
	"math/rand"
	"testing"

	"evogene/internal/model"
)

func TestUniformCrossoverPreservesLengthAndProvenance(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p1 := make(model.Vector, 64)
	p2 := make(model.Vector, 64)
	for i := range p2 {
		p2[i] = 1
	}

	child, err := UniformCrossover{}.Apply(rng, p1, p2)
	if err != nil {
		t.Fatalf("crossover: %v", err)
	}
	if len(child) != len(p1) {
		t.Fatalf("expected length %d, got %d", len(p1), len(child))
	}

	fromP1, fromP2 := 0, 0
	for i, v := range child {
		switch v {
		case p1[i]:
			fromP1++
		case p2[i]:
			fromP2++
		default:
			t.Fatalf("element %d equals neither parent: %v", i, v)
		}
	}
	if fromP1 == 0 || fromP2 == 0 {
		t.Fatalf("expected contributions from both parents, got p1=%d p2=%d", fromP1, fromP2)
	}
}

func TestUniformCrossoverMixRatio(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	size := 1000
	p1 := make(model.Vector, size)
	p2 := make(model.Vector, size)
	for i := range p2 {
		p2[i] = 1
	}

	child, err := UniformCrossover{}.Apply(rng, p1, p2)
	if err != nil {
		t.Fatalf("crossover: %v", err)
	}
	ones := 0
	for _, v := range child {
		if v == 1 {
			ones++
		}
	}
	if ones < 400 || ones > 600 {
		t.Fatalf("expected roughly half the positions from p2, got %d of %d", ones, size)
	}
}

func TestUniformCrossoverDoesNotMutateParents(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p1 := model.Vector{0, 0, 0, 0}
	p2 := model.Vector{1, 1, 1, 1}
	if _, err := (UniformCrossover{}).Apply(rng, p1, p2); err != nil {
		t.Fatalf("crossover: %v", err)
	}
	for i := range p1 {
		if p1[i] != 0 || p2[i] != 1 {
			t.Fatal("crossover must not mutate its inputs")
		}
	}
}

func TestUniformCrossoverLengthMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := UniformCrossover{}.Apply(rng, make(model.Vector, 4), make(model.Vector, 5))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestUniformCrossoverRequiresRand(t *testing.T) {
	if _, err := (UniformCrossover{}).Apply(nil, model.Vector{0}, model.Vector{1}); err == nil {
		t.Fatal("expected error for nil random source")
	}
}
