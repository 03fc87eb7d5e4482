package evo

import (
	"github.com/google/uuid"

	"evogene/internal/codec"
	"evogene/internal/model"
)

// MatrixEvolver runs the vector engine over genomes that are logically a
// list of fixed-shape matrices. It composes an Evolver with a Reshaper and
// converts at the boundary: spawned vectors are decoded to matrices, and
// evaluated matrices are encoded back before entering the ledger.
type MatrixEvolver struct {
	*Evolver
	reshaper *codec.Reshaper
}

// NewMatrixEvolver derives the flat genome size from the declared shapes;
// any Size set on cfg is ignored.
func NewMatrixEvolver(shapes [][]int, cfg Config) (*MatrixEvolver, error) {
	reshaper, err := codec.NewReshaper(shapes...)
	if err != nil {
		return nil, err
	}
	cfg.Size = reshaper.TotalElems()

	evolver, err := NewEvolver(cfg)
	if err != nil {
		return nil, err
	}
	return &MatrixEvolver{Evolver: evolver, reshaper: reshaper}, nil
}

// SpawnChild produces a new candidate as shaped matrices.
func (m *MatrixEvolver) SpawnChild() ([]model.Matrix, error) {
	vec, err := m.Evolver.SpawnChild()
	if err != nil {
		return nil, err
	}
	return m.reshaper.Split(vec)
}

// AddChild encodes the matrices back to a flat vector and records it for
// the current generation.
func (m *MatrixEvolver) AddChild(matrices []model.Matrix, priority float64) (uuid.UUID, error) {
	vec, err := m.reshaper.Join(matrices)
	if err != nil {
		return uuid.Nil, err
	}
	return m.Evolver.AddChild(vec, priority)
}

// ParentMatrices returns the current parent set decoded to shaped matrices.
func (m *MatrixEvolver) ParentMatrices() ([][]model.Matrix, error) {
	parents := m.Evolver.Parents()
	out := make([][]model.Matrix, 0, len(parents))
	for _, p := range parents {
		matrices, err := m.reshaper.Split(p)
		if err != nil {
			return nil, err
		}
		out = append(out, matrices)
	}
	return out, nil
}
