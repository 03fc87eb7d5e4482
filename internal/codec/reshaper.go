package codec

import (
	"errors"
	"fmt"

	"evogene/internal/model"
)

// ErrShapeMismatch reports vector lengths or matrix shapes that disagree
// with the configuration fixed at construction.
var ErrShapeMismatch = errors.New("shape mismatch")

// Reshaper maps one flat vector to an ordered list of fixed-shape matrices
// and back. Slice offsets are derived from the declared shapes at
// construction and never change, so every Split/Join round-trip is
// lossless.
type Reshaper struct {
	shapes [][]int
	counts []int
	total  int
}

// NewReshaper validates the declared shapes and precomputes per-shape
// element counts and the total vector length.
func NewReshaper(shapes ...[]int) (*Reshaper, error) {
	if len(shapes) == 0 {
		return nil, errors.New("at least one shape is required")
	}

	r := &Reshaper{
		shapes: make([][]int, 0, len(shapes)),
		counts: make([]int, 0, len(shapes)),
	}
	for i, shape := range shapes {
		if len(shape) == 0 {
			return nil, fmt.Errorf("shape %d is empty", i)
		}
		for _, dim := range shape {
			if dim <= 0 {
				return nil, fmt.Errorf("shape %d has non-positive dimension: %d", i, dim)
			}
		}
		count := model.NumElems(shape)
		r.shapes = append(r.shapes, append([]int(nil), shape...))
		r.counts = append(r.counts, count)
		r.total += count
	}
	return r, nil
}

// TotalElems is the flat vector length covering every declared shape.
func (r *Reshaper) TotalElems() int {
	return r.total
}

// NumShapes is the number of declared shapes.
func (r *Reshaper) NumShapes() int {
	return len(r.shapes)
}

// Split decodes a flat vector into freshly allocated matrices, one per
// declared shape, consuming elements left to right starting at offset 0.
func (r *Reshaper) Split(vec model.Vector) ([]model.Matrix, error) {
	if len(vec) != r.total {
		return nil, fmt.Errorf("%w: vector has %d elements, shapes require %d", ErrShapeMismatch, len(vec), r.total)
	}

	matrices := make([]model.Matrix, 0, len(r.shapes))
	idx := 0
	for i, count := range r.counts {
		data := make([]float64, count)
		copy(data, vec[idx:idx+count])
		matrices = append(matrices, model.Matrix{
			Shape: append([]int(nil), r.shapes[i]...),
			Data:  data,
		})
		idx += count
	}
	return matrices, nil
}

// Join encodes matrices back into one freshly allocated flat vector in
// declaration order.
func (r *Reshaper) Join(matrices []model.Matrix) (model.Vector, error) {
	if len(matrices) != len(r.shapes) {
		return nil, fmt.Errorf("%w: got %d matrices, want %d", ErrShapeMismatch, len(matrices), len(r.shapes))
	}

	vec := make(model.Vector, r.total)
	idx := 0
	for i, count := range r.counts {
		if matrices[i].Len() != count {
			return nil, fmt.Errorf("%w: matrix %d has %d elements, shape requires %d", ErrShapeMismatch, i, matrices[i].Len(), count)
		}
		copy(vec[idx:idx+count], matrices[i].Data)
		idx += count
	}
	return vec, nil
}
