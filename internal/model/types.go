package model

// Vector is a flat genome: an ordered, fixed-length sequence of numeric
// values. Under the bit-flip operator values stay in {0, 1}, but nothing
// beyond initialization and mutation enforces that.
type Vector []float64

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Matrix is one shaped block of a matrix-mode genome. Data is laid out
// row-major and must hold exactly NumElems(Shape) elements.
type Matrix struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// Len reports the number of elements held by the matrix.
func (m Matrix) Len() int {
	return len(m.Data)
}

// Clone returns an independent copy of the matrix.
func (m Matrix) Clone() Matrix {
	return Matrix{
		Shape: append([]int(nil), m.Shape...),
		Data:  append([]float64(nil), m.Data...),
	}
}

// Equal reports whether two matrices have identical shape and elements.
func (m Matrix) Equal(other Matrix) bool {
	if len(m.Shape) != len(other.Shape) || len(m.Data) != len(other.Data) {
		return false
	}
	for i := range m.Shape {
		if m.Shape[i] != other.Shape[i] {
			return false
		}
	}
	for i := range m.Data {
		if m.Data[i] != other.Data[i] {
			return false
		}
	}
	return true
}

// NumElems returns the element count implied by a shape.
func NumElems(shape []int) int {
	count := 1
	for _, dim := range shape {
		count *= dim
	}
	return count
}

// GenerationStats summarizes the priorities recorded during one generation.
// Mean and Std cover every candidate added, not just survivors.
type GenerationStats struct {
	Generation int     `json:"generation"`
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
}
