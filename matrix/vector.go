// SPDX-License-Identifier: MIT

// Package matrix - Vector: one-dimensional dense storage.
//
// Vector mirrors Dense semantics for a single index: fixed length at creation,
// bounds-checked accessors, explicit Clone, the same NaN/Inf policy. It
// converts to and from n×1 column matrices, which is the shape every kernel
// (Regress, Mul) works with.

package matrix

import "fmt"

const (
	ctxVecAt    = "At"
	ctxVecSet   = "Set"
	ctxVecAddAt = "AddAt"
)

// vectorErrorf wraps err with "Vector.<method>(i)".
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a fixed-length sequence of float64 values.
type Vector struct {
	data           []float64
	validateNaNInf bool
}

// NewVector creates a zero vector of length n.
// Errors: ErrInvalidDimensions when n <= 0.
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]float64, n), validateNaNInf: DefaultValidateNaNInf}, nil
}

// VectorFrom copies vals into a new Vector.
// Implementation:
//   - Stage 1: resolve numeric policy from opts; reject empty input.
//   - Stage 2: copy values, rejecting NaN/Inf when the policy is on.
//
// Errors:
//   - ErrInvalidDimensions (len(vals) == 0), ErrNaNInf (policy violation).
func VectorFrom(vals []float64, opts ...Option) (*Vector, error) {
	o := gatherOptions(opts...)
	if len(vals) == 0 {
		return nil, ErrInvalidDimensions
	}
	v := &Vector{data: make([]float64, len(vals)), validateNaNInf: o.validateNaNInf}
	for i, x := range vals {
		if v.validateNaNInf && isNonFinite(x) {
			return nil, vectorErrorf(ctxVecSet, i, ErrNaNInf)
		}
		v.data[i] = x
	}

	return v, nil
}

// VectorFromColumn copies an n×1 matrix into a Vector.
// Errors: ErrNilMatrix, ErrDimensionMismatch when m has more than one column.
func VectorFromColumn(m Matrix) (*Vector, error) {
	if err := ValidateColumnVector(m); err != nil {
		return nil, matrixErrorf("VectorFromColumn", err)
	}
	n := m.Rows()
	v := &Vector{data: make([]float64, n), validateNaNInf: DefaultValidateNaNInf}
	if d, ok := m.(*Dense); ok {
		copy(v.data, d.data)
		v.validateNaNInf = d.validateNaNInf

		return v, nil
	}
	var err error
	for i := 0; i < n; i++ {
		if v.data[i], err = m.At(i, 0); err != nil {
			return nil, matrixErrorf("VectorFromColumn", err)
		}
	}

	return v, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i (bounds and numeric policy enforced).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecSet, i, ErrOutOfRange)
	}
	if v.validateNaNInf && isNonFinite(x) {
		return vectorErrorf(ctxVecSet, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// AddAt adds delta to element i in place.
func (v *Vector) AddAt(i int, delta float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecAddAt, i, ErrOutOfRange)
	}
	sum := v.data[i] + delta
	if v.validateNaNInf && isNonFinite(sum) {
		return vectorErrorf(ctxVecAddAt, i, ErrNaNInf)
	}
	v.data[i] = sum

	return nil
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp, validateNaNInf: v.validateNaNInf}
}

// Values returns a copy of the elements.
func (v *Vector) Values() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}

// Column returns the vector as a fresh n×1 Dense.
func (v *Vector) Column() *Dense {
	d := &Dense{r: len(v.data), c: 1, data: make([]float64, len(v.data)), validateNaNInf: v.validateNaNInf}
	copy(d.data, v.data)

	return d
}

// String renders the vector as a single bracketed row.
func (v *Vector) String() string { return fmt.Sprint(v.data) }
