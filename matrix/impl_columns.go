// SPDX-License-Identifier: MIT

// Package matrix - column and row assembly for design matrices and data tables.
//
// Purpose:
//   - Join matrices side by side (Augment) and vectors into tables (CatColVectors).
//   - Extract single columns as n×1 matrices or Vectors.
//   - Slice row ranges and drop rows with missing (NaN) measurements.
//
// Determinism:
//   - Fixed i→j traversal; every result is a fresh Dense.

package matrix

import (
	"fmt"
	"math"
)

const (
	opAugment       = "Augment"
	opExtractColumn = "ExtractColumn"
	opCatColVectors = "CatColVectors"
	opDeleteNaNRows = "DeleteNaNRows"
	opSliceRows     = "SliceRows"
)

// Augment concatenates columns: [A | B].
// Implementation:
//   - Stage 1: ValidateSameRows(a, b); allocate r×(ca+cb).
//   - Stage 2: copy row by row (flat copy for *Dense, At fallback otherwise).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (Matrix, error) {
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	r, ca, cb := a.Rows(), a.Cols(), b.Cols()
	c := ca + cb
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	av, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	bv, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	for i := 0; i < r; i++ {
		copy(res.data[i*c:i*c+ca], av[i*ca:(i+1)*ca])
		copy(res.data[i*c+ca:(i+1)*c], bv[i*cb:(i+1)*cb])
	}

	return res, nil
}

// ExtractColumn returns column j of m as a fresh n×1 Dense.
// Errors: ErrNilMatrix, ErrOutOfRange (j outside [0, cols)).
func ExtractColumn(m Matrix, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExtractColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opExtractColumn, fmt.Errorf("column %d: %w", j, ErrOutOfRange))
	}
	r := m.Rows()
	res, err := NewDense(r, 1)
	if err != nil {
		return nil, matrixErrorf(opExtractColumn, err)
	}
	if d, ok := m.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
		for i := 0; i < r; i++ {
			res.data[i] = d.data[i*d.c+j]
		}

		return res, nil
	}
	for i := 0; i < r; i++ {
		if res.data[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opExtractColumn, err)
		}
	}

	return res, nil
}

// ExtractColumnVector returns column j of m as a Vector.
func ExtractColumnVector(m Matrix, j int) (*Vector, error) {
	col, err := ExtractColumn(m, j)
	if err != nil {
		return nil, err
	}

	return &Vector{data: col.data, validateNaNInf: col.validateNaNInf}, nil
}

// CatColVectors builds an n×k table whose column i is vs[i].
// Errors: ErrInvalidDimensions (no vectors), ErrNilMatrix (nil vector),
// ErrDimensionMismatch (lengths differ).
func CatColVectors(vs ...*Vector) (*Dense, error) {
	if len(vs) == 0 {
		return nil, matrixErrorf(opCatColVectors, ErrInvalidDimensions)
	}
	for i, v := range vs {
		if v == nil {
			return nil, matrixErrorf(opCatColVectors, fmt.Errorf("vector %d: %w", i, ErrNilMatrix))
		}
	}
	n, k := vs[0].Len(), len(vs)
	res, err := NewDense(n, k)
	if err != nil {
		return nil, matrixErrorf(opCatColVectors, err)
	}
	res.validateNaNInf = vs[0].validateNaNInf
	for j, v := range vs {
		if v.Len() != n {
			return nil, matrixErrorf(opCatColVectors, fmt.Errorf("vector %d has length %d, want %d: %w", j, v.Len(), n, ErrDimensionMismatch))
		}
		for i := 0; i < n; i++ {
			res.data[i*k+j] = v.data[i]
		}
	}

	return res, nil
}

// SliceRows returns a copy of rows [from, to).
// Errors: ErrNilMatrix, ErrOutOfRange (from < 0, to > rows or from >= to).
func SliceRows(m Matrix, from, to int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSliceRows, err)
	}
	if from < 0 || to > m.Rows() || from >= to {
		return nil, matrixErrorf(opSliceRows, fmt.Errorf("[%d,%d) of %d rows: %w", from, to, m.Rows(), ErrOutOfRange))
	}
	if d, ok := m.(*Dense); ok {
		res, err := newDenseWithPolicy(to-from, d.c, d.validateNaNInf)
		if err != nil {
			return nil, matrixErrorf(opSliceRows, err)
		}
		copy(res.data, d.data[from*d.c:to*d.c])

		return res, nil
	}
	rowsIdx := make([]int, to-from)
	for i := range rowsIdx {
		rowsIdx[i] = from + i
	}
	colsIdx := make([]int, m.Cols())
	for j := range colsIdx {
		colsIdx[j] = j
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opSliceRows, err)
	}
	base := &Dense{r: m.Rows(), c: m.Cols(), data: src, validateNaNInf: false}
	res, err := base.Induced(rowsIdx, colsIdx)
	if err != nil {
		return nil, matrixErrorf(opSliceRows, err)
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}

// DeleteNaNRows returns a copy of m without any row that contains NaN.
// The source typically comes from ingestion with WithNoValidateNaNInf, and the
// result keeps its numeric policy.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions when every row contains NaN (a Dense is never empty).
func DeleteNaNRows(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDeleteNaNRows, err)
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opDeleteNaNRows, err)
	}
	r, c := m.Rows(), m.Cols()
	policy := DefaultValidateNaNInf
	if d, ok := m.(*Dense); ok {
		policy = d.validateNaNInf
	}

	keep := make([]int, 0, r)
	var i, j int
rows:
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if math.IsNaN(src[i*c+j]) {
				continue rows
			}
		}
		keep = append(keep, i)
	}

	colsIdx := make([]int, c)
	for j = range colsIdx {
		colsIdx[j] = j
	}
	base := &Dense{r: r, c: c, data: src, validateNaNInf: policy}
	res, err := base.Induced(keep, colsIdx)
	if err != nil {
		return nil, matrixErrorf(opDeleteNaNRows, err)
	}

	return res, nil
}
