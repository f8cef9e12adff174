// SPDX-License-Identifier: MIT
// Package matrix - LU factorisation with partial pivoting, inversion and linear solves.
//
// Purpose:
//   - Factor a square A as P·A = L·U (Doolittle, unit-diagonal L) with row pivoting.
//   - Build Inverse and Solve on top of one shared factorisation routine.
//   - Detect singular inputs through a column-relative pivot test (see options.go).
//
// Determinism:
//   - Fixed traversal orders; ties in the pivot search resolve to the lowest row index.

package matrix

import (
	"fmt"
	"math"
)

const (
	opLU      = "LU"
	opInverse = "Inverse"
	opSolve   = "Solve"
)

// luFactors is the packed result of luDecompose.
//   - lu holds U on and above the diagonal and the multipliers of L below it.
//   - perm[i] is the original row placed at position i (P·A row i == A row perm[i]).
type luFactors struct {
	n    int
	lu   []float64
	perm []int
}

// flatten copies m into a row-major slice (Dense fast path, At fallback).
func flatten(m Matrix) ([]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	if d, ok := m.(*Dense); ok {
		copy(out, d.data)

		return out, nil
	}
	var i, j int
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if out[i*cols+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// luDecompose factors a square matrix with partial pivoting.
// MAIN DESCRIPTION:
//   - Gaussian elimination on a private copy; at step k the row with the largest
//     |a[i,k]| (i ≥ k) becomes the pivot row.
//
// Implementation:
//   - Stage 1: Validate (non-nil, square); copy to a flat buffer; record column scales
//     scale[j] = max_i |A[i,j]| of the input.
//   - Stage 2: For k = 0..n-1: pick pivot, apply the singular test
//     |pivot| > tol*scale[k], swap rows, eliminate below the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - The negated comparison also rejects NaN pivots, so a non-finite input
//     surfaces as ErrSingular instead of a NaN-filled result.
func luDecompose(m Matrix, tol float64) (*luFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}
	n := m.Rows()
	a, err := flatten(m)
	if err != nil {
		return nil, err
	}

	scale := make([]float64, n)
	perm := make([]int, n)
	var i, j, k, p int
	for i = 0; i < n; i++ {
		perm[i] = i
		for j = 0; j < n; j++ {
			if v := math.Abs(a[i*n+j]); v > scale[j] {
				scale[j] = v
			}
		}
	}

	var best, v, f float64
	for k = 0; k < n; k++ {
		// Pivot search over rows k..n-1 in column k.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if !(best > tol*scale[k]) {
			return nil, fmt.Errorf("pivot %d (|p|=%g, scale=%g): %w", k, best, scale[k], ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		// Eliminate below the pivot, storing multipliers in place.
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return &luFactors{n: n, lu: a, perm: perm}, nil
}

// solveInto solves A·x = b for one right-hand side given in original row order.
// b and x must have length n; y is scratch of length n.
func (f *luFactors) solveInto(b, x, y []float64) {
	n := f.n
	var i, k int
	var sum float64
	// Forward substitution: L·y = P·b (unit diagonal).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}
}

// LU computes P·A = L·U with partial pivoting.
// Implementation:
//   - Stage 1: luDecompose on a private copy of m.
//   - Stage 2: unpack into Dense L (unit lower triangular) and U (upper triangular).
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//   - []int : perm, where row i of P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (Matrix, Matrix, []int, error) {
	o := gatherOptions(opts...)
	f, err := luDecompose(m, o.singularTol)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	n := f.n
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = f.lu[i*n+j]
			case j == i:
				L.data[i*n+j] = 1
				U.data[i*n+j] = f.lu[i*n+j]
			default:
				U.data[i*n+j] = f.lu[i*n+j]
			}
		}
	}
	perm := make([]int, n)
	copy(perm, f.perm)

	return L, U, perm, nil
}

// Inverse returns A⁻¹ for a square, non-singular A.
// MAIN DESCRIPTION:
//   - Computes A^{-1} via LU with partial pivoting and n pairs of triangular solves.
//
// Implementation:
//   - Stage 1: Validate m (non-nil, square) and factor P·A = L·U.
//   - Stage 2: For each column c of I, solve A·x = e_c and store x as column c.
//
// Behavior highlights:
//   - Input m is read-only; the result is a fresh Dense.
//   - Singular detection is relative to column magnitudes, so badly scaled but
//     independent columns (typical of Jacobians) still invert.
//
// Errors:
//   - ErrNilMatrix         (ValidateNotNil).
//   - ErrDimensionMismatch (non-square input).
//   - ErrSingular          (pivot at or below WithSingularTol × column scale).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	f, err := luDecompose(m, o.singularTol)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var (
		col, i int
		e      = make([]float64, n)
		x      = make([]float64, n)
		y      = make([]float64, n)
	)
	for col = 0; col < n; col++ {
		e[col] = 1
		f.solveInto(e, x, y)
		e[col] = 0
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Solve returns X with A·X = B, where A is n×n and B is n×m.
// Cheaper and more accurate than Mul(Inverse(A), B) for a few right-hand sides.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A non-square or B.Rows != n), ErrSingular.
func Solve(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	f, err := luDecompose(a, o.singularTol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rhs, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n, m := f.n, b.Cols()
	res, err := NewDense(n, m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	var (
		col, i int
		bc     = make([]float64, n)
		x      = make([]float64, n)
		y      = make([]float64, n)
	)
	for col = 0; col < m; col++ {
		for i = 0; i < n; i++ {
			bc[i] = rhs[i*m+col]
		}
		f.solveInto(bc, x, y)
		for i = 0; i < n; i++ {
			res.data[i*m+col] = x[i]
		}
	}

	return res, nil
}
