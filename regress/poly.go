// SPDX-License-Identifier: MIT

package regress

import (
	"fmt"

	"github.com/katalvlaran/lvfit/matrix"
)

// PolyDesign builds the n×(order+1) design matrix with column j equal to x_i^j.
// Column 0 is all ones, including at x = 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (x is not a column).
//   - ErrInvalidOrder (order < 0).
func PolyDesign(x matrix.Matrix, order int) (*matrix.Dense, error) {
	if err := matrix.ValidateColumnVector(x); err != nil {
		return nil, regressErrorf(opPolyDesign, err)
	}
	if order < 0 {
		return nil, regressErrorf(opPolyDesign, fmt.Errorf("order %d: %w", order, ErrInvalidOrder))
	}
	n := x.Rows()
	X, err := matrix.NewDense(n, order+1)
	if err != nil {
		return nil, regressErrorf(opPolyDesign, err)
	}
	var i, j int
	var xi, p float64
	for i = 0; i < n; i++ {
		if xi, err = x.At(i, 0); err != nil {
			return nil, regressErrorf(opPolyDesign, err)
		}
		p = 1
		for j = 0; j <= order; j++ {
			if err = X.Set(i, j, p); err != nil {
				return nil, regressErrorf(opPolyDesign, err)
			}
			p *= xi
		}
	}

	return X, nil
}

// PolyFit fits a polynomial of the given order to (x, y) by least squares.
// The returned (order+1)×1 column holds the coefficients from the constant
// term upward: y ≈ beta_0 + beta_1·x + … + beta_order·x^order.
//
// Errors:
//   - Shape errors as in PolyDesign and Regress.
//   - matrix.ErrSingular when order >= number of distinct x values.
func PolyFit(x, y matrix.Matrix, order int, opts ...matrix.Option) (matrix.Matrix, error) {
	X, err := PolyDesign(x, order)
	if err != nil {
		return nil, regressErrorf(opPolyFit, err)
	}
	beta, err := Regress(y, X, opts...)
	if err != nil {
		return nil, regressErrorf(opPolyFit, err)
	}

	return beta, nil
}

// PolyEval evaluates the polynomial with coefficient column beta at x (Horner's rule).
func PolyEval(beta matrix.Matrix, x float64) (float64, error) {
	if err := matrix.ValidateColumnVector(beta); err != nil {
		return 0, regressErrorf(opPolyEval, err)
	}
	acc := 0.0
	for j := beta.Rows() - 1; j >= 0; j-- {
		b, err := beta.At(j, 0)
		if err != nil {
			return 0, regressErrorf(opPolyEval, err)
		}
		acc = acc*x + b
	}

	return acc, nil
}
