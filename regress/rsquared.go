// SPDX-License-Identifier: MIT

package regress

import (
	"fmt"

	"github.com/katalvlaran/lvfit/matrix"
)

// RSquared returns the coefficient of determination of a polynomial fit:
// R² = 1 − SSres/SStot, where the model is PolyEval(beta, x_i) and SStot
// uses the sample mean of y.
//
// Errors:
//   - matrix.ErrDimensionMismatch (x, y not columns of equal length; beta not a column).
//   - ErrUndefinedStatistic (SStot == 0, i.e. all y equal).
func RSquared(x, y, beta matrix.Matrix) (float64, error) {
	if err := matrix.ValidateColumnVector(x); err != nil {
		return 0, regressErrorf(opRSquared, err)
	}
	if err := matrix.ValidateSameRows(x, y); err != nil {
		return 0, regressErrorf(opRSquared, err)
	}
	n := x.Rows()
	yhat, err := matrix.NewDense(n, 1)
	if err != nil {
		return 0, regressErrorf(opRSquared, err)
	}
	var xi, fi float64
	for i := 0; i < n; i++ {
		if xi, err = x.At(i, 0); err != nil {
			return 0, regressErrorf(opRSquared, err)
		}
		if fi, err = PolyEval(beta, xi); err != nil {
			return 0, regressErrorf(opRSquared, err)
		}
		if err = yhat.Set(i, 0, fi); err != nil {
			return 0, regressErrorf(opRSquared, err)
		}
	}

	return RSquaredOf(y, yhat)
}

// RSquaredOf returns 1 − SSres/SStot for observed y and fitted yhat (both n×1).
// It serves any model, linear or not.
//
// Implementation:
//   - Stage 1: SSres = Σ (y_i − yhat_i)².
//   - Stage 2: SStot = Σ (y_i − ȳ)² via matrix.CenterColumns.
//
// Constant y is rejected by exact comparison before any mean is formed:
// a rounded ȳ leaves SStot a tiny positive number instead of zero.
//
// Errors:
//   - matrix.ErrDimensionMismatch, ErrUndefinedStatistic (all y_i equal, or SStot == 0).
func RSquaredOf(y, yhat matrix.Matrix) (float64, error) {
	obs, err := matrix.VectorFromColumn(y)
	if err != nil {
		return 0, regressErrorf(opRSquared, err)
	}
	if constant(obs.Values()) {
		return 0, regressErrorf(opRSquared, fmt.Errorf("constant observations: %w", ErrUndefinedStatistic))
	}
	resid, err := matrix.Sub(y, yhat)
	if err != nil {
		return 0, regressErrorf(opRSquared, err)
	}
	ssRes, err := matrix.SumSquares(resid)
	if err != nil {
		return 0, regressErrorf(opRSquared, err)
	}
	centered, _, err := matrix.CenterColumns(y)
	if err != nil {
		return 0, regressErrorf(opRSquared, err)
	}
	ssTot, err := matrix.SumSquares(centered)
	if err != nil {
		return 0, regressErrorf(opRSquared, err)
	}
	if ssTot == 0 {
		return 0, regressErrorf(opRSquared, fmt.Errorf("zero total sum of squares: %w", ErrUndefinedStatistic))
	}

	return 1 - ssRes/ssTot, nil
}

// constant reports whether every element equals the first one exactly.
func constant(v []float64) bool {
	for _, vi := range v {
		if vi != v[0] {
			return false
		}
	}

	return true
}
