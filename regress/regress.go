// SPDX-License-Identifier: MIT

package regress

import (
	"fmt"

	"github.com/katalvlaran/lvfit/matrix"
)

// Regress returns the least-squares coefficients beta = (XᵗX)⁻¹ Xᵗ y.
// MAIN DESCRIPTION:
//   - y is an n×1 column of observations, X an n×k design matrix; beta is k×1.
//
// Implementation:
//   - Stage 1: validate shapes (y column, equal row counts) and n >= k.
//   - Stage 2: form XᵗX and invert it (pivoted LU, see matrix.Inverse).
//   - Stage 3: beta = (XᵗX)⁻¹ · (Xᵗ y).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (shape violations).
//   - matrix.ErrSingular: n < k, or XᵗX not invertible (linearly dependent columns).
//
// Complexity:
//   - Time O(n*k² + k³), Space O(n*k).
//
// Notes:
//   - opts are forwarded to matrix.Inverse (e.g. matrix.WithSingularTol).
func Regress(y, X matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error) {
	if err := matrix.ValidateColumnVector(y); err != nil {
		return nil, regressErrorf(opRegress, err)
	}
	if err := matrix.ValidateSameRows(y, X); err != nil {
		return nil, regressErrorf(opRegress, err)
	}
	if n, k := X.Rows(), X.Cols(); n < k {
		return nil, regressErrorf(opRegress, fmt.Errorf("%d observations for %d coefficients: %w", n, k, matrix.ErrSingular))
	}

	Xt, err := matrix.Transpose(X)
	if err != nil {
		return nil, regressErrorf(opRegress, err)
	}
	XtX, err := matrix.Mul(Xt, X)
	if err != nil {
		return nil, regressErrorf(opRegress, err)
	}
	XtXinv, err := matrix.Inverse(XtX, opts...)
	if err != nil {
		return nil, regressErrorf(opRegress, err)
	}
	Xty, err := matrix.Mul(Xt, y)
	if err != nil {
		return nil, regressErrorf(opRegress, err)
	}
	beta, err := matrix.Mul(XtXinv, Xty)
	if err != nil {
		return nil, regressErrorf(opRegress, err)
	}

	return beta, nil
}

// Predict returns the fitted values X·beta (n×1).
func Predict(X, beta matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateColumnVector(beta); err != nil {
		return nil, regressErrorf(opPredict, err)
	}
	yhat, err := matrix.Mul(X, beta)
	if err != nil {
		return nil, regressErrorf(opPredict, err)
	}

	return yhat, nil
}
