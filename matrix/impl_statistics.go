// SPDX-License-Identifier: MIT

// Package matrix - column statistics used by goodness-of-fit and convergence checks.
//
// Purpose:
//   - Column sums and column centering (sample means subtracted), the building
//     blocks of total sum of squares.
//   - Sum of squares and the largest absolute element (the Gauss-Newton step metric).
//
// AI-Hints:
//   - Prefer passing *Dense to unlock flat-slice fast paths.
//   - Sanitize inputs first (DeleteNaNRows) if NaN propagation is undesired.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opColSums       = "ColSums"
	opSumSquares    = "SumSquares"
	opMaxAbs        = "MaxAbs"
)

// colSums returns c[j] = Σ_i X[i,j].
// Complexity: O(r*c).
func colSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	r, c := X.Rows(), X.Cols()
	data, err := flatten(X)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	sums := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			sums[j] += data[i*c+j]
		}
	}

	return sums, nil
}

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means through colSums.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix from validation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	means, err := colSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	invR := 1.0 / float64(X.Rows())
	for j := range means {
		means[j] *= invR
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// sumSquares returns Σ X[i,j]².
func sumSquares(X Matrix) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opSumSquares, err)
	}
	data, err := flatten(X)
	if err != nil {
		return 0, matrixErrorf(opSumSquares, err)
	}
	acc := 0.0
	for _, v := range data {
		acc += v * v
	}

	return acc, nil
}

// maxAbs returns max |X[i,j]|. A NaN element makes the result NaN so that a
// "max < tol" convergence test can never pass on corrupted data.
func maxAbs(X Matrix) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	data, err := flatten(X)
	if err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	best := 0.0
	for _, v := range data {
		if math.IsNaN(v) {
			return math.NaN(), nil
		}
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best, nil
}
