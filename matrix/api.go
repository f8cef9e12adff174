// SPDX-License-Identifier: MIT

// Package matrix - public facade.
//
// Thin, documented entry points over the impl_* kernels: convenience
// constructors, aliases that read naturally at call sites, and the statistics
// surface. Each facade delegates; no loops live here.
package matrix

// T is a short alias for Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) { return colSums(m) }

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
// Complexity: O(r*c).
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// SumSquares returns the sum of squared elements (for a residual column, the SSR).
func SumSquares(m Matrix) (float64, error) { return sumSquares(m) }

// MaxAbs returns the largest absolute element of m; NaN if any element is NaN.
func MaxAbs(m Matrix) (float64, error) { return maxAbs(m) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }
