// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer used by regression
// and nonlinear fitting.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone), and Dense, its
//     row-major implementation with bounds-checked accessors and an optional
//     finite-only numeric policy.
//   - Vector, a one-dimensional companion that converts to and from n×1 columns.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, Hadamard, MatVec, and the
//     pivoted LU family (LU, Inverse, Solve) with relative singularity detection.
//   - Assembly helpers for design matrices and data tables: Augment,
//     ExtractColumn, CatColVectors, SliceRows, DeleteNaNRows, ParseMatrix,
//     Linspace, NewOnes, NewIdentity.
//   - Column statistics (ColSums, CenterColumns, SumSquares, MaxAbs) and
//     AllClose for tolerance comparisons.
//   - ToGonum / FromGonum copies to and from gonum's mat package.
//
// Every kernel returns a freshly allocated Dense and never mutates its
// operands. Errors are package sentinels wrapped with the operation name;
// match them with errors.Is.
package matrix
