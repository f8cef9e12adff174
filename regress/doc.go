// SPDX-License-Identifier: MIT

// Package regress implements ordinary least squares on top of package matrix.
//
// The regress package provides:
//
//   - Regress: the normal-equation estimate beta = (XᵗX)⁻¹ Xᵗ y for any design X.
//   - PolyDesign, PolyFit, PolyEval: polynomial regression with coefficients
//     ordered from the constant term upward.
//   - RSquared and RSquaredOf: the coefficient of determination of a fit.
//
// All functions are pure: inputs are never mutated and results are fresh
// matrices. Singular designs (linearly dependent columns, fewer observations
// than coefficients) surface as matrix.ErrSingular.
package regress
