// SPDX-License-Identifier: MIT

package matrix

// Test bridge for private kernels and the options snapshot.
// Compiled only with the package tests; matrix_test sees these names.

// EwBroadcastSubCols_TestOnly forwards to ewBroadcastSubCols.
func EwBroadcastSubCols_TestOnly(X Matrix, colMeans []float64) (Matrix, error) {
	return ewBroadcastSubCols(X, colMeans)
}

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// PanicSingularTolInvalid_TestOnly is the stable WithSingularTol panic message.
const PanicSingularTolInvalid_TestOnly = panicSingularTolInvalid

// OptionsSnapshot is a read-only copy of the internal Options fields.
type OptionsSnapshot struct {
	SingularTol    float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults and snapshots the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{SingularTol: o.singularTol, ValidateNaNInf: o.validateNaNInf}
}
