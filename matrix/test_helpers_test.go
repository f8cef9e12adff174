// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows builds a Dense from a row literal or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES m(i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// requireClose asserts a and b are element-wise within atol.
func requireClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "want\n%v\ngot\n%v", want, got)
}

// sample3 is a well-conditioned 3×3 matrix whose first pivot is not on the diagonal.
func sample3(t *testing.T) *matrix.Dense {
	t.Helper()

	return MustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	})
}
