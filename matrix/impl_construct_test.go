// SPDX-License-Identifier: MIT
// Package matrix_test - literals, slices and ranges.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/matrix"
)

func TestParseMatrix(t *testing.T) {
	cases := []struct {
		in   string
		want [][]float64
	}{
		{"[1 2; 3 4]", [][]float64{{1, 2}, {3, 4}}},
		{"[1.63e-6;1.45e-7]", [][]float64{{1.63e-6}, {1.45e-7}}},
		{"  [1, 2, 3]  ", [][]float64{{1, 2, 3}}},
		{"5 6;7 8;", [][]float64{{5, 6}, {7, 8}}},
		{"[-1e9\t+2.5]", [][]float64{{-1e9, 2.5}}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := matrix.ParseMatrix(tc.in)
			require.NoError(t, err)
			requireClose(t, MustRows(t, tc.want), got, 0)
		})
	}
}

func TestParseMatrix_Errors(t *testing.T) {
	for in, want := range map[string]error{
		"[]":          matrix.ErrInvalidDimensions,
		"[1 2; 3]":    matrix.ErrDimensionMismatch,
		"[1 x]":       matrix.ErrParse,
		"[1 2":        matrix.ErrParse,
		"[1;;2]":      matrix.ErrParse,
		"[NaN 1]":     matrix.ErrNaNInf,
		"   ":         matrix.ErrInvalidDimensions,
		"[1e999 1.0]": matrix.ErrParse,
	} {
		_, err := matrix.ParseMatrix(in)
		require.ErrorIs(t, err, want, "ParseMatrix(%q)", in)
	}
}

func TestParseMatrix_NoValidate(t *testing.T) {
	m, err := matrix.ParseMatrix("[NaN 1; 2 3]", matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, m, 0, 0)))
}

func TestFromRowsFromColumn(t *testing.T) {
	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	c, err := matrix.FromColumn([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, c.Rows())
	require.Equal(t, 1, c.Cols())
	require.Equal(t, 3.0, MustAt(t, c, 2, 0))

	_, err = matrix.FromColumn(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestIdentityOnes(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	ones, err := matrix.NewOnes(3, 3)
	require.NoError(t, err)
	prod, err := matrix.Mul(id, ones)
	require.NoError(t, err)
	requireClose(t, ones, prod, 0)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewOnes(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLinspace(t *testing.T) {
	v, err := matrix.Linspace(0, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, v.Values())

	v, err = matrix.Linspace(0, 0.3, 4)
	require.NoError(t, err)
	last, err := v.At(3)
	require.NoError(t, err)
	assert.Equal(t, 0.3, last, "last point is exactly end")

	one, err := matrix.Linspace(2, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, one.Values())

	_, err = matrix.Linspace(0, 1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Linspace(0, math.Inf(1), 3)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
