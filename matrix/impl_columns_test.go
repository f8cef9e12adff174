// SPDX-License-Identifier: MIT
// Package matrix_test - column/row assembly and column statistics.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/matrix"
)

func TestAugment(t *testing.T) {
	a := MustRows(t, [][]float64{{1}, {2}})
	b := MustRows(t, [][]float64{{3, 4}, {5, 6}})
	got, err := matrix.Augment(a, hide{b})
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{1, 3, 4}, {2, 5, 6}}), got, 0)

	_, err = matrix.Augment(a, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestExtractColumn(t *testing.T) {
	m := sample3(t)
	col, err := matrix.ExtractColumn(m, 2)
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{3}, {6}, {10}}), col, 0)

	col2, err := matrix.ExtractColumn(hide{m}, 2)
	require.NoError(t, err)
	requireClose(t, col, col2, 0)

	v, err := matrix.ExtractColumnVector(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 7}, v.Values())

	for _, j := range []int{-1, 3} {
		_, err = matrix.ExtractColumn(m, j)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}

func TestCatColVectors(t *testing.T) {
	x, _ := matrix.VectorFrom([]float64{0.1, 0.2, 0.3})
	temp, _ := matrix.VectorFrom([]float64{25, 35, 45})
	tbl, err := matrix.CatColVectors(x, temp)
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{0.1, 25}, {0.2, 35}, {0.3, 45}}), tbl, 0)

	short, _ := matrix.VectorFrom([]float64{1})
	_, err = matrix.CatColVectors(x, short)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.CatColVectors()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.CatColVectors(x, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSliceRows(t *testing.T) {
	m := sample3(t)
	got, err := matrix.SliceRows(m, 1, 3)
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{4, 5, 6}, {7, 8, 10}}), got, 0)

	got2, err := matrix.SliceRows(hide{m}, 1, 3)
	require.NoError(t, err)
	requireClose(t, got, got2, 0)

	for _, r := range [][2]int{{-1, 2}, {0, 4}, {2, 2}} {
		_, err = matrix.SliceRows(m, r[0], r[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}

func TestDeleteNaNRows(t *testing.T) {
	nan := math.NaN()
	raw, err := matrix.FromRows([][]float64{
		{1, 2},
		{nan, 3},
		{4, 5},
		{6, nan},
	}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	clean, err := matrix.DeleteNaNRows(raw)
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{1, 2}, {4, 5}}), clean, 0)

	allNaN, err := matrix.FromRows([][]float64{{nan}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = matrix.DeleteNaNRows(allNaN)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestColumnStatistics(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 10}, {2, 20}, {3, 60}})
	sums, err := matrix.ColSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 90}, sums)

	centered, means, err := matrix.CenterColumns(hide{m})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 30}, means)
	requireClose(t, MustRows(t, [][]float64{{-1, -20}, {0, -10}, {1, 30}}), centered, 0)

	ss, err := matrix.SumSquares(centered)
	require.NoError(t, err)
	assert.Equal(t, 2.0+400+100+900, ss)

	mx, err := matrix.MaxAbs(centered)
	require.NoError(t, err)
	assert.Equal(t, 30.0, mx)
}

func TestMaxAbs_NaN(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	mx, err := matrix.MaxAbs(m)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mx))
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1 + 1e-10, 2}})
	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = matrix.AllClose(a, b, 0, 1e-11)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
