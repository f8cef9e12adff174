// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvfit/matrix"
)

func TestColSums(t *testing.T) {
	X := MustRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}})
	for _, m := range []matrix.Matrix{X, hide{X}} {
		sums, err := matrix.ColSums(m)
		require.NoError(t, err)
		assert.Equal(t, []float64{11, 22, 33}, sums)
	}

	_, err := matrix.ColSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCenterColumns_FastAndFallback(t *testing.T) {
	X := MustRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}})

	Yf, meansF, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)

	assert.Equal(t, []float64{5.5, 11, 16.5}, meansF)
	assert.Equal(t, meansF, meansS)
	requireClose(t, Yf, Ys, 0)
	requireClose(t, MustRows(t, [][]float64{{-4.5, -9, -13.5}, {4.5, 9, 13.5}}), Yf, 0)

	// Input untouched.
	assert.Equal(t, 1.0, MustAt(t, X, 0, 0))
}

func TestCenterColumns_MatchesGonumMean(t *testing.T) {
	col := []float64{3.2, 1.7, 9.4, 4.4, 0.3}
	X, err := matrix.FromColumn(col)
	require.NoError(t, err)

	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	assert.InDelta(t, stat.Mean(col, nil), means[0], 1e-12)

	ss, err := matrix.SumSquares(Xc)
	require.NoError(t, err)
	// Σ(x − x̄)² = (n−1)·s²
	assert.InDelta(t, float64(len(col)-1)*stat.Variance(col, nil), ss, 1e-10)
}

func TestSumSquares(t *testing.T) {
	ss, err := matrix.SumSquares(sample3(t))
	require.NoError(t, err)
	assert.Equal(t, 1.0+4+9+16+25+36+49+64+100, ss)

	ss, err = matrix.SumSquares(hide{sample3(t)})
	require.NoError(t, err)
	assert.Equal(t, 304.0, ss)

	v := []float64{0.5, -1.5, 2}
	X, err := matrix.FromColumn(v)
	require.NoError(t, err)
	ss, err = matrix.SumSquares(X)
	require.NoError(t, err)
	assert.InDelta(t, floats.Dot(v, v), ss, 1e-15)
}

func TestMaxAbs(t *testing.T) {
	m, err := matrix.MaxAbs(MustRows(t, [][]float64{{0.1, -7}, {3, 6.5}}))
	require.NoError(t, err)
	assert.Equal(t, 7.0, m)

	m, err = matrix.MaxAbs(MustRows(t, [][]float64{{0}}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)

	withNaN, err := matrix.FromRows([][]float64{{1, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	m, err = matrix.MaxAbs(withNaN)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m))

	_, err = matrix.MaxAbs(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
