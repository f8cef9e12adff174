// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/batch"
	"github.com/katalvlaran/lvfit/fitnlm"
	"github.com/katalvlaran/lvfit/matrix"
)

var line = fitnlm.ModelFunc(func(x float64, b []float64) float64 { return b[0] + b[1]*x })

func TestChunks(t *testing.T) {
	spans, err := batch.Chunks(10, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []batch.Span{{1, 4}, {4, 7}, {7, 10}}, spans)

	// Row 9 is a remainder of one and is dropped.
	spans, err = batch.Chunks(10, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []batch.Span{{0, 3}, {3, 6}, {6, 9}}, spans)
	assert.Equal(t, 3, spans[0].Len())

	spans, err = batch.Chunks(5, 3, 4)
	require.NoError(t, err)
	assert.Empty(t, spans)

	for _, tc := range []struct{ n, size, start int }{{10, 0, 0}, {10, 3, -1}, {10, 3, 11}} {
		_, err = batch.Chunks(tc.n, tc.size, tc.start)
		assert.ErrorIs(t, err, batch.ErrInvalidSpan, "%+v", tc)
	}
}

// piecewise returns x = 0..11 and y on four lines of slope 1, 2, 3, 4.
func piecewise(t *testing.T) (x, y *matrix.Dense) {
	t.Helper()
	xs := make([]float64, 12)
	ys := make([]float64, 12)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 1 + float64(i/3+1)*xs[i]
	}
	x, err := matrix.FromColumn(xs)
	require.NoError(t, err)
	y, err = matrix.FromColumn(ys)
	require.NoError(t, err)

	return x, y
}

func TestFitChunks(t *testing.T) {
	x, y := piecewise(t)
	spans, err := batch.Chunks(12, 3, 0)
	require.NoError(t, err)
	beta0, err := matrix.FromColumn([]float64{0, 0})
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3} {
		out, err := batch.FitChunks(context.Background(), line, x, y, beta0, spans, fitnlm.DefaultOptions(), workers)
		require.NoError(t, err)
		require.Len(t, out, 4)
		for i, o := range out {
			assert.Equal(t, spans[i], o.Span)
			require.NoError(t, o.Err)
			assert.True(t, o.Result.Converged)
			slope, err := o.Result.Beta.At(1, 0)
			require.NoError(t, err)
			assert.InDelta(t, float64(i+1), slope, 1e-6, "span %d workers %d", i, workers)
			icpt, err := o.Result.Beta.At(0, 0)
			require.NoError(t, err)
			assert.InDelta(t, 1, icpt, 1e-5, "span %d workers %d", i, workers)
		}
	}
}

func TestFitChunks_NonConvergenceIsPerSpan(t *testing.T) {
	x, y := piecewise(t)
	spans := []batch.Span{{0, 3}, {3, 6}}
	beta0, err := matrix.FromColumn([]float64{0, 0})
	require.NoError(t, err)
	opts := fitnlm.DefaultOptions()
	opts.Tolerance = 0
	opts.MaxIterations = 3

	out, err := batch.FitChunks(context.Background(), line, x, y, beta0, spans, opts, 2)
	require.NoError(t, err)
	for _, o := range out {
		assert.ErrorIs(t, o.Err, fitnlm.ErrNonConvergence)
		assert.Equal(t, 3, o.Result.Iterations)
		assert.NotNil(t, o.Result.Beta)
	}
}

func TestFitChunks_Errors(t *testing.T) {
	x, y := piecewise(t)
	beta0, err := matrix.FromColumn([]float64{0, 0})
	require.NoError(t, err)
	opts := fitnlm.DefaultOptions()
	ctx := context.Background()

	t.Run("span out of range", func(t *testing.T) {
		_, err := batch.FitChunks(ctx, line, x, y, beta0, []batch.Span{{10, 13}}, opts, 1)
		assert.ErrorIs(t, err, batch.ErrInvalidSpan)
	})
	t.Run("empty span", func(t *testing.T) {
		_, err := batch.FitChunks(ctx, line, x, y, beta0, []batch.Span{{4, 4}}, opts, 1)
		assert.ErrorIs(t, err, batch.ErrInvalidSpan)
	})
	t.Run("row mismatch", func(t *testing.T) {
		short, err := matrix.SliceRows(y, 0, 6)
		require.NoError(t, err)
		_, err = batch.FitChunks(ctx, line, x, short, beta0, []batch.Span{{0, 3}}, opts, 1)
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})
	t.Run("singular span aborts", func(t *testing.T) {
		flatX, err := matrix.FromColumn([]float64{2, 2, 2, 0, 1, 2})
		require.NoError(t, err)
		ys, err := matrix.SliceRows(y, 0, 6)
		require.NoError(t, err)
		_, err = batch.FitChunks(ctx, line, flatX, ys, beta0, []batch.Span{{3, 6}, {0, 3}}, opts, 1)
		assert.ErrorIs(t, err, matrix.ErrSingular)
	})
	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := batch.FitChunks(cctx, line, x, y, beta0, []batch.Span{{0, 3}, {3, 6}}, opts, 1)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
