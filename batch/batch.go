// SPDX-License-Identifier: MIT

// Package batch fits one model to many independent row ranges of a data set
// in parallel.
//
// A single Gauss-Newton fit is sequential. Throughput comes from running
// independent fits side by side, e.g. a diffusivity per three-point window of
// a drying curve. Chunks cuts the windows and FitChunks runs them on a bounded
// errgroup.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfit/fitnlm"
	"github.com/katalvlaran/lvfit/matrix"
)

// ErrInvalidSpan is returned for empty, reversed or out-of-range spans and
// for a non-positive chunk size.
var ErrInvalidSpan = errors.New("batch: invalid span")

// Span is the half-open row range [From, To).
type Span struct {
	From, To int
}

// Len returns the number of rows in s.
func (s Span) Len() int { return s.To - s.From }

// Outcome is the result of fitting one span.
type Outcome struct {
	Span   Span
	Result fitnlm.Result

	// Err is non-nil only for fitnlm.ErrNonConvergence; Result still holds the
	// last estimate. Any other failure aborts FitChunks.
	Err error
}

// Chunks splits rows [start, n) into consecutive spans of size rows.
// A trailing remainder shorter than size is dropped.
//
// Errors: ErrInvalidSpan (size <= 0, start < 0 or start > n).
func Chunks(n, size, start int) ([]Span, error) {
	if size <= 0 || start < 0 || start > n {
		return nil, fmt.Errorf("Chunks(n=%d, size=%d, start=%d): %w", n, size, start, ErrInvalidSpan)
	}
	count := (n - start) / size
	spans := make([]Span, count)
	for i := range spans {
		spans[i] = Span{From: start + i*size, To: start + (i+1)*size}
	}

	return spans, nil
}

// FitChunks fits model to every span of (x, y) with at most workers fits in
// flight (workers <= 0 means runtime.GOMAXPROCS(0)). Outcomes are returned in
// span order. Each fit starts from beta0 and runs with opts, its context
// replaced by the group context and its logger tagged with the span.
//
// Errors:
//   - ErrInvalidSpan, matrix.ErrDimensionMismatch (checked before any fit starts).
//   - The first hard failure of any fit (e.g. matrix.ErrSingular), wrapped with
//     its span; the remaining fits are cancelled.
//   - ctx.Err() when ctx is cancelled.
func FitChunks(ctx context.Context, model fitnlm.Model, x, y, beta0 matrix.Matrix, spans []Span, opts fitnlm.Options, workers int) ([]Outcome, error) {
	if err := matrix.ValidateSameRows(x, y); err != nil {
		return nil, fmt.Errorf("FitChunks: %w", err)
	}
	n := x.Rows()
	for _, s := range spans {
		if s.From < 0 || s.To > n || s.Len() <= 0 {
			return nil, fmt.Errorf("FitChunks: span [%d,%d) of %d rows: %w", s.From, s.To, n, ErrInvalidSpan)
		}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(spans))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range spans {
		g.Go(func() error {
			xs, err := matrix.SliceRows(x, s.From, s.To)
			if err != nil {
				return fmt.Errorf("span [%d,%d): %w", s.From, s.To, err)
			}
			ys, err := matrix.SliceRows(y, s.From, s.To)
			if err != nil {
				return fmt.Errorf("span [%d,%d): %w", s.From, s.To, err)
			}

			o := opts
			o.Ctx = gctx
			if o.Logger != nil {
				o.Logger = o.Logger.With(slog.Int("span_from", s.From), slog.Int("span_to", s.To))
			}
			res, err := fitnlm.Fit(model, xs, ys, beta0, o)
			if err != nil && !errors.Is(err, fitnlm.ErrNonConvergence) {
				return fmt.Errorf("span [%d,%d): %w", s.From, s.To, err)
			}
			outcomes[i] = Outcome{Span: s, Result: res, Err: err}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("FitChunks: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("FitChunks: %w", err)
	}

	return outcomes, nil
}
