// SPDX-License-Identifier: MIT

package fitnlm

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvfit/matrix"
	"github.com/katalvlaran/lvfit/regress"
)

// Result describes the outcome of a fit.
type Result struct {
	// Beta holds the fitted parameters (k×1), a fresh matrix owned by the caller.
	Beta *matrix.Dense

	// Iterations is the number of Δβ updates applied to Beta.
	Iterations int

	// Converged reports max|Δβ| < Tolerance on the last update.
	Converged bool

	// MaxStep is max|Δβⱼ| of the last update (0 when none was applied).
	MaxStep float64

	// SSR is Σ (yᵢ − f(xᵢ, Beta))². It may be non-finite when the fit stopped
	// on a non-finite model value.
	SSR float64
}

// Fit fits model to scalar observations with Gauss-Newton iteration.
// MAIN DESCRIPTION:
//   - x and y are n×1 columns, beta0 is the k×1 initial guess (not modified).
//
// Implementation:
//   - Stage 1: validate inputs and options; copy beta0.
//   - Stage 2: per iteration, linearize at β, Δβ = regress.Regress(dy, J), β += Δβ.
//   - Stage 3: stop when max|Δβ| < Tolerance or the budget is exhausted.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf (inputs).
//   - ErrInvalidOptions.
//   - matrix.ErrSingular: the linearized system is singular; no Result is returned.
//   - ErrNonConvergence: returned together with a populated Result.
//   - ctx.Err() (wrapped) on cancellation, with the partial Result.
//
// Complexity: O(iterations · (n·(k+1) evaluations + n·k² + k³)).
func Fit(model Model, x, y, beta0 matrix.Matrix, opts Options) (Result, error) {
	xs, ys, b, err := scalarInputs(x, y, beta0)
	if err != nil {
		return Result{}, fitErrorf(opFit, err)
	}
	if err = validateFinite(xs, ys, b); err != nil {
		return Result{}, fitErrorf(opFit, err)
	}

	return gaussNewton(opFit, scalarEval{model: model, x: xs}, ys, b, opts)
}

// FitMulti fits a model of several independent variables. X is n×p; the model
// receives row i of X. All other contracts match Fit.
func FitMulti(model MultiModel, X, y, beta0 matrix.Matrix, opts Options) (Result, error) {
	if err := matrix.ValidateSameRows(X, y); err != nil {
		return Result{}, fitErrorf(opFitMulti, err)
	}
	rows, err := rowValues(X)
	if err != nil {
		return Result{}, fitErrorf(opFitMulti, err)
	}
	ys, err := columnValues(y)
	if err != nil {
		return Result{}, fitErrorf(opFitMulti, err)
	}
	b, err := columnValues(beta0)
	if err != nil {
		return Result{}, fitErrorf(opFitMulti, err)
	}
	if err = validateFinite(append(rows, ys, b)...); err != nil {
		return Result{}, fitErrorf(opFitMulti, err)
	}

	return gaussNewton(opFitMulti, multiEval{model: model, rows: rows}, ys, b, opts)
}

// FitAux fits model while threading aux through every evaluation unchanged.
// aux is never part of beta. All other contracts match Fit.
func FitAux[A any](model AuxModel[A], aux A, x, y, beta0 matrix.Matrix, opts Options) (Result, error) {
	xs, ys, b, err := scalarInputs(x, y, beta0)
	if err != nil {
		return Result{}, fitErrorf(opFitAux, err)
	}
	if err = validateFinite(xs, ys, b); err != nil {
		return Result{}, fitErrorf(opFitAux, err)
	}

	return gaussNewton(opFitAux, auxEval[A]{model: model, aux: aux, x: xs}, ys, b, opts)
}

// gaussNewton runs the iteration over validated, copied inputs.
func gaussNewton(tag string, ev evaluator, y, beta []float64, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, fitErrorf(tag, err)
	}
	opts = opts.normalize()
	log := opts.Logger.With(slog.String("op", tag), slog.Int("observations", ev.size()), slog.Int("parameters", len(beta)))

	var (
		solveOpt = matrix.WithSingularTol(opts.SingularTol)
		res      Result
		lin      linearization
		delta    []float64
		iter     int
		err      error
	)
	for iter = 1; iter <= opts.MaxIterations; iter++ {
		if err = opts.Ctx.Err(); err != nil {
			return finish(ev, y, beta, res), fitErrorf(tag, fmt.Errorf("iteration %d: %w", iter, err))
		}

		if lin, err = linearize(ev, y, beta, opts.Step); err != nil {
			log.Warn("gauss-newton stopped on non-finite value", slog.Int("iteration", iter), slog.Any("error", err))
			return finish(ev, y, beta, res), fitErrorf(tag, fmt.Errorf("iteration %d: %w", iter, err))
		}
		if delta, err = solveStep(lin, solveOpt); err != nil {
			return Result{}, fitErrorf(tag, fmt.Errorf("iteration %d: %w", iter, err))
		}

		next := make([]float64, len(beta))
		for j := range beta {
			next[j] = beta[j] + delta[j]
		}
		if !allFinite(next) {
			log.Warn("gauss-newton update overflowed", slog.Int("iteration", iter))
			return finish(ev, y, beta, res), fitErrorf(tag, fmt.Errorf("iteration %d: non-finite update: %w", iter, ErrNonConvergence))
		}
		beta = next
		res.Iterations = iter
		res.MaxStep = maxAbs(delta)

		log.Debug("gauss-newton iteration",
			slog.Int("iteration", iter),
			slog.Float64("ssr", lin.ssr),
			slog.Float64("max_step", res.MaxStep),
		)
		if res.MaxStep < opts.Tolerance {
			res.Converged = true

			return finish(ev, y, beta, res), nil
		}
	}

	log.Warn("gauss-newton did not converge",
		slog.Int("max_iterations", opts.MaxIterations),
		slog.Float64("max_step", res.MaxStep),
		slog.Float64("tolerance", opts.Tolerance),
	)

	return finish(ev, y, beta, res), fitErrorf(tag, fmt.Errorf("after %d iterations: %w", opts.MaxIterations, ErrNonConvergence))
}

// solveStep returns Δβ = (JᵗJ)⁻¹ Jᵗ dy.
func solveStep(lin linearization, opt matrix.Option) ([]float64, error) {
	J, err := matrix.FromRows(lin.jac)
	if err != nil {
		return nil, err
	}
	dy, err := matrix.FromColumn(lin.dy)
	if err != nil {
		return nil, err
	}
	d, err := regress.Regress(dy, J, opt)
	if err != nil {
		return nil, err
	}

	return columnValues(d)
}

// finish attaches Beta and SSR at beta to res.
func finish(ev evaluator, y, beta []float64, res Result) Result {
	// beta is finite by construction, so the policy check cannot fail.
	res.Beta, _ = matrix.FromColumn(beta)
	var r float64
	for i := 0; i < ev.size(); i++ {
		r = y[i] - ev.eval(i, beta)
		res.SSR += r * r
	}

	return res
}

// validateFinite rejects NaN and ±Inf in any input slice.
func validateFinite(vals ...[]float64) error {
	for _, v := range vals {
		if !allFinite(v) {
			return matrix.ErrNaNInf
		}
	}

	return nil
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}
