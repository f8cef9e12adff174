// SPDX-License-Identifier: MIT

package fitnlm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfit/matrix"
)

// linearization is one Gauss-Newton snapshot at beta.
type linearization struct {
	dy  []float64   // yᵢ − f(xᵢ, β)
	jac [][]float64 // ∂f/∂βⱼ by forward differences, n×k
	ssr float64     // Σ dyᵢ²
}

// linearize evaluates the residuals and the forward-difference Jacobian at beta.
// f(xᵢ, β) is evaluated once per observation and shared by both.
//
// Errors: ErrNonConvergence (wrapped) if any model value or difference
// quotient is non-finite.
//
// Complexity: n·(k+1) model evaluations, O(n·k) memory.
func linearize(ev evaluator, y, beta []float64, h float64) (linearization, error) {
	var (
		n     = ev.size()
		k     = len(beta)
		base  = make([]float64, n)
		betah = append([]float64(nil), beta...)
		lin   = linearization{dy: make([]float64, n), jac: make([][]float64, n)}
		i, j  int
		fi    float64
	)
	for i = 0; i < n; i++ {
		fi = ev.eval(i, beta)
		if math.IsNaN(fi) || math.IsInf(fi, 0) {
			return linearization{}, fmt.Errorf("model value %v at observation %d: %w", fi, i, ErrNonConvergence)
		}
		base[i] = fi
		lin.dy[i] = y[i] - fi
		lin.ssr += lin.dy[i] * lin.dy[i]
		lin.jac[i] = make([]float64, k)
	}

	// Column by column: perturb βⱼ only, then restore it.
	for j = 0; j < k; j++ {
		betah[j] = beta[j] + h
		for i = 0; i < n; i++ {
			fi = (ev.eval(i, betah) - base[i]) / h
			if math.IsNaN(fi) || math.IsInf(fi, 0) {
				return linearization{}, fmt.Errorf("jacobian[%d,%d]=%v: %w", i, j, fi, ErrNonConvergence)
			}
			lin.jac[i][j] = fi
		}
		betah[j] = beta[j]
	}

	return lin, nil
}

// Jacobian returns the n×k forward-difference Jacobian of model at beta,
// Jᵢⱼ = (f(xᵢ, β + h·eⱼ) − f(xᵢ, β)) / h.
//
// Errors: matrix.ErrDimensionMismatch (x or beta not a column),
// ErrInvalidOptions (h not positive and finite), ErrNonConvergence (non-finite values).
func Jacobian(model Model, x, beta matrix.Matrix, h float64) (*matrix.Dense, error) {
	if !(h > 0) || math.IsInf(h, 0) {
		return nil, fitErrorf(opJacobian, optionError("h", h))
	}
	xs, err := columnValues(x)
	if err != nil {
		return nil, fitErrorf(opJacobian, err)
	}
	b, err := columnValues(beta)
	if err != nil {
		return nil, fitErrorf(opJacobian, err)
	}
	lin, err := linearize(scalarEval{model: model, x: xs}, make([]float64, len(xs)), b, h)
	if err != nil {
		return nil, fitErrorf(opJacobian, err)
	}
	J, err := matrix.FromRows(lin.jac)
	if err != nil {
		return nil, fitErrorf(opJacobian, err)
	}

	return J, nil
}

// Residuals returns the n×1 column yᵢ − f(xᵢ, β).
//
// Errors: matrix.ErrDimensionMismatch, matrix.ErrNaNInf (a non-finite residual).
func Residuals(model Model, x, y, beta matrix.Matrix) (*matrix.Dense, error) {
	xs, ys, b, err := scalarInputs(x, y, beta)
	if err != nil {
		return nil, fitErrorf(opResiduals, err)
	}
	ev := scalarEval{model: model, x: xs}
	dy := make([]float64, len(xs))
	for i := range dy {
		dy[i] = ys[i] - ev.eval(i, b)
	}
	out, err := matrix.FromColumn(dy)
	if err != nil {
		return nil, fitErrorf(opResiduals, err)
	}

	return out, nil
}

// Predict returns the n×1 column f(xᵢ, β); pair it with regress.RSquaredOf
// to score a nonlinear fit.
func Predict(model Model, x, beta matrix.Matrix) (*matrix.Dense, error) {
	xs, err := columnValues(x)
	if err != nil {
		return nil, fitErrorf(opPredict, err)
	}
	b, err := columnValues(beta)
	if err != nil {
		return nil, fitErrorf(opPredict, err)
	}
	ev := scalarEval{model: model, x: xs}
	f := make([]float64, len(xs))
	for i := range f {
		f[i] = ev.eval(i, b)
	}
	out, err := matrix.FromColumn(f)
	if err != nil {
		return nil, fitErrorf(opPredict, err)
	}

	return out, nil
}

// columnValues copies an n×1 matrix into a slice.
func columnValues(m matrix.Matrix) ([]float64, error) {
	v, err := matrix.VectorFromColumn(m)
	if err != nil {
		return nil, err
	}

	return v.Values(), nil
}

// rowValues copies every row of m.
func rowValues(m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	rows := make([][]float64, m.Rows())
	var (
		i, j int
		err  error
	)
	for i = range rows {
		rows[i] = make([]float64, m.Cols())
		for j = range rows[i] {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return rows, nil
}

// scalarInputs validates x, y (n×1, same n) and beta (k×1) and copies them out.
func scalarInputs(x, y, beta matrix.Matrix) (xs, ys, b []float64, err error) {
	if err = matrix.ValidateSameRows(x, y); err != nil {
		return nil, nil, nil, err
	}
	if xs, err = columnValues(x); err != nil {
		return nil, nil, nil, err
	}
	if ys, err = columnValues(y); err != nil {
		return nil, nil, nil, err
	}
	if b, err = columnValues(beta); err != nil {
		return nil, nil, nil, err
	}

	return xs, ys, b, nil
}
