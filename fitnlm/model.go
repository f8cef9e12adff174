// SPDX-License-Identifier: MIT

package fitnlm

// Model predicts the dependent value at a scalar x for parameters beta.
// Each call receives its own copy of beta, so writes to it never reach the
// solver. Implementations must be pure in x and beta.
type Model interface {
	Eval(x float64, beta []float64) float64
}

// ModelFunc adapts an ordinary function to Model.
type ModelFunc func(x float64, beta []float64) float64

// Eval calls f(x, beta).
func (f ModelFunc) Eval(x float64, beta []float64) float64 { return f(x, beta) }

// MultiModel predicts the dependent value for one row of a multi-column
// independent-variable matrix. row and beta are read-only.
type MultiModel interface {
	Eval(row []float64, beta []float64) float64
}

// MultiModelFunc adapts an ordinary function to MultiModel.
type MultiModelFunc func(row []float64, beta []float64) float64

// Eval calls f(row, beta).
func (f MultiModelFunc) Eval(row []float64, beta []float64) float64 { return f(row, beta) }

// AuxModel is a Model that also receives a fixed auxiliary value which is
// never fitted (a material constant, a precomputed table, a sample geometry).
type AuxModel[A any] interface {
	Eval(x float64, beta []float64, aux A) float64
}

// AuxModelFunc adapts an ordinary function to AuxModel.
type AuxModelFunc[A any] func(x float64, beta []float64, aux A) float64

// Eval calls f(x, beta, aux).
func (f AuxModelFunc[A]) Eval(x float64, beta []float64, aux A) float64 { return f(x, beta, aux) }

// evaluator is the common shape the solver iterates over: observation i
// evaluated at beta. The three model kinds are adapted to it below; every
// adapter hands the model a private copy of beta.
type evaluator interface {
	size() int
	eval(i int, beta []float64) float64
}

type scalarEval struct {
	model Model
	x     []float64
}

func (e scalarEval) size() int                          { return len(e.x) }
func (e scalarEval) eval(i int, beta []float64) float64 { return e.model.Eval(e.x[i], fresh(beta)) }

type multiEval struct {
	model MultiModel
	rows  [][]float64
}

func (e multiEval) size() int                          { return len(e.rows) }
func (e multiEval) eval(i int, beta []float64) float64 { return e.model.Eval(e.rows[i], fresh(beta)) }

type auxEval[A any] struct {
	model AuxModel[A]
	aux   A
	x     []float64
}

func (e auxEval[A]) size() int { return len(e.x) }
func (e auxEval[A]) eval(i int, beta []float64) float64 {
	return e.model.Eval(e.x[i], fresh(beta), e.aux)
}

func fresh(beta []float64) []float64 { return append([]float64(nil), beta...) }
