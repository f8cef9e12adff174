// SPDX-License-Identifier: MIT

// Package fitnlm fits nonlinear models to observations with the Gauss-Newton method.
//
// What:
//
//	Given a model f(x, β), observations (xᵢ, yᵢ) and an initial guess β₀, Fit
//	searches for the β that minimizes Σ (yᵢ − f(xᵢ, β))².
//
// How:
//
//	Each iteration forms the residuals dy = y − f(x, β) and a forward-difference
//	Jacobian Jᵢⱼ = (f(xᵢ, β + h·eⱼ) − f(xᵢ, β)) / h, solves the linearized normal
//	equations (JᵗJ) Δβ = Jᵗ dy with regress.Regress and applies β ← β + Δβ.
//	Iteration stops when max|Δβⱼ| < Options.Tolerance.
//
// Models come in three shapes:
//
//   - Model: scalar independent variable, f(x, β).
//   - MultiModel: one row of a multi-column design, f(row, β).
//   - AuxModel[A]: f(x, β, aux) with a fixed, caller-owned auxiliary value.
//
// Numeric policy:
//
//	The step h is absolute (default 1e-10). Supply well-scaled initial guesses:
//	parameters of very different magnitudes make the difference quotients
//	inaccurate. When the iteration budget runs out, or the model produces a
//	non-finite value, the last finite β is returned together with
//	ErrNonConvergence.
//
// Configuration:
//
//	Options carries the numeric constants with documented defaults
//	(DefaultOptions). DecodeOptions overlays YAML settings on those defaults.
//	Progress is reported through an optional *slog.Logger.
//
// Complexity (per iteration, n observations, k parameters):
//
//	n·(k+1) model evaluations, O(n·k² + k³) arithmetic.
package fitnlm
