// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - validateNaNInf controls whether Set/AddAt/ingestion reject NaN and ±Inf.
//     Matrices carry the flag they were created with; Clone preserves it.
//   - singularTol is relative: a pivot p in column j is rejected when
//     |p| <= singularTol * max_i |A[i,j]|. Zero means "reject exact zeros only".
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularTol is the relative pivot tolerance of LU, Inverse and Solve.
	DefaultSingularTol = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularTolInvalid = "matrix: WithSingularTol: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	singularTol    float64 // >= 0; DefaultSingularTol
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithSingularTol sets the relative pivot tolerance used to detect singular matrices.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - Larger tol flags nearly collinear designs earlier; tol=0 only rejects exact zero pivots.
func WithSingularTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Use for raw ingestion that is sanitised later (see DeleteNaNRows).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters are applied in order; last-writer-wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		singularTol:    DefaultSingularTol,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
