// SPDX-License-Identifier: MIT

package fitnlm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvfit/matrix"
)

// Defaults for Options.
const (
	DefaultStep          = 1e-10 // forward-difference step h
	DefaultTolerance     = 1e-3  // absolute tolerance on max|Δβ|
	DefaultMaxIterations = 500
	DefaultSingularTol   = matrix.DefaultSingularTol
)

// Options configures the Gauss-Newton solver.
//   - Step: absolute forward-difference step h (> 0).
//   - Tolerance: convergence when max|Δβⱼ| < Tolerance (>= 0; 0 never converges).
//   - MaxIterations: iteration budget (> 0).
//   - SingularTol: relative pivot tolerance of the inner normal-equation solve.
//   - Ctx: checked before every iteration; nil means context.Background().
//   - Logger: per-iteration Debug records and a Warn on non-convergence; nil is silent.
type Options struct {
	Step          float64
	Tolerance     float64
	MaxIterations int
	SingularTol   float64

	Ctx    context.Context
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Step:          DefaultStep,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		SingularTol:   DefaultSingularTol,
	}
}

// validate checks the numeric fields. Complexity: O(1).
func (o Options) validate() error {
	if !(o.Step > 0) || math.IsInf(o.Step, 0) {
		return optionError("Step", o.Step)
	}
	if !(o.Tolerance >= 0) || math.IsInf(o.Tolerance, 0) {
		return optionError("Tolerance", o.Tolerance)
	}
	if o.MaxIterations <= 0 {
		return optionError("MaxIterations", o.MaxIterations)
	}
	if !(o.SingularTol >= 0) || math.IsInf(o.SingularTol, 0) {
		return optionError("SingularTol", o.SingularTol)
	}

	return nil
}

// normalize fills the optional collaborators.
func (o Options) normalize() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}

// optionsFile is the YAML shape accepted by DecodeOptions.
type optionsFile struct {
	Step          float64 `yaml:"step"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	SingularTol   float64 `yaml:"singular_tol"`
}

// DecodeOptions reads solver settings from YAML and overlays them on
// DefaultOptions. Recognized keys: step, tolerance, max_iterations,
// singular_tol. Unknown keys are rejected; an empty document yields the defaults.
//
//	step: 1.0e-8
//	tolerance: 1.0e-6
//	max_iterations: 200
//
// Errors: ErrInvalidOptions (malformed YAML, unknown key, out-of-domain value).
func DecodeOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	f := optionsFile{
		Step:          opts.Step,
		Tolerance:     opts.Tolerance,
		MaxIterations: opts.MaxIterations,
		SingularTol:   opts.SingularTol,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fitErrorf(opDecodeOptions, errors.Join(ErrInvalidOptions, err))
	}

	opts.Step = f.Step
	opts.Tolerance = f.Tolerance
	opts.MaxIterations = f.MaxIterations
	opts.SingularTol = f.SingularTol
	if err := opts.validate(); err != nil {
		return Options{}, fitErrorf(opDecodeOptions, err)
	}

	return opts, nil
}
