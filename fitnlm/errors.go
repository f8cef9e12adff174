// SPDX-License-Identifier: MIT

package fitnlm

import (
	"errors"
	"fmt"
)

var (
	// ErrNonConvergence is returned when the iteration budget is exhausted or the
	// model produced a non-finite value. The accompanying Result still holds the
	// last finite parameter estimate.
	ErrNonConvergence = errors.New("fitnlm: did not converge")

	// ErrInvalidOptions is returned for out-of-domain Options values.
	ErrInvalidOptions = errors.New("fitnlm: invalid options")
)

const (
	opFit           = "Fit"
	opFitMulti      = "FitMulti"
	opFitAux        = "FitAux"
	opJacobian      = "Jacobian"
	opResiduals     = "Residuals"
	opPredict       = "Predict"
	opDecodeOptions = "DecodeOptions"
)

// fitErrorf wraps err with an operation tag.
func fitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// optionError reports which Options field is out of domain.
func optionError(field string, v any) error {
	return fmt.Errorf("%s=%v: %w", field, v, ErrInvalidOptions)
}
