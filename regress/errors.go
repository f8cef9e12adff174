// SPDX-License-Identifier: MIT

package regress

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedStatistic is returned when a statistic has a zero denominator,
	// e.g. R² for observations with zero variance.
	ErrUndefinedStatistic = errors.New("regress: statistic undefined")

	// ErrInvalidOrder is returned for a negative polynomial order.
	ErrInvalidOrder = errors.New("regress: polynomial order must be >= 0")
)

// Operation tags.
const (
	opRegress    = "Regress"
	opPredict    = "Predict"
	opPolyDesign = "PolyDesign"
	opPolyFit    = "PolyFit"
	opPolyEval   = "PolyEval"
	opRSquared   = "RSquared"
)

// regressErrorf wraps err with an operation tag ("Regress: matrix: singular matrix").
func regressErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
