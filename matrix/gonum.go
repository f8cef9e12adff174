// SPDX-License-Identifier: MIT

// Package matrix - interoperability with gonum.org/v1/gonum/mat.
//
// ToGonum and FromGonum copy in both directions so that callers can hand a
// design matrix to gonum (decompositions, stat) or bring gonum results back
// under this package's bounds-checked, policy-enforcing surface.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix; At errors from non-Dense implementations.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// FromGonum copies any gonum matrix into a new Dense with the given numeric policy.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty gonum matrix), ErrNaNInf.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := g.Dims()
	res, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = res.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("gonum (%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}
