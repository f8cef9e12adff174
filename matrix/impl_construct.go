// SPDX-License-Identifier: MIT

// Package matrix - constructors from literals, slices and ranges.
//
// Purpose:
//   - Build Dense/Vector values from Go slices (FromRows, FromColumn).
//   - Parse bracketed literals such as "[1 2; 3 4]" used for parameter vectors
//     on analysis command lines.
//   - Generate evenly spaced grids (Linspace) for model evaluation.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	opFromRows   = "FromRows"
	opFromColumn = "FromColumn"
	opParse      = "ParseMatrix"
	opLinspace   = "Linspace"
	opOnes       = "NewOnes"
	opIdentity   = "NewIdentity"
)

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewOnes returns an r×c matrix filled with 1 (the intercept column of a design matrix).
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opOnes, err)
	}
	for i := range m.data {
		m.data[i] = 1
	}

	return m, nil
}

// FromRows copies a rectangular [][]float64 into a new Dense.
// Implementation:
//   - Stage 1: resolve numeric policy; require at least one non-empty row.
//   - Stage 2: check every row has the same length; copy with policy enforcement.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite value while the policy is on).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// FromColumn copies vals into a new n×1 Dense.
func FromColumn(vals []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m, err := newDenseWithPolicy(len(vals), 1, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromColumn, err)
	}
	for i, v := range vals {
		if err = m.Set(i, 0, v); err != nil {
			return nil, matrixErrorf(opFromColumn, err)
		}
	}

	return m, nil
}

// ParseMatrix parses a bracketed matrix literal.
// MAIN DESCRIPTION:
//   - Rows are separated by ';', values by spaces, tabs or commas.
//     "[1 2; 3 4]" is 2×2; "[1.63e-6;1.45e-7]" is a 2×1 column; brackets are optional.
//
// Implementation:
//   - Stage 1: trim whitespace and the surrounding brackets.
//   - Stage 2: split rows on ';' (a trailing ';' is ignored), fields on separators.
//   - Stage 3: strconv.ParseFloat each field; assemble via FromRows.
//
// Errors:
//   - ErrInvalidDimensions (empty literal).
//   - ErrParse (unbalanced brackets or a field that is not a number).
//   - ErrDimensionMismatch (ragged rows).
func ParseMatrix(s string, opts ...Option) (*Dense, error) {
	body := strings.TrimSpace(s)
	hasOpen, hasClose := strings.HasPrefix(body, "["), strings.HasSuffix(body, "]")
	if hasOpen != hasClose {
		return nil, matrixErrorf(opParse, fmt.Errorf("%q: unbalanced brackets: %w", s, ErrParse))
	}
	if hasOpen {
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	body = strings.TrimSuffix(body, ";")
	if body == "" {
		return nil, matrixErrorf(opParse, ErrInvalidDimensions)
	}

	isSep := func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r' }
	lines := strings.Split(body, ";")
	rows := make([][]float64, 0, len(lines))
	for i, line := range lines {
		fields := strings.FieldsFunc(line, isSep)
		if len(fields) == 0 {
			return nil, matrixErrorf(opParse, fmt.Errorf("row %d is empty: %w", i, ErrParse))
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, matrixErrorf(opParse, fmt.Errorf("row %d, col %d: %q: %w", i, j, f, ErrParse))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	m, err := FromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return m, nil
}

// Linspace returns n evenly spaced values from start to end inclusive.
// n == 1 yields [start]. The last element is exactly end.
// Errors: ErrInvalidDimensions when n <= 0; ErrNaNInf for non-finite bounds.
func Linspace(start, end float64, n int) (*Vector, error) {
	if isNonFinite(start) || isNonFinite(end) {
		return nil, matrixErrorf(opLinspace, ErrNaNInf)
	}
	v, err := NewVector(n)
	if err != nil {
		return nil, matrixErrorf(opLinspace, err)
	}
	if n == 1 {
		v.data[0] = start

		return v, nil
	}
	step := (end - start) / float64(n-1)
	for i := 0; i < n-1; i++ {
		v.data[i] = start + float64(i)*step
	}
	v.data[n-1] = end

	return v, nil
}
