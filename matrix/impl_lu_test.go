// SPDX-License-Identifier: MIT
// Package matrix_test - pivoted LU, Inverse and Solve.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvfit/matrix"
)

// InverseSuite groups inversion and factorisation checks.
type InverseSuite struct {
	suite.Suite
	a *matrix.Dense
}

func (s *InverseSuite) SetupTest() {
	s.a = sample3(s.T())
}

// TestProductIsIdentity: A·A⁻¹ ≈ I within 1e-9 on both sides.
func (s *InverseSuite) TestProductIsIdentity() {
	inv, err := matrix.Inverse(s.a)
	require.NoError(s.T(), err)
	id, err := matrix.NewIdentity(3)
	require.NoError(s.T(), err)

	left, err := matrix.Mul(s.a, inv)
	require.NoError(s.T(), err)
	requireClose(s.T(), id, left, 1e-9)

	right, err := matrix.Mul(inv, s.a)
	require.NoError(s.T(), err)
	requireClose(s.T(), id, right, 1e-9)
}

// TestMatchesGonum: independent oracle.
func (s *InverseSuite) TestMatchesGonum() {
	inv, err := matrix.Inverse(hide{s.a})
	require.NoError(s.T(), err)

	g, err := matrix.ToGonum(s.a)
	require.NoError(s.T(), err)
	var ginv mat.Dense
	require.NoError(s.T(), ginv.Inverse(g))

	want, err := matrix.FromGonum(&ginv)
	require.NoError(s.T(), err)
	requireClose(s.T(), want, inv, 1e-9)
}

// TestNeedsPivoting: zero on the leading diagonal must not be reported singular.
func (s *InverseSuite) TestNeedsPivoting() {
	p := MustRows(s.T(), [][]float64{{0, 1}, {1, 0}})
	inv, err := matrix.Inverse(p)
	require.NoError(s.T(), err)
	requireClose(s.T(), p, inv, 0)
}

// TestBadlyScaledColumns: independent columns of very different magnitude invert.
func (s *InverseSuite) TestBadlyScaledColumns() {
	a := MustRows(s.T(), [][]float64{{1e8, 1e-6}, {2e8, 3e-6}})
	inv, err := matrix.Inverse(a)
	require.NoError(s.T(), err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(s.T(), err)
	id, _ := matrix.NewIdentity(2)
	requireClose(s.T(), id, prod, 1e-9)
}

func (s *InverseSuite) TestSingular() {
	for name, rows := range map[string][][]float64{
		"zero":             {{0, 0}, {0, 0}},
		"dependent rows":   {{1, 2}, {2, 4}},
		"duplicate column": {{1, 1, 2}, {1, 1, 5}, {1, 1, 7}},
	} {
		_, err := matrix.Inverse(MustRows(s.T(), rows))
		require.ErrorIs(s.T(), err, matrix.ErrSingular, name)
	}
}

func (s *InverseSuite) TestSingularTolOption() {
	a := MustRows(s.T(), [][]float64{{1, 1}, {1, 1 + 1e-9}})
	_, err := matrix.Inverse(a)
	require.NoError(s.T(), err)
	_, err = matrix.Inverse(a, matrix.WithSingularTol(1e-6))
	require.ErrorIs(s.T(), err, matrix.ErrSingular)
}

func (s *InverseSuite) TestNonSquare() {
	_, err := matrix.Inverse(MustDense(s.T(), 2, 3))
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
	_, err = matrix.Inverse(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

// TestLUReconstructs: P·A = L·U.
func (s *InverseSuite) TestLUReconstructs() {
	L, U, perm, err := matrix.LU(s.a)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, perm[0], "largest |a[i,0]| is in row 2")

	lu, err := matrix.Mul(L, U)
	require.NoError(s.T(), err)
	pa, err := s.a.Induced(perm, []int{0, 1, 2})
	require.NoError(s.T(), err)
	requireClose(s.T(), pa, lu, 1e-12)

	for i := 0; i < 3; i++ {
		require.Equal(s.T(), 1.0, MustAt(s.T(), L, i, i))
		for j := i + 1; j < 3; j++ {
			require.Equal(s.T(), 0.0, MustAt(s.T(), L, i, j))
			require.Equal(s.T(), 0.0, MustAt(s.T(), U, j, i))
		}
	}
}

func (s *InverseSuite) TestSolve() {
	b := MustRows(s.T(), [][]float64{{14, 1}, {32, 2}, {53, 3}})
	x, err := matrix.Solve(s.a, b)
	require.NoError(s.T(), err)

	back, err := matrix.Mul(s.a, x)
	require.NoError(s.T(), err)
	requireClose(s.T(), b, back, 1e-9)
	require.InDelta(s.T(), 1.0, MustAt(s.T(), x, 0, 0), 1e-12)
	require.InDelta(s.T(), 2.0, MustAt(s.T(), x, 1, 0), 1e-12)
	require.InDelta(s.T(), 3.0, MustAt(s.T(), x, 2, 0), 1e-12)

	_, err = matrix.Solve(s.a, MustDense(s.T(), 2, 1))
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
}

func TestInverseSuite(t *testing.T) {
	suite.Run(t, new(InverseSuite))
}

func TestInverse_NaNInputIsSingular(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{math.NaN(), 1}, {1, 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestWithSingularTol_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithSingularTol(-1) })
	require.Panics(t, func() { matrix.WithSingularTol(math.NaN()) })
}
