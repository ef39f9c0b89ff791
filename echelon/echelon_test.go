// Package echelon_test contains unit tests for forward elimination.
// These tests validate the resulting grid, the exact sequence of primitive
// calls (through a recording spy), rank against a gonum determinant oracle,
// tolerance handling and error propagation.
package echelon_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowreduce/echelon"
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// ------------------------------------------------------------------------
// Doubles
// ------------------------------------------------------------------------

// spyOps records mutating primitive calls and forwards them to a real Square.
type spyOps struct {
	mock.Mock
	*matrix.Square
}

func newSpy(t *testing.T, rows [][]float64, opts ...matrix.Option) *spyOps {
	t.Helper()
	sq, err := matrix.NewSquareFromRows(rows, opts...)
	require.NoError(t, err)
	s := &spyOps{Square: sq}
	s.On("MulAdd", mock.Anything, mock.Anything, mock.Anything).Return()
	s.On("SwapWithNonZeroRow", mock.Anything).Return()
	s.On("Set", mock.Anything, mock.Anything, mock.Anything).Return()

	return s
}

func (s *spyOps) MulAdd(target, source int, scalar float64) error {
	s.Called(target, source, scalar)
	return s.Square.MulAdd(target, source, scalar)
}

func (s *spyOps) SwapWithNonZeroRow(row int) error {
	s.Called(row)
	return s.Square.SwapWithNonZeroRow(row)
}

func (s *spyOps) Set(row, col int, v float64) error {
	s.Called(row, col, v)
	return s.Square.Set(row, col, v)
}

// failingOps is a 1×1 double whose At always fails.
type failingOps struct{ mock.Mock }

func (f *failingOps) Size() int        { return 1 }
func (f *failingOps) Epsilon() float64 { return 0 }
func (f *failingOps) At(row, col int) (float64, error) {
	args := f.Called(row, col)
	return args.Get(0).(float64), args.Error(1)
}
func (f *failingOps) Set(row, col int, v float64) error { return f.Called(row, col, v).Error(0) }
func (f *failingOps) MulAdd(t, s int, k float64) error  { return f.Called(t, s, k).Error(0) }
func (f *failingOps) SwapWithNonZeroRow(row int) error  { return f.Called(row).Error(0) }
func (f *failingOps) ExistsZeroRow() bool               { return f.Called().Bool(0) }
func (f *failingOps) ExistsWrongRow() bool              { return f.Called().Bool(0) }

func rowsOf(t *testing.T, m *matrix.Square) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Size())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Resulting grid and call sequence
// ------------------------------------------------------------------------

func TestRowEchelon_ZeroPivotBroughtInByMulAdd(t *testing.T) {
	s := newSpy(t, [][]float64{{0, 2}, {1, 1}})

	rank, err := echelon.RowEchelon(s)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.Equal(t, [][]float64{{1, 3}, {0, -2}}, rowsOf(t, s.Square))
	require.False(t, s.ExistsWrongRow())

	s.AssertCalled(t, "MulAdd", 0, 1, 1.0)
	s.AssertCalled(t, "MulAdd", 1, 0, -1.0)
	s.AssertCalled(t, "Set", 1, 0, 0.0)
	s.AssertNumberOfCalls(t, "MulAdd", 2)
}

func TestRowEchelon_ZeroRowSwappedUp(t *testing.T) {
	s := newSpy(t, [][]float64{{0, 0, 0}, {0, 1, 2}, {3, 4, 5}})

	rank, err := echelon.RowEchelon(s)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.Equal(t, [][]float64{{3, 5, 7}, {0, -1, -2}, {0, 0, 0}}, rowsOf(t, s.Square))
	require.False(t, s.ExistsWrongRow())
	require.True(t, s.ExistsZeroRow())

	s.AssertNumberOfCalls(t, "SwapWithNonZeroRow", 3)
	s.AssertCalled(t, "SwapWithNonZeroRow", 0)
	s.AssertCalled(t, "SwapWithNonZeroRow", 1)
	s.AssertCalled(t, "SwapWithNonZeroRow", 2)
	s.AssertCalled(t, "MulAdd", 0, 2, 1.0)
	s.AssertCalled(t, "MulAdd", 2, 0, -1.0)
}

func TestRowEchelon_FreshMatrixUntouched(t *testing.T) {
	s := newSpy(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})

	rank, err := echelon.RowEchelon(s)
	require.NoError(t, err)
	require.Zero(t, rank)
	s.AssertNumberOfCalls(t, "SwapWithNonZeroRow", 3) // p stays 0 for every column
	s.AssertNotCalled(t, "MulAdd", mock.Anything, mock.Anything, mock.Anything)
	s.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestRowEchelon_AlreadyEchelonNoMulAdd(t *testing.T) {
	s := newSpy(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}})
	require.True(t, echelon.IsEchelon(s))

	rank, err := echelon.RowEchelon(s)
	require.NoError(t, err)
	require.Equal(t, 3, rank)
	s.AssertNotCalled(t, "MulAdd", mock.Anything, mock.Anything, mock.Anything)
}

// ------------------------------------------------------------------------
// 2. Rank
// ------------------------------------------------------------------------

func TestRank_Table(t *testing.T) {
	cases := []struct {
		name string
		in   [][]float64
		want int
	}{
		{"1x1 zero", [][]float64{{0}}, 0},
		{"1x1 non-zero", [][]float64{{5}}, 1},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"dependent row", [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}, 2},
		{"all rows equal", [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, 1},
		{"skipped column", [][]float64{{0, 1, 0}, {0, 2, 1}, {0, 0, 3}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewSquareFromRows(tc.in)
			require.NoError(t, err)
			before := m.Clone()

			rank, err := echelon.Rank(m)
			require.NoError(t, err)
			require.Equal(t, tc.want, rank)
			require.True(t, m.Equal(before)) // Rank works on a clone
		})
	}
}

// TestRowEchelon_MatchesGonumDeterminant: diagonally dominant matrices are
// non-singular per gonum, so elimination must reach full rank with no zero row.
func TestRowEchelon_MatchesGonumDeterminant(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for n := 1; n <= 6; n++ {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = rng.Float64()*20 - 10
			}
			rows[i][i] += 100 // off-diagonal row sum stays below 60
		}
		m, err := matrix.NewSquareFromRows(rows)
		require.NoError(t, err)

		det := mat.Det(m.ToGonum())
		require.Greater(t, math.Abs(det), 1e-6, "n=%d", n)

		rank, err := echelon.RowEchelon(m)
		require.NoError(t, err)
		require.Equal(t, n, rank, "n=%d", n)
		require.False(t, m.ExistsZeroRow())
		require.False(t, m.ExistsWrongRow())
	}
}

// ------------------------------------------------------------------------
// 3. Tolerance
// ------------------------------------------------------------------------

func TestRowEchelon_EpsilonPinsResidue(t *testing.T) {
	rows := [][]float64{{1, 1}, {1, 1 + 1e-13}}

	exact, err := matrix.NewSquareFromRows(rows)
	require.NoError(t, err)
	rank, err := echelon.RowEchelon(exact)
	require.NoError(t, err)
	require.Equal(t, 2, rank)

	s := newSpy(t, rows, matrix.WithEpsilon(1e-9))
	rank, err = echelon.RowEchelon(s)
	require.NoError(t, err)
	require.Equal(t, 1, rank)

	r, err := s.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, r) // residue pinned to exact zero
	s.AssertCalled(t, "Set", 1, 1, 0.0)
}

// ------------------------------------------------------------------------
// 4. Errors
// ------------------------------------------------------------------------

func TestRowEchelon_Nil(t *testing.T) {
	_, err := echelon.RowEchelon(nil)
	require.ErrorIs(t, err, echelon.ErrNilOperations)

	_, err = echelon.Rank(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.False(t, echelon.IsEchelon(nil))
}

func TestRowEchelon_PrimitiveErrorWrapped(t *testing.T) {
	f := &failingOps{}
	f.On("SwapWithNonZeroRow", 0).Return(nil)
	f.On("At", 0, 0).Return(0.0, matrix.ErrOutOfRange)

	_, err := echelon.RowEchelon(f)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "echelon: RowEchelon")
	f.AssertExpectations(t)
}

func TestRowEchelon_OverflowReported(t *testing.T) {
	m, err := matrix.NewSquareFromRows([][]float64{{1e-300, 0}, {1e300, 1}})
	require.NoError(t, err)

	_, err = echelon.RowEchelon(m)
	require.True(t, errors.Is(err, matrix.ErrNaNInf))
}
