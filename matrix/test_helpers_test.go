// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for row-operation tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/stretchr/testify/require"
)

// mustSquare ALLOCATES an n×n zero *Square or fails the test.
func mustSquare(tb testing.TB, n int, opts ...matrix.Option) *matrix.Square {
	tb.Helper()
	m, err := matrix.NewSquare(n, opts...)
	require.NoError(tb, err)

	return m
}

// mustFromRows builds a *Square from literal rows or fails the test.
func mustFromRows(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Square {
	tb.Helper()
	m, err := matrix.NewSquareFromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

// rowsOf SNAPSHOTS every row of m (deep copy) for before/after comparisons.
func rowsOf(tb testing.TB, m *matrix.Square) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Size())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(tb, err)
		out[i] = r
	}

	return out
}

// fillRand writes deterministic values in [-10, 10) into every cell.
func fillRand(tb testing.TB, m *matrix.Square, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*20-10))
		}
	}
}
