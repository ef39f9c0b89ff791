// SPDX-License-Identifier: MIT

// Package matrix: capability interface consumed by elimination drivers.
// This file contains ONLY the RowOperations contract; the concrete storage
// lives in impl_square.go and the kernels in impl_rowops.go / impl_queries.go.
package matrix

// RowOperations is the set of elementary row primitives a Gaussian-elimination
// driver needs. *Square implements it; tests substitute a recording double to
// assert call arguments and counts without touching real storage.
//
// Contract (mirrors *Square):
//   - Indices are zero-based in [0, Size()); violations return ErrOutOfRange.
//   - Queries never fail and never mutate.
//   - Epsilon reports the zero tolerance the implementation applies, so that
//     drivers pick pivots with the same notion of "zero" as the queries.
type RowOperations interface {
	// Size returns the dimension n of the n×n grid.
	Size() int

	// Epsilon returns the zero tolerance (|v| <= eps counts as zero).
	Epsilon() float64

	// At retrieves the cell (row, col).
	At(row, col int) (float64, error)

	// Set assigns v to the cell (row, col).
	Set(row, col int, v float64) error

	// MulAdd replaces target[c] with target[c] + scalar*source[c] for every column c.
	MulAdd(target, source int, scalar float64) error

	// SwapWithNonZeroRow exchanges an all-zero row with the first later non-zero row.
	SwapWithNonZeroRow(row int) error

	// ExistsZeroRow reports whether some row is entirely zero.
	ExistsZeroRow() bool

	// ExistsWrongRow reports whether some row breaks row-echelon ordering.
	ExistsWrongRow() bool
}
