// SPDX-License-Identifier: MIT

// Package matrix - degenerate-row queries.
//
// Purpose:
//   - Answer "is there a zero row?" and "is the row order echelon-compatible?"
//     without mutating the matrix and without ever failing.
//
// Definitions:
//   - A cell is zero when |v| <= eps (eps fixed at construction, default 0).
//   - The leading column of a row is the index of its first non-zero cell,
//     or n for an all-zero row.
//   - A row i > 0 is wrong when it is non-zero and lead(i) <= lead(i-1).
//     This covers both out-of-order pivots and non-zero rows below a zero row
//     (a zero row has lead n). A matrix in row-echelon form has no wrong row.

package matrix

import "math"

const (
	ctxIsZeroRow     = "IsZeroRow"
	ctxLeadingColumn = "LeadingColumn"
)

// isZero applies the zero tolerance. NaN is never zero.
func (m *Square) isZero(v float64) bool { return math.Abs(v) <= m.eps }

// isZeroRow scans row i; short-circuits on the first non-zero cell.
func (m *Square) isZeroRow(i int) bool {
	for _, v := range m.row(i) {
		if !m.isZero(v) {
			return false
		}
	}

	return true
}

// leading returns the first non-zero column of row i, or n.
func (m *Square) leading(i int) int {
	for c, v := range m.row(i) {
		if !m.isZero(v) {
			return c
		}
	}

	return m.n
}

// IsZeroRow reports whether every cell of row i is zero.
// Errors: ErrOutOfRange.
func (m *Square) IsZeroRow(i int) (bool, error) {
	if !m.validRow(i) {
		return false, rowErrorf(ctxIsZeroRow, i, ErrOutOfRange)
	}

	return m.isZeroRow(i), nil
}

// LeadingColumn returns the pivot column of row i (n when the row is zero).
// Errors: ErrOutOfRange.
func (m *Square) LeadingColumn(i int) (int, error) {
	if !m.validRow(i) {
		return 0, rowErrorf(ctxLeadingColumn, i, ErrOutOfRange)
	}

	return m.leading(i), nil
}

// ExistsZeroRow reports whether at least one row is entirely zero.
// Rows are scanned in order; the scan stops at the first zero row.
// A freshly constructed matrix always reports true.
// Complexity: O(n^2) worst case.
func (m *Square) ExistsZeroRow() bool {
	for i := 0; i < m.n; i++ {
		if m.isZeroRow(i) {
			return true
		}
	}

	return false
}

// ExistsWrongRow reports whether some row violates row-echelon ordering.
// MAIN DESCRIPTION:
//   - Leading columns of consecutive rows must strictly increase, with zero
//     rows (lead n) allowed only at the bottom.
//
// Behavior highlights:
//   - Pure query; a fresh all-zero matrix reports false.
//   - Rows are compared pairwise in index order; the scan stops at the first
//     violation.
//
// Complexity:
//   - Time O(n^2) worst case, Space O(1).
func (m *Square) ExistsWrongRow() bool {
	prev := m.leading(0)
	for i := 1; i < m.n; i++ {
		lead := m.leading(i)
		if lead < m.n && lead <= prev {
			return true
		}
		prev = lead
	}

	return false
}
