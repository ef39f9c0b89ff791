// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations (in-place kernels).
//
// Purpose:
//   - Implement the three elementary row operations used by Gaussian elimination:
//     scaled addition (MulAdd), exchange (SwapRows / SwapWithNonZeroRow) and
//     scaling (ScaleRow).
//   - Validate every argument before the first write: an error return always
//     leaves the matrix exactly as it was.
//
// Determinism:
//   - Fixed column order c = 0..n-1; no allocation beyond one n-length staging row.

package matrix

const (
	ctxMulAdd   = "MulAdd"
	ctxSwapRows = "SwapRows"
	ctxSwapNZ   = "SwapWithNonZeroRow"
	ctxScaleRow = "ScaleRow"
)

// MulAdd replaces target[c] with target[c] + scalar*source[c] for every column c.
// MAIN DESCRIPTION:
//   - The elementary "add a multiple of one row to another" operation.
//
// Implementation:
//   - Stage 1: bounds-check both rows; reject a non-finite scalar under policy.
//   - Stage 2: compute every new target value into a staging row, reading
//     source and target before anything is written.
//   - Stage 3: reject non-finite results under policy; otherwise commit.
//
// Behavior highlights:
//   - target == source is allowed: each column becomes t[c] + scalar*t[c]
//     using the pre-update value, never a partially updated row.
//   - source is never modified (unless it is also the target).
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, n).
//   - ErrNaNInf for a non-finite scalar or result (policy ON); no cell changes.
//
// Complexity:
//   - Time O(n), Space O(n).
func (m *Square) MulAdd(target, source int, scalar float64) error {
	if !m.validRow(target) || !m.validRow(source) {
		return squareErrorf(ctxMulAdd, target, source, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(scalar) {
		return squareErrorf(ctxMulAdd, target, source, ErrNaNInf)
	}

	dst := m.row(target)
	src := m.row(source)
	staged := make([]float64, m.n)
	for c := 0; c < m.n; c++ {
		staged[c] = dst[c] + scalar*src[c]
		if m.validateNaNInf && isNonFinite(staged[c]) {
			return squareErrorf(ctxMulAdd, target, source, ErrNaNInf)
		}
	}
	copy(dst, staged)

	return nil
}

// SwapRows exchanges rows i and j in place. i == j is a no-op.
// Errors: ErrOutOfRange.
// Complexity: O(n), no allocation.
func (m *Square) SwapRows(i, j int) error {
	if !m.validRow(i) || !m.validRow(j) {
		return squareErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri, rj := m.row(i), m.row(j)
	for c := 0; c < m.n; c++ {
		ri[c], rj[c] = rj[c], ri[c]
	}

	return nil
}

// SwapWithNonZeroRow moves a non-zero row into position row when that row is all zero.
// MAIN DESCRIPTION:
//   - Pivot-row repair step of elimination: an all-zero row is exchanged with
//     the first later row (increasing index order) holding a non-zero cell.
//
// Behavior highlights:
//   - No-op when row is already non-zero, or when every later row is zero.
//   - Idempotent: a second call with the same argument changes nothing.
//   - Rows before row are never inspected or touched.
//
// Errors:
//   - ErrOutOfRange when row is outside [0, n).
//
// Complexity:
//   - Time O(n^2) worst case (scan of later rows), Space O(1).
func (m *Square) SwapWithNonZeroRow(row int) error {
	if !m.validRow(row) {
		return rowErrorf(ctxSwapNZ, row, ErrOutOfRange)
	}
	if !m.isZeroRow(row) {
		return nil
	}
	for k := row + 1; k < m.n; k++ {
		if !m.isZeroRow(k) {
			return m.SwapRows(row, k)
		}
	}

	return nil
}

// ScaleRow multiplies every cell of row i by k.
// Errors: ErrOutOfRange; ErrNaNInf for a non-finite k or result (policy ON).
// Complexity: O(n).
func (m *Square) ScaleRow(i int, k float64) error {
	if !m.validRow(i) {
		return rowErrorf(ctxScaleRow, i, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(k) {
		return rowErrorf(ctxScaleRow, i, ErrNaNInf)
	}
	r := m.row(i)
	if m.validateNaNInf {
		for c := 0; c < m.n; c++ {
			if isNonFinite(r[c] * k) {
				return rowErrorf(ctxScaleRow, i, ErrNaNInf)
			}
		}
	}
	for c := 0; c < m.n; c++ {
		r[c] *= k
	}

	return nil
}
