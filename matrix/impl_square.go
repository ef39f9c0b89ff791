// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Row kernels (impl_rowops.go) operate on the flat data slice directly.
//   - Use Row/SetRow to move whole rows; use Clone before destructive pipelines.
//
// Complexity quicksheet:
//   - NewSquare: O(n^2) zero-init; At/Set: O(1); Row/SetRow: O(n); Clone/Equal: O(n^2).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRow       = "Row"       // method tag used in error wrappers
	ctxSetRow    = "SetRow"    // method tag used in error wrappers
	ctxFromRows  = "FromRows"  // ctor tag for NewSquareFromRows
	ctxFromGonum = "FromGonum" // ctor tag for NewSquareFromGonum
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// squareErrorf wraps an error with a uniform Square context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Square.<method>(a,b): %w".
//   - Stage 2: return wrapped error.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxMulAdd/...)
//   - a, b: coordinates (row,col) or (target,source)
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Complexity:
//   - Time O(1), Space O(1).
func squareErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, a, b, err)
}

// rowErrorf is the single-index flavour of squareErrorf.
func rowErrorf(method string, row int, err error) error {
	return fmt.Errorf("Square.%s(%d): %w", method, row, err)
}

// Square is a concrete n×n row-major matrix.
//   - n holds the dimension (rows == cols == n, n ≥ 1).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - eps is the zero tolerance used by every zero test.
//   - validateNaNInf enables NaN/Inf rejection on writes.
type Square struct {
	n              int       // dimension (>0)
	data           []float64 // contiguous row-major storage (len == n*n)
	eps            float64   // zero tolerance (>= 0)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ RowOperations = (*Square)(nil) // *Square implements the row-operation capability
	_ fmt.Stringer  = (*Square)(nil)
)

// NewSquare creates an n×n zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and resolved numeric policy.
//
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options on top of defaults.
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - A fresh matrix is all zero, so ExistsZeroRow is true immediately.
//   - No panics on user errors; option constructors may panic on nonsense values.
//
// Inputs:
//   - n: positive dimension.
//   - opts: numeric policy overrides (WithEpsilon, WithNoValidateNaNInf, ...).
//
// Returns:
//   - *Square: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (n <= 0).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewSquare(n int, opts ...Option) (*Square, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Square{
		n:              n,
		data:           make([]float64, n*n), // make() zero-fills deterministically
		eps:            o.eps,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewSquareFromRows builds a Square from a literal row set.
// MAIN DESCRIPTION:
//   - Copy rows into fresh storage; the input is never aliased.
//
// Implementation:
//   - Stage 1: require len(rows) > 0 and every row of length len(rows).
//   - Stage 2: allocate via NewSquare and copy in row order, enforcing the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions for an empty row set.
//   - ErrDimensionMismatch for ragged or non-square input.
//   - ErrNaNInf for non-finite cells under the default policy.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewSquareFromRows(rows [][]float64, opts ...Option) (*Square, error) {
	n := len(rows)
	m, err := NewSquare(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, rowErrorf(ctxFromRows, i, ErrDimensionMismatch)
		}
		for j := 0; j < n; j++ {
			if m.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, squareErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Size returns the dimension n. No side effects.
// Complexity: O(1).
func (m *Square) Size() int { return m.n }

// Rows returns the row count (== Size). Complexity: O(1).
func (m *Square) Rows() int { return m.n }

// Cols returns the column count (== Size). Complexity: O(1).
func (m *Square) Cols() int { return m.n }

// Epsilon returns the zero tolerance fixed at construction.
func (m *Square) Epsilon() float64 { return m.eps }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods wrap with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// validRow reports whether row is in [0, n).
func (m *Square) validRow(row int) bool { return row >= 0 && row < m.n }

// row returns the live slice backing row i (no bounds check; internal only).
func (m *Square) row(i int) []float64 { return m.data[i*m.n : (i+1)*m.n] }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Square) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Behavior highlights:
//   - Only the addressed cell changes; every error leaves the matrix untouched.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return squareErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(n).
func (m *Square) Row(i int) ([]float64, error) {
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, rowErrorf(ctxRow, i, err)
	}
	out := make([]float64, m.n)
	copy(out, m.row(i))

	return out, nil
}

// SetRow overwrites row i with vals (all-or-nothing).
// Implementation:
//   - Stage 1: validate index, length and (policy) finiteness of every value.
//   - Stage 2: single copy into the backing row.
//
// Errors:
//   - ErrOutOfRange, ErrDimensionMismatch (len(vals) != n), ErrNaNInf.
//
// Complexity:
//   - Time O(n), Space O(1).
func (m *Square) SetRow(i int, vals []float64) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return rowErrorf(ctxSetRow, i, err)
	}
	if err := ValidateVecLen(vals, m.n); err != nil {
		return rowErrorf(ctxSetRow, i, err)
	}
	if m.validateNaNInf {
		for j, v := range vals {
			if isNonFinite(v) {
				return squareErrorf(ctxSetRow, i, j, ErrNaNInf)
			}
		}
	}
	copy(m.row(i), vals)

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the clone never affect the original.
// Complexity: O(n^2).
func (m *Square) Clone() *Square {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Square{
		n:              m.n,
		data:           cp,
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
	}
}

// Equal reports whether other has the same dimension and bitwise-equal cells
// (NaN never equals NaN). Policy flags are not compared.
// Complexity: O(n^2).
func (m *Square) Equal(other *Square) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Not for hot paths.
// Complexity: O(n^2).
func (m *Square) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
